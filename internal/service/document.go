package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"docvault/internal/identity"
	"docvault/internal/model"
	"docvault/internal/storage"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNameRequired = errors.New("filename is required")
	ErrNotFound     = errors.New("document not found")
	ErrReaderNil    = errors.New("reader is nil")
)

// downloadURLExpiry bounds presigned download URLs on backends that support them.
const downloadURLExpiry = 15 * time.Minute

// UploadMeta carries the optional out-of-band form fields of an upload.
// Title defaults to the original filename; Category and Tags are echoed on
// the upload response but never persisted, so they are gone by the next
// listing.
type UploadMeta struct {
	Title    string
	Category string
	Tags     []string
}

// DownloadInfo points a caller at the bytes of a document. No byte
// streaming happens here; the URL is either presigned by the backend or a
// static download path.
type DownloadInfo struct {
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
}

// HealthInfo reports the document store's presence and location.
type HealthInfo struct {
	StoreExists bool
	StorePath   string
}

// DocumentService defines the use cases for handling documents. All
// metadata is derived per call by parsing the "{id}_{name}" storage naming
// convention; there is no document record anywhere.
type DocumentService interface {
	// Upload allocates a timestamp ID, writes "{id}_{name}" to the store
	// and returns the derived metadata with meta fields echoed back.
	Upload(ctx context.Context, r io.Reader, originalFilename string, size int64, meta UploadMeta) (*model.Document, error)

	// List returns every stored document in the store's enumeration order.
	List(ctx context.Context) ([]model.Document, error)

	// Get returns the first document whose filename starts with id.
	// Under an ID collision the pick is non-deterministic; callers that
	// need exact-match semantics must pre-filter via FindByIDPrefix.
	Get(ctx context.Context, id string) (*model.Document, error)

	// FindByIDPrefix returns every document whose filename starts with id.
	FindByIDPrefix(ctx context.Context, id string) ([]model.Document, error)

	// Download resolves the first prefix match to a download URL.
	Download(ctx context.Context, id string) (*DownloadInfo, error)

	// Health reports whether the store exists and where it lives.
	Health(ctx context.Context) (*HealthInfo, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.Backend
}

// NewDocumentService constructs a new DocumentService on the given backend.
func NewDocumentService(store storage.Backend) DocumentService {
	return &documentService{store: store}
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, originalFilename string, size int64, meta UploadMeta) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if originalFilename == "" {
		return nil, ErrNameRequired
	}

	id := identity.DocumentID()
	stored := id + "_" + originalFilename

	fi, err := s.store.Put(ctx, stored, r, size)
	if err != nil {
		return nil, fmt.Errorf("write to storage: %w", err)
	}

	doc := deriveDocument(fi)
	doc.Title = meta.Title
	if doc.Title == "" {
		doc.Title = originalFilename
	}
	doc.Category = meta.Category
	doc.Tags = meta.Tags
	doc.FilePath = s.filePath(fi.Name)
	return &doc, nil
}

func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	infos, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list storage: %w", err)
	}

	docs := make([]model.Document, 0, len(infos))
	for _, fi := range infos {
		doc := deriveDocument(fi)
		doc.SizeMB = sizeMB(fi.Size)
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	matches, err := s.matchPrefix(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}

	// First match wins; non-deterministic under a same-second collision.
	doc := deriveDocument(matches[0])
	doc.ID = id
	doc.LastModified = matches[0].ModifiedAt
	doc.FilePath = s.filePath(matches[0].Name)
	return &doc, nil
}

func (s *documentService) FindByIDPrefix(ctx context.Context, id string) ([]model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	matches, err := s.matchPrefix(ctx, id)
	if err != nil {
		return nil, err
	}
	docs := make([]model.Document, 0, len(matches))
	for _, fi := range matches {
		docs = append(docs, deriveDocument(fi))
	}
	return docs, nil
}

func (s *documentService) Download(ctx context.Context, id string) (*DownloadInfo, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	matches, err := s.matchPrefix(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}

	name := matches[0].Name
	if p, ok := s.store.(storage.Presigner); ok {
		u, err := p.PresignGet(ctx, name, downloadURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign download: %w", err)
		}
		return &DownloadInfo{Filename: name, DownloadURL: u}, nil
	}
	return &DownloadInfo{Filename: name, DownloadURL: "/api/download-file/" + name}, nil
}

func (s *documentService) Health(ctx context.Context) (*HealthInfo, error) {
	exists, err := s.store.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("check store: %w", err)
	}
	return &HealthInfo{StoreExists: exists, StorePath: s.store.Location()}, nil
}

// matchPrefix linearly scans the store for filenames starting with id.
func (s *documentService) matchPrefix(ctx context.Context, id string) ([]storage.FileInfo, error) {
	infos, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list storage: %w", err)
	}
	var matches []storage.FileInfo
	for _, fi := range infos {
		if strings.HasPrefix(fi.Name, id) {
			matches = append(matches, fi)
		}
	}
	return matches, nil
}

func (s *documentService) filePath(name string) string {
	return filepath.Join(s.store.Location(), name)
}

// storedNamePattern recognizes the second-granularity timestamp prefix of
// the "{YYYYMMDD_HHMMSS}_{original_name}" convention.
var storedNamePattern = regexp.MustCompile(`^\d{8}_\d{6}_`)

// deriveDocument reconstructs document metadata from a stored filename and
// its stat info. This parsing is the only record the system keeps.
func deriveDocument(fi storage.FileInfo) model.Document {
	id, original := splitStoredName(fi.Name)
	return model.Document{
		ID:           id,
		Filename:     fi.Name,
		OriginalName: original,
		Size:         fi.Size,
		FileType:     fileType(fi.Name),
		UploadDate:   fi.CreatedAt,
	}
}

// splitStoredName separates the ID prefix from the original name. Names
// without any separator are tolerated: the whole name becomes the original
// name and the ID reads "unknown".
func splitStoredName(name string) (id, original string) {
	if storedNamePattern.MatchString(name) {
		return name[:15], name[16:]
	}
	if i := strings.Index(name, "_"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "unknown", name
}

// fileType is the lower-cased extension without the dot, "unknown" when absent.
func fileType(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

func sizeMB(size int64) float64 {
	if size <= 0 {
		return 0
	}
	return math.Round(float64(size)/(1024*1024)*100) / 100
}
