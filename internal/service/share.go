package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"docvault/internal/identity"
	"docvault/internal/model"
	"docvault/internal/repository"
)

var (
	ErrDocumentIDRequired = errors.New("document id is required")
	ErrRecipientsRequired = errors.New("recipients are required")
)

// ShareService defines the sharing ledger and its aggregation against the
// document store. Grants reference documents by logical ID only; nothing
// checks that the document exists, at share time or later.
type ShareService interface {
	// Share records a grant of documentID to recipients at the given
	// permission level. sharedBy is the caller-supplied identity; the
	// permission string is stored as sent, recognized value or not.
	Share(ctx context.Context, sharedBy, documentID string, recipients []string, permission string) (*model.ShareGrant, error)

	// SharedWithMe joins every grant against the document store by ID
	// prefix. Grants whose document no longer (or never did) exist are
	// silently dropped from the result.
	SharedWithMe(ctx context.Context) ([]model.SharedDocument, error)

	// SharedByMe is the same join filtered to grants created by user.
	SharedByMe(ctx context.Context, user string) ([]model.SharedDocument, error)
}

type shareService struct {
	repo repository.ShareRepository
	docs DocumentService
}

// NewShareService constructs a new ShareService joining the given ledger
// against the given document store.
func NewShareService(repo repository.ShareRepository, docs DocumentService) ShareService {
	return &shareService{repo: repo, docs: docs}
}

func (s *shareService) Share(ctx context.Context, sharedBy, documentID string, recipients []string, permission string) (*model.ShareGrant, error) {
	if documentID == "" {
		return nil, ErrDocumentIDRequired
	}
	if len(recipients) == 0 {
		return nil, ErrRecipientsRequired
	}

	grant := &model.ShareGrant{
		ID:          identity.RecordID(),
		DocumentID:  documentID,
		SharedBy:    sharedBy,
		SharedWith:  recipients,
		Permissions: permission,
		SharedAt:    time.Now(),
	}
	stored, err := s.repo.Create(ctx, grant)
	if err != nil {
		return nil, fmt.Errorf("store grant: %w", err)
	}
	return stored, nil
}

func (s *shareService) SharedWithMe(ctx context.Context) ([]model.SharedDocument, error) {
	grants, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, grants)
}

func (s *shareService) SharedByMe(ctx context.Context, user string) ([]model.SharedDocument, error) {
	grants, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := grants[:0:0]
	for _, g := range grants {
		if g.SharedBy == user {
			mine = append(mine, g)
		}
	}
	return s.enrich(ctx, mine)
}

// enrich joins grants against document store prefix lookups. A grant whose
// DocumentID matches no stored file contributes nothing to the result; a
// grant whose ID collides across documents contributes one record per match.
func (s *shareService) enrich(ctx context.Context, grants []model.ShareGrant) ([]model.SharedDocument, error) {
	out := make([]model.SharedDocument, 0, len(grants))
	for _, g := range grants {
		docs, err := s.docs.FindByIDPrefix(ctx, g.DocumentID)
		if err != nil {
			return nil, fmt.Errorf("resolve document %s: %w", g.DocumentID, err)
		}
		for _, d := range docs {
			out = append(out, model.SharedDocument{
				ID:           g.ID,
				DocumentID:   g.DocumentID,
				Filename:     d.Filename,
				OriginalName: d.OriginalName,
				Size:         d.Size,
				FileType:     d.FileType,
				UploadDate:   d.UploadDate,
				SharedBy:     g.SharedBy,
				SharedWith:   g.SharedWith,
				Permissions:  g.Permissions,
				SharedAt:     g.SharedAt,
			})
		}
	}
	return out, nil
}
