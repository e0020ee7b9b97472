package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docvault/internal/storage"
	storeMocks "docvault/internal/storage/mocks"
)

func TestSplitStoredName(t *testing.T) {
	tests := []struct {
		name         string
		stored       string
		wantID       string
		wantOriginal string
	}{
		{
			name:         "timestamp convention",
			stored:       "20240131_154502_report.pdf",
			wantID:       "20240131_154502",
			wantOriginal: "report.pdf",
		},
		{
			name:         "original name containing underscores",
			stored:       "20240131_154502_q1_sales_summary.xlsx",
			wantID:       "20240131_154502",
			wantOriginal: "q1_sales_summary.xlsx",
		},
		{
			name:         "single separator without timestamp",
			stored:       "foo_bar.txt",
			wantID:       "foo",
			wantOriginal: "bar.txt",
		},
		{
			name:         "no separator",
			stored:       "stray.txt",
			wantID:       "unknown",
			wantOriginal: "stray.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, original := splitStoredName(tt.stored)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantOriginal, original)
		})
	}
}

func TestFileType(t *testing.T) {
	assert.Equal(t, "pdf", fileType("20240131_154502_report.PDF"))
	assert.Equal(t, "txt", fileType("notes.txt"))
	assert.Equal(t, "unknown", fileType("README"))
}

func TestSizeMB(t *testing.T) {
	assert.Equal(t, 0.0, sizeMB(0))
	assert.Equal(t, 2.5, sizeMB(2*1024*1024+512*1024))
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path derives metadata from stored name", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		r := strings.NewReader("hello world")
		uploaded := time.Now()
		mStore.On("Put", ctx, mock.MatchedBy(func(name string) bool {
			return storedNamePattern.MatchString(name) && strings.HasSuffix(name, "_report.pdf")
		}), r, int64(11)).Return(func(ctx context.Context, name string, r io.Reader, size int64) storage.FileInfo {
			return storage.FileInfo{Name: name, Size: size, CreatedAt: uploaded, ModifiedAt: uploaded}
		}, nil)
		mStore.On("Location").Return("/srv/uploads")

		doc, err := svc.Upload(ctx, r, "report.pdf", 11, UploadMeta{})
		require.NoError(t, err)

		assert.Len(t, doc.ID, 15)
		assert.Equal(t, doc.ID+"_report.pdf", doc.Filename)
		assert.Equal(t, "report.pdf", doc.OriginalName)
		assert.EqualValues(t, 11, doc.Size)
		assert.Equal(t, "pdf", doc.FileType)
		// Title falls back to the original filename.
		assert.Equal(t, "report.pdf", doc.Title)
		assert.Equal(t, "/srv/uploads/"+doc.Filename, doc.FilePath)
		mStore.AssertExpectations(t)
	})

	t.Run("meta fields echoed but not part of derivation", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		r := strings.NewReader("x")
		mStore.On("Put", ctx, mock.Anything, r, int64(1)).
			Return(func(ctx context.Context, name string, r io.Reader, size int64) storage.FileInfo {
				return storage.FileInfo{Name: name, Size: size}
			}, nil)
		mStore.On("Location").Return("/srv/uploads")

		doc, err := svc.Upload(ctx, r, "notes.txt", 1, UploadMeta{
			Title:    "Meeting notes",
			Category: "Work",
			Tags:     []string{"q1", "planning"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Meeting notes", doc.Title)
		assert.Equal(t, "Work", doc.Category)
		assert.Equal(t, []string{"q1", "planning"}, doc.Tags)
		mStore.AssertExpectations(t)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc := NewDocumentService(new(storeMocks.MockBackend))

		_, err := svc.Upload(ctx, nil, "report.pdf", 0, UploadMeta{})

		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("empty filename", func(t *testing.T) {
		svc := NewDocumentService(new(storeMocks.MockBackend))

		_, err := svc.Upload(ctx, strings.NewReader("x"), "", 1, UploadMeta{})

		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		r := strings.NewReader("x")
		mStore.On("Put", ctx, mock.Anything, r, int64(1)).
			Return(storage.FileInfo{}, errors.New("disk full"))

		_, err := svc.Upload(ctx, r, "report.pdf", 1, UploadMeta{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "write to storage: disk full")
		mStore.AssertExpectations(t)
	})
}

func TestDocumentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("derives every entry and tolerates unconventional names", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		uploaded := time.Date(2024, 1, 31, 15, 45, 2, 0, time.UTC)
		mStore.On("List", ctx).Return([]storage.FileInfo{
			{Name: "20240131_154502_report.pdf", Size: 2 * 1024 * 1024, CreatedAt: uploaded},
			{Name: "stray.txt", Size: 3, CreatedAt: uploaded},
		}, nil)

		docs, err := svc.List(ctx)
		require.NoError(t, err)

		require.Len(t, docs, 2)
		assert.Equal(t, "20240131_154502", docs[0].ID)
		assert.Equal(t, "report.pdf", docs[0].OriginalName)
		assert.Equal(t, 2.0, docs[0].SizeMB)
		assert.Equal(t, "unknown", docs[1].ID)
		assert.Equal(t, "stray.txt", docs[1].OriginalName)
		mStore.AssertExpectations(t)
	})

	t.Run("empty store lists empty", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		mStore.On("List", ctx).Return([]storage.FileInfo{}, nil)

		docs, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("storage error", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		mStore.On("List", ctx).Return(nil, errors.New("io error"))

		_, err := svc.List(ctx)
		assert.Error(t, err)
	})
}

func TestDocumentService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("first prefix match wins", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		modified := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
		mStore.On("List", ctx).Return([]storage.FileInfo{
			{Name: "20240131_154502_report.pdf", Size: 10, ModifiedAt: modified},
			{Name: "20240131_154502_notes.txt", Size: 20, ModifiedAt: modified},
			{Name: "20240201_090000_other.doc", Size: 30},
		}, nil)
		mStore.On("Location").Return("/srv/uploads")

		doc, err := svc.Get(ctx, "20240131_154502")
		require.NoError(t, err)

		// The detail view echoes the requested ID.
		assert.Equal(t, "20240131_154502", doc.ID)
		assert.Equal(t, "20240131_154502_report.pdf", doc.Filename)
		assert.Equal(t, modified, doc.LastModified)
		assert.Equal(t, "/srv/uploads/20240131_154502_report.pdf", doc.FilePath)
		mStore.AssertExpectations(t)
	})

	t.Run("repeated lookups are order stable", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		mStore.On("List", ctx).Return([]storage.FileInfo{
			{Name: "20240131_154502_a.txt"},
			{Name: "20240131_154502_b.txt"},
		}, nil)

		first, err := svc.FindByIDPrefix(ctx, "20240131_154502")
		require.NoError(t, err)
		second, err := svc.FindByIDPrefix(ctx, "20240131_154502")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("not found", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		mStore.On("List", ctx).Return([]storage.FileInfo{
			{Name: "20240131_154502_report.pdf"},
		}, nil)

		_, err := svc.Get(ctx, "19990101_000000")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewDocumentService(new(storeMocks.MockBackend))

		_, err := svc.Get(ctx, "")

		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestDocumentService_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("static path without presigner", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		mStore.On("List", ctx).Return([]storage.FileInfo{
			{Name: "20240131_154502_report.pdf"},
		}, nil)

		info, err := svc.Download(ctx, "20240131_154502")
		require.NoError(t, err)

		assert.Equal(t, "20240131_154502_report.pdf", info.Filename)
		assert.Equal(t, "/api/download-file/20240131_154502_report.pdf", info.DownloadURL)
	})

	t.Run("presigned URL when backend supports it", func(t *testing.T) {
		mStore := new(storeMocks.MockPresignBackend)
		svc := NewDocumentService(mStore)

		mStore.On("List", ctx).Return([]storage.FileInfo{
			{Name: "20240131_154502_report.pdf"},
		}, nil)
		mStore.On("PresignGet", ctx, "20240131_154502_report.pdf", downloadURLExpiry).
			Return("https://minio.example/presigned", nil)

		info, err := svc.Download(ctx, "20240131_154502")
		require.NoError(t, err)

		assert.Equal(t, "https://minio.example/presigned", info.DownloadURL)
		mStore.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		mStore.On("List", ctx).Return([]storage.FileInfo{}, nil)

		_, err := svc.Download(ctx, "20240131_154502")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDocumentService_Health(t *testing.T) {
	ctx := context.Background()

	t.Run("reports existence and location", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		mStore.On("Exists", ctx).Return(true, nil)
		mStore.On("Location").Return("/srv/uploads")

		h, err := svc.Health(ctx)
		require.NoError(t, err)

		assert.True(t, h.StoreExists)
		assert.Equal(t, "/srv/uploads", h.StorePath)
	})

	t.Run("backend error", func(t *testing.T) {
		mStore := new(storeMocks.MockBackend)
		svc := NewDocumentService(mStore)

		mStore.On("Exists", ctx).Return(false, errors.New("unreachable"))

		_, err := svc.Health(ctx)
		assert.Error(t, err)
	})
}
