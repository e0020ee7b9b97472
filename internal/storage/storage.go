package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the file storage abstraction behind the document
// store. The backend holds opaque bytes under flat names; all metadata
// interpretation (the "{id}_{name}" convention) happens above this layer.

// FileInfo describes one stored file. CreatedAt reflects the storage
// layer's creation timestamp and ModifiedAt its modification timestamp;
// files are write-once, so the two usually agree.
type FileInfo struct {
	Name       string
	Size       int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Backend is the storage interface the document store is built on.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Put writes a file under the given name, creating the store if absent.
	// Existing files with the same name are overwritten silently.
	Put(ctx context.Context, name string, r io.Reader, size int64) (FileInfo, error)

	// List enumerates every stored file. Ordering is the backend's native
	// enumeration order and must be treated as unspecified.
	List(ctx context.Context) ([]FileInfo, error)

	// Exists reports whether the store itself (directory or bucket) is present.
	Exists(ctx context.Context) (bool, error)

	// Location returns a human-readable absolute location of the store,
	// used by the health probe.
	Location() string
}

// Presigner is implemented by backends that can mint time-limited download
// URLs. Backends without it fall back to a static download path.
type Presigner interface {
	PresignGet(ctx context.Context, name string, expiry time.Duration) (string, error)
}
