package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"docvault/internal/config"
)

// localBackend stores files in a single flat directory on disk. The
// directory is the system of record: there is no index, no metadata
// sidecar, and deletion of a file outside the process is the only way a
// document disappears.
type localBackend struct {
	dir string
}

// NewLocal creates a local-disk backend rooted at cfg.Dir. The directory is
// not created here; Put creates it on first use.
func NewLocal(cfg config.UploadConfig) (Backend, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	abs, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	return &localBackend{dir: abs}, nil
}

// Put writes the file in a single attempt. No partial-write cleanup is
// performed on failure.
func (l *localBackend) Put(ctx context.Context, name string, r io.Reader, size int64) (FileInfo, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return FileInfo{}, fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(l.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return FileInfo{}, fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return FileInfo{}, fmt.Errorf("close file: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat file: %w", err)
	}
	return fileInfoFromStat(name, st), nil
}

// List enumerates regular files in directory order. Subdirectories and
// other non-regular entries are skipped. A missing store lists as empty.
func (l *localBackend) List(ctx context.Context) ([]FileInfo, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read upload dir: %w", err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		st, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		infos = append(infos, fileInfoFromStat(e.Name(), st))
	}
	return infos, nil
}

func (l *localBackend) Exists(ctx context.Context) (bool, error) {
	st, err := os.Stat(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return st.IsDir(), nil
}

func (l *localBackend) Location() string {
	return l.dir
}

func fileInfoFromStat(name string, st os.FileInfo) FileInfo {
	// Files are written once and never updated in place, so the
	// modification time stands in for the creation time as well.
	return FileInfo{
		Name:       name,
		Size:       st.Size(),
		CreatedAt:  st.ModTime(),
		ModifiedAt: st.ModTime(),
	}
}
