// Package memory provides mutex-guarded in-memory implementations of the
// repository interfaces. State lives for the process lifetime only and is
// discarded on shutdown; the lack of persistence is a deliberate property
// of the system, isolated here behind the repository interfaces.
package memory

import (
	"context"
	"sync"

	"docvault/internal/model"
	"docvault/internal/repository"
)

// FolderMemory is an in-memory implementation of repository.FolderRepository.
// Safe for concurrent use.
type FolderMemory struct {
	mu      sync.RWMutex
	folders map[string]model.Folder
	order   []string
}

// NewFolderMemory creates an empty in-memory folder repository.
func NewFolderMemory() *FolderMemory {
	return &FolderMemory{folders: make(map[string]model.Folder)}
}

var _ repository.FolderRepository = (*FolderMemory)(nil)

// Create stores the folder as given. A duplicate ID overwrites the previous
// entry (last write wins), matching the collision tolerance of timestamp IDs.
func (r *FolderMemory) Create(ctx context.Context, f *model.Folder) (*model.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.folders[f.ID]; !exists {
		r.order = append(r.order, f.ID)
	}
	r.folders[f.ID] = *f

	out := *f
	return &out, nil
}

func (r *FolderMemory) FindByID(ctx context.Context, id string) (*model.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.folders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := f
	return &out, nil
}

func (r *FolderMemory) List(ctx context.Context) ([]model.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Folder, 0, len(r.order))
	for _, id := range r.order {
		if f, ok := r.folders[id]; ok {
			items = append(items, f)
		}
	}
	return items, nil
}

// Delete removes the entry only. Children keep their parent_id untouched.
func (r *FolderMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.folders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.folders, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
