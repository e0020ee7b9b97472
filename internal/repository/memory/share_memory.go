package memory

import (
	"context"
	"sync"

	"docvault/internal/model"
	"docvault/internal/repository"
)

// ShareMemory is an in-memory implementation of repository.ShareRepository.
// Safe for concurrent use.
type ShareMemory struct {
	mu     sync.RWMutex
	grants map[string]model.ShareGrant
	order  []string
}

// NewShareMemory creates an empty in-memory share repository.
func NewShareMemory() *ShareMemory {
	return &ShareMemory{grants: make(map[string]model.ShareGrant)}
}

var _ repository.ShareRepository = (*ShareMemory)(nil)

// Create stores the grant as given. DocumentID and Permissions are not
// validated here; dangling and unrecognized values are accepted.
func (r *ShareMemory) Create(ctx context.Context, g *model.ShareGrant) (*model.ShareGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.grants[g.ID]; !exists {
		r.order = append(r.order, g.ID)
	}
	r.grants[g.ID] = *g

	out := *g
	return &out, nil
}

func (r *ShareMemory) List(ctx context.Context) ([]model.ShareGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.ShareGrant, 0, len(r.order))
	for _, id := range r.order {
		if g, ok := r.grants[id]; ok {
			items = append(items, g)
		}
	}
	return items, nil
}
