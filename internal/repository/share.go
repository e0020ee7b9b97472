package repository

import (
	"context"

	"docvault/internal/model"
)

// ShareRepository defines data access for share grants. A grant is active
// from creation until the process exits; there is no revocation and no
// status field.
type ShareRepository interface {
	// Create inserts a new share grant and returns the stored grant.
	Create(ctx context.Context, g *model.ShareGrant) (*model.ShareGrant, error)

	// List returns all share grants in insertion order.
	List(ctx context.Context) ([]model.ShareGrant, error)
}
