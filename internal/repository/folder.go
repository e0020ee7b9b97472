package repository

import (
	"context"

	"docvault/internal/model"
)

// FolderRepository defines data access for folders.
//
// ParentID is stored as given: implementations must not check that the
// referenced folder exists, and Delete must not touch children, so folders
// pointing at a deleted parent simply keep their dangling reference.
type FolderRepository interface {
	// Create inserts a new folder record and returns the stored folder.
	Create(ctx context.Context, f *model.Folder) (*model.Folder, error)

	// FindByID returns a folder by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Folder, error)

	// List returns all folders in insertion order.
	List(ctx context.Context) ([]model.Folder, error)

	// Delete removes exactly one folder by ID, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
