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

var ErrFolderNotFound = errors.New("folder not found")

// FolderService defines the use cases for the folder hierarchy. The parent
// reference is taken at face value: no existence check, no cycle check and
// no cascade on delete.
type FolderService interface {
	// Create stores a new folder. parentID may reference a folder that
	// does not exist; the value is echoed back unchecked.
	Create(ctx context.Context, name string, parentID *string) (*model.Folder, error)

	// Get returns a folder by ID.
	Get(ctx context.Context, id string) (*model.Folder, error)

	// List returns all folders in insertion order.
	List(ctx context.Context) ([]model.Folder, error)

	// Delete removes one folder. Children of the deleted folder are left
	// untouched with their dangling parent reference.
	Delete(ctx context.Context, id string) error
}

type folderService struct {
	repo repository.FolderRepository
}

// NewFolderService constructs a new FolderService.
func NewFolderService(repo repository.FolderRepository) FolderService {
	return &folderService{repo: repo}
}

func (s *folderService) Create(ctx context.Context, name string, parentID *string) (*model.Folder, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	folder := &model.Folder{
		ID:        identity.RecordID(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}
	stored, err := s.repo.Create(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("store folder: %w", err)
	}
	return stored, nil
}

func (s *folderService) Get(ctx context.Context, id string) (*model.Folder, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	folder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}
	return folder, nil
}

func (s *folderService) List(ctx context.Context) ([]model.Folder, error) {
	return s.repo.List(ctx)
}

func (s *folderService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFolderNotFound
		}
		return err
	}
	return nil
}
