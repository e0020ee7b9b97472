package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/service"
)

// folderCreateRequest is the body of POST /api/folders. ParentID is
// optional and accepted as given, existing folder or not.
type folderCreateRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// CreateFolder stores a new folder node.
func CreateFolder(folderSvc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req folderCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if req.Name == "" {
			return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "folder name is required")
		}

		folder, err := folderSvc.Create(c.UserContext(), req.Name, req.ParentID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(folder)
	}
}

// ListFolders returns all folders in creation order.
func ListFolders(folderSvc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folders, err := folderSvc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"status":  "success",
			"folders": folders,
		})
	}
}

// GetFolder returns a single folder by ID.
func GetFolder(folderSvc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		folder, err := folderSvc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrFolderNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "folder not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"status": "success",
			"folder": folder,
		})
	}
}

// DeleteFolder removes exactly one folder. Children are not reparented or
// deleted; a second delete of the same ID reports not found.
func DeleteFolder(folderSvc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := folderSvc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrFolderNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "folder not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": fmt.Sprintf("Folder %s deleted", id),
		})
	}
}
