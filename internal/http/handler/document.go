package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/service"
)

// serviceName identifies the API in the health probe response.
const serviceName = "docvault"

// UploadDocument handles multipart uploads (field name: file). The optional
// title, category and tags form fields are echoed on the response only;
// they are not persisted anywhere.
func UploadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		meta := service.UploadMeta{
			Title:    c.FormValue("title"),
			Category: c.FormValue("category", "General"),
			Tags:     splitTags(c.FormValue("tags")),
		}

		doc, err := docSvc.Upload(c.UserContext(), f, fh.Filename, fh.Size, meta)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status":   "success",
			"message":  "Document uploaded successfully",
			"document": doc,
		})
	}
}

// ListDocuments returns every stored document. No filters, no pagination.
func ListDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := docSvc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"status":    "success",
			"count":     len(docs),
			"documents": docs,
		})
	}
}

// GetDocument resolves an ID by filename prefix and returns the first match.
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		doc, err := docSvc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", fmt.Sprintf("document with ID %s not found", id))
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"status":   "success",
			"document": doc,
		})
	}
}

// DownloadDocument resolves an ID to a download URL. Byte transfer itself
// is not handled here.
func DownloadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		info, err := docSvc.Download(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", fmt.Sprintf("document with ID %s not found", id))
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"status":       "success",
			"message":      fmt.Sprintf("Document %s found", id),
			"filename":     info.Filename,
			"download_url": info.DownloadURL,
		})
	}
}

// HealthCheck reports the document store's presence and absolute location.
func HealthCheck(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h, err := docSvc.Health(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.JSON(fiber.Map{
			"status":            "healthy",
			"service":           serviceName,
			"timestamp":         time.Now().Format(time.RFC3339),
			"upload_dir_exists": h.StoreExists,
			"upload_dir":        h.StorePath,
		})
	}
}

// LivenessProbe is a bare liveness signal.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
