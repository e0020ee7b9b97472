package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/model"
	"docvault/internal/service"
)

// currentUser stands in for the caller's identity until the auth layer
// propagates a real one. Callers self-identify; the services take the
// identity as an explicit parameter.
const currentUser = "current_user"

// shareDocumentRequest is the body of POST /api/share-document. Permissions
// defaults to "view" and is otherwise stored as sent, unvalidated.
type shareDocumentRequest struct {
	DocumentID     string   `json:"document_id"`
	ShareWithUsers []string `json:"share_with_users"`
	Permissions    string   `json:"permissions"`
}

// ShareDocument records a share grant. The document reference is not
// checked; a grant can point at a document that never existed.
func ShareDocument(shareSvc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req shareDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
		}
		if req.Permissions == "" {
			req.Permissions = model.PermissionView
		}

		grant, err := shareSvc.Share(c.UserContext(), currentUser, req.DocumentID, req.ShareWithUsers, req.Permissions)
		if err != nil {
			if errors.Is(err, service.ErrDocumentIDRequired) || errors.Is(err, service.ErrRecipientsRequired) {
				return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"status":          "success",
			"message":         "Document shared successfully",
			"shared_document": grant,
		})
	}
}

// SharedWithMe lists every grant joined with its document metadata.
// Grants whose document cannot be resolved are absent from the result.
func SharedWithMe(shareSvc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := shareSvc.SharedWithMe(c.UserContext())
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

// SharedByMe lists the caller's own grants joined with document metadata.
func SharedByMe(shareSvc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := shareSvc.SharedByMe(c.UserContext(), currentUser)
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
