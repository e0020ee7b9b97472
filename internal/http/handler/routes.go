package handler

import (
	"github.com/gofiber/fiber/v2"

	"docvault/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; all business logic lives in the injected services.
func RegisterRoutes(app *fiber.App, docSvc service.DocumentService, folderSvc service.FolderService, shareSvc service.ShareService) {
	// Liveness probe outside the API group
	app.Get("/healthz", LivenessProbe())

	app.Post("/auth/login", Login())

	api := app.Group("/api")

	api.Get("/health", HealthCheck(docSvc))

	api.Post("/upload", UploadDocument(docSvc))
	api.Get("/documents", ListDocuments(docSvc))
	api.Get("/documents/:id", GetDocument(docSvc))
	api.Get("/download/:id", DownloadDocument(docSvc))

	api.Post("/folders", CreateFolder(folderSvc))
	api.Get("/folders", ListFolders(folderSvc))
	api.Get("/folders/:id", GetFolder(folderSvc))
	api.Delete("/folders/:id", DeleteFolder(folderSvc))

	api.Post("/share-document", ShareDocument(shareSvc))
	api.Get("/shared-with-me", SharedWithMe(shareSvc))
	api.Get("/shared-by-me", SharedByMe(shareSvc))
}
