package model

import "time"

// Recognized permission levels for a share grant. Values are documentation
// only: grants are stored with whatever permission string the caller sent.
const (
	PermissionView     = "view"
	PermissionDownload = "download"
	PermissionEdit     = "edit"
)

// ShareGrant links one document to a list of recipients at a permission
// level. DocumentID is a logical reference only; it is not validated against
// the document store, so a grant may point at nothing.
type ShareGrant struct {
	ID          string    `json:"id"`
	DocumentID  string    `json:"document_id"`
	SharedBy    string    `json:"shared_by"`
	SharedWith  []string  `json:"shared_with"`
	Permissions string    `json:"permissions"`
	SharedAt    time.Time `json:"shared_at"`
}

// SharedDocument is the enriched view produced by joining a ShareGrant
// against the document store: document metadata plus the grant fields.
type SharedDocument struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"document_id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	FileType     string    `json:"file_type"`
	UploadDate   time.Time `json:"upload_date"`
	SharedBy     string    `json:"shared_by"`
	SharedWith   []string  `json:"shared_with"`
	Permissions  string    `json:"permissions"`
	SharedAt     time.Time `json:"shared_at"`
}
