package model

import "time"

// Document is the metadata view of a stored file. Nothing here is persisted
// as a record: every field is derived per request from the storage-layer
// filename ("{id}_{original_name}") and file stat information.
//
// Title, Category and Tags only appear on the upload response echo; they are
// not written anywhere and are absent from later listings.
type Document struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Title        string    `json:"title,omitempty"`
	Category     string    `json:"category,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Size         int64     `json:"size"`
	SizeMB       float64   `json:"size_mb,omitempty"`
	FileType     string    `json:"file_type"`
	UploadDate   time.Time `json:"upload_date"`
	LastModified time.Time `json:"last_modified,omitempty"`
	FilePath     string    `json:"file_path,omitempty"`
}
