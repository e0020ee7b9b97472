package model

import "time"

// Folder is a named node in the folder hierarchy. The tree exists only
// implicitly through ParentID: the value is accepted as given, with no
// existence check and no cycle check, so dangling references are possible
// and must be tolerated by consumers.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}
