package models

// Folder groups chats in the sidebar. ParentID points at another folder's ID
// and is not checked here; consumers must handle dangling parents.
type Folder struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Timestamp  int64   `json:"timestamp"`
	ParentID   *string `json:"parent_id,omitempty"`
	IsExpanded bool    `json:"is_expanded"`
}

func (f Folder) RecordID() string       { return f.ID }
func (f Folder) RecordTimestamp() int64 { return f.Timestamp }

func (f Folder) Normalize() Folder {
	if f.ParentID != nil && *f.ParentID == "" {
		f.ParentID = nil
	}
	return f
}

func (f Folder) Clone() Folder {
	if f.ParentID != nil {
		parent := *f.ParentID
		f.ParentID = &parent
	}
	return f
}
