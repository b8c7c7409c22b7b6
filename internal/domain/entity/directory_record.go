package entity

import "time"

// DirectoryRecord is a display-name entry in the user directory.
// ID is assigned by the store on creation and never changes afterwards.
// Username is free text: it may be empty and is not unique.
type DirectoryRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
