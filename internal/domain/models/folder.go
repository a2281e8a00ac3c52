package models

import (
	"time"
)

type Folder struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ParentID  *string   `json:"parent_id" db:"parent_id"` // NULL = root level
	Name      string    `json:"name" db:"name"`
	Order     int       `json:"order" db:"sort_order"` // sibling sort position
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateFolderRequest struct {
	UserID   string  `json:"-"`
	ParentID *string `json:"parent_id,omitempty"`
	Name     string  `json:"name"`
}

type UpdateFolderRequest struct {
	UserID   string  `json:"-"`
	ParentID *string `json:"parent_id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Order    *int    `json:"order,omitempty"`
}
