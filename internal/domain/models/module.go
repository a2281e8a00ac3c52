package models

import (
	"time"
)

// Module is a trackable project living inside exactly one folder.
// It accumulates hours from the entries logged against it.
type Module struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	FolderID    string    `json:"folder_id" db:"folder_id"`
	Name        string    `json:"name" db:"name"`
	TargetHours *float64  `json:"target_hours,omitempty" db:"target_hours"`
	Notes       string    `json:"notes,omitempty" db:"notes"`
	Order       int       `json:"order" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateModuleRequest struct {
	UserID      string   `json:"-"`
	FolderID    string   `json:"folder_id"`
	Name        string   `json:"name"`
	TargetHours *float64 `json:"target_hours,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

type UpdateModuleRequest struct {
	UserID      string   `json:"-"`
	FolderID    *string  `json:"folder_id,omitempty"`
	Name        *string  `json:"name,omitempty"`
	TargetHours *float64 `json:"target_hours,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	Order       *int     `json:"order,omitempty"`
}
