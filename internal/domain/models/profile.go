package models

import (
	"time"
)

// Profile holds per-user settings. ID equals the authenticated user id.
type Profile struct {
	ID                string    `json:"id" db:"id"`
	DisplayName       string    `json:"display_name" db:"display_name"`
	Email             string    `json:"email" db:"email"`
	WeeklyTargetHours *float64  `json:"weekly_target_hours,omitempty" db:"weekly_target_hours"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateProfileRequest struct {
	UserID            string   `json:"-"`
	DisplayName       *string  `json:"display_name,omitempty"`
	WeeklyTargetHours *float64 `json:"weekly_target_hours,omitempty"`
}

// State is the full dataset for one user, fetched in a single round trip
// and swapped into the client-side snapshot atomically.
type State struct {
	Profile *Profile `json:"profile"`
	Folders []Folder `json:"folders"`
	Modules []Module `json:"modules"`
	Entries []Entry  `json:"entries"`
}
