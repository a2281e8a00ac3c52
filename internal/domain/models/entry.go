package models

import (
	"time"
)

// Entry is a single recorded block of time against a module.
//
// DurationHours is the in-memory unit everywhere in the application;
// persistence stores whole minutes and the conversion happens at that
// boundary only (see repository/postgres), so quarter-hour values like
// 1.25 round-trip exactly.
type Entry struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	ModuleID      string    `json:"module_id" db:"module_id"`
	ActivityType  string    `json:"activity_type" db:"activity_type"`
	Description   string    `json:"description,omitempty" db:"description"`
	DurationHours float64   `json:"duration_hours" db:"duration_minutes"`
	Date          string    `json:"date" db:"entry_date"` // "YYYY-MM-DD"
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type CreateEntryRequest struct {
	UserID        string  `json:"-"`
	ModuleID      string  `json:"module_id"`
	ActivityType  string  `json:"activity_type"`
	Description   string  `json:"description,omitempty"`
	DurationHours float64 `json:"duration_hours"`
	Date          string  `json:"date"`
}

type UpdateEntryRequest struct {
	UserID        string   `json:"-"`
	ModuleID      *string  `json:"module_id,omitempty"`
	ActivityType  *string  `json:"activity_type,omitempty"`
	Description   *string  `json:"description,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Date          *string  `json:"date,omitempty"`
}

// EntryDateLayout is the wire and storage format for Entry.Date.
const EntryDateLayout = "2006-01-02"
