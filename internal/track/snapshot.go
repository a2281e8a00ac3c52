package track

import (
	"sort"

	"tempo/internal/domain/models"
)

// Snapshot is the complete in-memory copy of one user's data at a point
// in time. It is swapped wholesale, never mutated in place: every change
// produces a new Snapshot with a higher Version, and all derived
// structures are pure functions of it.
type Snapshot struct {
	Version int64
	Profile *models.Profile
	Folders []models.Folder
	Modules []models.Module
	// Entries are kept sorted by date descending (created_at descending
	// within a day). Per-module entry lists are filtered from this slice,
	// so their order is a subsequence of the global order.
	Entries []models.Entry
}

// SortEntries orders entries by date descending, newest created first
// within the same date.
func SortEntries(entries []models.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
