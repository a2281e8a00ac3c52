// Package stats computes the dashboard aggregates shown by the
// application shell: the daily activity heatmap, the per-root-folder
// hour distribution, and progress toward module and weekly targets.
// Everything here is a pure function over the derived snapshot data.
package stats

import (
	"time"

	"tempo/internal/domain/models"
	"tempo/internal/track"
)

// DayTotal is the total logged time for one calendar day.
type DayTotal struct {
	Date  string  `json:"date"` // "YYYY-MM-DD"
	Hours float64 `json:"hours"`
}

// Heatmap sums entry durations per date.
func Heatmap(entries []models.Entry) map[string]float64 {
	totals := make(map[string]float64)
	for _, entry := range entries {
		totals[entry.Date] += entry.DurationHours
	}
	return totals
}

// LastDays returns one DayTotal per day for the n days ending at now,
// oldest first, including zero days, ready for heatmap rendering.
func LastDays(entries []models.Entry, now time.Time, n int) []DayTotal {
	totals := Heatmap(entries)
	days := make([]DayTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(models.EntryDateLayout)
		days = append(days, DayTotal{Date: date, Hours: totals[date]})
	}
	return days
}

// FolderShare is one root folder's slice of the total logged hours.
type FolderShare struct {
	FolderID string  `json:"folder_id"`
	Name     string  `json:"name"`
	Hours    float64 `json:"hours"`
	Fraction float64 `json:"fraction"` // 0 when nothing is logged anywhere
}

// Distribution reports how logged hours split across the root folders,
// using the tree's rolled-up totals.
func Distribution(roots []*track.FolderNode) []FolderShare {
	var total float64
	for _, root := range roots {
		total += root.TotalHours
	}

	shares := make([]FolderShare, 0, len(roots))
	for _, root := range roots {
		share := FolderShare{
			FolderID: root.ID,
			Name:     root.Name,
			Hours:    root.TotalHours,
		}
		if total > 0 {
			share.Fraction = root.TotalHours / total
		}
		shares = append(shares, share)
	}
	return shares
}

// ModuleProgress is a module's logged hours against its target.
type ModuleProgress struct {
	ModuleID  string  `json:"module_id"`
	Name      string  `json:"name"`
	Hours     float64 `json:"hours"`
	Target    float64 `json:"target"`
	Fraction  float64 `json:"fraction"` // may exceed 1 when over target
	Remaining float64 `json:"remaining"`
}

// Progress returns target progress for every module that has a target,
// in the order the modules were given.
func Progress(modules []*track.ModuleWithRelations) []ModuleProgress {
	var progress []ModuleProgress
	for _, module := range modules {
		if module.TargetHours == nil || *module.TargetHours <= 0 {
			continue
		}
		target := *module.TargetHours
		remaining := target - module.TotalHours
		if remaining < 0 {
			remaining = 0
		}
		progress = append(progress, ModuleProgress{
			ModuleID:  module.ID,
			Name:      module.Name,
			Hours:     module.TotalHours,
			Target:    target,
			Fraction:  module.TotalHours / target,
			Remaining: remaining,
		})
	}
	return progress
}

// WeekTotal sums the hours logged in the week containing now
// (weeks start Monday).
func WeekTotal(entries []models.Entry, now time.Time) float64 {
	monday := now.AddDate(0, 0, -mondayOffset(now.Weekday()))
	start := monday.Format(models.EntryDateLayout)
	end := monday.AddDate(0, 0, 6).Format(models.EntryDateLayout)

	var total float64
	for _, entry := range entries {
		if entry.Date >= start && entry.Date <= end {
			total += entry.DurationHours
		}
	}
	return total
}

func mondayOffset(day time.Weekday) int {
	if day == time.Sunday {
		return 6
	}
	return int(day - time.Monday)
}
