package track

import (
	"fmt"
	"sort"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
)

// ModuleWithRelations is a module enriched with its resolved folder and
// the entries logged against it.
type ModuleWithRelations struct {
	models.Module
	Folder     *models.Folder `json:"folder"`
	Entries    []models.Entry `json:"entries"`
	TotalHours float64        `json:"total_hours"`
}

// JoinModules resolves each module's owning folder and attaches its
// entries, filtered from the globally date-descending entry list (the
// per-module order is a subsequence of the global order, never re-sorted).
// TotalHours is the plain sum of the attached entries' durations.
//
// A module whose folder_id has no matching folder aborts the join with
// domain.ErrIntegrity: the snapshot is inconsistent and producing a
// record with a nil folder would only push the fault downstream.
func JoinModules(modules []models.Module, folders []models.Folder, entries []models.Entry) ([]*ModuleWithRelations, error) {
	folderByID := make(map[string]*models.Folder, len(folders))
	for i := range folders {
		folderByID[folders[i].ID] = &folders[i]
	}

	entriesByModule := make(map[string][]models.Entry, len(modules))
	for _, entry := range entries {
		entriesByModule[entry.ModuleID] = append(entriesByModule[entry.ModuleID], entry)
	}

	joined := make([]*ModuleWithRelations, 0, len(modules))
	for _, module := range modules {
		folder, ok := folderByID[module.FolderID]
		if !ok {
			return nil, fmt.Errorf("module %s references missing folder %s: %w", module.ID, module.FolderID, domain.ErrIntegrity)
		}

		moduleEntries := entriesByModule[module.ID]
		if moduleEntries == nil {
			moduleEntries = []models.Entry{}
		}

		var total float64
		for _, entry := range moduleEntries {
			total += entry.DurationHours
		}

		joined = append(joined, &ModuleWithRelations{
			Module:     module,
			Folder:     folder,
			Entries:    moduleEntries,
			TotalHours: total,
		})
	}

	return joined, nil
}

// GroupByFolder indexes joined modules by their owning folder, each group
// sorted by sibling order ascending. This is the order a folder's module
// list renders in, and the first element is the default module for new
// entry forms.
func GroupByFolder(modules []*ModuleWithRelations) map[string][]*ModuleWithRelations {
	grouped := make(map[string][]*ModuleWithRelations)
	for _, module := range modules {
		grouped[module.FolderID] = append(grouped[module.FolderID], module)
	}
	for _, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Order < group[j].Order
		})
	}
	return grouped
}
