package track

import (
	"sort"

	"tempo/internal/domain/models"
)

// FolderNode is a folder with its nested children, its own modules, and
// the rolled-up hour total for the whole subtree.
type FolderNode struct {
	models.Folder
	Children []*FolderNode          `json:"children"`
	Modules  []*ModuleWithRelations `json:"modules"`
	// TotalHours sums the durations of every entry reachable through
	// this node's modules and all descendant folders' modules.
	TotalHours float64 `json:"total_hours"`
}

// BuildTree constructs the folder forest by recursive descent from the
// root level (parent_id NULL). Siblings are ordered by their sort
// position ascending. Folders whose parent_id references a folder that
// does not exist never match any node during the walk and are left out
// of the tree (orphans are invisible rather than promoted to roots).
//
// Cycles in parent_id references are not detected here; they are
// rejected at write time by the folder service, so a stored snapshot is
// always acyclic.
//
// Totals aggregate bottom-up during construction, which is why modules
// must already carry their TotalHours from JoinModules.
func BuildTree(folders []models.Folder, modulesByFolder map[string][]*ModuleWithRelations) []*FolderNode {
	return buildLevel(folders, nil, modulesByFolder)
}

func buildLevel(folders []models.Folder, parentID *string, modulesByFolder map[string][]*ModuleWithRelations) []*FolderNode {
	var siblings []models.Folder
	for _, folder := range folders {
		if sameParent(folder.ParentID, parentID) {
			siblings = append(siblings, folder)
		}
	}
	sort.SliceStable(siblings, func(i, j int) bool {
		return siblings[i].Order < siblings[j].Order
	})

	nodes := make([]*FolderNode, 0, len(siblings))
	for _, folder := range siblings {
		modules := modulesByFolder[folder.ID]
		if modules == nil {
			modules = []*ModuleWithRelations{}
		}

		node := &FolderNode{
			Folder:   folder,
			Children: buildLevel(folders, &folder.ID, modulesByFolder),
			Modules:  modules,
		}

		for _, module := range node.Modules {
			node.TotalHours += module.TotalHours
		}
		for _, child := range node.Children {
			node.TotalHours += child.TotalHours
		}

		nodes = append(nodes, node)
	}

	return nodes
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
