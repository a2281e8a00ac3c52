package track

// FlattenedFolder is one row of the pre-order folder listing used by
// folder pickers and filters.
type FlattenedFolder struct {
	ID       string  `json:"id"`
	Path     string  `json:"path"`  // ancestor names joined by " / "
	Depth    int     `json:"depth"` // root = 0
	ParentID *string `json:"parent_id"`
}

// Flatten walks the forest in pre-order, children in their already-sorted
// sibling order, producing one row per folder. The resulting order is the
// visual nesting order of the tree.
func Flatten(roots []*FolderNode) []FlattenedFolder {
	var flat []FlattenedFolder
	for _, root := range roots {
		flat = flattenNode(root, "", 0, flat)
	}
	return flat
}

func flattenNode(node *FolderNode, parentPath string, depth int, flat []FlattenedFolder) []FlattenedFolder {
	path := node.Name
	if parentPath != "" {
		path = parentPath + " / " + node.Name
	}

	flat = append(flat, FlattenedFolder{
		ID:       node.ID,
		Path:     path,
		Depth:    depth,
		ParentID: node.ParentID,
	})

	for _, child := range node.Children {
		flat = flattenNode(child, path, depth+1, flat)
	}
	return flat
}
