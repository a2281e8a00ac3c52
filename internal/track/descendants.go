package track

// IDSet is a set of folder/module ids.
type IDSet map[string]struct{}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Descendants precomputes, for every folder in the forest, the set of its
// own id plus all transitive children's ids. Filtering UIs use it to
// answer "is this module under folder F or any subfolder" in O(1).
//
// Sets are built post-order: a node's set is the union of its children's
// already-computed sets plus itself, and every folder id keys the result
// map exactly once.
func Descendants(roots []*FolderNode) map[string]IDSet {
	index := make(map[string]IDSet)
	for _, root := range roots {
		collectDescendants(root, index)
	}
	return index
}

func collectDescendants(node *FolderNode, index map[string]IDSet) IDSet {
	set := IDSet{node.ID: {}}
	for _, child := range node.Children {
		for id := range collectDescendants(child, index) {
			set[id] = struct{}{}
		}
	}
	index[node.ID] = set
	return set
}
