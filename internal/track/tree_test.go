package track

import (
	"testing"
	"time"

	"tempo/internal/domain/models"
)

func strptr(s string) *string { return &s }

func testFolder(id, name string, parentID *string, order int) models.Folder {
	return models.Folder{
		ID:       id,
		UserID:   "user-1",
		ParentID: parentID,
		Name:     name,
		Order:    order,
	}
}

func testModule(id, folderID string, order int) models.Module {
	return models.Module{
		ID:       id,
		UserID:   "user-1",
		FolderID: folderID,
		Name:     id,
		Order:    order,
	}
}

func testEntry(id, moduleID string, hours float64, date string) models.Entry {
	return models.Entry{
		ID:            id,
		UserID:        "user-1",
		ModuleID:      moduleID,
		ActivityType:  "Reading",
		DurationHours: hours,
		Date:          date,
		CreatedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// fixture: A(root) -> A1, A2; M1 in A1 totals 3.5h, M2 in A2 totals 2h
func fixtureSnapshot() *Snapshot {
	entries := []models.Entry{
		testEntry("e3", "M2", 2, "2024-03-03"),
		testEntry("e2", "M1", 1.5, "2024-03-02"),
		testEntry("e1", "M1", 2, "2024-03-01"),
	}
	return &Snapshot{
		Version: 1,
		Folders: []models.Folder{
			testFolder("A", "A", nil, 0),
			testFolder("A1", "A1", strptr("A"), 0),
			testFolder("A2", "A2", strptr("A"), 1),
		},
		Modules: []models.Module{
			testModule("M1", "A1", 0),
			testModule("M2", "A2", 0),
		},
		Entries: entries,
	}
}

func mustDerive(t *testing.T, snap *Snapshot) *Derived {
	t.Helper()
	derived, err := Derive(snap)
	if err != nil {
		t.Fatalf("Derive() unexpected error: %v", err)
	}
	return derived
}

func TestBuildTreeAggregation(t *testing.T) {
	derived := mustDerive(t, fixtureSnapshot())

	if len(derived.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(derived.Roots))
	}
	root := derived.Roots[0]
	if root.ID != "A" {
		t.Errorf("root = %s, want A", root.ID)
	}
	if root.TotalHours != 5.5 {
		t.Errorf("A.TotalHours = %v, want 5.5", root.TotalHours)
	}

	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children of A, got %d", len(root.Children))
	}
	if root.Children[0].ID != "A1" || root.Children[1].ID != "A2" {
		t.Errorf("children order = [%s %s], want [A1 A2]", root.Children[0].ID, root.Children[1].ID)
	}
	if root.Children[0].TotalHours != 3.5 {
		t.Errorf("A1.TotalHours = %v, want 3.5", root.Children[0].TotalHours)
	}
	if root.Children[1].TotalHours != 2 {
		t.Errorf("A2.TotalHours = %v, want 2", root.Children[1].TotalHours)
	}
}

func TestBuildTreeSiblingOrder(t *testing.T) {
	folders := []models.Folder{
		testFolder("c", "Gamma", nil, 2),
		testFolder("a", "Alpha", nil, 0),
		testFolder("b", "Beta", nil, 1),
	}

	roots := BuildTree(folders, nil)

	got := []string{roots[0].ID, roots[1].ID, roots[2].ID}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("root order = %v, want %v", got, want)
		}
	}
}

func TestBuildTreeOrphanExcluded(t *testing.T) {
	folders := []models.Folder{
		testFolder("A", "A", nil, 0),
		testFolder("lost", "Lost", strptr("gone"), 0),
	}

	roots := BuildTree(folders, nil)

	if len(roots) != 1 || roots[0].ID != "A" {
		t.Fatalf("expected only folder A in tree, got %d roots", len(roots))
	}
}

func TestBuildTreeEmptyFolderZeroTotal(t *testing.T) {
	roots := BuildTree([]models.Folder{testFolder("A", "A", nil, 0)}, nil)
	if roots[0].TotalHours != 0 {
		t.Errorf("empty folder TotalHours = %v, want 0", roots[0].TotalHours)
	}
	if len(roots[0].Modules) != 0 {
		t.Errorf("empty folder Modules = %d, want 0", len(roots[0].Modules))
	}
}

func TestBuildTreeEveryFolderOnceAtDepth(t *testing.T) {
	// three-level chain plus a second root
	folders := []models.Folder{
		testFolder("r1", "R1", nil, 0),
		testFolder("r2", "R2", nil, 1),
		testFolder("c1", "C1", strptr("r1"), 0),
		testFolder("g1", "G1", strptr("c1"), 0),
	}

	flat := Flatten(BuildTree(folders, nil))

	if len(flat) != len(folders) {
		t.Fatalf("flattened %d folders, want %d", len(flat), len(folders))
	}

	wantDepth := map[string]int{"r1": 0, "r2": 0, "c1": 1, "g1": 2}
	seen := map[string]int{}
	for _, f := range flat {
		seen[f.ID]++
		if f.Depth != wantDepth[f.ID] {
			t.Errorf("folder %s depth = %d, want %d", f.ID, f.Depth, wantDepth[f.ID])
		}
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("folder %s appears %d times", id, count)
		}
	}
}

func TestFlattenPathsAndOrder(t *testing.T) {
	derived := mustDerive(t, fixtureSnapshot())

	wantPaths := []string{"A", "A / A1", "A / A2"}
	wantDepths := []int{0, 1, 1}

	if len(derived.Flattened) != len(wantPaths) {
		t.Fatalf("flattened length = %d, want %d", len(derived.Flattened), len(wantPaths))
	}
	for i, f := range derived.Flattened {
		if f.Path != wantPaths[i] {
			t.Errorf("flattened[%d].Path = %q, want %q", i, f.Path, wantPaths[i])
		}
		if f.Depth != wantDepths[i] {
			t.Errorf("flattened[%d].Depth = %d, want %d", i, f.Depth, wantDepths[i])
		}
	}
}

func TestDescendants(t *testing.T) {
	derived := mustDerive(t, fixtureSnapshot())

	tests := []struct {
		folder string
		want   []string
		not    []string
	}{
		{"A", []string{"A", "A1", "A2"}, nil},
		{"A1", []string{"A1"}, []string{"A", "A2"}},
		{"A2", []string{"A2"}, []string{"A", "A1"}},
	}

	if len(derived.Descendants) != 3 {
		t.Fatalf("descendant index covers %d folders, want 3", len(derived.Descendants))
	}

	for _, tt := range tests {
		set := derived.Descendants[tt.folder]
		if len(set) != len(tt.want) {
			t.Errorf("descendants(%s) size = %d, want %d", tt.folder, len(set), len(tt.want))
		}
		for _, id := range tt.want {
			if !set.Contains(id) {
				t.Errorf("descendants(%s) missing %s", tt.folder, id)
			}
		}
		for _, id := range tt.not {
			if set.Contains(id) {
				t.Errorf("descendants(%s) should not contain %s", tt.folder, id)
			}
		}
	}
}
