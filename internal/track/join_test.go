package track

import (
	"errors"
	"testing"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
)

func TestJoinModulesTotals(t *testing.T) {
	snap := fixtureSnapshot()

	modules, err := JoinModules(snap.Modules, snap.Folders, snap.Entries)
	if err != nil {
		t.Fatalf("JoinModules() unexpected error: %v", err)
	}

	byID := map[string]*ModuleWithRelations{}
	for _, m := range modules {
		byID[m.ID] = m
	}

	if got := byID["M1"].TotalHours; got != 3.5 {
		t.Errorf("M1.TotalHours = %v, want 3.5", got)
	}
	if got := byID["M2"].TotalHours; got != 2 {
		t.Errorf("M2.TotalHours = %v, want 2", got)
	}
	if byID["M1"].Folder == nil || byID["M1"].Folder.ID != "A1" {
		t.Errorf("M1 folder not resolved to A1")
	}
}

func TestJoinModulesEntriesKeepGlobalOrder(t *testing.T) {
	snap := fixtureSnapshot()

	modules, err := JoinModules(snap.Modules, snap.Folders, snap.Entries)
	if err != nil {
		t.Fatalf("JoinModules() unexpected error: %v", err)
	}

	var m1 *ModuleWithRelations
	for _, m := range modules {
		if m.ID == "M1" {
			m1 = m
		}
	}
	if m1 == nil {
		t.Fatal("M1 not joined")
	}

	// global order is e3, e2, e1; M1's subsequence is e2, e1
	if len(m1.Entries) != 2 {
		t.Fatalf("M1 entries = %d, want 2", len(m1.Entries))
	}
	if m1.Entries[0].ID != "e2" || m1.Entries[1].ID != "e1" {
		t.Errorf("M1 entry order = [%s %s], want [e2 e1]", m1.Entries[0].ID, m1.Entries[1].ID)
	}
	for i := 1; i < len(m1.Entries); i++ {
		if m1.Entries[i-1].Date < m1.Entries[i].Date {
			t.Errorf("M1 entries not date-descending at %d", i)
		}
	}
}

func TestJoinModulesMissingFolder(t *testing.T) {
	modules := []models.Module{testModule("M1", "nowhere", 0)}
	folders := []models.Folder{testFolder("A", "A", nil, 0)}

	_, err := JoinModules(modules, folders, nil)
	if err == nil {
		t.Fatal("JoinModules() expected integrity error, got nil")
	}
	if !errors.Is(err, domain.ErrIntegrity) {
		t.Errorf("JoinModules() error = %v, want ErrIntegrity", err)
	}
}

func TestJoinModulesNoEntries(t *testing.T) {
	modules := []models.Module{testModule("M1", "A", 0)}
	folders := []models.Folder{testFolder("A", "A", nil, 0)}

	joined, err := JoinModules(modules, folders, nil)
	if err != nil {
		t.Fatalf("JoinModules() unexpected error: %v", err)
	}
	if joined[0].TotalHours != 0 {
		t.Errorf("TotalHours = %v, want 0", joined[0].TotalHours)
	}
	if joined[0].Entries == nil {
		t.Error("Entries should be empty, not nil")
	}
}

func TestGroupByFolderSortsByOrder(t *testing.T) {
	folders := []models.Folder{testFolder("A", "A", nil, 0)}
	modules := []models.Module{
		testModule("second", "A", 1),
		testModule("first", "A", 0),
		testModule("third", "A", 2),
	}

	joined, err := JoinModules(modules, folders, nil)
	if err != nil {
		t.Fatalf("JoinModules() unexpected error: %v", err)
	}

	grouped := GroupByFolder(joined)
	group := grouped["A"]
	if len(group) != 3 {
		t.Fatalf("group size = %d, want 3", len(group))
	}
	want := []string{"first", "second", "third"}
	for i, m := range group {
		if m.ID != want[i] {
			t.Errorf("group[%d] = %s, want %s", i, m.ID, want[i])
		}
	}
}
