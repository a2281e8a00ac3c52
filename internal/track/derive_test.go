package track

import (
	"errors"
	"testing"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
)

func TestDeriverMemoizesOnSnapshotIdentity(t *testing.T) {
	snap := fixtureSnapshot()
	deriver := &Deriver{}

	first, err := deriver.Derive(snap)
	if err != nil {
		t.Fatalf("Derive() unexpected error: %v", err)
	}
	second, err := deriver.Derive(snap)
	if err != nil {
		t.Fatalf("Derive() unexpected error: %v", err)
	}

	if first != second {
		t.Error("same snapshot should return the cached *Derived")
	}
}

func TestDeriverRecomputesOnNewSnapshot(t *testing.T) {
	deriver := &Deriver{}

	first, err := deriver.Derive(fixtureSnapshot())
	if err != nil {
		t.Fatalf("Derive() unexpected error: %v", err)
	}

	next := fixtureSnapshot()
	next.Version = 2
	next.Entries = append([]models.Entry{testEntry("e4", "M2", 1, "2024-03-04")}, next.Entries...)

	second, err := deriver.Derive(next)
	if err != nil {
		t.Fatalf("Derive() unexpected error: %v", err)
	}

	if first == second {
		t.Fatal("new snapshot should produce a new *Derived")
	}
	if second.Roots[0].TotalHours != 6.5 {
		t.Errorf("recomputed total = %v, want 6.5", second.Roots[0].TotalHours)
	}
}

func TestDeriverCachesIntegrityError(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Modules = append(snap.Modules, testModule("M3", "nowhere", 0))
	deriver := &Deriver{}

	_, err1 := deriver.Derive(snap)
	_, err2 := deriver.Derive(snap)

	if !errors.Is(err1, domain.ErrIntegrity) {
		t.Fatalf("first Derive() error = %v, want ErrIntegrity", err1)
	}
	if !errors.Is(err2, domain.ErrIntegrity) {
		t.Fatalf("second Derive() error = %v, want ErrIntegrity", err2)
	}
}

func TestDeriveNilSnapshot(t *testing.T) {
	derived, err := Derive(nil)
	if err != nil {
		t.Fatalf("Derive(nil) unexpected error: %v", err)
	}
	if len(derived.Roots) != 0 || len(derived.Modules) != 0 || len(derived.Flattened) != 0 {
		t.Errorf("Derive(nil) should be empty, got %+v", derived)
	}

	deriver := &Deriver{}
	if _, err := deriver.Derive(nil); err != nil {
		t.Fatalf("Deriver.Derive(nil) unexpected error: %v", err)
	}
}

func TestSortEntries(t *testing.T) {
	entries := []models.Entry{
		testEntry("old", "M1", 1, "2024-02-01"),
		testEntry("new", "M1", 1, "2024-03-05"),
		testEntry("mid", "M1", 1, "2024-02-20"),
	}

	SortEntries(entries)

	want := []string{"new", "mid", "old"}
	for i, e := range entries {
		if e.ID != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, e.ID, want[i])
		}
	}
}
