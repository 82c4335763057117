package index

import (
	"testing"
	"time"

	"github.com/villapro/villapro/internal/domain"
)

func villaAt(id string, created time.Time) domain.Villa {
	return domain.Villa{
		ID:        id,
		Name:      "Villa " + id,
		Location:  "Bali",
		Status:    domain.StatusAvailable,
		CreatedAt: created,
	}
}

func TestAllSortsByCreatedAtDescending(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Same villas loaded in different orders must come back identical.
	permutations := [][]string{
		{"a", "b", "c"},
		{"c", "a", "b"},
		{"b", "c", "a"},
	}
	created := map[string]time.Time{
		"a": base,
		"b": base.Add(time.Hour),
		"c": base.Add(2 * time.Hour),
	}

	for _, perm := range permutations {
		c := NewCatalog()
		villas := make([]domain.Villa, 0, len(perm))
		for _, id := range perm {
			villas = append(villas, villaAt(id, created[id]))
		}
		c.Replace(villas)

		got := c.All()
		want := []string{"c", "b", "a"} // newest first
		if len(got) != len(want) {
			t.Fatalf("All() returned %d villas, want %d", len(got), len(want))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("load order %v: All()[%d].ID = %s, want %s", perm, i, got[i].ID, id)
			}
		}
	}
}

func TestUpsertAndRemove(t *testing.T) {
	c := NewCatalog()
	now := time.Now()

	c.Upsert(villaAt("v1", now))
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}

	// Upsert with same id overwrites instead of duplicating.
	v := villaAt("v1", now)
	v.Name = "Renamed"
	c.Upsert(v)
	if c.Count() != 1 {
		t.Errorf("Count() after overwrite = %d, want 1", c.Count())
	}
	got, ok := c.Get("v1")
	if !ok || got.Name != "Renamed" {
		t.Errorf("Get(v1) = %+v, %v", got, ok)
	}

	c.Remove("v1")
	if _, ok := c.Get("v1"); ok {
		t.Error("Get(v1) should miss after Remove")
	}

	// Removing an absent id is a no-op.
	c.Remove("v1")
	if c.Count() != 0 {
		t.Errorf("Count() = %d, want 0", c.Count())
	}
}

func TestClear(t *testing.T) {
	c := NewCatalog()
	c.Replace([]domain.Villa{villaAt("v1", time.Now()), villaAt("v2", time.Now())})

	c.Clear()

	if c.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", c.Count())
	}
	if !c.LastReload().IsZero() {
		t.Error("LastReload should reset on Clear")
	}
}

func TestStats(t *testing.T) {
	c := NewCatalog()
	now := time.Now()

	v1 := villaAt("v1", now)
	v1.AgentFee = 1200
	v2 := villaAt("v2", now.Add(time.Minute))
	v2.Status = domain.StatusRented
	v2.AgentFee = 900
	c.Replace([]domain.Villa{v1, v2})

	stats := c.Stats()
	if stats.TotalVillas != 2 {
		t.Errorf("TotalVillas = %d, want 2", stats.TotalVillas)
	}
	if stats.TotalPotentialCommission != 2100 {
		t.Errorf("TotalPotentialCommission = %v, want 2100", stats.TotalPotentialCommission)
	}
	if stats.AvailableCount != 1 || stats.RentedCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", stats.AvailableCount, stats.RentedCount)
	}
}
