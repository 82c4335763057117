package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVillaStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Errorf("Statuses() entry %q should be valid", s)
		}
	}
	for _, s := range []VillaStatus{"", "available", "Sold", "RENTED"} {
		if s.Valid() {
			t.Errorf("status %q should be invalid", s)
		}
	}
}

func TestVillaInputHasNoIDKey(t *testing.T) {
	in := VillaInput{
		Name:         "Villa X",
		ImageURL:     "https://example.com/x.jpg",
		Location:     "Bali",
		PriceMonthly: 1000,
		Status:       StatusAvailable,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := payload["id"]; ok {
		t.Errorf("insert payload must not contain an id key, got %s", data)
	}
	if _, ok := payload["created_at"]; ok {
		t.Errorf("insert payload must not contain created_at, got %s", data)
	}
}

func TestVillaUpdateApplyTo(t *testing.T) {
	base := Villa{
		ID:           "v1",
		Name:         "Old Name",
		ImageURL:     "https://example.com/old.jpg",
		Description:  "old",
		Location:     "Ubud, Bali",
		PriceMonthly: 3200,
		PriceYearly:  35000,
		AgentFee:     900,
		Status:       StatusAvailable,
	}

	newName := "New Name"
	newStatus := StatusRented
	u := VillaUpdate{Name: &newName, Status: &newStatus}

	got := u.ApplyTo(base)

	if got.Name != newName {
		t.Errorf("Name = %q, want %q", got.Name, newName)
	}
	if got.Status != newStatus {
		t.Errorf("Status = %q, want %q", got.Status, newStatus)
	}
	// Every field not in the update must be unchanged.
	if got.ID != base.ID || got.ImageURL != base.ImageURL ||
		got.Description != base.Description || got.Location != base.Location ||
		got.PriceMonthly != base.PriceMonthly || got.PriceYearly != base.PriceYearly ||
		got.AgentFee != base.AgentFee || !got.CreatedAt.Equal(base.CreatedAt) {
		t.Errorf("ApplyTo changed fields outside the update: %+v", got)
	}
}

func TestVillaUpdateMarshalOmitsNilFields(t *testing.T) {
	price := 4500.0
	u := VillaUpdate{PriceMonthly: &price}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(payload) != 1 {
		t.Errorf("patch body should carry exactly the supplied field, got %s", data)
	}
	if _, ok := payload["price_monthly"]; !ok {
		t.Errorf("patch body missing price_monthly: %s", data)
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(sampleVillas())

	if stats.TotalVillas != 3 {
		t.Errorf("TotalVillas = %d, want 3", stats.TotalVillas)
	}
	if stats.TotalPotentialCommission != 2600 {
		t.Errorf("TotalPotentialCommission = %v, want 2600", stats.TotalPotentialCommission)
	}
	if stats.AvailableCount != 1 || stats.RentedCount != 1 || stats.MaintenanceCount != 1 {
		t.Errorf("status counts = %d/%d/%d, want 1/1/1",
			stats.AvailableCount, stats.RentedCount, stats.MaintenanceCount)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.TotalVillas != 0 || stats.TotalPotentialCommission != 0 {
		t.Errorf("empty catalog should produce zero stats, got %+v", stats)
	}
}

func TestConnectionConfigRedacted(t *testing.T) {
	cfg := ConnectionConfig{URL: "https://abc.supabase.co", AnonKey: "secret-key"}
	red := cfg.Redacted()
	if red.AnonKey == cfg.AnonKey {
		t.Error("Redacted() must not expose the access key")
	}
	if red.URL != cfg.URL {
		t.Error("Redacted() must keep the endpoint URL")
	}
	if strings.Contains(red.AnonKey, "secret") {
		t.Errorf("redacted key still contains secret material: %q", red.AnonKey)
	}
}
