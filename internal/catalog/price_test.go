package catalog

import (
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolvePrice_BaseOnly(t *testing.T) {
	item := Item{
		ID:    "g6-nanode-1",
		Price: &Price{Hourly: 0.0075, Monthly: 5.0},
	}

	got := ResolvePrice(item, "us-east")
	if got.Hourly != 0.0075 || got.Monthly != 5.0 {
		t.Errorf("expected base price {0.0075 5}, got %+v", got)
	}
}

func TestResolvePrice_RegionOverride(t *testing.T) {
	item := Item{
		ID:    "g6-standard-2",
		Price: &Price{Hourly: 0.03, Monthly: 20.0},
		RegionPrices: []RegionPrice{
			{ID: "br-gru", Hourly: floatPtr(0.036), Monthly: floatPtr(24.0)},
			{ID: "id-cgk", Hourly: floatPtr(0.034), Monthly: floatPtr(22.8)},
		},
	}

	got := ResolvePrice(item, "id-cgk")
	if got.Hourly != 0.034 || got.Monthly != 22.8 {
		t.Errorf("expected override price {0.034 22.8}, got %+v", got)
	}

	// No matching region falls back to the base price.
	got = ResolvePrice(item, "us-east")
	if got.Hourly != 0.03 || got.Monthly != 20.0 {
		t.Errorf("expected base price {0.03 20}, got %+v", got)
	}
}

func TestResolvePrice_PartialOverride(t *testing.T) {
	item := Item{
		ID:    "g6-standard-4",
		Price: &Price{Hourly: 0.06, Monthly: 40.0},
		RegionPrices: []RegionPrice{
			{ID: "br-gru", Monthly: floatPtr(48.0)}, // hourly absent
		},
	}

	got := ResolvePrice(item, "br-gru")
	if got.Hourly != 0.06 {
		t.Errorf("absent hourly override should keep base 0.06, got %v", got.Hourly)
	}
	if got.Monthly != 48.0 {
		t.Errorf("present monthly override should win, got %v", got.Monthly)
	}
}

func TestResolvePrice_FirstMatchWins(t *testing.T) {
	item := Item{
		ID:    "g6-standard-1",
		Price: &Price{Hourly: 0.015, Monthly: 10.0},
		RegionPrices: []RegionPrice{
			{ID: "br-gru", Monthly: floatPtr(12.0)},
			{ID: "br-gru", Monthly: floatPtr(99.0)},
		},
	}

	got := ResolvePrice(item, "br-gru")
	if got.Monthly != 12.0 {
		t.Errorf("first matching entry should win, got %v", got.Monthly)
	}
}

func TestResolvePrice_NoPriceAnywhere(t *testing.T) {
	item := Item{ID: "broken-type"}

	got := ResolvePrice(item, "us-east")
	if !math.IsNaN(got.Hourly) || !math.IsNaN(got.Monthly) {
		t.Errorf("missing price must not default to a finite number, got %+v", got)
	}
}

func TestResolveBackupPrice_NoAddon(t *testing.T) {
	item := Item{
		ID:    "g6-nanode-1",
		Price: &Price{Hourly: 0.0075, Monthly: 5.0},
	}

	if got := ResolveBackupPrice(item, "us-east"); got != nil {
		t.Errorf("expected nil for item without backups addon, got %+v", got)
	}
}

func TestResolveBackupPrice_WithOverride(t *testing.T) {
	item := Item{
		ID:    "g6-standard-2",
		Price: &Price{Hourly: 0.03, Monthly: 20.0},
		Addons: &Addons{
			Backups: &BackupsAddon{
				Price: &Price{Hourly: 0.008, Monthly: 5.0},
				RegionPrices: []RegionPrice{
					{ID: "br-gru", Hourly: floatPtr(0.0096), Monthly: floatPtr(6.0)},
				},
			},
		},
	}

	got := ResolveBackupPrice(item, "br-gru")
	if got == nil {
		t.Fatal("expected backup price, got nil")
	}
	if got.Hourly != 0.0096 || got.Monthly != 6.0 {
		t.Errorf("expected override backup price {0.0096 6}, got %+v", got)
	}

	got = ResolveBackupPrice(item, "us-east")
	if got == nil {
		t.Fatal("expected backup price, got nil")
	}
	if got.Hourly != 0.008 || got.Monthly != 5.0 {
		t.Errorf("expected base backup price {0.008 5}, got %+v", got)
	}
}
