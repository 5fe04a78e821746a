package tui

import (
	"math"
	"strings"
	"testing"

	"scaletrailhq/scaletrail/internal/catalog"
)

func TestInstanceRow(t *testing.T) {
	backups := 5.0
	inst := catalog.NormalizedInstance{
		ID: "g6-standard-2", Label: "Linode 4GB", Class: "standard",
		MemoryMB: 4096, DiskMB: 81920, TransferGB: 4000,
		PriceMonthly:   24.0,
		BackupsMonthly: &backups,
	}

	row := instanceRow(inst)
	for _, want := range []string{"Linode 4GB", "standard", "4.0", "80", "4000", "$24.00", "$5.00"} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q:\n%s", want, row)
		}
	}
}

func TestInstanceRow_AlignsWithHeader(t *testing.T) {
	inst := catalog.NormalizedInstance{
		ID: "g6-nanode-1", Label: "Nanode 1GB", Class: "nanode",
		MemoryMB: 1024, DiskMB: 25600, TransferGB: 1000, PriceMonthly: 5.0,
	}

	header := instanceHeader()
	row := instanceRow(inst)

	headerCols := strings.Count(header, "|")
	rowCols := strings.Count(row, "|")
	if headerCols != rowCols {
		t.Errorf("header has %d separators, row has %d:\n%s\n%s", headerCols, rowCols, header, row)
	}
}

func TestInstanceRow_MissingPrices(t *testing.T) {
	inst := catalog.NormalizedInstance{
		ID: "broken-type", Label: "Broken", Class: "standard",
		PriceHourly:  math.NaN(),
		PriceMonthly: math.NaN(),
	}

	row := instanceRow(inst)
	if !strings.Contains(row, "n/a") {
		t.Errorf("a missing price must render as n/a:\n%s", row)
	}
	if !strings.Contains(row, "-") {
		t.Errorf("absent backups must render as a dash:\n%s", row)
	}
	if strings.Contains(row, "$0.00") {
		t.Errorf("a missing price must never render as zero:\n%s", row)
	}
}

func TestImageRow(t *testing.T) {
	img := catalog.NormalizedImage{
		ID: "linode/ubuntu24.04", Label: "Ubuntu 24.04 LTS", Vendor: "Ubuntu",
		Description: "Long Term Support release",
	}

	row := imageRow(img)
	for _, want := range []string{"Ubuntu", "Ubuntu 24.04 LTS", "Long Term Support"} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q:\n%s", want, row)
		}
	}
}

func TestImageRow_Fallbacks(t *testing.T) {
	img := catalog.NormalizedImage{ID: "private/123"}

	row := imageRow(img)
	if !strings.Contains(row, "Unknown") {
		t.Errorf("an empty vendor must render as Unknown:\n%s", row)
	}
	if !strings.Contains(row, "private/123") {
		t.Errorf("an empty label must fall back to the ID:\n%s", row)
	}
}

func TestBuildInstanceOptions(t *testing.T) {
	instances := []catalog.NormalizedInstance{
		{ID: "g6-nanode-1", Label: "Nanode 1GB", Class: "nanode", PriceMonthly: 5.0},
		{ID: "g6-standard-2", Label: "Linode 4GB", Class: "standard", PriceMonthly: 24.0},
	}

	options := buildInstanceOptions(instances)
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	if options[0].Value != "g6-nanode-1" || options[1].Value != "g6-standard-2" {
		t.Errorf("option values must carry instance IDs in input order")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long label indeed", 10, "a very lo…"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestSelectHeight(t *testing.T) {
	if got := selectHeight(3, 12); got != 3 {
		t.Errorf("small lists get their own height, got %d", got)
	}
	if got := selectHeight(50, 12); got != 12 {
		t.Errorf("large lists are capped, got %d", got)
	}
}
