package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func availableImage(id, vendor, label string) Image {
	return Image{
		ID:       id,
		Label:    label,
		Vendor:   vendor,
		IsPublic: true,
		Status:   "available",
	}
}

func testImages(images ...Image) ImagesResponse {
	return ImagesResponse{Data: images}
}

func testFilter() ImageFilter {
	f := DefaultImageFilter()
	f.Now = testNow
	return f
}

func imageIDs(images []NormalizedImage) []string {
	ids := make([]string, 0, len(images))
	for _, img := range images {
		ids = append(ids, img.ID)
	}
	return ids
}

func TestFilterImages_PublicOnly(t *testing.T) {
	private := availableImage("private/1", "Ubuntu", "My Snapshot")
	private.IsPublic = false

	got := FilterImages(testImages(
		availableImage("linode/ubuntu24.04", "Ubuntu", "Ubuntu 24.04 LTS"),
		private,
	), "us-east", testFilter())

	if diff := cmp.Diff([]string{"linode/ubuntu24.04"}, imageIDs(got)); diff != "" {
		t.Errorf("image IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterImages_VendorAllowListCaseFolded(t *testing.T) {
	filter := testFilter()
	filter.IncludeVendors = []string{"UBUNTU", " debian "}

	got := FilterImages(testImages(
		availableImage("linode/ubuntu24.04", "Ubuntu", "Ubuntu 24.04 LTS"),
		availableImage("linode/debian12", "Debian", "Debian 12"),
		availableImage("linode/centos7", "CentOS", "CentOS 7"),
	), "us-east", filter)

	if diff := cmp.Diff([]string{"linode/debian12", "linode/ubuntu24.04"}, imageIDs(got)); diff != "" {
		t.Errorf("image IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterImages_StatusIsCaseSensitive(t *testing.T) {
	creating := availableImage("linode/new", "Ubuntu", "Ubuntu Next")
	creating.Status = "creating"
	shouting := availableImage("linode/shout", "Ubuntu", "Ubuntu Loud")
	shouting.Status = "AVAILABLE"

	got := FilterImages(testImages(
		availableImage("linode/ubuntu24.04", "Ubuntu", "Ubuntu 24.04 LTS"),
		creating,
		shouting,
	), "us-east", testFilter())

	if diff := cmp.Diff([]string{"linode/ubuntu24.04"}, imageIDs(got)); diff != "" {
		t.Errorf("image IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterImages_RequiredCapabilitiesSubset(t *testing.T) {
	cloudInit := availableImage("linode/ubuntu24.04", "Ubuntu", "Ubuntu 24.04 LTS")
	cloudInit.Capabilities = []string{"cloud-init", "distributed-sites"}
	bare := availableImage("linode/slackware15", "Slackware", "Slackware 15")

	filter := testFilter()
	filter.RequiredCapabilities = []string{"cloud-init"}

	got := FilterImages(testImages(cloudInit, bare), "us-east", filter)

	if diff := cmp.Diff([]string{"linode/ubuntu24.04"}, imageIDs(got)); diff != "" {
		t.Errorf("image IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterImages_RegionGating(t *testing.T) {
	global := availableImage("linode/global", "Ubuntu", "Ubuntu Global")
	global.Regions = []string{}
	regional := availableImage("linode/east-only", "Ubuntu", "Ubuntu East")
	regional.Regions = []string{"us-east"}

	got := FilterImages(testImages(global, regional), "us-west", testFilter())

	// Empty regions list means globally available; a non-empty list must
	// contain the requested region.
	if diff := cmp.Diff([]string{"linode/global"}, imageIDs(got)); diff != "" {
		t.Errorf("image IDs mismatch (-want +got):\n%s", diff)
	}

	got = FilterImages(testImages(global, regional), "us-east", testFilter())
	if len(got) != 2 {
		t.Errorf("expected both images for us-east, got %v", imageIDs(got))
	}
}

func TestFilterImages_ExcludesDeprecatedAndEOL(t *testing.T) {
	deprecated := availableImage("linode/old", "Ubuntu", "Ubuntu Old")
	deprecated.Deprecated = true
	pastEOL := availableImage("linode/eol", "Ubuntu", "Ubuntu EOL")
	pastEOL.EOL = "2024-01-01T04:00:00"
	futureEOL := availableImage("linode/fine", "Ubuntu", "Ubuntu Fine")
	futureEOL.EOL = "2030-01-01T04:00:00"

	got := FilterImages(testImages(deprecated, pastEOL, futureEOL), "us-east", testFilter())

	if diff := cmp.Diff([]string{"linode/fine"}, imageIDs(got)); diff != "" {
		t.Errorf("image IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterImages_KeepsEOLWhenNotExcluding(t *testing.T) {
	pastEOL := availableImage("linode/eol", "Ubuntu", "Ubuntu EOL")
	pastEOL.EOL = "2024-01-01T04:00:00"

	filter := testFilter()
	filter.ExcludeEOL = false

	got := FilterImages(testImages(pastEOL), "us-east", filter)
	if len(got) != 1 {
		t.Fatalf("expected 1 image, got %d", len(got))
	}
	if !got[0].EOLPassed {
		t.Error("expected EOLPassed to be true for a past EOL date")
	}
}

func TestFilterImages_SortedByVendorThenLabel(t *testing.T) {
	got := FilterImages(testImages(
		availableImage("linode/ubuntu22.04", "Ubuntu", "Ubuntu 22.04 LTS"),
		availableImage("linode/alma9", "AlmaLinux", "AlmaLinux 9"),
		availableImage("linode/ubuntu20.04", "ubuntu", "ubuntu 20.04 LTS"),
		availableImage("linode/debian12", "Debian", "Debian 12"),
	), "us-east", testFilter())

	want := []string{
		"linode/alma9",
		"linode/debian12",
		"linode/ubuntu20.04",
		"linode/ubuntu22.04",
	}
	if diff := cmp.Diff(want, imageIDs(got)); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterImages_Deterministic(t *testing.T) {
	resp := testImages(
		availableImage("linode/b", "Ubuntu", "Same Label"),
		availableImage("linode/a", "Ubuntu", "Same Label"),
		availableImage("linode/alma9", "AlmaLinux", "AlmaLinux 9"),
	)

	first := FilterImages(resp, "us-east", testFilter())
	second := FilterImages(resp, "us-east", testFilter())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calls must yield identical output (-first +second):\n%s", diff)
	}

	// Ties on (vendor, label) keep input order: stable sort.
	if diff := cmp.Diff([]string{"linode/alma9", "linode/b", "linode/a"}, imageIDs(first)); diff != "" {
		t.Errorf("stable tie order mismatch (-want +got):\n%s", diff)
	}
}

func TestEOLPassed(t *testing.T) {
	tests := []struct {
		name string
		eol  string
		want bool
	}{
		{"absent", "", false},
		{"malformed", "not-a-date", false},
		{"past", "2024-01-01T04:00:00", true},
		{"past with Z suffix", "2024-01-01T04:00:00Z", true},
		{"date only", "2024-01-01", true},
		{"exactly now", "2025-06-01T12:00:00", true},
		{"future", "2030-10-01T04:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EOLPassed(tt.eol, testNow); got != tt.want {
				t.Errorf("EOLPassed(%q) = %t, want %t", tt.eol, got, tt.want)
			}
		})
	}
}
