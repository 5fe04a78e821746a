package catalog

import (
	"sort"
	"strings"
	"time"
)

// ImageFilter controls which images FilterImages keeps for a region.
type ImageFilter struct {
	// IncludeVendors, when non-empty, keeps only images whose vendor
	// matches one of these entries case-insensitively.
	IncludeVendors []string

	// PublicOnly drops images that are not public.
	PublicOnly bool

	// ExcludeEOL drops images that are deprecated or whose EOL date has
	// passed.
	ExcludeEOL bool

	// RequireAvailable drops images whose status is not exactly
	// "available".
	RequireAvailable bool

	// RequiredCapabilities, when non-empty, keeps only images carrying
	// every listed capability.
	RequiredCapabilities []string

	// Now is the reference instant for EOL checks. Zero means time.Now.
	Now time.Time
}

// DefaultImageFilter returns the filter used for OS selection prompts:
// public, non-EOL, available images only.
func DefaultImageFilter() ImageFilter {
	return ImageFilter{
		PublicOnly:       true,
		ExcludeEOL:       true,
		RequireAvailable: true,
	}
}

// FilterImages flattens an images listing into normalized OS records for
// regionID. Filtering is a conjunction of independent pure predicates; an
// image declaring no regions is treated as globally available. Survivors are
// sorted ascending by case-folded (vendor, label), stably, so repeated calls
// with identical input produce identical output order.
func FilterImages(resp ImagesResponse, regionID string, filter ImageFilter) []NormalizedImage {
	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	var vendorAllow map[string]struct{}
	if len(filter.IncludeVendors) > 0 {
		vendorAllow = make(map[string]struct{}, len(filter.IncludeVendors))
		for _, vendor := range filter.IncludeVendors {
			vendor = strings.TrimSpace(vendor)
			if vendor == "" {
				continue
			}
			vendorAllow[strings.ToLower(vendor)] = struct{}{}
		}
	}

	out := make([]NormalizedImage, 0, len(resp.Data))
	for _, img := range resp.Data {
		if filter.PublicOnly && !img.IsPublic {
			continue
		}

		vendor := strings.TrimSpace(img.Vendor)
		if vendorAllow != nil {
			if _, ok := vendorAllow[strings.ToLower(vendor)]; !ok {
				continue
			}
		}

		if filter.RequireAvailable && img.Status != "available" {
			continue
		}

		if !hasAllCapabilities(img.Capabilities, filter.RequiredCapabilities) {
			continue
		}

		// Region gating: a non-empty regions list must contain regionID;
		// no list at all means globally available.
		if len(img.Regions) > 0 && !containsString(img.Regions, regionID) {
			continue
		}

		eolPassed := EOLPassed(img.EOL, now)
		if filter.ExcludeEOL && (img.Deprecated || eolPassed) {
			continue
		}

		out = append(out, NormalizedImage{
			ID:           img.ID,
			Label:        img.Label,
			Vendor:       vendor,
			Description:  img.Description,
			Size:         img.Size,
			Created:      img.Created,
			Updated:      img.Updated,
			IsPublic:     img.IsPublic,
			Deprecated:   img.Deprecated,
			EOL:          img.EOL,
			EOLPassed:    eolPassed,
			Regions:      img.Regions,
			Status:       img.Status,
			Capabilities: img.Capabilities,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := strings.ToLower(out[i].Vendor), strings.ToLower(out[j].Vendor)
		if vi != vj {
			return vi < vj
		}
		return strings.ToLower(out[i].Label) < strings.ToLower(out[j].Label)
	})

	return out
}

// eolLayouts are the timestamp shapes Linode uses for image EOL dates.
// Timestamps carry no zone and are interpreted as UTC.
var eolLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// EOLPassed reports whether eol, interpreted as a UTC instant, is at or
// before now. An absent or unparseable eol is never considered passed.
func EOLPassed(eol string, now time.Time) bool {
	if eol == "" {
		return false
	}
	eol = strings.TrimSuffix(eol, "Z")
	for _, layout := range eolLayouts {
		t, err := time.ParseInLocation(layout, eol, time.UTC)
		if err != nil {
			continue
		}
		return !now.UTC().Before(t)
	}
	return false
}

func hasAllCapabilities(have, need []string) bool {
	for _, capability := range need {
		capability = strings.TrimSpace(capability)
		if capability == "" {
			continue
		}
		if !containsString(have, capability) {
			return false
		}
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
