// Package regions holds the static continent-to-region tables used to narrow
// the region prompt. The tables mirror Linode's current data center list;
// region validity is ultimately decided by the API, not by this package.
package regions

import "scaletrailhq/scaletrail/internal/util"

// ShowAll is the prompt choice that bypasses continent filtering.
const ShowAll = "Show all regions"

// Continents lists the prompt choices in display order.
var Continents = []string{
	"North America",
	"Europe",
	"Asia",
	"South America",
	"Oceania",
	ShowAll,
}

var northAmerica = []string{
	"ca-central",
	"us-central",
	"us-east",
	"us-iad",
	"us-lax",
	"us-mia",
	"us-ord",
	"us-sea",
	"us-southeast",
	"us-west",
}

var europe = []string{
	"de-fra-2",
	"es-mad",
	"eu-central",
	"eu-west",
	"fr-par",
	"gb-lon",
	"it-mil",
	"nl-ams",
	"se-sto",
}

var asia = []string{
	"ap-northeast",
	"ap-south",
	"ap-west",
	"id-cgk",
	"in-bom-2",
	"in-maa",
	"jp-osa",
	"jp-tyo-3",
	"sg-sin-2",
}

var southAmerica = []string{
	"br-gru",
}

var oceania = []string{
	"au-mel",
	"ap-southeast",
}

var byContinent = map[string][]string{
	"North America": northAmerica,
	"Europe":        europe,
	"Asia":          asia,
	"South America": southAmerica,
	"Oceania":       oceania,
}

// Normalize maps a case-insensitive continent name to its canonical form.
// It returns the input unchanged when no continent matches, so callers can
// report the original value.
func Normalize(continent string) string {
	key := util.NormalizeKey(continent)
	for _, name := range Continents {
		if name == ShowAll {
			continue
		}
		if util.NormalizeKey(name) == key {
			return name
		}
	}
	return continent
}

// For returns the region slugs for a continent, or nil when the continent is
// unknown. ShowAll returns every region.
func For(continent string) []string {
	if continent == ShowAll {
		return All()
	}
	return byContinent[Normalize(continent)]
}

// All returns every known region slug in display order (continent order,
// then table order within each continent).
func All() []string {
	all := make([]string, 0, len(northAmerica)+len(europe)+len(asia)+len(southAmerica)+len(oceania))
	for _, name := range Continents {
		all = append(all, byContinent[name]...)
	}
	return all
}
