package dnsplan

import (
	"strings"

	"scaletrailhq/scaletrail/internal/domain"
)

// ContentTBD is the placeholder content for planned address records; the
// real address only exists once the instance has been provisioned.
const ContentTBD = "to be determined after resource creation"

// PlannedRecord describes a DNS record that configuration intends to create.
// This tool only previews planned records; it never creates them.
type PlannedRecord struct {
	Name    string            `json:"name"`
	Type    domain.RecordType `json:"type"`
	Content string            `json:"content"`
	Proxied bool              `json:"proxied"`
	TTL     int               `json:"ttl"`
}

// PlanRecords derives the records an environment would need under
// rootDomain. Production ("prod" or "production", case-insensitive) gets an
// A record for the API host plus a www CNAME to the root; every other
// environment gets a single {env}-api A record. All planned records are
// proxied with automatic TTL.
func PlanRecords(rootDomain, environment string) []PlannedRecord {
	if isProduction(environment) {
		return []PlannedRecord{
			{
				Name:    "api." + rootDomain,
				Type:    domain.RecordTypeA,
				Content: ContentTBD,
				Proxied: true,
				TTL:     domain.TTLAutomatic,
			},
			{
				Name:    "www." + rootDomain,
				Type:    domain.RecordTypeCNAME,
				Content: rootDomain,
				Proxied: true,
				TTL:     domain.TTLAutomatic,
			},
		}
	}

	return []PlannedRecord{
		{
			Name:    environment + "-api." + rootDomain,
			Type:    domain.RecordTypeA,
			Content: ContentTBD,
			Proxied: true,
			TTL:     domain.TTLAutomatic,
		},
	}
}

func isProduction(environment string) bool {
	switch strings.ToLower(environment) {
	case "prod", "production":
		return true
	}
	return false
}
