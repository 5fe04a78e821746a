// Package dnsplan answers two read-only questions about a root domain: which
// hostnames are free to claim, and which records a given environment would
// need. It never queries or mutates DNS state itself; callers supply a
// snapshot of existing records.
package dnsplan

import (
	"strings"

	"scaletrailhq/scaletrail/internal/domain"
)

// IsSubdomainAvailable reports whether subdomain.rootDomain is free to claim,
// i.e. no existing A or CNAME record already occupies that name. Names and
// record types are compared case-insensitively. An empty subdomain, "@", or
// the root domain itself all target the root domain.
func IsSubdomainAvailable(records []domain.DNSRecord, subdomain, rootDomain string) bool {
	target := targetName(subdomain, rootDomain)

	for _, record := range records {
		recordType := strings.ToUpper(string(record.Type))
		if recordType != string(domain.RecordTypeA) && recordType != string(domain.RecordTypeCNAME) {
			continue
		}
		if strings.ToLower(record.Name) == target {
			return false
		}
	}
	return true
}

// RootDomainIsAvailable reports whether the root domain itself is free of
// A and CNAME records.
func RootDomainIsAvailable(records []domain.DNSRecord, rootDomain string) bool {
	return IsSubdomainAvailable(records, "", rootDomain)
}

func targetName(subdomain, rootDomain string) string {
	if subdomain == "" || subdomain == "@" || subdomain == rootDomain {
		return strings.ToLower(rootDomain)
	}
	return strings.ToLower(subdomain + "." + rootDomain)
}
