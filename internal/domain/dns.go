package domain

// RecordType represents a DNS record type.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeMX    RecordType = "MX"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeCAA   RecordType = "CAA"
)

// TTLAutomatic is the TTL value Cloudflare interprets as "automatic".
const TTLAutomatic = 1

// DNSRecord represents a single existing DNS record fetched from a provider.
type DNSRecord struct {
	// ID is the provider-assigned record identifier.
	ID string `json:"id"`

	// Name is the fully-qualified record name as returned by the provider
	// (e.g. "www.example.com" or "example.com" for a root record).
	Name string `json:"name"`

	// Type is the DNS record type (A, AAAA, CNAME, etc.).
	Type RecordType `json:"type"`

	// Content is the record value (IP address, hostname, text, etc.).
	Content string `json:"content"`

	// TTL is the time-to-live in seconds. TTLAutomatic means automatic.
	TTL int `json:"ttl"`

	// Proxied reports whether the record is routed through the provider's
	// proxy layer.
	Proxied bool `json:"proxied"`
}
