// Package catalog turns raw Linode catalog payloads into the normalized,
// priced, filtered, and ranked choice lists presented to the user.
//
// All functions here are pure: they never mutate their inputs and calling
// them twice with identical input yields identical output.
package catalog

// Price is a base or region-resolved price pair.
type Price struct {
	Hourly  float64 `json:"hourly"`
	Monthly float64 `json:"monthly"`
}

// RegionPrice is a per-region price override. A zero Hourly or Monthly field
// cannot be distinguished from an absent one in JSON, so both are pointers:
// a present field overrides, an absent field falls back.
type RegionPrice struct {
	ID      string   `json:"id"`
	Hourly  *float64 `json:"hourly"`
	Monthly *float64 `json:"monthly"`
}

// BackupsAddon is the optional backups add-on price block on a catalog item.
type BackupsAddon struct {
	Price        *Price        `json:"price"`
	RegionPrices []RegionPrice `json:"region_prices"`
}

// Addons holds the optional add-on blocks of a catalog item.
type Addons struct {
	Backups *BackupsAddon `json:"backups"`
}

// Item is a raw instance type (purchasable compute configuration) exactly as
// returned by GET /linode/types. Treated as immutable input.
type Item struct {
	ID             string        `json:"id"`
	Label          string        `json:"label"`
	Class          string        `json:"class"`
	VCPUs          int           `json:"vcpus"`
	Memory         int           `json:"memory"`   // MB
	Disk           int           `json:"disk"`     // MB
	Transfer       int           `json:"transfer"` // GB
	GPUs           int           `json:"gpus"`
	NetworkOut     int           `json:"network_out"` // Mbps
	Price          *Price        `json:"price"`
	RegionPrices   []RegionPrice `json:"region_prices"`
	Addons         *Addons       `json:"addons"`
	Successor      string        `json:"successor"`
	AcceleratedDev bool          `json:"accelerated_devices"`
}

// TypesResponse is the paginated envelope of GET /linode/types.
type TypesResponse struct {
	Data    []Item `json:"data"`
	Page    int    `json:"page"`
	Pages   int    `json:"pages"`
	Results int    `json:"results"`
}

// NormalizedInstance is one qualifying catalog item with its price resolved
// for a specific region. Price fields always reflect the region passed at
// resolution time. Only the ID is ever persisted.
type NormalizedInstance struct {
	ID             string   `json:"id"`
	Label          string   `json:"label"`
	Class          string   `json:"class"`
	VCPUs          int      `json:"vcpus"`
	MemoryMB       int      `json:"memory_mb"`
	DiskMB         int      `json:"disk_mb"`
	TransferGB     int      `json:"transfer_gb"`
	GPUs           int      `json:"gpus"`
	NetworkOutMbps int      `json:"network_out_mbps"`
	PriceHourly    float64  `json:"price_hourly"`
	PriceMonthly   float64  `json:"price_monthly"`
	BackupsHourly  *float64 `json:"backups_hourly"`
	BackupsMonthly *float64 `json:"backups_monthly"`
}

// Image is a raw OS image exactly as returned by GET /images.
// A nil or empty Regions list means the image is globally available.
type Image struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Vendor       string   `json:"vendor"`
	Description  string   `json:"description"`
	Size         int      `json:"size"`
	Created      string   `json:"created"`
	Updated      string   `json:"updated"`
	IsPublic     bool     `json:"is_public"`
	Deprecated   bool     `json:"deprecated"`
	EOL          string   `json:"eol"`
	Regions      []string `json:"regions"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities"`
}

// ImagesResponse is the paginated envelope of GET /images.
type ImagesResponse struct {
	Data    []Image `json:"data"`
	Page    int     `json:"page"`
	Pages   int     `json:"pages"`
	Results int     `json:"results"`
}

// NormalizedImage is a qualifying image plus the computed EOL verdict.
type NormalizedImage struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Vendor       string   `json:"vendor"`
	Description  string   `json:"description"`
	Size         int      `json:"size"`
	Created      string   `json:"created"`
	Updated      string   `json:"updated"`
	IsPublic     bool     `json:"is_public"`
	Deprecated   bool     `json:"deprecated"`
	EOL          string   `json:"eol"`
	EOLPassed    bool     `json:"eol_passed"`
	Regions      []string `json:"regions"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities"`
}
