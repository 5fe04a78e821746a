package catalog

import "math"

// ResolvePrice resolves the effective price of a catalog item for a region.
// It starts from the item's base price; if the item carries a region_prices
// entry whose id matches regionID, that entry's present fields override the
// running values. The first matching entry wins, in input order.
//
// When no catalog price can be found at all (no base price and no override),
// the affected field is NaN. That is a caller error condition, deliberately
// not defaulted to zero: a zero price would rank a broken item first.
func ResolvePrice(item Item, regionID string) Price {
	return resolve(item.Price, item.RegionPrices, regionID)
}

// ResolveBackupPrice resolves the backups add-on price of an item for a
// region, applying the same base+override rules against the add-on's own
// price block. It returns nil (not an error) when the item has no backups
// add-on at all.
func ResolveBackupPrice(item Item, regionID string) *Price {
	if item.Addons == nil || item.Addons.Backups == nil {
		return nil
	}
	backups := item.Addons.Backups
	price := resolve(backups.Price, backups.RegionPrices, regionID)
	return &price
}

func resolve(base *Price, overrides []RegionPrice, regionID string) Price {
	hourly := math.NaN()
	monthly := math.NaN()
	if base != nil {
		hourly = base.Hourly
		monthly = base.Monthly
	}

	for _, rp := range overrides {
		if rp.ID != regionID {
			continue
		}
		// Partial overrides: a present field overrides, an absent field
		// keeps the running value.
		if rp.Hourly != nil {
			hourly = *rp.Hourly
		}
		if rp.Monthly != nil {
			monthly = *rp.Monthly
		}
		break
	}

	return Price{Hourly: hourly, Monthly: monthly}
}
