package catalog

import "sort"

// FilterInstances flattens a types listing into normalized records with
// pricing resolved for regionID, optionally filtered by class. Output order
// preserves catalog input order; ranking for display is a separate concern
// (see SortInstancesByMonthlyPrice).
//
// No region-validity check is performed: an unknown regionID simply matches
// no overrides and yields base prices.
func FilterInstances(resp TypesResponse, regionID string, includeClasses []string) []NormalizedInstance {
	var allow map[string]struct{}
	if len(includeClasses) > 0 {
		allow = make(map[string]struct{}, len(includeClasses))
		for _, class := range includeClasses {
			allow[class] = struct{}{}
		}
	}

	out := make([]NormalizedInstance, 0, len(resp.Data))
	for _, item := range resp.Data {
		if allow != nil {
			if _, ok := allow[item.Class]; !ok {
				continue
			}
		}
		out = append(out, normalizeInstance(item, regionID))
	}
	return out
}

func normalizeInstance(item Item, regionID string) NormalizedInstance {
	price := ResolvePrice(item, regionID)

	inst := NormalizedInstance{
		ID:             item.ID,
		Label:          item.Label,
		Class:          item.Class,
		VCPUs:          item.VCPUs,
		MemoryMB:       item.Memory,
		DiskMB:         item.Disk,
		TransferGB:     item.Transfer,
		GPUs:           item.GPUs,
		NetworkOutMbps: item.NetworkOut,
		PriceHourly:    price.Hourly,
		PriceMonthly:   price.Monthly,
	}

	if backup := ResolveBackupPrice(item, regionID); backup != nil {
		hourly, monthly := backup.Hourly, backup.Monthly
		inst.BackupsHourly = &hourly
		inst.BackupsMonthly = &monthly
	}

	return inst
}

// SortInstancesByMonthlyPrice returns a copy of instances sorted ascending
// by monthly price. The sort is stable: ties keep their relative input
// order, so repeated calls on identical input produce identical output.
func SortInstancesByMonthlyPrice(instances []NormalizedInstance) []NormalizedInstance {
	sorted := make([]NormalizedInstance, len(instances))
	copy(sorted, instances)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PriceMonthly < sorted[j].PriceMonthly
	})
	return sorted
}
