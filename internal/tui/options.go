package tui

import (
	"fmt"
	"math"
	"strings"

	"scaletrailhq/scaletrail/internal/catalog"

	"github.com/charmbracelet/huh"
)

// --- Instance options ---

// instanceHeader returns the column header shown above the instance select.
func instanceHeader() string {
	return fmt.Sprintf("%-18s | %-9s | %6s | %7s | %11s | %10s | %14s",
		"Label", "Class", "Mem GB", "Disk GB", "Transfer GB", "Monthly", "Backups/mo")
}

// instanceRow formats one instance as a fixed-width row aligned with
// instanceHeader.
func instanceRow(inst catalog.NormalizedInstance) string {
	return fmt.Sprintf("%-18s | %-9s | %6.1f | %7.0f | %11d | %10s | %14s",
		truncate(inst.Label, 18),
		inst.Class,
		float64(inst.MemoryMB)/1024,
		float64(inst.DiskMB)/1024,
		inst.TransferGB,
		formatMonthly(inst.PriceMonthly),
		formatBackups(inst.BackupsMonthly),
	)
}

func buildInstanceOptions(instances []catalog.NormalizedInstance) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(instances))
	for _, inst := range instances {
		options = append(options, huh.NewOption(instanceRow(inst), inst.ID))
	}
	return options
}

func formatMonthly(monthly float64) string {
	if math.IsNaN(monthly) {
		return "n/a"
	}
	return fmt.Sprintf("$%.2f", monthly)
}

func formatBackups(monthly *float64) string {
	if monthly == nil {
		return "-"
	}
	return formatMonthly(*monthly)
}

// --- Image options ---

// imageRow formats one OS image for the select prompt: vendor, label, and a
// truncated description.
func imageRow(img catalog.NormalizedImage) string {
	vendor := img.Vendor
	if vendor == "" {
		vendor = "Unknown"
	}
	label := img.Label
	if label == "" {
		label = img.ID
	}
	row := fmt.Sprintf("%-12s | %-25s", vendor, truncate(label, 25))
	if img.Description != "" {
		row += " - " + truncate(img.Description, 60)
	}
	return row
}

func buildImageOptions(images []catalog.NormalizedImage) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(images))
	for _, img := range images {
		options = append(options, huh.NewOption(imageRow(img), img.ID))
	}
	return options
}

// --- Shared helpers ---

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}

func selectHeight(optionCount, max int) int {
	if optionCount < max {
		return optionCount
	}
	return max
}
