// Package styles provides the centralized color palette and text styles for
// scaletrail's terminal output. All visual constants live here so the rest
// of the CLI can reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

// --- Color palette ---

var (
	White = lipgloss.Color("#E2E2E2")
	Gray  = lipgloss.Color("#888888")

	Blue   = lipgloss.Color("#5FAFFF")
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// AccentText is for highlighted values (region slugs, hostnames).
	AccentText = lipgloss.NewStyle().
			Foreground(Blue)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// EnvironmentStyle returns the style used when announcing an environment by
// name, so each environment keeps a consistent color across the wizard.
func EnvironmentStyle(environment string) lipgloss.Style {
	switch environment {
	case "prod", "production":
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	case "staging":
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	case "dev":
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(Blue).Bold(true)
}

// Error renders msg with the error marker prefix.
func Error(msg string) string {
	return ErrorText.Render("✗ " + msg)
}

// Success renders msg with the success marker prefix.
func Success(msg string) string {
	return SuccessText.Render("✓ " + msg)
}

// Warning renders msg with the warning marker prefix.
func Warning(msg string) string {
	return WarningText.Render("! " + msg)
}
