package tui

import (
	"fmt"
	"io"

	"scaletrailhq/scaletrail/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

var bannerBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(styles.Blue).
	Padding(0, 3)

// ShowBanner prints the init banner and a short tagline.
func ShowBanner(out io.Writer) {
	title := styles.Title.Render("scaletrail")
	tagline := styles.Subtitle.Render("Plan your infrastructure before you build it.")
	fmt.Fprintln(out, bannerBox.Render(title+"\n"+tagline))
	fmt.Fprintln(out)
}
