// Package style holds the colors and icons shared by the log handler and
// the text report.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Iris   = lipgloss.Color("#8B5CF6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Plus    = "+"
	Minus   = "-"
	Dot     = "●"
)

// Header renders a bold section title with r's color profile.
func Header(r *lipgloss.Renderer, s string) string {
	return r.NewStyle().Bold(true).Render(s)
}
