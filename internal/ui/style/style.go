// Package style holds the colors and icons shared by the dashboard, line output and logs.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent  = lipgloss.Color("#8B5CF6")
	Muted   = lipgloss.Color("#667085")
	Light   = lipgloss.Color("#FFFFFF")
	Ink     = lipgloss.Color("#0B0F19")
	Good    = lipgloss.Color("#22A06B")
	Bad     = lipgloss.Color("#D93025")
	Caution = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Debug   = "~"
)
