package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cram/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(style.Light)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Accent).
			Underline(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(style.Muted)

	topicStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Ink)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Accent).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(style.Muted)

	bandStyles = map[string]lipgloss.Style{
		"easy":   lipgloss.NewStyle().Foreground(style.Good),
		"medium": lipgloss.NewStyle().Foreground(style.Caution),
		"hard":   lipgloss.NewStyle().Foreground(style.Bad),
		"good":   lipgloss.NewStyle().Foreground(style.Good),
		"fair":   lipgloss.NewStyle().Foreground(style.Caution),
		"poor":   lipgloss.NewStyle().Foreground(style.Bad),
	}

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Accent).
			Padding(1, 2)

	successStyle = lipgloss.NewStyle().
			Foreground(style.Good)

	failureStyle = lipgloss.NewStyle().
			Foreground(style.Bad)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(style.Caution)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Muted).
			Faint(true)
)

func bandStyle(band string) lipgloss.Style {
	if s, ok := bandStyles[band]; ok {
		return s
	}
	return detailStyle
}
