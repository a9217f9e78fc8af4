package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ExpireToast builds the message that hides the toast shown at at.
func ExpireToast(at time.Time) tea.Msg {
	return msgToastExpired{at: at}
}

// Changed builds the message the watch m currently follows sends when its data changes.
func Changed(m *Model) tea.Msg {
	return msgChanged{watch: m.watch}
}
