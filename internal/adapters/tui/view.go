package tui

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/cram/internal/adapters/notify"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
	"go.trai.ch/cram/internal/ui/style"
)

const (
	helpList  = "tab switch · j/k move · / search · s study · d delete · r refresh · R retry · q quit"
	helpStudy = "space flip · n next · p previous · esc back"
)

// View renders the UI.
func (m *Model) View() string {
	if !m.loaded || m.snapshot.Screen == domain.ScreenLoading {
		return "Loading..."
	}
	if m.snapshot.Screen == domain.ScreenWelcome {
		return m.welcome()
	}

	var b strings.Builder
	b.WriteString(m.header() + "\n")
	b.WriteString(m.tabBar() + "\n")
	b.WriteString(m.search.View() + "\n\n")

	help := helpList
	if m.deck != nil {
		b.WriteString(m.studyCard())
		help = helpStudy
	} else {
		b.WriteString(m.list())
	}

	b.WriteString("\n" + m.statusLine() + "\n")
	if t, ok := m.Toast(); ok {
		b.WriteString(renderToast(t) + "\n")
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m *Model) welcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("cram") + "\n\n")
	b.WriteString("Your flashcards, notes and quizzes in one place.\n\n")
	b.WriteString("Sign in with " + selectedStyle.Render("cram login --name NAME") + " to open your dashboard.\n\n")
	b.WriteString(helpStyle.Render("q quit"))
	return b.String()
}

func (m *Model) header() string {
	user := m.snapshot.User
	if user == "" {
		user = "student"
	}
	line := titleStyle.Render("cram") + " " + user
	if m.snapshot.NeedsProfile {
		line += detailStyle.Render("  (set your name with cram profile set NAME)")
	}
	return line
}

func (m *Model) tabBar() string {
	parts := make([]string, 0, tabCount)
	for t := range tabCount {
		label := fmt.Sprintf("%s (%d)", t, m.count(t))
		if m.snapshot.Pending(t) {
			label = fmt.Sprintf("%s (%s)", t, m.spinner.View())
		}
		if t == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) list() string {
	if err := m.snapshot.Err; err != nil {
		return failureStyle.Render(style.Cross+" "+oneLine(err)) + detailStyle.Render("  R to retry") + "\n"
	}

	rows := m.rows()
	var b strings.Builder
	if m.tab == TabQuizzes {
		b.WriteString(m.attemptSummary() + "\n\n")
	}
	if len(rows) == 0 || m.awaitingSearch() {
		b.WriteString(detailStyle.Render(m.emptyText()) + "\n")
		return b.String()
	}

	start := m.offset
	end := len(rows)
	if m.height > 0 {
		end = min(start+m.listHeight(), len(rows))
	}

	topic := ""
	for i := start; i < end; i++ {
		r := rows[i]
		if r.topic != "" && (r.topic != topic || i == start) {
			topic = r.topic
			b.WriteString(topicStyle.Render(topic) + "\n")
		}

		cursor := "  "
		text := r.text
		if i == m.selected {
			cursor = selectedStyle.Render("> ")
			text = selectedStyle.Render(text)
		}
		b.WriteString(cursor + text + "  " + bandStyle(r.band).Render(r.detail) + "\n")
	}
	return b.String()
}

// awaitingSearch reports whether the tab waits on search results it has none of yet.
func (m *Model) awaitingSearch() bool {
	s := m.snapshot
	return m.tab != TabFiles && s.Searching && !s.Searched
}

func (m *Model) emptyText() string {
	name := strings.ToLower(m.tab.String())
	switch {
	case m.awaitingSearch():
		return fmt.Sprintf("Searching %s for %q...", name, m.term)
	case m.snapshot.Pending(m.tab):
		return fmt.Sprintf("Loading %s...", name)
	}
	if m.snapshot.Searched {
		return fmt.Sprintf("No %s match %q.", name, m.term)
	}
	return fmt.Sprintf("No %s yet.", name)
}

func (m *Model) attemptSummary() string {
	s := m.snapshot.Attempts
	if s.Total == 0 {
		return detailStyle.Render("No quiz attempts yet.")
	}
	band := view.BandPoor
	switch {
	case s.AveragePercent >= 80:
		band = view.BandGood
	case s.AveragePercent >= 60:
		band = view.BandFair
	}
	return fmt.Sprintf("%s · average %s · last %s",
		view.Pluralize(s.Total, "attempt", "attempts"),
		bandStyle(string(band)).Render(fmt.Sprintf("%d%%", s.AveragePercent)),
		view.Date(s.Last),
	)
}

func (m *Model) studyCard() string {
	if m.deck.Len() == 0 {
		return detailStyle.Render("No flashcards to study.") + "\n"
	}
	card, _ := m.deck.Current()
	label, text := m.deck.Face()
	body := fmt.Sprintf("%s  %s\n\n%s\n\n%s",
		topicStyle.Render(card.Topic),
		bandStyle(view.DifficultyBand(card.Difficulty)).Render(card.Difficulty),
		selectedStyle.Render(label)+"  "+text,
		detailStyle.Render(fmt.Sprintf("card %d of %d", m.deck.Position(), m.deck.Len())),
	)
	return cardStyle.Render(body) + "\n"
}

func (m *Model) statusLine() string {
	if n := len(m.inflight); n > 0 {
		return m.spinner.View() + " " + view.Pluralize(n, "call", "calls") + " in flight"
	}
	if m.last == nil {
		return detailStyle.Render("idle")
	}
	if m.last.err != nil {
		return failureStyle.Render(fmt.Sprintf("%s %s failed: %s", style.Cross, m.last.name, oneLine(m.last.err)))
	}
	return successStyle.Render(style.Check) + detailStyle.Render(fmt.Sprintf(" %s %s", m.last.name, m.last.duration.Round(time.Millisecond)))
}

func renderToast(t notify.Toast) string {
	if t.Failed() {
		return failureStyle.Render(fmt.Sprintf("%s %s: %s", style.Cross, t.Message, oneLine(t.Err)))
	}
	return successStyle.Render(style.Check + " " + t.Message)
}

// oneLine renders err without the line breaks of joined errors.
func oneLine(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
