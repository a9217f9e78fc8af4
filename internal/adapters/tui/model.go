package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cram/internal/adapters/notify"
	"go.trai.ch/cram/internal/adapters/telemetry"
	"go.trai.ch/cram/internal/core/domain"
	"go.trai.ch/cram/internal/engine/view"
)

// MsgSnapshot delivers freshly loaded dashboard data.
// Seq and Term identify the load that produced it; only the newest load for the
// applied term is shown.
type MsgSnapshot struct {
	Seq      uint64
	Term     string
	Snapshot Snapshot
}

// MsgToast shows a transient outcome message.
type MsgToast struct {
	Toast notify.Toast
}

type msgToastExpired struct {
	at time.Time
}

// msgChanged reports that the data behind the watch with id watch changed.
type msgChanged struct {
	watch uint64
}

// call is a remote call in flight.
type call struct {
	name    string
	started time.Time
}

// callResult is the outcome of the most recent root call.
type callResult struct {
	name     string
	duration time.Duration
	err      error
}

// Model is the Bubble Tea model of the dashboard.
type Model struct {
	ctx    context.Context
	source Source

	snapshot Snapshot
	loaded   bool
	seq      uint64
	applied  uint64

	watch   uint64
	changes <-chan struct{}
	stop    func()

	tab      Tab
	selected int
	offset   int

	search textinput.Model
	term   string

	deck *view.Deck

	spinner  spinner.Model
	inflight map[string]call
	last     *callResult

	toast    *notify.Toast
	toastTTL time.Duration

	width  int
	height int
}

// Init starts the first load and watches its data.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.follow(), m.spinner.Tick)
}

// Close stops watching the dashboard data.
func (m *Model) Close() { m.unwatch() }

// Tab returns the tab in view.
func (m *Model) Tab() Tab { return m.tab }

// Selected returns the index of the highlighted row.
func (m *Model) Selected() int { return m.selected }

// Term returns the applied search term.
func (m *Model) Term() string { return m.term }

// Studying reports whether the flashcard study deck is open.
func (m *Model) Studying() bool { return m.deck != nil }

// Deck returns the open study deck, or nil.
func (m *Model) Deck() *view.Deck { return m.deck }

// InFlight returns the number of remote calls in flight.
func (m *Model) InFlight() int { return len(m.inflight) }

// Toast returns the message currently shown, if any.
func (m *Model) Toast() (notify.Toast, bool) {
	if m.toast == nil {
		return notify.Toast{}, false
	}
	return *m.toast, true
}

// load issues the next numbered snapshot of the applied term.
func (m *Model) load() tea.Cmd {
	m.seq++
	ctx, source, seq, term := m.ctx, m.source, m.seq, m.term
	return func() tea.Msg {
		return MsgSnapshot{Seq: seq, Term: term, Snapshot: source.Start(ctx, term)}
	}
}

// follow replaces the current watch with one for the applied term and loads it.
func (m *Model) follow() tea.Cmd {
	m.unwatch()
	m.watch++
	m.changes, m.stop = m.source.Watch(m.term)
	return tea.Batch(m.load(), m.wait())
}

// unwatch stops the current watch, if any.
func (m *Model) unwatch() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
}

// wait blocks until the current watch signals a change. A stopped watch ends the wait.
func (m *Model) wait() tea.Cmd {
	changes, watch := m.changes, m.watch
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return msgChanged{watch: watch}
	}
}

func (m *Model) refresh() tea.Cmd {
	m.source.Refresh()
	return m.load()
}

func (m *Model) retry() tea.Cmd {
	ctx, source, term := m.ctx, m.source, m.term
	return func() tea.Msg {
		source.Retry(ctx, term)
		return nil
	}
}

func (m *Model) remove(id string) tea.Cmd {
	ctx, source, tab := m.ctx, m.source, m.tab
	return func() tea.Msg {
		// The notifier reports the outcome and the watch picks up the invalidated data.
		_ = source.Delete(ctx, tab, id)
		return nil
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-4, 10)
		m.ensureVisible()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgSnapshot:
		if msg.Seq <= m.applied || msg.Term != m.term {
			break
		}
		m.applied = msg.Seq
		m.snapshot = msg.Snapshot
		m.loaded = true
		m.clampSelection()

	case msgChanged:
		if msg.watch != m.watch {
			break
		}
		return m, tea.Batch(m.load(), m.wait())

	case MsgToast:
		t := msg.Toast
		m.toast = &t
		at := t.At
		return m, tea.Tick(m.toastTTL, func(time.Time) tea.Msg { return msgToastExpired{at: at} })

	case msgToastExpired:
		if m.toast != nil && m.toast.At.Equal(msg.at) {
			m.toast = nil
		}

	case telemetry.MsgCallStart:
		if msg.ParentID == "" {
			m.inflight[msg.SpanID] = call{name: msg.Name, started: msg.StartTime}
		}

	case telemetry.MsgCallComplete:
		if c, ok := m.inflight[msg.SpanID]; ok {
			delete(m.inflight, msg.SpanID)
			m.last = &callResult{name: c.name, duration: msg.EndTime.Sub(c.started), err: msg.Err}
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.unwatch()
		return m, tea.Quit
	}
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}
	if m.deck != nil {
		return m.handleStudyKey(msg)
	}

	switch msg.String() {
	case "q":
		m.unwatch()
		return m, tea.Quit
	case "tab", "right", "l":
		m.switchTab((m.tab + 1) % tabCount)
	case "shift+tab", "left", "h":
		m.switchTab((m.tab + tabCount - 1) % tabCount)
	case "1", "2", "3", "4":
		m.switchTab(Tab(msg.String()[0] - '1'))
	case "j", "down":
		if m.selected < len(m.rows())-1 {
			m.selected++
			m.ensureVisible()
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
			m.ensureVisible()
		}
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "esc":
		if m.term != "" {
			m.term = ""
			m.search.SetValue("")
			m.selected, m.offset = 0, 0
			return m, m.follow()
		}
	case "r":
		return m, m.refresh()
	case "R":
		if m.snapshot.Err != nil {
			return m, m.retry()
		}
	case "s":
		if m.tab == TabFlashcards && m.snapshot.Screen == domain.ScreenDashboard {
			m.deck = view.NewDeck(m.visibleFlashcards())
		}
	case "d":
		if m.tab == TabQuizzes {
			break
		}
		rows := m.rows()
		if m.selected < len(rows) && !m.awaitingSearch() {
			return m, m.remove(rows[m.selected].id)
		}
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.search.Blur()
		m.term = m.search.Value()
		m.selected, m.offset = 0, 0
		return m, m.follow()
	case tea.KeyEsc:
		m.search.Blur()
		m.search.SetValue(m.term)
		return m, nil
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleStudyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "f", "enter":
		m.deck.Flip()
	case "n", "right", "l":
		m.deck.Next()
	case "p", "left", "h":
		m.deck.Previous()
	case "esc", "q":
		m.deck = nil
	}
	return m, nil
}

func (m *Model) switchTab(t Tab) {
	if t == m.tab {
		return
	}
	m.tab = t
	m.selected, m.offset = 0, 0
}

func (m *Model) clampSelection() {
	if n := len(m.rows()); m.selected >= n {
		m.selected = max(n-1, 0)
	}
	m.ensureVisible()
}

func (m *Model) listHeight() int {
	// Header, tabs, search, status, toast and help lines.
	const chrome = 9
	return max(m.height-chrome, 1)
}

func (m *Model) ensureVisible() {
	if m.height <= 0 {
		return
	}
	h := m.listHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	} else if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
}
