package history

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "breathe5/internal/modules/session/dto"
	"breathe5/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	History(ctx context.Context) (sessiondto.HistoryOutput, error)
	ClearHistory(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Out sessiondto.HistoryOutput
	Err error
}

type ClearedMsg struct{ Err error }

// ─── list item ───────────────────────────────────────────────────────────────

type sessionItem struct {
	session sessiondto.StoredSessionOutput
}

func (i sessionItem) Title() string { return "🕒 " + i.session.Date }

func (i sessionItem) Description() string {
	status := "❌ Incomplete"
	if i.session.Completed {
		status = "✅ Completed"
	}
	return "👤 " + i.session.Username + "  " + i.session.Duration + "  " + status
}

func (i sessionItem) FilterValue() string { return i.session.Username }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       HistoryPort
	th         theme.Theme
	list       list.Model
	confirming bool
	degraded   bool
	empty      bool
	width      int
	height     int
}

func New(port HistoryPort, th theme.Theme) Model {
	m := Model{port: port, th: th, empty: true}
	m.list = newList(th)
	return m
}

func newList(th theme.Theme) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(th.Accent).BorderForeground(th.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(th.Subtle).BorderForeground(th.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Meditation History"
	l.Styles.Title = th.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return l
}

func (m *Model) SetTheme(th theme.Theme) {
	m.th = th
	items := m.list.Items()
	w, h := m.list.Width(), m.list.Height()
	m.list = newList(th)
	m.list.SetItems(items)
	m.list.SetSize(w, h)
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh reloads the persisted history.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.History(context.Background())
		return LoadedMsg{Out: out, Err: err}
	}
}

// Filtering reports whether the list's search filter is active, so the app
// can yield global keys while the user types.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)

	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Meditation History — " + msg.Err.Error()
			return m, nil
		}
		m.degraded = msg.Out.Degraded
		m.empty = len(msg.Out.Sessions) == 0
		// Newest first, matching the mobile history screen.
		items := make([]list.Item, 0, len(msg.Out.Sessions))
		for i := len(msg.Out.Sessions) - 1; i >= 0; i-- {
			items = append(items, sessionItem{session: msg.Out.Sessions[i]})
		}
		return m, m.list.SetItems(items)

	case ClearedMsg:
		if msg.Err != nil {
			m.list.Title = "Meditation History — clear failed: " + msg.Err.Error()
			return m, nil
		}
		m.empty = true
		return m, m.list.SetItems(nil)

	case tea.KeyMsg:
		if m.confirming {
			switch msg.String() {
			case "y":
				m.confirming = false
				return m, m.clearCmd()
			case "n", "esc":
				m.confirming = false
			}
			return m, nil
		}
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "c":
			if !m.empty {
				m.confirming = true
			}
			return m, nil
		case "r":
			return m, m.Refresh()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.confirming {
		prompt := m.th.Title.Render("Clear History") + "\n\n" +
			"Are you sure you want to clear all meditation history?\n\n" +
			m.th.Muted.Render("y: yes  n: cancel")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.th.Card.Render(prompt))
	}
	if m.empty {
		line := "Start your first meditation to see it here!"
		if m.degraded {
			line = m.th.Muted.Foreground(m.th.Warn).Render("history could not be read — showing empty")
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, line)
	}
	footer := m.th.Muted.Render("c: clear history  r: refresh")
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

func (m Model) clearCmd() tea.Cmd {
	return func() tea.Msg {
		return ClearedMsg{Err: m.port.ClearHistory(context.Background())}
	}
}
