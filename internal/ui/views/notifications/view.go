package notifications

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"breathe5/internal/ui/theme"
)

type notification struct {
	title   string
	message string
	age     string
	read    bool
}

// Model is the notifications screen. The items are the app's canned
// in-app notices; only the read flag changes, and only for this run.
type Model struct {
	th     theme.Theme
	items  []notification
	cursor int
	width  int
	height int
}

func New(th theme.Theme) Model {
	return Model{
		th: th,
		items: []notification{
			{title: "Time for your morning meditation", message: "You scheduled a session for this time.", age: "10 min ago"},
			{title: "7-day streak!", message: "You've meditated 7 days in a row.", age: "1 hour ago", read: true},
			{title: "Breathing Tip", message: "Try the 4-7-8 technique today.", age: "3 hours ago", read: true},
		},
	}
}

func (m *Model) SetTheme(th theme.Theme) { m.th = th }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			m.items[m.cursor].read = true
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.th.Title.Render("Notifications") + "\n\n")
	for i, n := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = m.th.Hot.Render("> ")
		}
		title := n.title
		if !n.read {
			title = m.th.Hot.Render("● " + title)
		} else {
			title = m.th.Muted.Render(title)
		}
		sb.WriteString(marker + title + "\n")
		sb.WriteString("  " + m.th.Muted.Render(n.message+"  ·  "+n.age) + "\n\n")
	}
	sb.WriteString(m.th.Muted.Render("enter: mark as read"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}
