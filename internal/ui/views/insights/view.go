package insights

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	insightsdto "breathe5/internal/modules/insights/dto"
	"breathe5/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type InsightsPort interface {
	Compute(ctx context.Context) (insightsdto.SnapshotOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Out insightsdto.SnapshotOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    InsightsPort
	th      theme.Theme
	snap    insightsdto.SnapshotOutput
	loaded  bool
	loadErr string
	width   int
	height  int
}

func New(port InsightsPort, th theme.Theme) Model {
	return Model{port: port, th: th}
}

func (m *Model) SetTheme(th theme.Theme) { m.th = th }

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh recomputes the snapshot from the full history.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Compute(context.Background())
		return LoadedMsg{Out: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err.Error()
			return m, nil
		}
		m.loadErr = ""
		m.loaded = true
		m.snap = msg.Out

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Refresh()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loadErr != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.th.Muted.Foreground(m.th.Warn).Render("insights: "+m.loadErr))
	}
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.th.Muted.Render("Computing insights…"))
	}

	var sb strings.Builder
	sb.WriteString(m.th.Title.Render("📊 Your Meditation Journey") + "\n\n")

	tiles := lipgloss.JoinHorizontal(lipgloss.Top,
		m.tile(m.snap.CompletedSessions, "Sessions"),
		m.tile(m.snap.TotalMinutes, "Total Minutes"),
		m.tile(m.snap.LongestSession, "Longest (min)"),
		m.tile(m.snap.CurrentStreak, "Day Streak"),
	)
	sb.WriteString(tiles + "\n\n")

	sb.WriteString(m.th.Title.Render("Your Achievements") + "\n")
	var row []string
	for _, a := range m.snap.Achievements {
		label := a.Icon + " " + a.Name
		if a.Unlocked {
			row = append(row, m.th.Hot.Render(label))
		} else {
			row = append(row, m.th.Locked.Render(label))
		}
	}
	sb.WriteString(strings.Join(row[:3], "   ") + "\n")
	sb.WriteString(strings.Join(row[3:], "   ") + "\n\n")

	sb.WriteString(m.th.Card.Render(m.snap.Recommendation) + "\n\n")
	sb.WriteString(m.th.Muted.Render(`"You should sit in meditation for twenty minutes every day -`) + "\n")
	sb.WriteString(m.th.Muted.Render(`unless you're too busy, then you should sit for an hour."`) + "\n")
	if m.snap.Degraded {
		sb.WriteString("\n" + m.th.Muted.Foreground(m.th.Warn).Render("history could not be read — insights computed over empty history"))
	}
	sb.WriteString("\n" + m.th.Muted.Render("r: refresh"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

func (m Model) tile(value int, label string) string {
	content := lipgloss.NewStyle().Foreground(m.th.Accent).Bold(true).Render(fmt.Sprintf("%d", value)) +
		"\n" + m.th.Muted.Render(label)
	return m.th.Tile.Render(content)
}
