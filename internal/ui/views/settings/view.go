package settings

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	settingsdto "breathe5/internal/modules/settings/dto"
	"breathe5/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SettingsPort interface {
	ToggleDarkMode(ctx context.Context) (settingsdto.SettingsOutput, error)
	Set(ctx context.Context, name string, on bool) (settingsdto.SettingsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// SavedMsg bubbles to the app, which re-themes every view when the
// dark-mode flag changed.
type SavedMsg struct {
	Out settingsdto.SettingsOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	rowDarkMode = iota
	rowSounds
	rowVibration
	rowReminders
	rowCount
)

var rowMeta = [rowCount]struct {
	name string
	desc string
}{
	{"Dark Mode", "Switch between light and dark theme"},
	{"Notification Sounds", "Enable sounds for notifications"},
	{"Vibration", "Vibrate for notifications"},
	{"Daily Reminders", "Receive daily meditation reminders"},
}

type Model struct {
	port    SettingsPort
	th      theme.Theme
	current settingsdto.SettingsOutput
	cursor  int
	errLine string
	width   int
	height  int
}

func New(port SettingsPort, th theme.Theme) Model {
	return Model{port: port, th: th}
}

func (m *Model) SetTheme(th theme.Theme) { m.th = th }

// SetCurrent replaces the rendered snapshot. The app owns the settings load
// and pushes fresh state here after every save.
func (m *Model) SetCurrent(out settingsdto.SettingsOutput) { m.current = out }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SavedMsg:
		if msg.Err != nil {
			m.errLine = msg.Err.Error()
			return m, nil
		}
		m.errLine = ""
		m.current = msg.Out

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < rowCount-1 {
				m.cursor++
			}
		case "enter", " ":
			return m, m.toggleCmd(m.cursor)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.th.Title.Render("Settings") + "\n\n")
	for i := 0; i < rowCount; i++ {
		marker := "  "
		if i == m.cursor {
			marker = m.th.Hot.Render("> ")
		}
		state := m.th.Muted.Render("off")
		if m.rowValue(i) {
			state = m.th.Hot.Render("on ")
		}
		sb.WriteString(marker + state + "  " + rowMeta[i].name + "\n")
		sb.WriteString("       " + m.th.Muted.Render(rowMeta[i].desc) + "\n")
	}
	sb.WriteString("\n" + m.th.Muted.Render("enter/space: toggle"))
	if m.errLine != "" {
		sb.WriteString("\n" + m.th.Muted.Foreground(m.th.Warn).Render(m.errLine))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

func (m Model) rowValue(row int) bool {
	switch row {
	case rowDarkMode:
		return m.current.DarkMode
	case rowSounds:
		return m.current.NotificationSounds
	case rowVibration:
		return m.current.Vibration
	case rowReminders:
		return m.current.DailyReminders
	}
	return false
}

func (m Model) toggleCmd(row int) tea.Cmd {
	return func() tea.Msg {
		var (
			out settingsdto.SettingsOutput
			err error
		)
		ctx := context.Background()
		switch row {
		case rowDarkMode:
			out, err = m.port.ToggleDarkMode(ctx)
		case rowSounds:
			out, err = m.port.Set(ctx, "sounds", !m.current.NotificationSounds)
		case rowVibration:
			out, err = m.port.Set(ctx, "vibration", !m.current.Vibration)
		case rowReminders:
			out, err = m.port.Set(ctx, "reminders", !m.current.DailyReminders)
		}
		return SavedMsg{Out: out, Err: err}
	}
}
