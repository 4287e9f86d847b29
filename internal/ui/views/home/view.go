package home

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"breathe5/internal/modules/session/domain"
	sessiondto "breathe5/internal/modules/session/dto"
	apperrors "breathe5/internal/platform/errors"
	"breathe5/internal/platform/timefmt"
	"breathe5/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SessionPort interface {
	Start(ctx context.Context, username string) (sessiondto.StartOutput, error)
	Stop(ctx context.Context, manual bool) (sessiondto.StopOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StartedMsg struct {
	Out sessiondto.StartOutput
	Err error
}

// StoppedMsg bubbles to the app so other views can refresh after a save.
type StoppedMsg struct {
	Out sessiondto.StopOutput
	Err error
}

type tickMsg time.Time

// ─── breathing circle ────────────────────────────────────────────────────────

// Four frames out, four frames in: an 8-second breath cycle driven by the
// countdown tick.
var breathFrames = []string{
	"\n\n    ◯\n\n",
	"\n   ╭─╮\n   │ │\n   ╰─╯\n",
	"\n  ╭───╮\n  │   │\n  ╰───╯\n",
	" ╭─────╮\n │     │\n │     │\n ╰─────╯",
}

var breathCycle = []int{0, 1, 2, 3, 3, 2, 1, 0}

var guideLines = []string{
	"1. Find a quiet and comfortable place to sit",
	"2. Close your eyes and take a few deep breaths",
	"3. Focus on your natural breathing pattern",
	"4. When your mind wanders, gently return focus to your breath",
	"5. Start with short sessions and gradually increase duration",
	"6. Be patient with yourself - meditation is a practice",
	"7. Try to meditate at the same time each day",
	"8. Use the breathing circle as your visual guide",
	"9. Don't judge your thoughts - just observe them",
	"10. Finish your session by gradually returning to awareness",
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the breathing-timer screen. It owns the single running countdown
// and invokes the session port when the timer stops, naturally or manually.
type Model struct {
	port     SessionPort
	th       theme.Theme
	username string
	soundOn  bool
	bellOut  io.Writer

	remaining int
	running   bool
	breath    int
	showGuide bool
	status    string
	width     int
	height    int
}

func New(port SessionPort, th theme.Theme) Model {
	return Model{
		port:      port,
		th:        th,
		remaining: domain.TotalSeconds,
		status:    "press s to start",
	}
}

func (m *Model) SetTheme(th theme.Theme) { m.th = th }

func (m *Model) SetUser(username string) { m.username = username }

func (m *Model) SetSound(on bool) { m.soundOn = on }

// Resume picks up a recovered active session and restarts the countdown.
func (m *Model) Resume(active sessiondto.ActiveOutput) tea.Cmd {
	m.running = true
	m.remaining = active.Remaining
	m.username = active.Username
	m.status = "session recovered"
	if m.remaining <= 0 {
		m.running = false
		return m.stopCmd(false)
	}
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if !m.running {
			return m, nil
		}
		m.remaining--
		m.breath++
		if m.remaining <= 0 {
			// Flip running before dispatching the stop so a racing key
			// press cannot issue a second stop for the same session.
			m.running = false
			return m, m.stopCmd(false)
		}
		return m, tickCmd()

	case StartedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrActiveSessionExists) {
				m.status = "a session is already running"
			} else {
				m.status = "start failed: " + msg.Err.Error()
			}
			return m, nil
		}
		m.running = true
		m.remaining = domain.TotalSeconds
		m.breath = 0
		m.status = "breathe with the circle"
		return m, tea.Batch(tickCmd(), m.bellCmd(1))

	case StoppedMsg:
		m.running = false
		m.remaining = domain.TotalSeconds
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrNoActiveSession) {
				m.status = "meditation session was not started properly"
			} else {
				m.status = "save failed: " + msg.Err.Error()
			}
			return m, nil
		}
		m.status = fmt.Sprintf("session saved — meditation of %s recorded", msg.Out.Duration)
		if msg.Out.Completed {
			return m, m.bellCmd(2)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if m.running {
				// Disable further ticks before the stop round-trips, so
				// the countdown cannot reach zero and stop a second time.
				m.running = false
				return m, m.stopCmd(true)
			}
			return m, m.startCmd()
		case "g":
			m.showGuide = !m.showGuide
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	name := m.username
	if name == "" {
		name = domain.DefaultUsername
	}
	sb.WriteString(m.th.Title.Render("Hi, "+name+"!") + "\n\n")

	if m.showGuide {
		sb.WriteString(m.th.Title.Render("Meditation Guide") + "\n\n")
		for _, line := range guideLines {
			sb.WriteString(m.th.Muted.Render(line) + "\n")
		}
		sb.WriteString("\n" + m.th.Muted.Render("g: back to timer"))
		return m.center(sb.String())
	}

	frame := breathFrames[breathCycle[m.breath%len(breathCycle)]]
	label := "breathe in"
	if m.breath%len(breathCycle) >= 4 {
		label = "breathe out"
	}
	if !m.running {
		frame = breathFrames[0]
		label = "ready"
	}
	sb.WriteString(m.th.Hot.Render(frame) + "\n")
	sb.WriteString(m.th.Muted.Render(label) + "\n\n")

	timer := lipgloss.NewStyle().Foreground(m.th.Accent).Bold(true).Render(timefmt.Seconds(m.remaining))
	sb.WriteString(timer + "\n\n")

	if m.running {
		sb.WriteString(m.th.Muted.Render("s: stop early  g: guide") + "\n")
	} else {
		sb.WriteString(m.th.Muted.Render("s: start meditation  g: guide") + "\n")
	}
	sb.WriteString("\n" + m.th.Muted.Render(m.status))
	return m.center(sb.String())
}

func (m Model) center(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// ─── commands ────────────────────────────────────────────────────────────────

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) startCmd() tea.Cmd {
	username := m.username
	return func() tea.Msg {
		out, err := m.port.Start(context.Background(), username)
		return StartedMsg{Out: out, Err: err}
	}
}

func (m Model) stopCmd(manual bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Stop(context.Background(), manual)
		return StoppedMsg{Out: out, Err: err}
	}
}

// bellCmd rings the terminal bell count times when sounds are on: one ring
// marks a start, two rings a natural completion.
func (m Model) bellCmd(count int) tea.Cmd {
	if !m.soundOn || count <= 0 {
		return nil
	}
	out := m.bellOut
	if out == nil {
		out = os.Stdout
	}
	return func() tea.Msg {
		for i := 0; i < count; i++ {
			if i > 0 {
				time.Sleep(150 * time.Millisecond)
			}
			_, _ = fmt.Fprint(out, "\a")
		}
		return nil
	}
}
