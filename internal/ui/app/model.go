package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "breathe5/internal/modules/session/dto"
	settingsdto "breathe5/internal/modules/settings/dto"
	"breathe5/internal/ui/components"
	"breathe5/internal/ui/theme"
	historyview "breathe5/internal/ui/views/history"
	homeview "breathe5/internal/ui/views/home"
	insightsview "breathe5/internal/ui/views/insights"
	notificationsview "breathe5/internal/ui/views/notifications"
	settingsview "breathe5/internal/ui/views/settings"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Start(ctx context.Context, username string) (sessiondto.StartOutput, error)
	Stop(ctx context.Context, manual bool) (sessiondto.StopOutput, error)
	Active(ctx context.Context) (sessiondto.ActiveOutput, error)
	History(ctx context.Context) (sessiondto.HistoryOutput, error)
	ClearHistory(ctx context.Context) error
}

type settingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	SetUsername(ctx context.Context, username string) (settingsdto.SettingsOutput, error)
	ToggleDarkMode(ctx context.Context) (settingsdto.SettingsOutput, error)
	Set(ctx context.Context, name string, on bool) (settingsdto.SettingsOutput, error)
}

// ─── phases and tabs ─────────────────────────────────────────────────────────

type phase int

const (
	phaseSplash phase = iota
	phaseName
	phaseTabs
)

type tabID int

const (
	tabHome tabID = iota
	tabHistory
	tabInsights
	tabNotifications
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{
	"Home", "History", "Insights", "Notifications", "Settings",
}

// ─── async messages ──────────────────────────────────────────────────────────

type splashDoneMsg struct{}

type settingsLoadedMsg struct {
	out settingsdto.SettingsOutput
	err error
}

type activeLoadedMsg struct {
	active sessiondto.ActiveOutput
	err    error
}

type nameSavedMsg struct {
	out settingsdto.SettingsOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Quit     key.Binding
	Session  key.Binding
	Guide    key.Binding
	ClearKey key.Binding
	Toggle   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Session:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop meditation")),
		Guide:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "meditation guide")),
		ClearKey: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear history")),
		Toggle:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle setting")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Session, k.Guide},
		{k.ClearKey, k.Toggle},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the onboarding flow, tab
// routing, theming, and the global help overlay. All business logic is
// delegated to port interfaces; all rendering to sub-views.
type Model struct {
	session  sessionPort
	settings settingsPort

	th       theme.Theme
	phase    phase
	username string

	prompt components.NamePrompt

	homeView  homeview.Model
	histView  historyview.Model
	insView   insightsview.Model
	notifView notificationsview.Model
	setView   settingsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool

	pendingActive sessiondto.ActiveOutput
	hasPending    bool

	status string
	width  int
	height int
}

func NewModel(session sessionPort, insights insightsview.InsightsPort, settings settingsPort) Model {
	th := theme.Light()
	return Model{
		session:   session,
		settings:  settings,
		th:        th,
		phase:     phaseSplash,
		prompt:    components.NewNamePrompt(""),
		homeView:  homeview.New(session, th),
		histView:  historyview.New(session, th),
		insView:   insightsview.New(insights, th),
		notifView: notificationsview.New(th),
		setView:   settingsview.New(settings, th),
		keys:      defaultKeys(),
		help:      help.New(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg { return splashDoneMsg{} }),
		m.loadSettingsCmd(),
		m.loadActiveCmd(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.prompt.SetWidth(min(m.width-4, 52))
		m.propagateSize()
		return m, nil

	case splashDoneMsg:
		if m.phase == phaseSplash {
			m.phase = phaseName
			return m, m.prompt.Focus()
		}
		return m, nil

	case settingsLoadedMsg:
		if msg.err != nil {
			m.status = "settings: " + msg.err.Error()
			return m, nil
		}
		m.applySettings(msg.out)
		m.prompt = components.NewNamePrompt(msg.out.Username)
		if m.phase == phaseName {
			return m, m.prompt.Focus()
		}
		return m, nil

	case activeLoadedMsg:
		if msg.err != nil {
			// No saved session to recover is the normal case.
			return m, nil
		}
		m.pendingActive = msg.active
		m.hasPending = true
		if m.phase == phaseTabs {
			return m, m.resumePending()
		}
		return m, nil

	case components.NameSubmitMsg:
		return m, m.saveNameCmd(msg.Name)

	case nameSavedMsg:
		if msg.err != nil {
			m.status = "could not save name: " + msg.err.Error()
			return m, nil
		}
		m.applySettings(msg.out)
		m.phase = phaseTabs
		cmds := []tea.Cmd{
			m.histView.Init(),
			m.insView.Init(),
		}
		if m.hasPending {
			cmds = append(cmds, m.resumePending())
		}
		return m, tea.Batch(cmds...)

	case homeview.StoppedMsg:
		// Let the home view render the outcome, then refresh the views
		// that read from history.
		var cmd tea.Cmd
		m.homeView, cmd = m.homeView.Update(msg)
		return m, tea.Batch(cmd, m.histView.Refresh(), m.insView.Refresh())

	case settingsview.SavedMsg:
		if msg.Err == nil {
			m.applySettings(msg.Out)
		}
		var cmd tea.Cmd
		m.setView, cmd = m.setView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.phase {
		case phaseSplash:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.phase = phaseName
			return m, m.prompt.Focus()

		case phaseName:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd

		case phaseTabs:
			if m.showHelp {
				if msg.String() == "?" || msg.String() == "esc" {
					m.showHelp = false
				}
				return m, nil
			}
			if m.activeTab == tabHistory && m.histView.Filtering() {
				break
			}
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
				return m, nil
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	return m.updateActive(msg)
}

// updateActive routes a message to the view that should handle it. Timer
// ticks keep flowing to the home view even when another tab is focused, and
// async load results go to the view that requested them regardless of which
// tab the user is looking at.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if _, key := msg.(tea.KeyMsg); !key || m.activeTab == tabHome {
		m.homeView, cmd = m.homeView.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.phase != phaseTabs {
		return m, tea.Batch(cmds...)
	}

	switch msg.(type) {
	case historyview.LoadedMsg, historyview.ClearedMsg:
		m.histView, cmd = m.histView.Update(msg)
	case insightsview.LoadedMsg:
		m.insView, cmd = m.insView.Update(msg)
	default:
		switch m.activeTab {
		case tabHistory:
			m.histView, cmd = m.histView.Update(msg)
		case tabInsights:
			m.insView, cmd = m.insView.Update(msg)
		case tabNotifications:
			m.notifView, cmd = m.notifView.Update(msg)
		case tabSettings:
			m.setView, cmd = m.setView.Update(msg)
		default:
			cmd = nil
		}
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.phase {
	case phaseSplash:
		return m.renderSplash()
	case phaseName:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.prompt.View(m.th))
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center,
			m.th.Card.Render(m.help.FullHelpView(m.keys.FullHelp())))
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderSplash() string {
	logo := m.th.Title.Render("Breathe5") + "\n\n" +
		m.th.Hot.Render("  ◯  ") + "\n\n" +
		m.th.Muted.Render("five minutes of calm")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, logo)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.homeView.View()
	case tabHistory:
		return m.histView.View()
	case tabInsights:
		return m.insView.View()
	case tabNotifications:
		return m.notifView.View()
	case tabSettings:
		return m.setView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = m.th.Hot.Render(" " + label + " ")
		} else {
			parts[i] = m.th.Muted.Render(" " + label + " ")
		}
	}
	sep := m.th.Muted.Render(" │ ")
	bar := "breathe5  " + strings.Join(parts, sep)
	return m.th.Bar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := "hi, " + m.username
	right := m.th.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + m.th.Bar.Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// applySettings pushes a fresh settings snapshot into every view: the theme,
// the greeting name, and the home view's sound flag.
func (m *Model) applySettings(out settingsdto.SettingsOutput) {
	m.username = out.Username
	m.th = theme.ForMode(out.DarkMode)
	m.homeView.SetTheme(m.th)
	m.homeView.SetUser(out.Username)
	m.homeView.SetSound(out.NotificationSounds)
	m.histView.SetTheme(m.th)
	m.insView.SetTheme(m.th)
	m.notifView.SetTheme(m.th)
	m.setView.SetTheme(m.th)
	m.setView.SetCurrent(out)
}

func (m *Model) resumePending() tea.Cmd {
	m.hasPending = false
	m.status = "recovered a running session"
	return m.homeView.Resume(m.pendingActive)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeView, _ = m.homeView.Update(sz)
	m.histView, _ = m.histView.Update(sz)
	m.insView, _ = m.insView.Update(sz)
	m.notifView, _ = m.notifView.Update(sz)
	m.setView, _ = m.setView.Update(sz)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.settings.Get(context.Background())
		return settingsLoadedMsg{out: out, err: err}
	}
}

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.session.Active(context.Background())
		return activeLoadedMsg{active: active, err: err}
	}
}

func (m Model) saveNameCmd(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.settings.SetUsername(context.Background(), name)
		return nameSavedMsg{out: out, err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
