package theme

import "github.com/charmbracelet/lipgloss"

// Theme is the resolved style set for one appearance mode. It is handed to
// views explicitly when the app starts and again when the user toggles dark
// mode; there is no package-level current theme.
type Theme struct {
	Dark bool

	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Subtle     lipgloss.Color
	Accent     lipgloss.Color
	Warn       lipgloss.Color

	Title  lipgloss.Style
	Muted  lipgloss.Style
	Hot    lipgloss.Style
	Card   lipgloss.Style
	Tile   lipgloss.Style
	Locked lipgloss.Style
	Bar    lipgloss.Style
}

func Light() Theme {
	t := Theme{
		Background: lipgloss.Color("#ffffff"),
		Surface:    lipgloss.Color("#f0f4f8"),
		Text:       lipgloss.Color("#333333"),
		Subtle:     lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#4EB8A0"),
		Warn:       lipgloss.Color("#FF6B6B"),
	}
	return t.build()
}

func Dark() Theme {
	t := Theme{
		Dark:       true,
		Background: lipgloss.Color("#121212"),
		Surface:    lipgloss.Color("#2a2a2a"),
		Text:       lipgloss.Color("#E5E5EA"),
		Subtle:     lipgloss.Color("#aaaaaa"),
		Accent:     lipgloss.Color("#4EB8A0"),
		Warn:       lipgloss.Color("#FF6B6B"),
	}
	return t.build()
}

// ForMode selects the palette for the persisted dark-mode flag.
func ForMode(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

func (t Theme) build() Theme {
	t.Title = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(t.Subtle)
	t.Hot = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Foreground(t.Text).
		Padding(1, 2)
	t.Tile = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Subtle).
		Foreground(t.Text).
		Padding(0, 2).
		Align(lipgloss.Center)
	t.Locked = lipgloss.NewStyle().Foreground(t.Subtle).Faint(true)
	t.Bar = lipgloss.NewStyle().Background(t.Surface).Foreground(t.Text)
	return t
}
