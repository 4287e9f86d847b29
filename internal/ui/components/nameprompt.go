package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"breathe5/internal/ui/theme"
)

// NameSubmitMsg is emitted when the user confirms a non-blank name.
type NameSubmitMsg struct{ Name string }

// NamePrompt is the onboarding name entry, backed by bubbles/textinput.
// Blank names are rejected in place rather than submitted.
type NamePrompt struct {
	input textinput.Model
	warn  string
	width int
}

func NewNamePrompt(initial string) NamePrompt {
	ti := textinput.New()
	ti.Placeholder = "Enter your name"
	ti.CharLimit = 64
	ti.SetValue(initial)
	return NamePrompt{input: ti}
}

// Focus readies the prompt for typing.
func (p *NamePrompt) Focus() tea.Cmd {
	return p.input.Focus()
}

func (p *NamePrompt) SetWidth(w int) { p.width = w }

func (p NamePrompt) Update(msg tea.Msg) (NamePrompt, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		name := strings.TrimSpace(p.input.Value())
		if name == "" {
			p.warn = "Please enter your name"
			return p, nil
		}
		p.warn = ""
		return p, func() tea.Msg { return NameSubmitMsg{Name: name} }
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p NamePrompt) View(t theme.Theme) string {
	var sb strings.Builder
	sb.WriteString(t.Title.Render("Welcome to Breathe5") + "\n\n")
	sb.WriteString(p.input.View() + "\n")
	if p.warn != "" {
		sb.WriteString("\n" + t.Muted.Foreground(t.Warn).Render(p.warn) + "\n")
	}
	sb.WriteString("\n" + t.Muted.Render("enter: continue"))

	w := p.width
	if w < 30 {
		w = 48
	}
	return t.Card.Width(w - 2).Render(sb.String())
}
