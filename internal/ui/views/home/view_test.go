package home

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	sessiondto "breathe5/internal/modules/session/dto"
	"breathe5/internal/ui/theme"
)

type stubPort struct{}

func (stubPort) Start(context.Context, string) (sessiondto.StartOutput, error) {
	return sessiondto.StartOutput{}, nil
}

func (stubPort) Stop(context.Context, bool) (sessiondto.StopOutput, error) {
	return sessiondto.StopOutput{}, nil
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestManualStopDisablesCountdownImmediately(t *testing.T) {
	t.Parallel()
	m := New(stubPort{}, theme.Light())
	m.running = true
	m.remaining = 120

	m, cmd := m.Update(keyMsg("s"))
	if m.running {
		t.Fatalf("stop must disable the countdown before the save returns")
	}
	if cmd == nil {
		t.Fatalf("stop should dispatch the save command")
	}

	// A tick already in flight when the user stopped must be dropped, not
	// trigger a second stop.
	m, cmd = m.Update(tickMsg(time.Time{}))
	if cmd != nil {
		t.Fatalf("tick after stop must not dispatch anything")
	}
	if m.remaining != 120 {
		t.Fatalf("tick after stop must not advance the countdown, got %d", m.remaining)
	}
}

func TestZeroTickStopsExactlyOnce(t *testing.T) {
	t.Parallel()
	m := New(stubPort{}, theme.Light())
	m.running = true
	m.remaining = 1

	m, cmd := m.Update(tickMsg(time.Time{}))
	if m.running {
		t.Fatalf("expiry must disable the countdown before the save returns")
	}
	if cmd == nil {
		t.Fatalf("expiry should dispatch the save command")
	}

	// A key press landing in the same frame sees the countdown already
	// stopped and starts a fresh session instead of stopping again.
	m2, _ := m.Update(keyMsg("s"))
	if m2.running {
		t.Fatalf("key press after expiry must not act on the finished session")
	}
}

func TestBellCuesDistinguishStartFromCompletion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	m := New(stubPort{}, theme.Light())
	m.soundOn = true
	m.bellOut = &buf

	if cmd := m.bellCmd(1); cmd == nil {
		t.Fatalf("start cue missing")
	} else {
		cmd()
	}
	if got := buf.String(); got != "\a" {
		t.Fatalf("start should ring once, got %q", got)
	}

	buf.Reset()
	if cmd := m.bellCmd(2); cmd == nil {
		t.Fatalf("completion cue missing")
	} else {
		cmd()
	}
	if got := buf.String(); got != "\a\a" {
		t.Fatalf("completion should ring twice, got %q", got)
	}
}

func TestBellSilentWhenSoundsOff(t *testing.T) {
	t.Parallel()
	m := New(stubPort{}, theme.Light())
	if cmd := m.bellCmd(2); cmd != nil {
		t.Fatalf("sounds off must ring nothing")
	}
}
