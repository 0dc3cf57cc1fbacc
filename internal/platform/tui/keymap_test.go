package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumpboy/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel, false},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionCancel, false},
		{"b", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, core.ActionBack, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker(30, 100*time.Millisecond)
	if h.window != 3 {
		t.Fatalf("window = %d ticks, expected 3", h.window)
	}

	frame := func(pressed bool) core.InputFrame {
		in := core.NewInputFrame()
		if pressed {
			h.press(&in)
		}
		h.tick(&in)
		return in
	}

	first := frame(true)
	if !first.Confirmed() {
		t.Error("first press should confirm")
	}
	repeat := frame(true)
	if repeat.Confirmed() || !repeat.Holding() {
		t.Error("repeat within the window should hold, not confirm")
	}
	for i := 0; i < 2; i++ {
		if !frame(false).Holding() {
			t.Fatalf("tick %d: expected hold inside the window", i)
		}
	}
	if frame(false).Holding() {
		t.Error("expected release once the window closed")
	}
	if !frame(true).Confirmed() {
		t.Error("press after release should confirm again")
	}
}
