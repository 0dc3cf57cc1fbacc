package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumpboy/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "enter", "up", "w", "z":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionCancel, false
	case "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// DefaultHoldWindow bridges the terminal's initial key repeat delay.
const DefaultHoldWindow = 550 * time.Millisecond

// holdTracker derives a held button from key repeats. Terminals report
// presses only, so the button counts as down while presses keep arriving
// within the window.
type holdTracker struct {
	window int // ticks
	left   int
}

func newHoldTracker(tickRate int, window time.Duration) holdTracker {
	ticks := int(window * time.Duration(tickRate) / time.Second)
	return holdTracker{window: max(ticks, 1)}
}

// press records a confirm key. Only the first press of a run is a
// confirm; repeats extend the hold.
func (h *holdTracker) press(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionHold)
	} else {
		frame.Set(core.ActionConfirm)
	}
	h.left = h.window
}

// tick marks the frame held while the window is open and ages it.
func (h *holdTracker) tick(frame *core.InputFrame) {
	if h.left <= 0 {
		return
	}
	frame.Set(core.ActionHold)
	h.left--
}
