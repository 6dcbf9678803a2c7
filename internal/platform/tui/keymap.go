package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/entropy/internal/core"
)

// DefaultHoldTicks is how long a direction key stays held after its last
// press. Terminals send no key-up events, so walking relies on key repeat
// refreshing the hold before it runs out.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions and
// accumulates them into the input frame for the next tick.
type KeyMapper struct {
	holdTicks int
	left      int // Ticks of hold remaining
	right     int
	pending   core.InputFrame
}

// NewKeyMapper creates a key mapper. A non-positive holdTicks uses
// DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{holdTicks: holdTicks, pending: core.NewInputFrame()}
}

// MapKey translates a key to an action. Bindings differ between menus
// and play: in play w/up jump and directions are held.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, playing bool) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "w", "up", "k":
		if playing {
			return core.ActionJump, false
		}
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Press records a key for the next tick. Returns true on a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, playing bool) bool {
	action, isQuit := km.MapKey(msg, playing)
	if isQuit {
		return true
	}

	switch {
	case playing && action == core.ActionLeft:
		km.left, km.right = km.holdTicks, 0
	case playing && action == core.ActionRight:
		km.right, km.left = km.holdTicks, 0
	case action != core.ActionNone:
		km.pending.Set(action)
	}
	return false
}

// Frame returns the input for one tick and advances the hold timers.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := km.pending.Clone()
	if km.left > 0 {
		frame.Set(core.ActionLeft)
		km.left--
	}
	if km.right > 0 {
		frame.Set(core.ActionRight)
		km.right--
	}
	km.pending.Clear()
	return frame
}

// Release drops held directions, e.g. when play ends.
func (km *KeyMapper) Release() {
	km.left, km.right = 0, 0
}
