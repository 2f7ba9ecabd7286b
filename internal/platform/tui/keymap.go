package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-arcade/internal/core"
)

// DefaultHoldTimeout is how long a held key stays down without a repeat.
const DefaultHoldTimeout = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "up", "w", "k":
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

// HoldTracker synthesizes key releases, which terminals never report.
// A held action is released once no press or auto-repeat for it has arrived
// within the timeout, or at once when the opposite direction is pressed.
type HoldTracker struct {
	timeout  time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. Non-positive timeouts use DefaultHoldTimeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HoldTracker{
		timeout:  timeout,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// holdable reports whether an action has hold semantics.
func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionJump
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}

// Press records a key press into the frame.
// Auto-repeats of a key that is already held only extend the hold.
func (h *HoldTracker) Press(a core.Action, now time.Time, f *core.InputFrame) {
	if !holdable(a) {
		f.Press(a)
		return
	}

	if opp := opposite(a); opp != core.ActionNone {
		if _, held := h.lastSeen[opp]; held {
			delete(h.lastSeen, opp)
			f.Release(opp)
		}
	}

	if _, held := h.lastSeen[a]; !held {
		f.Press(a)
	}
	h.lastSeen[a] = now
}

// Expire releases every hold whose last press is older than the timeout.
func (h *HoldTracker) Expire(now time.Time, f *core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		seen, held := h.lastSeen[a]
		if held && now.Sub(seen) > h.timeout {
			delete(h.lastSeen, a)
			f.Release(a)
		}
	}
}

// ReleaseAll releases every held action.
func (h *HoldTracker) ReleaseAll(f *core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		if _, held := h.lastSeen[a]; held {
			delete(h.lastSeen, a)
			f.Release(a)
		}
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
