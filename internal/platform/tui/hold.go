package tui

import (
	"time"

	"github.com/vovakirdan/starfall/internal/core"
)

// HoldInput turns discrete key presses into held actions. Terminals send
// no key-up events, so an action counts as held for a short window after
// each press; key auto-repeat keeps it alive while the key is down.
type HoldInput struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	once     map[core.Action]bool
	pointer  core.Pointer
	mouseOn  bool
}

// NewHoldInput creates a tracker with the given hold window.
func NewHoldInput(window time.Duration) *HoldInput {
	if window <= 0 {
		window = 150 * time.Millisecond
	}
	return &HoldInput{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
		once:     make(map[core.Action]bool),
	}
}

// SetWindow changes the hold window for later presses.
func (h *HoldInput) SetWindow(window time.Duration) {
	if window > 0 {
		h.window = window
	}
}

// Press records an action at now. Opposite directions cancel each other
// so a quick reversal does not leave both held.
func (h *HoldInput) Press(a core.Action, now time.Time) {
	if !IsHeld(a) {
		h.once[a] = true
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.lastSeen, core.ActionRight)
	case core.ActionRight:
		delete(h.lastSeen, core.ActionLeft)
	case core.ActionUp:
		delete(h.lastSeen, core.ActionDown)
	case core.ActionDown:
		delete(h.lastSeen, core.ActionUp)
	}
	h.lastSeen[a] = now
}

// Aim records the mouse position.
func (h *HoldInput) Aim(x, y int) {
	h.pointer = core.Pointer{X: x, Y: y, Valid: true}
}

// MouseFire sets whether the fire button is held down.
func (h *HoldInput) MouseFire(down bool) {
	h.mouseOn = down
}

// Frame builds the input for the tick at now and consumes one-shot
// actions.
func (h *HoldInput) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, t := range h.lastSeen {
		if now.Sub(t) <= h.window {
			frame.Set(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	for a := range h.once {
		frame.Set(a)
		delete(h.once, a)
	}
	if h.mouseOn {
		frame.Set(core.ActionFire)
	}
	frame.Pointer = h.pointer
	return frame
}

// Reset drops every held action. The pointer position is kept.
func (h *HoldInput) Reset() {
	clear(h.lastSeen)
	clear(h.once)
	h.mouseOn = false
}
