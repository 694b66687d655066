package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/starfall/internal/core"
)

func TestHoldInputWindow(t *testing.T) {
	h := NewHoldInput(100 * time.Millisecond)
	base := time.Unix(1000, 0)

	h.Press(core.ActionLeft, base)
	assert.True(t, h.Frame(base.Add(50*time.Millisecond)).Has(core.ActionLeft), "inside the window")
	assert.True(t, h.Frame(base.Add(100*time.Millisecond)).Has(core.ActionLeft), "window is inclusive")
	assert.False(t, h.Frame(base.Add(101*time.Millisecond)).Has(core.ActionLeft), "released after the window")

	h.Press(core.ActionFire, base)
	h.Press(core.ActionFire, base.Add(90*time.Millisecond))
	assert.True(t, h.Frame(base.Add(180*time.Millisecond)).Has(core.ActionFire), "repeat extends the hold")
}

func TestHoldInputOppositeCancels(t *testing.T) {
	h := NewHoldInput(100 * time.Millisecond)
	base := time.Unix(1000, 0)

	h.Press(core.ActionLeft, base)
	h.Press(core.ActionRight, base.Add(10*time.Millisecond))
	f := h.Frame(base.Add(20 * time.Millisecond))
	assert.True(t, f.Has(core.ActionRight))
	assert.False(t, f.Has(core.ActionLeft))

	h.Press(core.ActionUp, base)
	h.Press(core.ActionDown, base)
	f = h.Frame(base)
	assert.True(t, f.Has(core.ActionDown))
	assert.False(t, f.Has(core.ActionUp))
}

func TestHoldInputOneShot(t *testing.T) {
	h := NewHoldInput(100 * time.Millisecond)
	now := time.Unix(1000, 0)

	h.Press(core.ActionPause, now)
	assert.True(t, h.Frame(now).Has(core.ActionPause))
	assert.False(t, h.Frame(now).Has(core.ActionPause), "consumed by the first frame")
}

func TestHoldInputMouse(t *testing.T) {
	h := NewHoldInput(0)
	now := time.Unix(1000, 0)

	h.Aim(12, 7)
	h.MouseFire(true)
	f := h.Frame(now)
	assert.True(t, f.Has(core.ActionFire))
	assert.Equal(t, core.Pointer{X: 12, Y: 7, Valid: true}, f.Pointer)
	assert.True(t, h.Frame(now.Add(time.Hour)).Has(core.ActionFire), "held until released")

	h.MouseFire(false)
	assert.False(t, h.Frame(now).Has(core.ActionFire))

	h.MouseFire(true)
	h.Press(core.ActionUp, now)
	h.Reset()
	f = h.Frame(now)
	assert.False(t, f.Has(core.ActionFire))
	assert.False(t, f.Has(core.ActionUp))
	assert.True(t, f.Pointer.Valid, "reset keeps the pointer")
}
