package starfall

import "github.com/go-gl/mathgl/mgl64"

// EffectKind is a short-lived visual.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectCollect
)

// effectLifetime is how long an effect stays on screen, in seconds.
const effectLifetime = 1.0

// Effect is an explosion or pickup sparkle. Scale grows the explosion
// with the asteroid size.
type Effect struct {
	Kind  EffectKind
	Pos   mgl64.Vec2
	Scale float64
	age   float64
}

// Update ages the effect and reports whether it is still showing.
func (e *Effect) Update(dt float64) bool {
	e.age += dt
	return e.age < effectLifetime
}

// Progress is the fraction of the effect's life that has passed.
func (e *Effect) Progress() float64 { return e.age / effectLifetime }

var (
	explosionFrames = []rune{'✹', '✶', '*', '+', '·'}
	collectFrames   = []rune{'✦', '+', '·'}
)

// Frame returns the glyph for the current point in the animation.
func (e *Effect) Frame() rune {
	frames := explosionFrames
	if e.Kind == EffectCollect {
		frames = collectFrames
	}
	i := int(e.Progress() * float64(len(frames)))
	if i >= len(frames) {
		i = len(frames) - 1
	}
	return frames[i]
}

// Radius is the world radius of the explosion ring at this point.
func (e *Effect) Radius() float64 {
	if e.Kind == EffectCollect {
		return 0
	}
	return 0.2 + 0.5*e.Scale*e.Progress()
}
