package starfall

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// Asteroid size limits. Sizes outside the range are clamped.
const (
	MinSize = 0.5
	MaxSize = 3.0
)

// MovementPattern selects how an asteroid travels down the field.
type MovementPattern int

const (
	PatternStraight MovementPattern = iota
	PatternSineWave
	PatternZigZag
	PatternAccelerating
	PatternHoming
	patternCount
)

var patternNames = [...]string{"straight", "sine", "zigzag", "accelerating", "homing"}

func (p MovementPattern) String() string {
	if p < 0 || p >= patternCount {
		return "unknown"
	}
	return patternNames[p]
}

var down = mgl64.Vec2{0, -1}

// Asteroid is a falling rock. Bigger asteroids are slower and tougher.
type Asteroid struct {
	Pos      mgl64.Vec2
	Size     float64
	Health   int
	Bonus    int // extra health granted at spawn
	Pattern  MovementPattern
	Rotation float64 // degrees

	fallSpeed     float64
	rotationSpeed float64
	timer         float64
	zigzagTimer   float64
	zigzagDir     mgl64.Vec2
	dead          bool
}

// newAsteroid creates an asteroid and rolls its spin and movement pattern.
// The draws happen in a fixed order so seeded runs replay exactly.
func newAsteroid(pos mgl64.Vec2, size float64, cfg config.AsteroidConfig, rng *rand.Rand) *Asteroid {
	a := &Asteroid{
		Pos:         pos,
		zigzagTimer: cfg.ZigZagInterval,
		zigzagDir:   down,
	}
	a.SetSize(size, cfg)

	// Smaller rocks spin faster.
	factor := core.Lerp(0.7, 1.7, core.Clamp01((MaxSize-a.Size)/2.5))
	speed := randRange(rng, cfg.MinRotationSpeed*1.2, cfg.MaxRotationSpeed*1.2)
	if rng.Float64() < 0.5 {
		speed = -speed
	}
	a.rotationSpeed = speed * factor

	if rng.Float64() > 1-cfg.SpecialPatternChance {
		a.Pattern = MovementPattern(rng.Intn(int(patternCount)))
	}
	return a
}

// SetSize clamps the size and derives health and fall speed from it.
// Any bonus health is discarded.
func (a *Asteroid) SetSize(size float64, cfg config.AsteroidConfig) {
	a.Size = core.ClampF(size, MinSize, MaxSize)
	a.Health = core.RoundToInt(float64(cfg.BaseHealth) * a.Size)
	if a.Health < 1 {
		a.Health = 1
	}
	a.Bonus = 0
	a.fallSpeed = cfg.BaseFallSpeed / a.Size
}

// SetBonusHealth adds extra health on top of the size-derived value.
func (a *Asteroid) SetBonusHealth(bonus int) {
	if bonus <= 0 {
		return
	}
	a.Bonus += bonus
	a.Health += bonus
}

// TakeDamage removes health and reports whether the asteroid is destroyed.
func (a *Asteroid) TakeDamage(amount int) bool {
	a.Health -= amount
	return a.Health <= 0
}

// Radius is the collision radius in world units.
func (a *Asteroid) Radius() float64 { return 0.45 * a.Size }

// Tint picks a color for the asteroid by its bonus health.
func (a *Asteroid) Tint() core.Color {
	switch {
	case a.Bonus <= 0:
		return core.ColorGray
	case a.Bonus <= 3:
		return core.ColorOrange
	case a.Bonus <= 8:
		return core.ColorRed
	default:
		return core.ColorPurple
	}
}

// Update spins and moves the asteroid. target is the player position when
// a player exists; homing asteroids fall straight without one.
func (a *Asteroid) Update(dt float64, cfg config.AsteroidConfig, target *mgl64.Vec2, rng *rand.Rand) {
	a.Rotation = math.Mod(a.Rotation+a.rotationSpeed*dt, 360)
	a.timer += dt

	switch a.Pattern {
	case PatternSineWave:
		dx := math.Sin(a.timer*cfg.HorizontalFrequency) * cfg.HorizontalAmplitude * dt
		a.Pos = a.Pos.Add(mgl64.Vec2{dx, -a.fallSpeed * dt})

	case PatternZigZag:
		a.zigzagTimer -= dt
		if a.zigzagTimer <= 0 {
			angle := randRange(rng, -45, 45)
			a.zigzagDir = mgl64.Rotate2D(mgl64.DegToRad(angle)).Mul2x1(down)
			a.zigzagTimer = cfg.ZigZagInterval * randRange(rng, 0.8, 1.2)
		}
		a.Pos = a.Pos.Add(a.zigzagDir.Mul(a.fallSpeed * dt))

	case PatternAccelerating:
		speed := a.fallSpeed * (1 + a.timer*cfg.Acceleration)
		a.Pos = a.Pos.Add(down.Mul(speed * dt))

	case PatternHoming:
		if target == nil {
			a.Pos = a.Pos.Add(down.Mul(a.fallSpeed * dt))
			return
		}
		a.Pos = a.Pos.Add(homingDirection(a.Pos, *target, cfg.HomingStrength).Mul(a.fallSpeed * dt))

	default:
		a.Pos = a.Pos.Add(down.Mul(a.fallSpeed * dt))
	}
}

// homingDirection bends the fall toward the target while always keeping a
// clear downward component. The blend of two unit vectors is shorter than
// one, so a homing rock drifts slower than it falls straight; only a blend
// pushed up to the floor is renormalized.
func homingDirection(from, to mgl64.Vec2, strength float64) mgl64.Vec2 {
	dir := normalizeOr(to.Sub(from), down)
	if dir.Y() > -0.2 {
		dir = normalizeOr(mgl64.Vec2{dir.X(), -0.2}, down)
	}

	t := core.Clamp01(strength * 0.4)
	blend := down.Add(dir.Sub(down).Mul(t))
	if blend.Y() > -0.3 {
		blend = normalizeOr(mgl64.Vec2{blend.X(), -0.3}, down)
	}
	return blend
}

// OutOfView reports whether the asteroid has left the field for good.
func (a *Asteroid) OutOfView(cam Camera, destroyBelowY float64) bool {
	if a.Pos.Y() < destroyBelowY {
		return true
	}
	v := cam.WorldToViewport(a.Pos)
	return v.X() < -0.1 || v.X() > 1.1 || v.Y() < -0.1
}

func normalizeOr(v, fallback mgl64.Vec2) mgl64.Vec2 {
	if v.Len() < 1e-9 {
		return fallback
	}
	return v.Normalize()
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
