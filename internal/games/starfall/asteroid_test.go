package starfall

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

func testAsteroid(pos mgl64.Vec2, size float64, pattern MovementPattern) *Asteroid {
	cfg := config.DefaultConfig().Asteroid
	a := &Asteroid{Pos: pos, Pattern: pattern, zigzagTimer: cfg.ZigZagInterval, zigzagDir: down}
	a.SetSize(size, cfg)
	return a
}

func TestAsteroidSetSize(t *testing.T) {
	tests := []struct {
		name       string
		size       float64
		wantSize   float64
		wantHealth int
		wantFall   float64
	}{
		{"unit", 1, 1, 3, 3},
		{"double", 2, 2, 6, 1.5},
		{"clamped low", 0.1, 0.5, 2, 6},
		{"clamped high", 5, 3, 9, 1},
		{"half rounds to even", 2.5, 2.5, 8, 1.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := testAsteroid(mgl64.Vec2{}, tc.size, PatternStraight)
			assert.Equal(t, tc.wantSize, a.Size)
			assert.Equal(t, tc.wantHealth, a.Health)
			assert.InDelta(t, tc.wantFall, a.fallSpeed, 1e-9)
		})
	}
}

func TestAsteroidBonusHealthTint(t *testing.T) {
	tests := []struct {
		bonus int
		want  core.Color
	}{
		{0, core.ColorGray},
		{2, core.ColorOrange},
		{3, core.ColorOrange},
		{4, core.ColorRed},
		{8, core.ColorRed},
		{9, core.ColorPurple},
	}

	for _, tc := range tests {
		a := testAsteroid(mgl64.Vec2{}, 1, PatternStraight)
		a.SetBonusHealth(tc.bonus)
		assert.Equal(t, 3+tc.bonus, a.Health, "bonus %d", tc.bonus)
		assert.Equal(t, tc.want, a.Tint(), "bonus %d", tc.bonus)
	}
}

func TestAsteroidTakeDamage(t *testing.T) {
	a := testAsteroid(mgl64.Vec2{}, 1, PatternStraight)
	assert.False(t, a.TakeDamage(1))
	assert.False(t, a.TakeDamage(1))
	assert.True(t, a.TakeDamage(1))
	assert.Equal(t, 0, a.Health)
}

func TestAsteroidPatterns(t *testing.T) {
	cfg := config.DefaultConfig().Asteroid
	rng := rand.New(rand.NewSource(1))

	t.Run("straight", func(t *testing.T) {
		a := testAsteroid(mgl64.Vec2{0, 0}, 1, PatternStraight)
		a.Update(0.5, cfg, nil, rng)
		assert.InDelta(t, 0, a.Pos.X(), 1e-9)
		assert.InDelta(t, -1.5, a.Pos.Y(), 1e-9)
	})

	t.Run("sine", func(t *testing.T) {
		a := testAsteroid(mgl64.Vec2{0, 0}, 1, PatternSineWave)
		a.Update(0.1, cfg, nil, rng)
		wantX := math.Sin(0.1*cfg.HorizontalFrequency) * cfg.HorizontalAmplitude * 0.1
		assert.InDelta(t, wantX, a.Pos.X(), 1e-9)
		assert.InDelta(t, -0.3, a.Pos.Y(), 1e-9)
	})

	t.Run("accelerating", func(t *testing.T) {
		a := testAsteroid(mgl64.Vec2{0, 0}, 1, PatternAccelerating)
		a.Update(0.5, cfg, nil, rng)
		// timer is bumped before the move: 3 * (1 + 0.5*0.2) * 0.5
		assert.InDelta(t, -1.65, a.Pos.Y(), 1e-9)
	})

	t.Run("zigzag", func(t *testing.T) {
		a := testAsteroid(mgl64.Vec2{0, 0}, 1, PatternZigZag)
		a.Update(0.5, cfg, nil, rng)
		assert.InDelta(t, -1.5, a.Pos.Y(), 1e-9, "keeps falling straight until the first turn")

		a.Update(0.5, cfg, nil, rng)
		assert.GreaterOrEqual(t, a.zigzagTimer, 0.8*cfg.ZigZagInterval)
		assert.LessOrEqual(t, a.zigzagTimer, 1.2*cfg.ZigZagInterval)
		assert.InDelta(t, 1, a.zigzagDir.Len(), 1e-9)
		assert.LessOrEqual(t, a.zigzagDir.Y(), -math.Cos(math.Pi/4)+1e-9, "turn stays within 45 degrees of down")
	})

	t.Run("homing without player falls straight", func(t *testing.T) {
		a := testAsteroid(mgl64.Vec2{0, 0}, 1, PatternHoming)
		a.Update(0.5, cfg, nil, rng)
		assert.InDelta(t, 0, a.Pos.X(), 1e-9)
		assert.InDelta(t, -1.5, a.Pos.Y(), 1e-9)
	})

	t.Run("homing bends toward player", func(t *testing.T) {
		a := testAsteroid(mgl64.Vec2{0, 0}, 1, PatternHoming)
		target := mgl64.Vec2{5, -4}
		a.Update(0.5, cfg, &target, rng)
		assert.Greater(t, a.Pos.X(), 0.0)
		assert.Less(t, a.Pos.Y(), 0.0)
	})
}

func TestHomingDirectionKeepsFalling(t *testing.T) {
	tests := []struct {
		name string
		to   mgl64.Vec2
	}{
		{"level with target", mgl64.Vec2{10, 0}},
		{"target above", mgl64.Vec2{-3, 8}},
		{"target below", mgl64.Vec2{0, -6}},
		{"target on top of rock", mgl64.Vec2{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := homingDirection(mgl64.Vec2{0, 0}, tc.to, 1.2)
			assert.LessOrEqual(t, d.Len(), 1+1e-9)
			assert.LessOrEqual(t, d.Y(), -0.3)
		})
	}

	straight := homingDirection(mgl64.Vec2{0, 0}, mgl64.Vec2{0, -6}, 1.2)
	assert.InDelta(t, 0, straight.X(), 1e-9)
	assert.InDelta(t, -1, straight.Y(), 1e-9)
}

func TestHomingDirectionLength(t *testing.T) {
	// lerp(down, (0.7071, -0.7071), 0.48) = (0.3394, -0.8594)
	d := homingDirection(mgl64.Vec2{0, 0}, mgl64.Vec2{5, -5}, 1.2)
	assert.InDelta(t, 0.48*math.Sqrt2/2, d.X(), 1e-9)
	assert.InDelta(t, -1+0.48*(1-math.Sqrt2/2), d.Y(), 1e-9)
	assert.InDelta(t, 0.924, d.Len(), 1e-3)

	a := testAsteroid(mgl64.Vec2{0, 0}, 1, PatternHoming)
	target := mgl64.Vec2{5, -5}
	a.Update(0.1, config.DefaultConfig().Asteroid, &target, rand.New(rand.NewSource(1)))
	assert.InDelta(t, 0.2772, a.Pos.Len(), 1e-3, "blended fall is slower than a straight one")

	// Full strength toward a level target hits the floor and is renormalized.
	floor := homingDirection(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, 2.5)
	assert.InDelta(t, 1, floor.Len(), 1e-9)
	assert.Less(t, floor.Y(), 0.0)
}

func TestNewAsteroidZigZagCountdown(t *testing.T) {
	cfg := config.DefaultConfig().Asteroid
	cfg.ZigZagInterval = 3
	cfg.SpecialPatternChance = 0

	a := newAsteroid(mgl64.Vec2{}, 1, cfg, rand.New(rand.NewSource(5)))
	a.Pattern = PatternZigZag
	assert.Equal(t, 3.0, a.zigzagTimer)

	rng := rand.New(rand.NewSource(5))
	for range 20 {
		a.Update(0.1, cfg, nil, rng)
	}
	assert.InDelta(t, 0, a.Pos.X(), 1e-9, "no turn before the configured interval")
	assert.Equal(t, down, a.zigzagDir)
}

func TestNewAsteroidRolls(t *testing.T) {
	cfg := config.DefaultConfig().Asteroid

	a1 := newAsteroid(mgl64.Vec2{}, 1.5, cfg, rand.New(rand.NewSource(7)))
	a2 := newAsteroid(mgl64.Vec2{}, 1.5, cfg, rand.New(rand.NewSource(7)))
	assert.Equal(t, a1.Pattern, a2.Pattern)
	assert.Equal(t, a1.rotationSpeed, a2.rotationSpeed)

	rng := rand.New(rand.NewSource(99))
	for range 200 {
		a := newAsteroid(mgl64.Vec2{}, 1.5, cfg, rng)
		speed := math.Abs(a.rotationSpeed)
		require.GreaterOrEqual(t, speed, cfg.MinRotationSpeed*1.2*0.7)
		require.LessOrEqual(t, speed, cfg.MaxRotationSpeed*1.2*1.7)
	}
}

func TestPatternChance(t *testing.T) {
	cfg := config.DefaultConfig().Asteroid
	rng := rand.New(rand.NewSource(3))

	cfg.SpecialPatternChance = 0
	for range 500 {
		require.Equal(t, PatternStraight, newAsteroid(mgl64.Vec2{}, 1, cfg, rng).Pattern)
	}

	cfg.SpecialPatternChance = 1
	seen := map[MovementPattern]bool{}
	for range 500 {
		seen[newAsteroid(mgl64.Vec2{}, 1, cfg, rng).Pattern] = true
	}
	assert.Len(t, seen, int(patternCount), "all patterns are reachable")
}

func TestAsteroidOutOfView(t *testing.T) {
	cam := NewCamera(80, 24)
	tests := []struct {
		pos  mgl64.Vec2
		want bool
	}{
		{mgl64.Vec2{0, 0}, false},
		{mgl64.Vec2{0, 9}, false}, // above the top is fine
		{mgl64.Vec2{0, -5.5}, false},
		{mgl64.Vec2{0, -6.5}, true},
		{mgl64.Vec2{0, -11}, true},
		{mgl64.Vec2{20, 0}, true},
		{mgl64.Vec2{-20, 0}, true},
	}

	for _, tc := range tests {
		a := testAsteroid(tc.pos, 1, PatternStraight)
		assert.Equal(t, tc.want, a.OutOfView(cam, -10), "pos %v", tc.pos)
	}
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "zigzag", PatternZigZag.String())
	assert.Equal(t, "unknown", MovementPattern(9).String())
}
