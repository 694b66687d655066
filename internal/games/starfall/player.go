package starfall

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

var up = mgl64.Vec2{0, 1}

// playerRadius is the ship's collision radius in world units.
const playerRadius = 0.4

// Player is the ship. It exists only while the run is alive.
type Player struct {
	Pos    mgl64.Vec2
	Facing mgl64.Vec2

	// Invulnerable marks the ship during the post-hit flashing sequence.
	Invulnerable bool
	// ColliderEnabled gates every contact: asteroids and stars alike.
	ColliderEnabled bool
	Visible         bool

	nextFire float64
}

func newPlayer(pos mgl64.Vec2) *Player {
	return &Player{
		Pos:             pos,
		Facing:          up,
		ColliderEnabled: true,
		Visible:         true,
	}
}

// Move applies directional input. Diagonals are normalized so the ship is
// never faster than speed.
func (p *Player) Move(in core.InputFrame, speed, dt float64, cam Camera) {
	var dir mgl64.Vec2
	if in.Has(core.ActionLeft) {
		dir[0]--
	}
	if in.Has(core.ActionRight) {
		dir[0]++
	}
	if in.Has(core.ActionUp) {
		dir[1]++
	}
	if in.Has(core.ActionDown) {
		dir[1]--
	}
	if dir.Len() > 0 {
		p.Pos = p.Pos.Add(dir.Normalize().Mul(speed * dt))
	}
	p.Pos = cam.ClampToField(p.Pos, playerRadius)
}

// Aim turns the ship toward the pointer. Without a pointer, or with the
// pointer right on the ship, it faces up.
func (p *Player) Aim(ptr core.Pointer, cam Camera) {
	if !ptr.Valid {
		p.Facing = up
		return
	}
	p.Facing = normalizeOr(cam.ScreenToWorld(ptr.X, ptr.Y).Sub(p.Pos), up)
}

// TryFire fires a volley if the weapon has cooled down. now is the total
// simulated time.
func (p *Player) TryFire(now float64, cfg config.WeaponConfig) []*Bullet {
	if now < p.nextFire {
		return nil
	}
	p.nextFire = now + cfg.FireRate
	return volley(p.Pos, p.Facing, cfg)
}

// volley spreads n bullets perpendicular to dir, spawned one unit ahead of
// origin.
func volley(origin, dir mgl64.Vec2, cfg config.WeaponConfig) []*Bullet {
	n := cfg.BulletsPerShot
	if n < 1 {
		n = 1
	}
	dir = normalizeOr(dir, up)
	perp := mgl64.Vec2{-dir.Y(), dir.X()}
	total := cfg.Spacing * float64(n-1)

	bullets := make([]*Bullet, 0, n)
	for i := range n {
		offset := 0.0
		if n > 1 {
			offset = -total/2 + total/float64(n-1)*float64(i)
		}
		pos := origin.Add(dir).Add(perp.Mul(offset))
		bullets = append(bullets, newBullet(pos, dir, cfg))
	}
	return bullets
}

var facingGlyphs = [8]rune{'▶', '◥', '▲', '◤', '◀', '◣', '▼', '◢'}

// Glyph returns the ship character for its facing, in eighths of a turn.
func (p *Player) Glyph() rune {
	angle := math.Atan2(p.Facing.Y(), p.Facing.X())
	octant := int(math.Round(angle/(math.Pi/4))) & 7
	return facingGlyphs[octant]
}
