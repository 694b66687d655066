package starfall

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/starfall/internal/config"
)

const bulletRadius = 0.1

// Bullet is a player projectile. It cannot hit anything until it has
// cleared the ship.
type Bullet struct {
	Pos mgl64.Vec2
	Dir mgl64.Vec2

	speed          float64
	age            float64
	lifetime       float64
	collisionDelay float64
}

func newBullet(pos, dir mgl64.Vec2, cfg config.WeaponConfig) *Bullet {
	return &Bullet{
		Pos:            pos,
		Dir:            dir,
		speed:          cfg.BulletSpeed,
		lifetime:       cfg.BulletLifetime,
		collisionDelay: cfg.CollisionDelay,
	}
}

// Update moves the bullet and reports whether it is still alive.
func (b *Bullet) Update(dt float64, cam Camera) bool {
	b.age += dt
	b.Pos = b.Pos.Add(b.Dir.Mul(b.speed * dt))
	if b.age >= b.lifetime {
		return false
	}
	v := cam.WorldToViewport(b.Pos)
	return v.X() >= -0.1 && v.X() <= 1.1 && v.Y() >= -0.1 && v.Y() <= 1.1
}

// Armed reports whether the bullet can collide yet.
func (b *Bullet) Armed() bool { return b.age >= b.collisionDelay }

// Glyph picks a line character along the flight direction.
func (b *Bullet) Glyph() rune {
	angle := math.Atan2(b.Dir.Y(), b.Dir.X())
	switch int(math.Round(angle/(math.Pi/4))) & 3 {
	case 0:
		return '-'
	case 1:
		return '/'
	case 2:
		return '|'
	default:
		return '\\'
	}
}
