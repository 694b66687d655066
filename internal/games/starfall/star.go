package starfall

import "github.com/go-gl/mathgl/mgl64"

const starRadius = 0.3

// Star is a collectible that drifts down the field.
type Star struct {
	Pos       mgl64.Vec2
	collected bool
}

// Update moves the star and reports whether it is still on screen.
func (s *Star) Update(dt, fallSpeed float64, cam Camera) bool {
	s.Pos = s.Pos.Add(down.Mul(fallSpeed * dt))
	v := cam.WorldToViewport(s.Pos)
	return v.Y() >= -0.1 && v.X() >= -0.1 && v.X() <= 1.1
}

// Collect marks the star as taken. It returns false if it already was.
func (s *Star) Collect() bool {
	if s.collected {
		return false
	}
	s.collected = true
	return true
}
