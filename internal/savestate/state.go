// Package savestate defines the on-disk save file and the store that
// reads and writes it.
//
// The file is a flat JSON snapshot: lives, score, high score, the
// asteroids and stars on screen, the player position and the volume
// levels. Key names are kept stable so older saves stay loadable.
package savestate

import (
	"math"
	"time"
)

// Object is a saved entity position with its size and health. Stars and
// the player only use the position.
type Object struct {
	PosX   float64 `json:"posX"`
	PosY   float64 `json:"posY"`
	Size   float64 `json:"size"`
	Health int     `json:"health"`
}

// Point returns a position-only object. Size and health carry the
// neutral value 1 the save format uses for stars and the player.
func Point(x, y float64) Object {
	return Object{PosX: x, PosY: y, Size: 1, Health: 1}
}

// Volumes are the five volume sliders, each in [0, 1].
type Volumes struct {
	Master         float64 `json:"masterVolume"`
	Music          float64 `json:"musicVolume"`
	Shooting       float64 `json:"shootingVolume"`
	Explosion      float64 `json:"explosionVolume"`
	StarCollecting float64 `json:"starCollectingVolume"`
}

// DefaultVolumes returns the factory volume levels.
func DefaultVolumes() Volumes {
	return Volumes{
		Master:         1.0,
		Music:          0.5,
		Shooting:       0.8,
		Explosion:      0.7,
		StarCollecting: 0.6,
	}
}

// Clamped returns a copy with every level in [0, 1].
func (v Volumes) Clamped() Volumes {
	return Volumes{
		Master:         clamp01(v.Master),
		Music:          clamp01(v.Music),
		Shooting:       clamp01(v.Shooting),
		Explosion:      clamp01(v.Explosion),
		StarCollecting: clamp01(v.StarCollecting),
	}
}

// EffectiveMusic is the music level scaled by the master level.
func (v Volumes) EffectiveMusic() float64 { return v.Music * v.Master }

// EffectiveShooting is the shooting level scaled by the master level.
func (v Volumes) EffectiveShooting() float64 { return v.Shooting * v.Master }

// EffectiveExplosion is the explosion level scaled by the master level.
func (v Volumes) EffectiveExplosion() float64 { return v.Explosion * v.Master }

// EffectiveStarCollecting is the star pickup level scaled by the master level.
func (v Volumes) EffectiveStarCollecting() float64 { return v.StarCollecting * v.Master }

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// GameState is the full save file.
type GameState struct {
	PlayerLives int       `json:"playerLives"`
	Score       int       `json:"score"`
	HighScore   int       `json:"highScore"`
	Asteroids   []Object  `json:"asteroids"`
	Stars       []Object  `json:"stars"`
	Player      *Object   `json:"player"`
	SaveTime    time.Time `json:"saveTime"`
	Volumes
}

// NewGameState returns an empty state with the given lives and default
// volumes.
func NewGameState(lives int) GameState {
	return GameState{
		PlayerLives: lives,
		Asteroids:   []Object{},
		Stars:       []Object{},
		Volumes:     DefaultVolumes(),
	}
}

// CanContinue reports whether the save holds a run that is still alive.
func (s GameState) CanContinue() bool {
	return s.PlayerLives > 0
}
