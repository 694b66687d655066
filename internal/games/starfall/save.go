package starfall

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/starfall/internal/savestate"
)

// Capture records the world as a save file.
func (g *Game) Capture(now time.Time) savestate.GameState {
	state := savestate.NewGameState(g.health.Lives())
	state.Score = g.score
	state.HighScore = g.HighScore()
	state.SaveTime = now
	state.Volumes = g.volumes

	if g.player != nil {
		p := savestate.Point(g.player.Pos.X(), g.player.Pos.Y())
		state.Player = &p
	}
	for _, a := range g.asteroids {
		if a.dead {
			continue
		}
		state.Asteroids = append(state.Asteroids, savestate.Object{
			PosX:   a.Pos.X(),
			PosY:   a.Pos.Y(),
			Size:   a.Size,
			Health: a.Health,
		})
	}
	for _, s := range g.stars {
		state.Stars = append(state.Stars, savestate.Point(s.Pos.X(), s.Pos.Y()))
	}
	return state
}

// Restore replaces the world with a saved one. Asteroids get a fresh
// movement pattern; their size and remaining health are kept. Difficulty
// starts over from the initial value.
func (g *Game) Restore(state savestate.GameState) {
	g.clearWorld()
	g.highScore = state.HighScore
	g.volumes = state.Volumes.Clamped()
	g.elapsed = 0
	g.paused = false
	g.gameOver = false
	g.resetTimers()

	g.health.ResetHealth()
	if g.health.SetLivesDirectly(state.PlayerLives) {
		g.gameOver = true
	}

	g.score = state.Score
	g.scoreDisplay.Snap(state.Score)

	if !g.gameOver {
		if state.Player != nil {
			g.spawnPlayerAt(mgl64.Vec2{state.Player.PosX, state.Player.PosY})
		} else {
			g.spawnPlayer()
		}
	}

	for _, o := range state.Asteroids {
		a := newAsteroid(mgl64.Vec2{o.PosX, o.PosY}, o.Size, g.cfg.Asteroid, g.rng)
		if o.Health > 0 {
			a.Bonus = max(0, o.Health-a.Health)
			a.Health = o.Health
		}
		g.asteroids = append(g.asteroids, a)
	}
	for _, o := range state.Stars {
		g.stars = append(g.stars, &Star{Pos: mgl64.Vec2{o.PosX, o.PosY}})
	}
}
