package starfall

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// updateSpawner advances the difficulty clock and the spawn and autosave
// countdowns.
func (g *Game) updateSpawner(dt float64) {
	g.elapsed += dt

	g.asteroidTimer -= dt
	if g.asteroidTimer <= 0 {
		g.spawnAsteroid()
		g.asteroidTimer = g.difficulty.AsteroidInterval(g.elapsed)
	}

	g.starTimer -= dt
	if g.starTimer <= 0 {
		g.spawnStar()
		g.starTimer = g.cfg.Spawning.StarSpawnRate
	}

	if g.cfg.Save.AutoSave && g.cfg.Save.AutoSaveInterval > 0 {
		g.saveTimer -= dt
		if g.saveTimer <= 0 {
			g.saveRequested = true
			g.saveTimer = g.cfg.Save.AutoSaveInterval
		}
	}
}

// spawnX picks a spawn column inside both the configured range and the
// visible field.
func (g *Game) spawnX() float64 {
	lo := math.Max(g.cfg.Spawning.SpawnWidthMin, -g.camera.HalfWidth())
	hi := math.Min(g.cfg.Spawning.SpawnWidthMax, g.camera.HalfWidth())
	if lo > hi {
		lo, hi = 0, 0
	}
	return randRange(g.rng, lo, hi)
}

func (g *Game) spawnAsteroid() {
	pos := mgl64.Vec2{g.spawnX(), g.cfg.Spawning.SpawnHeight}
	size := randRange(g.rng, g.cfg.Difficulty.MinAsteroidSize, g.cfg.Difficulty.MaxAsteroidSize)

	a := newAsteroid(pos, size, g.cfg.Asteroid, g.rng)
	if bonus := g.difficulty.BonusHealth(g.elapsed); bonus > 0 {
		a.SetBonusHealth(bonus)
		g.events = append(g.events, Event{Kind: EventReinforcedSpawn, Scale: a.Size, Value: bonus})
	}
	g.asteroids = append(g.asteroids, a)
}

func (g *Game) spawnStar() {
	g.stars = append(g.stars, &Star{Pos: mgl64.Vec2{g.spawnX(), g.cfg.Spawning.SpawnHeight}})
}

// currentDifficulty is the capped difficulty multiplier for the HUD.
func (g *Game) currentDifficulty() float64 {
	return g.difficulty.Current(g.elapsed)
}
