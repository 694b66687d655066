// Package starfall implements the falling-asteroid shooter: the player
// dodges and shoots asteroids that grow more frequent and tougher over
// time, collects stars for points and respawns with a short invulnerable
// window until the lives run out.
package starfall

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/savestate"
)

// GameID is the registry and score-table identifier.
const GameID = "starfall"

const (
	minScreenW = 40
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall
// back to the unmodified config.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}

// Game implements the Starfall game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.StarfallConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	camera     Camera
	background *Background

	player    *Player
	health    *HealthManager
	asteroids []*Asteroid
	stars     []*Star
	bullets   []*Bullet
	effects   []*Effect

	score        int
	highScore    int
	scoreDisplay ScoreDisplay
	volumes      savestate.Volumes

	elapsed       float64 // drives difficulty; reset on retry
	clock         float64 // total simulated time; drives the fire rate
	asteroidTimer float64
	starTimer     float64
	saveTimer     float64
	tickCount     uint64

	fixedConfig    bool
	paused         bool
	gameOver       bool
	saveRequested  bool
	events         []Event
	screenTooSmall bool
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.StarfallConfig) *Game {
	return &Game{cfg: cfg, fixedConfig: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return GameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Starfall" }

// Reset initializes a fresh run: full lives, zero score, a ship at the
// respawn point and an empty sky.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedConfig {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Spawning.AsteroidSpawnRate)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.background = NewBackground(runtime.Seed)
	g.health = NewHealthManager(g.cfg.Player)
	g.volumes = savestate.DefaultVolumes()
	g.highScore = 0
	g.tickCount = 0
	g.clock = 0
	g.paused = false
	g.events = nil
	g.saveRequested = false
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.startRun()
}

// startRun clears the world and starts the clocks for a new run. The high
// score and volumes are left alone.
func (g *Game) startRun() {
	g.clearWorld()
	g.elapsed = 0
	g.score = 0
	g.scoreDisplay.Snap(0)
	g.gameOver = false
	g.health.ResetHealth()
	g.resetTimers()
	g.spawnPlayer()
}

func (g *Game) resetTimers() {
	g.asteroidTimer = g.cfg.Spawning.AsteroidSpawnRate
	g.starTimer = g.cfg.Spawning.StarSpawnRate
	g.saveTimer = g.cfg.Save.AutoSaveInterval
}

func (g *Game) clearWorld() {
	g.player = nil
	g.asteroids = nil
	g.stars = nil
	g.bullets = nil
	g.effects = nil
}

func (g *Game) respawnPoint() mgl64.Vec2 {
	return mgl64.Vec2{g.cfg.Player.RespawnX, g.cfg.Player.RespawnY}
}

func (g *Game) spawnPlayer() {
	g.spawnPlayerAt(g.respawnPoint())
}

func (g *Game) spawnPlayerAt(pos mgl64.Vec2) {
	g.player = newPlayer(g.camera.ClampToField(pos, playerRadius))
}

// Resize re-fits the camera to a new terminal size. The world is kept.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.camera = NewCamera(w, h)
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

// ApplyConfig swaps in new tuning without resetting the world.
func (g *Game) ApplyConfig(cfg config.StarfallConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty, cfg.Spawning.AsteroidSpawnRate)
	if g.health != nil {
		g.health.SetConfig(cfg.Player)
	}
}

// Config returns the tuning in use.
func (g *Game) Config() config.StarfallConfig { return g.cfg }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Retry()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.DT()
	g.tickCount++
	g.clock += dt

	// The sky keeps falling behind the game-over screen.
	g.updateSpawner(dt)
	g.updatePlayer(in, dt)
	g.updateAsteroids(dt)
	g.updateStars(dt)
	g.updateBullets(dt)
	g.resolveCollisions()
	g.updateEffects(dt)
	g.background.Update(dt)
	g.scoreDisplay.Update(g.score, dt, g.cfg.HUD)

	return core.StepResult{State: g.State()}
}

func (g *Game) updatePlayer(in core.InputFrame, dt float64) {
	if g.health.Update(dt, g.player) && !g.gameOver && g.player == nil {
		g.spawnPlayer()
		g.emit(EventPlayerRespawned, 0)
	}
	if g.player == nil {
		return
	}

	g.player.Move(in, g.cfg.Player.Speed, dt, g.camera)
	g.player.Aim(in.Pointer, g.camera)
	if in.Has(core.ActionFire) {
		if shots := g.player.TryFire(g.clock, g.cfg.Weapon); len(shots) > 0 {
			g.bullets = append(g.bullets, shots...)
			g.emit(EventShoot, 0)
		}
	}
}

func (g *Game) updateAsteroids(dt float64) {
	var target *mgl64.Vec2
	if g.player != nil {
		pos := g.player.Pos
		target = &pos
	}

	kept := g.asteroids[:0]
	for _, a := range g.asteroids {
		a.Update(dt, g.cfg.Asteroid, target, g.rng)
		if a.OutOfView(g.camera, g.cfg.Asteroid.DestroyBelowY) {
			continue
		}
		kept = append(kept, a)
	}
	g.asteroids = kept
}

func (g *Game) updateStars(dt float64) {
	kept := g.stars[:0]
	for _, s := range g.stars {
		if s.Update(dt, g.cfg.Star.FallSpeed, g.camera) {
			kept = append(kept, s)
		}
	}
	g.stars = kept
}

func (g *Game) updateBullets(dt float64) {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Update(dt, g.camera) {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

func (g *Game) updateEffects(dt float64) {
	kept := g.effects[:0]
	for _, e := range g.effects {
		if e.Update(dt) {
			kept = append(kept, e)
		}
	}
	g.effects = kept
}

// resolveCollisions handles bullet hits, ship contacts and star pickups.
func (g *Game) resolveCollisions() {
	// Bullets against asteroids. Each bullet hits at most one rock.
	keptBullets := g.bullets[:0]
	for _, b := range g.bullets {
		hit := false
		if b.Armed() {
			for _, a := range g.asteroids {
				if a.dead || !overlaps(b.Pos, bulletRadius, a.Pos, a.Radius()) {
					continue
				}
				if a.TakeDamage(1) {
					g.destroyAsteroid(a)
				}
				hit = true
				break
			}
		}
		if !hit {
			keptBullets = append(keptBullets, b)
		}
	}
	g.bullets = keptBullets

	// Asteroids against the ship.
	for _, a := range g.asteroids {
		p := g.player
		if a.dead || p == nil || !p.ColliderEnabled {
			continue
		}
		if !overlaps(a.Pos, a.Radius(), p.Pos, playerRadius) {
			continue
		}
		if p.Invulnerable {
			continue
		}
		hitAt := p.Pos
		g.damagePlayer()
		g.addEffect(EffectExplosion, hitAt, 1)
		g.destroyAsteroid(a)
	}
	g.asteroids = removeDead(g.asteroids)

	// Stars against the ship.
	if p := g.player; p != nil && p.ColliderEnabled {
		keptStars := g.stars[:0]
		for _, s := range g.stars {
			if overlaps(s.Pos, starRadius, p.Pos, playerRadius) && s.Collect() {
				g.score += g.cfg.Star.PointValue
				g.addEffect(EffectCollect, s.Pos, 1)
				g.emit(EventStarCollected, 0)
				continue
			}
			keptStars = append(keptStars, s)
		}
		g.stars = keptStars
	}
}

// damagePlayer applies one hit through the health manager.
func (g *Game) damagePlayer() {
	switch g.health.TakeDamage(g.player) {
	case DamageIgnored:
		return
	case DamageGameOver:
		g.score -= g.cfg.Player.DamagePenalty
		g.emit(EventPlayerHit, 0)
		g.triggerGameOver()
	case DamageRespawn:
		g.score -= g.cfg.Player.DamagePenalty
		g.emit(EventPlayerHit, 0)
	}
}

// destroyAsteroid blows up an asteroid and drops a star in its place.
func (g *Game) destroyAsteroid(a *Asteroid) {
	if a.dead {
		return
	}
	a.dead = true
	g.addEffect(EffectExplosion, a.Pos, a.Size)
	g.emit(EventExplosion, a.Size)
	g.stars = append(g.stars, &Star{Pos: a.Pos})
}

func (g *Game) triggerGameOver() {
	g.gameOver = true
	g.player = nil
	g.paused = false
	g.emit(EventGameOver, 0)
}

func (g *Game) addEffect(kind EffectKind, pos mgl64.Vec2, scale float64) {
	g.effects = append(g.effects, &Effect{Kind: kind, Pos: pos, Scale: scale})
}

// Retry starts a new run after game over. The high score survives.
func (g *Game) Retry() {
	g.highScore = max(g.highScore, g.score)
	g.paused = false
	g.startRun()
	g.saveRequested = true
}

// SetPaused freezes or resumes the simulation. It has no effect once the
// game is over.
func (g *Game) SetPaused(paused bool) {
	if g.gameOver {
		return
	}
	g.paused = paused
}

// Paused reports whether the simulation is frozen.
func (g *Game) Paused() bool { return g.paused }

// GameOver reports whether the last life has been lost.
func (g *Game) GameOver() bool { return g.gameOver }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score including the current run.
func (g *Game) HighScore() int { return max(g.highScore, g.score) }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.health.Lives() }

// Elapsed returns the seconds played in this run.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Volumes returns the volume levels carried in the save.
func (g *Game) Volumes() savestate.Volumes { return g.volumes }

// SetVolumes records new volume levels for the next save.
func (g *Game) SetVolumes(v savestate.Volumes) { g.volumes = v.Clamped() }

// TakeSaveRequest reports and clears a pending save request raised by the
// autosave timer or a retry.
func (g *Game) TakeSaveRequest() bool {
	r := g.saveRequested
	g.saveRequested = false
	return r
}

// GameOverText returns the lines of the game-over panel.
func (g *Game) GameOverText() []string {
	return []string{
		"Game Over",
		fmt.Sprintf("Score: %d", g.score),
		fmt.Sprintf("High Score: %d", g.HighScore()),
	}
}

// State returns the current coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func overlaps(a mgl64.Vec2, ra float64, b mgl64.Vec2, rb float64) bool {
	r := ra + rb
	d := a.Sub(b)
	return d.Dot(d) < r*r
}

func removeDead(asteroids []*Asteroid) []*Asteroid {
	kept := asteroids[:0]
	for _, a := range asteroids {
		if !a.dead {
			kept = append(kept, a)
		}
	}
	return kept
}
