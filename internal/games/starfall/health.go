package starfall

import "github.com/vovakirdan/starfall/internal/config"

// DamageResult tells the game what a hit led to.
type DamageResult int

const (
	DamageIgnored DamageResult = iota // ship was invulnerable
	DamageRespawn                     // life lost, respawn sequence started
	DamageGameOver                    // last life lost
)

type respawnPhase int

const (
	phaseIdle respawnPhase = iota
	phaseFlashing
	phaseAwaitingSpawn
)

// HealthManager tracks lives and drives the respawn sequence.
//
// With a ship present the sequence marks it invulnerable, disables its
// collider and blinks it every flash interval until the invulnerability
// time runs out. Without a ship it waits the respawn delay and then asks
// the game for a new one.
type HealthManager struct {
	cfg   config.PlayerConfig
	lives int

	phase      respawnPhase
	remaining  float64
	flashTimer float64
}

// NewHealthManager starts with full lives.
func NewHealthManager(cfg config.PlayerConfig) *HealthManager {
	return &HealthManager{cfg: cfg, lives: cfg.MaxLives}
}

// Lives returns the current life count.
func (h *HealthManager) Lives() int { return h.lives }

// MaxLives returns the configured maximum.
func (h *HealthManager) MaxLives() int { return h.cfg.MaxLives }

// Respawning reports whether a respawn sequence is running.
func (h *HealthManager) Respawning() bool { return h.phase != phaseIdle }

// SetConfig swaps tuning, clamping lives to the new maximum.
func (h *HealthManager) SetConfig(cfg config.PlayerConfig) {
	h.cfg = cfg
	h.SetLivesDirectly(h.lives)
}

// ResetHealth restores full lives and cancels any respawn.
func (h *HealthManager) ResetHealth() {
	h.lives = h.cfg.MaxLives
	h.phase = phaseIdle
}

// SetLivesDirectly sets lives, clamped to [0, max]. It reports whether
// the result is zero so the caller can show game over.
func (h *HealthManager) SetLivesDirectly(lives int) bool {
	if lives < 0 {
		lives = 0
	}
	if lives > h.cfg.MaxLives {
		lives = h.cfg.MaxLives
	}
	h.lives = lives
	if lives == 0 {
		h.phase = phaseIdle
	}
	return lives == 0
}

// TakeDamage removes a life unless the ship is invulnerable. p may be nil.
func (h *HealthManager) TakeDamage(p *Player) DamageResult {
	if p != nil && p.Invulnerable {
		return DamageIgnored
	}
	h.lives--
	if h.lives < 0 {
		h.lives = 0
	}
	if h.lives == 0 {
		h.phase = phaseIdle
		return DamageGameOver
	}
	h.startRespawn(p)
	return DamageRespawn
}

func (h *HealthManager) startRespawn(p *Player) {
	if p == nil {
		h.phase = phaseAwaitingSpawn
		h.remaining = h.cfg.RespawnDelay
		return
	}
	p.Invulnerable = true
	p.ColliderEnabled = false
	p.Visible = !p.Visible
	h.phase = phaseFlashing
	h.remaining = h.cfg.InvulnerabilityTime
	h.flashTimer = h.cfg.FlashInterval
}

// Update advances the respawn sequence. It returns true when the game
// should spawn a fresh ship.
func (h *HealthManager) Update(dt float64, p *Player) bool {
	switch h.phase {
	case phaseFlashing:
		if p == nil {
			h.phase = phaseIdle
			return false
		}
		h.remaining -= dt
		h.flashTimer -= dt
		for h.flashTimer <= 0 && h.remaining > 0 {
			p.Visible = !p.Visible
			h.flashTimer += h.cfg.FlashInterval
			if h.cfg.FlashInterval <= 0 {
				break
			}
		}
		if h.remaining <= 0 {
			p.Visible = true
			p.ColliderEnabled = true
			p.Invulnerable = false
			h.phase = phaseIdle
		}

	case phaseAwaitingSpawn:
		h.remaining -= dt
		if h.remaining <= 0 {
			h.phase = phaseIdle
			return true
		}
	}
	return false
}
