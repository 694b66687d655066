package config

import "math"

// DifficultyManager turns elapsed play time into the difficulty scalar.
//
// The capped value scales the asteroid spawn interval and stops at
// MaxDifficulty. The uncapped value keeps growing and, once it passes the
// bonus threshold, grants extra health to newly spawned asteroids.
type DifficultyManager struct {
	cfg       DifficultyConfig
	spawnRate float64
}

// NewDifficultyManager creates a difficulty manager for the given tuning.
func NewDifficultyManager(cfg DifficultyConfig, asteroidSpawnRate float64) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, spawnRate: asteroidSpawnRate}
}

// Uncapped returns the shadow difficulty after elapsed seconds.
func (d *DifficultyManager) Uncapped(elapsed float64) float64 {
	initial := d.cfg.InitialDifficulty
	if initial <= 0 {
		initial = 1
	}
	return initial + elapsed*d.cfg.IncreaseRate/100
}

// Current returns the capped difficulty after elapsed seconds.
func (d *DifficultyManager) Current(elapsed float64) float64 {
	return math.Min(d.cfg.MaxDifficulty, d.Uncapped(elapsed))
}

// AsteroidInterval returns the countdown reset value for asteroid spawns.
func (d *DifficultyManager) AsteroidInterval(elapsed float64) float64 {
	current := d.Current(elapsed)
	if current <= 0 {
		return d.spawnRate
	}
	return d.spawnRate / current
}

// BonusHealth returns extra health for an asteroid spawned after elapsed
// seconds. It is zero until the uncapped value reaches the threshold.
func (d *DifficultyManager) BonusHealth(elapsed float64) int {
	return d.BonusHealthFor(d.Uncapped(elapsed))
}

// BonusHealthFor computes the bonus for a given uncapped difficulty.
func (d *DifficultyManager) BonusHealthFor(uncapped float64) int {
	threshold := d.cfg.MaxDifficulty * d.cfg.BonusHealthThreshold
	step := d.cfg.MaxDifficulty * d.cfg.BonusHealthStep
	if uncapped < threshold || step <= 0 {
		return 0
	}
	bonus := int(math.Floor((uncapped - threshold) / step))
	if bonus > d.cfg.BonusHealthCap {
		bonus = d.cfg.BonusHealthCap
	}
	if bonus < 0 {
		return 0
	}
	return bonus
}
