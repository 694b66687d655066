package config

import (
	"math"
	"testing"
)

func newTestManager() *DifficultyManager {
	cfg := DefaultConfig()
	return NewDifficultyManager(cfg.Difficulty, cfg.Spawning.AsteroidSpawnRate)
}

func TestDifficultyScalar(t *testing.T) {
	d := newTestManager()

	tests := []struct {
		name     string
		elapsed  float64
		uncapped float64
		current  float64
		interval float64
	}{
		{"start", 0, 1.0, 1.0, 2.0},
		{"after 100s", 100, 1.1, 1.1, 2.0 / 1.1},
		{"reaches cap", 1000, 2.0, 2.0, 1.0},
		{"past cap", 3000, 4.0, 2.0, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Uncapped(tc.elapsed); math.Abs(got-tc.uncapped) > 1e-9 {
				t.Errorf("Uncapped() = %v, expected %v", got, tc.uncapped)
			}
			if got := d.Current(tc.elapsed); math.Abs(got-tc.current) > 1e-9 {
				t.Errorf("Current() = %v, expected %v", got, tc.current)
			}
			if got := d.AsteroidInterval(tc.elapsed); math.Abs(got-tc.interval) > 1e-9 {
				t.Errorf("AsteroidInterval() = %v, expected %v", got, tc.interval)
			}
		})
	}
}

func TestBonusHealth(t *testing.T) {
	d := newTestManager()

	// max 2.0: threshold 1.6, one point per 1.0 of uncapped difficulty.
	tests := []struct {
		uncapped float64
		expected int
	}{
		{1.0, 0},
		{1.6, 0},
		{2.59, 0},
		{2.6, 1},
		{4.7, 3},
		{100, 20},
	}

	for _, tc := range tests {
		if got := d.BonusHealthFor(tc.uncapped); got != tc.expected {
			t.Errorf("BonusHealthFor(%v) = %d, expected %d", tc.uncapped, got, tc.expected)
		}
	}

	// Bonus keeps growing after the capped scalar has stopped.
	if d.Current(5000) != 2.0 {
		t.Fatal("difficulty should be capped")
	}
	if got := d.BonusHealth(5000); got != 4 {
		t.Errorf("BonusHealth(5000) = %d, expected 4", got)
	}
}

func TestFixedDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty, cfg.Spawning.AsteroidSpawnRate)

	if d.Current(10000) != 1.0 {
		t.Errorf("fixed difficulty should not grow, got %v", d.Current(10000))
	}
	if d.BonusHealth(10000) != 0 {
		t.Error("fixed difficulty should never grant bonus health")
	}
}
