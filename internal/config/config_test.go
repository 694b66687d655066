package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultStarfallYAML)
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML and DefaultConfig() diverge:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathKeepsMissingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawning:\n  asteroid_spawn_rate: 1.5\nplayer:\n  max_lives: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Spawning.AsteroidSpawnRate != 1.5 {
		t.Errorf("asteroid_spawn_rate = %v, expected 1.5", cfg.Spawning.AsteroidSpawnRate)
	}
	if cfg.Player.MaxLives != 4 {
		t.Errorf("max_lives = %d, expected 4", cfg.Player.MaxLives)
	}
	if cfg.Spawning.StarSpawnRate != 5.0 {
		t.Errorf("star_spawn_rate should keep default 5.0, got %v", cfg.Spawning.StarSpawnRate)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "spawning: [oops"},
		{"invalid lives", "player:\n  max_lives: 0\n"},
		{"inverted sizes", "difficulty:\n  min_asteroid_size: 4\n  max_asteroid_size: 1\n"},
		{"zero zigzag interval", "asteroid:\n  zigzag_interval: 0\n"},
		{"negative fire rate", "weapon:\n  fire_rate: -0.1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		lives    int
		rate     float64
		initial  float64
	}{
		{DifficultyEasy, 5, 0.05, 1.0},
		{DifficultyNormal, 3, 0.1, 1.0},
		{DifficultyHard, 2, 0.1, 1.5},
		{DifficultyFixed, 3, 0, 1.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Player.MaxLives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Player.MaxLives, tc.lives)
			}
			if cfg.Difficulty.IncreaseRate != tc.rate {
				t.Errorf("increase rate = %v, expected %v", cfg.Difficulty.IncreaseRate, tc.rate)
			}
			if cfg.Difficulty.InitialDifficulty != tc.initial {
				t.Errorf("initial = %v, expected %v", cfg.Difficulty.InitialDifficulty, tc.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Error("empty preset should mean normal")
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset mismatch")
	}
}
