package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "starfall.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.starfall/configs/starfall.yaml ->
// ./configs/starfall.yaml -> embedded default -> DefaultConfig.
// Keys missing from a file keep their default values.
func Load(customPath string) (StarfallConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultStarfallYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (StarfallConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c StarfallConfig) Validate() error {
	var errs []error
	if c.Spawning.AsteroidSpawnRate <= 0 {
		errs = append(errs, errors.New("spawning.asteroid_spawn_rate must be positive"))
	}
	if c.Spawning.StarSpawnRate <= 0 {
		errs = append(errs, errors.New("spawning.star_spawn_rate must be positive"))
	}
	if c.Spawning.SpawnWidthMin > c.Spawning.SpawnWidthMax {
		errs = append(errs, errors.New("spawning.spawn_width_min exceeds spawn_width_max"))
	}
	if c.Difficulty.MinAsteroidSize > c.Difficulty.MaxAsteroidSize {
		errs = append(errs, errors.New("difficulty.min_asteroid_size exceeds max_asteroid_size"))
	}
	if c.Difficulty.MaxDifficulty <= 0 || c.Difficulty.InitialDifficulty <= 0 {
		errs = append(errs, errors.New("difficulty.max_difficulty and initial_difficulty must be positive"))
	}
	if c.Asteroid.ZigZagInterval <= 0 {
		errs = append(errs, errors.New("asteroid.zigzag_interval must be positive"))
	}
	if c.Weapon.FireRate < 0 {
		errs = append(errs, errors.New("weapon.fire_rate must not be negative"))
	}
	if c.Player.MaxLives < 1 {
		errs = append(errs, errors.New("player.max_lives must be at least 1"))
	}
	if c.Player.FlashInterval <= 0 {
		errs = append(errs, errors.New("player.flash_interval must be positive"))
	}
	if c.Weapon.BulletsPerShot < 1 {
		errs = append(errs, errors.New("weapon.bullets_per_shot must be at least 1"))
	}
	if c.Save.FileName == "" {
		errs = append(errs, errors.New("save.file_name must not be empty"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.starfall, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfall")
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *StarfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxLives = 5
		cfg.Difficulty.IncreaseRate /= 2
	case DifficultyHard:
		cfg.Player.MaxLives = 2
		cfg.Difficulty.InitialDifficulty = 1.5
	case DifficultyFixed:
		cfg.Difficulty.IncreaseRate = 0
	}
}
