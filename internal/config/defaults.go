package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/starfall.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() StarfallConfig {
	return StarfallConfig{
		Spawning: SpawningConfig{
			AsteroidSpawnRate: 2.0,
			StarSpawnRate:     5.0,
			SpawnHeight:       7.0,
			SpawnWidthMin:     -8.0,
			SpawnWidthMax:     8.0,
		},
		Difficulty: DifficultyConfig{
			MinAsteroidSize:      0.5,
			MaxAsteroidSize:      3.0,
			IncreaseRate:         0.1,
			MaxDifficulty:        2.0,
			InitialDifficulty:    1.0,
			BonusHealthThreshold: 0.8,
			BonusHealthStep:      0.5,
			BonusHealthCap:       20,
		},
		Asteroid: AsteroidConfig{
			BaseHealth:           3,
			BaseFallSpeed:        3.0,
			MinRotationSpeed:     15,
			MaxRotationSpeed:     60,
			DestroyBelowY:        -10,
			SpecialPatternChance: 0.7,
			HorizontalAmplitude:  2.0,
			HorizontalFrequency:  1.0,
			Acceleration:         0.2,
			HomingStrength:       1.2,
			ZigZagInterval:       1.0,
		},
		Player: PlayerConfig{
			Speed:               5.0,
			MaxLives:            3,
			InvulnerabilityTime: 2.0,
			FlashInterval:       0.1,
			RespawnDelay:        1.0,
			RespawnX:            0,
			RespawnY:            -4,
			DamagePenalty:       10,
		},
		Weapon: WeaponConfig{
			FireRate:       0.2,
			BulletSpeed:    10,
			BulletLifetime: 2.0,
			BulletsPerShot: 1,
			Spacing:        0.5,
			CollisionDelay: 0.05,
		},
		Star: StarConfig{
			PointValue: 10,
			FallSpeed:  2.0,
		},
		Save: SaveConfig{
			AutoSave:         true,
			AutoSaveInterval: 60,
			FileName:         "gamestate.json",
		},
		HUD: HUDConfig{
			AnimateScore:      false,
			AnimationDuration: 0.5,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
	}
}
