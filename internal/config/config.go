// Package config provides YAML-based game configuration loading,
// difficulty presets and the difficulty scalar used by the spawner.
package config

// StarfallConfig holds every tunable of the game.
type StarfallConfig struct {
	Spawning   SpawningConfig   `yaml:"spawning"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Asteroid   AsteroidConfig   `yaml:"asteroid"`
	Player     PlayerConfig     `yaml:"player"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Star       StarConfig       `yaml:"star"`
	Save       SaveConfig       `yaml:"save"`
	HUD        HUDConfig        `yaml:"hud"`
	Input      InputConfig      `yaml:"input"`
}

// SpawningConfig controls where and how often things enter the field.
type SpawningConfig struct {
	AsteroidSpawnRate float64 `yaml:"asteroid_spawn_rate"` // seconds between asteroids at difficulty 1
	StarSpawnRate     float64 `yaml:"star_spawn_rate"`     // seconds between free stars
	SpawnHeight       float64 `yaml:"spawn_height"`
	SpawnWidthMin     float64 `yaml:"spawn_width_min"`
	SpawnWidthMax     float64 `yaml:"spawn_width_max"`
}

// DifficultyConfig defines the time-driven difficulty scalar.
type DifficultyConfig struct {
	MinAsteroidSize      float64 `yaml:"min_asteroid_size"`
	MaxAsteroidSize      float64 `yaml:"max_asteroid_size"`
	IncreaseRate         float64 `yaml:"increase_rate"` // percent per second
	MaxDifficulty        float64 `yaml:"max_difficulty"`
	InitialDifficulty    float64 `yaml:"initial_difficulty"`
	BonusHealthThreshold float64 `yaml:"bonus_health_threshold"` // fraction of max
	BonusHealthStep      float64 `yaml:"bonus_health_step"`      // fraction of max per point
	BonusHealthCap       int     `yaml:"bonus_health_cap"`
}

// AsteroidConfig defines asteroid stats and movement tuning.
type AsteroidConfig struct {
	BaseHealth           int     `yaml:"base_health"`
	BaseFallSpeed        float64 `yaml:"base_fall_speed"`
	MinRotationSpeed     float64 `yaml:"min_rotation_speed"`
	MaxRotationSpeed     float64 `yaml:"max_rotation_speed"`
	DestroyBelowY        float64 `yaml:"destroy_below_y"`
	SpecialPatternChance float64 `yaml:"special_pattern_chance"`
	HorizontalAmplitude  float64 `yaml:"horizontal_amplitude"`
	HorizontalFrequency  float64 `yaml:"horizontal_frequency"`
	Acceleration         float64 `yaml:"acceleration"`
	HomingStrength       float64 `yaml:"homing_strength"`
	ZigZagInterval       float64 `yaml:"zigzag_interval"`
}

// PlayerConfig defines movement, lives and the respawn sequence.
type PlayerConfig struct {
	Speed               float64 `yaml:"speed"`
	MaxLives            int     `yaml:"max_lives"`
	InvulnerabilityTime float64 `yaml:"invulnerability_time"`
	FlashInterval       float64 `yaml:"flash_interval"`
	RespawnDelay        float64 `yaml:"respawn_delay"`
	RespawnX            float64 `yaml:"respawn_x"`
	RespawnY            float64 `yaml:"respawn_y"`
	DamagePenalty       int     `yaml:"damage_penalty"`
}

// WeaponConfig defines the player's gun.
type WeaponConfig struct {
	FireRate       float64 `yaml:"fire_rate"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletLifetime float64 `yaml:"bullet_lifetime"`
	BulletsPerShot int     `yaml:"bullets_per_shot"`
	Spacing        float64 `yaml:"spacing"`
	CollisionDelay float64 `yaml:"collision_delay"`
}

// StarConfig defines collectible stars.
type StarConfig struct {
	PointValue int     `yaml:"point_value"`
	FallSpeed  float64 `yaml:"fall_speed"`
}

// SaveConfig controls the save file.
type SaveConfig struct {
	AutoSave         bool    `yaml:"auto_save"`
	AutoSaveInterval float64 `yaml:"auto_save_interval"`
	FileName         string  `yaml:"file_name"`
}

// HUDConfig controls the score display.
type HUDConfig struct {
	AnimateScore      bool    `yaml:"animate_score"`
	AnimationDuration float64 `yaml:"animation_duration"`
}

// InputConfig controls key-hold emulation in terminals that only report
// key presses.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return DifficultyNormal, false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
