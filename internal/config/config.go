// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids simulation.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all tunables of the simulation.
type AsteroidsConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Game       GameplayConfig   `yaml:"game"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Ship       ShipConfig       `yaml:"ship"`
	Aliens     AlienConfig      `yaml:"aliens"`
	Missiles   MissileConfig    `yaml:"missiles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the simulated area and time step.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`  // Arena width in pixels
	Height float64 `yaml:"height"` // Arena height in pixels
	DT     float64 `yaml:"dt"`     // Simulated seconds per tick
}

// GameplayConfig defines lives, levels and scoring thresholds.
type GameplayConfig struct {
	Lives             int     `yaml:"lives"`
	StartLevel        int     `yaml:"start_level"`
	BonusPoints       int     `yaml:"bonus_points"`        // Extra life every multiple of this score
	AsteroidsPerLevel int     `yaml:"asteroids_per_level"` // Field size is level * this
	SafetyDistance    float64 `yaml:"safety_distance"`     // Respawn keep-out radius
	BestScores        int     `yaml:"best_scores"`         // Entries shown and compared
	Volume            float64 `yaml:"volume"`
	VolumeStep        float64 `yaml:"volume_step"`
	AttractTicks      int     `yaml:"attract_ticks"` // Ticks per game over screen page
}

// AsteroidSize defines one asteroid size class.
type AsteroidSize struct {
	Radius    float64 `yaml:"radius"`
	Jitter    float64 `yaml:"jitter"`    // Random extra radius in [0, jitter]
	Roughness float64 `yaml:"roughness"` // Per-vertex outline perturbation
	Score     int     `yaml:"score"`
}

// AsteroidConfig defines asteroid generation.
type AsteroidConfig struct {
	Speed          float64      `yaml:"speed"`       // Per-axis velocity jitter
	MinSpeed       float64      `yaml:"min_speed"`   // Per-axis velocity offset
	SplitRatio     float64      `yaml:"split_ratio"` // Divisor of the child velocity jitter
	Vertices       int          `yaml:"vertices"`
	ExplosionTicks int          `yaml:"explosion_ticks"`
	Big            AsteroidSize `yaml:"big"`
	Medium         AsteroidSize `yaml:"medium"`
	Small          AsteroidSize `yaml:"small"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Size             float64 `yaml:"size"`
	RotationStep     float64 `yaml:"rotation_step"` // Degrees per tick
	Impulse          float64 `yaml:"impulse"`
	MaxVelocity      float64 `yaml:"max_velocity"` // Per-axis clamp
	ImpulseTicks     int     `yaml:"impulse_ticks"`
	ExplosionTicks   int     `yaml:"explosion_ticks"`
	ShieldTicks      int     `yaml:"shield_ticks"`
	ShotDelay        int     `yaml:"shot_delay"`         // Ticks between shots
	ThrustSoundTicks int     `yaml:"thrust_sound_ticks"` // Minimum ticks between thrust sounds
}

// AlienConfig defines the two flying saucers.
type AlienConfig struct {
	BigScale      float64 `yaml:"big_scale"`
	SpawnInterval int     `yaml:"spawn_interval"`
	SpawnJitter   int     `yaml:"spawn_jitter"`
	ShotDelay     int     `yaml:"shot_delay"`
	BigAimError   float64 `yaml:"big_aim_error"`   // Degrees
	SmallAimError float64 `yaml:"small_aim_error"` // Degrees
	WanderTicks   int     `yaml:"wander_ticks"`
	WanderX       float64 `yaml:"wander_x"`
	WanderY       float64 `yaml:"wander_y"`
	Speed         float64 `yaml:"speed"`
	SpeedJitter   float64 `yaml:"speed_jitter"`
	EdgeMargin    float64 `yaml:"edge_margin"` // Vertical spawn margin from top and bottom
	BigScore      int     `yaml:"big_score"`
	SmallScore    int     `yaml:"small_score"`
}

// MissileConfig defines projectiles.
type MissileConfig struct {
	Speed float64 `yaml:"speed"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score/ticks at which max difficulty is reached
}

// ScalingConfig defines what changes with difficulty.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to asteroid speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the alien spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports settings the simulation cannot run with.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %vx%v", c.Arena.Width, c.Arena.Height))
	}
	if c.Arena.DT <= 0 {
		errs = append(errs, fmt.Errorf("arena.dt must be positive, got %v", c.Arena.DT))
	}
	if c.Game.Lives <= 0 {
		errs = append(errs, fmt.Errorf("game.lives must be positive, got %d", c.Game.Lives))
	}
	if c.Game.StartLevel <= 0 {
		errs = append(errs, fmt.Errorf("game.start_level must be positive, got %d", c.Game.StartLevel))
	}
	if c.Game.BonusPoints <= 0 {
		errs = append(errs, fmt.Errorf("game.bonus_points must be positive, got %d", c.Game.BonusPoints))
	}
	if c.Asteroids.Vertices < 3 {
		errs = append(errs, fmt.Errorf("asteroids.vertices must be at least 3, got %d", c.Asteroids.Vertices))
	}
	if c.Asteroids.SplitRatio == 0 {
		errs = append(errs, errors.New("asteroids.split_ratio must not be zero"))
	}
	if c.Ship.Size <= 0 {
		errs = append(errs, fmt.Errorf("ship.size must be positive, got %v", c.Ship.Size))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
