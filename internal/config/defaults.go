package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in configuration. It mirrors
// defaults/asteroids.yaml and is used when the embedded file cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
			DT:     0.1,
		},
		Game: GameplayConfig{
			Lives:             3,
			StartLevel:        1,
			BonusPoints:       1000,
			AsteroidsPerLevel: 5,
			SafetyDistance:    60,
			BestScores:        10,
			Volume:            0.25,
			VolumeStep:        0.05,
			AttractTicks:      300,
		},
		Asteroids: AsteroidConfig{
			Speed:          10,
			MinSpeed:       2,
			SplitRatio:     2,
			Vertices:       16,
			ExplosionTicks: 64,
			Big:            AsteroidSize{Radius: 30, Jitter: 3, Roughness: 5, Score: 5},
			Medium:         AsteroidSize{Radius: 20, Jitter: 5, Roughness: 3, Score: 10},
			Small:          AsteroidSize{Radius: 10, Jitter: 5, Roughness: 2, Score: 20},
		},
		Ship: ShipConfig{
			Size:             16,
			RotationStep:     10,
			Impulse:          4,
			MaxVelocity:      250,
			ImpulseTicks:     20,
			ExplosionTicks:   32,
			ShieldTicks:      100,
			ShotDelay:        6,
			ThrustSoundTicks: 15,
		},
		Aliens: AlienConfig{
			BigScale:      1.5,
			SpawnInterval: 500,
			SpawnJitter:   250,
			ShotDelay:     20,
			BigAimError:   11.25,
			SmallAimError: 2.8125,
			WanderTicks:   25,
			WanderX:       5,
			WanderY:       10,
			Speed:         25,
			SpeedJitter:   25,
			EdgeMargin:    50,
			BigScore:      100,
			SmallScore:    500,
		},
		Missiles: MissileConfig{
			Speed: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				SpawnReduction:  0.5,
			},
		},
	}
}
