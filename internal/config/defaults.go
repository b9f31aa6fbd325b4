package config

import (
	_ "embed"
)

//go:embed defaults/neonrider.yaml
var defaultNeonRiderYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultNeonRiderConfig returns the default Neon Rider configuration.
func DefaultNeonRiderConfig() NeonRiderConfig {
	return NeonRiderConfig{
		Input: InputConfig{HoldMS: 180},
		Player: NeonRiderPlayer{
			Z:        4,
			Bound:    2.5,
			Move:     0.1,
			Bank:     0.5,
			BankEase: 0.1,
		},
		Motion: NeonRiderMotion{
			BaseSpeed:       0.2,
			SpeedIncrement:  0.00005,
			BoostMultiplier: 2,
			BoostMS:         1000,
			CooldownMS:      3000,
		},
		Spawning: NeonRiderSpawning{
			ObstacleRate:    0.02,
			CollectibleRate: 0.01,
			Radius:          2.5,
			SpawnZ:          -50,
			DespawnZ:        5,
			MaxSpin:         0.02,
		},
		Collision: NeonRiderCollision{
			Obstacle:    0.6,
			Barrier:     1.5,
			Collectible: 0.5,
		},
		Scoring: NeonRiderScoring{
			Health:           100,
			HitDamage:        25,
			CollectibleValue: 10,
			DistanceFactor:   10,
		},
		Effects: NeonRiderEffects{
			ExplosionParticles: 15,
			CollectParticles:   8,
			ParticleSpeed:      0.2,
			ParticleDecay:      0.02,
			ShakeMS:            300,
			ShakeIntensity:     0.1,
			PopupMS:            1000,
			TrailMS:            50,
		},
		Tunnel: NeonRiderTunnel{
			Radius:      3,
			Rings:       12,
			RingSpacing: 4,
			Spokes:      8,
			Spin:        0.1,
			Focal:       10,
			Camera:      7,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnMultiplier: 1.0,
			},
		},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Input: InputConfig{HoldMS: 150},
		Grid: InvadersGrid{
			Rows:     4,
			Cols:     8,
			Width:    4,
			Height:   1,
			PadX:     2,
			PadY:     1,
			Top:      3,
			StepDown: 1,
			Margin:   1,
		},
		Motion: InvadersMotion{
			EnemySpeed:       0.17,
			LevelStep:        0.085,
			PlayerSpeed:      0.8,
			BulletSpeed:      0.5,
			EnemyBulletSpeed: 0.25,
		},
		Fire: InvadersFire{
			MaxEnemyBullets: 3,
			Chance:          0.001,
		},
		Player: InvadersPlayer{
			Lives:  3,
			Width:  5,
			Bottom: 2,
		},
		Scoring: InvadersScoring{RowValue: 10},
		Stars:   50,
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "neonrider":
		return defaultNeonRiderYAML
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
