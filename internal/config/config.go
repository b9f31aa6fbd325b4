// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import "time"

// InputConfig controls how terminal key presses become held actions.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // how long one press keeps a direction held
}

// HoldWindow returns the hold window as a duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// NeonRiderConfig contains all configuration for the Neon Rider racer.
type NeonRiderConfig struct {
	Input      InputConfig        `yaml:"input"`
	Player     NeonRiderPlayer    `yaml:"player"`
	Motion     NeonRiderMotion    `yaml:"motion"`
	Spawning   NeonRiderSpawning  `yaml:"spawning"`
	Collision  NeonRiderCollision `yaml:"collision"`
	Scoring    NeonRiderScoring   `yaml:"scoring"`
	Effects    NeonRiderEffects   `yaml:"effects"`
	Tunnel     NeonRiderTunnel    `yaml:"tunnel"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// NeonRiderPlayer defines the ship's movement envelope.
type NeonRiderPlayer struct {
	Z        float64 `yaml:"z"`         // depth of the ship
	Bound    float64 `yaml:"bound"`     // x and y are clamped to [-bound, bound]
	Move     float64 `yaml:"move"`      // units per frame per held axis
	Bank     float64 `yaml:"bank"`      // target roll per unit of sideways movement
	BankEase float64 `yaml:"bank_ease"` // fraction of the roll error closed per frame
}

// NeonRiderMotion defines the speed ramp and boost.
type NeonRiderMotion struct {
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedIncrement  float64 `yaml:"speed_increment"` // added every frame
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	BoostMS         int     `yaml:"boost_ms"`
	CooldownMS      int     `yaml:"cooldown_ms"`
}

// NeonRiderSpawning defines spawn probabilities and the spawn region.
type NeonRiderSpawning struct {
	ObstacleRate    float64 `yaml:"obstacle_rate"`    // chance per frame
	CollectibleRate float64 `yaml:"collectible_rate"` // chance per frame
	Radius          float64 `yaml:"radius"`           // max distance from the tunnel axis
	SpawnZ          float64 `yaml:"spawn_z"`
	DespawnZ        float64 `yaml:"despawn_z"`
	MaxSpin         float64 `yaml:"max_spin"`
}

// NeonRiderCollision defines hit distances per category.
type NeonRiderCollision struct {
	Obstacle    float64 `yaml:"obstacle"`
	Barrier     float64 `yaml:"barrier"`
	Collectible float64 `yaml:"collectible"`
}

// NeonRiderScoring defines health and points.
type NeonRiderScoring struct {
	Health           int     `yaml:"health"`
	HitDamage        int     `yaml:"hit_damage"`
	CollectibleValue int     `yaml:"collectible_value"`
	DistanceFactor   float64 `yaml:"distance_factor"` // points per frame = floor(speed * factor)
}

// NeonRiderEffects defines the cosmetic effects.
type NeonRiderEffects struct {
	ExplosionParticles int     `yaml:"explosion_particles"`
	CollectParticles   int     `yaml:"collect_particles"`
	ParticleSpeed      float64 `yaml:"particle_speed"`
	ParticleDecay      float64 `yaml:"particle_decay"` // life lost per frame
	ShakeMS            int     `yaml:"shake_ms"`
	ShakeIntensity     float64 `yaml:"shake_intensity"`
	PopupMS            int     `yaml:"popup_ms"`
	TrailMS            int     `yaml:"trail_ms"`
}

// NeonRiderTunnel defines the tunnel drawing.
type NeonRiderTunnel struct {
	Radius      float64 `yaml:"radius"`
	Rings       int     `yaml:"rings"`
	RingSpacing float64 `yaml:"ring_spacing"`
	Spokes      int     `yaml:"spokes"`
	Spin        float64 `yaml:"spin"`   // rotation per frame per unit of speed
	Focal       float64 `yaml:"focal"`  // projection scale in rows
	Camera      float64 `yaml:"camera"` // camera depth, behind the ship
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	Input      InputConfig      `yaml:"input"`
	Grid       InvadersGrid     `yaml:"grid"`
	Motion     InvadersMotion   `yaml:"motion"`
	Fire       InvadersFire     `yaml:"fire"`
	Player     InvadersPlayer   `yaml:"player"`
	Scoring    InvadersScoring  `yaml:"scoring"`
	Stars      int              `yaml:"stars"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersGrid defines the enemy formation, in cells.
type InvadersGrid struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	PadX     int `yaml:"pad_x"`
	PadY     int `yaml:"pad_y"`
	Top      int `yaml:"top"`
	StepDown int `yaml:"step_down"`
	Margin   int `yaml:"margin"` // formation reverses this close to the edge
}

// InvadersMotion defines speeds in cells per frame.
type InvadersMotion struct {
	EnemySpeed       float64 `yaml:"enemy_speed"`
	LevelStep        float64 `yaml:"level_step"` // added to enemy_speed per cleared wave
	PlayerSpeed      float64 `yaml:"player_speed"`
	BulletSpeed      float64 `yaml:"bullet_speed"`
	EnemyBulletSpeed float64 `yaml:"enemy_bullet_speed"`
}

// InvadersFire defines enemy fire.
type InvadersFire struct {
	MaxEnemyBullets int     `yaml:"max_enemy_bullets"`
	Chance          float64 `yaml:"chance"` // per alive enemy per frame, times level
}

// InvadersPlayer defines the cannon.
type InvadersPlayer struct {
	Lives  int `yaml:"lives"`
	Width  int `yaml:"width"`
	Bottom int `yaml:"bottom"` // rows between the cannon and the screen bottom
}

// InvadersScoring defines points per kill.
type InvadersScoring struct {
	RowValue int `yaml:"row_value"` // kill in row r scores (rows - r) * row_value
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
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to speed at max difficulty
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // added to spawn and fire rates at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values give "",
// which keeps the config's own difficulty section.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
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
