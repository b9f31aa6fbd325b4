package config

import "math"

// DifficultyManager scales speeds and spawn rates as a run progresses.
// A disabled manager holds the level at the configured initial level.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, floor: unit(cfg.InitialLevel)}
}

// IsEnabled reports whether the level moves with score or time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [initial_level, 1]. Progression of type
// "score" measures score against max_at, "time" measures elapsed ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.floor
	}
	var done float64
	switch d.cfg.Progression.Type {
	case "score":
		done = d.progress(score)
	case "time":
		done = d.progress(ticks)
	default:
		return d.floor
	}
	return d.floor + done*(1-d.floor)
}

func (d *DifficultyManager) progress(n int) float64 {
	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	return unit(float64(n) / maxAt)
}

// Speed scales a base speed from base to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnRate scales a per-frame probability the same way, capped at 1.
func (d *DifficultyManager) SpawnRate(baseRate float64, score int, ticks int) float64 {
	return unit(baseRate * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpawnMultiplier))
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
