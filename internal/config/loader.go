package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadNeonRider loads Neon Rider configuration.
// Search order: customPath -> ~/.arcade/configs/neonrider.yaml -> ./configs/neonrider.yaml -> embedded default
func LoadNeonRider(customPath string) (NeonRiderConfig, error) {
	return load("neonrider", customPath, DefaultNeonRiderConfig)
}

// LoadInvaders loads Space Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load("invaders", customPath, DefaultInvadersConfig)
}

// load decodes the first readable config for a game on top of its defaults,
// so a file only needs the keys it changes. A custom path that cannot be
// read or parsed is an error; the other locations are skipped silently.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func applyDifficulty(cfg *DifficultyConfig, preset DifficultyPreset) {
	cfg.Enabled = !IsFixedPreset(preset)
	if cfg.Enabled {
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyNeonRiderPreset modifies the config based on a difficulty preset.
func ApplyNeonRiderPreset(cfg *NeonRiderConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyDifficulty(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Scoring.HitDamage = 20
		cfg.Motion.CooldownMS = 2000
	case DifficultyHard:
		cfg.Scoring.HitDamage = 34
		cfg.Motion.CooldownMS = 4000
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyDifficulty(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Fire.MaxEnemyBullets = 4
	}
}
