package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// An empty string means "use the config as loaded" and returns "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Base speed is never touched since it also drives the score rate.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SpeedIncrement = 5
		cfg.Difficulty.IncreaseInterval = 15
		cfg.Spawn.MinGap = 1.5
		cfg.Spawn.MaxGap = 3.5
	case DifficultyHard:
		cfg.Difficulty.SpeedIncrement = 20
		cfg.Difficulty.IncreaseInterval = 8
		cfg.Spawn.MinGap = 0.8
		cfg.Spawn.MaxGap = 2.2
	case DifficultyFixed:
		// No progression, the run stays at base speed forever
		cfg.Difficulty.SpeedIncrement = 0
	}
}
