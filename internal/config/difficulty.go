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

// ParsePreset converts a CLI/env string to a preset. The empty string means
// "keep the config as loaded" and is returned as an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the speed curve and spawn cadence for a preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.BaseSpeed = 5
		cfg.Scoring.MaxSpeed = 10
		cfg.Scoring.SpeedStepScore = 150
		cfg.Spawner.EveryTicks = 110
	case DifficultyHard:
		cfg.Scoring.BaseSpeed = 8
		cfg.Scoring.MaxSpeed = 15
		cfg.Scoring.SpeedStepScore = 75
		cfg.Spawner.EveryTicks = 75
	case DifficultyFixed:
		// No progression: the speed stays at base for the whole session.
		cfg.Scoring.SpeedIncrement = 0
		cfg.Scoring.MaxSpeed = cfg.Scoring.BaseSpeed
	}
}
