package config

import (
	_ "embed"
)

//go:embed defaults/stressbuster.yaml
var defaultYAML []byte

// DefaultRecordKey namespaces the best-score record in the key-value store.
const DefaultRecordKey = "stressbuster.dinoHighScore"

// DefaultGameConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Viewport: Viewport{
			Width:      800,
			Height:     200,
			GroundLine: 197,
			GroundTile: 20,
		},
		Physics: Physics{
			Gravity:     0.6,
			JumpImpulse: -15,
		},
		Player: Player{
			X:       50,
			GroundY: 150,
			Width:   44,
			Height:  47,
			Standing: Hitbox{
				OffsetX: 4,
				OffsetY: 0,
				Width:   40,
				Height:  43,
			},
			Ducking: Hitbox{
				OffsetX: 4,
				OffsetY: 20,
				Width:   55,
				Height:  25,
			},
		},
		Obstacles: Obstacles{
			Ground: ObstacleShape{
				Width:  17,
				Height: 35,
				MinY:   165,
				MaxY:   165,
			},
			Airborne: ObstacleShape{
				Width:  46,
				Height: 20,
				MinY:   120,
				MaxY:   150,
			},
			InsetX: 2,
		},
		Spawner: Spawner{
			EveryTicks:   90,
			MinGapFactor: 50,
		},
		Clouds: Clouds{
			EveryTicks:  200,
			Width:       46,
			Height:      14,
			MinY:        20,
			MaxY:        70,
			SpeedFactor: 0.5,
		},
		Scoring: Scoring{
			EveryTicks:     6,
			BaseSpeed:      6,
			SpeedStepScore: 100,
			SpeedIncrement: 1,
			MaxSpeed:       13,
		},
		Storage: Storage{
			RecordKey: DefaultRecordKey,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
