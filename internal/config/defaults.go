package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/trex.yaml
var defaultTrexYAML []byte

// Default returns the hardcoded default configuration. It mirrors
// defaults/trex.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:     500,
			JumpImpulse: 200,
		},
		Difficulty: Difficulty{
			BaseSpeed:        100,
			SpeedIncrement:   10,
			IncreaseInterval: 10,
		},
		Spawn: Spawn{
			MinGap:           1.0,
			MaxGap:           3.0,
			PterodactylLowY:  20,
			PterodactylHighY: 40,
		},
		World: World{
			ScreenWidth:  800,
			ScreenHeight: 200,
			GroundY:      -50,
			TrackX:       50,
			TickInterval: 20 * time.Millisecond,
		},
		Dimensions: Dimensions{
			TrexWidth:         20,
			TrexHeight:        40,
			TrexDuckHeight:    20,
			CactusWidth:       10,
			CactusHeight:      30,
			PterodactylWidth:  30,
			PterodactylHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTrexYAML
}
