package core

// RuntimeConfig contains what the shell knows about its environment when a
// session starts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	Seed     int64 // RNG seed; 0 means use current time in platform layer
	DuckHold int   // Ticks a single Down press keeps the T-Rex ducking
}

// DefaultDuckHold covers the gap before a held key starts auto-repeating.
const DefaultDuckHold = 25

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Seed:     0,
		DuckHold: DefaultDuckHold,
	}
}
