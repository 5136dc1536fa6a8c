// Package config provides YAML-based configuration loading and difficulty
// presets for the T-Rex runner. Every tunable constant of the simulation lives
// here so it can be overridden from a file.
package config

import "time"

// Config contains all configuration for a T-Rex run.
type Config struct {
	Physics    Physics    `yaml:"physics"`
	Difficulty Difficulty `yaml:"difficulty"`
	Spawn      Spawn      `yaml:"spawn"`
	World      World      `yaml:"world"`
	Dimensions Dimensions `yaml:"dimensions"`
}

// Physics defines the jump arc. Units are world pixels and seconds.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // px/s^2, subtracted from velocity while airborne
	JumpImpulse float64 `yaml:"jump_impulse"` // px/s, initial upward velocity of a jump
}

// Difficulty defines how the scroll speed grows over a run.
type Difficulty struct {
	BaseSpeed        float64 `yaml:"base_speed"`        // px/s at the start of a run, also the score rate
	SpeedIncrement   float64 `yaml:"speed_increment"`   // px/s added at every step
	IncreaseInterval float64 `yaml:"increase_interval"` // seconds between steps
}

// Spawn defines obstacle timing and pterodactyl flight altitudes.
type Spawn struct {
	MinGap           float64 `yaml:"min_gap"` // seconds
	MaxGap           float64 `yaml:"max_gap"` // seconds
	PterodactylLowY  float64 `yaml:"pterodactyl_low_y"`
	PterodactylHighY float64 `yaml:"pterodactyl_high_y"`
}

// World defines the playfield geometry and the simulation tick.
type World struct {
	ScreenWidth  float64       `yaml:"screen_width"`  // obstacles spawn at this x
	ScreenHeight float64       `yaml:"screen_height"` // used by renderers only
	GroundY      float64       `yaml:"ground_y"`      // ground line in screen space, used by renderers only
	TrackX       float64       `yaml:"track_x"`       // fixed horizontal center of the T-Rex
	TickInterval time.Duration `yaml:"tick_interval"` // fixed simulation step
}

// Dimensions defines hitbox sizes. Obstacle sizes depend only on kind.
type Dimensions struct {
	TrexWidth         float64 `yaml:"trex_width"`
	TrexHeight        float64 `yaml:"trex_height"`
	TrexDuckHeight    float64 `yaml:"trex_duck_height"`
	CactusWidth       float64 `yaml:"cactus_width"`
	CactusHeight      float64 `yaml:"cactus_height"`
	PterodactylWidth  float64 `yaml:"pterodactyl_width"`
	PterodactylHeight float64 `yaml:"pterodactyl_height"`
}

// DT returns the fixed simulation step in seconds.
func (w World) DT() float64 {
	return w.TickInterval.Seconds()
}

// SpeedAt returns the scroll speed after elapsed seconds of running.
// Speed grows in discrete steps: base + increment*floor(elapsed/interval).
func (d Difficulty) SpeedAt(elapsed float64) float64 {
	if d.IncreaseInterval <= 0 || elapsed < 0 {
		return d.BaseSpeed
	}
	steps := int(elapsed / d.IncreaseInterval)
	return d.BaseSpeed + d.SpeedIncrement*float64(steps)
}

// TrexHeightFor returns the hitbox height of the T-Rex for the given posture.
func (d Dimensions) TrexHeightFor(ducking bool) float64 {
	if ducking {
		return d.TrexDuckHeight
	}
	return d.TrexHeight
}
