package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate reports every field that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.jump_impulse", c.Physics.JumpImpulse)

	positive("difficulty.base_speed", c.Difficulty.BaseSpeed)
	nonNegative("difficulty.speed_increment", c.Difficulty.SpeedIncrement)
	positive("difficulty.increase_interval", c.Difficulty.IncreaseInterval)

	positive("spawn.min_gap", c.Spawn.MinGap)
	positive("spawn.max_gap", c.Spawn.MaxGap)
	if c.Spawn.MaxGap < c.Spawn.MinGap {
		errs = append(errs, fmt.Errorf("%w: spawn.max_gap (%v) is below spawn.min_gap (%v)",
			ErrInvalidConfig, c.Spawn.MaxGap, c.Spawn.MinGap))
	}
	nonNegative("spawn.pterodactyl_low_y", c.Spawn.PterodactylLowY)
	nonNegative("spawn.pterodactyl_high_y", c.Spawn.PterodactylHighY)

	positive("world.screen_width", c.World.ScreenWidth)
	positive("world.screen_height", c.World.ScreenHeight)
	if c.World.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: world.tick_interval must be positive, got %s",
			ErrInvalidConfig, c.World.TickInterval))
	}

	positive("dimensions.trex_width", c.Dimensions.TrexWidth)
	positive("dimensions.trex_height", c.Dimensions.TrexHeight)
	positive("dimensions.trex_duck_height", c.Dimensions.TrexDuckHeight)
	if c.Dimensions.TrexDuckHeight > c.Dimensions.TrexHeight {
		errs = append(errs, fmt.Errorf("%w: dimensions.trex_duck_height (%v) exceeds trex_height (%v)",
			ErrInvalidConfig, c.Dimensions.TrexDuckHeight, c.Dimensions.TrexHeight))
	}
	positive("dimensions.cactus_width", c.Dimensions.CactusWidth)
	positive("dimensions.cactus_height", c.Dimensions.CactusHeight)
	positive("dimensions.pterodactyl_width", c.Dimensions.PterodactylWidth)
	positive("dimensions.pterodactyl_height", c.Dimensions.PterodactylHeight)

	return errors.Join(errs...)
}
