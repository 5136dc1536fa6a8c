package trex

import "github.com/vovakirdan/tui-trex/internal/config"

// Character is the T-Rex. Y is the height of its feet above the ground.
//
// Y never goes below zero, Velocity is only nonzero while Jumping, and
// Ducking cannot start while Jumping.
type Character struct {
	Y        float64
	Velocity float64
	Jumping  bool
	Ducking  bool
}

// StartJump launches the T-Rex with the configured impulse, standing it up
// first if it was ducking. A jump already in progress is left untouched.
func (c *Character) StartJump(p config.Physics) {
	if c.Jumping {
		return
	}
	c.Ducking = false
	c.Jumping = true
	c.Velocity = p.JumpImpulse
}

// StartDuck lowers the hitbox. It does nothing mid-air.
func (c *Character) StartDuck() {
	if c.Jumping {
		return
	}
	c.Ducking = true
}

// StopDuck restores the standing hitbox.
func (c *Character) StopDuck() {
	c.Ducking = false
}

// Advance integrates the jump arc over dt seconds.
// Position moves with the velocity from before this step's gravity, then
// gravity is applied; reaching the ground ends the jump.
func (c *Character) Advance(p config.Physics, dt float64) {
	if !c.Jumping {
		return
	}

	c.Y += c.Velocity * dt
	c.Velocity -= p.Gravity * dt

	if c.Y <= 0 {
		c.Y = 0
		c.Jumping = false
		c.Velocity = 0
	}
}
