// Package trex implements the T-Rex runner simulation: jump physics, obstacle
// generation, collision detection and the running/game-over state machine.
// It never reads the clock; the caller decides how much time each Tick covers.
package trex

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-trex/internal/config"
)

// ErrInvalidDelta is returned by Tick for a dt that is not a positive finite number.
var ErrInvalidDelta = errors.New("trex: dt must be a positive finite number of seconds")

// Phase is the state of the run.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// RunState is everything about a run except the character.
// Once GameOver is set nothing in it changes until the next reset.
type RunState struct {
	Elapsed   float64    // Seconds simulated while running
	NextSpawn float64    // Elapsed time at which the next obstacle spawns
	Score     int        // Accumulated score
	GameOver  bool       // Whether the run has ended
	Obstacles []Obstacle // Active obstacles in spawn order

	nextID uint64
}

// StepResult is returned by Tick.
type StepResult struct {
	State    Snapshot
	Collided bool // True only on the tick that ended the run
}

// Game owns one run and its character.
type Game struct {
	cfg  config.Config
	rng  Random
	gen  *Generator
	char Character
	run  RunState
}

// Option configures a Game.
type Option func(*Game)

// WithRandom injects the random source used for spawning.
func WithRandom(r Random) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = NewRandom(seed)
	}
}

// New creates a game in the Running phase.
// Without WithRandom or WithSeed the random source is seeded from the clock.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRandom(time.Now().UnixNano())
	}
	g.gen = NewGenerator(cfg, g.rng)
	g.Reset()
	return g
}

// Reset starts a fresh run. It is allowed in any phase.
func (g *Game) Reset() {
	g.char = Character{}
	g.run = RunState{
		Obstacles: g.run.Obstacles[:0],
		NextSpawn: g.gen.NextGap(),
	}
}

// StartJump begins a jump. Ignored mid-jump and after game over.
func (g *Game) StartJump() {
	if g.run.GameOver {
		return
	}
	g.char.StartJump(g.cfg.Physics)
}

// StartDuck begins ducking. Ignored mid-jump and after game over.
func (g *Game) StartDuck() {
	if g.run.GameOver {
		return
	}
	g.char.StartDuck()
}

// StopDuck ends ducking. Ignored after game over.
func (g *Game) StopDuck() {
	if g.run.GameOver {
		return
	}
	g.char.StopDuck()
}

// Tick advances the simulation by dt seconds.
// After game over it changes nothing and reports the frozen state.
func (g *Game) Tick(dt float64) (StepResult, error) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return StepResult{State: g.Snapshot()}, fmt.Errorf("%w: got %v", ErrInvalidDelta, dt)
	}
	if g.run.GameOver {
		return StepResult{State: g.Snapshot()}, nil
	}

	g.char.Advance(g.cfg.Physics, dt)
	g.gen.Advance(&g.run, dt)

	// Truncated every tick, so 0.02s at base speed 100 is always +2
	g.run.Score += int(dt * g.cfg.Difficulty.BaseSpeed)

	collided := Detect(g.char, g.run.Obstacles, g.cfg.Dimensions, g.cfg.World.TrackX)
	if collided {
		g.run.GameOver = true
	}

	return StepResult{State: g.Snapshot(), Collided: collided}, nil
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Character returns a copy of the T-Rex state.
func (g *Game) Character() Character {
	return g.char
}

// Obstacles returns a copy of the active obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle {
	out := make([]Obstacle, len(g.run.Obstacles))
	copy(out, g.run.Obstacles)
	return out
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.run.Score
}

// GameOver reports whether the run has ended.
func (g *Game) GameOver() bool {
	return g.run.GameOver
}

// FinalScore returns the score the run ended with.
// ok is false while the run is still going.
func (g *Game) FinalScore() (score int, ok bool) {
	if !g.run.GameOver {
		return 0, false
	}
	return g.run.Score, true
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	if g.run.GameOver {
		return PhaseGameOver
	}
	return PhaseRunning
}

// Elapsed returns the simulated run time in seconds.
func (g *Game) Elapsed() float64 {
	return g.run.Elapsed
}

// Speed returns the scroll speed the next tick will use.
func (g *Game) Speed() float64 {
	return g.gen.Speed(g.run.Elapsed)
}
