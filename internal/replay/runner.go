package replay

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-trex/internal/config"
	"github.com/vovakirdan/tui-trex/internal/trex"
)

// Result summarizes a headless run.
type Result struct {
	Ticks      int           // Ticks actually simulated
	GameOverAt int           // Tick index of the last collision, -1 if none
	Runs       int           // Runs started, counting resets
	Best       int           // Highest score reached by any run
	Final      trex.Snapshot // State after the last tick
}

// Run plays a script against a fresh game built from cfg.
// It stops early when ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, s Script, logger *log.Logger) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dt := s.DT
	if dt == 0 {
		dt = cfg.World.DT()
	}

	game := trex.New(cfg, trex.WithSeed(s.Seed))
	res := Result{GameOverAt: -1, Runs: 1}
	steps := ordered(s.Commands)
	next := 0

	for tick := 0; tick < s.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("replay: stopped at tick %d: %w", tick, err)
		}

		for next < len(steps) && steps[next].At <= tick {
			if apply(game, steps[next].Do) {
				res.Runs++
				logger.Debug("run reset", "tick", tick)
			}
			next++
		}

		step, err := game.Tick(dt)
		if err != nil {
			return res, err
		}
		res.Ticks++
		res.Final = step.State
		res.Best = max(res.Best, step.State.Score)

		if step.Collided {
			res.GameOverAt = tick
			logger.Info("game over",
				"tick", tick,
				"score", step.State.Score,
				"elapsed", fmt.Sprintf("%.2fs", step.State.Elapsed),
			)
			if s.StopOnGameOver {
				break
			}
		}
	}

	return res, nil
}

// apply issues one command and reports whether it started a new run.
func apply(game *trex.Game, c Command) bool {
	switch c {
	case CommandJump:
		game.StartJump()
	case CommandDuck:
		game.StartDuck()
	case CommandStopDuck:
		game.StopDuck()
	case CommandReset:
		game.Reset()
		return true
	}
	return false
}
