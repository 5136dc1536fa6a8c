// Package replay drives a T-Rex run without a terminal: a YAML script fixes the
// seed, the tick size and the commands issued at given ticks, which makes runs
// reproducible for debugging and tests.
package replay

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Command is a player command issued between ticks.
type Command string

const (
	CommandJump     Command = "jump"
	CommandDuck     Command = "duck"
	CommandStopDuck Command = "stop_duck"
	CommandReset    Command = "reset"
)

// ErrUnknownCommand is returned for a script step with an unsupported command.
var ErrUnknownCommand = errors.New("replay: unknown command")

// Step schedules a command before the tick with index At (0-based).
type Step struct {
	At int     `yaml:"at"`
	Do Command `yaml:"do"`
}

// Script describes a headless run.
type Script struct {
	Seed           int64   `yaml:"seed"`
	DT             float64 `yaml:"dt"` // seconds per tick; 0 uses the configured tick interval
	Ticks          int     `yaml:"ticks"`
	StopOnGameOver bool    `yaml:"stop_on_game_over"`
	Commands       []Step  `yaml:"commands"`
}

// Load reads and validates a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script. Steps come back ordered by tick,
// keeping file order for steps on the same tick.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	s.Commands = ordered(s.Commands)
	return s, nil
}

// ordered returns a copy of steps sorted by tick, stable for equal ticks.
func ordered(steps []Step) []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At < out[j].At
	})
	return out
}

// Validate checks tick counts, dt and commands.
func (s Script) Validate() error {
	var errs []error
	if s.Ticks <= 0 {
		errs = append(errs, fmt.Errorf("replay: ticks must be positive, got %d", s.Ticks))
	}
	if s.DT < 0 || math.IsNaN(s.DT) || math.IsInf(s.DT, 0) {
		errs = append(errs, fmt.Errorf("replay: dt must be a positive finite number or 0, got %v", s.DT))
	}
	for i, step := range s.Commands {
		if step.At < 0 {
			errs = append(errs, fmt.Errorf("replay: command %d: negative tick %d", i, step.At))
		}
		switch step.Do {
		case CommandJump, CommandDuck, CommandStopDuck, CommandReset:
		default:
			errs = append(errs, fmt.Errorf("%w %q at command %d", ErrUnknownCommand, step.Do, i))
		}
	}
	return errors.Join(errs...)
}
