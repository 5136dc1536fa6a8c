// trex is an endless-runner T-Rex game for the terminal.
//
// Usage:
//
//	trex play                - Play in the current terminal
//	trex serve               - Start SSH server for remote play
//	trex sim [script.yaml]   - Run the simulation headless
//	trex config              - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trex/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trex",
	Short: "T-Rex runner in your terminal",
	Long: `A T-Rex endless runner: jump over cacti, duck under pterodactyls and
survive as the game speeds up.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  sim      - Run the simulation without a terminal
  config   - Print the effective configuration

Examples:
  trex play
  trex play --difficulty hard
  trex serve --ssh :2222
  trex sim ./replay.yaml --seed 42
  trex config --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, applies the difficulty preset and
// validates the result.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger creates a logger honoring --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// exitOnError prints err to stderr and exits.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}
