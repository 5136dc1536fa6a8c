package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-trex/internal/core"
	"github.com/vovakirdan/tui-trex/internal/platform/tui"
)

var (
	flagDuckHold int
	flagLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W   - Jump
  Down/S       - Duck (held while the key repeats)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.trex/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower speed-up and wider obstacle gaps
  normal - The configured values
  hard   - Faster speed-up and tighter obstacle gaps
  fixed  - Speed never increases

The screen is taken over while playing, so logs go to a file
(~/.trex/trex.log unless --log-file is set).

Examples:
  trex play
  trex play --difficulty hard
  trex play --seed 42
  trex play --config ./my-trex.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagDuckHold, "duck-hold", core.DefaultDuckHold, "Ticks a single Down press keeps the T-Rex ducking")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.trex/trex.log)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError("loading config", err)

	logFile, err := openLogFile(flagLogFile)
	exitOnError("opening log file", err)
	defer logFile.Close()

	logger, err := newLogger(logFile, "trex")
	exitOnError("creating logger", err)

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	rt.DuckHold = flagDuckHold

	exitOnError("running game", tui.Run(cfg, rt, logger))
}

// openLogFile opens path for appending, defaulting to ~/.trex/trex.log.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".trex", "trex.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
