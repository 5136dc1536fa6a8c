package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trex/internal/core"
	"github.com/vovakirdan/tui-trex/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagServeDuckHold int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the T-Rex SSH server",
	Long: `Start an SSH server that lets users connect and play.

Every SSH connection gets its own game. All sessions share the
configuration and difficulty chosen when the server starts.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.trex/host_key

Examples:
  trex serve                           # Listen on :23234 with auto-generated key
  trex serve --ssh :2222               # Listen on port 2222
  trex serve --host-key ./my_host_key  # Use specific host key
  trex serve --difficulty hard         # Hard mode for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeDuckHold, "duck-hold", core.DefaultDuckHold, "Ticks a single Down press keeps the T-Rex ducking")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	exitOnError("loading config", err)

	logger, err := newLogger(os.Stderr, "trex-ssh")
	exitOnError("creating logger", err)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = gameCfg
	cfg.Seed = flagSeed
	cfg.DuckHold = flagServeDuckHold

	server, err := tui.NewSSHServer(cfg, logger)
	exitOnError("creating server", err)

	fmt.Printf("Starting T-Rex SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	exitOnError("serving", server.ListenAndServe())
}
