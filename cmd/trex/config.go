package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trex/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, as YAML.

The config is resolved in this order: --config, ~/.trex/configs/trex.yaml,
./configs/trex.yaml, then the built-in defaults. --difficulty is applied
on top. The output can be saved and edited as a custom config.

Examples:
  trex config > ~/.trex/configs/trex.yaml
  trex config --difficulty hard
  trex config --default`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	exitOnError("loading config", err)

	data, err := config.Marshal(cfg)
	exitOnError("encoding config", err)
	os.Stdout.Write(data)
}
