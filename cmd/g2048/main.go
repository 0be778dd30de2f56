// g2048 is the 2048 puzzle game for the terminal and the browser.
//
// Usage:
//
//	g2048 play              - Play in the terminal
//	g2048 serve             - Serve the browser build for local development
//	g2048 ssh               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.g2048/config.yaml, ./configs/g2048.yaml)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/g2048/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// Loaded by the root command before any subcommand runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "g2048",
	Short: "2048 - slide and merge tiles to reach 2048",
	Long: `g2048 is the 2048 puzzle game. Slide the tiles with the arrow keys;
equal tiles merge into their sum. Reach 2048 to win.

Available commands:
  play     - Play in the terminal
  serve    - Serve the browser build for local development
  ssh      - Start SSH server for remote play

Examples:
  g2048 play
  g2048 play --board ./boards/nearly-won.yaml
  g2048 serve --addr :8080
  g2048 ssh --addr :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sshCmd)
}

// setup loads .env and the config file and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "g2048",
	})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return nil
}
