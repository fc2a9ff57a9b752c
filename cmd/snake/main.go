// snake is a terminal Snake game with a classic and a pro variant.
//
// Usage:
//
//	snake list               - List available variants
//	snake play [variant]     - Play a variant (picker when omitted)
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Menu redraw rate (default: from config)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Custom configuration file
//	--debug             - Enable debug logging
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-snake/internal/session"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game in two variants:

  classic  - plain board, constant look, speed ramps up slowly
  pro      - framed board, animated food, gradient snake, music

Examples:
  snake list
  snake play
  snake play pro
  snake play classic --seed 42
  snake serve --ssh :2222 --variant pro`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Menu redraw rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the application logger from the global flags.
// The returned closer releases the log file, if any.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the configuration and applies the --fps override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.MenuFPS = flagFPS
	}
	return cfg, nil
}
