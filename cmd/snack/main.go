// snack is a terminal snake game built around a tick-driven engine.
//
// Usage:
//
//	snack play               - Play in the terminal
//	snack sim                - Run the engine headless and log every tick
//	snack config             - Print the resolved configuration
//	snack layouts            - List the named board layouts
//
// Global flags:
//
//	--config <path>     - Engine config YAML (default: search ~/.snack/configs, ./configs)
//	--layout <name>     - Override board size and tick with a named layout
//	--seed <value>      - RNG seed for food placement (0 = time-based)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snack/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLayout   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snack",
	Short: "Snack - a snake game for your terminal",
	Long: `Snack runs a snake on a wrapping board. Eating food grows the snake;
running into itself shrinks it back to the starting length.

Available commands:
  play     - Play in the terminal
  sim      - Run the engine without a UI
  config   - Show the resolved configuration
  layouts  - List board layouts

Examples:
  snack play
  snack play --layout compact
  snack sim --ticks 50 --seed 7
  snack config --config ./snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Board layout: classic, compact")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(layoutsCmd)
}

// loadConfig resolves the config file and layout flags into a validated config.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLayout != "" {
		if err := config.ApplyLayout(&cfg, flagLayout); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "snack",
		Level:           level,
	}), nil
}

// seed returns the --seed value, or a time-based one when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
