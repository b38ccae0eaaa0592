package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snack/internal/core"
	"github.com/vovakirdan/snack/internal/games/snake"
	"github.com/vovakirdan/snack/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD - Steer
  X           - Stop the snake
  R           - Restart (reset while running, fresh game after stop)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  snack play
  snack play --layout compact
  snack play --seed 42 --log-file snack.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write engine logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The UI owns the terminal, so logs only go to a file when asked.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	bw, bh := tui.BoardSize(cfg.Board.Size)
	if width < bw || height < bh+2 {
		return fmt.Errorf("terminal is %dx%d, board needs at least %dx%d (try --layout compact)",
			width, height, bw, bh+2)
	}

	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed(),
	}

	// Each restart after a stop gets the next seed so food differs.
	next := runtime.Seed
	factory := func() (*snake.Engine, error) {
		opts, err := cfg.EngineOptions(next, logger)
		if err != nil {
			return nil, err
		}
		next++
		return snake.New(context.Background(), opts)
	}

	return tui.Run(factory, runtime, logger)
}
