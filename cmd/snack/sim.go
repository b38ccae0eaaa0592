package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snack/internal/games/snake"
)

var (
	flagTicks     int
	flagTurnEvery int
	flagTick      time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the engine without a UI",
	Long: `Run the engine headless for a fixed number of ticks, turning clockwise
every --turn-every ticks, and log each snapshot.

Examples:
  snack sim
  snack sim --ticks 200 --turn-every 7 --tick 10ms
  snack sim --seed 1 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 40, "Number of ticks to run")
	simCmd.Flags().IntVar(&flagTurnEvery, "turn-every", 5, "Turn clockwise every N ticks (0 = never)")
	simCmd.Flags().DurationVar(&flagTick, "tick", 0, "Override the configured tick period")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks < 1 {
		return errors.New("--ticks must be at least 1")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagTick > 0 {
		cfg.Board.Tick = flagTick
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	opts, err := cfg.EngineOptions(seed(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := snake.New(ctx, opts)
	if err != nil {
		return err
	}
	defer engine.Stop()

	return simulate(ctx, engine, flagTicks, flagTurnEvery, func(s snake.State) {
		logger.Info("tick",
			"n", s.Tick,
			"head", s.Head(),
			"length", s.Len(),
			"food", s.Food)
	})
}

// simulate consumes ticks snapshots from engine, turning every turnEvery
// ticks, and passes each one to report. It returns early without error if
// ctx is cancelled.
func simulate(ctx context.Context, engine *snake.Engine, ticks, turnEvery int, report func(snake.State)) error {
	sub := engine.Subscribe()
	defer sub.Cancel()

	dir := engine.Direction()
	for {
		select {
		case <-ctx.Done():
			return nil
		case s, ok := <-sub.C():
			if !ok {
				return nil
			}
			if s.Tick == 0 {
				continue
			}
			report(s)
			if int(s.Tick) >= ticks {
				return nil
			}
			if turnEvery > 0 && int(s.Tick)%turnEvery == 0 {
				dir = dir.Clockwise()
				engine.SetDirection(dir)
			}
		}
	}
}
