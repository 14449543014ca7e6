package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfire/internal/config"
	"github.com/vovakirdan/skyfire/internal/games/shooter"
	"github.com/vovakirdan/skyfire/internal/storage"
)

var (
	flagDuration time.Duration
	flagRecord   bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the autopilot play without a terminal",
	Long: `Run a game headless with the built-in autopilot and log what happens.
The run ends at game over, after --duration, or on Ctrl+C.

Examples:
  skyfire autoplay --duration 30s
  skyfire autoplay --difficulty hard --log-level debug
  skyfire autoplay --record --seed 7`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Stop after this long (0 = until game over)")
	autoplayCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the final score as player \"autopilot\"")
}

func runAutoplay(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := gameSettings()
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	rt := runtimeConfig()
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	g := shooter.New(cfg, rt)
	g.Start()

	log := logger.With("mode", preset, "seed", rt.Seed)
	log.Info("autoplay started", "field", fmt.Sprintf("%.0fx%.0f", g.Field().Width, g.Field().Height))

	state, err := shooter.Run(ctx, g, shooter.LoopOptions{
		TickRate:       rt.TickRate,
		StopOnGameOver: true,
		Pilot:          shooter.Autopilot{},
		OnFrame: func(res shooter.FrameResult) {
			for _, ev := range res.Events {
				switch ev.Kind {
				case shooter.EventShot:
					log.Debug(ev.Kind.String(), "x", ev.At.X)
				case shooter.EventHit:
					log.Info(ev.Kind.String(), "score", res.State.Score)
				case shooter.EventLifeLost:
					log.Warn(ev.Kind.String(), "lives", res.State.Lives)
				default:
					log.Debug(ev.Kind.String(), "x", ev.At.X, "y", ev.At.Y)
				}
			}
		},
	})
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("autoplay finished",
		"phase", state.Phase,
		"score", state.Score,
		"lives", state.Lives,
		"seconds", state.ElapsedSeconds,
	)

	if !flagRecord || state.Score <= 0 {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	id, err := store.SaveScore(storage.ScoreEntry{
		Mode:        string(preset),
		Score:       state.Score,
		ElapsedSecs: state.ElapsedSeconds,
		Player:      "autopilot",
	})
	if err != nil {
		return err
	}
	log.Info("score recorded", "id", id)
	return nil
}
