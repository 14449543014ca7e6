package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfire/internal/config"
	"github.com/vovakirdan/skyfire/internal/platform/tui"
	"github.com/vovakirdan/skyfire/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game straight away.

Controls:
  Left/Right, A/D, H/L  - Move
  Space/Up              - Fire
  Enter                 - Start
  P/Esc                 - Pause
  R                     - Restart (paused or after game over)
  B                     - Back to the menu (paused or after game over)
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Five lives, slower enemies, sparser spawns
  normal - The configured game
  hard   - Two lives, denser spawns, difficulty rises with the score
  fixed  - No progression, stays at config's initial level

Examples:
  skyfire play
  skyfire play --difficulty easy
  skyfire play --seed 42
  skyfire play --config ./my-skyfire.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := gameSettings()
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	gameCfg := cfg
	config.ApplyPreset(&gameCfg, preset)

	rt := runtimeConfig()
	result, err := tui.Run(gameCfg, rt, tui.GameOptions{
		Store:  store,
		Mode:   string(preset),
		Player: playerName(),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if result.BackToMenu {
		return tui.RunSession(tui.SessionOptions{
			Store:    store,
			Runtime:  runtimeConfig(),
			Game:     cfg,
			Preset:   preset,
			Username: playerName(),
		})
	}

	logger.Debug("game finished", "score", result.State.Score, "seconds", result.State.ElapsedSeconds)
	return nil
}
