package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfire/internal/platform/tui"
	"github.com/vovakirdan/skyfire/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Skyfire with the main menu",
	Long: `Start Skyfire in interactive menu mode.

Pick a difficulty with Left/Right, then play or browse the high scores.
After a game you return to the menu with B.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Select
  Q             - Quit

Examples:
  skyfire menu
  skyfire menu --fps 30
  skyfire menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, preset, err := gameSettings()
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(tui.SessionOptions{
		Store:    store,
		Runtime:  runtimeConfig(),
		Game:     cfg,
		Preset:   preset,
		Username: playerName(),
	})
}
