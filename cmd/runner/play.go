package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/square-runner/internal/core"
	"github.com/vovakirdan/square-runner/internal/platform/tui"
	"github.com/vovakirdan/square-runner/internal/runner"
	"github.com/vovakirdan/square-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Square Runner",
	Long: `Start a run in this terminal.

Controls:
  Space/Up/W  - Jump
  P           - Pause / resume
  R           - Restart (after game over)
  Tab         - High scores (after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower scroll speed
  normal - Default speed
  hard   - Faster scroll speed

The speed never changes during a run.

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	game, err := runner.New(cfg)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Mode:   preset,
		Player: currentPlayer(),
		Logger: logger,
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		opts.Store = store
	}

	runErr := tui.Run(game, rt, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Fatal("error running game", "error", runErr)
	}
}
