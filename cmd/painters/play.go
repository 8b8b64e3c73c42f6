package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ksenzov/perspective-painters/internal/platform/tui"
	"github.com/ksenzov/perspective-painters/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a local game session.

Controls:
  1/2/3        - Jump to a character's point of view
  Tab / arrows - Cycle points of view
  Enter/Space  - Perform the active character's action
  N            - Paint a new story
  Q/Ctrl+C     - Quit

Examples:
  painters play
  painters play --config ./painters.yaml
  painters play --db ./painters.db`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	prov := newProvider(cfg.Provider)

	// Get terminal size early; the model re-reads it on resize
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open history storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(prov, store, width, height, cfg.Provider.Timeout())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
