package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W  - Flap (and start from the menu)
  Enter/R     - Restart after game over
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot to ~/.flappy/screenshots
  ?           - Show all keys
  Q/Ctrl+C    - Quit

The session is recorded and saved to the runs database on exit,
unless --no-record is given.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save the session")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, yaml, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if !flagNoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
			logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	width, height := terminalSize()
	sess, runErr := tui.Run(tui.Options{
		Config:     cfg,
		ConfigYAML: yaml,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if n := len(sess.Attempts()); n > 0 {
		fmt.Printf("Best: %d over %d attempt(s)\n", sess.Best(), n)
	}
}

// terminalSize returns the terminal size, or 80x24 when it is unknown.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
