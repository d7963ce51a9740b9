package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Feed the recorded input of a run back into a fresh simulation built
with the run's own configuration, and check that it reaches the same
outcome. With --watch, play it back on screen instead.

Examples:
  flappy replay 3
  flappy replay 3 --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Play the run back on screen")
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagWatch {
		if err := watchRun(store, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	run, journal, cfg, err := loadRun(store, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	replayed := sim.Replay(cfg, journal)
	got := storage.Summarize(replayed, []byte(run.Config))

	fmt.Printf("Run %d: seed %d, %d ticks, %vx%v play area\n", run.ID, run.Seed, run.Ticks, run.PlayWidth, run.PlayHeight)
	fmt.Println()
	fmt.Printf("  %-12s  %-10s  %s\n", "", "Recorded", "Replayed")
	fmt.Printf("  %-12s  %-10d  %d\n", "Attempts", run.Attempts, got.Attempts)
	fmt.Printf("  %-12s  %-10d  %d\n", "Best", run.Best, got.Best)
	fmt.Printf("  %-12s  %-10d  %d\n", "Last score", run.LastScore, got.LastScore)
	fmt.Printf("  %-12s  %-10s  %s\n", "Final phase", run.FinalPhase, got.FinalPhase)
	fmt.Println()

	if got.Attempts != run.Attempts || got.Best != run.Best ||
		got.LastScore != run.LastScore || got.FinalPhase != run.FinalPhase {
		logger.Error("replay diverged", "run", run.ID)
		fmt.Println("MISMATCH: the replay did not reproduce the run")
		os.Exit(1)
	}
	fmt.Println("OK: the replay reproduces the run")
}

// loadRun fetches a run, its journal and the configuration it was played with.
func loadRun(store *storage.Store, id int64) (*storage.Run, sim.Journal, config.FlappyConfig, error) {
	run, err := store.Run(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		return nil, sim.Journal{}, config.FlappyConfig{}, fmt.Errorf("no run with id %d", id)
	}
	if err != nil {
		return nil, sim.Journal{}, config.FlappyConfig{}, err
	}

	journal, err := store.Journal(id)
	if err != nil {
		return nil, sim.Journal{}, config.FlappyConfig{}, err
	}

	var cfg config.FlappyConfig
	if run.Config != "" {
		cfg, err = config.Parse([]byte(run.Config))
	} else {
		logger.Warn("run has no stored config, using the current one", "run", id)
		cfg, _, err = loadConfig()
	}
	if err != nil {
		return nil, sim.Journal{}, config.FlappyConfig{}, fmt.Errorf("run %d: %w", id, err)
	}
	return run, journal, cfg, nil
}

// watchRun plays a recorded run back on screen.
func watchRun(store *storage.Store, id int64) error {
	_, journal, cfg, err := loadRun(store, id)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	_, err = tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Logger:   logger,
		Playback: &journal,
	})
	return err
}
