package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSeconds float64
	flagDT      float64
	flagRecord  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run the simulation without a terminal screen, at a fixed step,
with the built-in autopilot pressing the keys. Prints a summary of every
attempt. Useful for checking configuration changes.

Examples:
  flappy simulate
  flappy simulate --seconds 120 --dt 0.008 --seed 7
  flappy simulate --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSeconds, "seconds", 60, "Simulated time to run")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60, "Fixed step in seconds (0 = 1/fps)")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run to the runs database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, yaml, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dt := flagDT
	if dt == 0 && flagFPS > 0 {
		dt = 1 / float64(flagFPS)
	}
	if !(dt > 0) || !(flagSeconds > 0) {
		fmt.Fprintln(os.Stderr, "Error: --dt and --seconds must be positive")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess := sim.NewSession(cfg, seed)
	ap := sim.NewAutopilot(cfg)
	ticks := int(math.Ceil(flagSeconds / dt))

	logger.Info("simulating", "seed", seed, "ticks", ticks, "dt", dt)
	for i := 0; i < ticks; i++ {
		res := sess.Tick(dt, ap.Decide(sess.Sim().Snapshot()))
		if tr := res.Transition; tr != nil {
			logger.Debug("phase change", "tick", i, "from", tr.From, "to", tr.To, "trigger", tr.Trigger)
		}
	}

	fmt.Printf("Seed: %d\n", seed)
	fmt.Printf("Simulated: %.2fs in %d ticks\n", float64(ticks)*dt, ticks)
	fmt.Println()
	fmt.Printf("  %-7s  %-6s  %-8s  %s\n", "Attempt", "Score", "Ticks", "Ended by")
	fmt.Printf("  %-7s  %-6s  %-8s  %s\n", "-------", "-----", "-----", "--------")
	for i, a := range sess.Attempts() {
		cause := "-"
		if a.Finished {
			cause = a.Cause.String()
		}
		fmt.Printf("  %-7d  %-6d  %-8d  %s\n", i+1, a.Score, a.Ticks, cause)
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", sess.Best())

	if !flagRecord {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Summarize(sess, yaml), sess.Journal())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	fmt.Printf("Recorded as run %d\n", id)
}
