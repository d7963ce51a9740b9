// flappy is a side-scrolling flap-through-the-gaps game for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as 'flappy play')
//	flappy play              - Play in the terminal
//	flappy simulate          - Run a headless game driven by the autopilot
//	flappy runs              - List recorded runs
//	flappy replay <id>       - Re-simulate a recorded run and check its outcome
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flappy/runs.db)
//	--config <path>      - Use a custom configuration file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	logger  *log.Logger
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the gaps in your terminal",
	Long: `Flappy is a terminal rendition of the flap-through-the-gaps game.
A single actor falls under gravity; each flap launches it upward. Pairs of
obstacles scroll in from the right and every pair passed scores a point.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Headless run driven by the autopilot
  runs      - List or browse recorded runs
  replay    - Re-simulate a recorded run
  config    - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy simulate --seconds 60 --dt 0.016
  flappy runs -i
  flappy replay 3 --watch`,
	PersistentPreRunE: setupLogger,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger builds the shared logger from the log flags.
// The interactive screen owns the terminal, so without --log-file the
// interactive commands log nowhere and the others log to stderr.
func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logSink = f
	case interactive(cmd):
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return nil
}

// interactive reports whether the command takes over the terminal.
func interactive(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "flappy", "play":
		return true
	case "runs":
		return flagBrowse
	case "replay":
		return flagWatch
	}
	return false
}

// loadConfig resolves the configuration and its YAML encoding.
func loadConfig() (config.FlappyConfig, []byte, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	logger.Debug("config loaded", "source", source)

	data, err := cfg.Marshal()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, data, nil
}
