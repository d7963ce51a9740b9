package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		Config:  config.DefaultFlappyConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9},
	}
}

// send feeds one message through Update and returns the new model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

func TestModelStartsOnSpace(t *testing.T) {
	m := NewModel(testOptions())
	m, _ = send(t, m, TickMsg(epoch))
	if m.Session().Sim().Phase() != sim.PhaseMainMenu {
		t.Fatal("should begin in the main menu")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, TickMsg(epoch.Add(16*time.Millisecond)))

	if got := m.Session().Sim().Phase(); got != sim.PhasePlaying {
		t.Errorf("phase = %v, expected playing", got)
	}
	if len(m.Session().Attempts()) != 1 {
		t.Errorf("attempts = %d, expected 1", len(m.Session().Attempts()))
	}
}

func TestModelPauseStopsTicks(t *testing.T) {
	m := NewModel(testOptions())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, TickMsg(epoch))

	m, _ = send(t, m, runeKey('p'))
	before := m.Session().Sim().World().Tick
	for i := 1; i <= 10; i++ {
		m, _ = send(t, m, TickMsg(epoch.Add(time.Duration(i)*time.Second)))
	}
	if after := m.Session().Sim().World().Tick; after != before {
		t.Errorf("ticks advanced while paused: %d -> %d", before, after)
	}

	// Flaps pressed while paused are dropped.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg(epoch.Add(11*time.Second)))
	if n := len(m.Session().Journal().Ticks); m.Session().Journal().Ticks[n-1].Input != 0 {
		t.Error("input pressed during pause should not reach the simulation")
	}
}

func TestModelSavesRunOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	opts := testOptions()
	opts.Store = store
	m := NewModel(opts)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 30; i++ {
		m, _ = send(t, m, TickMsg(epoch.Add(time.Duration(i)*16*time.Millisecond)))
	}

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Ticks != 30 || runs[0].Seed != 9 {
		t.Errorf("saved runs = %+v", runs)
	}
}

func TestModelPlayback(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rec := sim.NewSession(cfg, 4)
	ap := sim.NewAutopilot(cfg)
	for i := 0; i < 300; i++ {
		rec.Tick(1.0/60, ap.Decide(rec.Sim().Snapshot()))
	}
	journal := rec.Journal()

	opts := testOptions()
	opts.Playback = &journal
	m := NewModel(opts)

	// Gameplay keys are ignored during playback.
	m, _ = send(t, m, runeKey('r'))
	for i := 0; i < len(journal.Ticks)+5; i++ {
		m, _ = send(t, m, TickMsg(epoch.Add(time.Duration(i)*time.Second)))
	}

	got, want := m.Session().Sim().Snapshot(), rec.Sim().Snapshot()
	if got.Tick != want.Tick || got.Score != want.Score || got.Actor != want.Actor {
		t.Errorf("playback diverged:\n%+v\n%+v", got, want)
	}
}

func TestModelViewFitsScreen(t *testing.T) {
	m := NewModel(testOptions())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})

	if w, h := m.screen.Width(), m.screen.Height(); w != 50 || h != 19 {
		t.Errorf("screen = %dx%d, expected 50x19 plus the footer line", w, h)
	}
	if m.View() == "" {
		t.Error("View() should render")
	}
}
