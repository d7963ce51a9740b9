package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// flashTicks is how long the score stays highlighted after a pass.
const flashTicks = 20

// Options configures a game screen.
type Options struct {
	Config     config.FlappyConfig
	ConfigYAML []byte // Stored with the journal on exit
	Runtime    core.RuntimeConfig
	Store      *storage.Store // Optional; nil disables saving
	Logger     *log.Logger    // Optional; nil discards

	// Playback, when set, replays a recorded journal instead of reading
	// gameplay keys. Nothing is saved in playback mode.
	Playback *sim.Journal
}

// Model is the Bubble Tea model for the flappy game screen.
type Model struct {
	opts       Options
	session    *sim.Session
	screen     *core.Screen
	keys       *KeyMapper
	help       help.Model
	clock      frameClock
	logger     *log.Logger
	inputFrame core.InputFrame

	best        int
	flash       int
	caption     string
	paused      bool
	quitting    bool
	saved       bool
	playbackPos int
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Runtime.Seed
	if opts.Playback != nil {
		seed = opts.Playback.Seed
	}
	session := sim.NewSession(opts.Config, seed)
	if opts.Playback != nil {
		session.SetBounds(opts.Playback.Bounds.Width, opts.Playback.Bounds.Height)
	}

	best := 0
	if opts.Store != nil && opts.Playback == nil {
		if b, err := opts.Store.BestScore(); err == nil {
			best = b
		} else {
			logger.Warn("could not read best score", "error", err)
		}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		opts:       opts,
		session:    session,
		screen:     core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		keys:       NewKeyMapper(),
		help:       h,
		clock:      newFrameClock(opts.Config.Clock.MaxDT),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		best:       best,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.session.Journal().Seed, "playback", m.opts.Playback != nil)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1)) // Last line is the help footer
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys
	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var frame core.InputFrame
	if m.opts.Playback == nil {
		frame = m.inputFrame
	} else {
		// Recorded input drives playback; only frontend keys apply.
		frame = core.NewInputFrame()
	}
	if m.keys.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}
	if frame.Has(core.ActionPause) {
		delete(frame.Actions, core.ActionPause)
		m.paused = !m.paused
		m.clock.Reset()
		m.logger.Debug("pause toggled", "paused", m.paused)
	}
	if m.paused {
		frame.Clear()
	}
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	dt := m.clock.Advance(now)
	var res sim.TickResult
	if m.opts.Playback != nil {
		if m.playbackPos >= len(m.opts.Playback.Ticks) {
			return m, tickCmd(m.opts.Runtime.TickRate)
		}
		t := m.opts.Playback.Ticks[m.playbackPos]
		m.playbackPos++
		res = m.session.Tick(t.DT, core.FrameFromBits(t.Input))
	} else {
		res = m.session.Tick(dt, m.inputFrame)
		m.inputFrame.Clear()
	}

	m.observe(res)
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// observe turns tick events into log lines and visual cues.
func (m *Model) observe(res sim.TickResult) {
	if m.flash > 0 {
		m.flash--
	}
	for _, e := range res.Events {
		switch e.Kind {
		case sim.EventPass:
			m.flash = flashTicks
			m.logger.Debug("pass", "pair", e.Pair, "score", m.session.Sim().Score())
		case sim.EventCollision:
			m.logger.Debug("collision", "obstacle", e.Obstacle, "pair", e.Pair)
		case sim.EventOutOfBounds:
			m.logger.Debug("out of bounds", "y", m.session.Sim().World().Actor.Pos.Y)
		case sim.EventPhaseChange:
			m.logger.Debug("phase change", "from", e.From, "to", e.To)
		}
	}

	if tr := res.Transition; tr != nil {
		switch tr.To {
		case sim.PhaseGameOver:
			m.caption = captionFor(tr.Trigger)
			m.best = max(m.best, m.session.Best())
			m.logger.Info("attempt over", "score", m.session.Sim().Score(), "cause", tr.Trigger)
		case sim.PhasePlaying:
			m.caption = ""
			m.flash = 0
		}
	}
}

// captionFor names how an attempt ended.
func captionFor(t sim.Trigger) string {
	switch t {
	case sim.TriggerCollision:
		return "HIT"
	case sim.TriggerOutOfBounds:
		return "FELL"
	}
	return ""
}

// saveRun stores the journal once, if anything was played.
func (m *Model) saveRun() {
	if m.saved || m.opts.Store == nil || m.opts.Playback != nil {
		return
	}
	m.saved = true
	if len(m.session.Attempts()) == 0 {
		return
	}

	run := storage.Summarize(m.session, m.opts.ConfigYAML)
	id, err := m.opts.Store.SaveRun(run, m.session.Journal())
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "ticks", run.Ticks, "best", run.Best)
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// render draws the current state into the screen buffer.
func (m Model) render() {
	ov := overlay{
		Best:    m.best,
		Flash:   m.flash > 0,
		Caption: m.caption,
		Paused:  m.paused,
	}
	if p := m.opts.Playback; p != nil {
		ov.Playback = fmt.Sprintf("REPLAY %d/%d", m.playbackPos, len(p.Ticks))
	}
	drawWorld(m.screen, m.session.Sim().Snapshot(), ov)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// Session returns the recorded session.
func (m Model) Session() *sim.Session {
	return m.session
}

// Run starts the Bubble Tea program and returns the final session.
func Run(opts Options) (*sim.Session, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.Session(), err
	}
	return model.Session(), err
}
