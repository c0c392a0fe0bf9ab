package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; nil disables persistence
	Logger  *log.Logger    // Optional; nil discards logs
}

// Model is the Bubble Tea model that drives a game session.
// All Session calls happen on the Bubble Tea update loop.
type Model struct {
	session    *skyhop.Session
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	runtime    core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	input      inputTracker
	clock      frameClock
	now        func() time.Time
	scoreboard *ScoreboardModel
	paused     bool
	quitting   bool
}

// NewModel builds a session from the options and wraps it in a model.
// It fails only when the configuration is invalid.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := withRuntimeDefaults(opts.Runtime)

	best := LoadBest(opts.Store, logger)

	session, err := skyhop.NewSession(opts.Config, rand.New(rand.NewSource(rt.Seed)), best)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = rt.ScreenW

	logger.Debug("session created", "seed", rt.Seed, "best", best, "fps", rt.TickRate)

	return Model{
		session: session,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		store:   opts.Store,
		logger:  logger,
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    h,
		input:   newInputTracker(time.Duration(opts.Config.Input.HoldMs) * time.Millisecond),
		now:     time.Now,
	}, nil
}

// withRuntimeDefaults fills unset runtime fields from core.DefaultConfig.
// A zero seed becomes a time-based one.
func withRuntimeDefaults(rt core.RuntimeConfig) core.RuntimeConfig {
	def := core.DefaultConfig()
	if rt.ScreenW <= 0 {
		rt.ScreenW = def.ScreenW
	}
	if rt.ScreenH <= 0 {
		rt.ScreenH = def.ScreenH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = def.TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// LoadBest reads the persisted best score. Missing or unreadable values
// become 0 so storage problems never reach the simulation.
func LoadBest(store *storage.Store, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	best, err := store.BestScore(skyhop.GameID)
	if err != nil {
		logger.Warn("could not read best score, using 0", "error", err)
		return 0
	}
	return best
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	state := m.session.State()
	running := state == skyhop.StateRunning && !m.paused
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if state != skyhop.StateRunning {
			m.begin()
		}

	case core.ActionJump:
		switch {
		case state == skyhop.StateIdle:
			m.begin()
		case running:
			m.input.Press(action, m.now())
		}

	case core.ActionLeft, core.ActionRight:
		if running {
			m.input.Press(action, m.now())
		}

	case core.ActionRestart:
		if state == skyhop.StateGameOver {
			m.begin()
		}

	case core.ActionPause:
		if state == skyhop.StateRunning {
			m.paused = !m.paused
			m.clock.Reset()
			m.input.Reset()
		}

	case core.ActionScores:
		if state != skyhop.StateRunning {
			sb := NewScoreboardModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
			m.scoreboard = &sb
		}
	}

	return m, nil
}

// begin starts or restarts a run with a fresh frame clock.
func (m *Model) begin() {
	if m.session.State() == skyhop.StateGameOver {
		m.session.Restart()
	} else {
		m.session.Start()
	}
	m.paused = false
	m.clock.Reset()
	m.input.Reset()
	m.logger.Debug("run started", "best", m.session.Best())
}

// handleResize processes window resize events.
// World coordinates do not depend on the screen, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		sb, _ := m.scoreboard.Update(msg)
		m.scoreboard = &sb
	}
	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.paused || m.session.State() != skyhop.StateRunning {
		m.clock.Reset()
		return m, tickCmd(m.runtime.TickRate)
	}

	dt := m.clock.Delta(at)
	result := m.session.Step(dt, m.input.Frame(at))

	if result.Collided {
		m.finishRun(result)
	}

	return m, tickCmd(m.runtime.TickRate)
}

// finishRun persists the outcome of a run. Storage is best-effort.
func (m *Model) finishRun(result skyhop.StepResult) {
	score, best := m.session.Score(), m.session.Best()
	m.logger.Info("run over", "score", score, "best", best, "new_best", result.NewBest)

	if m.store == nil {
		return
	}
	if result.NewBest {
		if err := m.store.SaveBestScore(skyhop.GameID, best); err != nil {
			m.logger.Error("could not save best score", "error", err)
		}
	}
	if score > 0 {
		if _, err := m.store.SaveScore(skyhop.GameID, score); err != nil {
			m.logger.Warn("could not record run", "error", err)
		}
	}
}

// updateScoreboard forwards keys to the scoreboard overlay.
func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.GoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".skyhop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", skyhop.GameID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.session.Render(m.screen)
	if m.paused {
		m.screen.DrawMessageBox("PAUSED", "P to resume  |  Q to quit")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session exposes the underlying session for read-only inspection.
func (m Model) Session() *skyhop.Session {
	return m.session
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
