package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
	"github.com/vovakirdan/cat-arcade/internal/storage"
)

// Options carries the collaborators a game model needs besides the game itself.
type Options struct {
	Store       *storage.Store // Optional; nil disables score persistence
	Logger      *log.Logger    // Optional; nil discards log output
	HoldTimeout time.Duration  // Synthetic key-up delay, see HoldTracker
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// GameModel is the Bubble Tea model for running one arcade game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	holds      *HoldTracker
	logger     *log.Logger
	recorder   *recorder
	inputFrame core.InputFrame
	gameState  core.GameState
	tooSmall   bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game, wires its game-over
// report to the score store and resets it onto its idle screen.
// Scores and play time are written in the background.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.logger()
	rec := newRecorder(game.ID(), opts.Store, logger)
	game.OnGameOver(rec.finish)
	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(opts.HoldTimeout),
		logger:     logger,
		recorder:   rec,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		tooSmall:   !cfg.SurfaceAvailable(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.logger.Debug("game ready", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.leave()
		return m, tea.Quit

	case action == core.ActionBack:
		// Back is handled right away; the game exits without ticking
		m.holds.ReleaseAll(&m.inputFrame)
		m.inputFrame.Press(core.ActionBack)
		m.gameState = m.game.Step(m.inputFrame).State
		m.inputFrame.Clear()
		m.backToMenu = true
		m.logger.Info("left game", "game", m.game.ID(), "score", m.gameState.Score)
		m.leave()
		return m, tea.Quit

	case action != core.ActionNone:
		m.holds.Press(action, time.Now(), &m.inputFrame)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is resolution independent, so the session keeps running.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.tooSmall = !m.config.SurfaceAvailable()
	return m, nil
}

// handleTick runs one simulation step, or skips it when there is nowhere to draw.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.holds.Expire(now, &m.inputFrame)

	if m.tooSmall {
		m.logger.Debug("skipping tick, terminal too small",
			"width", m.config.ScreenW, "height", m.config.ScreenH)
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState.Phase
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if prev != m.gameState.Phase && m.gameState.Phase == core.PhasePlaying {
		m.recorder.begin()
		if prev == core.PhaseGameOver && m.inputFrame.Has(core.ActionRestart) {
			m.logger.Info("session retried", "game", m.game.ID())
		} else {
			m.logger.Info("session started", "game", m.game.ID())
		}
	}
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// leave closes a running session and waits for pending writes, so the
// menu shown next reads up to date scores.
func (m GameModel) leave() {
	m.recorder.abandon()
	m.recorder.wait()
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.tooSmall {
		return tooSmallNotice(m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last step.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the player quits or goes back.
// It reports whether the player asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	model.recorder.wait()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
