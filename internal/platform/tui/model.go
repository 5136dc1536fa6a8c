package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-trex/internal/config"
	"github.com/vovakirdan/tui-trex/internal/core"
	"github.com/vovakirdan/tui-trex/internal/trex"
)

// Model is the Bubble Tea model running one T-Rex game.
type Model struct {
	game     *trex.Game
	cfg      config.Config
	runtime  core.RuntimeConfig
	scene    *Scene
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	state    trex.Snapshot
	paused   bool
	duckLeft int // ticks until an unrepeated duck is released
	quitting bool
}

// NewModel creates a model with a fresh game.
// A zero seed in rt is replaced with the current time.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := trex.New(cfg, trex.WithSeed(rt.Seed))
	logger.Info("run started", "seed", rt.Seed)

	return Model{
		game:    game,
		cfg:     cfg,
		runtime: rt,
		scene:   NewScene(),
		screen:  core.NewScreen(rt.ScreenW, playfieldHeight(rt.ScreenH)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		state:   game.Snapshot(),
	}
}

// playfieldHeight leaves the last terminal row for the help line.
func playfieldHeight(rows int) int {
	return max(rows-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.World.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns a key press into a game command.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot(screenshotDir())
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case core.ActionPause:
		if !m.state.GameOver {
			m.paused = !m.paused
		}

	case core.ActionJump:
		if !m.paused {
			m.game.StartJump()
			m.duckLeft = 0
		}

	case core.ActionDuck:
		if !m.paused {
			m.game.StartDuck()
			if m.game.Character().Ducking {
				m.duckLeft = m.runtime.DuckHold
			}
		}

	case core.ActionRestart:
		// Only offered once the run is over
		if m.state.GameOver {
			m.game.Reset()
			m.scene.Reset()
			m.duckLeft = 0
			m.logger.Info("run restarted")
		}
	}

	m.state = m.game.Snapshot()
	return m, nil
}

// handleResize tracks the terminal size. The world keeps its own
// coordinates, so the run continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.cfg.World.TickInterval)
	if m.paused || m.state.GameOver {
		return m, next
	}

	// Terminals report no key release, so a duck lasts until the key stops repeating
	if m.duckLeft > 0 {
		m.duckLeft--
		if m.duckLeft == 0 {
			m.game.StopDuck()
		}
	}

	res, err := m.game.Tick(m.cfg.World.DT())
	if err != nil {
		m.logger.Error("tick failed", "error", err)
		m.quitting = true
		return m, tea.Quit
	}
	m.state = res.State
	m.scene.Step()

	if res.Collided {
		m.logger.Info("game over",
			"score", res.State.Score,
			"elapsed", fmt.Sprintf("%.2fs", res.State.Elapsed),
		)
	}

	return m, next
}

// screenshotDir returns ~/.trex/screenshots.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".trex", "screenshots")
}

// saveScreenshot writes the current frame as plain text into dir.
func (m *Model) saveScreenshot(dir string) (string, error) {
	m.scene.Draw(m.screen, m.state, m.cfg, m.paused)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("trex_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Draw(m.screen, m.state, m.cfg, m.paused)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the state as of the last tick or command.
func (m Model) Snapshot() trex.Snapshot {
	return m.state
}

// Paused reports whether the tick loop is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if fm, ok := final.(Model); ok {
		logger.Info("session ended", "score", fm.state.Score)
	}
	return nil
}
