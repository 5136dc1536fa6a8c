package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-trex/internal/config"
	"github.com/vovakirdan/tui-trex/internal/core"
)

func newTestModel(t *testing.T, duckHold int) Model {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 1
	rt.DuckHold = duckHold
	return NewModel(config.Default(), rt, nil)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := send(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd, "the tick loop keeps running")
	return m
}

// playUntilGameOver stands still until an obstacle ends the run.
func playUntilGameOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 100000 && !m.Snapshot().GameOver; i++ {
		m = tick(t, m)
	}
	require.True(t, m.Snapshot().GameOver)
	return m
}

func TestModelTicksAdvanceGame(t *testing.T) {
	m := newTestModel(t, core.DefaultDuckHold)
	require.NotNil(t, m.Init())

	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}

	assert.Equal(t, 20, m.Snapshot().Score)
	assert.InDelta(t, 0.2, m.Snapshot().Elapsed, 1e-9)
}

func TestModelPauseStopsTicks(t *testing.T) {
	m := newTestModel(t, core.DefaultDuckHold)
	m = tick(t, m)

	m, _ = send(t, m, runeKey('p'))
	require.True(t, m.Paused())
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	assert.Equal(t, 2, m.Snapshot().Score)

	m, _ = send(t, m, runeKey('p'))
	assert.False(t, m.Paused())
	m = tick(t, m)
	assert.Equal(t, 4, m.Snapshot().Score)
}

func TestModelIgnoresCommandsWhilePaused(t *testing.T) {
	m := newTestModel(t, core.DefaultDuckHold)
	m, _ = send(t, m, runeKey('p'))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.False(t, m.Snapshot().Character.Jumping)
}

func TestModelJump(t *testing.T) {
	m := newTestModel(t, core.DefaultDuckHold)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.True(t, m.Snapshot().Character.Jumping)

	m = tick(t, m)
	assert.InDelta(t, 4.0, m.Snapshot().Character.Y, 1e-9)
}

func TestModelDuckReleasesAfterHold(t *testing.T) {
	m := newTestModel(t, 3)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.True(t, m.Snapshot().Character.Ducking)

	m = tick(t, m)
	m = tick(t, m)
	assert.True(t, m.Snapshot().Character.Ducking)

	// A repeated press extends the hold
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = tick(t, m)
	m = tick(t, m)
	assert.True(t, m.Snapshot().Character.Ducking)

	m = tick(t, m)
	assert.False(t, m.Snapshot().Character.Ducking)
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m := newTestModel(t, core.DefaultDuckHold)
	m = tick(t, m)

	m, _ = send(t, m, runeKey('r'))
	assert.Equal(t, 2, m.Snapshot().Score, "restart is ignored while running")

	m = playUntilGameOver(t, m)
	final := m.Snapshot().Score
	require.Positive(t, final)

	// Ticks and pause do nothing once the run is over
	m = tick(t, m)
	m, _ = send(t, m, runeKey('p'))
	assert.False(t, m.Paused())
	assert.Equal(t, final, m.Snapshot().Score)
	assert.Contains(t, m.View(), "Game Over!")

	m, _ = send(t, m, runeKey('r'))
	assert.False(t, m.Snapshot().GameOver)
	assert.Equal(t, 0, m.Snapshot().Score)
	assert.Empty(t, m.Snapshot().Obstacles)
	assert.Equal(t, 0, m.scene.Len())
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, core.DefaultDuckHold)
	m = tick(t, m)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
	assert.Equal(t, 2, m.Snapshot().Score)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, core.DefaultDuckHold)

	m, cmd := send(t, m, runeKey('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, core.DefaultDuckHold)

	view := m.View()

	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "jump")
	assert.Len(t, strings.Split(view, "\n"), core.DefaultConfig().ScreenH)
}

func TestSaveScreenshot(t *testing.T) {
	m := newTestModel(t, core.DefaultDuckHold)
	m = tick(t, m)
	dir := t.TempDir()

	path, err := m.saveScreenshot(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Score: 2")
	assert.True(t, strings.HasPrefix(path, dir))
}
