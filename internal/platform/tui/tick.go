// Package tui is the terminal shell around the T-Rex simulation: it drives the
// fixed-step tick loop with Bubble Tea, maps keys to game commands and draws
// snapshots into a character grid. The same model is served over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
