// Package tui provides the Bubble Tea front end for Starfall: the game
// runner with its pause, options and game-over overlays, the main menu,
// the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/config"
)

// TickMsg is sent to trigger a game simulation tick. Each game model owns
// a generation so a tick left over from a finished game is dropped.
type TickMsg struct {
	Time time.Time
	gen  uint64
}

var tickGenerations atomic.Uint64

func nextTickGen() uint64 {
	return tickGenerations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}

// ConfigReloadMsg carries a config reloaded from disk. Err is set when the
// file could not be read or failed validation.
type ConfigReloadMsg struct {
	Config config.StarfallConfig
	Err    error
}
