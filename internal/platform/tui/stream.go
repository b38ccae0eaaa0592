// Package tui provides the Bubble Tea front end for the snake engine.
// It maps keys to engine commands and renders the snapshots the engine
// publishes; it never mutates game state itself.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snack/internal/core"
	"github.com/vovakirdan/snack/internal/games/snake"
)

// StateMsg carries a snapshot received from the engine's stream.
type StateMsg struct {
	State snake.State
	sub   *core.Subscriber[snake.State]
}

// StreamClosedMsg is sent when the engine's stream closes.
type StreamClosedMsg struct {
	sub *core.Subscriber[snake.State]
}

// waitForState returns a command that blocks until the next snapshot.
// Messages carry their subscriber so the model can drop ones from an
// engine it has already replaced.
func waitForState(sub *core.Subscriber[snake.State]) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-sub.C()
		if !ok {
			return StreamClosedMsg{sub: sub}
		}
		return StateMsg{State: s, sub: sub}
	}
}
