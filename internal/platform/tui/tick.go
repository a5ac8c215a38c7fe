// Package tui provides the Bubble Tea front end for the memory game: the
// level, game and win screens, the scoreboard, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/memory-match/internal/session"
)

// timerMsg delivers a session timer back to the model once it has elapsed.
type timerMsg struct {
	timer session.Timer
}

// flashDoneMsg ends the flip highlight on a card.
type flashDoneMsg struct {
	card       int
	generation uint64
}

// confettiTickMsg advances the win-screen confetti.
type confettiTickMsg time.Time

const confettiInterval = 60 * time.Millisecond

// schedule turns session timer requests into Bubble Tea commands.
func schedule(timers []session.Timer) tea.Cmd {
	if len(timers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		cmds = append(cmds, tea.Tick(t.After, func(time.Time) tea.Msg {
			return timerMsg{timer: t}
		}))
	}
	return tea.Batch(cmds...)
}

func flashCmd(card int, generation uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return flashDoneMsg{card: card, generation: generation}
	})
}

func confettiTickCmd() tea.Cmd {
	return tea.Tick(confettiInterval, func(t time.Time) tea.Msg {
		return confettiTickMsg(t)
	})
}
