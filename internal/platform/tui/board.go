package tui

import (
	"github.com/vovakirdan/memory-match/internal/memory"
	"github.com/vovakirdan/memory-match/internal/session"
)

// board is the display state pushed by the session controller. The model
// reads it when rendering; only the event loop touches it.
type board struct {
	screen   session.Screen
	menu     session.Menu
	cards    []memory.Card
	status   session.Status
	feedback string
	polarity session.Polarity

	summary   session.Summary
	celebrate bool // Set by ShowCompletion, consumed by the model
}

var _ session.View = (*board)(nil)

func newBoard() *board {
	return &board{screen: session.ScreenLevel}
}

func (b *board) ShowScreen(s session.Screen) { b.screen = s }
func (b *board) UpdateMenu(m session.Menu)   { b.menu = m }

func (b *board) RenderCards(cards []memory.Card) { b.cards = cards }

func (b *board) UpdateStatus(st session.Status) { b.status = st }

func (b *board) ShowFeedback(text string, p session.Polarity) {
	b.feedback = text
	b.polarity = p
}

func (b *board) ClearFeedback() { b.feedback = "" }

func (b *board) ShowCompletion(sum session.Summary) {
	b.summary = sum
	b.celebrate = true
}

// takeCelebrate reports whether a completion arrived since the last call.
func (b *board) takeCelebrate() bool {
	c := b.celebrate
	b.celebrate = false
	return c
}
