package session

import (
	"github.com/vovakirdan/memory-match/internal/memory"
)

// Screen names one of the mutually exclusive screens.
type Screen int

const (
	ScreenLevel Screen = iota
	ScreenGame
	ScreenWin
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenLevel:
		return "level"
	case ScreenGame:
		return "game"
	case ScreenWin:
		return "win"
	default:
		return "unknown"
	}
}

// Polarity colors a feedback message.
type Polarity int

const (
	Positive Polarity = iota
	Negative
)

// Feedback texts.
const (
	FeedbackMatch   = "Great! 🌟"
	FeedbackNoMatch = "Try Again! 💪"
)

// Status is the numeric display of a running game.
type Status struct {
	Score        int
	Moves        int
	Stars        int
	MatchedPairs int
	Pairs        int
}

// Menu is what the level screen shows besides the level list.
type Menu struct {
	BestScore  int
	TotalGames int
	LastLevel  string // Empty if no level was ever played
}

// Summary describes a completed game.
type Summary struct {
	RunID   string // Empty if the history could not be written
	Level   string
	Score   int
	Moves   int
	Stars   int
	NewBest bool
}

// View is the presentation boundary. Every method is called from the
// controller's goroutine and must not block.
type View interface {
	// ShowScreen makes s the only visible screen.
	ShowScreen(s Screen)
	UpdateMenu(m Menu)
	RenderCards(cards []memory.Card)
	UpdateStatus(st Status)
	ShowFeedback(text string, p Polarity)
	ClearFeedback()
	ShowCompletion(sum Summary)
}
