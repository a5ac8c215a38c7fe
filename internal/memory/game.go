// Package memory implements the card-matching rules: building the board and
// the turn state machine. It has no UI, timer, audio or storage dependencies;
// callers decide when a resolution is due and call Resolve.
package memory

import (
	"math/rand"

	"github.com/vovakirdan/memory-match/internal/catalog"
	"github.com/vovakirdan/memory-match/internal/config"
)

// PointsPerMatch is added to the score for every pair found.
const PointsPerMatch = 10

// Phase is the turn state.
type Phase int

const (
	// PhaseIdle accepts flips; zero or one card is face up.
	PhaseIdle Phase = iota
	// PhaseResolving has two cards face up and blocks input until Resolve.
	PhaseResolving
	// PhaseCompleted is terminal.
	PhaseCompleted
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseResolving:
		return "resolving"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// FlipResult describes what a Flip call did.
type FlipResult int

const (
	// FlipIgnored means the click was a no-op.
	FlipIgnored FlipResult = iota
	// FlipFirst turned the first card of a turn.
	FlipFirst
	// FlipSecond turned the second card; a resolution is now due.
	FlipSecond
)

// Outcome is the result of resolving a turn.
type Outcome struct {
	First, Second int  // Card IDs that were face up
	Match         bool // Symbols were equal
	Complete      bool // Every pair is now matched
}

// Game holds the state of one game. A new Game is created for every start
// or restart; it is only ever touched from the UI event loop.
type Game struct {
	level   config.Level
	cards   []Card
	flipped []int

	matchedPairs int
	moves        int
	score        int
	stars        int
	phase        Phase
}

// New creates a game for the level with a board drawn from cat.
func New(level config.Level, cat catalog.Catalog, rng *rand.Rand) *Game {
	return &Game{
		level:   level,
		cards:   NewDeck(cat, level.Pairs, rng),
		flipped: make([]int, 0, 2),
		stars:   MaxStars,
		phase:   PhaseIdle,
	}
}

// Flip turns a face-down card. Clicks while resolving or after completion,
// on face-up or matched cards, or on IDs off the board are ignored.
func (g *Game) Flip(id int) FlipResult {
	if g.phase != PhaseIdle {
		return FlipIgnored
	}
	if id < 0 || id >= len(g.cards) {
		return FlipIgnored
	}
	if !g.cards[id].FaceDown() {
		return FlipIgnored
	}
	if len(g.flipped) >= 2 {
		return FlipIgnored
	}

	g.cards[id].Flipped = true
	g.flipped = append(g.flipped, id)

	if len(g.flipped) < 2 {
		return FlipFirst
	}

	g.moves++
	g.phase = PhaseResolving
	return FlipSecond
}

// Resolve judges the two face-up cards and returns to Idle.
// The second return value is false if no resolution was pending.
func (g *Game) Resolve() (Outcome, bool) {
	if g.phase != PhaseResolving || len(g.flipped) != 2 {
		return Outcome{}, false
	}

	a, b := g.flipped[0], g.flipped[1]
	out := Outcome{First: a, Second: b}

	if g.cards[a].Symbol == g.cards[b].Symbol {
		g.cards[a].Matched = true
		g.cards[b].Matched = true
		g.matchedPairs++
		g.score += PointsPerMatch
		out.Match = true
		out.Complete = g.matchedPairs == g.level.Pairs
	} else {
		g.cards[a].Flipped = false
		g.cards[b].Flipped = false
		// Only re-rated on a miss, so a flawless game keeps every star.
		if s := StarsFor(g.moves, g.level.Par()); s < g.stars {
			g.stars = s
		}
	}

	g.flipped = g.flipped[:0]
	g.phase = PhaseIdle
	return out, true
}

// Finish moves a fully matched game to PhaseCompleted.
// Returns false if pairs remain or the game already finished.
func (g *Game) Finish() bool {
	if g.phase != PhaseIdle || g.matchedPairs != g.level.Pairs {
		return false
	}
	g.phase = PhaseCompleted
	return true
}

// Level returns the difficulty preset.
func (g *Game) Level() config.Level { return g.level }

// Cards returns a copy of the board.
func (g *Game) Cards() []Card {
	out := make([]Card, len(g.cards))
	copy(out, g.cards)
	return out
}

// Card returns the card at id.
func (g *Game) Card(id int) (Card, bool) {
	if id < 0 || id >= len(g.cards) {
		return Card{}, false
	}
	return g.cards[id], true
}

// Flipped returns the IDs of face-up unmatched cards in flip order.
func (g *Game) Flipped() []int {
	out := make([]int, len(g.flipped))
	copy(out, g.flipped)
	return out
}

func (g *Game) MatchedPairs() int { return g.matchedPairs }
func (g *Game) Moves() int        { return g.moves }
func (g *Game) Score() int        { return g.score }
func (g *Game) Stars() int        { return g.stars }
func (g *Game) Phase() Phase      { return g.phase }

// AllMatched reports whether every pair has been found.
func (g *Game) AllMatched() bool {
	return g.matchedPairs == g.level.Pairs
}
