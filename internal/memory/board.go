package memory

import (
	"math/rand"

	"github.com/vovakirdan/memory-match/internal/catalog"
)

// Card is one card on the board.
type Card struct {
	ID      int    // Board position, stable for the whole game
	Symbol  string // Shared with exactly one other card
	Flipped bool   // Face up
	Matched bool   // Pair found; stays flipped for the rest of the game
}

// FaceDown reports whether the card can still be flipped.
func (c Card) FaceDown() bool {
	return !c.Flipped && !c.Matched
}

// NewDeck builds a shuffled board of 2*pairs cards from the front of cat.
// A catalog shorter than pairs yields a smaller board; presets are validated
// against the catalog before a game starts.
func NewDeck(cat catalog.Catalog, pairs int, rng *rand.Rand) []Card {
	symbols := cat.First(pairs)

	values := make([]string, 0, len(symbols)*2)
	values = append(values, symbols...)
	values = append(values, symbols...)

	Shuffle(values, rng)

	cards := make([]Card, len(values))
	for i, v := range values {
		cards[i] = Card{ID: i, Symbol: v}
	}
	return cards
}

// Shuffle permutes items in place with the Fisher-Yates algorithm: for i from
// the last index down to 1, swap items[i] with a uniformly chosen items[j],
// j in [0, i].
func Shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
