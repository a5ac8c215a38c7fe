package memory

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Level        string
	Symbols      []string // Board order
	Flipped      []int
	MatchedPairs int
	Moves        int
	Score        int
	Stars        int
	Phase        Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	symbols := make([]string, len(g.cards))
	for i, c := range g.cards {
		symbols[i] = c.Symbol
	}

	return Snapshot{
		Level:        g.level.Name,
		Symbols:      symbols,
		Flipped:      g.Flipped(),
		MatchedPairs: g.matchedPairs,
		Moves:        g.moves,
		Score:        g.score,
		Stars:        g.stars,
		Phase:        g.phase,
	}
}
