package tui

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	confettiPieces = 50
	confettiRows   = 8
)

var confettiColors = []lipgloss.Color{
	"#f093fb", "#f5576c", "#4facfe", "#00f2fe", "#43e97b", "#38f9d7",
}

var confettiGlyphs = []rune{'*', '•', '✦', '▪', '~'}

type confettiPiece struct {
	x     int
	y     float64
	speed float64 // Rows per tick
	color lipgloss.Color
	glyph rune
}

// confetti is a one-shot shower of falling pieces over the win screen.
type confetti struct {
	pieces []confettiPiece
	width  int
}

func newConfetti(width int, rng *rand.Rand) *confetti {
	if width <= 0 {
		width = 40
	}
	c := &confetti{width: width, pieces: make([]confettiPiece, confettiPieces)}
	for i := range c.pieces {
		c.pieces[i] = confettiPiece{
			x: rng.Intn(width),
			// Staggered start above the visible area.
			y:     -rng.Float64() * confettiRows,
			speed: 0.15 + rng.Float64()*0.35,
			color: confettiColors[rng.Intn(len(confettiColors))],
			glyph: confettiGlyphs[rng.Intn(len(confettiGlyphs))],
		}
	}
	return c
}

// step advances every piece. Returns false once all have fallen out.
func (c *confetti) step() bool {
	alive := false
	for i := range c.pieces {
		c.pieces[i].y += c.pieces[i].speed
		if c.pieces[i].y < confettiRows {
			alive = true
		}
	}
	return alive
}

func (c *confetti) view() string {
	grid := make([][]string, confettiRows)
	for y := range grid {
		grid[y] = make([]string, c.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	for _, p := range c.pieces {
		y := int(p.y)
		if p.y < 0 || y >= confettiRows || p.x >= c.width {
			continue
		}
		grid[y][p.x] = lipgloss.NewStyle().Foreground(p.color).Render(string(p.glyph))
	}

	lines := make([]string, confettiRows)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
