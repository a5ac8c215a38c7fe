package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/memory-match/internal/memory"
	"github.com/vovakirdan/memory-match/internal/session"
)

// Card geometry. A rendered card is cardW columns by cardH rows including
// its border; cards in a row are separated by cardGap columns.
const (
	cardInner = 4
	cardW     = cardInner + 2
	cardH     = 3
	cardGap   = 1

	// gridTop is the number of header lines above the grid on the game screen.
	gridTop = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	positiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	negativeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("209"))

	starOn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Render("★")
	starOff = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("☆")

	cardBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(cardInner).
			Align(lipgloss.Center)

	cardDown    = cardBase.BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("245"))
	cardUp      = cardBase.BorderForeground(lipgloss.Color("212"))
	cardMatched = cardBase.BorderForeground(lipgloss.Color("42")).Faint(true)
	cardFlash   = cardBase.BorderForeground(lipgloss.Color("229")).Bold(true)
)

// cardFace is what a face-down card shows.
const cardFace = "?"

// renderCard draws one card. The cursor swaps in a thick border, which has
// the same footprint as the rounded one.
func renderCard(c memory.Card, cursor, flash bool) string {
	style := cardDown
	content := cardFace
	switch {
	case c.Matched:
		style = cardMatched
		content = c.Symbol
	case c.Flipped && flash:
		style = cardFlash
		content = c.Symbol
	case c.Flipped:
		style = cardUp
		content = c.Symbol
	}
	if cursor {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}
	return style.Render(content)
}

// gridLayout locates the card grid on screen.
type gridLayout struct {
	left    int
	top     int
	columns int
	count   int
}

func newGridLayout(width, columns, count int) gridLayout {
	if columns <= 0 {
		columns = 1
	}
	if columns > count && count > 0 {
		columns = count
	}
	gridW := columns*cardW + (columns-1)*cardGap
	left := 0
	if width > gridW {
		left = (width - gridW) / 2
	}
	return gridLayout{left: left, top: gridTop, columns: columns, count: count}
}

func (g gridLayout) rows() int {
	return (g.count + g.columns - 1) / g.columns
}

// cardAt maps a screen cell to a card ID, or -1 for gaps and empty space.
func (g gridLayout) cardAt(x, y int) int {
	if x < g.left || y < g.top {
		return -1
	}
	stride := cardW + cardGap
	dx := x - g.left
	if dx%stride >= cardW {
		return -1
	}
	col := dx / stride
	row := (y - g.top) / cardH
	if col >= g.columns {
		return -1
	}
	id := row*g.columns + col
	if id >= g.count {
		return -1
	}
	return id
}

// renderGrid draws the cards row by row, indented to the layout's left edge.
func renderGrid(g gridLayout, cards []memory.Card, cursor int, flash map[int]bool) string {
	pad := strings.Repeat(" ", g.left)
	gap := strings.Repeat(" ", cardGap)

	var b strings.Builder
	for r := range g.rows() {
		row := make([]string, 0, 2*g.columns)
		for c := range g.columns {
			id := r*g.columns + c
			if id >= len(cards) {
				break
			}
			if c > 0 {
				row = append(row, gap)
			}
			row = append(row, renderCard(cards[id], id == cursor, flash[id]))
		}
		for _, line := range strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, row...), "\n") {
			b.WriteString(pad)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderStars(n int) string {
	var b strings.Builder
	for i := range memory.MaxStars {
		if i < n {
			b.WriteString(starOn)
		} else {
			b.WriteString(starOff)
		}
	}
	return b.String()
}

func renderStatus(st session.Status) string {
	return fmt.Sprintf("Score %d   Moves %d   Pairs %d/%d   %s",
		st.Score, st.Moves, st.MatchedPairs, st.Pairs, renderStars(st.Stars))
}

func renderFeedback(text string, p session.Polarity) string {
	if text == "" {
		return ""
	}
	if p == session.Negative {
		return negativeStyle.Render(text)
	}
	return positiveStyle.Render(text)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
