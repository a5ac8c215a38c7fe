package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// handleLevelKey processes input on the level screen.
func (m Model) handleLevelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	levels := m.cfg.Presets.Levels

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.levelCursor > 0 {
			m.levelCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.levelCursor < len(levels)-1 {
			m.levelCursor++
		}

	case key.Matches(msg, m.keys.Flip):
		if len(levels) > 0 {
			return m.start(levels[m.levelCursor].Name)
		}

	case key.Matches(msg, m.keys.Scores):
		sb := NewScoreboardModel(m.cfg.Store, m.cfg.Presets, m.width, m.height)
		m.scores = &sb
		return m, sb.Init()
	}

	return m, nil
}

// updateScores forwards messages to the open scoreboard.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = &sb
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.scores = nil
		m.ctrl.ShowMenu()
		return m, nil
	}
	return m, cmd
}

// levelView renders the level screen.
func (m Model) levelView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M E M O R Y   M A T C H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a level", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.cfg.Presets.Levels {
		cursor := "  "
		line := fmt.Sprintf("%-8s %2d pairs", lvl.Title, lvl.Pairs)
		if i == m.levelCursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	menu := m.board.menu
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Best score: %d   Games played: %d", menu.BestScore, menu.TotalGames), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(levelHelp{m.keys})), m.width))
	b.WriteString("\n")

	return b.String()
}

// winView renders the completion screen with its confetti.
func (m Model) winView() string {
	sum := m.board.summary
	lvl, _ := m.ctrl.Level()

	var b strings.Builder
	if m.confetti != nil {
		b.WriteString(m.confetti.view())
	} else {
		b.WriteString(strings.Repeat("\n", confettiRows-1))
	}
	b.WriteString("\n\n")

	b.WriteString(centerText(titleStyle.Render("🎉 You did it! 🎉"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Level: %s", lvl.Title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Score: %d", sum.Score), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Moves: %d", sum.Moves), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(renderStars(sum.Stars), m.width))
	b.WriteString("\n")
	if sum.NewBest {
		b.WriteString("\n")
		b.WriteString(centerText(bannerStyle.Render("New best score!"), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(winHelp{m.keys})), m.width))
	b.WriteString("\n")

	return b.String()
}
