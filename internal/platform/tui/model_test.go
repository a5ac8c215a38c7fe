package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/memory-match/internal/audio"
	"github.com/vovakirdan/memory-match/internal/catalog"
	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/session"
	"github.com/vovakirdan/memory-match/internal/stats"
	"github.com/vovakirdan/memory-match/internal/storage"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cat, err := catalog.Get(catalog.DefaultTheme)
	require.NoError(t, err)

	quiet := log.New(io.Discard)
	return Config{
		Presets: config.DefaultPresets(),
		Catalog: cat,
		Stats:   stats.New(storage.NewMemory(), quiet),
		Sounds:  audio.NewPlayer(audio.OpenSilent(), quiet),
		Logger:  quiet,
		Seed:    7,
		Width:   80,
		Height:  30,
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// pairIDs returns the IDs of two cards with the same symbol, or different
// symbols when match is false.
func pairIDs(t *testing.T, m Model, match bool) (int, int) {
	t.Helper()
	cards := m.board.cards
	for _, a := range cards {
		for _, b := range cards {
			if a.ID == b.ID || !a.FaceDown() || !b.FaceDown() {
				continue
			}
			if (a.Symbol == b.Symbol) == match {
				return a.ID, b.ID
			}
		}
	}
	t.Fatal("no suitable cards")
	return 0, 0
}

func TestStartsOnLevelScreen(t *testing.T) {
	m := NewModel(testConfig(t))
	assert.Equal(t, session.ScreenLevel, m.board.screen)
	assert.Equal(t, 0, m.levelCursor)
	assert.Contains(t, m.View(), "M E M O R Y")
	assert.Contains(t, m.View(), "Best score: 0")
}

func TestLevelCursorStartsOnLastLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Stats.SaveLastLevel(config.LevelHard)

	m := NewModel(cfg)
	assert.Equal(t, 2, m.levelCursor)
}

func TestSelectLevelStartsGame(t *testing.T) {
	m := NewModel(testConfig(t))
	m, _ = send(t, m, keyMsg("down"))
	m, _ = send(t, m, keyMsg("enter"))

	assert.Equal(t, session.ScreenGame, m.board.screen)
	assert.Len(t, m.board.cards, 24)
	assert.Equal(t, 1, m.cfg.Stats.TotalGames())
	assert.Contains(t, m.View(), "Medium")
}

func TestStartLevelFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartLevel = config.LevelEasy
	m := NewModel(cfg)
	require.NoError(t, m.StartErr())
	assert.Equal(t, session.ScreenGame, m.board.screen)

	cfg.StartLevel = "bogus"
	m = NewModel(cfg)
	assert.ErrorIs(t, m.StartErr(), config.ErrUnknownLevel)
}

func TestCursorMovesWithinGrid(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartLevel = config.LevelEasy // 4 columns, 12 cards
	m := NewModel(cfg)

	m, _ = send(t, m, keyMsg("left"))
	assert.Equal(t, 0, m.cardCursor)
	m, _ = send(t, m, keyMsg("up"))
	assert.Equal(t, 0, m.cardCursor)

	m, _ = send(t, m, keyMsg("right"))
	m, _ = send(t, m, keyMsg("down"))
	assert.Equal(t, 5, m.cardCursor)

	for range 5 {
		m, _ = send(t, m, keyMsg("l"))
	}
	assert.Equal(t, 7, m.cardCursor, "stops at row end")

	for range 5 {
		m, _ = send(t, m, keyMsg("j"))
	}
	assert.Equal(t, 11, m.cardCursor, "stops at last row")
}

func TestFlipByKeyAndResolveByTimer(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartLevel = config.LevelEasy
	m := NewModel(cfg)

	a, b := pairIDs(t, m, false)

	m, cmd := m.click(a)
	require.NotNil(t, cmd, "flash timer")
	assert.True(t, m.flash[a])
	assert.True(t, m.board.cards[a].Flipped)

	m, cmd = m.click(b)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.board.status.Moves)

	resolve := session.Timer{Kind: session.TimerResolve, Generation: m.ctrl.Generation()}
	m, cmd = send(t, m, timerMsg{timer: resolve})
	assert.NotNil(t, cmd, "feedback clear timer")
	assert.False(t, m.board.cards[a].Flipped)
	assert.Equal(t, session.FeedbackNoMatch, m.board.feedback)
	assert.Contains(t, m.View(), "Try Again!")

	m, _ = send(t, m, flashDoneMsg{card: a, generation: m.ctrl.Generation()})
	assert.False(t, m.flash[a])
}

func TestEnterFlipsCursorCard(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartLevel = config.LevelEasy
	m := NewModel(cfg)

	m, _ = send(t, m, keyMsg("right"))
	m, _ = send(t, m, keyMsg(" "))
	assert.True(t, m.board.cards[1].Flipped)
}

func TestMouseClickFlipsCard(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartLevel = config.LevelEasy
	m := NewModel(cfg)

	layout := m.layout()
	// Middle of the second card in the second row.
	x := layout.left + (cardW + cardGap) + cardW/2
	y := layout.top + cardH + 1

	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	id := layout.columns + 1
	assert.True(t, m.board.cards[id].Flipped)
	assert.Equal(t, id, m.cardCursor)

	// Right clicks and gaps do nothing.
	m, _ = send(t, m, tea.MouseMsg{X: layout.left, Y: layout.top, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, m.board.cards[0].Flipped)
	m, _ = send(t, m, tea.MouseMsg{X: layout.left + cardW, Y: layout.top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.board.cards[0].Flipped)
	assert.False(t, m.board.cards[1].Flipped)
}

func TestGridLayoutHitTest(t *testing.T) {
	g := newGridLayout(80, 4, 12)
	assert.Equal(t, 3, g.rows())
	assert.Equal(t, (80-(4*cardW+3*cardGap))/2, g.left)

	assert.Equal(t, 0, g.cardAt(g.left, g.top))
	assert.Equal(t, 0, g.cardAt(g.left+cardW-1, g.top+cardH-1))
	assert.Equal(t, -1, g.cardAt(g.left+cardW, g.top), "gap")
	assert.Equal(t, 1, g.cardAt(g.left+cardW+cardGap, g.top))
	assert.Equal(t, 4, g.cardAt(g.left, g.top+cardH))
	assert.Equal(t, -1, g.cardAt(g.left, g.top+3*cardH), "below grid")
	assert.Equal(t, -1, g.cardAt(g.left-1, g.top))
	assert.Equal(t, -1, g.cardAt(g.left, g.top-1))
}

func TestRenderedGridMatchesLayout(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartLevel = config.LevelEasy
	m := NewModel(cfg)

	lines := strings.Split(m.View(), "\n")
	layout := m.layout()
	require.Greater(t, len(lines), layout.top+layout.rows()*cardH)

	// Top border of the first card row sits right below the header.
	assert.Contains(t, lines[layout.top], "╭")
	assert.NotContains(t, lines[layout.top-1], "╭")
	assert.Contains(t, lines[layout.top+cardH], "╭")
}

func TestWinFlowShowsConfetti(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartLevel = config.LevelEasy
	m := NewModel(cfg)

	var complete *session.Timer
	for range 6 {
		a, b := pairIDs(t, m, true)
		m, _ = m.click(a)
		m, _ = m.click(b)
		timers := m.ctrl.Fire(session.Timer{Kind: session.TimerResolve, Generation: m.ctrl.Generation()})
		for _, tm := range timers {
			if tm.Kind == session.TimerComplete {
				c := tm
				complete = &c
			}
		}
	}
	require.NotNil(t, complete)

	m, cmd := send(t, m, timerMsg{timer: *complete})
	assert.NotNil(t, cmd, "confetti tick")
	assert.Equal(t, session.ScreenWin, m.board.screen)
	require.NotNil(t, m.confetti)

	view := m.View()
	assert.Contains(t, view, "You did it!")
	assert.Contains(t, view, "Score: 60")
	assert.Contains(t, view, "New best score!")

	// Confetti eventually falls out of view.
	for range 200 {
		var c tea.Cmd
		m, c = send(t, m, confettiTickMsg{})
		if c == nil {
			break
		}
	}
	assert.Nil(t, m.confetti)

	// Enter plays again on the same level.
	m, _ = send(t, m, keyMsg("enter"))
	assert.Equal(t, session.ScreenGame, m.board.screen)
	assert.Equal(t, 2, m.cfg.Stats.TotalGames())
}

func TestRestartAndBack(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartLevel = config.LevelHard
	m := NewModel(cfg)

	m, _ = m.click(0)
	m, _ = send(t, m, keyMsg("r"))
	assert.False(t, m.board.cards[0].Flipped)
	assert.Equal(t, 2, m.cfg.Stats.TotalGames())

	m, _ = send(t, m, keyMsg("esc"))
	assert.Equal(t, session.ScreenLevel, m.board.screen)
	assert.Equal(t, 2, m.levelCursor)
	assert.Contains(t, m.View(), "Games played: 2")
}

func TestStaleTimerAfterRestartIgnored(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartLevel = config.LevelEasy
	m := NewModel(cfg)

	a, b := pairIDs(t, m, true)
	m, _ = m.click(a)
	m, _ = m.click(b)
	old := session.Timer{Kind: session.TimerResolve, Generation: m.ctrl.Generation()}

	m, _ = send(t, m, keyMsg("r"))
	m, cmd := send(t, m, timerMsg{timer: old})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.board.status.Score)
}

func TestQuit(t *testing.T) {
	m := NewModel(testConfig(t))
	m, cmd := send(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestScoreboardOpensAndCloses(t *testing.T) {
	m := NewModel(testConfig(t))
	m, _ = send(t, m, keyMsg("tab"))
	require.NotNil(t, m.scores)
	assert.Contains(t, m.View(), "BEST GAMES")
	assert.Contains(t, m.View(), "No history database.")

	m, _ = send(t, m, keyMsg("esc"))
	assert.Nil(t, m.scores)
	assert.Equal(t, session.ScreenLevel, m.board.screen)
}
