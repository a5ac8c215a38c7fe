package session

import (
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/memory-match/internal/catalog"
	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/memory"
	"github.com/vovakirdan/memory-match/internal/stats"
	"github.com/vovakirdan/memory-match/internal/storage"
)

type fakeView struct {
	screens    []Screen
	menu       Menu
	cards      []memory.Card
	status     Status
	feedback   string
	polarity   Polarity
	clears     int
	completion *Summary
}

func (v *fakeView) ShowScreen(s Screen)         { v.screens = append(v.screens, s) }
func (v *fakeView) UpdateMenu(m Menu)           { v.menu = m }
func (v *fakeView) RenderCards(c []memory.Card) { v.cards = c }
func (v *fakeView) UpdateStatus(st Status)      { v.status = st }
func (v *fakeView) ShowFeedback(text string, p Polarity) {
	v.feedback = text
	v.polarity = p
}
func (v *fakeView) ClearFeedback() {
	v.feedback = ""
	v.clears++
}
func (v *fakeView) ShowCompletion(sum Summary) { v.completion = &sum }

func (v *fakeView) current() Screen {
	if len(v.screens) == 0 {
		return -1
	}
	return v.screens[len(v.screens)-1]
}

type countingSounds struct {
	match, noMatch, click, win int
}

func (s *countingSounds) Match()   { s.match++ }
func (s *countingSounds) NoMatch() { s.noMatch++ }
func (s *countingSounds) Click()   { s.click++ }
func (s *countingSounds) Win()     { s.win++ }

type fakeRecorder struct {
	records []storage.GameRecord
	err     error
}

func (r *fakeRecorder) SaveGame(rec storage.GameRecord) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.records = append(r.records, rec)
	return "run-1", nil
}

type fixture struct {
	ctrl   *Controller
	view   *fakeView
	sounds *countingSounds
	stats  *stats.Stats
	hist   *fakeRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.Get(catalog.DefaultTheme)
	require.NoError(t, err)

	quiet := log.New(io.Discard)
	f := &fixture{
		view:   &fakeView{},
		sounds: &countingSounds{},
		stats:  stats.New(storage.NewMemory(), quiet),
		hist:   &fakeRecorder{},
	}
	f.ctrl = New(f.view, Options{
		Presets: config.DefaultPresets(),
		Catalog: cat,
		Stats:   f.stats,
		Sounds:  f.sounds,
		History: f.hist,
		Rand:    rand.New(rand.NewSource(42)),
		Logger:  quiet,
	})
	return f
}

// pairs groups the current board's card IDs by symbol.
func (f *fixture) pairs() [][]int {
	bySym := make(map[string][]int)
	var order []string
	for _, c := range f.ctrl.Game().Cards() {
		if _, ok := bySym[c.Symbol]; !ok {
			order = append(order, c.Symbol)
		}
		bySym[c.Symbol] = append(bySym[c.Symbol], c.ID)
	}
	out := make([][]int, 0, len(order))
	for _, s := range order {
		out = append(out, bySym[s])
	}
	return out
}

func (f *fixture) mismatch(t *testing.T) (int, int) {
	t.Helper()
	cards := f.ctrl.Game().Cards()
	for _, a := range cards {
		for _, b := range cards {
			if a.FaceDown() && b.FaceDown() && a.Symbol != b.Symbol {
				return a.ID, b.ID
			}
		}
	}
	t.Fatal("no mismatch left")
	return 0, 0
}

// turn clicks two cards and fires the resolution timer.
func (f *fixture) turn(t *testing.T, a, b int) []Timer {
	t.Helper()
	assert.Empty(t, f.ctrl.Click(a))
	timers := f.ctrl.Click(b)
	require.Len(t, timers, 1)
	require.Equal(t, TimerResolve, timers[0].Kind)
	return f.ctrl.Fire(timers[0])
}

func findTimer(timers []Timer, kind TimerKind) (Timer, bool) {
	for _, t := range timers {
		if t.Kind == kind {
			return t, true
		}
	}
	return Timer{}, false
}

func TestShowMenu(t *testing.T) {
	f := newFixture(t)
	f.stats.SaveBestScore(90)
	f.stats.SaveLastLevel(config.LevelHard)

	f.ctrl.ShowMenu()
	assert.Equal(t, ScreenLevel, f.view.current())
	assert.Equal(t, Menu{BestScore: 90, LastLevel: config.LevelHard}, f.view.menu)
	assert.Equal(t, 0, f.sounds.click)
}

func TestStartPersistsAndShowsBoard(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Start(config.LevelMedium))

	assert.Equal(t, ScreenGame, f.view.current())
	assert.Len(t, f.view.cards, 24)
	assert.Equal(t, Status{Stars: 3, Pairs: 12}, f.view.status)
	assert.Equal(t, 1, f.sounds.click)

	lvl, ok := f.stats.LastLevel()
	assert.True(t, ok)
	assert.Equal(t, config.LevelMedium, lvl)
	assert.Equal(t, 1, f.stats.TotalGames())
}

func TestStartUnknownLevel(t *testing.T) {
	f := newFixture(t)
	err := f.ctrl.Start("nightmare")
	assert.ErrorIs(t, err, config.ErrUnknownLevel)
	assert.Equal(t, 0, f.stats.TotalGames())
	assert.Nil(t, f.ctrl.Game())
}

func TestRestartCountsAsNewGame(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.ctrl.Restart(), ErrNoGame)

	require.NoError(t, f.ctrl.Start(config.LevelEasy))
	require.NoError(t, f.ctrl.Restart())
	require.NoError(t, f.ctrl.Restart())

	assert.Equal(t, 3, f.stats.TotalGames())
	lvl, _ := f.stats.LastLevel()
	assert.Equal(t, config.LevelEasy, lvl)
	assert.Equal(t, uint64(3), f.ctrl.Generation())
}

func TestSecondClickRequestsResolution(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Start(config.LevelEasy))

	assert.Empty(t, f.ctrl.Click(0))
	assert.True(t, f.view.cards[0].Flipped)

	timers := f.ctrl.Click(1)
	require.Len(t, timers, 1)
	assert.Equal(t, TimerResolve, timers[0].Kind)
	assert.Equal(t, 800*time.Millisecond, timers[0].After)
	assert.Equal(t, 1, f.view.status.Moves)

	// Input is blocked until the timer fires.
	assert.Empty(t, f.ctrl.Click(2))
	assert.False(t, f.view.cards[2].Flipped)
	assert.Equal(t, memory.PhaseResolving, f.ctrl.Game().Phase())
}

func TestMatchResolution(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Start(config.LevelEasy))

	p := f.pairs()[0]
	timers := f.turn(t, p[0], p[1])

	assert.Equal(t, 1, f.sounds.match)
	assert.Equal(t, FeedbackMatch, f.view.feedback)
	assert.Equal(t, Positive, f.view.polarity)
	assert.Equal(t, 10, f.view.status.Score)
	assert.True(t, f.view.cards[p[0]].Matched)

	cl, ok := findTimer(timers, TimerClearFeedback)
	require.True(t, ok)
	assert.Equal(t, FeedbackDuration, cl.After)
	_, ok = findTimer(timers, TimerComplete)
	assert.False(t, ok)

	f.ctrl.Fire(cl)
	assert.Empty(t, f.view.feedback)
}

func TestNoMatchResolution(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Start(config.LevelEasy))

	a, b := f.mismatch(t)
	timers := f.turn(t, a, b)

	assert.Equal(t, 1, f.sounds.noMatch)
	assert.Equal(t, FeedbackNoMatch, f.view.feedback)
	assert.Equal(t, Negative, f.view.polarity)
	assert.False(t, f.view.cards[a].Flipped)
	assert.False(t, f.view.cards[b].Flipped)
	assert.Equal(t, 0, f.view.status.Score)
	require.Len(t, timers, 1)
	assert.Equal(t, TimerClearFeedback, timers[0].Kind)
}

func TestOlderFeedbackClearIsIgnored(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Start(config.LevelEasy))

	a, b := f.mismatch(t)
	first := f.turn(t, a, b)
	a, b = f.mismatch(t)
	f.turn(t, a, b)

	// The first message's clear fires while the second message is up.
	f.ctrl.Fire(first[0])
	assert.Equal(t, FeedbackNoMatch, f.view.feedback)
}

func TestCompletionFlow(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Start(config.LevelEasy))

	var complete Timer
	for i, p := range f.pairs() {
		timers := f.turn(t, p[0], p[1])
		ct, ok := findTimer(timers, TimerComplete)
		assert.Equal(t, i == 5, ok, "pair %d", i)
		if ok {
			complete = ct
		}
	}

	assert.Equal(t, CompletionDelay, complete.After)
	assert.Equal(t, ScreenGame, f.view.current(), "win screen before delay")

	assert.Empty(t, f.ctrl.Fire(complete))
	assert.Equal(t, ScreenWin, f.view.current())
	assert.Equal(t, 1, f.sounds.win)

	require.NotNil(t, f.view.completion)
	sum := *f.view.completion
	assert.Equal(t, Summary{RunID: "run-1", Level: "easy", Score: 60, Moves: 6, Stars: 3, NewBest: true}, sum)
	assert.Equal(t, sum, f.ctrl.LastSummary())
	assert.Equal(t, 60, f.stats.BestScore())

	require.Len(t, f.hist.records, 1)
	assert.Equal(t, "animals", f.hist.records[0].Theme)

	// Firing again does nothing.
	f.ctrl.Fire(complete)
	assert.Equal(t, 1, f.sounds.win)
	assert.Len(t, f.hist.records, 1)
}

func TestCompletionNotBestAndHistoryFailure(t *testing.T) {
	f := newFixture(t)
	f.stats.SaveBestScore(500)
	f.hist.err = errors.New("disk full")
	require.NoError(t, f.ctrl.Start(config.LevelEasy))

	var complete Timer
	for _, p := range f.pairs() {
		if ct, ok := findTimer(f.turn(t, p[0], p[1]), TimerComplete); ok {
			complete = ct
		}
	}
	f.ctrl.Fire(complete)

	require.NotNil(t, f.view.completion)
	assert.False(t, f.view.completion.NewBest)
	assert.Empty(t, f.view.completion.RunID)
	assert.Equal(t, 500, f.stats.BestScore())
	assert.Equal(t, ScreenWin, f.view.current())
}

func TestStaleTimersAfterRestart(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Start(config.LevelEasy))

	f.ctrl.Click(0)
	timers := f.ctrl.Click(1)
	require.Len(t, timers, 1)

	require.NoError(t, f.ctrl.Restart())
	assert.Empty(t, f.ctrl.Fire(timers[0]))
	assert.Equal(t, memory.PhaseIdle, f.ctrl.Game().Phase())
	assert.Equal(t, 0, f.ctrl.Game().Moves())
	assert.Equal(t, 0, f.sounds.match+f.sounds.noMatch)
}

func TestStaleCompletionAfterBackToMenu(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Start(config.LevelEasy))

	var complete Timer
	for _, p := range f.pairs() {
		if ct, ok := findTimer(f.turn(t, p[0], p[1]), TimerComplete); ok {
			complete = ct
		}
	}

	f.ctrl.BackToMenu()
	assert.Equal(t, ScreenLevel, f.view.current())
	assert.Equal(t, 1, f.view.menu.TotalGames)

	f.ctrl.Fire(complete)
	assert.Equal(t, ScreenLevel, f.view.current())
	assert.Equal(t, 0, f.sounds.win)
	assert.Equal(t, 0, f.stats.BestScore())
}

func TestClickOutsideGameIgnored(t *testing.T) {
	f := newFixture(t)
	assert.Empty(t, f.ctrl.Click(0))

	require.NoError(t, f.ctrl.Start(config.LevelEasy))
	f.ctrl.BackToMenu()
	assert.Empty(t, f.ctrl.Click(0))
	assert.Empty(t, f.ctrl.Game().Flipped())
}

func TestStarsDropOnMisses(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Start(config.LevelEasy))

	for range 13 {
		a, b := f.mismatch(t)
		f.turn(t, a, b)
	}
	assert.Equal(t, 13, f.view.status.Moves)
	assert.Equal(t, 1, f.view.status.Stars)
}

func TestScreenAndTimerKindStrings(t *testing.T) {
	assert.Equal(t, "level", ScreenLevel.String())
	assert.Equal(t, "game", ScreenGame.String())
	assert.Equal(t, "win", ScreenWin.String())
	assert.Equal(t, "unknown", Screen(9).String())
	assert.Equal(t, "resolve", TimerResolve.String())
	assert.Equal(t, "complete", TimerComplete.String())
	assert.Equal(t, "clear-feedback", TimerClearFeedback.String())
}
