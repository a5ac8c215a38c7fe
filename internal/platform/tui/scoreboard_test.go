package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/storage"
)

func TestScoreboardTabsFilterByLevel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, rec := range []storage.GameRecord{
		{Level: config.LevelEasy, Theme: "animals", Score: 60, Moves: 8, Stars: 3},
		{Level: config.LevelHard, Theme: "animals", Score: 200, Moves: 40, Stars: 2},
		{Level: config.LevelEasy, Theme: "animals", Score: 60, Moves: 6, Stars: 3},
	} {
		_, err := store.SaveGame(rec)
		require.NoError(t, err)
	}

	sb := NewScoreboardModel(store, config.DefaultPresets(), 100, 30)
	require.Len(t, sb.tabs, 4)
	assert.Len(t, sb.games, 3)
	assert.Equal(t, 200, sb.games[0].Score)

	next, _ := sb.Update(keyMsg("tab"))
	sb = next.(ScoreboardModel)
	assert.Equal(t, config.LevelEasy, sb.tabs[sb.tabCursor].level)
	require.Len(t, sb.games, 2)
	assert.Equal(t, 6, sb.games[0].Moves, "fewest moves breaks ties")

	next, _ = sb.Update(keyMsg("left"))
	next, _ = next.(ScoreboardModel).Update(keyMsg("left"))
	sb = next.(ScoreboardModel)
	assert.Equal(t, config.LevelHard, sb.tabs[sb.tabCursor].level)
	assert.Contains(t, sb.View(), "Hard")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	sb := NewScoreboardModel(nil, config.DefaultPresets(), 60, 20)
	assert.False(t, sb.showSidebar)

	next, _ := sb.Update(keyMsg("b"))
	assert.True(t, next.(ScoreboardModel).IsGoingBack())

	next, cmd := sb.Update(keyMsg("q"))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
	assert.NotNil(t, cmd)
}
