// Package session wires the turn state machine to sound, stats and the
// presentation boundary. It owns the single game instance and is driven from
// one event loop: user actions come in through Start, Click, Restart and
// BackToMenu; delays go out as Timer requests and come back through Fire.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-match/internal/audio"
	"github.com/vovakirdan/memory-match/internal/catalog"
	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/memory"
	"github.com/vovakirdan/memory-match/internal/storage"
)

// ErrNoGame is returned by Restart before any game was started.
var ErrNoGame = errors.New("session: no game in progress")

// StatsStore is the persisted-stats surface the controller needs.
// Implementations are best-effort and never fail.
type StatsStore interface {
	BestScore() int
	SaveBestScore(score int) bool
	LastLevel() (string, bool)
	SaveLastLevel(level string)
	TotalGames() int
	IncrementGamesPlayed()
}

// Recorder stores completed games.
type Recorder interface {
	SaveGame(rec storage.GameRecord) (string, error)
}

// Options configures a Controller.
type Options struct {
	Presets config.Presets
	Catalog catalog.Catalog
	Stats   StatsStore
	Sounds  audio.Sounds
	History Recorder   // Optional
	Rand    *rand.Rand // Optional; seeded from the clock when nil
	Logger  *log.Logger
}

// Controller runs games. It is not safe for concurrent use.
type Controller struct {
	opts   Options
	view   View
	logger *log.Logger

	game        *memory.Game
	screen      Screen
	generation  uint64
	feedbackSeq uint64
	last        Summary
}

// New creates a controller showing the level screen through view.
func New(view View, opts Options) *Controller {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Sounds == nil {
		opts.Sounds = audio.NewPlayer(audio.OpenSilent(), opts.Logger)
	}
	return &Controller{
		opts:   opts,
		view:   view,
		logger: opts.Logger,
		screen: ScreenLevel,
	}
}

// Menu returns the current level-screen info.
func (c *Controller) Menu() Menu {
	m := Menu{
		BestScore:  c.opts.Stats.BestScore(),
		TotalGames: c.opts.Stats.TotalGames(),
	}
	if lvl, ok := c.opts.Stats.LastLevel(); ok {
		m.LastLevel = lvl
	}
	return m
}

// ShowMenu pushes the level screen without a click sound. Used on startup.
func (c *Controller) ShowMenu() {
	c.screen = ScreenLevel
	c.view.UpdateMenu(c.Menu())
	c.view.ShowScreen(ScreenLevel)
}

// Start begins a new game at the named level. Any timers still pending from
// the previous game become stale.
func (c *Controller) Start(levelName string) error {
	level, err := c.opts.Presets.Get(levelName)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	c.opts.Sounds.Click()
	c.opts.Stats.SaveLastLevel(level.Name)
	c.opts.Stats.IncrementGamesPlayed()

	c.game = memory.New(level, c.opts.Catalog, c.opts.Rand)
	c.generation++
	c.feedbackSeq++
	c.screen = ScreenGame
	c.last = Summary{}

	c.logger.Debug("game started", "level", level.Name, "generation", c.generation, "cards", level.Cards())

	c.view.ShowScreen(ScreenGame)
	c.view.ClearFeedback()
	c.view.RenderCards(c.game.Cards())
	c.view.UpdateStatus(c.status())
	return nil
}

// Restart starts a fresh game at the current level.
func (c *Controller) Restart() error {
	if c.game == nil {
		return ErrNoGame
	}
	return c.Start(c.game.Level().Name)
}

// BackToMenu returns to the level screen and abandons the running game.
func (c *Controller) BackToMenu() {
	c.opts.Sounds.Click()
	c.generation++
	c.ShowMenu()
}

// Click flips the card with the given ID. It returns the resolution timer
// when this click turned the second card of a turn.
func (c *Controller) Click(id int) []Timer {
	if c.game == nil || c.screen != ScreenGame {
		return nil
	}

	switch c.game.Flip(id) {
	case memory.FlipFirst:
		c.view.RenderCards(c.game.Cards())
		return nil
	case memory.FlipSecond:
		c.view.RenderCards(c.game.Cards())
		c.view.UpdateStatus(c.status())
		return []Timer{c.timer(TimerResolve, c.game.Level().MatchDelay())}
	default:
		return nil
	}
}

// Fire runs a timer previously returned by the controller and returns any
// follow-up timers. Timers from an earlier game are ignored.
func (c *Controller) Fire(t Timer) []Timer {
	if c.game == nil || t.Generation != c.generation {
		c.logger.Debug("stale timer ignored", "kind", t.Kind, "generation", t.Generation)
		return nil
	}

	switch t.Kind {
	case TimerResolve:
		return c.resolve()
	case TimerComplete:
		c.complete()
		return nil
	case TimerClearFeedback:
		if t.Seq == c.feedbackSeq {
			c.view.ClearFeedback()
		}
		return nil
	default:
		return nil
	}
}

func (c *Controller) resolve() []Timer {
	out, ok := c.game.Resolve()
	if !ok {
		return nil
	}

	var timers []Timer
	if out.Match {
		c.opts.Sounds.Match()
		timers = append(timers, c.feedback(FeedbackMatch, Positive))
		if out.Complete {
			timers = append(timers, c.timer(TimerComplete, CompletionDelay))
		}
	} else {
		c.opts.Sounds.NoMatch()
		timers = append(timers, c.feedback(FeedbackNoMatch, Negative))
	}

	c.view.RenderCards(c.game.Cards())
	c.view.UpdateStatus(c.status())
	return timers
}

func (c *Controller) complete() {
	if !c.game.Finish() {
		return
	}

	c.opts.Sounds.Win()

	sum := Summary{
		Level: c.game.Level().Name,
		Score: c.game.Score(),
		Moves: c.game.Moves(),
		Stars: c.game.Stars(),
	}
	sum.NewBest = c.opts.Stats.SaveBestScore(sum.Score)

	if c.opts.History != nil {
		id, err := c.opts.History.SaveGame(storage.GameRecord{
			Level: sum.Level,
			Theme: c.opts.Catalog.Name,
			Score: sum.Score,
			Moves: sum.Moves,
			Stars: sum.Stars,
		})
		if err != nil {
			c.logger.Error("error recording game", "error", err)
		} else {
			sum.RunID = id
		}
	}

	c.logger.Info("game completed", "level", sum.Level, "score", sum.Score, "moves", sum.Moves, "stars", sum.Stars, "new_best", sum.NewBest)

	c.screen = ScreenWin
	c.last = sum
	c.view.ShowCompletion(sum)
	c.view.ShowScreen(ScreenWin)
}

func (c *Controller) feedback(text string, p Polarity) Timer {
	c.feedbackSeq++
	c.view.ShowFeedback(text, p)
	t := c.timer(TimerClearFeedback, FeedbackDuration)
	t.Seq = c.feedbackSeq
	return t
}

func (c *Controller) timer(kind TimerKind, after time.Duration) Timer {
	return Timer{After: after, Kind: kind, Generation: c.generation}
}

func (c *Controller) status() Status {
	return Status{
		Score:        c.game.Score(),
		Moves:        c.game.Moves(),
		Stars:        c.game.Stars(),
		MatchedPairs: c.game.MatchedPairs(),
		Pairs:        c.game.Level().Pairs,
	}
}

// Screen returns the visible screen.
func (c *Controller) Screen() Screen { return c.screen }

// Generation returns the current game generation.
func (c *Controller) Generation() uint64 { return c.generation }

// Level returns the level of the current or last game.
func (c *Controller) Level() (config.Level, bool) {
	if c.game == nil {
		return config.Level{}, false
	}
	return c.game.Level(), true
}

// Game returns the current game, or nil before the first start.
func (c *Controller) Game() *memory.Game { return c.game }

// LastSummary returns the summary of the most recently completed game.
func (c *Controller) LastSummary() Summary { return c.last }
