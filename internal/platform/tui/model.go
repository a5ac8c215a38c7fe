package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-match/internal/audio"
	"github.com/vovakirdan/memory-match/internal/catalog"
	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/session"
	"github.com/vovakirdan/memory-match/internal/storage"
)

// Config holds everything a Model needs.
type Config struct {
	Presets config.Presets
	Catalog catalog.Catalog
	Stats   session.StatsStore
	Sounds  audio.Sounds
	Store   *storage.Store // Optional; enables history and the scoreboard
	Logger  *log.Logger

	Seed       int64  // 0 means time-based
	StartLevel string // Skip the level screen when set
	Width      int
	Height     int
}

// Model is the Bubble Tea model for one player: level screen, game, win
// screen and scoreboard.
type Model struct {
	ctrl   *session.Controller
	board  *board
	cfg    Config
	keys   KeyMap
	help   help.Model
	rng    *rand.Rand
	logger *log.Logger

	width  int
	height int

	levelCursor int
	cardCursor  int
	flash       map[int]bool
	confetti    *confetti

	scores   *ScoreboardModel
	startErr error
	quitting bool
}

// NewModel creates a model showing the level screen.
func NewModel(cfg Config) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	b := newBoard()
	opts := session.Options{
		Presets: cfg.Presets,
		Catalog: cfg.Catalog,
		Stats:   cfg.Stats,
		Sounds:  cfg.Sounds,
		Rand:    rand.New(rand.NewSource(cfg.Seed)),
		Logger:  cfg.Logger,
	}
	if cfg.Store != nil {
		opts.History = cfg.Store
	}

	h := help.New()
	h.Width = cfg.Width

	m := Model{
		ctrl:   session.New(b, opts),
		board:  b,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		rng:    rand.New(rand.NewSource(cfg.Seed + 1)),
		logger: cfg.Logger,
		width:  cfg.Width,
		height: cfg.Height,
		flash:  make(map[int]bool),
	}

	m.ctrl.ShowMenu()
	m.levelCursor = m.lastLevelIndex()
	if cfg.StartLevel != "" {
		m.startErr = m.ctrl.Start(cfg.StartLevel)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.startErr != nil {
		return tea.Quit
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.help.Width = wsm.Width
	}

	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case timerMsg:
		cmd := schedule(m.ctrl.Fire(msg.timer))
		if m.board.takeCelebrate() {
			m.confetti = newConfetti(m.width, m.rng)
			cmd = tea.Batch(cmd, confettiTickCmd())
		}
		return m, cmd

	case flashDoneMsg:
		if msg.generation == m.ctrl.Generation() {
			delete(m.flash, msg.card)
		}
		return m, nil

	case confettiTickMsg:
		if m.confetti == nil || m.board.screen != session.ScreenWin {
			m.confetti = nil
			return m, nil
		}
		if !m.confetti.step() {
			m.confetti = nil
			return m, nil
		}
		return m, confettiTickCmd()
	}

	return m, nil
}

// handleKey routes a key press to the visible screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.board.screen {
	case session.ScreenLevel:
		return m.handleLevelKey(msg)
	case session.ScreenGame:
		return m.handleGameKey(msg)
	case session.ScreenWin:
		return m.handleWinKey(msg)
	}
	return m, nil
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	layout := m.layout()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cardCursor-layout.columns >= 0 {
			m.cardCursor -= layout.columns
		}
	case key.Matches(msg, m.keys.Down):
		if m.cardCursor+layout.columns < layout.count {
			m.cardCursor += layout.columns
		}
	case key.Matches(msg, m.keys.Left):
		if m.cardCursor%layout.columns > 0 {
			m.cardCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cardCursor%layout.columns < layout.columns-1 && m.cardCursor+1 < layout.count {
			m.cardCursor++
		}
	case key.Matches(msg, m.keys.Flip):
		return m.click(m.cardCursor)
	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	case key.Matches(msg, m.keys.Back):
		return m.backToMenu()
	}
	return m, nil
}

func (m Model) handleWinKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Flip), key.Matches(msg, m.keys.Restart):
		return m.restart()
	case key.Matches(msg, m.keys.Back):
		return m.backToMenu()
	}
	return m, nil
}

// handleMouse flips the card under a left click on the game screen.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.board.screen != session.ScreenGame {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	id := m.layout().cardAt(msg.X, msg.Y)
	if id < 0 {
		return m, nil
	}
	m.cardCursor = id
	return m.click(id)
}

// click forwards a card click to the controller and starts the flip
// highlight if the card turned over.
func (m Model) click(id int) (tea.Model, tea.Cmd) {
	wasUp := id < len(m.board.cards) && !m.board.cards[id].FaceDown()
	cmd := schedule(m.ctrl.Click(id))

	if !wasUp && id < len(m.board.cards) && m.board.cards[id].Flipped {
		if lvl, ok := m.ctrl.Level(); ok && lvl.FlipDuration() > 0 {
			m.flash[id] = true
			cmd = tea.Batch(cmd, flashCmd(id, m.ctrl.Generation(), lvl.FlipDuration()))
		}
	}
	return m, cmd
}

func (m Model) start(level string) (tea.Model, tea.Cmd) {
	if err := m.ctrl.Start(level); err != nil {
		m.logger.Error("cannot start game", "level", level, "error", err)
		return m, nil
	}
	m.resetGameView()
	return m, nil
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	if err := m.ctrl.Restart(); err != nil {
		m.logger.Error("cannot restart game", "error", err)
		return m, nil
	}
	m.resetGameView()
	return m, nil
}

func (m Model) backToMenu() (tea.Model, tea.Cmd) {
	m.ctrl.BackToMenu()
	m.confetti = nil
	m.levelCursor = m.lastLevelIndex()
	return m, nil
}

func (m *Model) resetGameView() {
	m.cardCursor = 0
	m.confetti = nil
	clear(m.flash)
}

func (m Model) layout() gridLayout {
	cols := 1
	if lvl, ok := m.ctrl.Level(); ok {
		cols = lvl.Columns
	}
	return newGridLayout(m.width, cols, len(m.board.cards))
}

func (m Model) lastLevelIndex() int {
	if i := m.cfg.Presets.Index(m.board.menu.LastLevel); i >= 0 {
		return i
	}
	return 0
}

// View renders the visible screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	switch m.board.screen {
	case session.ScreenGame:
		return m.gameView()
	case session.ScreenWin:
		return m.winView()
	default:
		return m.levelView()
	}
}

func (m Model) gameView() string {
	lvl, _ := m.ctrl.Level()
	layout := m.layout()

	lines := []string{
		centerText(titleStyle.Render("Memory Match · "+lvl.Title), m.width),
		centerText(renderStatus(m.board.status), m.width),
		centerText(renderFeedback(m.board.feedback, m.board.polarity), m.width),
		"",
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(renderGrid(layout, m.board.cards, m.cardCursor, m.flash))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(gameHelp{m.keys})), m.width))
	return b.String()
}

// StartErr returns the error from starting the requested level, if any.
func (m Model) StartErr() error {
	return m.startErr
}

// Run starts the Bubble Tea program with the given configuration.
func Run(cfg Config) error {
	model := NewModel(cfg)
	if err := model.StartErr(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
