package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/memory-match/internal/audio"
	"github.com/vovakirdan/memory-match/internal/audio/speaker"
	"github.com/vovakirdan/memory-match/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a game",
	Long: `Start a game. Without a level the level screen is shown first; the
cursor starts on the level you played last.

Controls:
  Arrows/hjkl   - Move the cursor
  Enter/Space   - Flip the card (or pick a level)
  Mouse click   - Flip the card under the pointer
  R             - Restart the level
  B/Esc         - Back to the level screen
  Tab           - Best games (level screen)
  Q/Ctrl+C      - Quit

Levels:
  easy    -  6 pairs, 4 columns
  medium  - 12 pairs, 6 columns
  hard    - 20 pairs, 8 columns

Examples:
  memory play
  memory play hard
  memory play easy --theme shapes --mute
  memory play medium --config ./my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	presets, cat, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var level string
	if len(args) == 1 {
		level = args[0]
		if presets.Index(level) < 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", level)
			fmt.Fprintln(os.Stderr, "Run 'memory levels' to see available levels.")
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := newFileLogger(flagLogPath)
	defer closeLog()

	store, st := openStats(logger)

	opener := speaker.Open()
	if flagMute {
		opener = audio.OpenSilent()
	}

	runErr := tui.Run(tui.Config{
		Presets:    presets,
		Catalog:    cat,
		Stats:      st,
		Sounds:     audio.NewPlayer(opener, logger),
		Store:      store,
		Logger:     logger,
		Seed:       flagSeed,
		StartLevel: level,
		Width:      width,
		Height:     height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
