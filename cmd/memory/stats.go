package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/config"
)

var (
	flagReset bool
	flagYes   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show or reset saved stats",
	Long: `Display the saved stats: best score, last level played and games
started, followed by a per-level summary of finished games.

With --reset, every saved stat and the finished-games history are deleted
after confirmation.

Examples:
  memory stats
  memory stats --reset
  memory stats --reset --yes`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear all saved stats and history")
	statsCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
}

func runStats(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "memory")

	store, st := openStats(logger)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		confirmed := flagYes
		if !confirmed {
			err := huh.NewConfirm().
				Title("Delete all saved stats and game history?").
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed).
				Run()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		if !confirmed {
			fmt.Println("Nothing deleted.")
			return
		}

		st.ClearAll()
		if err := store.ClearGames(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All stats cleared.")
		return
	}

	last, ok := st.LastLevel()
	if !ok {
		last = "-"
	}

	fmt.Println("Stats")
	fmt.Println()
	fmt.Printf("  Best score:    %d\n", st.BestScore())
	fmt.Printf("  Last level:    %s\n", last)
	fmt.Printf("  Games started: %d\n", st.TotalGames())
	fmt.Println()

	summaries, err := store.LevelSummaries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}
	if len(summaries) == 0 {
		fmt.Println("No games finished yet.")
		return
	}

	fmt.Printf("  %-8s  %8s  %6s  %7s  %9s  %s\n", "Level", "Finished", "Best", "Fewest", "Avg stars", "Last played")
	fmt.Printf("  %-8s  %8s  %6s  %7s  %9s  %s\n", "-----", "--------", "----", "------", "---------", "-----------")

	// Preset order first, then any level names only the history knows.
	order := config.DefaultPresets().Names()
	if presets, _, err := loadGameConfig(); err == nil {
		order = presets.Names()
	}
	seen := make(map[string]bool, len(summaries))
	printRow := func(name string) {
		s, ok := summaries[name]
		if !ok || seen[name] {
			return
		}
		seen[name] = true
		fmt.Printf("  %-8s  %8d  %6d  %7d  %9.1f  %s\n",
			s.Level, s.Games, s.BestScore, s.FewestMove, s.AvgStars, formatTime(s.LastPlayed))
	}
	for _, name := range order {
		printRow(name)
	}
	for name := range summaries {
		printRow(name)
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
