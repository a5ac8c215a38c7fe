package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the best finished games",
	Long: `Display the best finished games, highest score first and fewest
moves breaking ties. Without a level all levels are listed together.

Examples:
  memory scores
  memory scores easy
  memory scores hard --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of games to show")
}

func runScores(_ *cobra.Command, args []string) {
	presets, _, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var level, title string
	title = "All levels"
	if len(args) == 1 {
		l, err := presets.Get(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'memory levels' to see available levels.")
			os.Exit(1)
		}
		level, title = l.Name, l.Title
	}

	logger := newLogger(os.Stderr, "memory")
	store, _ := openStats(logger)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	games, err := store.TopGames(level, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best games - %s\n", title)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games finished yet.")
		fmt.Println()
		fmt.Println("Play 'memory play' and match every pair to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %5s  %5s  %-5s  %s\n", "Rank", "Level", "Score", "Moves", "Stars", "Date")
	fmt.Printf("  %-4s  %-8s  %5s  %5s  %-5s  %s\n", "----", "-----", "-----", "-----", "-----", "----")

	for i, g := range games {
		stars := strings.Repeat("*", g.Stars) + strings.Repeat(".", 3-g.Stars)
		fmt.Printf("  %-4d  %-8s  %5d  %5d  %-5s  %s\n",
			i+1, g.Level, g.Score, g.Moves, stars, formatTime(g.CreatedAt))
	}
}
