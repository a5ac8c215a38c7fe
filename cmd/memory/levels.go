package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets in effect, including any --config override.
With --dump, prints the built-in levels.yaml to use as a template.`,
	Run:   runLevels,
}

var flagDump bool

func init() {
	levelsCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the built-in presets file and exit")
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagDump {
		//nolint:errcheck // stdout
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	presets, cat, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Levels (theme: %s)\n", cat.Title)
	fmt.Println()

	fmt.Printf("  %-8s  %-8s  %5s  %5s  %7s  %8s  %6s\n", "Name", "Title", "Pairs", "Cards", "Columns", "Delay", "Flip")
	fmt.Printf("  %-8s  %-8s  %5s  %5s  %7s  %8s  %6s\n", "----", "-----", "-----", "-----", "-------", "-----", "----")

	for _, l := range presets.Levels {
		fmt.Printf("  %-8s  %-8s  %5d  %5d  %7d  %8s  %6s\n",
			l.Name, l.Title, l.Pairs, l.Cards(), l.Columns, l.MatchDelay(), l.FlipDuration())
	}

	fmt.Println()
	fmt.Println("Run 'memory play <name>' to play a level.")
}
