// memory is a memory-matching card game for the terminal.
//
// Usage:
//
//	memory play [level]      - Play (easy, medium or hard; menu if omitted)
//	memory levels            - List difficulty presets
//	memory stats [--reset]   - Show or clear saved stats
//	memory scores [level]    - Show the best finished games
//	memory serve             - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Stats database (default: ~/.memory-match/memory.db)
//	--config <path>  - Custom levels YAML
//	--theme <name>   - Card symbols: animals, letters, shapes
//	--seed <value>   - RNG seed for a reproducible board
//	--mute           - Disable sound
//	--log <path>     - Log file (default: ~/.memory-match/memory.log)
//
// Every flag default can also be set from the environment (MEMORY_DB,
// MEMORY_LEVELS, MEMORY_THEME, MEMORY_MUTE, MEMORY_LOG, MEMORY_LOG_LEVEL).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/config"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagTheme    string
	flagSeed     int64
	flagMute     bool
	flagLogPath  string
	flagLogLevel string
)

// settings supplies flag defaults from the environment. It is initialized
// before any init function runs so every command can use it.
var settings = loadSettings()

func loadSettings() config.Settings {
	s, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return s
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Match - flip cards and find the pairs",
	Long: `Memory Match is a card-matching game for young players.
Flip two cards per turn; matching symbols stay face up. Find every pair
with as few moves as you can to keep all three stars.

Available commands:
  play     - Play a game
  levels   - Show difficulty presets
  stats    - Show or reset saved stats
  scores   - Best finished games
  serve    - Start SSH server for remote play

Examples:
  memory play
  memory play easy --theme letters
  memory stats --reset
  memory scores hard
  memory serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", settings.DBPath, "Path to stats database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", settings.LevelsPath, "Path to custom levels YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", settings.Theme, "Card symbol theme")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", settings.Mute, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", settings.LogPath, "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
