package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Memory Match SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game starting at the level screen.
Stats and finished games are stored per server: all users share the same
best score and history. Sounds are played as the terminal bell of the
connecting user (disable with --mute).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.memory-match/host_key

Examples:
  memory serve                           # Listen on :23235 with auto-generated key
  memory serve --ssh :2222               # Listen on port 2222
  memory serve --host-key ./my_host_key  # Use specific host key
  memory serve --db ./memory.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", settings.SSHAddr, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", settings.HostKeyPath, "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", settings.IdleMinutes, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	presets, cat, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := settings
	s.SSHAddr = flagSSHAddr
	s.HostKeyPath = flagHostKey
	s.DBPath = flagDBPath
	s.IdleMinutes = flagIdleTimeout
	s.Mute = flagMute
	cfg := tui.SSHServerConfigFrom(s, presets, cat)

	server, err := tui.NewSSHServer(cfg, newLogger(os.Stderr, "memory-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Memory Match SSH server on %s\n", cfg.Address)
	fmt.Printf("Idle connections close after %s\n", cfg.IdleTimeout.Round(time.Minute))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
