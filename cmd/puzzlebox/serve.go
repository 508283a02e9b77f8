package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/puzzlebox/internal/games/g2048"
	"github.com/dkrasnov/puzzlebox/internal/platform/tui"
	"github.com/dkrasnov/puzzlebox/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH game server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets their own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses the path from the app config, or auto-generates one
    at ~/.puzzlebox/ssh_host_key

Examples:
  puzzlebox serve                           # Listen per app config
  puzzlebox serve --ssh :2222               # Listen on port 2222
  puzzlebox serve --host-key ./my_host_key  # Use specific host key
  puzzlebox serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), default from app config")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	addr := flagSSHAddr
	if addr == "" {
		addr = appCfg.SSH.Address
	}
	hostKey := flagHostKey
	if hostKey == "" {
		hostKey = appCfg.SSH.HostKeyPath
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		g2048.SetBestScoreStore(store.BestScoreCell("2048"))
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting puzzlebox SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 2222")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
