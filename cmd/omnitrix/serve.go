package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/omnitrix-arcade/internal/config"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/classic"
	"github.com/vovakirdan/omnitrix-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Omnitrix SSH server",
	Long: `Start an SSH server that lets players connect and play.

Each SSH connection gets its own session with the mission picker.
Runs and scores go to the server database (all players share the
leaderboard); campaign progress lasts for the session. Sound is
disabled for remote players.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.omnitrix/host_key

Examples:
  omnitrix serve                           # Listen on :23234 with auto-generated key
  omnitrix serve --ssh :2222               # Listen on port 2222
  omnitrix serve --host-key ./my_host_key  # Use specific host key
  omnitrix serve --db ./omnitrix.db        # Use specific database

Players can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			fail("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	arena.SetDifficultyPreset(flagDifficulty)
	classic.SetDifficultyPreset(flagDifficulty)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Difficulty = flagDifficulty

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Omnitrix SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
