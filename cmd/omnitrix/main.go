// omnitrix is a terminal action game: top-down arena missions across five
// worlds and a classic side-scroller, both played with Omnitrix aliens.
//
// Usage:
//
//	omnitrix list              - List game modes
//	omnitrix play [mission]    - Play an arena mission (default: next in the campaign)
//	omnitrix classic           - Play the side-scroller
//	omnitrix missions          - Show the campaign and earned stars
//	omnitrix aliens            - Show the Omnitrix roster
//	omnitrix progress          - Show or reset campaign progress
//	omnitrix scores [mode]     - Show high scores
//	omnitrix runs              - Show recent runs
//	omnitrix menu              - Pick missions interactively
//	omnitrix serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.omnitrix/omnitrix.db)
//	--log <path>    - Write the structured log to a file
//	--verbose       - Log debug events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	// Import modes to register them
	_ "github.com/vovakirdan/omnitrix-arcade/internal/games/arena"
	_ "github.com/vovakirdan/omnitrix-arcade/internal/games/classic"
	"github.com/vovakirdan/omnitrix-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "omnitrix",
	Short: "Omnitrix Arcade - alien action in your terminal",
	Long: `Omnitrix Arcade is a terminal action game. Fight through arena
missions in five worlds, unlock aliens as you earn stars, or run the
classic side-scroller.

Available commands:
  list      - Show game modes
  play      - Play an arena mission
  classic   - Play the side-scroller
  missions  - Show the campaign
  aliens    - Show the Omnitrix roster
  progress  - Show or reset campaign progress
  scores    - View high scores
  runs      - View recent runs
  menu      - Interactive mission picker
  serve     - Start SSH server for remote play

Examples:
  omnitrix play
  omnitrix play bellwood_2 --alien fourarms
  omnitrix classic --level 2
  omnitrix menu --log ./omnitrix.log
  omnitrix serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.omnitrix/omnitrix.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write the log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug events")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(classicCmd)
	rootCmd.AddCommand(missionsCmd)
	rootCmd.AddCommand(aliensCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns the command logger. The TUI owns the terminal, so
// without --log everything is discarded. The returned func closes the
// log file.
func newLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "omnitrix",
		Level:           level,
	})
	return logger, closeFn
}

// openStore opens the database. Games still run without it, so a failure
// only warns.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database for commands that only read or write it.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("could not open database: %v", err)
	}
	return store
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
