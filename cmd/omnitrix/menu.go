package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/omnitrix-arcade/internal/audio"
	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/classic"
	"github.com/vovakirdan/omnitrix-arcade/internal/platform/tui"
	"github.com/vovakirdan/omnitrix-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick missions interactively",
	Long: `Start the mission picker. Worlds and missions are listed with the
stars earned so far; after a mission you return to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  C            - Classic side-scroller
  Tab          - Scoreboard
  Q            - Quit

Examples:
  omnitrix menu
  omnitrix menu --any --mute
  omnitrix menu --db ./omnitrix.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagAny, "any", false, "Allow locked missions and every alien")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	rec := tui.NewRecorder(store, logger, flagDifficulty, true)

	arena.SetDifficultyPreset(flagDifficulty)
	classic.SetDifficultyPreset(flagDifficulty)

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(rec.Save(), flagAny, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return
		case res.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}
			continue
		case res.Mode == "":
			return
		}

		cfg.Seed = flagSeed
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if playFromMenu(res, rec, cfg, logger) {
			return
		}
	}
}

// playFromMenu runs the picked mode and reports whether the player quit
// the program instead of returning to the menu.
func playFromMenu(res tui.MenuResult, rec *tui.Recorder, cfg core.RuntimeConfig, logger *log.Logger) bool {
	var game registry.Game
	var player *audio.CuePlayer

	switch res.Mode {
	case tui.ModeClassic:
		player = newCuePlayer(audio.ClassicBank(), logger)
		g := classic.New()
		g.Configure(classic.Options{Sound: player, Logger: logger})
		game = g
	default:
		player = newCuePlayer(audio.ArenaBank(), logger)
		g := arena.New()
		g.Configure(arena.Options{
			MissionID: res.MissionID,
			Save:      rec.Save(),
			AllAliens: flagAny,
			Audio:     player,
			Logger:    logger,
		})
		game = g
	}
	defer player.Close()

	logger.Debug("starting game", "mode", res.Mode, "mission", res.MissionID)
	quit, err := tui.RunGame(game, cfg, tui.Options{Recorder: rec, AllowBack: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return true
	}
	return quit
}
