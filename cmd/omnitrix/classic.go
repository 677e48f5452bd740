package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/omnitrix-arcade/internal/audio"
	"github.com/vovakirdan/omnitrix-arcade/internal/config"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/classic"
	"github.com/vovakirdan/omnitrix-arcade/internal/platform/tui"
)

var (
	flagLevel      int
	flagSkipSplash bool
)

var classicCmd = &cobra.Command{
	Use:   "classic",
	Short: "Play the side-scroller",
	Long: `Start Omnitrix Classic, a side-scrolling run through four levels.
Each level adds an alien to the Omnitrix.

Controls:
  A/D or Left/Right  - Move
  W/Up               - Jump
  Space/J            - Attack
  O/Tab              - Omnitrix (then a number)
  Enter              - Continue
  P                  - Pause
  R                  - Restart (after the run ends)
  Q/Ctrl+C           - Quit

Examples:
  omnitrix classic
  omnitrix classic --level 3 --skip-splash
  omnitrix classic --difficulty easy --mute`,
	Args: cobra.NoArgs,
	Run:  runClassic,
}

func init() {
	classicCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (earlier aliens are granted)")
	classicCmd.Flags().BoolVar(&flagSkipSplash, "skip-splash", false, "Start at the level intro")
	classicCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom classic config YAML")
	classicCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	classicCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runClassic(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	levels := len(classic.Levels())
	if flagLevel < 1 || flagLevel > levels {
		fail("level must be between 1 and %d", levels)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			fail("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	classic.SetConfigPath(flagConfig)
	classic.SetDifficultyPreset(flagDifficulty)

	player := newCuePlayer(audio.ClassicBank(), logger)
	defer player.Close()

	game := classic.New()
	game.Configure(classic.Options{
		StartLevel: flagLevel - 1,
		SkipSplash: flagSkipSplash,
		Sound:      player,
		Logger:     logger,
	})

	// Side-scroller runs never touch campaign progress.
	rec := tui.NewRecorder(store, logger, flagDifficulty, false)
	if err := tui.Run(game, runtimeConfig(), tui.Options{Recorder: rec}); err != nil {
		fail("running game: %v", err)
	}
}
