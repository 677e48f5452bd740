package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/omnitrix-arcade/internal/audio"
	"github.com/vovakirdan/omnitrix-arcade/internal/config"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/platform/tui"
	"github.com/vovakirdan/omnitrix-arcade/internal/progress"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAlien      string
	flagAny        bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mission]",
	Short: "Play an arena mission",
	Long: `Start an arena mission. Without an argument the next uncleared
mission of the campaign is played.

Controls:
  WASD/Arrows  - Move
  Space/J      - Basic attack
  K            - Special ability
  O/Tab        - Omnitrix (then 1-9 or arrows + Enter)
  P            - Pause
  R            - Restart (after the mission ends)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  omnitrix play
  omnitrix play desert_1 --alien xlr8
  omnitrix play vilgax_3 --any
  omnitrix play --difficulty hard --mute
  omnitrix play --config ./my-arena.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAlien, "alien", "", "Alien to start the mission as")
	playCmd.Flags().BoolVar(&flagAny, "any", false, "Allow locked missions and every alien")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			fail("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	rec := tui.NewRecorder(store, logger, flagDifficulty, true)
	save := rec.Save()

	missionID := ""
	if len(args) == 1 {
		mission, err := defs.LookupMission(args[0])
		if err != nil {
			fail("%v\nRun 'omnitrix missions' to see the campaign.", err)
		}
		if !flagAny && !progress.IsMissionUnlocked(save, mission) {
			fail("mission %q is locked; earn a star on the previous mission or pass --any", mission.ID)
		}
		missionID = mission.ID
	}

	startAlien := defs.AlienID(flagAlien)
	if startAlien != "" {
		if _, err := defs.LookupAlien(startAlien); err != nil {
			fail("%v\nRun 'omnitrix aliens' to see the roster.", err)
		}
		if !flagAny && !save.HasAlien(startAlien) {
			fail("alien %q is not unlocked yet", startAlien)
		}
	}

	arena.SetConfigPath(flagConfig)
	arena.SetDifficultyPreset(flagDifficulty)

	player := newCuePlayer(audio.ArenaBank(), logger)
	defer player.Close()

	game := arena.New()
	game.Configure(arena.Options{
		MissionID:  missionID,
		Save:       save,
		AllAliens:  flagAny,
		StartAlien: startAlien,
		Audio:      player,
		Logger:     logger,
	})

	if err := tui.Run(game, runtimeConfig(), tui.Options{Recorder: rec}); err != nil {
		fail("running game: %v", err)
	}
}

// newCuePlayer starts a player for bank, muted when --mute is set.
func newCuePlayer(bank audio.Bank, logger *log.Logger) *audio.CuePlayer {
	p := audio.NewCuePlayer(bank, logger)
	if flagMute {
		p.Mute()
		return p
	}
	p.Start()
	return p
}
