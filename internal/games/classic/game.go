// Package classic implements the side-scrolling campaign: Ben runs right
// through four levels, unlocking one alien per level, and fights robots
// and drones with whichever form the Omnitrix gives him.
package classic

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/omnitrix-arcade/internal/config"
	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/registry"
)

// ID is the registry id of the side-scroller.
const ID = "classic"

// Stage timings in seconds.
const (
	splashTapDelay   = 0.5
	introTapDelay    = 2
	introAutoAdvance = 4
	clearTapDelay    = 1.5
	clearAutoAdvance = 5
	victoryTapDelay  = 2.5
	tapCooldown      = 0.3
)

// fxSeedSalt separates the cosmetic RNG stream from spawn randomness.
const fxSeedSalt = 0x5eed

// Stage is the campaign screen currently shown.
type Stage int

const (
	StageSplash Stage = iota
	StageIntro
	StagePlaying
	StageComplete
	StageVictory
	StageSelect
)

func (s Stage) String() string {
	switch s {
	case StageSplash:
		return "splash"
	case StageIntro:
		return "intro"
	case StagePlaying:
		return "playing"
	case StageComplete:
		return "complete"
	case StageVictory:
		return "victory"
	case StageSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Sound receives cue triggers. audio.CuePlayer satisfies it.
type Sound interface {
	Play(cue core.Cue)
}

type nopSound struct{}

func (nopSound) Play(core.Cue) {}

// Options configures the next Reset.
type Options struct {
	StartLevel int  // 0-based
	SkipSplash bool // Start straight at the first level intro
	Sound      Sound
	Logger     *log.Logger
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's preset.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game for the side-scroller.
type Game struct {
	opts       Options
	runtime    core.RuntimeConfig
	cfg        config.ClassicConfig
	difficulty *config.DifficultyManager
	sound      Sound
	logger     *log.Logger
	rng        *core.RNG
	fx         *core.RNG

	stage      Stage
	stageTimer float64
	totalTime  float64
	tapGuard   core.Countdown
	paused     bool
	tick       uint64

	levels     []Level
	levelIndex int
	score      int
	cursor     int

	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	particles   []Particle
	cameraX     float64
	spawned     []bool
	allSpawned  bool
	flash       core.Countdown

	levelTime   float64
	damageDealt int
	damageTaken int
	result      *core.MissionResult
}

// New creates a side-scroller that opens on the splash screen.
func New() *Game {
	return &Game{}
}

// Configure replaces the options used by the next Reset.
func (g *Game) Configure(opts Options) {
	g.opts = opts
}

func (g *Game) ID() string {
	return ID
}

func (g *Game) Title() string {
	return "Omnitrix Classic"
}

// Reset reloads the config and returns to the splash screen, or straight
// into the configured level when SkipSplash is set.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = g.opts.Logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	cfg, err := config.LoadClassic(configPath)
	if err != nil {
		g.logger.Warn("classic config unusable, using defaults", "error", err)
		cfg = config.DefaultClassicConfig()
	}
	if difficultyPreset != "" {
		config.ApplyClassicPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.sound = g.opts.Sound
	if g.sound == nil {
		g.sound = nopSound{}
	}
	g.rng = core.NewRNG(runtime.Seed)
	g.fx = core.NewRNG(runtime.Seed ^ fxSeedSalt)

	g.tick = 0
	g.totalTime = 0
	g.paused = false
	g.result = nil
	g.levels = Levels()
	g.startGame()
	if g.opts.SkipSplash {
		g.startLevel()
		return
	}
	g.changeStage(StageSplash)
}

func (g *Game) startGame() {
	g.levelIndex = core.Clamp(g.opts.StartLevel, 0, len(g.levels)-1)
	g.score = 0
	g.player = g.newPlayer()
	// Levels skipped by StartLevel still grant their aliens.
	for _, l := range g.levels[:g.levelIndex] {
		g.player.Unlocked = append(g.player.Unlocked, l.NewAlien)
	}
}

func (g *Game) startLevel() {
	level := g.levels[g.levelIndex]
	g.enemies = nil
	g.projectiles = nil
	g.particles = nil
	g.cameraX = 0
	g.spawned = make([]bool, len(level.Spawns))
	g.allSpawned = false
	g.levelTime = 0
	g.damageDealt = 0
	g.damageTaken = 0

	p := g.player
	p.Pos = core.V(100, g.cfg.Physics.GroundY-p.H)
	p.Vel = core.Vec2{}
	p.Grounded = true
	if !slices.Contains(p.Unlocked, level.NewAlien) {
		p.Unlocked = append(p.Unlocked, level.NewAlien)
	}

	g.changeStage(StageIntro)
	g.sound.Play(core.CueLevelStart)
	g.logger.Debug("level started", "level", level.ID, "aliens", len(p.Unlocked))
}

func (g *Game) changeStage(s Stage) {
	g.stage = s
	g.stageTimer = 0
	g.tapGuard.Set(tapCooldown)
}

func (g *Game) completeLevel() {
	level := g.levels[g.levelIndex]
	g.changeStage(StageComplete)
	g.sound.Play(core.CueVictory)
	g.result = &core.MissionResult{
		MissionID:   level.ID,
		Alien:       string(g.player.Alien),
		Score:       g.score,
		Completed:   true,
		DamageDealt: g.damageDealt,
		DamageTaken: g.damageTaken,
		Seconds:     g.levelTime,
	}
	g.logger.Debug("level complete", "level", level.ID, "score", g.score)
}

func (g *Game) nextLevel() {
	g.levelIndex++
	if g.levelIndex >= len(g.levels) {
		g.levelIndex = len(g.levels) - 1
		g.changeStage(StageVictory)
		g.sound.Play(core.CueVictory)
		return
	}
	g.startLevel()
}

// Step advances one tick. The result of a cleared level is returned on
// the tick it clears.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.stage == StagePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.DT()
	if dt > g.cfg.Physics.MaxDT {
		dt = g.cfg.Physics.MaxDT
	}
	g.tick++
	g.totalTime += dt
	g.stageTimer += dt
	g.tapGuard.Tick(dt)

	tapped := g.tapGuard.Expired() &&
		(in.Has(core.ActionConfirm) || in.Has(core.ActionJump) || in.Has(core.ActionAttack))

	switch g.stage {
	case StageSplash:
		if g.stageTimer > splashTapDelay && tapped {
			g.sound.Play(core.CueMenuSelect)
			g.startGame()
			g.startLevel()
		}
	case StageIntro:
		if (g.stageTimer > introTapDelay && tapped) || g.stageTimer > introAutoAdvance {
			g.changeStage(StagePlaying)
		}
	case StagePlaying:
		g.levelTime += dt
		g.updatePlaying(frameInput{
			left:     in.Has(core.ActionLeft),
			right:    in.Has(core.ActionRight),
			jump:     in.Has(core.ActionJump) || in.Has(core.ActionUp),
			attack:   in.Has(core.ActionAttack),
			omnitrix: in.Has(core.ActionOmnitrix),
		}, dt)
	case StageSelect:
		g.stepSelect(in)
	case StageComplete:
		if (g.stageTimer > clearTapDelay && tapped) || g.stageTimer > clearAutoAdvance {
			g.nextLevel()
		}
	case StageVictory:
		if g.stageTimer > victoryTapDelay && tapped {
			g.changeStage(StageSplash)
		}
	}

	res := core.StepResult{State: g.State(), Result: g.result}
	g.result = nil
	return res
}

// stepSelect picks an alien by digit or cursor; Back or Omnitrix cancels.
func (g *Game) stepSelect(in core.InputFrame) {
	aliens := g.player.Unlocked
	switch {
	case in.Choice >= 1 && in.Choice <= len(aliens):
		g.transform(aliens[in.Choice-1])
		g.changeStage(StagePlaying)
	case in.Has(core.ActionConfirm):
		g.transform(aliens[g.cursor])
		g.changeStage(StagePlaying)
	case in.Has(core.ActionBack) || in.Has(core.ActionOmnitrix):
		g.changeStage(StagePlaying)
	case in.Has(core.ActionUp) || in.Has(core.ActionLeft):
		g.cursor = (g.cursor + len(aliens) - 1) % len(aliens)
	case in.Has(core.ActionDown) || in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % len(aliens)
	}
}

// State reports the campaign score. The run is over on the victory screen.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.stage == StageVictory,
		Paused:   g.paused,
	}
}

// Stage returns the current campaign screen.
func (g *Game) Stage() Stage { return g.stage }

// Level returns the level being played.
func (g *Game) Level() Level { return g.levels[g.levelIndex] }

// LevelIndex returns the 0-based level position.
func (g *Game) LevelIndex() int { return g.levelIndex }

// Player returns Ben.
func (g *Game) Player() *Player { return g.player }

// Enemies returns the live enemies.
func (g *Game) Enemies() []*Enemy { return g.enemies }

// Projectiles returns the player's projectiles in flight.
func (g *Game) Projectiles() []*Projectile { return g.projectiles }

// CameraX returns the left edge of the view in level units.
func (g *Game) CameraX() float64 { return g.cameraX }

// AllSpawned reports whether every batch of the level has been released.
func (g *Game) AllSpawned() bool { return g.allSpawned }

// Unlocked returns the aliens Ben can currently pick.
func (g *Game) Unlocked() []defs.AlienID { return slices.Clone(g.player.Unlocked) }

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
