// Package arena plugs the arena simulation into the arcade platform.
// It maps platform actions to sim input, draws the circular arena into
// the character grid and runs the alien-select overlay.
package arena

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/omnitrix-arcade/internal/config"
	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/sim"
	"github.com/vovakirdan/omnitrix-arcade/internal/progress"
	"github.com/vovakirdan/omnitrix-arcade/internal/registry"
)

// ID is the registry id of arena mode.
const ID = "arena"

// reviveFlashTime is how long the "REVIVED" banner stays up.
const reviveFlashTime = 1.2

// Options selects what the next Reset plays.
type Options struct {
	MissionID  string // Empty picks progress.NextMission(Save)
	Save       progress.SaveData
	AllAliens  bool // Unlock every alien regardless of Save
	StartAlien defs.AlienID
	Audio      sim.AudioSink
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

// Game implements registry.Game for arena missions.
type Game struct {
	opts    Options
	runtime core.RuntimeConfig
	cfg     config.ArenaConfig
	mission defs.Mission
	engine  *sim.Engine
	err     error

	hud         sim.HUD
	selecting   bool
	cursor      int
	reviveFlash core.Countdown
	reported    bool
	tick        uint64
}

// New creates an arena game that plays the next campaign mission of a
// fresh save.
func New() *Game {
	return &Game{opts: Options{Save: progress.Default()}}
}

// Configure replaces the options used by the next Reset.
func (g *Game) Configure(opts Options) {
	if opts.Save.UnlockedAliens == nil {
		opts.Save = progress.Default()
	}
	g.opts = opts
}

// UpdateSave replaces the save used by the next Reset, so a replay after
// a cleared mission continues the campaign.
func (g *Game) UpdateSave(save progress.SaveData) {
	g.opts.Save = save.Clone()
}

// SelectMission sets the mission of the next Reset. Empty follows the
// campaign.
func (g *Game) SelectMission(id string) {
	g.opts.MissionID = id
}

func (g *Game) ID() string {
	return ID
}

func (g *Game) Title() string {
	return "Omnitrix Arena"
}

// Reset builds a fresh engine for the configured mission. A bad mission
// id or config leaves the game in an error state that Render reports.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.engine != nil {
		g.engine.Destroy()
	}
	g.engine = nil
	g.err = nil
	g.hud = sim.HUD{}
	g.selecting = false
	g.cursor = 0
	g.reviveFlash = 0
	g.reported = false
	g.tick = 0

	cfg, err := config.LoadArena(configPath)
	if err != nil {
		if g.opts.Logger != nil {
			g.opts.Logger.Warn("arena config unusable, using defaults", "error", err)
		}
		cfg = config.DefaultArenaConfig()
	}
	if difficultyPreset != "" {
		config.ApplyArenaPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	mission, err := g.resolveMission()
	if err != nil {
		g.err = err
		return
	}
	g.mission = mission

	engine, err := sim.NewEngine(mission, g.unlocked(), sim.Options{
		Seed:       runtime.Seed,
		StartAlien: g.opts.StartAlien,
		Config:     &g.cfg,
		Listener: sim.ListenerFuncs{
			HUD:                func(h sim.HUD) { g.hud = h },
			PlayerDied:         func() { g.reviveFlash.Set(reviveFlashTime) },
			RequestAlienSelect: g.openSelect,
		},
		Audio:  g.opts.Audio,
		Logger: g.opts.Logger,
	})
	if err != nil {
		g.err = err
		return
	}
	g.engine = engine
	g.hud = engine.HUD()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

func (g *Game) resolveMission() (defs.Mission, error) {
	if g.opts.MissionID == "" {
		return progress.NextMission(g.opts.Save), nil
	}
	return defs.LookupMission(g.opts.MissionID)
}

func (g *Game) unlocked() []defs.AlienID {
	if g.opts.AllAliens {
		return defs.AllAliens()
	}
	return slices.Clone(g.opts.Save.UnlockedAliens)
}

// Resize refits the camera to a new terminal size without restarting.
// Cells are about twice as tall as wide, so the view is two rows per cell.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.engine != nil {
		g.engine.Resize(float64(w), float64(h*2))
	}
}

func (g *Game) openSelect() {
	g.selecting = true
	g.cursor = max(slices.Index(g.engine.Unlocked(), g.engine.Player().Alien.ID), 0)
}

// Step advances the mission by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || g.engine.Finished() {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if g.selecting {
		g.stepSelect(in)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.engine.Paused() {
			g.engine.Resume()
		} else {
			g.engine.Pause()
		}
	}

	dt := g.runtime.DT()
	g.engine.Update(sim.Input{
		Move:     in.Move(),
		Attack:   in.Has(core.ActionAttack),
		Special:  in.Has(core.ActionSpecial),
		Omnitrix: in.Has(core.ActionOmnitrix),
	}, dt)
	if !g.engine.Paused() {
		g.reviveFlash.Tick(dt)
	}

	res := core.StepResult{State: g.State()}
	if out, done := g.engine.Result(); done && !g.reported {
		g.reported = true
		res.Result = &core.MissionResult{
			MissionID:   out.MissionID,
			Alien:       string(out.Alien),
			Score:       out.Score,
			Stars:       out.Stars,
			Completed:   out.Completed,
			DamageDealt: out.DamageDealt,
			DamageTaken: out.DamageTaken,
			Seconds:     out.Elapsed,
		}
	}
	return res
}

// stepSelect drives the alien-select overlay. Digits pick directly,
// up/down move the cursor, Omnitrix or Back cancels.
func (g *Game) stepSelect(in core.InputFrame) {
	aliens := g.engine.Unlocked()
	switch {
	case in.Choice >= 1 && in.Choice <= len(aliens):
		g.choose(aliens[in.Choice-1])
	case in.Has(core.ActionConfirm):
		g.choose(aliens[g.cursor])
	case in.Has(core.ActionBack) || in.Has(core.ActionOmnitrix):
		g.selecting = false
		g.engine.Resume()
	case in.Has(core.ActionUp) || in.Has(core.ActionLeft):
		g.cursor = (g.cursor + len(aliens) - 1) % len(aliens)
	case in.Has(core.ActionDown) || in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % len(aliens)
	}
}

func (g *Game) choose(id defs.AlienID) {
	if err := g.engine.SelectAlien(id); err != nil {
		return
	}
	g.selecting = false
	g.hud = g.engine.HUD()
}

// State reports the score and whether the mission has ended.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.engine.Player().Score,
		GameOver: g.engine.Finished(),
		Paused:   g.engine.Paused() && !g.selecting,
	}
}

// Mission returns the mission the last Reset loaded.
func (g *Game) Mission() defs.Mission { return g.mission }

// Err returns why the last Reset could not start a mission.
func (g *Game) Err() error { return g.err }

// Selecting reports whether the alien-select overlay is open.
func (g *Game) Selecting() bool { return g.selecting }

// Engine exposes the running simulation, nil after a failed Reset.
func (g *Game) Engine() *sim.Engine { return g.engine }

// Snapshot returns the simulation snapshot for determinism checks.
func (g *Game) Snapshot() sim.Snapshot {
	if g.engine == nil {
		return sim.Snapshot{}
	}
	return g.engine.Snapshot()
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
