package sim

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/omnitrix-arcade/internal/config"
	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// ErrDestroyed is returned by commands issued after Destroy.
var ErrDestroyed = errors.New("sim: engine destroyed")

// particleSeedSalt keeps the cosmetic RNG stream apart from gameplay.
const particleSeedSalt = 0x5eed

// Options configures an Engine. The zero value is usable.
type Options struct {
	Seed       int64
	StartAlien defs.AlienID        // Used when unlocked
	Config     *config.ArenaConfig // nil uses config.DefaultArenaConfig
	Listener   Listener
	Audio      AudioSink
	Logger     *log.Logger
}

// Outcome summarises a finished mission.
type Outcome struct {
	MissionID   string
	Alien       defs.AlienID
	Score       int
	Stars       int
	Completed   bool
	DamageDealt int
	DamageTaken int
	Elapsed     float64
}

// Engine runs one arena mission. It owns every entity and is driven by
// calling Update once per frame from a single goroutine.
type Engine struct {
	mission  defs.Mission
	unlocked []defs.AlienID
	cfg      config.ArenaConfig

	arena     *Arena
	player    *Player
	world     *WaveDirector
	particles *ParticleSystem
	camera    *Camera
	listener  Listener
	logger    *log.Logger

	paused    bool
	destroyed bool
	finished  bool

	completeTriggered bool
	completeDelay     core.Countdown

	frame   uint64
	elapsed float64
	lastHUD HUD
	hudSent bool
	outcome Outcome
}

// NewEngine validates the mission and unlocked aliens and builds a ready
// engine. The starting alien is opts.StartAlien if unlocked, else the
// mission's first unlock if unlocked, else the first unlocked alien, else
// Heatblast.
func NewEngine(mission defs.Mission, unlocked []defs.AlienID, opts Options) (*Engine, error) {
	world, err := NewWaveDirector(mission)
	if err != nil {
		return nil, err
	}
	for _, id := range unlocked {
		if _, err := defs.LookupAlien(id); err != nil {
			return nil, fmt.Errorf("sim: unlocked aliens: %w", err)
		}
	}

	cfg := config.DefaultArenaConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	listener := opts.Listener
	if listener == nil {
		listener = NopListener{}
	}

	particles := NewParticleSystem(opts.Seed^particleSeedSalt, cfg.Engine.MaxParticles)
	arena := NewArena(mission.ArenaRadius, cfg, opts.Seed)
	arena.Effects = particles
	if opts.Audio != nil {
		arena.Audio = opts.Audio
	}
	arena.TotalWaves = world.TotalWaves

	start := startingAlien(mission, unlocked, opts.StartAlien)
	player, err := NewPlayer(arena.IDs, start, cfg.Player)
	if err != nil {
		return nil, err
	}

	camera := NewCamera(cfg.Engine.ViewWidth, cfg.Engine.ViewHeight)

	logger.Debug("mission started", "mission", mission.ID, "alien", start, "seed", opts.Seed)
	return &Engine{
		mission:   mission,
		unlocked:  slices.Clone(unlocked),
		cfg:       cfg,
		arena:     arena,
		player:    player,
		world:     world,
		particles: particles,
		camera:    camera,
		listener:  listener,
		logger:    logger,
	}, nil
}

func startingAlien(mission defs.Mission, unlocked []defs.AlienID, preferred defs.AlienID) defs.AlienID {
	if preferred != "" && slices.Contains(unlocked, preferred) {
		return preferred
	}
	if len(mission.UnlockAliens) > 0 && slices.Contains(unlocked, mission.UnlockAliens[0]) {
		return mission.UnlockAliens[0]
	}
	if len(unlocked) > 0 {
		return unlocked[0]
	}
	return defs.Heatblast
}

// Update advances the simulation by dt seconds, clamped to the configured
// maximum step. It does nothing while paused, finished or destroyed.
func (g *Engine) Update(in Input, dt float64) {
	if g.paused || g.destroyed || g.finished || dt < 0 {
		return
	}
	if dt > g.cfg.Engine.MaxDT {
		dt = g.cfg.Engine.MaxDT
	}
	g.frame++
	g.elapsed += dt

	if in.Omnitrix && len(g.unlocked) > 1 {
		g.paused = true
		g.listener.OnRequestAlienSelect()
		return
	}

	a, p := g.arena, g.player
	a.UpdatePlayer(p, in, dt)
	a.UpdateEnemies(p, dt)
	waveWasActive := g.world.WaveActive
	a.Enemies = append(a.Enemies, a.UpdateWorld(g.world, dt)...)
	if !waveWasActive && g.world.WaveActive {
		g.logger.Debug("wave spawned", "mission", g.mission.ID, "wave", g.world.DisplayWave(), "enemies", a.LivingEnemies())
	}

	if g.world.AllWavesSpawned && g.mission.IsBoss && a.Boss == nil && !g.world.BossSpawned {
		g.spawnBoss()
	}
	if a.BossAlive() {
		phase := a.Boss.Phase
		a.Enemies = append(a.Enemies, a.UpdateBoss(a.Boss, p, dt)...)
		if a.Boss.Phase != phase {
			g.logger.Debug("boss phase changed", "boss", a.Boss.Def.ID, "phase", a.Boss.Phase)
		}
	}

	a.Projectiles = UpdateProjectiles(a.Projectiles, dt, a.Radius)
	for range a.ResolveCollisions(p) {
		g.listener.OnPlayerDied()
	}

	g.particles.Update(dt)
	g.camera.Follow(p.Pos, dt, g.cfg.Engine.CameraDecay)
	a.PruneEnemies()
	a.Projectiles = PruneProjectiles(a.Projectiles)

	g.checkComplete(dt)
	g.sendHUD()
}

func (g *Engine) spawnBoss() {
	boss, err := g.arena.NewBoss(g.mission.Boss)
	if err != nil {
		// The mission was validated, so the boss id is known.
		panic(err)
	}
	g.arena.Boss = boss
	g.world.BossSpawned = true
	g.arena.Audio.Play(core.CueBossAppear)
	g.particles.AddFloatingText(core.V(0, -50), "BOSS FIGHT!", "#ff0044", 32)
	g.logger.Debug("boss spawned", "boss", boss.Def.ID, "health", boss.MaxHealth)
}

func (g *Engine) checkComplete(dt float64) {
	p := g.player
	if !g.completeTriggered && IsLevelComplete(g.world, g.arena.Enemies, g.arena.BossAlive()) {
		g.completeTriggered = true
		g.completeDelay.Set(g.cfg.Engine.CompleteDelay)
		g.arena.Audio.Play(core.CueLevelComplete)
		g.particles.AddFloatingText(p.Pos, "LEVEL CLEAR!", "#00e500", 28)
		return
	}
	if !g.completeTriggered {
		return
	}
	g.completeDelay.Tick(dt)
	if !g.completeDelay.Expired() {
		return
	}

	g.finished = true
	g.outcome = Outcome{
		MissionID:   g.mission.ID,
		Alien:       p.Alien.ID,
		Score:       p.Score,
		Stars:       Stars(p.Health, p.MaxHealth),
		Completed:   true,
		DamageDealt: p.DamageDealt,
		DamageTaken: p.DamageTaken,
		Elapsed:     g.elapsed,
	}
	g.logger.Debug("mission complete", "mission", g.mission.ID, "score", p.Score, "stars", g.outcome.Stars)
	g.listener.OnLevelComplete(g.outcome.Score, g.outcome.Stars)
}

// HUD returns the current status line.
func (g *Engine) HUD() HUD {
	p := g.player
	h := HUD{
		Health:             p.Health,
		MaxHealth:          p.MaxHealth,
		Score:              p.Score,
		Wave:               g.world.DisplayWave(),
		TotalWaves:         g.world.TotalWaves,
		CurrentAlien:       p.Alien.ID,
		SpecialCooldownPct: p.SpecialPct(),
	}
	if b := g.arena.Boss; g.arena.BossAlive() {
		h.HasBoss = true
		h.BossHealth = b.Health
		h.BossMaxHealth = b.MaxHealth
		h.BossName = b.Def.Name
	}
	return h
}

func (g *Engine) sendHUD() {
	h := g.HUD()
	if g.hudSent && h == g.lastHUD {
		return
	}
	g.lastHUD, g.hudSent = h, true
	g.listener.OnHUD(h)
}

// SelectAlien transforms the player and resumes play. Only unlocked
// aliens may be selected.
func (g *Engine) SelectAlien(id defs.AlienID) error {
	if g.destroyed {
		return ErrDestroyed
	}
	if !slices.Contains(g.unlocked, id) {
		return fmt.Errorf("sim: select alien: %q is not unlocked", id)
	}
	if err := SwitchAlien(g.player, id); err != nil {
		return err
	}
	g.arena.Audio.Play(core.CueTransform)
	g.paused = false
	g.logger.Debug("alien selected", "alien", id)
	return nil
}

// Pause freezes Update. Pausing twice is the same as pausing once.
func (g *Engine) Pause() { g.paused = true }

// Resume lets Update run again.
func (g *Engine) Resume() { g.paused = false }

// Destroy stops the engine for good.
func (g *Engine) Destroy() { g.destroyed = true }

// Result returns the outcome once the mission has finished.
func (g *Engine) Result() (Outcome, bool) {
	return g.outcome, g.finished
}

// Resize refits the camera to a view of w by h units.
func (g *Engine) Resize(w, h float64) { g.camera.Resize(w, h) }

func (g *Engine) Paused() bool { return g.paused }
func (g *Engine) Finished() bool { return g.finished }
func (g *Engine) Destroyed() bool { return g.destroyed }
func (g *Engine) Mission() defs.Mission { return g.mission }
func (g *Engine) Unlocked() []defs.AlienID { return slices.Clone(g.unlocked) }
func (g *Engine) Player() *Player { return g.player }
func (g *Engine) Enemies() []*Enemy { return g.arena.Enemies }
func (g *Engine) Boss() *Boss { return g.arena.Boss }
func (g *Engine) Projectiles() []*Projectile { return g.arena.Projectiles }
func (g *Engine) Particles() *ParticleSystem { return g.particles }
func (g *Engine) Camera() *Camera { return g.camera }
func (g *Engine) World() *WaveDirector { return g.world }
func (g *Engine) Elapsed() float64 { return g.elapsed }
