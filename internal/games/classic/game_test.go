package classic

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/registry"
)

var testRuntime = core.RuntimeConfig{ScreenW: 120, ScreenH: 36, TickRate: 60, Seed: 7}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func steps(g *Game, n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

// newPlaying returns a game already in the playing stage with no pending
// enemy batches.
func newPlaying(t *testing.T, opts Options) *Game {
	t.Helper()
	opts.SkipSplash = true
	g := New()
	g.Configure(opts)
	g.Reset(testRuntime)
	g.changeStage(StagePlaying)
	for i := range g.spawned {
		g.spawned[i] = true
	}
	return g
}

func groundRobot(g *Game, x float64) *Enemy {
	g.spawnEnemy(x, Robot, 0, 1)
	e := g.enemies[len(g.enemies)-1]
	e.Pos.Y = g.cfg.Physics.GroundY - e.H
	return e
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(*Game); !ok {
		t.Errorf("Create returned %T", g)
	}
}

func TestStageFlow(t *testing.T) {
	g := New()
	g.Reset(testRuntime)

	if g.Stage() != StageSplash {
		t.Fatalf("stage = %v, want splash", g.Stage())
	}

	g.Step(frame(core.ActionConfirm))
	if g.Stage() != StageSplash {
		t.Error("splash accepted a tap before its delay")
	}

	steps(g, 40, core.NewInputFrame())
	g.Step(frame(core.ActionConfirm))
	if g.Stage() != StageIntro {
		t.Fatalf("stage = %v, want intro", g.Stage())
	}
	if !slices.Equal(g.Unlocked(), []defs.AlienID{defs.Heatblast}) {
		t.Errorf("unlocked = %v", g.Unlocked())
	}

	steps(g, 60, core.NewInputFrame())
	if g.Stage() != StageIntro {
		t.Error("intro advanced before its auto delay")
	}
	steps(g, 190, core.NewInputFrame())
	if g.Stage() != StagePlaying {
		t.Errorf("stage = %v, want playing after auto advance", g.Stage())
	}
}

func TestStartLevelGrantsEarlierAliens(t *testing.T) {
	g := New()
	g.Configure(Options{StartLevel: 2, SkipSplash: true})
	g.Reset(testRuntime)

	want := []defs.AlienID{defs.Heatblast, defs.FourArms, defs.XLR8}
	if !slices.Equal(g.Unlocked(), want) {
		t.Errorf("unlocked = %v, want %v", g.Unlocked(), want)
	}
	if g.Level().Name != "Wild Forest" {
		t.Errorf("level = %q", g.Level().Name)
	}
}

func TestJumpAndLand(t *testing.T) {
	g := newPlaying(t, Options{})
	p := g.Player()
	ground := g.cfg.Physics.GroundY - p.H

	g.Step(frame(core.ActionJump))
	if p.Grounded {
		t.Fatal("jump did not leave the ground")
	}
	want := g.cfg.Physics.JumpVelocity + g.cfg.Physics.Gravity/60
	if !near(p.Vel.Y, want) {
		t.Errorf("vel.y = %v, want %v", p.Vel.Y, want)
	}

	steps(g, 90, core.NewInputFrame())
	if !p.Grounded || !near(p.Pos.Y, ground) {
		t.Errorf("not landed: grounded=%v y=%v", p.Grounded, p.Pos.Y)
	}
}

func TestMovement(t *testing.T) {
	t.Run("left edge follows camera", func(t *testing.T) {
		g := newPlaying(t, Options{})
		steps(g, 60, frame(core.ActionLeft))
		if p := g.Player(); p.Pos.X < g.CameraX() || p.Facing != -1 {
			t.Errorf("x=%v camera=%v facing=%v", p.Pos.X, g.CameraX(), p.Facing)
		}
	})

	t.Run("friction stops", func(t *testing.T) {
		g := newPlaying(t, Options{})
		g.Step(frame(core.ActionRight))
		if v := g.Player().Vel.X; !near(v, g.cfg.Physics.BaseSpeed) {
			t.Fatalf("vel.x = %v", v)
		}
		steps(g, 60, core.NewInputFrame())
		if v := g.Player().Vel.X; v != 0 {
			t.Errorf("vel.x = %v after friction", v)
		}
	})

	t.Run("alien speed", func(t *testing.T) {
		g := newPlaying(t, Options{StartLevel: 2})
		g.transform(defs.XLR8)
		g.Step(frame(core.ActionRight))
		if v := g.Player().Vel.X; v != 520 {
			t.Errorf("vel.x = %v, want 520", v)
		}
	})
}

func TestBenPunch(t *testing.T) {
	g := newPlaying(t, Options{})
	p := g.Player()
	e := groundRobot(g, p.Pos.X+p.W+5)

	g.Step(frame(core.ActionAttack))
	if e.Health != 2 || !e.Hit.Active() {
		t.Fatalf("health=%d hit=%v", e.Health, e.Hit.Active())
	}
	g.Step(frame(core.ActionAttack))
	if e.Health != 2 {
		t.Errorf("attack cooldown ignored: health=%d", e.Health)
	}
}

func TestFireballConsumedOnHit(t *testing.T) {
	g := newPlaying(t, Options{})
	g.transform(defs.Heatblast)
	p := g.Player()
	e := groundRobot(g, p.Pos.X+p.W+100)
	other := groundRobot(g, p.Pos.X+p.W+100)

	g.Step(frame(core.ActionAttack))
	if len(g.Projectiles()) != 1 || g.Projectiles()[0].Kind != Fireball {
		t.Fatalf("projectiles = %v", g.Projectiles())
	}
	steps(g, 20, core.NewInputFrame())

	hits := (3 - e.Health) + (3 - other.Health)
	if hits != 2 {
		t.Errorf("total damage = %d, want one fireball hit of 2", hits)
	}
	if len(g.Projectiles()) != 0 {
		t.Error("fireball survived its hit")
	}
}

func TestFourArmsMeleeAndWave(t *testing.T) {
	g := newPlaying(t, Options{StartLevel: 1})
	g.transform(defs.FourArms)
	p := g.Player()
	e := groundRobot(g, p.Pos.X+p.W+40)

	g.Step(frame(core.ActionAttack))
	if e.Alive {
		t.Errorf("four arms punch should kill a 3 hp robot, health=%d", e.Health)
	}
	if g.score != killScore {
		t.Errorf("score = %d", g.score)
	}
	kinds := []ProjectileKind{}
	for _, pr := range g.Projectiles() {
		kinds = append(kinds, pr.Kind)
	}
	if !slices.Equal(kinds, []ProjectileKind{PunchWave}) {
		t.Errorf("projectiles = %v", kinds)
	}
}

func TestXLR8Dash(t *testing.T) {
	g := newPlaying(t, Options{StartLevel: 2})
	g.transform(defs.XLR8)
	p := g.Player()
	x0 := p.Pos.X

	g.Step(frame(core.ActionAttack))
	if !p.Dash.Active() || p.Vel.X != dashSpeed {
		t.Fatalf("dash=%v vel=%v", p.Dash.Active(), p.Vel.X)
	}
	if p.Invincible.Seconds() < dashInvincible-1e-9 {
		t.Errorf("invincible = %v", p.Invincible.Seconds())
	}

	// Steering is ignored for the rest of the dash.
	steps(g, 14, frame(core.ActionLeft))
	if p.Pos.X <= x0 || p.Facing != 1 {
		t.Errorf("dash steered: x=%v facing=%v", p.Pos.X, p.Facing)
	}
}

func TestDiamondheadShield(t *testing.T) {
	g := newPlaying(t, Options{StartLevel: 3})
	g.transform(defs.Diamondhead)
	p := g.Player()
	p.Shield.Set(1)
	p.Invincible.Set(0)
	e := groundRobot(g, p.Pos.X+10)

	g.Step(core.NewInputFrame())
	if p.Health != p.MaxHealth {
		t.Errorf("shielded player took damage: %d", p.Health)
	}
	if e.Health != 2 {
		t.Fatalf("shield aura health = %d, want 2", e.Health)
	}
	g.Step(core.NewInputFrame())
	if e.Health != 2 {
		t.Errorf("aura hit during flash: health = %d", e.Health)
	}
}

func TestPlayerHit(t *testing.T) {
	g := newPlaying(t, Options{})
	p := g.Player()
	g.score = 30
	groundRobot(g, p.Pos.X+10)

	g.Step(core.NewInputFrame())
	if p.Health != p.MaxHealth-1 {
		t.Fatalf("health = %d", p.Health)
	}
	if !near(p.Invincible.Seconds(), g.cfg.Player.InvincibleTime) {
		t.Errorf("invincible = %v", p.Invincible.Seconds())
	}
	if p.Vel.X != -g.cfg.Player.KnockbackX || p.Vel.Y != g.cfg.Player.KnockbackY || p.Grounded {
		t.Errorf("knockback vel = %v grounded=%v", p.Vel, p.Grounded)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want clamped to 0", g.score)
	}

	t.Run("refill at zero", func(t *testing.T) {
		p.Health = 1
		p.Invincible.Set(0)
		p.Pos.Y = g.cfg.Physics.GroundY - p.H
		p.Vel = core.Vec2{}
		p.Grounded = true
		for _, e := range g.Enemies() {
			e.Pos.X = p.Pos.X + 10
		}

		g.Step(core.NewInputFrame())
		if p.Health != p.MaxHealth {
			t.Errorf("health = %d, want refill to %d", p.Health, p.MaxHealth)
		}
		if p.Invincible.Seconds() < refillInvincible-0.01 {
			t.Errorf("invincible = %v", p.Invincible.Seconds())
		}
	})
}

func TestSpawnTriggers(t *testing.T) {
	g := New()
	g.Configure(Options{SkipSplash: true})
	g.Reset(testRuntime)
	g.changeStage(StagePlaying)

	g.Step(core.NewInputFrame())
	snap := g.Snapshot()
	// Camera at 0 with a 1280 view reaches the batches at 400 and 900.
	if snap.Spawned != 2 || len(g.Enemies()) != 4 {
		t.Fatalf("spawned=%d enemies=%d", snap.Spawned, len(g.Enemies()))
	}
	if g.AllSpawned() {
		t.Error("AllSpawned with batches pending")
	}
	want := []float64{1680, 1760, 2180, 2260}
	for i, e := range g.Enemies() {
		if math.Abs(e.Pos.X-want[i]) > 2 {
			t.Errorf("enemy %d x = %v, want about %v", i, e.Pos.X, want[i])
		}
	}
}

func TestDroneHover(t *testing.T) {
	g := newPlaying(t, Options{})
	g.spawnEnemy(2000, Drone, 0, 1)
	d := g.Enemies()[0]
	top := g.cfg.Physics.GroundY - d.H - droneHoverMin - droneHoverRange
	if d.BaseY < top || d.BaseY > g.cfg.Physics.GroundY-d.H-droneHoverMin {
		t.Errorf("baseY = %v outside hover band", d.BaseY)
	}
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
		if math.Abs(d.Pos.Y-d.BaseY) > droneBobAmp+1e-9 {
			t.Fatalf("drone left its bob band: y=%v base=%v", d.Pos.Y, d.BaseY)
		}
	}
	if d.Vel.X != -80 {
		t.Errorf("drone vel = %v, want -80 towards the player", d.Vel.X)
	}
}

func TestLevelCleared(t *testing.T) {
	tests := []struct {
		name    string
		all     bool
		alive   int
		x       float64
		cleared bool
	}{
		{"done", true, 0, 2500, true},
		{"batches pending", false, 0, 2500, false},
		{"enemies alive", true, 1, 2500, false},
		{"not far enough", true, 0, 2400, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelCleared(tt.all, tt.alive, tt.x, 4000, 0.6); got != tt.cleared {
				t.Errorf("LevelCleared = %v, want %v", got, tt.cleared)
			}
		})
	}
}

func TestCompleteLevel(t *testing.T) {
	g := newPlaying(t, Options{})
	g.player.Pos.X = 3000
	g.cameraX = 2000

	res := g.Step(core.NewInputFrame())
	if g.Stage() != StageComplete {
		t.Fatalf("stage = %v, want complete", g.Stage())
	}
	if res.Result == nil || res.Result.MissionID != "classic_1" || !res.Result.Completed {
		t.Fatalf("result = %+v", res.Result)
	}
	if res := g.Step(core.NewInputFrame()); res.Result != nil {
		t.Error("result reported twice")
	}

	steps(g, 5*60+1, core.NewInputFrame())
	if g.Stage() != StageIntro || g.LevelIndex() != 1 {
		t.Fatalf("stage=%v level=%d, want intro of level 2", g.Stage(), g.LevelIndex())
	}
	if !slices.Contains(g.Unlocked(), defs.FourArms) {
		t.Error("level 2 did not unlock four arms")
	}
}

func TestVictory(t *testing.T) {
	g := newPlaying(t, Options{StartLevel: 3})
	g.player.Pos.X = 5000
	g.cameraX = 4000
	g.Step(core.NewInputFrame())
	steps(g, 5*60+1, core.NewInputFrame())

	if g.Stage() != StageVictory || !g.State().GameOver {
		t.Fatalf("stage=%v gameOver=%v", g.Stage(), g.State().GameOver)
	}
	steps(g, 200, core.NewInputFrame())
	g.Step(frame(core.ActionConfirm))
	if g.Stage() != StageSplash {
		t.Errorf("stage = %v, want splash", g.Stage())
	}
}

func TestOmnitrixSelect(t *testing.T) {
	g := newPlaying(t, Options{StartLevel: 1})

	g.Step(frame(core.ActionOmnitrix))
	if g.Stage() != StageSelect {
		t.Fatalf("stage = %v, want select", g.Stage())
	}

	in := core.NewInputFrame()
	in.Choice = 2
	g.Step(in)
	p := g.Player()
	if g.Stage() != StagePlaying || p.Alien != defs.FourArms {
		t.Fatalf("stage=%v alien=%q", g.Stage(), p.Alien)
	}
	if p.W != 65 || p.H != 80 || !near(p.Pos.Y, g.cfg.Physics.GroundY-80) {
		t.Errorf("body %vx%v at y=%v", p.W, p.H, p.Pos.Y)
	}

	g.Step(frame(core.ActionOmnitrix))
	if g.Stage() != StagePlaying {
		t.Error("omnitrix opened during cooldown")
	}

	t.Run("cancel keeps form", func(t *testing.T) {
		p.Omnitrix.Set(0)
		g.Step(frame(core.ActionOmnitrix))
		g.Step(frame(core.ActionBack))
		if g.Stage() != StagePlaying || p.Alien != defs.FourArms {
			t.Errorf("stage=%v alien=%q", g.Stage(), p.Alien)
		}
	})
}

func TestPause(t *testing.T) {
	g := newPlaying(t, Options{})
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("not paused")
	}
	before := g.Snapshot()
	steps(g, 10, frame(core.ActionRight))
	if after := g.Snapshot(); before.Hash() != after.Hash() {
		t.Error("state advanced while paused")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("not resumed")
	}
}

func TestDeterminism(t *testing.T) {
	script := func(i int) core.InputFrame {
		switch {
		case i == 300:
			return frame(core.ActionOmnitrix)
		case i == 301:
			in := core.NewInputFrame()
			in.Choice = 1
			return in
		case i%50 == 0:
			return frame(core.ActionRight, core.ActionJump)
		case i%7 == 0:
			return frame(core.ActionRight, core.ActionAttack)
		default:
			return frame(core.ActionRight)
		}
	}
	run := func() uint64 {
		g := New()
		g.Configure(Options{SkipSplash: true})
		g.Reset(testRuntime)
		for i := 0; i < 1500; i++ {
			g.Step(script(i))
		}
		snap := g.Snapshot()
		return snap.Hash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("hash mismatch: %d vs %d", a, b)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime)
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Render(screen)
	if !strings.Contains(screen.String(), "OMNITRIX CLASSIC") {
		t.Error("splash not rendered")
	}

	g = newPlaying(t, Options{})
	steps(g, 4, core.NewInputFrame())
	g.Render(screen)
	if top := screen.Row(0); !strings.Contains(top, "Bellwood City") || !strings.Contains(top, "Score 0") {
		t.Errorf("HUD = %q", top)
	}
	if !strings.ContainsRune(screen.String(), BenChar) {
		t.Error("player not drawn")
	}
}
