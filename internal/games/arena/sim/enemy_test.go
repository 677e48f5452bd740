package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

func TestNewEnemy(t *testing.T) {
	a, _ := newTestArena(t)
	e := addEnemy(t, a, defs.Charger, core.V(10, 20))
	def := defs.MustEnemy(defs.Charger)

	if e.Health != def.Health || e.MaxHealth != def.Health || e.Radius != def.Radius {
		t.Errorf("charger stats: health=%d/%d radius=%v", e.Health, e.MaxHealth, e.Radius)
	}
	if e.AI != AIChase {
		t.Errorf("AI = %s, expected chase", e.AI)
	}
	if cd := e.AttackCooldown.Seconds(); cd < 0 || cd >= def.AttackCooldown {
		t.Errorf("staggered cooldown %v outside [0, %v)", cd, def.AttackCooldown)
	}
	if _, err := a.NewEnemy("octopus", core.Vec2{}); err == nil {
		t.Error("unknown enemy kind should fail")
	}
}

func TestSpawnEnemyAtEdge(t *testing.T) {
	a, _ := newTestArena(t)
	for range 20 {
		e, err := a.SpawnEnemyAtEdge(defs.Drone)
		if err != nil {
			t.Fatal(err)
		}
		if !near(e.Pos.Len(), a.Radius-a.Config.Enemies.EdgeInset) {
			t.Fatalf("spawned at distance %v", e.Pos.Len())
		}
	}
}

func TestDifficultyScalesNewEnemies(t *testing.T) {
	a, _ := newTestArena(t)
	a.Difficulty.SetPreset("hard")
	e := addEnemy(t, a, defs.Robot, core.Vec2{})
	def := defs.MustEnemy(defs.Robot)
	if e.MaxHealth <= def.Health || e.Def.Speed <= def.Speed {
		t.Errorf("hard robot: health %d speed %v", e.MaxHealth, e.Def.Speed)
	}
	if defs.MustEnemy(defs.Robot) != def {
		t.Error("definition table was modified")
	}
}

// Three kills inside the combo window score 100, 200, 300; a
// kill after the window lapses scores 100 again.
func TestKillEnemyCombo(t *testing.T) {
	a, rec := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)

	var gains []int
	for i := range 3 {
		e := addEnemy(t, a, defs.Robot, core.V(float64(100+50*i), 0))
		before := p.Score
		if !a.KillEnemy(e, p) {
			t.Fatal("first kill must report true")
		}
		if !near(p.Combo.Seconds(), a.Config.Player.ComboWindow) {
			t.Errorf("combo timer = %v", p.Combo)
		}
		gains = append(gains, p.Score-before)
	}
	if gains[0] != 100 || gains[1] != 200 || gains[2] != 300 {
		t.Errorf("combo gains = %v, expected [100 200 300]", gains)
	}

	a.UpdatePlayer(p, Input{}, a.Config.Player.ComboWindow+0.1)
	if p.ComboCount != 0 {
		t.Fatalf("combo should lapse, got %d", p.ComboCount)
	}

	e := addEnemy(t, a, defs.Robot, core.V(300, 0))
	before := p.Score
	a.KillEnemy(e, p)
	if p.Score-before != 100 {
		t.Errorf("post-lapse kill = %d, expected 100", p.Score-before)
	}

	if a.KillEnemy(e, p) {
		t.Error("killing a dead enemy must report false")
	}
	if p.Score-before != 100 || p.DamageDealt != 4 || rec.Count(core.CueEnemyDie) != 4 {
		t.Errorf("second kill had side effects: score=%d dealt=%d", p.Score, p.DamageDealt)
	}
}

func TestComboCapsAtFive(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	for range 7 {
		a.KillEnemy(addEnemy(t, a, defs.Drone, core.V(200, 0)), p)
	}
	want := 100 + 200 + 300 + 400 + 500 + 500 + 500
	if p.Score != want {
		t.Errorf("score = %d, expected %d", p.Score, want)
	}
}

func TestRobotApproaches(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	e := addEnemy(t, a, defs.Robot, core.V(200, 0))

	a.UpdateEnemies(p, 0.1)

	if !near(e.Pos.X, 200-e.Def.Speed*0.1) {
		t.Errorf("robot x = %v", e.Pos.X)
	}
	if !near(e.Rotation, math.Pi) {
		t.Errorf("robot should face the player, rotation=%v", e.Rotation)
	}

	e.Pos = core.V(e.Radius+p.Radius+2, 0)
	a.UpdateEnemies(p, 0.1)
	if !near(e.Pos.X, e.Radius+p.Radius+2) {
		t.Error("robot inside melee margin should hold position")
	}
}

func TestDroneKeepsDistance(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec2
		check func(e *Enemy) bool
	}{
		{"closes in", core.V(300, 0), func(e *Enemy) bool { return e.Pos.X < 300 && near(e.Pos.Y, 0) }},
		{"retreats", core.V(100, 0), func(e *Enemy) bool { return near(e.Pos.X, 100+90*0.5*0.1) }},
		{"strafes", core.V(180, 0), func(e *Enemy) bool { return near(e.Pos.X, 180) && e.Pos.Y != 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newTestArena(t)
			p := newTestPlayer(t, a, defs.Heatblast)
			e := addEnemy(t, a, defs.Drone, tc.start)
			e.AttackCooldown.Set(10)

			a.UpdateEnemies(p, 0.1)

			if !tc.check(e) {
				t.Errorf("drone at %v", e.Pos)
			}
		})
	}
}

func TestDroneFires(t *testing.T) {
	a, rec := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	e := addEnemy(t, a, defs.Drone, core.V(0, 180))
	e.AttackCooldown.Set(0)

	a.UpdateEnemies(p, 0.01)

	if len(a.Projectiles) != 1 {
		t.Fatalf("projectiles = %d", len(a.Projectiles))
	}
	shot := a.Projectiles[0]
	if shot.FromPlayer || shot.Damage != e.Def.Damage || shot.Color != droneShotColor {
		t.Errorf("drone shot = %+v", shot)
	}
	if !near(shot.Vel.Angle(), -math.Pi/2) {
		t.Errorf("shot should head to the player, angle=%v", shot.Vel.Angle())
	}
	if rec.Count(core.CueShoot) != 1 || !near(e.AttackCooldown.Seconds(), e.Def.AttackCooldown) {
		t.Errorf("cues=%v cooldown=%v", rec.Cues, e.AttackCooldown)
	}
}

func TestTurretFan(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	e := addEnemy(t, a, defs.Turret, core.V(100, 0))
	e.AttackCooldown.Set(0)

	a.UpdateEnemies(p, 0.01)

	if e.Pos != core.V(100, 0) {
		t.Errorf("turret moved to %v", e.Pos)
	}
	if len(a.Projectiles) != 3 {
		t.Fatalf("projectiles = %d, expected 3", len(a.Projectiles))
	}
	for i, shot := range a.Projectiles {
		want := math.Pi + float64(i-1)*turretSpread
		got := shot.Vel.Angle()
		if got < 0 {
			got += 2 * math.Pi
		}
		if !near(got, want) {
			t.Errorf("shot %d angle = %v, expected %v", i, got, want)
		}
	}

	p.Pos = core.V(-360, 0)
	e.AttackCooldown.Set(0)
	a.UpdateEnemies(p, 0.01)
	if len(a.Projectiles) != 3 {
		t.Error("turret fired at a player out of range")
	}
}

func TestChargerStateMachine(t *testing.T) {
	a, rec := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	e := addEnemy(t, a, defs.Charger, core.V(150, 0))
	e.AttackCooldown.Set(0)

	a.UpdateEnemies(p, 0.1)
	if e.AI != AITelegraph || !near(e.AITimer.Seconds(), chargerWindup) {
		t.Fatalf("after trigger: state=%s timer=%v", e.AI, e.AITimer)
	}
	if !near(e.TargetAngle, math.Pi) {
		t.Errorf("locked angle = %v", e.TargetAngle)
	}
	held := e.Pos

	a.UpdateEnemies(p, 0.3)
	if e.AI != AITelegraph || e.Pos != held {
		t.Fatalf("telegraph should hold still: state=%s pos=%v", e.AI, e.Pos)
	}

	a.UpdateEnemies(p, 0.3)
	if e.AI != AICharging || rec.Count(core.CueDash) != 1 {
		t.Fatalf("expected charging, got %s", e.AI)
	}

	a.UpdateEnemies(p, 0.2)
	a.UpdateEnemies(p, 0.2)
	if e.AI != AIChase {
		t.Fatalf("expected chase after the charge, got %s", e.AI)
	}
	if !near(e.Pos.X, held.X-chargerSpeed*0.4) {
		t.Errorf("charge distance: x=%v", e.Pos.X)
	}
	if !near(e.AITimer.Seconds(), chargerRecovery) {
		t.Errorf("recovery timer = %v", e.AITimer)
	}
}

func TestSeparation(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	left := addEnemy(t, a, defs.Turret, core.V(100, 0))
	right := addEnemy(t, a, defs.Turret, core.V(110, 0))
	c1 := addEnemy(t, a, defs.Turret, core.V(0, 200))
	c2 := addEnemy(t, a, defs.Turret, core.V(0, 200))
	for _, e := range a.Enemies {
		e.AttackCooldown.Set(10)
	}

	a.UpdateEnemies(p, 0.01)

	if !near(left.Pos.X, 85) || !near(right.Pos.X, 125) {
		t.Errorf("pair pushed to %v and %v, expected 85 and 125", left.Pos.X, right.Pos.X)
	}
	if c1.Pos != c2.Pos {
		t.Error("coincident enemies have no normal and must be left alone")
	}
}

func TestEnemiesStayInsideArena(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	for _, kind := range defs.EnemyKinds() {
		for range 4 {
			e, err := a.SpawnEnemyAtEdge(kind)
			if err != nil {
				t.Fatal(err)
			}
			a.Enemies = append(a.Enemies, e)
		}
	}
	for range 16 {
		e, _ := a.SpawnEnemyAtEdge(defs.Charger)
		a.Enemies = append(a.Enemies, e)
	}

	for frame := range 600 {
		p.Pos = core.FromAngle(float64(frame)*0.05, 300)
		a.UpdateEnemies(p, 1.0/60)
		for _, e := range a.Enemies {
			if !inside(&e.Entity, a.Radius) {
				t.Fatalf("frame %d: %s at distance %v", frame, e.Kind, e.Pos.Len())
			}
		}
	}
}
