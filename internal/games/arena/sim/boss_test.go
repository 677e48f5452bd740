package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

func newTestBoss(t *testing.T, a *Arena, id defs.BossID) *Boss {
	t.Helper()
	b, err := a.NewBoss(id)
	if err != nil {
		t.Fatalf("NewBoss(%s): %v", id, err)
	}
	a.Boss = b
	return b
}

// patternBoss returns a boss that runs only pattern, ready to attack.
func patternBoss(t *testing.T, a *Arena, pattern defs.Pattern) *Boss {
	t.Helper()
	b := newTestBoss(t, a, defs.VilgaxMech)
	b.Def.Phases = []defs.Phase{{HealthThreshold: 1, Speed: 60, Patterns: []defs.Pattern{pattern}}}
	b.PatternTimer.Set(pattern.Duration)
	b.AttackCooldown.Set(0)
	return b
}

func TestSelectPhase(t *testing.T) {
	phases := defs.MustBoss(defs.Kraken).Phases

	tests := []struct {
		pct  float64
		want int
	}{
		{1.2, 0},
		{1, 0},
		{0.7, 0},
		{0.6, 1},
		{0.45, 1},
		{0.3, 2},
		{0.01, 2},
		{0, 2},
	}
	for _, tc := range tests {
		if got := SelectPhase(phases, tc.pct); got != tc.want {
			t.Errorf("SelectPhase(%v) = %d, expected %d", tc.pct, got, tc.want)
		}
	}
	if SelectPhase(nil, 0.5) != 0 {
		t.Error("no phases should select phase 0")
	}
}

func TestNewBoss(t *testing.T) {
	a, _ := newTestArena(t)
	b := newTestBoss(t, a, defs.VilgaxMech)

	if b.Pos != core.V(0, -200) {
		t.Errorf("spawn position = %v", b.Pos)
	}
	if b.Health != 40 || b.MaxHealth != 40 || b.Phase != 0 || b.Pattern != 0 {
		t.Errorf("initial state: health=%d/%d phase=%d pattern=%d", b.Health, b.MaxHealth, b.Phase, b.Pattern)
	}
	if !near(b.AttackCooldown.Seconds(), 1) || !near(b.PatternTimer.Seconds(), 3) {
		t.Errorf("timers: attack=%v pattern=%v", b.AttackCooldown, b.PatternTimer)
	}
	if _, err := a.NewBoss("megalodon"); err == nil {
		t.Error("unknown boss should fail")
	}
}

// One large hit drops the boss to 40% and the next update
// lands directly on the second phase. Healing never regresses it.
func TestBossPhaseJump(t *testing.T) {
	a, rec := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	b := newTestBoss(t, a, defs.VilgaxMech)

	a.UpdateBoss(b, p, 0.01)
	if rec.Count(core.CueBossAppear) != 0 {
		t.Fatal("full-health boss must not change phase")
	}

	b.Health = 16
	a.UpdateBoss(b, p, 0.01)
	if b.Phase != 1 || b.Pattern != 0 {
		t.Fatalf("phase=%d pattern=%d, expected 1/0", b.Phase, b.Pattern)
	}
	if b.CurrentPattern().Kind != defs.PatternCharge {
		t.Errorf("second phase should open with a charge, got %s", b.CurrentPattern().Kind)
	}
	if !near(b.PatternTimer.Seconds(), 2.5-0.01) {
		t.Errorf("pattern timer = %v", b.PatternTimer)
	}
	if rec.Count(core.CueBossAppear) != 1 {
		t.Errorf("bossAppear cues = %d", rec.Count(core.CueBossAppear))
	}

	b.Health = b.MaxHealth
	a.UpdateBoss(b, p, 0.01)
	if b.Phase != 1 || rec.Count(core.CueBossAppear) != 1 {
		t.Error("phase must never regress")
	}
}

func TestBossPatternAdvance(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	b := newTestBoss(t, a, defs.VilgaxMech)

	a.UpdateBoss(b, p, 3)

	if b.Pattern != 1 || b.CurrentPattern().Kind != defs.PatternShoot {
		t.Fatalf("pattern = %d", b.Pattern)
	}
	if !near(b.PatternTimer.Seconds(), 4) || !near(b.AttackCooldown.Seconds(), bossPatternSwitchGap) {
		t.Errorf("timers after switch: pattern=%v attack=%v", b.PatternTimer, b.AttackCooldown)
	}
	if len(a.Projectiles) != 0 {
		t.Error("the switch gap should hold fire")
	}

	a.UpdateBoss(b, p, 4)
	a.UpdateBoss(b, p, 2)
	if b.Pattern != 0 {
		t.Errorf("pattern should wrap to 0, got %d", b.Pattern)
	}
}

func TestBossShootFan(t *testing.T) {
	a, rec := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	b := patternBoss(t, a, defs.Pattern{
		Kind: defs.PatternShoot, Duration: 4, Cooldown: 0.8,
		Params: map[string]float64{"count": 5, "spread": 0.3},
	})

	a.UpdateBoss(b, p, 0.01)

	if len(a.Projectiles) != 5 {
		t.Fatalf("projectiles = %d, expected 5", len(a.Projectiles))
	}
	for i, shot := range a.Projectiles {
		want := math.Pi/2 + float64(i-2)*0.3
		if !near(shot.Vel.Angle(), want) {
			t.Errorf("shot %d angle = %v, expected %v", i, shot.Vel.Angle(), want)
		}
		if shot.FromPlayer || shot.Damage != bossShotDamage {
			t.Errorf("shot %d = %+v", i, shot)
		}
	}
	if !near(b.AttackCooldown.Seconds(), 0.8) || rec.Count(core.CueShoot) != 1 {
		t.Errorf("cooldown=%v shoot cues=%d", b.AttackCooldown, rec.Count(core.CueShoot))
	}
}

func TestBossSpiral(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	b := patternBoss(t, a, defs.Pattern{
		Kind: defs.PatternSpiral, Duration: 4,
		Params: map[string]float64{"arms": 3, "interval": 0.18, "rotSpeed": 2.5},
	})

	a.UpdateBoss(b, p, 0.01)

	if len(a.Projectiles) != 3 {
		t.Fatalf("projectiles = %d, expected 3", len(a.Projectiles))
	}
	base := 0.01 * 2.5
	for i, shot := range a.Projectiles {
		if !shot.Piercing || !near(shot.MaxLifetime, bossSpiralLife) {
			t.Errorf("arm %d: piercing=%v lifetime=%v", i, shot.Piercing, shot.MaxLifetime)
		}
		want := base + float64(i)*2*math.Pi/3
		got := shot.Vel.Angle()
		if got < 0 {
			got += 2 * math.Pi
		}
		if !near(got, want) {
			t.Errorf("arm %d angle = %v, expected %v", i, got, want)
		}
	}
	if !near(b.AttackCooldown.Seconds(), 0.18) {
		t.Errorf("interval = %v", b.AttackCooldown)
	}
}

func TestBossCharge(t *testing.T) {
	a, rec := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	b := patternBoss(t, a, defs.Pattern{Kind: defs.PatternCharge, Duration: 10})

	a.UpdateBoss(b, p, 0.01)
	if b.TelegraphPos == nil || *b.TelegraphPos != p.Pos {
		t.Fatal("charge should lock the player's position")
	}
	if !near(b.Telegraph.Seconds(), bossTelegraph) || rec.Count(core.CueDash) != 1 {
		t.Errorf("telegraph=%v dash cues=%d", b.Telegraph, rec.Count(core.CueDash))
	}
	if b.Pos != core.V(0, -200) {
		t.Error("boss should hold still while telegraphing")
	}

	p.Pos = core.V(300, 0)
	a.UpdateBoss(b, p, bossTelegraph)
	if !near(b.Pos.Y, -200+60*bossChargeMul*bossTelegraph) || !near(b.Pos.X, 0) {
		t.Errorf("boss should rush the locked point, at %v", b.Pos)
	}

	b.Pos = core.V(0, -10)
	a.UpdateBoss(b, p, 0.01)
	if b.TelegraphPos != nil {
		t.Error("charge should end near the locked point")
	}
}

func TestBossSummonRespectsCap(t *testing.T) {
	summon := defs.Pattern{Kind: defs.PatternSummon, Duration: 2, Params: map[string]float64{"type": 1, "count": 3}}

	tests := []struct {
		name   string
		living int
		want   int
	}{
		{"below cap", 11, 3},
		{"at cap", 12, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newTestArena(t)
			p := newTestPlayer(t, a, defs.Heatblast)
			b := patternBoss(t, a, summon)
			for range tc.living {
				addEnemy(t, a, defs.Robot, core.V(0, 300))
			}

			spawned := a.UpdateBoss(b, p, 0.01)

			if len(spawned) != tc.want {
				t.Fatalf("spawned %d, expected %d", len(spawned), tc.want)
			}
			for _, e := range spawned {
				if e.Kind != defs.Drone {
					t.Errorf("summoned %s, expected drone", e.Kind)
				}
			}
			if len(a.Enemies) != tc.living {
				t.Error("summoned enemies are added by the caller")
			}
		})
	}
}

func TestBossRing(t *testing.T) {
	a, rec := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	b := patternBoss(t, a, defs.Pattern{Kind: defs.PatternAOE, Duration: 2, Params: map[string]float64{"radius": 120}})

	a.UpdateBoss(b, p, 0.01)

	if len(a.Projectiles) != 1 {
		t.Fatalf("projectiles = %d", len(a.Projectiles))
	}
	ring := a.Projectiles[0]
	if ring.Kind != KindAOERing || ring.Radius != 120 || ring.Vel != (core.Vec2{}) {
		t.Errorf("ring = %+v", ring)
	}
	if ring.Damage != bossRingDamage || ring.Color != b.Def.AccentColor+bossRingAlpha {
		t.Errorf("ring damage=%d color=%s", ring.Damage, ring.Color)
	}
	if rec.Count(core.CueSpecial) != 1 {
		t.Error("ring should play the special cue")
	}

	a.UpdateBoss(b, p, 0.01)
	if len(a.Projectiles) != 1 {
		t.Error("one ring per pattern cycle")
	}
}

func TestBossStaysInsideArena(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	b := newTestBoss(t, a, defs.VilgaxMech)
	b.Pos = core.V(1000, 0)

	a.UpdateBoss(b, p, 0.01)

	if !inside(&b.Entity, a.Radius) {
		t.Errorf("boss at distance %v", b.Pos.Len())
	}
}

func TestKillBoss(t *testing.T) {
	a, rec := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	b := newTestBoss(t, a, defs.VilgaxMech)

	if !a.KillBoss(b, p) {
		t.Fatal("first kill must report true")
	}
	if p.Score != a.Config.Boss.KillBonus || a.BossAlive() {
		t.Errorf("score=%d alive=%v", p.Score, a.BossAlive())
	}
	if a.KillBoss(b, p) || p.Score != a.Config.Boss.KillBonus || rec.Count(core.CueLevelComplete) != 1 {
		t.Error("second kill must be a no-op")
	}
	if a.UpdateBoss(b, p, 1) != nil {
		t.Error("dead boss should not act")
	}
}
