package sim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/sim"
)

const frameDT = 1.0 / 60

func newEngine(t *testing.T, mission defs.Mission, unlocked []defs.AlienID, opts sim.Options) *sim.Engine {
	t.Helper()
	g, err := sim.NewEngine(mission, unlocked, opts)
	if err != nil {
		t.Fatalf("NewEngine(%s): %v", mission.ID, err)
	}
	return g
}

func singleWave(id string, kind defs.EnemyKind, count int) defs.Mission {
	return defs.Mission{
		ID:           id,
		ArenaRadius:  300,
		UnlockAliens: []defs.AlienID{defs.Heatblast},
		Waves:        []defs.Wave{{Enemies: []defs.EnemyGroup{{Kind: kind, Count: count}}, Delay: 0.1}},
	}
}

func TestNewEngineErrors(t *testing.T) {
	tests := []struct {
		name     string
		mission  defs.Mission
		unlocked []defs.AlienID
	}{
		{"no waves", defs.Mission{ID: "empty", ArenaRadius: 300}, nil},
		{"unknown alien", defs.MustMission("bellwood_0"), []defs.AlienID{"greymatter"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sim.NewEngine(tc.mission, tc.unlocked, sim.Options{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStartingAlien(t *testing.T) {
	mission := defs.MustMission("bellwood_1") // unlocks Four Arms

	tests := []struct {
		name      string
		unlocked  []defs.AlienID
		preferred defs.AlienID
		want      defs.AlienID
	}{
		{"preferred", []defs.AlienID{defs.Heatblast, defs.XLR8}, defs.XLR8, defs.XLR8},
		{"preferred locked", []defs.AlienID{defs.Heatblast, defs.FourArms}, defs.XLR8, defs.FourArms},
		{"mission unlock", []defs.AlienID{defs.Heatblast, defs.FourArms}, "", defs.FourArms},
		{"first unlocked", []defs.AlienID{defs.Diamondhead, defs.Heatblast}, "", defs.Diamondhead},
		{"nothing unlocked", nil, "", defs.Heatblast},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newEngine(t, mission, tc.unlocked, sim.Options{StartAlien: tc.preferred})
			if got := g.Player().Alien.ID; got != tc.want {
				t.Errorf("starting alien = %s, expected %s", got, tc.want)
			}
		})
	}
}

func TestUpdateClampsDT(t *testing.T) {
	g := newEngine(t, defs.MustMission("bellwood_0"), nil, sim.Options{})

	g.Update(sim.Input{}, 5)
	if !nearly(g.Elapsed(), 0.1) {
		t.Errorf("elapsed = %v, expected the 0.1s clamp", g.Elapsed())
	}
	g.Update(sim.Input{}, -1)
	if g.Snapshot().Frame != 1 {
		t.Error("negative dt must be ignored")
	}
}

func TestPauseResume(t *testing.T) {
	g := newEngine(t, defs.MustMission("bellwood_0"), nil, sim.Options{Seed: 3})
	for range 90 {
		g.Update(sim.Input{Move: core.V(1, 0), Attack: true}, frameDT)
	}

	g.Pause()
	g.Pause()
	before := g.Snapshot()
	for range 30 {
		g.Update(sim.Input{Move: core.V(0, 1), Attack: true}, frameDT)
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Fatal("paused engine changed state")
	}

	g.Resume()
	g.Update(sim.Input{}, frameDT)
	if g.Paused() || g.Snapshot().Frame != before.Frame+1 {
		t.Error("resume should let one update through")
	}
}

func TestOmnitrixRequestsSelection(t *testing.T) {
	requests := 0
	listener := sim.ListenerFuncs{RequestAlienSelect: func() { requests++ }}

	t.Run("single alien", func(t *testing.T) {
		g := newEngine(t, defs.MustMission("bellwood_0"), []defs.AlienID{defs.Heatblast}, sim.Options{Listener: listener})
		g.Update(sim.Input{Omnitrix: true}, frameDT)
		if g.Paused() || requests != 0 {
			t.Error("one unlocked alien has nothing to switch to")
		}
	})

	t.Run("switch", func(t *testing.T) {
		rec := &sim.CueRecorder{}
		unlocked := []defs.AlienID{defs.Heatblast, defs.FourArms}
		g := newEngine(t, defs.MustMission("bellwood_0"), unlocked, sim.Options{Listener: listener, Audio: rec})

		g.Update(sim.Input{Omnitrix: true}, frameDT)
		if !g.Paused() || requests != 1 {
			t.Fatalf("paused=%v requests=%d", g.Paused(), requests)
		}

		if err := g.SelectAlien(defs.XLR8); err == nil {
			t.Error("locked alien must be rejected")
		}
		if err := g.SelectAlien(defs.FourArms); err != nil {
			t.Fatal(err)
		}
		if g.Paused() || g.Player().Alien.ID != defs.FourArms || rec.Count(core.CueTransform) != 1 {
			t.Errorf("after select: paused=%v alien=%s", g.Paused(), g.Player().Alien.ID)
		}
	})
}

func TestDestroy(t *testing.T) {
	g := newEngine(t, defs.MustMission("bellwood_0"), []defs.AlienID{defs.Heatblast}, sim.Options{})
	g.Update(sim.Input{}, frameDT)
	g.Destroy()
	if !g.Destroyed() {
		t.Fatal("Destroyed() = false after Destroy")
	}

	g.Update(sim.Input{}, frameDT)
	if g.Snapshot().Frame != 1 {
		t.Error("destroyed engine kept running")
	}
	if err := g.SelectAlien(defs.Heatblast); !errors.Is(err, sim.ErrDestroyed) {
		t.Errorf("SelectAlien after Destroy = %v", err)
	}
}

func TestHUDOnlySentOnChange(t *testing.T) {
	var huds []sim.HUD
	listener := sim.ListenerFuncs{HUD: func(h sim.HUD) { huds = append(huds, h) }}
	g := newEngine(t, defs.MustMission("bellwood_1"), []defs.AlienID{defs.Heatblast}, sim.Options{Listener: listener})

	for range 10 {
		g.Update(sim.Input{}, frameDT)
	}

	if len(huds) != 1 {
		t.Fatalf("HUD sent %d times over idle frames", len(huds))
	}
	h := huds[0]
	if h.Wave != 1 || h.TotalWaves != 3 || h.CurrentAlien != defs.Heatblast || h.HasBoss {
		t.Errorf("HUD = %+v", h)
	}
	if h != g.HUD() {
		t.Error("last sent HUD should match the current one")
	}
}

func scriptedInput(frame int) sim.Input {
	angle := float64(frame) * 0.03
	return sim.Input{
		Move:    core.V(math.Cos(angle), math.Sin(angle)),
		Attack:  frame%90 < 60,
		Special: frame%240 == 120,
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) []uint64 {
		g := newEngine(t, defs.MustMission("bellwood_1"), []defs.AlienID{defs.Heatblast}, sim.Options{Seed: seed})
		var hashes []uint64
		for frame := range 600 {
			g.Update(scriptedInput(frame), frameDT)
			if frame%30 == 0 {
				snap := g.Snapshot()
				hashes = append(hashes, snap.Hash())
			}
		}
		return hashes
	}

	a, b := run(7), run(7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at checkpoint %d", i)
		}
	}

	c := run(8)
	if a[len(a)-1] == c[len(c)-1] {
		t.Error("different seeds should produce different runs")
	}
}

func TestPlayerInvariants(t *testing.T) {
	g := newEngine(t, defs.MustMission("bellwood_2"), []defs.AlienID{defs.XLR8}, sim.Options{Seed: 11})
	radius := g.Mission().ArenaRadius

	for frame := range 1200 {
		g.Update(scriptedInput(frame), frameDT)
		p := g.Player()
		if p.Health < 1 || p.Health > p.MaxHealth {
			t.Fatalf("frame %d: health %d/%d", frame, p.Health, p.MaxHealth)
		}
		if p.Pos.Len() > radius-p.Radius+1e-9 {
			t.Fatalf("frame %d: player escaped to %v", frame, p.Pos)
		}
		for _, e := range g.Enemies() {
			if e.Alive && e.Pos.Len() > radius-e.Radius+1e-9 {
				t.Fatalf("frame %d: %s escaped", frame, e.Kind)
			}
		}
	}
}

func TestMissionCompletes(t *testing.T) {
	var completions []int
	listener := sim.ListenerFuncs{LevelComplete: func(score, stars int) { completions = append(completions, score, stars) }}
	mission := singleWave("test_turret", defs.Turret, 1)
	g := newEngine(t, mission, []defs.AlienID{defs.Heatblast}, sim.Options{Seed: 5, Listener: listener})

	for range 600 {
		g.Update(sim.Input{Attack: true}, frameDT)
		if g.Finished() {
			break
		}
	}

	out, ok := g.Result()
	if !ok {
		t.Fatal("mission did not complete within 600 frames")
	}
	p := g.Player()
	if !out.Completed || out.MissionID != "test_turret" || out.Alien != defs.Heatblast {
		t.Errorf("outcome = %+v", out)
	}
	if out.Score != 100 || out.Stars != sim.Stars(p.Health, p.MaxHealth) {
		t.Errorf("score=%d stars=%d", out.Score, out.Stars)
	}
	if len(completions) != 2 || completions[0] != out.Score || completions[1] != out.Stars {
		t.Errorf("listener saw %v", completions)
	}

	frame := g.Snapshot().Frame
	g.Update(sim.Input{Attack: true}, frameDT)
	if g.Snapshot().Frame != frame {
		t.Error("finished engine kept running")
	}
}

func TestBossSpawnsAfterWaves(t *testing.T) {
	mission := singleWave("test_boss", defs.Robot, 1)
	mission.ArenaRadius = 400
	mission.IsBoss, mission.Boss = true, defs.VilgaxMech
	g := newEngine(t, mission, []defs.AlienID{defs.Heatblast}, sim.Options{Seed: 9})

	spawned := false
	for range 900 {
		g.Update(sim.Input{Attack: true}, frameDT)
		if g.Boss() != nil {
			spawned = true
			break
		}
	}
	if !spawned {
		t.Fatal("boss never spawned")
	}
	if !g.World().AllWavesSpawned || !g.World().BossSpawned {
		t.Errorf("world = %+v", g.World())
	}
	if !g.HUD().HasBoss || g.HUD().BossName != "Vilgax Mech" {
		t.Errorf("HUD = %+v", g.HUD())
	}

	for range 120 {
		g.Update(sim.Input{Attack: true}, frameDT)
	}
	if g.Finished() {
		t.Error("mission finished while the boss lives")
	}
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
