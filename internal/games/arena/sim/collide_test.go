package sim

import (
	"testing"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

func TestContactDamage(t *testing.T) {
	tests := []struct {
		name       string
		kind       defs.EnemyKind
		wantHealth int
	}{
		{"robot", defs.Robot, 5},
		{"drone", defs.Drone, 5},
		{"turret deals none", defs.Turret, 6},
		{"charger hits harder", defs.Charger, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestArena(t)
			p := newTestPlayer(t, a, defs.Heatblast)
			e := addEnemy(t, a, tt.kind, core.V(10, 0))

			a.ResolveCollisions(p)

			if p.Health != tt.wantHealth {
				t.Errorf("health = %d, want %d", p.Health, tt.wantHealth)
			}
			// Pushed away from the player along the contact normal.
			if !near(e.Pos.X, 30) || !near(e.Pos.Y, 0) {
				t.Errorf("enemy at %+v, want (30, 0)", e.Pos)
			}
		})
	}

	t.Run("coincident enemy is not pushed", func(t *testing.T) {
		a, _ := newTestArena(t)
		p := newTestPlayer(t, a, defs.Heatblast)
		e := addEnemy(t, a, defs.Robot, core.V(0, 0))
		a.ResolveCollisions(p)
		if e.Pos != core.V(0, 0) {
			t.Errorf("enemy moved to %+v", e.Pos)
		}
	})
}

func TestBossContactDamage(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	b := newTestBoss(t, a, defs.VilgaxMech)
	b.Pos = core.V(0, 10)

	a.ResolveCollisions(p)

	if want := p.MaxHealth - a.Config.Boss.ContactDamage; p.Health != want {
		t.Errorf("health = %d, want %d", p.Health, want)
	}
}

func TestDashPlowsEveryFrame(t *testing.T) {
	a, _ := newTestArena(t)
	p := newTestPlayer(t, a, defs.Heatblast)
	p.Dash.Set(0.3)
	p.DashDamage = 2

	// Outside body contact, inside the dash margin.
	inRange := addEnemy(t, a, defs.Robot, core.V(45, 0))
	inRange.Health = 100
	// Just past radius + radius + margin.
	outOfRange := addEnemy(t, a, defs.Robot, core.V(51, 0))
	outOfRange.Health = 100

	for range 3 {
		a.ResolveCollisions(p)
	}

	if inRange.Health != 94 {
		t.Errorf("health = %d, want 94 after three dash frames", inRange.Health)
	}
	if outOfRange.Health != 100 {
		t.Errorf("enemy beyond the dash margin took damage: %d", outOfRange.Health)
	}
	if p.Health != p.MaxHealth {
		t.Errorf("player took damage without contact: %d", p.Health)
	}

	t.Run("no damage once the dash ends", func(t *testing.T) {
		p.Dash.Set(0)
		a.ResolveCollisions(p)
		if inRange.Health != 94 {
			t.Errorf("health = %d after dash ended", inRange.Health)
		}
	})
}
