package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/omnitrix-arcade/internal/config"
	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

const eps = 1e-9

func newTestArena(t *testing.T) (*Arena, *CueRecorder) {
	t.Helper()
	a := NewArena(400, config.DefaultArenaConfig(), 42)
	rec := &CueRecorder{}
	a.Audio = rec
	return a, rec
}

func newTestPlayer(t *testing.T, a *Arena, id defs.AlienID) *Player {
	t.Helper()
	p, err := NewPlayer(a.IDs, id, a.Config.Player)
	if err != nil {
		t.Fatalf("NewPlayer(%s): %v", id, err)
	}
	p.Invincible.Set(0)
	return p
}

func addEnemy(t *testing.T, a *Arena, kind defs.EnemyKind, pos core.Vec2) *Enemy {
	t.Helper()
	e, err := a.NewEnemy(kind, pos)
	if err != nil {
		t.Fatalf("NewEnemy(%s): %v", kind, err)
	}
	a.Enemies = append(a.Enemies, e)
	return e
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func inside(e *Entity, arenaRadius float64) bool {
	return e.Pos.Len() <= arenaRadius-e.Radius+eps
}
