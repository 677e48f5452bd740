package classic

import "math"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick            uint64
	Stage           Stage
	Level           int
	Score           int
	Health          int
	Alien           string
	PlayerX         int // Milli-units
	PlayerY         int
	CameraX         int
	EnemyCount      int
	EnemyHealth     int
	ProjectileCount int
	Spawned         int
	RNGState        uint64
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            g.tick,
		Stage:           g.stage,
		Level:           g.levelIndex + 1,
		Score:           g.score,
		Health:          g.player.Health,
		Alien:           string(g.player.Alien),
		PlayerX:         milli(g.player.Pos.X),
		PlayerY:         milli(g.player.Pos.Y),
		CameraX:         milli(g.cameraX),
		EnemyCount:      len(g.enemies),
		ProjectileCount: len(g.projectiles),
		RNGState:        g.rng.State(),
	}
	for _, e := range g.enemies {
		snap.EnemyHealth += e.Health
	}
	for _, s := range g.spawned {
		if s {
			snap.Spawned++
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range []byte(snap.Alien) {
		h = h*31 + uint64(c)
	}
	for _, v := range []int{
		int(snap.Stage), snap.Level, snap.Score, snap.Health, snap.PlayerX, snap.PlayerY,
		snap.CameraX, snap.EnemyCount, snap.EnemyHealth, snap.ProjectileCount, snap.Spawned,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h*31 + snap.RNGState
}
