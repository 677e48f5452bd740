package sim

import "math"

// Snapshot is a flattened view of the gameplay state for determinism
// checks. Positions are stored in thousandths of a world unit.
type Snapshot struct {
	Frame      uint64
	Alien      string
	Health     int
	MaxHealth  int
	Score      int
	ComboCount int
	PlayerX    int
	PlayerY    int

	Wave      int
	WaveState int // Bit 0 active, bit 1 all spawned, bit 2 boss spawned

	// Each enemy is 5 ints: ID, X, Y, Health, AI state index
	EnemyCount int
	EnemyData  []int

	BossHealth  int
	BossPhase   int
	BossPattern int

	ProjectileCount int
	Finished        bool
	RNGState        uint64
}

var aiStateIndex = map[AIState]int{
	AIIdle: 0, AIChase: 1, AIAttack: 2, AIRetreat: 3, AITelegraph: 4, AICharging: 5,
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current gameplay state. Cosmetic particles are
// not included.
func (g *Engine) Snapshot() Snapshot {
	p := g.player
	enemyData := make([]int, 0, len(g.arena.Enemies)*5)
	for _, e := range g.arena.Enemies {
		enemyData = append(enemyData, e.ID, milli(e.Pos.X), milli(e.Pos.Y), e.Health, aiStateIndex[e.AI])
	}

	waveState := 0
	if g.world.WaveActive {
		waveState |= 1
	}
	if g.world.AllWavesSpawned {
		waveState |= 2
	}
	if g.world.BossSpawned {
		waveState |= 4
	}

	snap := Snapshot{
		Frame:           g.frame,
		Alien:           string(p.Alien.ID),
		Health:          p.Health,
		MaxHealth:       p.MaxHealth,
		Score:           p.Score,
		ComboCount:      p.ComboCount,
		PlayerX:         milli(p.Pos.X),
		PlayerY:         milli(p.Pos.Y),
		Wave:            g.world.CurrentWave,
		WaveState:       waveState,
		EnemyCount:      len(g.arena.Enemies),
		EnemyData:       enemyData,
		BossPhase:       -1,
		BossPattern:     -1,
		ProjectileCount: len(g.arena.Projectiles),
		Finished:        g.finished,
		RNGState:        g.arena.RNG.State(),
	}
	if b := g.arena.Boss; b != nil {
		snap.BossHealth = b.Health
		snap.BossPhase = b.Phase
		snap.BossPattern = b.Pattern
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, c := range []byte(snap.Alien) {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Health)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxHealth)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WaveState)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossHealth)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossPhase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossPattern)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.Finished {
		h = h*31 + 1
	}

	h = h*31 + snap.RNGState

	return h
}
