// Package sim is the arena-mode simulation: the player controller, enemy
// and boss AI, the wave director, projectiles, cosmetic effects, and the
// Engine that runs them in a fixed per-frame order.
//
// All randomness comes from the Arena's RNG and all ids from its
// IDAllocator, so two engines built with the same seed and fed the same
// inputs stay identical.
package sim

import (
	"math"

	"github.com/vovakirdan/omnitrix-arcade/internal/config"
	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// Input is the abstract per-frame control state.
type Input struct {
	Move     core.Vec2 // Clamped to the unit disk
	Attack   bool      // Held
	Special  bool      // One-shot
	Omnitrix bool      // One-shot
}

// Arena holds the shared world state the controllers act on.
type Arena struct {
	Radius      float64
	Enemies     []*Enemy
	Boss        *Boss
	Projectiles []*Projectile

	Effects    EffectsSink
	Audio      AudioSink
	RNG        *core.RNG
	IDs        *core.IDAllocator
	Config     config.ArenaConfig
	Difficulty *config.DifficultyManager

	// Wave position used for difficulty scaling of new enemies.
	WaveIndex  int
	TotalWaves int
}

// NewArena creates an empty arena with silent sinks.
func NewArena(radius float64, cfg config.ArenaConfig, seed int64) *Arena {
	return &Arena{
		Radius:     radius,
		Effects:    NopEffects{},
		Audio:      NopAudio{},
		RNG:        core.NewRNG(seed),
		IDs:        &core.IDAllocator{},
		Config:     cfg,
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// LivingEnemies counts enemies not yet killed.
func (a *Arena) LivingEnemies() int {
	n := 0
	for _, e := range a.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// BossAlive reports whether a boss is present and alive.
func (a *Arena) BossAlive() bool {
	return a.Boss != nil && a.Boss.Alive
}

// AddProjectile creates a projectile and adds it to the arena.
func (a *Arena) AddProjectile(s Shot) *Projectile {
	p := NewProjectile(a.IDs, s)
	a.Projectiles = append(a.Projectiles, p)
	return p
}

// PruneEnemies drops dead enemies.
func (a *Arena) PruneEnemies() {
	live := a.Enemies[:0]
	for _, e := range a.Enemies {
		if e.Alive {
			live = append(live, e)
		}
	}
	clear(a.Enemies[len(live):])
	a.Enemies = live
}

// contactDamage returns the damage an enemy kind deals on touch.
// Kinds missing from the table deal 1.
func (a *Arena) contactDamage(kind defs.EnemyKind) int {
	if d, ok := a.Config.Enemies.ContactDamage[string(kind)]; ok {
		return d
	}
	return 1
}

func (a *Arena) scaled(def defs.Enemy) defs.Enemy {
	if a.Difficulty == nil {
		return def
	}
	def.Health = a.Difficulty.ScaleHealth(def.Health, a.WaveIndex, a.TotalWaves)
	def.Speed *= a.Difficulty.SpeedScale(a.WaveIndex, a.TotalWaves)
	return def
}

// randomAngle returns a uniformly random direction.
func (a *Arena) randomAngle() float64 {
	return a.RNG.Float64() * 2 * math.Pi
}
