package classic

import (
	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// Player is Ben, plain or transformed. Pos is the top-left corner.
type Player struct {
	Pos      core.Vec2
	Vel      core.Vec2
	W, H     float64
	Facing   float64 // 1 right, -1 left
	Grounded bool

	Alien     defs.AlienID // Empty while Ben is untransformed
	Health    int
	MaxHealth int
	Unlocked  []defs.AlienID

	Invincible     core.Countdown
	AttackCooldown core.Countdown
	Omnitrix       core.Countdown
	Shield         core.Countdown
	Dash           core.Countdown
	AttackAnim     float64 // 1 on attack, decays at 4 per second

	AnimFrame int
	animTimer float64
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.Box{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// Stats returns the current transformation, ok false for plain Ben.
func (p *Player) Stats() (AlienStats, bool) {
	if p.Alien == "" {
		return AlienStats{}, false
	}
	return LookupAlien(p.Alien)
}

// Enemy is a robot or drone.
type Enemy struct {
	Kind      EnemyKind
	Pos       core.Vec2
	Vel       core.Vec2
	W, H      float64
	Health    int
	MaxHealth int
	Alive     bool
	Speed     float64
	Hit       core.Countdown

	BaseY      float64
	SineOffset float64
	AnimFrame  int
	animTimer  float64
}

// Box returns the enemy's collision box.
func (e *Enemy) Box() core.Box {
	return core.Box{X: e.Pos.X, Y: e.Pos.Y, W: e.W, H: e.H}
}

// Projectile is a player attack in flight. Pos is the centre.
type Projectile struct {
	Kind     ProjectileKind
	Pos      core.Vec2
	Vel      core.Vec2
	W, H     float64
	Lifetime float64
}

// Box returns the projectile's collision box.
func (p *Projectile) Box() core.Box {
	return core.Box{X: p.Pos.X - p.W/2, Y: p.Pos.Y - p.H/2, W: p.W, H: p.H}
}

// Particle is a cosmetic spark, or a score popup when Text is set.
type Particle struct {
	Pos         core.Vec2
	Vel         core.Vec2
	Color       string
	Size        float64
	Text        string
	Lifetime    float64
	MaxLifetime float64
}
