package sim

import (
	"math"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// Entity is the state shared by every simulated body.
type Entity struct {
	ID       int
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Rotation float64
	Alive    bool
}

// Kill marks the entity dead. It reports true only on the call that
// actually flipped Alive, so death side effects run exactly once.
func (e *Entity) Kill() bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	return true
}

// Touches reports whether two collision circles overlap.
func (e *Entity) Touches(o *Entity) bool {
	return e.Pos.Dist(o.Pos) < e.Radius+o.Radius
}

func (e *Entity) clampTo(arenaRadius float64) {
	e.Pos = core.ClampToCircle(e.Pos, e.Radius, arenaRadius)
}

// Player is Ben in his current alien form.
type Player struct {
	Entity

	Alien     defs.Alien
	Health    int
	MaxHealth int

	Invincible      core.Countdown
	BasicCooldown   core.Countdown
	SpecialCooldown core.Countdown
	Dash            core.Countdown
	Shield          core.Countdown
	Buff            core.Countdown
	Combo           core.Countdown
	AttackAnim      core.Countdown // Cosmetic
	SpecialAnim     core.Countdown // Cosmetic

	SpecialMaxCooldown float64

	Score       int
	ComboCount  int
	DamageDealt int
	DamageTaken int

	// Set when a dash starts; applied to enemies the dash plows through.
	DashDamage int
	DashColor  string
}

// HealthPct returns health as a fraction of max health.
func (p *Player) HealthPct() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth)
}

// SpecialPct returns the remaining special cooldown as a fraction, 0 when ready.
func (p *Player) SpecialPct() float64 {
	if p.SpecialMaxCooldown <= 0 {
		return 0
	}
	return p.SpecialCooldown.Seconds() / p.SpecialMaxCooldown
}

// AIState is an enemy's behaviour state. Only chargers leave AIChase.
type AIState string

const (
	AIIdle      AIState = "idle"
	AIChase     AIState = "chase"
	AIAttack    AIState = "attack"
	AIRetreat   AIState = "retreat"
	AITelegraph AIState = "charge_telegraph"
	AICharging  AIState = "charging"
)

// Enemy is a regular hostile.
type Enemy struct {
	Entity

	Kind      defs.EnemyKind
	Def       defs.Enemy // Copy with difficulty scaling applied
	Health    int
	MaxHealth int

	Hit            core.Countdown
	AttackCooldown core.Countdown
	AITimer        core.Countdown
	AI             AIState
	TargetAngle    float64 // Locked charge direction
}

// Boss is the encounter at the end of a boss mission.
type Boss struct {
	Entity

	Def       defs.Boss
	Health    int
	MaxHealth int
	Phase     int
	Pattern   int

	PatternTimer   core.Countdown
	Hit            core.Countdown
	AttackCooldown core.Countdown
	Telegraph      core.Countdown
	TelegraphPos   *core.Vec2 // Locked charge target, nil when idle
}

// HealthPct returns health as a fraction of max health.
func (b *Boss) HealthPct() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

// CurrentPhase returns the active phase definition.
func (b *Boss) CurrentPhase() defs.Phase {
	return b.Def.Phases[b.Phase]
}

// CurrentPattern returns the active pattern definition.
func (b *Boss) CurrentPattern() defs.Pattern {
	return b.Def.Phases[b.Phase].Patterns[b.Pattern]
}

func roundHealth(pct float64, max int) int {
	return int(math.Round(pct * float64(max)))
}
