// Package defs holds the immutable definition tables for arena mode:
// alien profiles, enemy and boss stats, boss phase/pattern schedules, and
// the world/mission wave schedules. The simulation only reads these.
package defs

// AlienID identifies an Omnitrix transformation.
type AlienID string

const (
	Heatblast   AlienID = "heatblast"
	FourArms    AlienID = "fourarms"
	XLR8        AlienID = "xlr8"
	Diamondhead AlienID = "diamondhead"
	Ghostfreak  AlienID = "ghostfreak"
	Wildmutt    AlienID = "wildmutt"
	Stinkfly    AlienID = "stinkfly"
	Cannonbolt  AlienID = "cannonbolt"
	Upgrade     AlienID = "upgrade"
	Ripjaws     AlienID = "ripjaws"
	WayBig      AlienID = "waybig"
)

// AttackKind is how a basic attack is delivered.
type AttackKind string

const (
	AttackProjectile AttackKind = "projectile"
	AttackMelee      AttackKind = "melee"
	AttackAOE        AttackKind = "aoe"
)

// AbilityKind is the archetype of a special ability.
type AbilityKind string

const (
	AbilityProjectile AbilityKind = "projectile"
	AbilityMelee      AbilityKind = "melee"
	AbilityAOE        AbilityKind = "aoe"
	AbilityDash       AbilityKind = "dash"
	AbilityShield     AbilityKind = "shield"
	AbilityBuff       AbilityKind = "buff"
)

// Attack describes an alien's basic attack.
type Attack struct {
	Name             string
	Damage           int
	Cooldown         float64
	Range            float64
	ProjectileSpeed  float64
	ProjectileRadius float64
	Kind             AttackKind
	Piercing         bool
	Color            string
}

// Ability describes an alien's special ability. Zero ProjectileSpeed or
// ProjectileRadius means the archetype's default applies.
type Ability struct {
	Name             string
	Damage           int
	Cooldown         float64
	Range            float64
	Kind             AbilityKind
	Duration         float64
	Color            string
	Description      string
	ProjectileSpeed  float64
	ProjectileRadius float64
	Piercing         bool
}

// Alien is the stat and ability profile of one transformation.
type Alien struct {
	ID          AlienID
	Name        string
	Color       string
	AccentColor string
	Radius      float64
	Speed       float64
	Health      int
	Basic       Attack
	Special     Ability
	Description string
}

// EnemyKind identifies one of the four regular enemy behaviours.
type EnemyKind string

const (
	Robot   EnemyKind = "robot"
	Drone   EnemyKind = "drone"
	Turret  EnemyKind = "turret"
	Charger EnemyKind = "charger"
)

// Enemy is the stat profile of a regular enemy kind.
type Enemy struct {
	Kind           EnemyKind
	Radius         float64
	Speed          float64
	Health         int
	Damage         int
	AttackCooldown float64
	Color          string
	AccentColor    string
}

// BossID identifies a boss.
type BossID string

const (
	VilgaxMech    BossID = "vilgax_mech"
	SandWorm      BossID = "sand_worm"
	ShadowBeast   BossID = "shadow_beast"
	Kraken        BossID = "kraken"
	VilgaxSupreme BossID = "vilgax_supreme"
)

// PatternKind is one of the boss behaviour archetypes.
type PatternKind string

const (
	PatternChase  PatternKind = "chase"
	PatternShoot  PatternKind = "shoot"
	PatternAOE    PatternKind = "aoe"
	PatternCharge PatternKind = "charge"
	PatternSummon PatternKind = "summon"
	PatternSpiral PatternKind = "spiral"
)

// Pattern is a timed boss routine within a phase.
type Pattern struct {
	Kind     PatternKind
	Duration float64
	Cooldown float64
	Params   map[string]float64
}

// Param returns a named parameter or fallback when it is absent.
func (p Pattern) Param(name string, fallback float64) float64 {
	if v, ok := p.Params[name]; ok {
		return v
	}
	return fallback
}

// Phase is a health-gated stage of a boss fight. A phase applies while
// the boss's health fraction is at or below HealthThreshold.
type Phase struct {
	HealthThreshold float64
	Speed           float64
	Patterns        []Pattern
}

// Boss is the definition of a boss encounter.
type Boss struct {
	ID          BossID
	Name        string
	Radius      float64
	Health      int
	Color       string
	AccentColor string
	Phases      []Phase
}

// WorldID identifies a world on the mission map.
type WorldID string

const (
	Bellwood WorldID = "bellwood"
	Desert   WorldID = "desert"
	Shadow   WorldID = "shadow"
	Ocean    WorldID = "ocean"
	Vilgax   WorldID = "vilgax"
)

// EnemyGroup is a batch of one enemy kind within a wave.
type EnemyGroup struct {
	Kind  EnemyKind
	Count int
}

// Wave is a set of enemy groups spawned together after Delay seconds.
type Wave struct {
	Enemies []EnemyGroup
	Delay   float64
}

// Size returns the total number of enemies in the wave.
func (w Wave) Size() int {
	n := 0
	for _, g := range w.Enemies {
		n += g.Count
	}
	return n
}

// Mission is one playable arena level.
type Mission struct {
	ID           string
	Name         string
	Description  string
	Difficulty   int
	World        WorldID
	Index        int
	IsBoss       bool
	ArenaRadius  float64
	Waves        []Wave
	Boss         BossID
	UnlockAliens []AlienID
	Background   string
}

// World groups four missions, the last of which is a boss fight.
type World struct {
	ID       WorldID
	Name     string
	Color    string
	Missions []Mission
}
