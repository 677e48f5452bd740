package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// Boss pattern constants.
const (
	bossSpawnOffset      = 0.5 // Fraction of the radius above the centre
	bossFirstAttack      = 1
	bossPatternSwitchGap = 0.5
	bossPhaseBurst       = 20

	bossShootSlow   = 0.3
	bossShotSpeed   = 200
	bossShotDamage  = 2
	bossShotRadius  = 7
	bossSpiralSpeed = 160
	bossSpiralDmg   = 1
	bossSpiralRad   = 5
	bossSpiralLife  = 2.5
	bossChargeMul   = 3
	bossChargeStop  = 20
	bossTelegraph   = 0.7
	bossRingDamage  = 2
	bossRingLife    = 0.8
	bossRingAlpha   = "44"
)

// NewBoss creates boss id above the arena centre. The first pattern of
// the first phase starts with its full duration.
func (a *Arena) NewBoss(id defs.BossID) (*Boss, error) {
	def, err := defs.LookupBoss(id)
	if err != nil {
		return nil, fmt.Errorf("sim: new boss: %w", err)
	}
	if err := defs.ValidateBoss(def); err != nil {
		return nil, fmt.Errorf("sim: new boss: %w", err)
	}
	b := &Boss{
		Entity: Entity{
			ID:     a.IDs.Next(),
			Pos:    core.V(0, -a.Radius*bossSpawnOffset),
			Radius: def.Radius,
			Alive:  true,
		},
		Def:       def,
		Health:    def.Health,
		MaxHealth: def.Health,
	}
	b.AttackCooldown.Set(bossFirstAttack)
	b.PatternTimer.Set(def.Phases[0].Patterns[0].Duration)
	return b, nil
}

// SelectPhase returns the most advanced phase whose threshold is at or
// above healthPct. Phases are ordered by strictly descending threshold.
// A healthPct above every threshold selects phase 0.
func SelectPhase(phases []defs.Phase, healthPct float64) int {
	// Number of leading phases that still qualify.
	n := sort.Search(len(phases), func(i int) bool {
		return phases[i].HealthThreshold < healthPct
	})
	return max(0, n-1)
}

// UpdateBoss advances the boss and returns any enemies it summoned. The
// caller adds them to the arena.
func (a *Arena) UpdateBoss(b *Boss, p *Player, dt float64) []*Enemy {
	if b == nil || !b.Alive {
		return nil
	}
	b.Hit.Tick(dt)
	b.AttackCooldown.Tick(dt)
	b.Telegraph.Tick(dt)

	if idx := SelectPhase(b.Def.Phases, b.HealthPct()); idx > b.Phase {
		b.Phase = idx
		b.Pattern = 0
		b.PatternTimer.Set(b.CurrentPattern().Duration)
		a.Effects.SpawnExplosion(b.Pos, b.Def.AccentColor, bossPhaseBurst)
		a.Audio.Play(core.CueBossAppear)
	}

	phase := b.CurrentPhase()
	b.PatternTimer.Tick(dt)
	if b.PatternTimer.Expired() {
		b.Pattern = (b.Pattern + 1) % len(phase.Patterns)
		b.PatternTimer.Set(phase.Patterns[b.Pattern].Duration)
		b.AttackCooldown.Set(bossPatternSwitchGap)
	}
	pattern := phase.Patterns[b.Pattern]

	angle := b.Pos.AngleTo(p.Pos)
	b.Rotation = angle

	var spawned []*Enemy
	switch pattern.Kind {
	case defs.PatternChase:
		b.Pos = b.Pos.Add(core.FromAngle(angle, phase.Speed*dt))
	case defs.PatternShoot:
		a.bossShoot(b, pattern, phase, angle, dt)
	case defs.PatternSpiral:
		a.bossSpiral(b, pattern)
	case defs.PatternCharge:
		a.bossCharge(b, p, phase, dt)
	case defs.PatternSummon:
		spawned = a.bossSummon(b, pattern)
	case defs.PatternAOE:
		a.bossRing(b, pattern)
	}

	b.clampTo(a.Radius)
	return spawned
}

func (a *Arena) bossShoot(b *Boss, pattern defs.Pattern, phase defs.Phase, angle, dt float64) {
	b.Pos = b.Pos.Add(core.FromAngle(angle, phase.Speed*bossShootSlow*dt))
	if !b.AttackCooldown.Expired() {
		return
	}
	b.AttackCooldown.Set(pattern.Cooldown)
	count := int(pattern.Param("count", 3))
	spread := pattern.Param("spread", 0.3)
	for i := range count {
		dir := angle + (float64(i)-float64(count-1)/2)*spread
		a.AddProjectile(Shot{
			Pos:    b.Pos,
			Vel:    core.FromAngle(dir, bossShotSpeed),
			Damage: bossShotDamage,
			Radius: bossShotRadius,
			Color:  b.Def.AccentColor,
		})
	}
	a.Audio.Play(core.CueShoot)
}

// bossSpiral fires arms evenly spaced around an angle that turns with
// the time spent in the pattern.
func (a *Arena) bossSpiral(b *Boss, pattern defs.Pattern) {
	if !b.AttackCooldown.Expired() {
		return
	}
	b.AttackCooldown.Set(pattern.Param("interval", 0.15))
	arms := int(pattern.Param("arms", 3))
	elapsed := pattern.Duration - b.PatternTimer.Seconds()
	base := elapsed * pattern.Param("rotSpeed", 2)
	for i := range arms {
		dir := base + float64(i)/float64(arms)*2*math.Pi
		a.AddProjectile(Shot{
			Pos:      b.Pos,
			Vel:      core.FromAngle(dir, bossSpiralSpeed),
			Damage:   bossSpiralDmg,
			Radius:   bossSpiralRad,
			Color:    b.Def.AccentColor,
			Piercing: true,
			Lifetime: bossSpiralLife,
		})
	}
}

// bossCharge locks the player's position, winds up, then rushes the
// locked point until close enough to stop.
func (a *Arena) bossCharge(b *Boss, p *Player, phase defs.Phase, dt float64) {
	switch {
	case b.Telegraph.Active():
		a.Effects.SpawnTrail(b.Pos, "#ff0000")
	case b.TelegraphPos == nil:
		b.Telegraph.Set(bossTelegraph)
		target := p.Pos
		b.TelegraphPos = &target
		a.Audio.Play(core.CueDash)
	default:
		d := b.TelegraphPos.Sub(b.Pos)
		if d.Len() > bossChargeStop {
			b.Pos = b.Pos.Add(d.Normalize().Scale(phase.Speed * bossChargeMul * dt))
			a.Effects.SpawnTrail(b.Pos, b.Def.Color)
			return
		}
		b.TelegraphPos = nil
		a.Effects.SpawnExplosion(b.Pos, b.Def.AccentColor, 10)
	}
}

// bossSummon spawns once per pattern cycle while the population is
// under the cap.
func (a *Arena) bossSummon(b *Boss, pattern defs.Pattern) []*Enemy {
	if !b.AttackCooldown.Expired() || a.LivingEnemies() >= a.Config.Enemies.SummonCap {
		return nil
	}
	b.AttackCooldown.Set(pattern.Duration)
	count := int(pattern.Param("count", 3))
	kind := defs.EnemyKindAt(int(pattern.Param("type", 0)))
	spawned := make([]*Enemy, 0, count)
	for range count {
		spawned = append(spawned, a.spawnKnown(kind))
	}
	a.Effects.SpawnExplosion(b.Pos, "#ff00ff", 15)
	a.Audio.Play(core.CueWaveStart)
	return spawned
}

// bossRing drops one damage ring per pattern cycle.
func (a *Arena) bossRing(b *Boss, pattern defs.Pattern) {
	if !b.AttackCooldown.Expired() {
		return
	}
	b.AttackCooldown.Set(pattern.Duration)
	a.AddProjectile(Shot{
		Pos:      b.Pos,
		Damage:   bossRingDamage,
		Radius:   pattern.Param("radius", 120),
		Color:    b.Def.AccentColor + bossRingAlpha,
		Lifetime: bossRingLife,
		Kind:     KindAOERing,
	})
	a.Effects.SpawnExplosion(b.Pos, b.Def.AccentColor, 18)
	a.Audio.Play(core.CueSpecial)
}

// KillBoss marks b dead and awards the kill bonus. It reports false when
// b was already dead.
func (a *Arena) KillBoss(b *Boss, p *Player) bool {
	if !b.Kill() {
		return false
	}
	a.Effects.SpawnExplosion(b.Pos, "#ffcc00", 30)
	a.Effects.SpawnExplosion(b.Pos, "#ff4444", 25)
	a.Effects.AddFloatingText(b.Pos, "BOSS DEFEATED!", "#ffcc00", 32)
	p.Score += a.Config.Boss.KillBonus
	a.Audio.Play(core.CueLevelComplete)
	return true
}
