package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/omnitrix-arcade/internal/config"
	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

const (
	rotationDeadzone  = 0.1
	attackAnimTime    = 0.15
	specialAnimTime   = 0.3
	hitFlashTime      = 0.15
	shotSpawnPadding  = 4
	specialShotSpeed  = 300
	specialShotRadius = 15
	specialShotLife   = 2
)

// NewPlayer creates Ben at the arena centre as alien id.
func NewPlayer(ids *core.IDAllocator, id defs.AlienID, cfg config.ArenaPlayer) (*Player, error) {
	alien, err := defs.LookupAlien(id)
	if err != nil {
		return nil, fmt.Errorf("sim: new player: %w", err)
	}
	p := &Player{
		Entity: Entity{
			ID:     ids.Next(),
			Radius: alien.Radius,
			Alive:  true,
		},
		Alien:              alien,
		Health:             alien.Health,
		MaxHealth:          alien.Health,
		SpecialMaxCooldown: alien.Special.Cooldown,
		DashDamage:         alien.Special.Damage,
		DashColor:          alien.Special.Color,
	}
	p.Invincible.Set(cfg.InvincibleTime)
	return p, nil
}

// SwitchAlien transforms the player. Health keeps its fraction of the
// maximum (never below 1) and the special is ready immediately. Position,
// score and combo are untouched.
func SwitchAlien(p *Player, id defs.AlienID) error {
	alien, err := defs.LookupAlien(id)
	if err != nil {
		return fmt.Errorf("sim: switch alien: %w", err)
	}
	pct := p.HealthPct()
	p.Alien = alien
	p.Radius = alien.Radius
	p.MaxHealth = alien.Health
	p.Health = max(1, roundHealth(pct, alien.Health))
	p.SpecialMaxCooldown = alien.Special.Cooldown
	p.SpecialCooldown.Set(0)
	p.DashDamage = alien.Special.Damage
	p.DashColor = alien.Special.Color
	return nil
}

// UpdatePlayer advances the player's timers, movement and attacks.
func (a *Arena) UpdatePlayer(p *Player, in Input, dt float64) {
	p.Invincible.Tick(dt)
	p.BasicCooldown.Tick(dt)
	p.SpecialCooldown.Tick(dt)
	p.AttackAnim.Tick(dt)
	p.SpecialAnim.Tick(dt)
	if p.Combo.Tick(dt) {
		p.ComboCount = 0
	}

	// A dash owns movement until it ends and skips shield/buff decay.
	if p.Dash.Active() {
		a.Effects.SpawnTrail(p.Pos, p.Alien.Color)
		if p.Dash.Tick(dt) {
			p.Vel = core.Vec2{}
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.clampTo(a.Radius)
		return
	}
	p.Shield.Tick(dt)
	p.Buff.Tick(dt)

	move := in.Move.ClampToDisk()
	p.Vel = move.Scale(p.Alien.Speed)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	if math.Abs(move.X) > rotationDeadzone || math.Abs(move.Y) > rotationDeadzone {
		p.Rotation = move.Angle()
	}
	p.clampTo(a.Radius)

	aim := p.Rotation
	if target, ok := a.nearestTarget(p); ok {
		aim = p.Pos.AngleTo(target)
	}

	if in.Attack && p.BasicCooldown.Expired() {
		p.BasicCooldown.Set(p.Alien.Basic.Cooldown)
		p.AttackAnim.Set(attackAnimTime)
		a.fireBasic(p, aim)
	}
	if in.Special && p.SpecialCooldown.Expired() {
		p.SpecialCooldown.Set(p.SpecialMaxCooldown)
		p.SpecialAnim.Set(specialAnimTime)
		a.fireSpecial(p, aim)
	}
}

// nearestTarget finds the closest living enemy, or the boss when it is
// strictly closer.
func (a *Arena) nearestTarget(p *Player) (core.Vec2, bool) {
	var (
		best  core.Vec2
		found bool
	)
	minDist := math.Inf(1)
	for _, e := range a.Enemies {
		if !e.Alive {
			continue
		}
		if d := p.Pos.Dist(e.Pos); d < minDist {
			minDist, best, found = d, e.Pos, true
		}
	}
	if a.BossAlive() {
		if d := p.Pos.Dist(a.Boss.Pos); d < minDist {
			best, found = a.Boss.Pos, true
		}
	}
	return best, found
}

func (a *Arena) fireBasic(p *Player, angle float64) {
	a.Audio.Play(core.CueShoot)
	atk := p.Alien.Basic
	switch atk.Kind {
	case defs.AttackProjectile:
		spawn := p.Radius + atk.ProjectileRadius + shotSpawnPadding
		a.AddProjectile(Shot{
			Pos:        p.Pos.Add(core.FromAngle(angle, spawn)),
			Vel:        core.FromAngle(angle, atk.ProjectileSpeed),
			Damage:     atk.Damage,
			FromPlayer: true,
			Radius:     atk.ProjectileRadius,
			Color:      atk.Color,
			Piercing:   atk.Piercing,
		})
	case defs.AttackMelee, defs.AttackAOE:
		a.applyMeleeDamage(p, atk.Damage, atk.Range, atk.Color)
	}
}

func (a *Arena) fireSpecial(p *Player, angle float64) {
	a.Audio.Play(core.CueSpecial)
	ab := p.Alien.Special
	switch ab.Kind {
	case defs.AbilityAOE, defs.AbilityMelee:
		a.applyMeleeDamage(p, ab.Damage, ab.Range, ab.Color)
		a.Effects.SpawnExplosion(p.Pos, ab.Color, 20)

	case defs.AbilityDash:
		speed := ab.ProjectileSpeed
		if speed == 0 {
			speed = a.Config.Player.DashSpeed
		}
		p.Vel = core.FromAngle(angle, speed)
		p.Dash.Set(ab.Duration)
		p.Invincible.Set(ab.Duration)
		p.DashDamage = ab.Damage
		p.DashColor = ab.Color
		a.Audio.Play(core.CueDash)

	case defs.AbilityShield:
		p.Shield.Set(ab.Duration)
		p.Invincible.Set(ab.Duration)
		a.Effects.SpawnExplosion(p.Pos, ab.Color, 10)

	case defs.AbilityProjectile:
		speed := ab.ProjectileSpeed
		if speed == 0 {
			speed = specialShotSpeed
		}
		radius := ab.ProjectileRadius
		if radius == 0 {
			radius = specialShotRadius
		}
		spawn := p.Radius + radius + shotSpawnPadding
		a.AddProjectile(Shot{
			Pos:        p.Pos.Add(core.FromAngle(angle, spawn)),
			Vel:        core.FromAngle(angle, speed),
			Damage:     ab.Damage,
			FromPlayer: true,
			Radius:     radius,
			Color:      ab.Color,
			Piercing:   ab.Piercing,
			Lifetime:   specialShotLife,
		})

	case defs.AbilityBuff:
		p.Buff.Set(ab.Duration)
		a.Effects.SpawnExplosion(p.Pos, ab.Color, 8)
	}
}

// applyMeleeDamage hits everything within rng of the player's centre,
// widened by each target's radius. Kills resolve immediately.
func (a *Arena) applyMeleeDamage(p *Player, damage int, rng float64, color string) {
	for _, e := range a.Enemies {
		if !e.Alive || p.Pos.Dist(e.Pos) >= rng+e.Radius {
			continue
		}
		a.damageEnemy(e, p, damage, color)
	}
	if b := a.Boss; a.BossAlive() && p.Pos.Dist(b.Pos) < rng+b.Radius {
		a.damageBoss(b, p, damage, color)
	}
}

func (a *Arena) damageEnemy(e *Enemy, p *Player, damage int, color string) {
	e.Health -= damage
	e.Hit.Set(hitFlashTime)
	a.Effects.SpawnHit(e.Pos, color, DefaultHitCount)
	if e.Health <= 0 {
		a.KillEnemy(e, p)
	}
}

func (a *Arena) damageBoss(b *Boss, p *Player, damage int, color string) {
	b.Health -= damage
	b.Hit.Set(hitFlashTime)
	a.Effects.SpawnHit(b.Pos, color, DefaultHitCount)
	if b.Health <= 0 {
		a.KillBoss(b, p)
	}
}

// DamagePlayer applies damage unless the player is invincible or shielded.
// Depleted health revives the player in place; the return value reports a
// revive.
func (a *Arena) DamagePlayer(p *Player, amount int) bool {
	if amount <= 0 || p.Invincible.Active() || p.Shield.Active() {
		return false
	}
	cfg := a.Config.Player

	p.Health -= amount
	p.DamageTaken += amount
	p.Invincible.Set(cfg.InvincibleTime)
	a.Audio.Play(core.CuePlayerHit)
	a.Effects.SpawnHit(p.Pos, "#ff0000", 8)
	a.Effects.AddFloatingText(p.Pos, fmt.Sprintf("-%d", amount), "#ff4444", 22)

	if p.Health > 0 {
		return false
	}
	p.Health = min(p.MaxHealth, max(1, int(math.Ceil(float64(p.MaxHealth)*cfg.ReviveFraction))))
	p.Invincible.Set(cfg.ReviveInvincibleTime)
	a.Effects.AddFloatingText(p.Pos, "REVIVED!", "#00e500", 24)
	return true
}
