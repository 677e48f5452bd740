package sim

import "github.com/vovakirdan/omnitrix-arcade/internal/core"

// ResolveCollisions runs every cross-entity collision pair for one frame
// and returns how many times the player was revived.
func (a *Arena) ResolveCollisions(p *Player) int {
	revives := 0
	damage := func(amount int) {
		if a.DamagePlayer(p, amount) {
			revives++
		}
	}

	for _, proj := range a.Projectiles {
		if proj.Alive && proj.FromPlayer {
			a.playerShotHits(proj, p)
		}
	}

	for _, proj := range a.Projectiles {
		if !proj.Alive || proj.FromPlayer {
			continue
		}
		if p.Entity.Touches(&proj.Entity) {
			damage(proj.Damage)
			proj.Alive = false
		}
	}

	for _, e := range a.Enemies {
		if !e.Alive {
			continue
		}
		d := p.Pos.Sub(e.Pos)
		dist := d.Len()
		if dist >= p.Radius+e.Radius {
			continue
		}
		damage(a.contactDamage(e.Kind))
		if dist > 0 {
			e.Pos = e.Pos.Sub(d.Scale(a.Config.Enemies.ContactPushback / dist))
		}
	}

	if a.BossAlive() && p.Entity.Touches(&a.Boss.Entity) {
		damage(a.Config.Boss.ContactDamage)
	}

	// A dash plows through enemies every frame it overlaps them.
	if p.Dash.Active() {
		for _, e := range a.Enemies {
			if !e.Alive || p.Pos.Dist(e.Pos) >= p.Radius+e.Radius+a.Config.Player.DashMargin {
				continue
			}
			a.damageEnemy(e, p, p.DashDamage, p.DashColor)
		}
	}
	return revives
}

// playerShotHits applies one player projectile to every enemy and the
// boss it overlaps, at most once per target. A non-piercing shot stops at
// its first target.
func (a *Arena) playerShotHits(proj *Projectile, p *Player) {
	for _, e := range a.Enemies {
		if !e.Alive || proj.HasHit(e.ID) || !proj.Entity.Touches(&e.Entity) {
			continue
		}
		a.shotLands(proj, e.ID, e.Pos)
		e.Health -= proj.Damage
		e.Hit.Set(hitFlashTime)
		if e.Health <= 0 {
			a.KillEnemy(e, p)
		}
		if !proj.Alive {
			return
		}
	}

	b := a.Boss
	if !a.BossAlive() || proj.HasHit(b.ID) || !proj.Entity.Touches(&b.Entity) {
		return
	}
	a.shotLands(proj, b.ID, b.Pos)
	b.Health -= proj.Damage
	b.Hit.Set(hitFlashTime)
	if b.Health <= 0 {
		a.KillBoss(b, p)
	}
}

func (a *Arena) shotLands(proj *Projectile, id int, at core.Vec2) {
	proj.Hit(id)
	a.Effects.SpawnHit(at, proj.Color, DefaultHitCount)
	a.Audio.Play(core.CueHit)
	if !proj.Piercing {
		proj.Alive = false
	}
}
