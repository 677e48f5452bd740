package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// Enemy behaviour constants.
const (
	robotStopMargin   = 5
	robotAttackMargin = 10

	droneIdealDist   = 180
	droneBand        = 30
	droneRetreatMul  = 0.5
	droneStrafeMul   = 0.3
	droneFireRange   = 400
	droneShotSpeed   = 200
	droneShotRadius  = 5
	droneShotColor   = "#ff4444"
	turretFireRange  = 450
	turretSpread     = 0.3
	turretShotSpeed  = 180
	turretShotRadius = 5
	turretShotColor  = "#ff0000"

	chargerTrigger   = 200
	chargerWindup    = 0.6
	chargerDuration  = 0.4
	chargerSpeed     = 400
	chargerRecovery  = 1
	killExplosion    = 12
	comboTextOffsetY = 20
)

// NewEnemy creates a living enemy of kind at pos with difficulty scaling
// applied. Its first attack is staggered randomly within one cooldown.
func (a *Arena) NewEnemy(kind defs.EnemyKind, pos core.Vec2) (*Enemy, error) {
	def, err := defs.LookupEnemy(kind)
	if err != nil {
		return nil, fmt.Errorf("sim: new enemy: %w", err)
	}
	def = a.scaled(def)
	e := &Enemy{
		Entity: Entity{
			ID:     a.IDs.Next(),
			Pos:    pos,
			Radius: def.Radius,
			Alive:  true,
		},
		Kind:      kind,
		Def:       def,
		Health:    def.Health,
		MaxHealth: def.Health,
		AI:        AIChase,
	}
	e.AttackCooldown.Set(a.RNG.Float64() * def.AttackCooldown)
	return e, nil
}

// SpawnEnemyAtEdge creates an enemy at a random point just inside the rim.
func (a *Arena) SpawnEnemyAtEdge(kind defs.EnemyKind) (*Enemy, error) {
	r := a.Radius - a.Config.Enemies.EdgeInset
	return a.NewEnemy(kind, core.FromAngle(a.randomAngle(), r))
}

// spawnKnown is SpawnEnemyAtEdge for kinds already validated against the
// definition tables.
func (a *Arena) spawnKnown(kind defs.EnemyKind) *Enemy {
	e, err := a.SpawnEnemyAtEdge(kind)
	if err != nil {
		panic(err)
	}
	return e
}

// UpdateEnemies runs each living enemy's behaviour, pushes overlapping
// enemies apart and keeps every enemy inside the arena.
func (a *Arena) UpdateEnemies(p *Player, dt float64) {
	for _, e := range a.Enemies {
		if !e.Alive {
			continue
		}
		e.Hit.Tick(dt)
		e.AttackCooldown.Tick(dt)

		dist := e.Pos.Dist(p.Pos)
		angle := e.Pos.AngleTo(p.Pos)
		e.Rotation = angle

		switch e.Kind {
		case defs.Robot:
			a.updateRobot(e, p, dist, angle, dt)
		case defs.Drone:
			a.updateDrone(e, dist, angle, dt)
		case defs.Turret:
			a.updateTurret(e, dist, angle)
		case defs.Charger:
			a.updateCharger(e, dist, angle, dt)
		}
		e.clampTo(a.Radius)
	}
	separate(a.Enemies)
	for _, e := range a.Enemies {
		if e.Alive {
			e.clampTo(a.Radius)
		}
	}
}

// separate pushes each overlapping pair apart by half the overlap each.
// Coincident pairs have no normal and are skipped.
func separate(enemies []*Enemy) {
	for i := range enemies {
		for j := i + 1; j < len(enemies); j++ {
			ea, eb := enemies[i], enemies[j]
			if !ea.Alive || !eb.Alive {
				continue
			}
			d := eb.Pos.Sub(ea.Pos)
			dist := d.Len()
			minDist := ea.Radius + eb.Radius
			if dist >= minDist || dist == 0 {
				continue
			}
			push := d.Scale((minDist - dist) / 2 / dist)
			ea.Pos = ea.Pos.Sub(push)
			eb.Pos = eb.Pos.Add(push)
		}
	}
}

func (a *Arena) updateRobot(e *Enemy, p *Player, dist, angle, dt float64) {
	if dist > e.Def.Radius+p.Radius+robotStopMargin {
		e.Pos = e.Pos.Add(core.FromAngle(angle, e.Def.Speed*dt))
	}
	// Contact damage is resolved by the collision pass.
	if dist < e.Def.Radius+p.Radius+robotAttackMargin && e.AttackCooldown.Expired() {
		e.AttackCooldown.Set(e.Def.AttackCooldown)
	}
}

func (a *Arena) updateDrone(e *Enemy, dist, angle, dt float64) {
	switch {
	case dist > droneIdealDist+droneBand:
		e.Pos = e.Pos.Add(core.FromAngle(angle, e.Def.Speed*dt))
	case dist < droneIdealDist-droneBand:
		e.Pos = e.Pos.Sub(core.FromAngle(angle, e.Def.Speed*droneRetreatMul*dt))
	default:
		e.Pos = e.Pos.Add(core.FromAngle(angle+math.Pi/2, e.Def.Speed*droneStrafeMul*dt))
	}

	if e.AttackCooldown.Expired() && dist < droneFireRange {
		e.AttackCooldown.Set(e.Def.AttackCooldown)
		a.AddProjectile(Shot{
			Pos:    e.Pos,
			Vel:    core.FromAngle(angle, droneShotSpeed),
			Damage: e.Def.Damage,
			Radius: droneShotRadius,
			Color:  droneShotColor,
		})
		a.Audio.Play(core.CueShoot)
	}
}

func (a *Arena) updateTurret(e *Enemy, dist, angle float64) {
	if !e.AttackCooldown.Expired() || dist >= turretFireRange {
		return
	}
	e.AttackCooldown.Set(e.Def.AttackCooldown)
	for i := -1; i <= 1; i++ {
		a.AddProjectile(Shot{
			Pos:    e.Pos,
			Vel:    core.FromAngle(angle+float64(i)*turretSpread, turretShotSpeed),
			Damage: e.Def.Damage,
			Radius: turretShotRadius,
			Color:  turretShotColor,
		})
	}
	a.Audio.Play(core.CueShoot)
}

func (a *Arena) updateCharger(e *Enemy, dist, angle, dt float64) {
	e.AITimer.Tick(dt)

	switch e.AI {
	case AIChase:
		e.Pos = e.Pos.Add(core.FromAngle(angle, e.Def.Speed*dt))
		if dist < chargerTrigger && e.AttackCooldown.Expired() && e.AITimer.Expired() {
			e.AI = AITelegraph
			e.AITimer.Set(chargerWindup)
			e.TargetAngle = angle
			e.AttackCooldown.Set(e.Def.AttackCooldown)
		}
	case AITelegraph:
		if e.AITimer.Expired() {
			e.AI = AICharging
			e.AITimer.Set(chargerDuration)
			a.Audio.Play(core.CueDash)
		}
	case AICharging:
		e.Pos = e.Pos.Add(core.FromAngle(e.TargetAngle, chargerSpeed*dt))
		a.Effects.SpawnTrail(e.Pos, e.Def.Color)
		if e.AITimer.Expired() {
			e.AI = AIChase
			e.AITimer.Set(chargerRecovery)
		}
	}
}

// KillEnemy marks e dead and awards score with the combo multiplier.
// It reports false when e was already dead.
func (a *Arena) KillEnemy(e *Enemy, p *Player) bool {
	if !e.Kill() {
		return false
	}
	cfg := a.Config.Player
	a.Audio.Play(core.CueEnemyDie)
	a.Effects.SpawnExplosion(e.Pos, e.Def.Color, killExplosion)

	p.ComboCount++
	p.Combo.Set(cfg.ComboWindow)
	combo := p.ComboCount
	score := cfg.KillScore * min(combo, cfg.ComboCap)
	p.Score += score
	p.DamageDealt++

	size := 16.0
	if combo > 1 {
		size = 20
	}
	a.Effects.AddFloatingText(e.Pos, fmt.Sprintf("+%d", score), "#ffcc00", size)
	if combo > 1 {
		a.Effects.AddFloatingText(e.Pos.Sub(core.V(0, comboTextOffsetY)), fmt.Sprintf("%dx COMBO!", combo), "#ff8800", 14)
	}
	return true
}
