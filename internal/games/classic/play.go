package classic

import (
	"math"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// Player timings and tuning not covered by the config file.
const (
	animStep         = 0.15
	enemyAnimStep    = 0.2
	stopSpeed        = 10
	enemyHitFlash    = 0.15
	killScore        = 100
	refillInvincible = 2
	refillFlash      = 0.3
	transformFlash   = 0.5
	particleGravity  = 200
	maxParticles     = 500

	benPunchReach  = 30
	benPunchWidth  = 35
	dashDuration   = 0.25
	dashSpeed      = 900
	dashInvincible = 0.3
	shieldDuration = 1.5
	shieldGuard    = 0.5
	shieldReach    = 25
)

// frameInput is the gameplay view of one tick of input.
type frameInput struct {
	left, right bool
	jump        bool
	attack      bool
	omnitrix    bool
}

func (g *Game) newPlayer() *Player {
	pc := g.cfg.Player
	return &Player{
		Pos:       core.V(100, g.cfg.Physics.GroundY-pc.Height),
		W:         pc.Width,
		H:         pc.Height,
		Facing:    1,
		Grounded:  true,
		Health:    pc.Health,
		MaxHealth: pc.Health,
	}
}

// updatePlaying runs one gameplay tick in the fixed order: movement,
// attack, omnitrix, enemies, projectiles, particles, camera, spawns,
// collisions, completion.
func (g *Game) updatePlaying(in frameInput, dt float64) {
	level := g.levels[g.levelIndex]

	g.updateMovement(in, dt, level)
	g.updateAttack(in, dt)
	if g.updateOmnitrix(in, dt) {
		return
	}
	g.updateEnemies(dt)
	g.updateProjectiles(dt)
	g.updateParticles(dt)
	g.updateCamera(level)
	g.spawnEnemies(level)
	g.checkCollisions()
	g.checkLevelComplete(level)
	g.flash.Tick(dt)
}

func (g *Game) updateMovement(in frameInput, dt float64, level Level) {
	p := g.player
	phys := g.cfg.Physics
	speed, jump := phys.BaseSpeed, phys.JumpVelocity
	if st, ok := p.Stats(); ok {
		speed, jump = st.Speed, st.JumpVelocity
	}

	// A dash locks steering until it ends.
	if p.Dash.Active() {
		p.Dash.Tick(dt)
		p.Pos.X += p.Vel.X * dt
		return
	}

	switch {
	case in.left:
		p.Vel.X = -speed
		p.Facing = -1
	case in.right:
		p.Vel.X = speed
		p.Facing = 1
	default:
		p.Vel.X *= phys.Friction
		if math.Abs(p.Vel.X) < stopSpeed {
			p.Vel.X = 0
		}
	}

	if in.jump && p.Grounded {
		p.Vel.Y = jump
		p.Grounded = false
		g.sound.Play(core.CueJump)
	}
	if !p.Grounded {
		p.Vel.Y += phys.Gravity * dt
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if ground := phys.GroundY - p.H; p.Pos.Y >= ground {
		p.Pos.Y = ground
		p.Vel.Y = 0
		p.Grounded = true
	}
	p.Pos.X = math.Max(g.cameraX, math.Min(p.Pos.X, level.Width-p.W))

	p.Invincible.Tick(dt)
	p.Shield.Tick(dt)

	p.animTimer += dt
	if p.animTimer > animStep {
		p.animTimer = 0
		p.AnimFrame = (p.AnimFrame + 1) % 4
	}
	p.AttackAnim = math.Max(0, p.AttackAnim-dt*4)
}

func (g *Game) updateAttack(in frameInput, dt float64) {
	p := g.player
	p.AttackCooldown.Tick(dt)
	if !in.attack || p.AttackCooldown.Active() {
		return
	}
	p.AttackCooldown.Set(g.cfg.Player.AttackCooldown)
	p.AttackAnim = 1

	// front picks an x offset from the player by facing.
	front := func(right, left float64) float64 {
		if p.Facing > 0 {
			return p.Pos.X + p.W + right
		}
		return p.Pos.X + left
	}

	switch p.Alien {
	case "":
		g.sound.Play(core.CueWeakPunch)
		g.meleeAttack(core.Box{X: front(0, -benPunchReach), Y: p.Pos.Y + p.H*0.2, W: benPunchWidth, H: p.H * 0.5}, 1)

	case defs.Heatblast:
		g.sound.Play(core.CueFireball)
		g.fire(Fireball, core.V(front(5, -15), p.Pos.Y+p.H*0.35), 600, 20, 20, 1.5)
		center := core.V(p.Pos.X+p.W/2, p.Pos.Y+p.H*0.35)
		for i := 0; i < 5; i++ {
			color := "#ff6600"
			if g.fx.Float64() > 0.5 {
				color = "#ffaa00"
			}
			vel := core.V(p.Facing*g.fx.Range(200, 400), g.fx.Range(-75, 75))
			g.addParticle(center, vel, color, g.fx.Range(3, 7), g.fx.Range(0.3, 0.6), 0.6)
		}

	case defs.FourArms:
		g.sound.Play(core.CuePunch)
		st, _ := p.Stats()
		g.meleeAttack(core.Box{X: front(0, -st.AttackRange), Y: p.Pos.Y, W: st.AttackRange, H: p.H}, st.AttackDamage)
		g.fire(PunchWave, core.V(front(20, -20), p.Pos.Y+p.H*0.4), 300, 40, 40, 0.3)

	case defs.XLR8:
		g.sound.Play(core.CueDash)
		p.Dash.Set(dashDuration)
		p.Vel.X = p.Facing * dashSpeed
		p.Invincible.Set(math.Max(p.Invincible.Seconds(), dashInvincible))
		g.fire(SpeedDash, core.V(p.Pos.X+p.W/2, p.Pos.Y+p.H*0.3), dashSpeed, 60, 50, dashDuration)

	case defs.Diamondhead:
		g.sound.Play(core.CueShield)
		p.Shield.Set(shieldDuration)
		p.Invincible.Set(math.Max(p.Invincible.Seconds(), shieldGuard))
		g.fire(Crystal, core.V(front(5, -15), p.Pos.Y+p.H*0.3), 400, 25, 16, 1.0)
		center := core.V(p.Pos.X+p.W/2, p.Pos.Y+p.H/2)
		for i := 0; i < 8; i++ {
			color := "#00ccaa"
			if g.fx.Float64() > 0.5 {
				color = "#80ffec"
			}
			vel := core.V(g.fx.Range(-150, 150), g.fx.Range(-150, 150))
			g.addParticle(center, vel, color, g.fx.Range(3, 7), g.fx.Range(0.4, 0.8), 0.8)
		}
	}
}

func (g *Game) fire(kind ProjectileKind, pos core.Vec2, speed, w, h, lifetime float64) {
	g.projectiles = append(g.projectiles, &Projectile{
		Kind:     kind,
		Pos:      pos,
		Vel:      core.V(g.player.Facing*speed, 0),
		W:        w,
		H:        h,
		Lifetime: lifetime,
	})
}

func (g *Game) meleeAttack(box core.Box, damage int) {
	for _, e := range g.enemies {
		if e.Alive && box.Overlaps(e.Box()) {
			g.damageEnemy(e, damage)
		}
	}
}

// updateOmnitrix opens the alien picker. It reports true when play stops
// for the picker this tick.
func (g *Game) updateOmnitrix(in frameInput, dt float64) bool {
	p := g.player
	p.Omnitrix.Tick(dt)
	if p.Omnitrix.Active() || len(p.Unlocked) == 0 || !in.omnitrix {
		return false
	}
	g.sound.Play(core.CueOmnitrixReady)
	g.cursor = 0
	g.changeStage(StageSelect)
	return true
}

// transform turns Ben into an unlocked alien and snaps him to the ground.
func (g *Game) transform(id defs.AlienID) {
	st, ok := LookupAlien(id)
	if !ok {
		return
	}
	p := g.player
	p.Alien = id
	p.W, p.H = st.Width, st.Height
	p.Omnitrix.Set(g.cfg.Player.OmnitrixCooldown)
	p.Pos.Y = g.cfg.Physics.GroundY - p.H
	g.flash.Set(transformFlash)
	g.sound.Play(core.CueTransform)
	g.logger.Debug("transformed", "alien", id, "level", g.levels[g.levelIndex].ID)

	center := core.V(p.Pos.X+p.W/2, p.Pos.Y+p.H/2)
	for i := 0; i < 20; i++ {
		vel := core.V(g.fx.Range(-200, 200), g.fx.Range(-200, 200))
		g.addParticle(center, vel, "#00ff00", g.fx.Range(4, 10), g.fx.Range(0.5, 1), 1)
	}
}

func (g *Game) updateEnemies(dt float64) {
	px := g.player.Pos.X
	ground := g.cfg.Physics.GroundY
	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		e.Hit.Tick(dt)
		e.animTimer += dt
		if e.animTimer > enemyAnimStep {
			e.animTimer = 0
			e.AnimFrame = (e.AnimFrame + 1) % 4
		}

		dir := -1.0
		if px-e.Pos.X > 0 {
			dir = 1
		}
		e.Vel.X = dir * e.Speed
		e.Pos.X += e.Vel.X * dt
		if e.Kind == Robot {
			e.Pos.Y = ground - e.H
		} else {
			e.Pos.Y = e.BaseY + math.Sin(g.totalTime*droneBobFreq+e.SineOffset)*droneBobAmp
		}
	}
	g.enemies = pruneEnemies(g.enemies)
}

func pruneEnemies(enemies []*Enemy) []*Enemy {
	out := enemies[:0]
	for _, e := range enemies {
		if e.Alive {
			out = append(out, e)
		}
	}
	for i := len(out); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return out
}

func (g *Game) updateProjectiles(dt float64) {
	out := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Lifetime -= dt
		if p.Lifetime > 0 {
			out = append(out, p)
		}
	}
	g.projectiles = out
}

func (g *Game) updateParticles(dt float64) {
	out := g.particles[:0]
	for _, pt := range g.particles {
		pt.Pos = pt.Pos.Add(pt.Vel.Scale(dt))
		pt.Vel.Y += particleGravity * dt
		pt.Lifetime -= dt
		if pt.Lifetime > 0 {
			out = append(out, pt)
		}
	}
	g.particles = out
}

func (g *Game) addParticle(pos, vel core.Vec2, color string, size, life, maxLife float64) {
	if len(g.particles) >= maxParticles {
		return
	}
	g.particles = append(g.particles, Particle{Pos: pos, Vel: vel, Color: color, Size: size, Lifetime: life, MaxLifetime: maxLife})
}

// updateCamera eases the camera so the player sits in the left part of
// the view, clamped to the level.
func (g *Game) updateCamera(level Level) {
	view := g.cfg.View
	target := g.player.Pos.X - view.Width*view.CameraLead
	g.cameraX += (target - g.cameraX) * view.CameraSmooth
	g.cameraX = math.Max(0, math.Min(g.cameraX, level.Width-view.Width))
}

// spawnEnemies releases every batch whose trigger the camera's right
// edge has reached. Batches enter just off the right of the view.
func (g *Game) spawnEnemies(level Level) {
	viewW := g.cfg.View.Width
	all := true
	for i, s := range level.Spawns {
		if g.spawned[i] {
			continue
		}
		if g.cameraX+viewW < s.X {
			all = false
			continue
		}
		g.spawned[i] = true
		for n := 0; n < s.Count; n++ {
			g.spawnEnemy(s.X+viewW+float64(n)*spawnSpacing, s.Kind, i, len(level.Spawns))
		}
	}
	g.allSpawned = all
}

func (g *Game) spawnEnemy(x float64, kind EnemyKind, batch, total int) {
	st := enemyTable[kind]
	ground := g.cfg.Physics.GroundY
	baseY := ground - st.Height
	if kind == Drone {
		baseY = ground - st.Height - droneHoverMin - g.rng.Float64()*droneHoverRange
	}
	hp := g.difficulty.ScaleHealth(st.Health, batch, total)
	g.enemies = append(g.enemies, &Enemy{
		Kind:       kind,
		Pos:        core.V(x, baseY),
		W:          st.Width,
		H:          st.Height,
		Health:     hp,
		MaxHealth:  hp,
		Alive:      true,
		Speed:      st.Speed * g.difficulty.SpeedScale(batch, total),
		BaseY:      baseY,
		SineOffset: g.rng.Float64() * 2 * math.Pi,
	})
}

func (g *Game) checkCollisions() {
	p := g.player
	damage := 1
	if st, ok := p.Stats(); ok {
		damage = st.AttackDamage
	}

	for _, proj := range g.projectiles {
		if proj.Lifetime <= 0 {
			continue
		}
		for _, e := range g.enemies {
			if !e.Alive || !proj.Box().Overlaps(e.Box()) {
				continue
			}
			// Lingering attacks hit each enemy once per flash.
			if !proj.Kind.Consumed() && e.Hit.Active() {
				continue
			}
			g.damageEnemy(e, damage)
			if proj.Kind.Consumed() {
				proj.Lifetime = 0
				break
			}
		}
	}

	if p.Invincible.Expired() && p.Shield.Expired() {
		for _, e := range g.enemies {
			if e.Alive && p.Box().Overlaps(e.Box()) {
				g.playerHit(e)
				break
			}
		}
	}

	if p.Shield.Active() {
		reach := p.W + shieldReach
		center := p.Box().Center()
		for _, e := range g.enemies {
			if !e.Alive || e.Hit.Active() {
				continue
			}
			if center.Dist(e.Box().Center()) < reach+e.W/2 {
				g.damageEnemy(e, 1)
			}
		}
	}
}

func (g *Game) damageEnemy(e *Enemy, damage int) {
	e.Health -= damage
	e.Hit.Set(enemyHitFlash)
	g.damageDealt += damage
	if e.Health > 0 {
		return
	}
	e.Alive = false
	g.score += killScore
	g.sound.Play(core.CueEnemyDefeat)

	center := e.Box().Center()
	color := enemyTable[e.Kind].Color
	for i := 0; i < 12; i++ {
		vel := core.V(g.fx.Range(-200, 200), g.fx.Range(-200, 200))
		g.addParticle(center, vel, color, g.fx.Range(4, 10), g.fx.Range(0.5, 1), 1)
	}
	if len(g.particles) < maxParticles {
		g.particles = append(g.particles, Particle{
			Pos:         core.V(center.X, e.Pos.Y-10),
			Vel:         core.V(0, -80),
			Color:       "#ffff00",
			Text:        "+100",
			Lifetime:    1,
			MaxLifetime: 1,
		})
	}
}

func (g *Game) playerHit(e *Enemy) {
	p := g.player
	pc := g.cfg.Player
	p.Health--
	g.damageTaken++
	p.Invincible.Set(pc.InvincibleTime)
	g.sound.Play(core.CuePlayerHit)

	dir := 1.0
	if p.Pos.X < e.Pos.X {
		dir = -1
	}
	p.Vel = core.V(dir*pc.KnockbackX, pc.KnockbackY)
	p.Grounded = false
	g.score = max(0, g.score-pc.HitPenalty)

	center := p.Box().Center()
	for i := 0; i < 8; i++ {
		vel := core.V(g.fx.Range(-150, 150), g.fx.Range(-150, 150))
		g.addParticle(center, vel, "#ff4444", g.fx.Range(3, 7), g.fx.Range(0.3, 0.6), 0.6)
	}

	if p.Health <= 0 {
		p.Health = p.MaxHealth
		p.Invincible.Set(refillInvincible)
		g.flash.Set(refillFlash)
		g.logger.Debug("health refilled", "level", g.levels[g.levelIndex].ID)
	}
}

// LevelCleared reports whether the level's finish rule holds: every batch
// released, nothing alive, and the player past the finish fraction.
func LevelCleared(allSpawned bool, alive int, playerX, levelWidth, finishFraction float64) bool {
	return allSpawned && alive == 0 && playerX > levelWidth*finishFraction
}

func (g *Game) checkLevelComplete(level Level) {
	alive := 0
	for _, e := range g.enemies {
		if e.Alive {
			alive++
		}
	}
	if !LevelCleared(g.allSpawned, alive, g.player.Pos.X, level.Width, g.cfg.View.FinishFraction) {
		return
	}
	g.completeLevel()
}
