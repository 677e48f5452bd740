package sim

import "github.com/vovakirdan/omnitrix-arcade/internal/core"

// ProjectileKind selects how a projectile is drawn. Rings sit still and
// act as a lingering damage zone.
type ProjectileKind string

const (
	KindBullet    ProjectileKind = "bullet"
	KindAOERing   ProjectileKind = "aoe_ring"
	KindDashTrail ProjectileKind = "dash_trail"
	KindWave      ProjectileKind = "wave"
)

// DefaultProjectileLifetime applies when a Shot leaves Lifetime at zero.
const DefaultProjectileLifetime = 3

// cullMargin is how far past the arena edge a projectile may travel.
const cullMargin = 50

// Shot describes a projectile to create.
type Shot struct {
	Pos        core.Vec2
	Vel        core.Vec2
	Damage     int
	FromPlayer bool
	Radius     float64
	Color      string
	Piercing   bool
	Lifetime   float64        // Seconds; 0 means DefaultProjectileLifetime
	Kind       ProjectileKind // Empty means KindBullet
}

// Projectile is a moving damage circle owned by the player or the enemies.
type Projectile struct {
	Entity

	Damage      int
	FromPlayer  bool
	Lifetime    core.Countdown
	MaxLifetime float64
	Piercing    bool
	Color       string
	Kind        ProjectileKind

	hits map[int]struct{}
}

// NewProjectile creates a live projectile from s.
func NewProjectile(ids *core.IDAllocator, s Shot) *Projectile {
	if s.Lifetime <= 0 {
		s.Lifetime = DefaultProjectileLifetime
	}
	if s.Kind == "" {
		s.Kind = KindBullet
	}
	p := &Projectile{
		Entity: Entity{
			ID:       ids.Next(),
			Pos:      s.Pos,
			Vel:      s.Vel,
			Radius:   s.Radius,
			Rotation: s.Vel.Angle(),
			Alive:    true,
		},
		Damage:      s.Damage,
		FromPlayer:  s.FromPlayer,
		MaxLifetime: s.Lifetime,
		Piercing:    s.Piercing,
		Color:       s.Color,
		Kind:        s.Kind,
		hits:        make(map[int]struct{}),
	}
	p.Lifetime.Set(s.Lifetime)
	return p
}

// Hit records that the projectile struck entity id.
func (p *Projectile) Hit(id int) {
	p.hits[id] = struct{}{}
}

// HasHit reports whether entity id was already struck.
func (p *Projectile) HasHit(id int) bool {
	_, ok := p.hits[id]
	return ok
}

// UpdateProjectiles advances every projectile and returns the slice with
// dead ones removed. Order is preserved; the backing array is reused.
func UpdateProjectiles(projectiles []*Projectile, dt, arenaRadius float64) []*Projectile {
	live := projectiles[:0]
	for _, p := range projectiles {
		if !p.Alive {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Rotation = p.Vel.Angle()
		p.Lifetime.Tick(dt)
		if p.Lifetime.Expired() || p.Pos.Len() > arenaRadius+cullMargin {
			p.Alive = false
			continue
		}
		live = append(live, p)
	}
	clear(projectiles[len(live):])
	return live
}

// PruneProjectiles drops dead projectiles without advancing the rest.
func PruneProjectiles(projectiles []*Projectile) []*Projectile {
	live := projectiles[:0]
	for _, p := range projectiles {
		if p.Alive {
			live = append(live, p)
		}
	}
	clear(projectiles[len(live):])
	return live
}
