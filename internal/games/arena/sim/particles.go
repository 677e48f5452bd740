package sim

import (
	"math"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
)

// Default spawn counts and text size.
const (
	DefaultHitCount       = 6
	DefaultExplosionCount = 15
	DefaultTextSize       = 18
)

const (
	particleDrag     = 0.98 // Velocity kept per update
	textRiseSpeed    = 40
	textLifetime     = 0.8
	defaultMaxPieces = 600
)

// Particle is a short-lived cosmetic dot.
type Particle struct {
	Pos         core.Vec2
	Vel         core.Vec2
	Color       string
	Radius      float64
	Lifetime    float64
	MaxLifetime float64
}

// FloatingText is score or status text drifting upwards.
type FloatingText struct {
	Pos         core.Vec2
	Text        string
	Color       string
	Size        float64
	Lifetime    float64
	MaxLifetime float64
}

// Fade returns the remaining life fraction in [0, 1].
func (t FloatingText) Fade() float64 {
	if t.MaxLifetime <= 0 {
		return 0
	}
	return core.ClampF(t.Lifetime/t.MaxLifetime, 0, 1)
}

// ParticleSystem implements EffectsSink. It draws from its own RNG so
// cosmetic spawns never shift gameplay randomness.
type ParticleSystem struct {
	Particles []Particle
	Texts     []FloatingText

	rng *core.RNG
	max int
}

// NewParticleSystem creates a system holding at most maxParticles
// particles (600 when maxParticles <= 0).
func NewParticleSystem(seed int64, maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = defaultMaxPieces
	}
	return &ParticleSystem{rng: core.NewRNG(seed), max: maxParticles}
}

// Update advances and expires particles and texts.
func (ps *ParticleSystem) Update(dt float64) {
	live := ps.Particles[:0]
	for _, p := range ps.Particles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel = p.Vel.Scale(particleDrag)
		p.Lifetime -= dt
		if p.Lifetime > 0 {
			live = append(live, p)
		}
	}
	ps.Particles = live

	texts := ps.Texts[:0]
	for _, t := range ps.Texts {
		t.Pos.Y -= textRiseSpeed * dt
		t.Lifetime -= dt
		if t.Lifetime > 0 {
			texts = append(texts, t)
		}
	}
	ps.Texts = texts
}

func (ps *ParticleSystem) burst(pos core.Vec2, color string, count int, minSpeed, speedRange, minRadius, radiusRange, minLife, lifeRange float64) {
	for range count {
		if len(ps.Particles) >= ps.max {
			return
		}
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := minSpeed + ps.rng.Float64()*speedRange
		ps.Particles = append(ps.Particles, Particle{
			Pos:         pos,
			Vel:         core.FromAngle(angle, speed),
			Color:       color,
			Radius:      minRadius + ps.rng.Float64()*radiusRange,
			Lifetime:    minLife + ps.rng.Float64()*lifeRange,
			MaxLifetime: minLife + lifeRange,
		})
	}
}

// SpawnHit emits a small burst. count <= 0 uses DefaultHitCount.
func (ps *ParticleSystem) SpawnHit(pos core.Vec2, color string, count int) {
	if count <= 0 {
		count = DefaultHitCount
	}
	ps.burst(pos, color, count, 60, 120, 2, 3, 0.3, 0.3)
}

// SpawnExplosion emits a large burst. count <= 0 uses DefaultExplosionCount.
func (ps *ParticleSystem) SpawnExplosion(pos core.Vec2, color string, count int) {
	if count <= 0 {
		count = DefaultExplosionCount
	}
	ps.burst(pos, color, count, 80, 180, 3, 5, 0.4, 0.5)
}

// SpawnTrail emits one slow particle jittered around pos.
func (ps *ParticleSystem) SpawnTrail(pos core.Vec2, color string) {
	if len(ps.Particles) >= ps.max {
		return
	}
	jitter := core.V((ps.rng.Float64()-0.5)*8, (ps.rng.Float64()-0.5)*8)
	ps.Particles = append(ps.Particles, Particle{
		Pos:         pos.Add(jitter),
		Vel:         core.V((ps.rng.Float64()-0.5)*20, (ps.rng.Float64()-0.5)*20),
		Color:       color,
		Radius:      2 + ps.rng.Float64()*3,
		Lifetime:    0.15 + ps.rng.Float64()*0.15,
		MaxLifetime: 0.3,
	})
}

// AddFloatingText queues a text popup. size <= 0 uses DefaultTextSize.
func (ps *ParticleSystem) AddFloatingText(pos core.Vec2, text, color string, size float64) {
	if size <= 0 {
		size = DefaultTextSize
	}
	ps.Texts = append(ps.Texts, FloatingText{
		Pos:         pos,
		Text:        text,
		Color:       color,
		Size:        size,
		Lifetime:    textLifetime,
		MaxLifetime: textLifetime,
	})
}

// Clear removes everything.
func (ps *ParticleSystem) Clear() {
	ps.Particles = ps.Particles[:0]
	ps.Texts = ps.Texts[:0]
}
