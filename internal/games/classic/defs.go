package classic

import (
	"slices"

	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// AlienStats is a side-scroller transformation. Width and Height replace
// Ben's body while transformed.
type AlienStats struct {
	ID           defs.AlienID
	Name         string
	Color        string
	Speed        float64
	JumpVelocity float64
	AttackRange  float64
	AttackDamage int
	Width        float64
	Height       float64
}

var alienStats = map[defs.AlienID]AlienStats{
	defs.Heatblast:   {ID: defs.Heatblast, Name: "Heatblast", Color: "#ff6600", Speed: 320, JumpVelocity: -620, AttackRange: 500, AttackDamage: 2, Width: 50, Height: 70},
	defs.FourArms:    {ID: defs.FourArms, Name: "Four Arms", Color: "#cc0000", Speed: 250, JumpVelocity: -550, AttackRange: 130, AttackDamage: 4, Width: 65, Height: 80},
	defs.XLR8:        {ID: defs.XLR8, Name: "XLR8", Color: "#0088ff", Speed: 520, JumpVelocity: -650, AttackRange: 300, AttackDamage: 1, Width: 45, Height: 65},
	defs.Diamondhead: {ID: defs.Diamondhead, Name: "Diamondhead", Color: "#00ccaa", Speed: 290, JumpVelocity: -600, AttackRange: 90, AttackDamage: 3, Width: 55, Height: 75},
}

// LookupAlien returns the side-scroller stats of an alien.
func LookupAlien(id defs.AlienID) (AlienStats, bool) {
	s, ok := alienStats[id]
	return s, ok
}

// EnemyKind is one of the two side-scroller enemies.
type EnemyKind string

const (
	Robot EnemyKind = "robot"
	Drone EnemyKind = "drone"
)

type enemyStats struct {
	Width, Height float64
	Health        int
	Speed         float64
	Color         string
}

var enemyTable = map[EnemyKind]enemyStats{
	Robot: {Width: 45, Height: 65, Health: 3, Speed: 100, Color: "#888888"},
	Drone: {Width: 50, Height: 40, Health: 2, Speed: 80, Color: "#607d8b"},
}

// Drone hover band above the ground and bob motion.
const (
	droneHoverMin   = 100
	droneHoverRange = 80
	droneBobAmp     = 30
	droneBobFreq    = 2
	spawnSpacing    = 80
)

// Spawn is a batch of enemies released once the camera's right edge
// reaches X.
type Spawn struct {
	X     float64
	Kind  EnemyKind
	Count int
}

// Level is one stage of the campaign.
type Level struct {
	ID         string
	Name       string
	Background string
	Width      float64
	NewAlien   defs.AlienID
	Spawns     []Spawn
}

func sp(x float64, kind EnemyKind, n int) Spawn { return Spawn{X: x, Kind: kind, Count: n} }

var levels = []Level{
	{
		ID: "classic_1", Name: "Bellwood City", Background: "city", Width: 4000, NewAlien: defs.Heatblast,
		Spawns: []Spawn{
			sp(400, Robot, 2), sp(900, Robot, 2), sp(1400, Drone, 1), sp(1800, Robot, 3),
			sp(2300, Drone, 2), sp(2800, Robot, 2), sp(3200, Robot, 3), sp(3500, Drone, 2),
		},
	},
	{
		ID: "classic_2", Name: "Dusty Desert", Background: "desert", Width: 4500, NewAlien: defs.FourArms,
		Spawns: []Spawn{
			sp(400, Robot, 3), sp(900, Drone, 2), sp(1400, Robot, 3), sp(1900, Drone, 2),
			sp(2400, Robot, 4), sp(2900, Drone, 2), sp(3400, Robot, 3), sp(3900, Drone, 3),
		},
	},
	{
		ID: "classic_3", Name: "Wild Forest", Background: "forest", Width: 5000, NewAlien: defs.XLR8,
		Spawns: []Spawn{
			sp(400, Drone, 2), sp(900, Robot, 3), sp(1400, Drone, 3), sp(2000, Robot, 4),
			sp(2600, Drone, 3), sp(3200, Robot, 3), sp(3800, Drone, 2), sp(4300, Robot, 4),
		},
	},
	{
		ID: "classic_4", Name: "Space Station", Background: "space", Width: 5500, NewAlien: defs.Diamondhead,
		Spawns: []Spawn{
			sp(400, Drone, 3), sp(900, Robot, 3), sp(1500, Drone, 3), sp(2100, Robot, 4),
			sp(2700, Drone, 4), sp(3300, Robot, 4), sp(3900, Drone, 3), sp(4500, Robot, 5),
			sp(5000, Drone, 3),
		},
	},
}

// Levels returns the campaign in play order.
func Levels() []Level {
	out := slices.Clone(levels)
	for i := range out {
		out[i].Spawns = slices.Clone(out[i].Spawns)
	}
	return out
}

// ProjectileKind selects a player projectile's behaviour.
type ProjectileKind string

const (
	Fireball  ProjectileKind = "fireball"
	Crystal   ProjectileKind = "crystal"
	PunchWave ProjectileKind = "punch_wave"
	SpeedDash ProjectileKind = "speed_dash"
)

// Consumed reports whether the projectile disappears on its first hit.
func (k ProjectileKind) Consumed() bool {
	return k == Fireball || k == Crystal
}
