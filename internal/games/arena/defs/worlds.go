package defs

func g(kind EnemyKind, n int) EnemyGroup { return EnemyGroup{Kind: kind, Count: n} }

// waves builds a schedule where the first wave arrives after 1s and
// every later wave after 2s.
func waves(groups ...[]EnemyGroup) []Wave {
	out := make([]Wave, len(groups))
	for i, grp := range groups {
		delay := 2.0
		if i == 0 {
			delay = 1
		}
		out[i] = Wave{Enemies: grp, Delay: delay}
	}
	return out
}

func w(groups ...EnemyGroup) []EnemyGroup { return groups }

var worlds = []World{
	{
		ID: Bellwood, Name: "Bellwood City", Color: "#3949ab",
		Missions: []Mission{
			{ID: "bellwood_0", Name: "City Park", Description: "Robots have overrun the park. Clear them out.",
				Difficulty: 1, ArenaRadius: 320, UnlockAliens: []AlienID{Heatblast},
				Waves: waves(w(g(Robot, 3)), w(g(Robot, 3), g(Drone, 2)), w(g(Robot, 4), g(Drone, 2)))},
			{ID: "bellwood_1", Name: "Downtown", Description: "The invasion reaches downtown and the first chargers appear.",
				Difficulty: 1, ArenaRadius: 340, UnlockAliens: []AlienID{FourArms},
				Waves: waves(w(g(Robot, 4), g(Drone, 1)), w(g(Drone, 3), g(Robot, 2)), w(g(Robot, 3), g(Drone, 3), g(Charger, 1)))},
			{ID: "bellwood_2", Name: "Rooftops", Description: "Drone swarms circle the rooftops.",
				Difficulty: 1, ArenaRadius: 300,
				Waves: waves(w(g(Drone, 4)), w(g(Robot, 3), g(Drone, 3)), w(g(Charger, 2), g(Drone, 3), g(Robot, 2)), w(g(Robot, 4), g(Drone, 3)))},
			{ID: "bellwood_3", Name: "Vilgax Mech", Description: "Vilgax sends his war mech into the city.",
				Difficulty: 2, IsBoss: true, ArenaRadius: 380, Boss: VilgaxMech,
				Waves: waves(w(g(Robot, 3)), w(g(Drone, 3)))},
		},
	},
	{
		ID: Desert, Name: "Desert Wasteland", Color: "#e65100",
		Missions: []Mission{
			{ID: "desert_0", Name: "Oasis Camp", Description: "Chargers guard the oasis. Outrun them.",
				Difficulty: 1, ArenaRadius: 340, UnlockAliens: []AlienID{XLR8},
				Waves: waves(w(g(Charger, 2), g(Robot, 2)), w(g(Robot, 3), g(Drone, 3)), w(g(Charger, 3), g(Drone, 2)))},
			{ID: "desert_1", Name: "Canyon Pass", Description: "Turrets hold the canyon walls.",
				Difficulty: 2, ArenaRadius: 320, UnlockAliens: []AlienID{Diamondhead},
				Waves: waves(w(g(Turret, 2), g(Robot, 3)), w(g(Charger, 3), g(Drone, 2)), w(g(Turret, 2), g(Charger, 2), g(Robot, 2)), w(g(Drone, 4), g(Robot, 3)))},
			{ID: "desert_2", Name: "Sandstorm", Description: "Enemies pour in from every side of the storm.",
				Difficulty: 2, ArenaRadius: 350,
				Waves: waves(w(g(Charger, 3), g(Robot, 3)), w(g(Turret, 3), g(Drone, 3)), w(g(Charger, 4), g(Robot, 3)), w(g(Turret, 2), g(Drone, 4), g(Charger, 2)))},
			{ID: "desert_3", Name: "Sand Worm Lair", Description: "The Sand Worm bursts from the dunes. Dodge the charges.",
				Difficulty: 2, IsBoss: true, ArenaRadius: 400, Boss: SandWorm,
				Waves: waves(w(g(Charger, 3)), w(g(Robot, 3), g(Drone, 2)))},
		},
	},
	{
		ID: Shadow, Name: "Shadow Forest", Color: "#2e7d32",
		Missions: []Mission{
			{ID: "shadow_0", Name: "Dark Clearing", Description: "Something moves between the trees.",
				Difficulty: 2, ArenaRadius: 330, UnlockAliens: []AlienID{Ghostfreak},
				Waves: waves(w(g(Drone, 3), g(Robot, 2)), w(g(Charger, 2), g(Drone, 3)), w(g(Robot, 4), g(Turret, 2)), w(g(Charger, 3), g(Drone, 3)))},
			{ID: "shadow_1", Name: "Mushroom Grove", Description: "Turrets and chargers hide under giant mushrooms.",
				Difficulty: 2, ArenaRadius: 340, UnlockAliens: []AlienID{Wildmutt},
				Waves: waves(w(g(Charger, 3), g(Turret, 2)), w(g(Drone, 4), g(Robot, 3)), w(g(Turret, 3), g(Charger, 3)), w(g(Robot, 4), g(Drone, 4)))},
			{ID: "shadow_2", Name: "Ancient Ruins", Description: "Every enemy type waits in the ruins.",
				Difficulty: 2, ArenaRadius: 350,
				Waves: waves(w(g(Turret, 3), g(Robot, 3)), w(g(Charger, 4), g(Drone, 3)), w(g(Robot, 4), g(Turret, 2), g(Charger, 2)), w(g(Drone, 5), g(Charger, 3)))},
			{ID: "shadow_3", Name: "Shadow Beast Den", Description: "The Shadow Beast summons minions and fires spirals.",
				Difficulty: 3, IsBoss: true, ArenaRadius: 380, Boss: ShadowBeast,
				Waves: waves(w(g(Drone, 4)), w(g(Charger, 3), g(Robot, 2)))},
		},
	},
	{
		ID: Ocean, Name: "Deep Ocean", Color: "#006688",
		Missions: []Mission{
			{ID: "ocean_0", Name: "Coral Reef", Description: "Drones and turrets patrol the reef. Keep moving.",
				Difficulty: 2, ArenaRadius: 340, UnlockAliens: []AlienID{Stinkfly},
				Waves: waves(w(g(Drone, 4), g(Robot, 2)), w(g(Turret, 2), g(Charger, 3)), w(g(Robot, 4), g(Drone, 3)), w(g(Charger, 3), g(Turret, 2), g(Drone, 2)))},
			{ID: "ocean_1", Name: "Sunken Ship", Description: "Heavy resistance waits inside the wreck.",
				Difficulty: 2, ArenaRadius: 350, UnlockAliens: []AlienID{Ripjaws},
				Waves: waves(w(g(Turret, 3), g(Drone, 3)), w(g(Charger, 4), g(Robot, 3)), w(g(Turret, 3), g(Drone, 4)), w(g(Robot, 5), g(Charger, 3)))},
			{ID: "ocean_2", Name: "Abyssal Trench", Description: "Five waves of the fiercest enemies in the deep.",
				Difficulty: 3, ArenaRadius: 360,
				Waves: waves(w(g(Charger, 4), g(Turret, 3)), w(g(Drone, 5), g(Robot, 3)), w(g(Turret, 3), g(Charger, 3), g(Robot, 3)), w(g(Drone, 5), g(Charger, 4)), w(g(Robot, 5), g(Turret, 3)))},
			{ID: "ocean_3", Name: "Kraken Depths", Description: "A three-phase fight against the Kraken.",
				Difficulty: 3, IsBoss: true, ArenaRadius: 420, Boss: Kraken,
				Waves: waves(w(g(Drone, 4), g(Robot, 3)), w(g(Charger, 3), g(Turret, 2)))},
		},
	},
	{
		ID: Vilgax, Name: "Vilgax's Domain", Color: "#4a148c",
		Missions: []Mission{
			{ID: "vilgax_0", Name: "Outer Defenses", Description: "Break the outer defense grid.",
				Difficulty: 3, ArenaRadius: 360, UnlockAliens: []AlienID{Cannonbolt},
				Waves: waves(w(g(Turret, 3), g(Charger, 3)), w(g(Robot, 4), g(Drone, 4)), w(g(Charger, 4), g(Turret, 3)), w(g(Drone, 5), g(Robot, 4)), w(g(Turret, 3), g(Charger, 4)))},
			{ID: "vilgax_1", Name: "Command Center", Description: "Every enemy type guards the command center.",
				Difficulty: 3, ArenaRadius: 350, UnlockAliens: []AlienID{Upgrade},
				Waves: waves(w(g(Charger, 4), g(Drone, 4)), w(g(Turret, 4), g(Robot, 4)), w(g(Charger, 5), g(Drone, 3)), w(g(Robot, 5), g(Turret, 3), g(Charger, 2)), w(g(Drone, 5), g(Charger, 4)))},
			{ID: "vilgax_2", Name: "Throne Room", Description: "The largest waves stand before the throne.",
				Difficulty: 3, ArenaRadius: 370,
				Waves: waves(w(g(Turret, 4), g(Charger, 4)), w(g(Robot, 5), g(Drone, 4)), w(g(Charger, 5), g(Turret, 3), g(Drone, 3)), w(g(Robot, 5), g(Drone, 5)), w(g(Charger, 5), g(Turret, 4), g(Robot, 3)))},
			{ID: "vilgax_3", Name: "Vilgax Supreme", Description: "The final battle against a three-phase Vilgax.",
				Difficulty: 3, IsBoss: true, ArenaRadius: 440, Boss: VilgaxSupreme, UnlockAliens: []AlienID{WayBig},
				Waves: waves(w(g(Charger, 4), g(Drone, 4)), w(g(Robot, 4), g(Turret, 3)))},
		},
	},
}

func init() {
	for wi := range worlds {
		for mi := range worlds[wi].Missions {
			m := &worlds[wi].Missions[mi]
			m.World = worlds[wi].ID
			m.Index = mi
			m.Background = string(worlds[wi].ID)
		}
	}
}
