package defs

type params = map[string]float64

func chase(d float64) Pattern { return Pattern{Kind: PatternChase, Duration: d} }
func charge(d float64) Pattern { return Pattern{Kind: PatternCharge, Duration: d} }

func shoot(d, cooldown, count, spread float64) Pattern {
	return Pattern{Kind: PatternShoot, Duration: d, Cooldown: cooldown, Params: params{"count": count, "spread": spread}}
}

func spiral(d, arms, interval, rotSpeed float64) Pattern {
	return Pattern{Kind: PatternSpiral, Duration: d, Params: params{"arms": arms, "interval": interval, "rotSpeed": rotSpeed}}
}

func summon(d, kind, count float64) Pattern {
	return Pattern{Kind: PatternSummon, Duration: d, Params: params{"type": kind, "count": count}}
}

func aoe(d, radius float64) Pattern {
	return Pattern{Kind: PatternAOE, Duration: d, Params: params{"radius": radius}}
}

var bosses = map[BossID]Boss{
	VilgaxMech: {
		ID: VilgaxMech, Name: "Vilgax Mech", Radius: 45, Health: 40, Color: "#4a148c", AccentColor: "#ff0000",
		Phases: []Phase{
			{HealthThreshold: 1, Speed: 60, Patterns: []Pattern{chase(3), shoot(4, 0.8, 3, 0.4), chase(2)}},
			{HealthThreshold: 0.5, Speed: 80, Patterns: []Pattern{charge(2.5), spiral(4, 3, 0.18, 2.5), chase(2), shoot(3, 0.5, 5, 0.3)}},
		},
	},
	SandWorm: {
		ID: SandWorm, Name: "Sand Worm", Radius: 40, Health: 50, Color: "#8d6e3f", AccentColor: "#d4a843",
		Phases: []Phase{
			{HealthThreshold: 1, Speed: 50, Patterns: []Pattern{charge(3), aoe(2, 120), chase(3)}},
			{HealthThreshold: 0.5, Speed: 70, Patterns: []Pattern{summon(2, 2, 3), charge(2), shoot(3, 0.6, 4, 0.5), aoe(2, 150)}},
		},
	},
	ShadowBeast: {
		ID: ShadowBeast, Name: "Shadow Beast", Radius: 42, Health: 55, Color: "#1a1a2e", AccentColor: "#9933ff",
		Phases: []Phase{
			{HealthThreshold: 1, Speed: 80, Patterns: []Pattern{chase(2), shoot(3, 0.6, 5, 0.35), charge(2.5)}},
			{HealthThreshold: 0.5, Speed: 100, Patterns: []Pattern{spiral(4, 4, 0.15, 3), summon(2, 0, 4), charge(2), shoot(3, 0.4, 7, 0.25)}},
		},
	},
	Kraken: {
		ID: Kraken, Name: "Kraken", Radius: 50, Health: 65, Color: "#004466", AccentColor: "#00ccff",
		Phases: []Phase{
			{HealthThreshold: 1, Speed: 40, Patterns: []Pattern{aoe(3, 140), shoot(4, 0.7, 6, 0.3), chase(3)}},
			{HealthThreshold: 0.6, Speed: 55, Patterns: []Pattern{summon(2, 0, 3), spiral(4, 5, 0.12, 2), charge(2.5)}},
			{HealthThreshold: 0.3, Speed: 70, Patterns: []Pattern{charge(2), spiral(5, 6, 0.1, 3.5), aoe(2, 180), shoot(3, 0.3, 8, 0.2)}},
		},
	},
	VilgaxSupreme: {
		ID: VilgaxSupreme, Name: "Vilgax Supreme", Radius: 48, Health: 80, Color: "#2a0a4a", AccentColor: "#ff0044",
		Phases: []Phase{
			{HealthThreshold: 1, Speed: 70, Patterns: []Pattern{shoot(3, 0.5, 5, 0.3), charge(2.5), chase(2)}},
			{HealthThreshold: 0.65, Speed: 90, Patterns: []Pattern{spiral(4, 4, 0.14, 3), summon(2, 3, 3), charge(2), shoot(3, 0.35, 7, 0.25)}},
			{HealthThreshold: 0.3, Speed: 110, Patterns: []Pattern{aoe(2, 160), spiral(5, 6, 0.1, 4), charge(1.5), summon(2, 1, 4), shoot(3, 0.25, 9, 0.2)}},
		},
	},
}
