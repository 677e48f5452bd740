package defs

var alienOrder = []AlienID{
	Heatblast, FourArms, XLR8, Diamondhead, Ghostfreak, Wildmutt,
	Stinkfly, Cannonbolt, Upgrade, Ripjaws, WayBig,
}

var aliens = map[AlienID]Alien{
	Heatblast: {
		ID: Heatblast, Name: "Heatblast", Color: "#ff6600", AccentColor: "#ffaa00",
		Radius: 22, Speed: 200, Health: 6,
		Basic: Attack{Name: "Fireball", Damage: 2, Cooldown: 0.4, Range: 400, ProjectileSpeed: 350, ProjectileRadius: 8, Kind: AttackProjectile, Color: "#ff4400"},
		Special: Ability{Name: "Fire Ring", Damage: 3, Cooldown: 5, Range: 120, Kind: AbilityAOE, Duration: 0.5, Color: "#ff6600",
			Description: "Burns every enemy close by"},
		Description: "Living flame that hurls fireballs.",
	},
	FourArms: {
		ID: FourArms, Name: "Four Arms", Color: "#cc0000", AccentColor: "#ff4444",
		Radius: 28, Speed: 160, Health: 10,
		Basic: Attack{Name: "Mega Punch", Damage: 3, Cooldown: 0.5, Range: 60, ProjectileRadius: 35, Kind: AttackMelee, Color: "#ff2222"},
		Special: Ability{Name: "Ground Slam", Damage: 4, Cooldown: 6, Range: 150, Kind: AbilityAOE, Duration: 0.6, Color: "#cc0000",
			Description: "Slams the ground and hits everything around"},
		Description: "Four huge fists and a lot of muscle.",
	},
	XLR8: {
		ID: XLR8, Name: "XLR8", Color: "#0088ff", AccentColor: "#00ccff",
		Radius: 18, Speed: 320, Health: 5,
		Basic: Attack{Name: "Speed Strike", Damage: 1, Cooldown: 0.2, Range: 350, ProjectileSpeed: 500, ProjectileRadius: 6, Kind: AttackProjectile, Color: "#00aaff"},
		Special: Ability{Name: "Dash Through", Damage: 2, Cooldown: 4, Range: 250, Kind: AbilityDash, Duration: 0.3, Color: "#0088ff",
			Description: "Blurs straight through enemies"},
		Description: "Nothing in the Omnitrix moves faster.",
	},
	Diamondhead: {
		ID: Diamondhead, Name: "Diamondhead", Color: "#00ccaa", AccentColor: "#80ffec",
		Radius: 24, Speed: 180, Health: 8,
		Basic: Attack{Name: "Crystal Shard", Damage: 2, Cooldown: 0.45, Range: 380, ProjectileSpeed: 320, ProjectileRadius: 7, Kind: AttackProjectile, Color: "#80ffec"},
		Special: Ability{Name: "Crystal Shield", Damage: 1, Cooldown: 7, Range: 50, Kind: AbilityShield, Duration: 3, Color: "#00ccaa",
			Description: "Grows a crystal barrier that blocks all damage"},
		Description: "A body of unbreakable living crystal.",
	},
	Ghostfreak: {
		ID: Ghostfreak, Name: "Ghostfreak", Color: "#9933ff", AccentColor: "#cc88ff",
		Radius: 20, Speed: 210, Health: 6,
		Basic: Attack{Name: "Phase Claw", Damage: 2, Cooldown: 0.4, Range: 55, ProjectileRadius: 30, Kind: AttackMelee, Color: "#bb77ff"},
		Special: Ability{Name: "Terror Wave", Damage: 3, Cooldown: 5, Range: 140, Kind: AbilityAOE, Duration: 0.5, Color: "#9933ff",
			Description: "Pulses ghostly energy outward"},
		Description: "A phantom that slips through walls.",
	},
	Wildmutt: {
		ID: Wildmutt, Name: "Wildmutt", Color: "#cc6600", AccentColor: "#ff9944",
		Radius: 22, Speed: 260, Health: 7,
		Basic: Attack{Name: "Bite", Damage: 3, Cooldown: 0.35, Range: 50, ProjectileRadius: 28, Kind: AttackMelee, Color: "#ff8800"},
		Special: Ability{Name: "Pounce", Damage: 4, Cooldown: 4, Range: 200, Kind: AbilityDash, Duration: 0.25, Color: "#cc6600", ProjectileSpeed: 600,
			Description: "Leaps onto the closest enemy"},
		Description: "A feral hunter that tracks by scent.",
	},
	Stinkfly: {
		ID: Stinkfly, Name: "Stinkfly", Color: "#66cc00", AccentColor: "#88ff22",
		Radius: 20, Speed: 190, Health: 5,
		Basic: Attack{Name: "Goo Spit", Damage: 2, Cooldown: 0.5, Range: 420, ProjectileSpeed: 300, ProjectileRadius: 9, Kind: AttackProjectile, Color: "#88ff22"},
		Special: Ability{Name: "Swarm Cloud", Damage: 1, Cooldown: 6, Range: 100, Kind: AbilityAOE, Duration: 3, Color: "#66cc00",
			Description: "Releases a stinging cloud around itself"},
		Description: "A buzzing flyer that spits sticky goo.",
	},
	Cannonbolt: {
		ID: Cannonbolt, Name: "Cannonbolt", Color: "#ffcc00", AccentColor: "#ffffff",
		Radius: 26, Speed: 170, Health: 9,
		Basic: Attack{Name: "Roll Slam", Damage: 3, Cooldown: 0.5, Range: 55, ProjectileRadius: 32, Kind: AttackMelee, Color: "#ffdd44"},
		Special: Ability{Name: "Cannonball", Damage: 5, Cooldown: 5, Range: 300, Kind: AbilityDash, Duration: 0.4, Color: "#ffcc00", ProjectileSpeed: 500,
			Description: "Curls up and rolls over everything"},
		Description: "An armored shell that rolls like a wrecking ball.",
	},
	Upgrade: {
		ID: Upgrade, Name: "Upgrade", Color: "#111111", AccentColor: "#00ff66",
		Radius: 22, Speed: 200, Health: 6,
		Basic: Attack{Name: "Energy Beam", Damage: 2, Cooldown: 0.35, Range: 400, ProjectileSpeed: 400, ProjectileRadius: 6, Kind: AttackProjectile, Piercing: true, Color: "#00ff66"},
		Special: Ability{Name: "Tech Overload", Damage: 2, Cooldown: 6, Range: 160, Kind: AbilityAOE, Duration: 0.4, Color: "#00cc44",
			Description: "Fries every machine in range"},
		Description: "Living circuitry that takes over machines.",
	},
	Ripjaws: {
		ID: Ripjaws, Name: "Ripjaws", Color: "#006688", AccentColor: "#00ccdd",
		Radius: 24, Speed: 220, Health: 7,
		Basic: Attack{Name: "Jaw Snap", Damage: 3, Cooldown: 0.4, Range: 55, ProjectileRadius: 30, Kind: AttackMelee, Color: "#00aacc"},
		Special: Ability{Name: "Tidal Wave", Damage: 3, Cooldown: 5, Range: 200, Kind: AbilityAOE, Duration: 0.6, Color: "#006688",
			ProjectileSpeed: 350, ProjectileRadius: 40, Piercing: true,
			Description: "Crashes a wall of water over nearby enemies"},
		Description: "A deep sea predator with crushing jaws.",
	},
	WayBig: {
		ID: WayBig, Name: "Way Big", Color: "#cc2222", AccentColor: "#dddddd",
		Radius: 35, Speed: 140, Health: 12,
		Basic: Attack{Name: "Cosmic Punch", Damage: 4, Cooldown: 0.6, Range: 70, ProjectileRadius: 45, Kind: AttackMelee, Color: "#ff4444"},
		Special: Ability{Name: "Cosmic Ray", Damage: 6, Cooldown: 8, Range: 500, Kind: AbilityProjectile, Duration: 0.8, Color: "#ff6644",
			ProjectileSpeed: 300, ProjectileRadius: 25, Piercing: true,
			Description: "Fires a massive beam of cosmic energy"},
		Description: "A giant among giants.",
	},
}

// AllAliens returns every alien id in Omnitrix order.
func AllAliens() []AlienID {
	out := make([]AlienID, len(alienOrder))
	copy(out, alienOrder)
	return out
}
