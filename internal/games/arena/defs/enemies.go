package defs

// enemyOrder is the index order used by the boss summon pattern's "type" param.
var enemyOrder = []EnemyKind{Robot, Drone, Turret, Charger}

var enemies = map[EnemyKind]Enemy{
	Robot:   {Kind: Robot, Radius: 18, Speed: 70, Health: 4, Damage: 1, AttackCooldown: 1.5, Color: "#888888", AccentColor: "#ff4444"},
	Drone:   {Kind: Drone, Radius: 15, Speed: 90, Health: 2, Damage: 1, AttackCooldown: 2.0, Color: "#607d8b", AccentColor: "#ff0000"},
	Turret:  {Kind: Turret, Radius: 20, Speed: 0, Health: 5, Damage: 1, AttackCooldown: 1.2, Color: "#555555", AccentColor: "#ff0000"},
	Charger: {Kind: Charger, Radius: 16, Speed: 50, Health: 3, Damage: 2, AttackCooldown: 3.0, Color: "#cc4444", AccentColor: "#ff8888"},
}

// EnemyKinds returns the enemy kinds in summon-index order.
func EnemyKinds() []EnemyKind {
	out := make([]EnemyKind, len(enemyOrder))
	copy(out, enemyOrder)
	return out
}

// EnemyKindAt maps a summon index to a kind, clamping out-of-range values.
func EnemyKindAt(i int) EnemyKind {
	if i < 0 {
		i = 0
	}
	if i >= len(enemyOrder) {
		i = len(enemyOrder) - 1
	}
	return enemyOrder[i]
}
