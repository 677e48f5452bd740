package defs

import (
	"fmt"
	"slices"
)

// LookupError reports an id that is missing from a definition table.
type LookupError struct {
	Table string
	ID    string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("defs: unknown %s %q", e.Table, e.ID)
}

// LookupAlien returns the profile for id.
func LookupAlien(id AlienID) (Alien, error) {
	a, ok := aliens[id]
	if !ok {
		return Alien{}, &LookupError{Table: "alien", ID: string(id)}
	}
	return a, nil
}

// LookupEnemy returns the stats for kind.
func LookupEnemy(kind EnemyKind) (Enemy, error) {
	e, ok := enemies[kind]
	if !ok {
		return Enemy{}, &LookupError{Table: "enemy", ID: string(kind)}
	}
	return e, nil
}

// LookupBoss returns the boss definition. The phase list is copied; pattern
// params are shared and must not be modified.
func LookupBoss(id BossID) (Boss, error) {
	b, ok := bosses[id]
	if !ok {
		return Boss{}, &LookupError{Table: "boss", ID: string(id)}
	}
	b.Phases = slices.Clone(b.Phases)
	return b, nil
}

// LookupMission finds a mission by id across all worlds.
func LookupMission(id string) (Mission, error) {
	for _, wd := range worlds {
		for _, m := range wd.Missions {
			if m.ID == id {
				return m, nil
			}
		}
	}
	return Mission{}, &LookupError{Table: "mission", ID: id}
}

// LookupWorld returns a world by id.
func LookupWorld(id WorldID) (World, error) {
	for _, wd := range worlds {
		if wd.ID == id {
			return wd, nil
		}
	}
	return World{}, &LookupError{Table: "world", ID: string(id)}
}

// Worlds returns the worlds in campaign order.
func Worlds() []World {
	return slices.Clone(worlds)
}

// WorldIndex returns the campaign position of a world, or -1.
func WorldIndex(id WorldID) int {
	for i, wd := range worlds {
		if wd.ID == id {
			return i
		}
	}
	return -1
}

// Missions returns every mission in campaign order.
func Missions() []Mission {
	var out []Mission
	for _, wd := range worlds {
		out = append(out, wd.Missions...)
	}
	return out
}

// MustAlien is LookupAlien for ids known at compile time.
func MustAlien(id AlienID) Alien {
	a, err := LookupAlien(id)
	if err != nil {
		panic(err)
	}
	return a
}

// MustEnemy is LookupEnemy for kinds known at compile time.
func MustEnemy(kind EnemyKind) Enemy {
	e, err := LookupEnemy(kind)
	if err != nil {
		panic(err)
	}
	return e
}

// MustBoss is LookupBoss for ids known at compile time.
func MustBoss(id BossID) Boss {
	b, err := LookupBoss(id)
	if err != nil {
		panic(err)
	}
	return b
}

// MustMission is LookupMission for ids known at compile time.
func MustMission(id string) Mission {
	m, err := LookupMission(id)
	if err != nil {
		panic(err)
	}
	return m
}
