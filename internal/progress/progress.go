// Package progress holds the campaign save data and the rules that update
// it when a mission ends: best stars, alien unlocks and world gating.
package progress

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// FinalMissionID is the last mission of the campaign.
const FinalMissionID = "vilgax_3"

// SaveData is the persistent campaign state.
type SaveData struct {
	UnlockedAliens []defs.AlienID `yaml:"unlocked_aliens"`
	MissionStars   map[string]int `yaml:"mission_stars"`
	CurrentWorld   int            `yaml:"current_world"` // Highest world index open to the player
}

// Default returns a fresh save with only Heatblast unlocked.
func Default() SaveData {
	return SaveData{
		UnlockedAliens: []defs.AlienID{defs.Heatblast},
		MissionStars:   map[string]int{},
	}
}

// Clone returns a deep copy of s.
func (s SaveData) Clone() SaveData {
	out := SaveData{
		UnlockedAliens: slices.Clone(s.UnlockedAliens),
		MissionStars:   maps.Clone(s.MissionStars),
		CurrentWorld:   s.CurrentWorld,
	}
	if out.MissionStars == nil {
		out.MissionStars = map[string]int{}
	}
	return out
}

// Stars returns the best star count recorded for a mission.
func (s SaveData) Stars(missionID string) int {
	return s.MissionStars[missionID]
}

// TotalStars sums the best stars over every mission.
func (s SaveData) TotalStars() int {
	total := 0
	for _, n := range s.MissionStars {
		total += n
	}
	return total
}

// HasAlien reports whether id is unlocked.
func (s SaveData) HasAlien(id defs.AlienID) bool {
	return slices.Contains(s.UnlockedAliens, id)
}

// Apply records a finished mission and returns the updated save along with
// the aliens it unlocked. s is not modified.
//
// Stars only ever improve. A cleared boss mission opens the next world,
// capped at the last one.
func Apply(s SaveData, mission defs.Mission, stars int) (SaveData, []defs.AlienID) {
	next := s.Clone()
	stars = min(max(stars, 0), 3)
	if stars > next.MissionStars[mission.ID] {
		next.MissionStars[mission.ID] = stars
	}

	var unlocked []defs.AlienID
	for _, id := range mission.UnlockAliens {
		if !next.HasAlien(id) {
			next.UnlockedAliens = append(next.UnlockedAliens, id)
			unlocked = append(unlocked, id)
		}
	}

	if mission.IsBoss {
		if wi := defs.WorldIndex(mission.World); wi >= 0 && wi+1 > next.CurrentWorld {
			next.CurrentWorld = min(wi+1, len(defs.Worlds())-1)
		}
	}
	return next, unlocked
}

// MissionUnlocked reports whether the mission at missionIdx in world
// worldIdx can be played. The first mission of an open world is always
// available; later ones need a star on the mission before them.
func MissionUnlocked(s SaveData, worldIdx, missionIdx int) bool {
	if worldIdx > s.CurrentWorld {
		return false
	}
	if missionIdx == 0 {
		return true
	}
	worlds := defs.Worlds()
	if worldIdx < 0 || worldIdx >= len(worlds) || missionIdx >= len(worlds[worldIdx].Missions) {
		return false
	}
	prev := worlds[worldIdx].Missions[missionIdx-1]
	return s.Stars(prev.ID) > 0
}

// IsMissionUnlocked is MissionUnlocked for a mission value.
func IsMissionUnlocked(s SaveData, m defs.Mission) bool {
	return MissionUnlocked(s, defs.WorldIndex(m.World), m.Index)
}

// NextMission returns the first playable mission without stars, or the
// last playable mission once everything open has been cleared.
func NextMission(s SaveData) defs.Mission {
	var last defs.Mission
	for wi, w := range defs.Worlds() {
		for mi, m := range w.Missions {
			if !MissionUnlocked(s, wi, mi) {
				continue
			}
			if s.Stars(m.ID) == 0 {
				return m
			}
			last = m
		}
	}
	return last
}

// IsFinal reports whether m ends the campaign.
func IsFinal(m defs.Mission) bool {
	return m.ID == FinalMissionID
}

// Encode serializes a save as YAML.
func Encode(s SaveData) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("progress: encode save: %w", err)
	}
	return data, nil
}

// Decode parses a YAML save. Missing fields keep their defaults and
// unknown aliens or missions are dropped.
func Decode(data []byte) (SaveData, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("progress: decode save: %w", err)
	}
	return sanitize(s), nil
}

func sanitize(s SaveData) SaveData {
	out := Default()
	out.UnlockedAliens = out.UnlockedAliens[:0]
	for _, id := range s.UnlockedAliens {
		if _, err := defs.LookupAlien(id); err == nil && !slices.Contains(out.UnlockedAliens, id) {
			out.UnlockedAliens = append(out.UnlockedAliens, id)
		}
	}
	if len(out.UnlockedAliens) == 0 {
		out.UnlockedAliens = append(out.UnlockedAliens, defs.Heatblast)
	}
	for id, n := range s.MissionStars {
		if _, err := defs.LookupMission(id); err == nil && n > 0 {
			out.MissionStars[id] = min(n, 3)
		}
	}
	out.CurrentWorld = min(max(s.CurrentWorld, 0), len(defs.Worlds())-1)
	return out
}
