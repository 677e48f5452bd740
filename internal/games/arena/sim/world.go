package sim

import (
	"fmt"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
)

// WaveDirector walks a mission's wave schedule.
type WaveDirector struct {
	Mission         defs.Mission
	CurrentWave     int
	TotalWaves      int
	WaveDelay       core.Countdown
	WaveActive      bool
	AllWavesSpawned bool
	BossSpawned     bool
}

// NewWaveDirector validates mission and prepares its first wave.
func NewWaveDirector(mission defs.Mission) (*WaveDirector, error) {
	if err := defs.ValidateMission(mission); err != nil {
		return nil, fmt.Errorf("sim: wave director: %w", err)
	}
	w := &WaveDirector{
		Mission:    mission,
		TotalWaves: len(mission.Waves),
	}
	w.WaveDelay.Set(mission.Waves[0].Delay)
	return w, nil
}

// DisplayWave returns the 1-based wave number, capped at the total.
func (w *WaveDirector) DisplayWave() int {
	return min(w.CurrentWave+1, w.TotalWaves)
}

// UpdateWorld counts down to the next wave and spawns it, or advances the
// schedule once the active wave is cleared. New enemies are returned for
// the caller to add.
func (a *Arena) UpdateWorld(w *WaveDirector, dt float64) []*Enemy {
	if w.AllWavesSpawned {
		return nil
	}

	if !w.WaveActive {
		w.WaveDelay.Tick(dt)
		if !w.WaveDelay.Expired() || w.CurrentWave >= len(w.Mission.Waves) {
			return nil
		}
		a.WaveIndex, a.TotalWaves = w.CurrentWave, w.TotalWaves
		wave := w.Mission.Waves[w.CurrentWave]
		a.Audio.Play(core.CueWaveStart)
		spawned := make([]*Enemy, 0, wave.Size())
		for _, group := range wave.Enemies {
			for range group.Count {
				spawned = append(spawned, a.spawnKnown(group.Kind))
			}
		}
		w.WaveActive = true
		return spawned
	}

	if a.LivingEnemies() > 0 {
		return nil
	}
	w.WaveActive = false
	w.CurrentWave++
	if w.CurrentWave >= w.TotalWaves {
		w.AllWavesSpawned = true
		return nil
	}
	w.WaveDelay.Set(w.Mission.Waves[w.CurrentWave].Delay)
	return nil
}

// IsLevelComplete reports whether every wave has spawned, no enemy is
// alive and, on a boss mission, the boss is dead.
func IsLevelComplete(w *WaveDirector, enemies []*Enemy, bossAlive bool) bool {
	if !w.AllWavesSpawned {
		return false
	}
	for _, e := range enemies {
		if e.Alive {
			return false
		}
	}
	return !(w.Mission.IsBoss && bossAlive)
}
