package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/progress"
	"github.com/vovakirdan/omnitrix-arcade/internal/storage"
)

// SaveAware games replay with the save the recorder keeps current.
type SaveAware interface {
	UpdateSave(save progress.SaveData)
}

// Recorder persists finished missions: the run history, the score table
// and campaign progress. Every write is best-effort; failures are logged
// and the game continues.
type Recorder struct {
	store       *storage.Store
	logger      *log.Logger
	difficulty  string
	save        progress.SaveData
	persistSave bool
}

// NewRecorder creates a recorder. A nil store records nothing but still
// tracks progress in memory. When persistSave is false the campaign save
// is never written back, which keeps remote sessions from sharing it.
func NewRecorder(store *storage.Store, logger *log.Logger, difficulty string, persistSave bool) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Recorder{
		store:       store,
		logger:      logger,
		difficulty:  difficulty,
		save:        progress.Default(),
		persistSave: persistSave,
	}
	if store != nil && persistSave {
		save, err := store.LoadSave()
		if err != nil {
			logger.Warn("could not load save, starting fresh", "error", err)
		}
		r.save = save
	}
	return r
}

// Save returns the current campaign save.
func (r *Recorder) Save() progress.SaveData {
	return r.save.Clone()
}

// RecordResult stores a mission result of the given mode and returns the
// aliens it unlocked. Arena results also advance the campaign save.
func (r *Recorder) RecordResult(mode string, res core.MissionResult) []defs.AlienID {
	r.logger.Info("mission finished",
		"mode", mode, "mission", res.MissionID, "score", res.Score,
		"stars", res.Stars, "completed", res.Completed)

	if r.store != nil {
		run := storage.Run{
			Mode:        mode,
			MissionID:   res.MissionID,
			Alien:       res.Alien,
			Difficulty:  r.difficulty,
			Score:       res.Score,
			Stars:       res.Stars,
			Completed:   res.Completed,
			DamageDealt: res.DamageDealt,
			DamageTaken: res.DamageTaken,
			Duration:    res.Seconds,
		}
		if _, err := r.store.RecordRun(run); err != nil {
			r.logger.Warn("could not record run", "error", err)
		}
	}

	if !res.Completed {
		return nil
	}
	mission, err := defs.LookupMission(res.MissionID)
	if err != nil {
		// Side-scroller levels have no campaign entry.
		return nil
	}
	next, unlocked := progress.Apply(r.save, mission, res.Stars)
	r.save = next
	if len(unlocked) > 0 {
		r.logger.Info("aliens unlocked", "aliens", unlocked)
	}
	if r.store != nil && r.persistSave {
		if err := r.store.WriteSave(next); err != nil {
			r.logger.Warn("could not write save", "error", err)
		}
	}
	return unlocked
}

// RecordScore adds a final score to the score table.
func (r *Recorder) RecordScore(mode string, score int) {
	if r.store == nil || score <= 0 {
		return
	}
	if _, err := r.store.SaveScore(mode, score); err != nil {
		r.logger.Warn("could not save score", "mode", mode, "error", err)
	}
}
