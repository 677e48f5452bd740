package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished or abandoned mission attempt.
type Run struct {
	ID          string // UUID, generated when empty
	Mode        string // "arena" or "classic"
	MissionID   string
	Alien       string
	Difficulty  string
	Score       int
	Stars       int
	Completed   bool
	DamageDealt int
	DamageTaken int
	Duration    float64 // Seconds of simulated time
	CreatedAt   time.Time
}

const runColumns = `id, mode, mission_id, alien, difficulty, score, stars, completed,
		damage_dealt, damage_taken, duration_secs, created_at`

// RecordRun stores a run and returns its id.
func (s *Store) RecordRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Difficulty == "" {
		r.Difficulty = "normal"
	}
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, mode, mission_id, alien, difficulty, score, stars, completed, damage_dealt, damage_taken, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Mode, r.MissionID, r.Alien, r.Difficulty, r.Score, r.Stars, r.Completed,
		r.DamageDealt, r.DamageTaken, r.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}
	return r.ID, nil
}

// RunByID retrieves a run, or nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the latest runs, newest first.
// A non-positive limit means 20.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// BestRuns returns the highest scoring completed run of every mission.
// Ties go to the earlier run.
func (s *Store) BestRuns() (map[string]Run, error) {
	runs, err := s.queryRuns(
		`SELECT ` + runColumns + `
		 FROM runs
		 WHERE completed = 1
		 ORDER BY mission_id, score DESC, rowid ASC`,
	)
	if err != nil {
		return nil, err
	}
	best := make(map[string]Run)
	for _, r := range runs {
		if _, ok := best[r.MissionID]; !ok {
			best[r.MissionID] = r
		}
	}
	return best, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	err := sc.Scan(&r.ID, &r.Mode, &r.MissionID, &r.Alien, &r.Difficulty, &r.Score, &r.Stars,
		&r.Completed, &r.DamageDealt, &r.DamageTaken, &r.Duration, &createdAt)
	if err != nil {
		return Run{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}
