package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/omnitrix-arcade/internal/progress"
)

const saveKey = "campaign_save"

// LoadSave returns the stored campaign save, or the default save when
// none has been written yet.
func (s *Store) LoadSave() (progress.SaveData, error) {
	var blob []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", saveKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.Default(), nil
	}
	if err != nil {
		return progress.Default(), fmt.Errorf("storage: cannot load save: %w", err)
	}
	save, err := progress.Decode(blob)
	if err != nil {
		return progress.Default(), fmt.Errorf("storage: %w", err)
	}
	return save, nil
}

// WriteSave replaces the stored campaign save.
func (s *Store) WriteSave(save progress.SaveData) error {
	blob, err := progress.Encode(save)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		saveKey, blob,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write save: %w", err)
	}
	return nil
}

// ResetSave deletes the stored campaign save.
func (s *Store) ResetSave() error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", saveKey); err != nil {
		return fmt.Errorf("storage: cannot reset save: %w", err)
	}
	return nil
}
