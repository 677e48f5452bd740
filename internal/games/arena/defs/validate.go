package defs

import (
	"errors"
	"fmt"
)

// ValidationError contains details about a table integrity failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the integrity of every table. All problems are reported,
// joined into one error.
func Validate() error {
	var errs []error
	for _, id := range alienOrder {
		if _, ok := aliens[id]; !ok {
			errs = append(errs, ValidationError{Code: "MISSING_ALIEN", Message: fmt.Sprintf("alien %q has no profile", id)})
		}
	}
	for _, b := range bosses {
		if err := ValidateBoss(b); err != nil {
			errs = append(errs, err)
		}
	}
	for _, wd := range worlds {
		for _, m := range wd.Missions {
			if err := ValidateMission(m); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// ValidateBoss checks that phases are non-empty, start at full health and
// have strictly descending thresholds, and that every pattern has a duration.
func ValidateBoss(b Boss) error {
	if len(b.Phases) == 0 {
		return ValidationError{Code: "NO_PHASES", Message: fmt.Sprintf("boss %q has no phases", b.ID)}
	}
	if b.Phases[0].HealthThreshold != 1 {
		return ValidationError{Code: "FIRST_PHASE", Message: fmt.Sprintf("boss %q first phase threshold is %v, want 1", b.ID, b.Phases[0].HealthThreshold)}
	}
	for i, ph := range b.Phases {
		if i > 0 && ph.HealthThreshold >= b.Phases[i-1].HealthThreshold {
			return ValidationError{Code: "PHASE_ORDER", Message: fmt.Sprintf("boss %q phase %d threshold does not descend", b.ID, i)}
		}
		if len(ph.Patterns) == 0 {
			return ValidationError{Code: "NO_PATTERNS", Message: fmt.Sprintf("boss %q phase %d has no patterns", b.ID, i)}
		}
		for j, p := range ph.Patterns {
			if p.Duration <= 0 {
				return ValidationError{Code: "PATTERN_DURATION", Message: fmt.Sprintf("boss %q phase %d pattern %d has no duration", b.ID, i, j)}
			}
		}
	}
	return nil
}

// ValidateMission checks a mission's schedule and references.
func ValidateMission(m Mission) error {
	if m.ArenaRadius <= 0 {
		return ValidationError{Code: "ARENA_RADIUS", Message: fmt.Sprintf("mission %q has non-positive arena radius", m.ID)}
	}
	if len(m.Waves) == 0 {
		return ValidationError{Code: "NO_WAVES", Message: fmt.Sprintf("mission %q has no waves", m.ID)}
	}
	for i, wv := range m.Waves {
		for _, grp := range wv.Enemies {
			if _, ok := enemies[grp.Kind]; !ok {
				return ValidationError{Code: "UNKNOWN_ENEMY", Message: fmt.Sprintf("mission %q wave %d uses unknown enemy %q", m.ID, i, grp.Kind)}
			}
		}
	}
	if m.IsBoss {
		if _, ok := bosses[m.Boss]; !ok {
			return ValidationError{Code: "UNKNOWN_BOSS", Message: fmt.Sprintf("mission %q references unknown boss %q", m.ID, m.Boss)}
		}
	}
	for _, id := range m.UnlockAliens {
		if _, ok := aliens[id]; !ok {
			return ValidationError{Code: "UNKNOWN_ALIEN", Message: fmt.Sprintf("mission %q unlocks unknown alien %q", m.ID, id)}
		}
	}
	return nil
}
