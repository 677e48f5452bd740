package config

import "math"

// DifficultyManager converts the difficulty preset and progression into
// multipliers for enemy health and speed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetPreset overrides the configured preset.
func (d *DifficultyManager) SetPreset(p DifficultyPreset) {
	d.cfg.Preset = p
}

// Preset returns the active preset.
func (d *DifficultyManager) Preset() DifficultyPreset {
	if d.cfg.Preset == "" {
		return DifficultyNormal
	}
	return d.cfg.Preset
}

// Level returns the difficulty level for a wave index out of total waves.
func (d *DifficultyManager) Level(wave, total int) float64 {
	level := LevelForPreset(d.cfg.Preset)
	if d.cfg.Progression.Type == "wave" && total > 1 {
		progress := clampF(float64(wave)/float64(total-1), 0, 1)
		level += progress * d.cfg.Progression.MaxBoost
	}
	return level
}

// HealthScale returns the enemy health multiplier at a wave.
func (d *DifficultyManager) HealthScale(wave, total int) float64 {
	return math.Max(0.25, 1+d.Level(wave, total)*d.cfg.Scaling.HealthMultiplier)
}

// SpeedScale returns the enemy speed multiplier at a wave.
func (d *DifficultyManager) SpeedScale(wave, total int) float64 {
	return math.Max(0.25, 1+d.Level(wave, total)*d.cfg.Scaling.SpeedMultiplier)
}

// ScaleHealth applies the health multiplier to a base value, never below 1.
func (d *DifficultyManager) ScaleHealth(base, wave, total int) int {
	h := int(math.Round(float64(base) * d.HealthScale(wave, total)))
	if h < 1 {
		return 1
	}
	return h
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
