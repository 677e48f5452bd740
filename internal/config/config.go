// Package config provides YAML-based tuning configuration and difficulty
// management for the arena and classic game modes.
package config

// ArenaConfig contains all tuning for the top-down arena mode.
type ArenaConfig struct {
	Engine     ArenaEngine      `yaml:"engine"`
	Player     ArenaPlayer      `yaml:"player"`
	Enemies    ArenaEnemies     `yaml:"enemies"`
	Boss       ArenaBoss        `yaml:"boss"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaEngine defines frame and camera parameters.
type ArenaEngine struct {
	MaxDT         float64 `yaml:"max_dt"`         // Largest step accepted by one update
	CompleteDelay float64 `yaml:"complete_delay"` // Grace period before a clear is reported
	CameraDecay   float64 `yaml:"camera_decay"`   // Fraction of camera offset left after one second
	ViewWidth     float64 `yaml:"view_width"`
	ViewHeight    float64 `yaml:"view_height"`
	MaxParticles  int     `yaml:"max_particles"`
}

// ArenaPlayer defines player timing and scoring parameters.
type ArenaPlayer struct {
	InvincibleTime       float64 `yaml:"invincible_time"`
	ReviveInvincibleTime float64 `yaml:"revive_invincible_time"`
	ReviveFraction       float64 `yaml:"revive_fraction"`
	ComboWindow          float64 `yaml:"combo_window"`
	ComboCap             int     `yaml:"combo_cap"`
	KillScore            int     `yaml:"kill_score"`
	DashMargin           float64 `yaml:"dash_margin"`
	DashSpeed            float64 `yaml:"dash_speed"` // Used when an ability has no speed of its own
}

// ArenaEnemies defines enemy population and contact parameters.
type ArenaEnemies struct {
	SummonCap       int            `yaml:"summon_cap"`
	EdgeInset       float64        `yaml:"edge_inset"`
	ContactPushback float64        `yaml:"contact_pushback"`
	ContactDamage   map[string]int `yaml:"contact_damage"`
}

// ArenaBoss defines boss contact and reward parameters.
type ArenaBoss struct {
	ContactDamage int `yaml:"contact_damage"`
	KillBonus     int `yaml:"kill_bonus"`
}

// ClassicConfig contains all tuning for the side-scrolling mode.
type ClassicConfig struct {
	Physics    ClassicPhysics   `yaml:"physics"`
	Player     ClassicPlayer    `yaml:"player"`
	View       ClassicView      `yaml:"view"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ClassicPhysics defines gravity and movement parameters.
type ClassicPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	GroundY      float64 `yaml:"ground_y"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	BaseSpeed    float64 `yaml:"base_speed"`
	Friction     float64 `yaml:"friction"`
	MaxDT        float64 `yaml:"max_dt"`
}

// ClassicPlayer defines Ben's body and timers.
type ClassicPlayer struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Health           int     `yaml:"health"`
	InvincibleTime   float64 `yaml:"invincible_time"`
	KnockbackX       float64 `yaml:"knockback_x"`
	KnockbackY       float64 `yaml:"knockback_y"`
	AttackCooldown   float64 `yaml:"attack_cooldown"`
	OmnitrixCooldown float64 `yaml:"omnitrix_cooldown"`
	HitPenalty       int     `yaml:"hit_penalty"`
}

// ClassicView defines the virtual screen the level scrolls through.
type ClassicView struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	CameraLead     float64 `yaml:"camera_lead"` // Fraction of the view kept behind the player
	CameraSmooth   float64 `yaml:"camera_smooth"`
	FinishFraction float64 `yaml:"finish_fraction"` // Portion of the level to cross before it can end
}

// DifficultyConfig defines how enemy stats scale.
type DifficultyConfig struct {
	Preset      DifficultyPreset  `yaml:"preset"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty rises within a mission.
type ProgressionConfig struct {
	Type     string  `yaml:"type"`      // "wave" or "none"
	MaxBoost float64 `yaml:"max_boost"` // Level added by the final wave
}

// ScalingConfig defines the magnitude of one difficulty level.
type ScalingConfig struct {
	HealthMultiplier float64 `yaml:"health_multiplier"`
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// LevelForPreset returns the base difficulty level of a preset.
// Normal is 0, which leaves the definition tables untouched.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return -1
	case DifficultyHard:
		return 1
	default:
		return 0
	}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}
