package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultArenaConfig returns the default arena tuning.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Engine: ArenaEngine{
			MaxDT:         0.1,
			CompleteDelay: 1.5,
			CameraDecay:   0.001,
			ViewWidth:     1280,
			ViewHeight:    720,
			MaxParticles:  600,
		},
		Player: ArenaPlayer{
			InvincibleTime:       1.5,
			ReviveInvincibleTime: 3,
			ReviveFraction:       0.5,
			ComboWindow:          2,
			ComboCap:             5,
			KillScore:            100,
			DashMargin:           10,
			DashSpeed:            500,
		},
		Enemies: ArenaEnemies{
			SummonCap:       12,
			EdgeInset:       20,
			ContactPushback: 20,
			ContactDamage: map[string]int{
				"robot":   1,
				"drone":   1,
				"turret":  0,
				"charger": 2,
			},
		},
		Boss: ArenaBoss{
			ContactDamage: 2,
			KillBonus:     1000,
		},
		Difficulty: DifficultyConfig{
			Preset:      DifficultyNormal,
			Progression: ProgressionConfig{Type: "none", MaxBoost: 0.5},
			Scaling:     ScalingConfig{HealthMultiplier: 0.25, SpeedMultiplier: 0.15},
		},
	}
}

// DefaultClassicConfig returns the default side-scroller tuning.
func DefaultClassicConfig() ClassicConfig {
	return ClassicConfig{
		Physics: ClassicPhysics{
			Gravity:      1800,
			GroundY:      580,
			JumpVelocity: -620,
			BaseSpeed:    300,
			Friction:     0.8,
			MaxDT:        0.05,
		},
		Player: ClassicPlayer{
			Width:            40,
			Height:           60,
			Health:           5,
			InvincibleTime:   1.5,
			KnockbackX:       300,
			KnockbackY:       -250,
			AttackCooldown:   0.35,
			OmnitrixCooldown: 8,
			HitPenalty:       50,
		},
		View: ClassicView{
			Width:          1280,
			Height:         720,
			CameraLead:     0.3,
			CameraSmooth:   0.1,
			FinishFraction: 0.6,
		},
		Difficulty: DifficultyConfig{
			Preset:      DifficultyNormal,
			Progression: ProgressionConfig{Type: "none"},
			Scaling:     ScalingConfig{HealthMultiplier: 0.25, SpeedMultiplier: 0.15},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game mode.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "arena":
		return defaultArenaYAML
	case "classic":
		return defaultClassicYAML
	default:
		return nil
	}
}
