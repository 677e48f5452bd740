package sim

import "github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"

// HUD is the player-facing status line. It is comparable, so an unchanged
// HUD can be detected with ==.
type HUD struct {
	Health             int
	MaxHealth          int
	Score              int
	Wave               int
	TotalWaves         int
	CurrentAlien       defs.AlienID
	SpecialCooldownPct float64

	HasBoss       bool
	BossHealth    int
	BossMaxHealth int
	BossName      string
}

// Listener receives the engine's discrete events.
type Listener interface {
	OnHUD(hud HUD)
	OnLevelComplete(score, stars int)
	OnPlayerDied()
	OnRequestAlienSelect()
}

// ListenerFuncs adapts optional functions to Listener. Nil fields are
// skipped.
type ListenerFuncs struct {
	HUD                func(HUD)
	LevelComplete      func(score, stars int)
	PlayerDied         func()
	RequestAlienSelect func()
}

func (l ListenerFuncs) OnHUD(h HUD) {
	if l.HUD != nil {
		l.HUD(h)
	}
}

func (l ListenerFuncs) OnLevelComplete(score, stars int) {
	if l.LevelComplete != nil {
		l.LevelComplete(score, stars)
	}
}

func (l ListenerFuncs) OnPlayerDied() {
	if l.PlayerDied != nil {
		l.PlayerDied()
	}
}

func (l ListenerFuncs) OnRequestAlienSelect() {
	if l.RequestAlienSelect != nil {
		l.RequestAlienSelect()
	}
}

// NopListener ignores every event.
type NopListener = ListenerFuncs

// Stars rates a finished mission by remaining health: 3 at 80% or more,
// 2 at 40% or more, otherwise 1.
func Stars(health, maxHealth int) int {
	if maxHealth <= 0 {
		return 1
	}
	pct := float64(health) / float64(maxHealth)
	switch {
	case pct >= 0.8:
		return 3
	case pct >= 0.4:
		return 2
	default:
		return 1
	}
}
