package core

// Cue names a fire-and-forget sound trigger emitted by the simulations.
type Cue string

// Arena cues.
const (
	CueShoot         Cue = "shoot"
	CueHit           Cue = "hit"
	CueEnemyDie      Cue = "enemyDie"
	CuePlayerHit     Cue = "playerHit"
	CueSpecial       Cue = "special"
	CueDash          Cue = "dash"
	CueTransform     Cue = "transform"
	CueWaveStart     Cue = "waveStart"
	CueLevelComplete Cue = "levelComplete"
	CueBossAppear    Cue = "bossAppear"
	CueMenuSelect    Cue = "menuSelect"
)

// Side-scroller cues.
const (
	CueJump          Cue = "jump"
	CueFireball      Cue = "fireball"
	CuePunch         Cue = "punch"
	CueShield        Cue = "shield"
	CueWeakPunch     Cue = "weakPunch"
	CueEnemyDefeat   Cue = "enemyDefeat"
	CueLevelStart    Cue = "levelStart"
	CueVictory       Cue = "victory"
	CueOmnitrixReady Cue = "omnitrixReady"
)

// AllCues lists every cue in a stable order.
func AllCues() []Cue {
	return []Cue{
		CueShoot, CueHit, CueEnemyDie, CuePlayerHit, CueSpecial, CueDash,
		CueTransform, CueWaveStart, CueLevelComplete, CueBossAppear, CueMenuSelect,
		CueJump, CueFireball, CuePunch, CueShield, CueWeakPunch, CueEnemyDefeat,
		CueLevelStart, CueVictory, CueOmnitrixReady,
	}
}
