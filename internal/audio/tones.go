package audio

import (
	"maps"
	"time"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
)

// Tone is one oscillator voice of a cue. EndFreq > 0 sweeps the pitch.
type Tone struct {
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
	Offset   time.Duration
}

// Bank maps cues to the tones that voice them.
type Bank map[core.Cue][]Tone

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func tone(freq float64, dur int, wave Wave, vol float64) Tone {
	return Tone{Freq: freq, Duration: ms(dur), Wave: wave, Volume: vol}
}

func sweep(from, to float64, dur int, wave Wave, vol float64) Tone {
	return Tone{Freq: from, EndFreq: to, Duration: ms(dur), Wave: wave, Volume: vol}
}

func noise(dur int, vol float64) Tone {
	return Tone{Duration: ms(dur), Wave: WaveNoise, Volume: vol}
}

func at(offset int, t Tone) Tone {
	t.Offset = ms(offset)
	return t
}

// arpeggio plays freqs one after another, step ms apart.
func arpeggio(freqs []float64, step, dur int, wave Wave, vol float64) []Tone {
	out := make([]Tone, len(freqs))
	for i, f := range freqs {
		out[i] = at(i*step, tone(f, dur, wave, vol))
	}
	return out
}

var arenaBank = Bank{
	core.CueShoot:         {tone(600, 100, WaveSquare, 0.08)},
	core.CueHit:           {noise(80, 0.12), tone(200, 80, WaveSaw, 0.06)},
	core.CueEnemyDie:      {tone(400, 100, WaveSquare, 0.08), tone(600, 150, WaveSquare, 0.06)},
	core.CuePlayerHit:     {tone(150, 150, WaveSaw, 0.12), noise(100, 0.08)},
	core.CueSpecial:       {tone(300, 100, WaveSine, 0.1), tone(500, 150, WaveSine, 0.1), tone(800, 200, WaveSine, 0.08)},
	core.CueDash:          {tone(200, 80, WaveSaw, 0.1), tone(400, 120, WaveSaw, 0.06)},
	core.CueTransform:     {tone(400, 100, WaveSine, 0.12), tone(800, 150, WaveSine, 0.1), tone(1200, 200, WaveSine, 0.08)},
	core.CueWaveStart:     {tone(300, 150, WaveSquare, 0.1), tone(450, 200, WaveSquare, 0.08)},
	core.CueLevelComplete: {tone(500, 150, WaveSine, 0.12), tone(700, 200, WaveSine, 0.1), tone(900, 300, WaveSine, 0.1)},
	core.CueBossAppear:    {tone(100, 300, WaveSaw, 0.15), tone(80, 400, WaveSaw, 0.12)},
	core.CueMenuSelect:    {tone(800, 80, WaveSine, 0.06)},
}

var classicBank = Bank{
	core.CueTransform: {
		sweep(200, 1200, 600, WaveSaw, 0.15),
		at(500, tone(1200, 300, WaveSine, 0.1)),
		at(700, tone(1500, 200, WaveSine, 0.08)),
	},
	core.CueFireball:  {sweep(800, 200, 300, WaveSaw, 0.1), noise(150, 0.06)},
	core.CuePunch:     {sweep(300, 60, 200, WaveSquare, 0.15), noise(100, 0.1)},
	core.CueDash:      {sweep(400, 2000, 150, WaveSaw, 0.08), sweep(2000, 600, 100, WaveSine, 0.06)},
	core.CueShield:    {tone(800, 150, WaveTriangle, 0.1), at(50, tone(1200, 100, WaveTriangle, 0.08)), at(100, tone(1600, 150, WaveSine, 0.06))},
	core.CueWeakPunch: {sweep(200, 100, 100, WaveSquare, 0.08)},
	core.CueEnemyDefeat: {
		sweep(300, 800, 150, WaveSine, 0.1),
		at(100, tone(1000, 100, WaveSine, 0.08)),
	},
	core.CuePlayerHit: {sweep(400, 100, 200, WaveSquare, 0.1)},
	core.CueLevelStart: arpeggio([]float64{523, 659, 784, 1047}, 150, 200, WaveSquare, 0.1),
	core.CueVictory: append(arpeggio([]float64{523, 659, 784, 659, 784, 1047}, 200, 250, WaveSquare, 0.12),
		at(1200, tone(1047, 500, WaveSine, 0.1)),
		at(1200, tone(1319, 500, WaveTriangle, 0.08)),
	),
	core.CueOmnitrixReady: {tone(880, 100, WaveSine, 0.08), at(100, tone(1100, 150, WaveSine, 0.1))},
	core.CueMenuSelect:    {tone(600, 50, WaveSquare, 0.04)},
	core.CueJump:          {sweep(200, 500, 150, WaveSine, 0.06)},
}

// ArenaBank returns the arena cue voices.
func ArenaBank() Bank {
	return maps.Clone(arenaBank)
}

// ClassicBank returns the side-scroller voices. Cues the side-scroller
// shares with the arena but voices differently are overridden.
func ClassicBank() Bank {
	b := maps.Clone(arenaBank)
	maps.Copy(b, classicBank)
	return b
}
