package sim

import "github.com/vovakirdan/omnitrix-arcade/internal/core"

// EffectsSink receives cosmetic spawn requests. Implementations must not
// feed anything back into the simulation.
type EffectsSink interface {
	SpawnHit(pos core.Vec2, color string, count int)
	SpawnExplosion(pos core.Vec2, color string, count int)
	SpawnTrail(pos core.Vec2, color string)
	AddFloatingText(pos core.Vec2, text, color string, size float64)
}

// AudioSink receives fire-and-forget sound cues.
type AudioSink interface {
	Play(cue core.Cue)
}

// NopEffects discards every effect.
type NopEffects struct{}

func (NopEffects) SpawnHit(core.Vec2, string, int) {}
func (NopEffects) SpawnExplosion(core.Vec2, string, int) {}
func (NopEffects) SpawnTrail(core.Vec2, string) {}
func (NopEffects) AddFloatingText(core.Vec2, string, string, float64) {}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Play(core.Cue) {}

// CueRecorder keeps cues in the order they were played.
type CueRecorder struct {
	Cues []core.Cue
}

// Play records cue.
func (r *CueRecorder) Play(cue core.Cue) {
	r.Cues = append(r.Cues, cue)
}

// Count returns how many times cue was played.
func (r *CueRecorder) Count(cue core.Cue) int {
	n := 0
	for _, c := range r.Cues {
		if c == cue {
			n++
		}
	}
	return n
}

// Reset forgets recorded cues.
func (r *CueRecorder) Reset() {
	r.Cues = r.Cues[:0]
}
