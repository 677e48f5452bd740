package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// decayFloor is the gain an envelope reaches at the end of a tone.
const decayFloor = 0.001

// oscillator generates one wave, optionally sweeping its frequency
// exponentially from freq to endFreq.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	position      int
	total         int
	wave          Wave
	rate          beep.SampleRate
	noise         *rand.Rand
}

func newOscillator(t Tone, rate beep.SampleRate) *oscillator {
	o := &oscillator{
		freq:    t.Freq,
		endFreq: t.EndFreq,
		total:   rate.N(t.Duration),
		wave:    t.Wave,
		rate:    rate,
	}
	if t.Wave == WaveNoise {
		o.noise = rand.New(rand.NewPCG(uint64(t.Freq*1000)+1, uint64(t.Duration)))
	}
	return o
}

func (o *oscillator) frequency() float64 {
	if o.endFreq <= 0 || o.freq <= 0 || o.total == 0 {
		return o.freq
	}
	progress := float64(o.position) / float64(o.total)
	return o.freq * math.Pow(o.endFreq/o.freq, progress)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay scales a stream from gain down to decayFloor·gain exponentially
// over total samples.
type decay struct {
	streamer beep.Streamer
	gain     float64
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := range n {
		g := d.gain
		if d.total > 0 {
			g *= math.Pow(decayFloor, float64(d.position)/float64(d.total))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Render builds a streamer for a single tone, delayed by its offset.
func Render(t Tone, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(t, rate)
	var s beep.Streamer = &decay{streamer: osc, gain: t.Volume, total: osc.total}
	if t.Offset > 0 {
		s = beep.Seq(beep.Silence(rate.N(t.Offset)), s)
	}
	return s
}

// RenderAll mixes a tone sequence into one streamer at master volume.
func RenderAll(tones []Tone, master float64, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		parts[i] = Render(t, rate)
	}
	return volume(beep.Mix(parts...), master)
}

// Length returns how long a tone sequence plays, offsets included.
func Length(tones []Tone) time.Duration {
	var longest time.Duration
	for _, t := range tones {
		longest = max(longest, t.Offset+t.Duration)
	}
	return longest
}

// volume applies a linear gain. Zero or less is silent since log2(0) is -Inf.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
