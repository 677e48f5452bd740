package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
)

func drain(s beep.Streamer, max int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < max {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"triangle", WaveTriangle},
		{"noise", WaveNoise},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := newOscillator(Tone{Freq: 440, Duration: 50 * time.Millisecond, Wave: tc.wave}, rate)
			n, peak := drain(osc, 1<<20)
			if n != rate.N(50*time.Millisecond) {
				t.Errorf("streamed %d samples, expected %d", n, rate.N(50*time.Millisecond))
			}
			if peak > 1 || peak == 0 {
				t.Errorf("peak %v outside (0, 1]", peak)
			}
			if osc.Err() != nil {
				t.Error(osc.Err())
			}
		})
	}
}

func TestOscillatorSweep(t *testing.T) {
	osc := newOscillator(Tone{Freq: 200, EndFreq: 800, Duration: time.Second, Wave: WaveSine}, 1000)
	if f := osc.frequency(); f != 200 {
		t.Errorf("start frequency = %v", f)
	}
	osc.position = 500
	if f := osc.frequency(); math.Abs(f-400) > 1e-9 {
		t.Errorf("midpoint of an exponential sweep = %v, expected 400", f)
	}
	steady := newOscillator(Tone{Freq: 300, Duration: time.Second}, 1000)
	steady.position = 700
	if steady.frequency() != 300 {
		t.Error("a tone without EndFreq keeps its pitch")
	}
}

func TestRenderDecaysAndDelays(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := Tone{Freq: 50, Duration: 100 * time.Millisecond, Wave: WaveSquare, Volume: 0.5, Offset: 50 * time.Millisecond}

	s := Render(tn, rate)
	buf := make([][2]float64, 150)
	n, _ := s.Stream(buf)
	if n != 150 {
		t.Fatalf("streamed %d", n)
	}
	for i := range 50 {
		if buf[i][0] != 0 {
			t.Fatalf("offset should be silent, sample %d = %v", i, buf[i][0])
		}
	}
	if math.Abs(buf[50][0]) != 0.5 {
		t.Errorf("first sample gain = %v, expected 0.5", buf[50][0])
	}
	if end := math.Abs(buf[149][0]); end > 0.5*decayFloor*1.5 {
		t.Errorf("tail gain = %v", end)
	}
	if Length([]Tone{tn, tone(1, 10, WaveSine, 1)}) != 150*time.Millisecond {
		t.Error("Length should include offsets")
	}
}

func TestBanks(t *testing.T) {
	arena := ArenaBank()
	for _, cue := range []core.Cue{
		core.CueShoot, core.CueHit, core.CueEnemyDie, core.CuePlayerHit, core.CueSpecial, core.CueDash,
		core.CueTransform, core.CueWaveStart, core.CueLevelComplete, core.CueBossAppear, core.CueMenuSelect,
	} {
		if len(arena[cue]) == 0 {
			t.Errorf("arena bank has no voice for %s", cue)
		}
	}

	classic := ClassicBank()
	for _, cue := range core.AllCues() {
		if len(classic[cue]) == 0 {
			t.Errorf("classic bank has no voice for %s", cue)
		}
	}
	if Length(classic[core.CueTransform]) <= Length(arena[core.CueTransform]) {
		t.Error("classic transform should use its longer sweep")
	}

	arena[core.CueShoot] = nil
	if len(ArenaBank()[core.CueShoot]) == 0 {
		t.Error("banks must be copies")
	}
}

func TestCuePlayer(t *testing.T) {
	p := NewCuePlayer(ArenaBank(), nil)
	clock := time.Unix(0, 0)
	p.now = func() time.Time { return clock }

	p.Play(core.CueShoot)
	p.Play(core.CueShoot)
	if p.Active() != 1 {
		t.Fatalf("retrigger within the guard should be dropped, active=%d", p.Active())
	}

	clock = clock.Add(RetriggerGuard)
	p.Play(core.CueShoot)
	p.Play(core.CueHit)
	p.Play(core.CueJump)
	if p.Active() != 3 {
		t.Errorf("active = %d, expected 3 (jump has no arena voice)", p.Active())
	}

	_, peak := drain(p, SampleRate.N(time.Second))
	if peak == 0 || peak > 1 {
		t.Errorf("peak = %v", peak)
	}
	if p.Active() != 0 {
		t.Errorf("finished sounds should leave the mixer, %d left", p.Active())
	}
}

func TestCuePlayerMute(t *testing.T) {
	p := NewCuePlayer(ArenaBank(), nil)
	p.Play(core.CueBossAppear)
	p.Mute()
	if !p.Muted() || p.Active() != 0 {
		t.Fatal("mute should drop playing sounds")
	}
	p.Play(core.CueShoot)
	if p.Active() != 0 {
		t.Error("muted player accepted a cue")
	}
	p.Unmute()
	p.Play(core.CueShoot)
	if p.Active() != 1 {
		t.Error("unmuted player should play")
	}

	p.SetVolume(0)
	p.Play(core.CueHit)
	buf := make([][2]float64, 64)
	p.Stream(buf)
	p.SetVolume(3)
	if p.master != 1 {
		t.Errorf("volume should clamp to 1, got %v", p.master)
	}
}
