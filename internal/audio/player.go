// Package audio voices simulation cues with synthesized tones mixed
// through gopxl/beep.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

const (
	// RetriggerGuard is the shortest gap between two plays of one cue.
	RetriggerGuard = 30 * time.Millisecond
	speakerBuffer  = 100 * time.Millisecond
	defaultMaster  = 1.0
)

// CuePlayer turns cues into sound. It implements the simulations'
// AudioSink and is itself the beep.Streamer handed to the speaker.
type CuePlayer struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	bank    Bank
	master  float64
	last    map[core.Cue]time.Time
	now     func() time.Time
	logger  *log.Logger
	started bool
	silent  bool
	muted   bool
}

// NewCuePlayer creates a player voicing bank. A nil logger discards.
func NewCuePlayer(bank Bank, logger *log.Logger) *CuePlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		bank:   bank,
		master: defaultMaster,
		last:   make(map[core.Cue]time.Time),
		now:    time.Now,
		logger: logger,
	}
}

// Start opens the speaker. When no audio device is available the player
// falls back to silent mode and keeps accepting cues.
func (p *CuePlayer) Start() {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	if err := speaker.Init(SampleRate, SampleRate.N(speakerBuffer)); err != nil {
		p.mu.Lock()
		p.silent = true
		p.mu.Unlock()
		p.logger.Warn("audio unavailable, continuing silently", "err", err)
		return
	}
	speaker.Play(p)
	p.logger.Debug("audio started", "rate", int(SampleRate))
}

// Close stops playback and drops queued sounds.
func (p *CuePlayer) Close() {
	p.mu.Lock()
	started, silent := p.started, p.silent
	p.mixer.Clear()
	p.started = false
	p.mu.Unlock()

	if started && !silent {
		speaker.Clear()
		speaker.Close()
	}
}

// Play queues the tones for cue. Unknown cues are ignored, as is a cue
// repeated within RetriggerGuard.
func (p *CuePlayer) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.silent {
		return
	}
	tones, ok := p.bank[cue]
	if !ok {
		return
	}
	now := p.now()
	if last, ok := p.last[cue]; ok && now.Sub(last) < RetriggerGuard {
		return
	}
	p.last[cue] = now
	p.mixer.Add(RenderAll(tones, p.master, SampleRate))
}

// SetVolume sets the master gain, clamped to [0, 1].
func (p *CuePlayer) SetVolume(v float64) {
	p.mu.Lock()
	p.master = core.ClampF(v, 0, 1)
	p.mu.Unlock()
}

// Mute silences new cues and drops those already playing.
func (p *CuePlayer) Mute() {
	p.mu.Lock()
	p.muted = true
	p.mixer.Clear()
	p.mu.Unlock()
}

// Unmute re-enables cues.
func (p *CuePlayer) Unmute() {
	p.mu.Lock()
	p.muted = false
	p.mu.Unlock()
}

// Muted reports whether the player is muted.
func (p *CuePlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Silent reports whether the speaker failed to open.
func (p *CuePlayer) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.silent
}

// Active returns the number of sounds still playing.
func (p *CuePlayer) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Stream implements beep.Streamer.
func (p *CuePlayer) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Stream(samples)
}

// Err implements beep.Streamer.
func (p *CuePlayer) Err() error { return nil }
