package tui

import "github.com/vovakirdan/omnitrix-arcade/internal/core"

// DefaultHoldTicks covers the gap between a key press and the terminal's
// first auto-repeat at 60 ticks per second.
const DefaultHoldTicks = 10

// InputLatch turns key presses into per-tick input frames. A held action
// stays on for holdTicks ticks after its last press; one-shot actions and
// digit choices are delivered on the next tick only.
type InputLatch struct {
	holdTicks int
	held      map[core.Action]int
	once      core.InputFrame
}

// NewInputLatch creates a latch. holdTicks below 1 means DefaultHoldTicks.
func NewInputLatch(holdTicks int) *InputLatch {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &InputLatch{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		once:      core.NewInputFrame(),
	}
}

// Press records an action.
func (l *InputLatch) Press(a core.Action) {
	if heldActions[a] {
		l.held[a] = l.holdTicks
		// Opposite directions cancel instead of summing.
		if opp, ok := opposite[a]; ok {
			delete(l.held, opp)
		}
		return
	}
	l.once.Set(a)
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Choose records a digit choice.
func (l *InputLatch) Choose(n int) {
	l.once.Choice = n
}

// Pending reports whether a one-shot action waits for the next tick.
func (l *InputLatch) Pending(a core.Action) bool {
	return l.once.Has(a)
}

// Frame builds the input for one tick and ages the latches.
func (l *InputLatch) Frame() core.InputFrame {
	f := l.once.Clone()
	for a, n := range l.held {
		f.Set(a)
		if n <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = n - 1
		}
	}
	l.once.Clear()
	return f
}

// Release drops every latched action.
func (l *InputLatch) Release() {
	clear(l.held)
	l.once.Clear()
}
