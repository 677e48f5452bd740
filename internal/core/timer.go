package core

// Countdown is a timer measured in seconds that runs down to zero.
// The zero value is an expired timer.
type Countdown float64

// Set starts the countdown at the given number of seconds.
func (c *Countdown) Set(seconds float64) {
	*c = Countdown(seconds)
}

// Tick advances the timer by dt and reports whether it expired during
// this call. Expired timers stay at zero.
func (c *Countdown) Tick(dt float64) bool {
	if *c <= 0 {
		return false
	}
	*c -= Countdown(dt)
	if *c <= 0 {
		*c = 0
		return true
	}
	return false
}

// Active reports whether time remains.
func (c Countdown) Active() bool {
	return c > 0
}

// Expired reports whether the timer has run out.
func (c Countdown) Expired() bool {
	return c <= 0
}

// Seconds returns the remaining time.
func (c Countdown) Seconds() float64 {
	return float64(c)
}
