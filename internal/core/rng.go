package core

// RNG is a small deterministic pseudo-random generator (64-bit LCG).
// Games own one per simulation so replays with the same seed match exactly.
type RNG struct {
	state uint64
}

// NewRNG creates a generator. A zero seed is replaced with 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

func (r *RNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). n <= 0 returns 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.next() >> 33) % uint64(n))
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// State exposes the internal state for snapshot hashing.
func (r *RNG) State() uint64 {
	return r.state
}
