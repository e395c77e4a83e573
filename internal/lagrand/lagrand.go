// Package lagrand reproduces the additive lagged-Fibonacci generator behind
// the legacy 32-bit rand(): 34 words of state, taps at 31 and 3, Lehmer
// seeding and a 310 draw warm-up.
package lagrand

import "math"

const (
	stateSize  = 34
	longLag    = 31
	shortLag   = 3
	warmup     = 310
	modulus    = 2147483647
	multiplier = 16807

	// RandMax is the largest value Draw can return.
	RandMax = modulus
)

// Engine is one generator instance. The zero value is not seeded; use New or
// Seed. Engines are not safe for concurrent use and are meant to be owned by
// a single evaluation.
type Engine struct {
	r [stateSize]uint32
	k int
}

// New returns an engine seeded with seed and ready to draw.
func New(seed uint32) *Engine {
	var e Engine
	e.Seed(seed)
	return &e
}

// Seed resets the engine to the state derived from seed, including warm-up.
func (e *Engine) Seed(seed uint32) {
	e.r[0] = seed
	for i := 1; i < longLag; i++ {
		e.r[i] = uint32((multiplier * uint64(e.r[i-1])) % modulus)
	}
	for i := longLag; i < stateSize; i++ {
		e.r[i] = e.r[i-longLag]
	}
	e.k = 0
	e.Skip(warmup)
}

// Draw returns the next value in [0, 2^31).
func (e *Engine) Draw() uint32 {
	k := e.k
	// (k-31) mod 34 and (k-3) mod 34 without going negative.
	e.r[k] = e.r[(k+stateSize-longLag)%stateSize] + e.r[(k+stateSize-shortLag)%stateSize]
	n := e.r[k] >> 1
	e.k = (k + 1) % stateSize
	return n
}

// Skip discards n draws.
func (e *Engine) Skip(n int) {
	for i := 0; i < n; i++ {
		e.Draw()
	}
}

// DrawRange scales one draw into [min, max+1] and truncates toward zero.
// max+1 comes out only when Draw returns RandMax, matching the legacy float
// cast; results past math.MaxUint32 saturate. It panics if min > max.
func (e *Engine) DrawRange(min, max uint32) uint32 {
	if min > max {
		panic("lagrand: DrawRange: invalid range")
	}
	r := e.Draw()
	f := float64(min) + (float64(max)-float64(min)+1.0)*(float64(r)/modulus)
	if f >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(f)
}
