package snake

import (
	"math/rand"
	"time"
)

// RNG yields values in [0, 1). *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
}

// NewRNG returns a seeded math/rand source. Seed 0 seeds from the clock.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RNGFunc adapts a plain function to RNG.
type RNGFunc func() float64

// Float64 calls f.
func (f RNGFunc) Float64() float64 {
	return f()
}

// Sequence replays scripted values in order and then keeps returning the
// last one. An empty Sequence always returns 0.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a scripted RNG.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	i := min(s.next, len(s.values)-1)
	s.next++
	return s.values[i]
}
