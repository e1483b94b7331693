// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNG wraps the standard generator so the whole app can run on a
// predictable seed.
type PRNG struct {
	rng *rand.Rand
}

// NewPRNG creates a seeded generator. A seed of 0 uses the current time.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (p *PRNG) Intn(n int) int {
	return p.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// FloatRange returns a uniform random float in [min, max).
func (p *PRNG) FloatRange(min, max float64) float64 {
	return min + p.rng.Float64()*(max-min)
}

// IntRange returns a uniform random int in [min, max).
func (p *PRNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.rng.Intn(max-min)
}
