package island

import (
	"math/rand/v2"
	"time"
)

// Random is the deterministic random source behind every generation
// decision. It uses the PCG generator from math/rand/v2, so the same seed
// and call sequence always produce the same values.
type Random struct {
	seed int64
	r    *rand.Rand
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{
		seed: seed,
		r:    rand.New(rand.NewPCG(uint64(seed), 0)),
	}
}

// NewUnseededRandom creates a Random with an unpredictable seed.
func NewUnseededRandom() *Random {
	return NewRandom(time.Now().UnixNano())
}

// Seed returns the seed the source was created with.
func (r *Random) Seed() int64 {
	return r.seed
}

// IntRange returns a value in [lo, hi], both ends inclusive.
func (r *Random) IntRange(lo, hi int) int {
	if hi < lo {
		panic("island: IntRange with hi < lo")
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Int64Range returns a value in [lo, hi], both ends inclusive. The span may
// cover almost the whole int64 range.
func (r *Random) Int64Range(lo, hi int64) int64 {
	if hi < lo {
		panic("island: Int64Range with hi < lo")
	}
	span := uint64(hi-lo) + 1
	if span == 0 {
		return int64(r.r.Uint64())
	}
	return lo + int64(r.r.Uint64N(span))
}

// Float returns a value in [0, 1).
func (r *Random) Float() float64 {
	return r.r.Float64()
}
