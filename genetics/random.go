package genetics

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomSource is the uniform random source shared by the operators.
// Float64 must return values in [0, 1). *rand.Rand satisfies it.
//
// A nil *rand.Rand is rejected like a nil source.
//
// A source is not safe for concurrent use; give each goroutine its own
// independently seeded source.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded source. A zero seed picks one from the clock.
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, hi). lo > hi is allowed and mirrors the interval.
func uniform(rng RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// chance reports whether an event with the given probability fires.
// Probability 0 never fires and probability 1 always does.
func chance(rng RandomSource, probability float64) bool {
	return rng.Float64() < probability
}

func requireSource(rng RandomSource) error {
	if r, ok := rng.(*rand.Rand); rng == nil || (ok && r == nil) {
		return fmt.Errorf("%w: random source is required", ErrConfiguration)
	}
	return nil
}
