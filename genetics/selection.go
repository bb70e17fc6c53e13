package genetics

import (
	"fmt"
	"math"
)

// Selector picks chromosomes with probability proportional to their fitness
// (roulette-wheel selection, with replacement).
type Selector struct {
	rng RandomSource
}

// NewSelector creates a selector drawing from rng.
func NewSelector(rng RandomSource) *Selector {
	return &Selector{rng: rng}
}

// Select spins the wheel once and returns the chosen chromosome.
// It consumes exactly one value from the random source.
func (s *Selector) Select(pop *Population) (Chromosome, error) {
	if err := requireSource(s.rng); err != nil {
		return Chromosome{}, err
	}
	if pop == nil || pop.Len() == 0 {
		return Chromosome{}, fmt.Errorf("%w: cannot select from an empty population", ErrInvalidDistribution)
	}

	// Finite scores can still overflow the sum; scaling by the largest
	// magnitude keeps the proportions.
	scale := 1.0
	total := pop.TotalFitness()
	if math.IsInf(total, 0) {
		scale = 0
		for _, e := range pop.entries {
			scale = math.Max(scale, math.Abs(e.Score))
		}
		total = 0
		for _, e := range pop.entries {
			total += e.Score / scale
		}
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return Chromosome{}, fmt.Errorf("%w: total fitness must be positive, got %v", ErrInvalidDistribution, pop.TotalFitness())
	}

	r := uniform(s.rng, 0, total)
	sum := 0.0
	for _, e := range pop.entries {
		sum += e.Score / scale
		if sum > r {
			return e.Chromosome, nil
		}
	}
	// Rounding can leave the running sum a hair below r; the last chromosome
	// with a positive score owns the end of the wheel.
	for i := len(pop.entries) - 1; i >= 0; i-- {
		if pop.entries[i].Score > 0 {
			return pop.entries[i].Chromosome, nil
		}
	}
	return pop.entries[len(pop.entries)-1].Chromosome, nil
}
