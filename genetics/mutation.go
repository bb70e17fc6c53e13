package genetics

import "math"

// MutationOperator perturbs individual genes of a chromosome.
type MutationOperator struct {
	mutationChance       float64
	mutationRangeFlat    float64
	mutationRangePercent float64
	rng                  RandomSource
}

// NewMutationOperator creates a mutation operator using cfg's chance and ranges.
func NewMutationOperator(cfg *Config, rng RandomSource) *MutationOperator {
	return &MutationOperator{
		mutationChance:       cfg.MutationChance,
		mutationRangeFlat:    cfg.MutationRangeFlat,
		mutationRangePercent: cfg.MutationRangePercent,
		rng:                  rng,
	}
}

// Mutate returns a mutated copy of c.
//
// Each gene is mutated independently with probability mutationChance: first a
// value from [-flat, +flat] is added, then the gene is resampled uniformly
// between value*(1-percent) and value*(1+percent), where value is the result
// of the first step. Genes that are not selected are returned as received.
func (o *MutationOperator) Mutate(c Chromosome) (Chromosome, error) {
	if err := requireSource(o.rng); err != nil {
		return Chromosome{}, err
	}

	genes := c.Genes()
	mutated := false
	for i, value := range genes {
		if !chance(o.rng, o.mutationChance) {
			continue
		}
		genes[i] = o.mutateGene(value)
		mutated = true
	}
	if !mutated {
		return c, nil
	}
	return NewChromosome(genes...), nil
}

// mutateGene draws exactly two values from the source.
func (o *MutationOperator) mutateGene(value float64) float64 {
	value += uniform(o.rng, -o.mutationRangeFlat, o.mutationRangeFlat)
	// For negative values the bounds come out reversed.
	lo := value - value*o.mutationRangePercent
	hi := value + value*o.mutationRangePercent
	return uniform(o.rng, math.Min(lo, hi), math.Max(lo, hi))
}
