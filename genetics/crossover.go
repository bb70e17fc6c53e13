package genetics

import "fmt"

// CrossoverOperator performs uniform crossover between two parents.
type CrossoverOperator struct {
	crossoverChance           float64
	individualCrossoverChance float64
	rng                       RandomSource
}

// NewCrossoverOperator creates a crossover operator using cfg's chances.
func NewCrossoverOperator(cfg *Config, rng RandomSource) *CrossoverOperator {
	return &CrossoverOperator{
		crossoverChance:           cfg.CrossoverChance,
		individualCrossoverChance: cfg.IndividualCrossoverChance,
		rng:                       rng,
	}
}

// Crossover produces two children from parentA and parentB.
//
// With probability 1-crossoverChance the children are the parents unchanged.
// Otherwise every gene position is swapped between the children independently
// with probability individualCrossoverChance. The parents are never modified.
func (o *CrossoverOperator) Crossover(parentA, parentB Chromosome) (Chromosome, Chromosome, error) {
	if err := requireSource(o.rng); err != nil {
		return Chromosome{}, Chromosome{}, err
	}
	if parentA.Len() != parentB.Len() {
		return Chromosome{}, Chromosome{}, fmt.Errorf("%w: cannot cross chromosomes of length %d and %d", ErrShapeMismatch, parentA.Len(), parentB.Len())
	}

	if !chance(o.rng, o.crossoverChance) {
		return parentA, parentB, nil
	}

	childA, childB := parentA.Genes(), parentB.Genes()
	for i := range childA {
		if !chance(o.rng, o.individualCrossoverChance) {
			continue
		}
		childA[i], childB[i] = childB[i], childA[i]
	}
	return NewChromosome(childA...), NewChromosome(childB...), nil
}
