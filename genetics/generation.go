package genetics

import "fmt"

// GenerationBuilder turns a scored population into the next generation's
// chromosomes. It keeps no state between calls apart from the random source
// shared by its operators.
type GenerationBuilder struct {
	Config    *Config
	Selector  *Selector
	Crossover *CrossoverOperator
	Mutation  *MutationOperator
	Elites    *EliteSelector
}

// NewGenerationBuilder wires every operator to cfg and a single random source.
func NewGenerationBuilder(cfg *Config, rng RandomSource) (*GenerationBuilder, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is required", ErrConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := requireSource(rng); err != nil {
		return nil, err
	}
	// Operators keep their own copies of the values they use.
	config := *cfg
	return &GenerationBuilder{
		Config:    &config,
		Selector:  NewSelector(rng),
		Crossover: NewCrossoverOperator(&config, rng),
		Mutation:  NewMutationOperator(&config, rng),
		Elites:    NewEliteSelector(&config),
	}, nil
}

// BuildNextGeneration returns exactly targetSize unscored chromosomes.
//
// The elites come first, unchanged. The rest are offspring bred in pairs:
// two parents are drawn by roulette wheel, crossed over, and both children are
// mutated and appended. An odd remainder is met by dropping the last child.
func (b *GenerationBuilder) BuildNextGeneration(pop *Population, targetSize int) ([]Chromosome, error) {
	eliteAmount := b.Elites.eliteAmount
	if targetSize < eliteAmount {
		return nil, fmt.Errorf("%w: target size (%d) must not be lower than elite amount (%d)", ErrConfiguration, targetSize, eliteAmount)
	}
	if pop == nil {
		return nil, fmt.Errorf("%w: population is required", ErrConfiguration)
	}
	if _, err := pop.geneCount(); err != nil {
		return nil, err
	}

	next := make([]Chromosome, 0, targetSize+1)
	elites := b.Elites.ChooseElites(pop)
	next = append(next, elites...)

	// A population smaller than eliteAmount yields fewer elites; offspring
	// make up the difference so the size stays exact.
	remaining := targetSize - len(elites)
	for bred := 0; bred < remaining; bred += 2 {
		parentA, err := b.Selector.Select(pop)
		if err != nil {
			return nil, fmt.Errorf("failed to select first parent: %w", err)
		}
		parentB, err := b.Selector.Select(pop)
		if err != nil {
			return nil, fmt.Errorf("failed to select second parent: %w", err)
		}

		childA, childB, err := b.Crossover.Crossover(parentA, parentB)
		if err != nil {
			return nil, fmt.Errorf("crossover failed: %w", err)
		}
		if childA, err = b.Mutation.Mutate(childA); err != nil {
			return nil, fmt.Errorf("mutation failed: %w", err)
		}
		if childB, err = b.Mutation.Mutate(childB); err != nil {
			return nil, fmt.Errorf("mutation failed: %w", err)
		}
		next = append(next, childA, childB)
	}
	if remaining%2 != 0 {
		next = next[:len(next)-1]
	}

	if len(next) != targetSize {
		return nil, fmt.Errorf("%w: built %d chromosomes, expected %d", ErrInvariant, len(next), targetSize)
	}
	return next, nil
}
