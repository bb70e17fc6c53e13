package genetics

import (
	"fmt"
	"math"
)

// FitnessFunc maps a chromosome to its fitness score. Higher is better.
// Fitness is computed by the caller, never by the operators.
type FitnessFunc func(c Chromosome) float64

// Scored pairs a chromosome with its fitness score.
type Scored struct {
	Chromosome Chromosome
	Score      float64
}

// Population maps chromosomes to their fitness scores for one generation.
// Entries keep the order in which their chromosome was first added; that
// order drives roulette-wheel iteration and breaks ties between equal scores.
type Population struct {
	entries []Scored
	index   map[Chromosome]int // chromosome -> position in entries
}

// NewPopulation creates an empty population.
func NewPopulation() *Population {
	return &Population{
		index: make(map[Chromosome]int),
	}
}

// Add records the score of c. Adding a chromosome that is already present
// replaces its score but keeps its original position: duplicates collapse to
// one entry. Scores must be finite.
func (p *Population) Add(c Chromosome, score float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return fmt.Errorf("%w: score for %s is not finite (%v)", ErrInvalidDistribution, c, score)
	}
	if i, ok := p.index[c]; ok {
		p.entries[i].Score = score
		return nil
	}
	p.index[c] = len(p.entries)
	p.entries = append(p.entries, Scored{Chromosome: c, Score: score})
	return nil
}

// Len returns the number of distinct chromosomes.
func (p *Population) Len() int {
	return len(p.entries)
}

// Score returns the score of c and whether c is present.
func (p *Population) Score(c Chromosome) (float64, bool) {
	i, ok := p.index[c]
	if !ok {
		return 0, false
	}
	return p.entries[i].Score, true
}

// Contains reports whether c is present.
func (p *Population) Contains(c Chromosome) bool {
	_, ok := p.index[c]
	return ok
}

// Entries returns a copy of the entries in insertion order.
func (p *Population) Entries() []Scored {
	out := make([]Scored, len(p.entries))
	copy(out, p.entries)
	return out
}

// Chromosomes returns the chromosomes in insertion order.
func (p *Population) Chromosomes() []Chromosome {
	out := make([]Chromosome, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Chromosome
	}
	return out
}

// Scores returns the scores in insertion order.
func (p *Population) Scores() []float64 {
	out := make([]float64, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Score
	}
	return out
}

// TotalFitness returns the sum of all scores.
func (p *Population) TotalFitness() float64 {
	total := 0.0
	for _, e := range p.entries {
		total += e.Score
	}
	return total
}

// geneCount returns the shared chromosome length, or ErrShapeMismatch if
// chromosomes of different lengths are present. An empty population has length 0.
func (p *Population) geneCount() (int, error) {
	if len(p.entries) == 0 {
		return 0, nil
	}
	n := p.entries[0].Chromosome.Len()
	for _, e := range p.entries[1:] {
		if e.Chromosome.Len() != n {
			return 0, fmt.Errorf("%w: population mixes chromosome lengths %d and %d", ErrShapeMismatch, n, e.Chromosome.Len())
		}
	}
	return n, nil
}

// ScoreAll builds a population by scoring every chromosome with fitness.
// Duplicate chromosomes collapse to a single entry.
func ScoreAll(chromosomes []Chromosome, fitness FitnessFunc) (*Population, error) {
	if fitness == nil {
		return nil, fmt.Errorf("%w: fitness function is required", ErrConfiguration)
	}
	pop := NewPopulation()
	for _, c := range chromosomes {
		if err := pop.Add(c, fitness(c)); err != nil {
			return nil, err
		}
	}
	return pop, nil
}
