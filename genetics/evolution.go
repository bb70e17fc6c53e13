package genetics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Evolution drives the score/breed loop for a caller-supplied fitness function.
// It is single-threaded: the fitness function is called sequentially and the
// random source is only touched from the calling goroutine.
type Evolution struct {
	Config     *Config
	Settings   EvolutionSettings
	Builder    *GenerationBuilder
	Current    []Chromosome // Unscored chromosomes of the current generation
	Generation int
	Best       *Scored // Best chromosome found so far
	LastStats  Stats   // Stats of the most recently scored generation
	Out        io.Writer
}

// NewEvolution creates a driver. Call Seed before running it.
func NewEvolution(cfg *Config, settings EvolutionSettings, rng RandomSource) (*Evolution, error) {
	builder, err := NewGenerationBuilder(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation builder: %w", err)
	}
	if err := settings.Validate(cfg); err != nil {
		return nil, err
	}
	return &Evolution{
		Config:   builder.Config,
		Settings: settings,
		Builder:  builder,
		Out:      os.Stdout,
	}, nil
}

// Seed installs the first generation.
func (e *Evolution) Seed(chromosomes []Chromosome) {
	e.Current = append([]Chromosome(nil), chromosomes...)
}

// SeedRandom installs a first generation of PopSize random chromosomes.
func (e *Evolution) SeedRandom(rng RandomSource, length int, minVal, maxVal float64) {
	first := make([]Chromosome, e.Settings.PopSize)
	for i := range first {
		first[i] = RandomChromosome(rng, length, minVal, maxVal)
	}
	e.Current = first
}

// RunGeneration scores the current generation and breeds the next one.
// It returns the best chromosome found so far once it meets the fitness
// threshold, otherwise nil.
func (e *Evolution) RunGeneration(fitness FitnessFunc) (*Scored, error) {
	if len(e.Current) == 0 {
		return nil, fmt.Errorf("%w: no chromosomes to evaluate, call Seed first", ErrConfiguration)
	}
	e.Generation++
	genStartTime := time.Now()
	fmt.Fprintf(e.out(), "****** Generation %d ******\n", e.Generation)

	pop, err := ScoreAll(e.Current, fitness)
	if err != nil {
		return nil, fmt.Errorf("fitness evaluation failed in generation %d: %w", e.Generation, err)
	}

	e.LastStats = PopulationStats(pop)
	if e.Best == nil || e.LastStats.BestScore > e.Best.Score {
		e.Best = &Scored{Chromosome: e.LastStats.Best, Score: e.LastStats.BestScore}
		fmt.Fprintf(e.out(), " New best chromosome found! %s, Fitness: %.4f\n", e.Best.Chromosome, e.Best.Score)
	}
	fmt.Fprintf(e.out(), " Generation %d: %s\n", e.Generation, e.LastStats)

	if !e.Settings.NoFitnessTermination && e.Best.Score >= e.Settings.FitnessThreshold {
		return e.Best, nil
	}

	next, err := e.Builder.BuildNextGeneration(pop, e.Settings.PopSize)
	if err != nil {
		return e.Best, fmt.Errorf("reproduction failed in generation %d: %w", e.Generation, err)
	}
	e.Current = next

	fmt.Fprintf(e.out(), "Generation %d finished in %s\n\n", e.Generation, time.Since(genStartTime))
	return nil, nil
}

// Run calls RunGeneration until a winner is found or MaxGenerations have run.
// The returned chromosome is the winner, or the best found when none was.
func (e *Evolution) Run(fitness FitnessFunc) (*Scored, bool, error) {
	for e.Generation < e.Settings.MaxGenerations {
		winner, err := e.RunGeneration(fitness)
		if err != nil {
			return e.Best, false, err
		}
		if winner != nil {
			return winner, true, nil
		}
	}
	if e.Best == nil {
		return nil, false, errors.New("no generation was evaluated")
	}
	return e.Best, false, nil
}

func (e *Evolution) out() io.Writer {
	if e.Out == nil {
		return io.Discard
	}
	return e.Out
}
