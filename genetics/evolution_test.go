package genetics

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closeTo scores chromosomes by their distance to a target gene value.
func closeTo(target float64) FitnessFunc {
	return func(c Chromosome) float64 {
		total := 0.0
		for _, g := range c.Genes() {
			total += math.Abs(target - g)
		}
		return 1 / (total + 1)
	}
}

func newTestEvolution(t *testing.T, cfg *Config, settings EvolutionSettings, seed int64) *Evolution {
	t.Helper()
	rng := seeded(seed)
	evo, err := NewEvolution(cfg, settings, rng)
	require.NoError(t, err)
	evo.Out = io.Discard
	evo.SeedRandom(rng, 3, 0, 10)
	return evo
}

func TestEvolutionStopsAtThreshold(t *testing.T) {
	settings := EvolutionSettings{PopSize: 10, MaxGenerations: 5, FitnessThreshold: 0}
	evo := newTestEvolution(t, DefaultConfig(), settings, 1)

	winner, found, err := evo.Run(closeTo(3))
	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, winner)
	assert.Equal(t, 1, evo.Generation)
}

func TestEvolutionRunsMaxGenerations(t *testing.T) {
	settings := EvolutionSettings{PopSize: 12, MaxGenerations: 6, NoFitnessTermination: true}
	evo := newTestEvolution(t, mustConfig(t, 0.85, 0.3, 0.5, 0.5, 0.1, 1), settings, 2)

	best, found, err := evo.Run(closeTo(3))
	require.NoError(t, err)
	assert.False(t, found)
	require.NotNil(t, best)
	assert.Equal(t, 6, evo.Generation)
	assert.Len(t, evo.Current, 12)
}

func TestEvolutionElitismKeepsBestScore(t *testing.T) {
	settings := EvolutionSettings{PopSize: 20, MaxGenerations: 30, NoFitnessTermination: true}
	evo := newTestEvolution(t, mustConfig(t, 0.85, 0.3, 0.3, 0.5, 0.1, 1), settings, 3)
	fitness := closeTo(3)

	previous := math.Inf(-1)
	for i := 0; i < settings.MaxGenerations; i++ {
		_, err := evo.RunGeneration(fitness)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, evo.LastStats.BestScore, previous)
		previous = evo.LastStats.BestScore
	}
	assert.Equal(t, previous, evo.Best.Score)
}

func TestEvolutionIsReproducible(t *testing.T) {
	settings := EvolutionSettings{PopSize: 15, MaxGenerations: 10, NoFitnessTermination: true}
	cfg := mustConfig(t, 0.85, 0.3, 0.2, 0.5, 0.1, 2)

	first := newTestEvolution(t, cfg, settings, 21)
	second := newTestEvolution(t, cfg, settings, 21)
	_, _, err := first.Run(closeTo(3))
	require.NoError(t, err)
	_, _, err = second.Run(closeTo(3))
	require.NoError(t, err)

	assert.Equal(t, first.Current, second.Current)
	assert.Equal(t, first.Best, second.Best)
}

func TestEvolutionReportsProgress(t *testing.T) {
	settings := EvolutionSettings{PopSize: 4, MaxGenerations: 1, NoFitnessTermination: true}
	evo := newTestEvolution(t, DefaultConfig(), settings, 5)
	var out bytes.Buffer
	evo.Out = &out

	_, err := evo.RunGeneration(closeTo(3))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "****** Generation 1 ******")
	assert.Contains(t, out.String(), "New best chromosome found!")
}

func TestEvolutionRequiresSeed(t *testing.T) {
	evo, err := NewEvolution(DefaultConfig(), DefaultEvolutionSettings(), seeded(1))
	require.NoError(t, err)
	evo.Out = io.Discard

	_, err = evo.RunGeneration(closeTo(3))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestEvolutionPropagatesReproductionErrors(t *testing.T) {
	settings := EvolutionSettings{PopSize: 4, MaxGenerations: 3, NoFitnessTermination: true}
	evo := newTestEvolution(t, DefaultConfig(), settings, 5)

	_, _, err := evo.Run(func(Chromosome) float64 { return 0 })
	assert.ErrorIs(t, err, ErrInvalidDistribution)
	assert.Equal(t, 1, evo.Generation)
}

func TestNewEvolutionValidatesSettings(t *testing.T) {
	_, err := NewEvolution(mustConfig(t, 0, 0, 0, 0, 0, 5), EvolutionSettings{PopSize: 3}, seeded(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
