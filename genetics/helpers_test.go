package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed list of draws, cycling when exhausted.
type scriptedSource struct {
	values []float64
	calls  int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func mustConfig(t *testing.T, crossover, individual, mutation, flat, percent float64, elites int) *Config {
	t.Helper()
	cfg, err := NewConfig(crossover, individual, mutation, flat, percent, elites)
	require.NoError(t, err)
	return cfg
}

func mustPopulation(t *testing.T, entries ...Scored) *Population {
	t.Helper()
	pop := NewPopulation()
	for _, e := range entries {
		require.NoError(t, pop.Add(e.Chromosome, e.Score))
	}
	return pop
}

func scored(score float64, genes ...float64) Scored {
	return Scored{Chromosome: NewChromosome(genes...), Score: score}
}
