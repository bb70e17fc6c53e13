package genetics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the scores of one population.
type Stats struct {
	Size      int
	Best      Chromosome
	BestScore float64
	Worst     float64
	Mean      float64
	StdDev    float64 // sample standard deviation, 0 for fewer than two entries
}

// PopulationStats computes score statistics. The best chromosome is the first
// one in insertion order holding the highest score.
func PopulationStats(pop *Population) Stats {
	if pop == nil || pop.Len() == 0 {
		return Stats{}
	}
	scores := pop.Scores()
	best := floats.MaxIdx(scores)

	s := Stats{
		Size:      len(scores),
		Best:      pop.entries[best].Chromosome,
		BestScore: scores[best],
		Worst:     floats.Min(scores),
	}
	if len(scores) < 2 {
		s.Mean = scores[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(scores, nil)
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("size=%d best=%.4f worst=%.4f mean=%.4f stdev=%.4f", s.Size, s.BestScore, s.Worst, s.Mean, s.StdDev)
}
