package genetics

import "sort"

// EliteSelector picks the highest scoring chromosomes of a population.
type EliteSelector struct {
	eliteAmount int
}

// NewEliteSelector creates an elite selector keeping cfg.EliteAmount chromosomes.
func NewEliteSelector(cfg *Config) *EliteSelector {
	return &EliteSelector{eliteAmount: cfg.EliteAmount}
}

// ChooseElites returns at most eliteAmount chromosomes.
//
// When the population holds no more than eliteAmount entries, all of them are
// returned in insertion order. Otherwise the top eliteAmount are returned from
// best to worst; equal scores keep insertion order.
func (s *EliteSelector) ChooseElites(pop *Population) []Chromosome {
	return chooseElites(pop, s.eliteAmount)
}

func chooseElites(pop *Population, eliteAmount int) []Chromosome {
	if eliteAmount <= 0 || pop == nil {
		return []Chromosome{}
	}
	if pop.Len() <= eliteAmount {
		return pop.Chromosomes()
	}

	ranked := pop.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	elites := make([]Chromosome, eliteAmount)
	for i := range elites {
		elites[i] = ranked[i].Chromosome
	}
	return elites
}
