package easyga

import (
	"fmt"
	"sort"
)

// ParentPair holds the two parent genotypes of one recombination.
type ParentPair struct {
	A Genotype
	B Genotype
}

// RoulettePairs returns exactly n parent pairs chosen by fitness-proportionate
// (roulette-wheel) selection. Each parent is drawn independently and with
// replacement, so an individual may be paired with itself. If the total
// population fitness is zero the draw falls back to a uniform choice over
// the population.
func (ga *GeneticAlgorithm) RoulettePairs(n int) ([]ParentPair, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: requested %d pairs", ErrPairCount, n)
	}
	total, err := ga.pop.TotalFitness()
	if err != nil {
		return nil, err
	}

	pairs := make([]ParentPair, n)
	for i := range pairs {
		left := ga.rouletteDraw(total)
		right := ga.rouletteDraw(total)
		pairs[i] = ParentPair{A: left.Genotype(), B: right.Genotype()}
	}
	return pairs, nil
}

// rouletteDraw selects one individual with probability proportional to its
// share of the total fitness: a uniform value r in [0, total) is drawn and
// the first individual whose cumulative fitness exceeds r wins.
func (ga *GeneticAlgorithm) rouletteDraw(total float64) *Individual {
	members := ga.pop.members
	if total <= 0 {
		// All individuals are equally unfit; pick uniformly.
		return members[ga.rng.Intn(len(members))]
	}
	r := ga.rng.Float64() * total
	cumulative := 0.0
	for _, ind := range members {
		cumulative += ind.fitness
		if cumulative > r {
			return ind
		}
	}
	// Floating point round-off can leave cumulative just short of total.
	return members[len(members)-1]
}

// BestPairs returns nPairs parent pairs drawn uniformly from the nElites
// fittest individuals. The two parents of a pair are always distinct, so
// nElites must be at least 2. Ties in fitness keep population order.
func (ga *GeneticAlgorithm) BestPairs(nPairs, nElites int) ([]ParentPair, error) {
	if nPairs <= 0 {
		return nil, fmt.Errorf("%w: requested %d pairs", ErrPairCount, nPairs)
	}
	if nElites < 2 || nElites > ga.pop.Size() {
		return nil, fmt.Errorf("%w: n_elites must be in [2, %d], got %d", ErrInvalidConfig, ga.pop.Size(), nElites)
	}
	if err := ga.pop.EvaluateAll(); err != nil {
		return nil, err
	}

	// Sort a copy by fitness (descending), keeping population order on ties.
	sorted := make([]*Individual, len(ga.pop.members))
	copy(sorted, ga.pop.members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].fitness > sorted[j].fitness
	})
	elites := sorted[:nElites]

	pairs := make([]ParentPair, nPairs)
	for i := range pairs {
		ai := ga.rng.Intn(nElites)
		bi := ga.rng.Intn(nElites - 1)
		if bi >= ai {
			bi++
		}
		pairs[i] = ParentPair{A: elites[ai].Genotype(), B: elites[bi].Genotype()}
	}
	return pairs, nil
}
