package easyga

import "fmt"

// Strategy supplies the three evolutionary operators the engine delegates
// to. The engine's NextGeneration is a template method over this interface:
// implementations decide how parents are selected, how pairs recombine into
// the replacement generation, and how the new generation mutates. They may
// delegate to the built-in helpers (RoulettePairs, BestPairs,
// SinglePointCrossover, UniformCrossover, MutateAll) or bring their own
// operators.
type Strategy interface {
	// Select returns the parent pairs to recombine. The pair count must
	// match what Crossover needs to produce a full replacement generation.
	Select(ga *GeneticAlgorithm) ([]ParentPair, error)
	// Crossover turns the selected pairs into exactly populationSize
	// offspring genotypes of the configured genome length.
	Crossover(ga *GeneticAlgorithm, pairs []ParentPair) ([]Genotype, error)
	// Mutate perturbs the freshly installed generation in place, typically
	// via MutateAll.
	Mutate(ga *GeneticAlgorithm) error
}

// Operator names accepted by BuiltinStrategy and the [Strategy] config section.
const (
	SelectionRoulette    = "roulette"
	SelectionBest        = "best"
	CrossoverSinglePoint = "single_point"
	CrossoverUniform     = "uniform"
)

// BuiltinStrategy wires the built-in operators together. The selection step
// derives its pair count from the chosen crossover: single-point produces
// two children per pair and needs populationSize/2 pairs, uniform produces
// one child per pair and needs populationSize pairs.
type BuiltinStrategy struct {
	Selection       string  // SelectionRoulette or SelectionBest
	CrossoverMethod string  // CrossoverSinglePoint or CrossoverUniform
	MutationRate    float64 // per-bit flip probability in [0, 1]
	NumElites       int     // elite pool size for SelectionBest
}

// Select picks parent pairs with the configured selection operator.
func (s *BuiltinStrategy) Select(ga *GeneticAlgorithm) ([]ParentPair, error) {
	n, err := s.pairsNeeded(ga)
	if err != nil {
		return nil, err
	}
	switch s.Selection {
	case SelectionRoulette:
		return ga.RoulettePairs(n)
	case SelectionBest:
		return ga.BestPairs(n, s.NumElites)
	default:
		return nil, fmt.Errorf("%w: unknown selection method %q", ErrInvalidConfig, s.Selection)
	}
}

// Crossover recombines the pairs with the configured crossover operator.
func (s *BuiltinStrategy) Crossover(ga *GeneticAlgorithm, pairs []ParentPair) ([]Genotype, error) {
	switch s.CrossoverMethod {
	case CrossoverSinglePoint:
		return ga.SinglePointCrossover(pairs)
	case CrossoverUniform:
		return ga.UniformCrossover(pairs)
	default:
		return nil, fmt.Errorf("%w: unknown crossover method %q", ErrInvalidConfig, s.CrossoverMethod)
	}
}

// Mutate applies uniform per-bit mutation at the configured rate.
func (s *BuiltinStrategy) Mutate(ga *GeneticAlgorithm) error {
	return ga.MutateAll(s.MutationRate)
}

// pairsNeeded computes the selection arity the configured crossover expects.
func (s *BuiltinStrategy) pairsNeeded(ga *GeneticAlgorithm) (int, error) {
	switch s.CrossoverMethod {
	case CrossoverSinglePoint:
		if ga.popSize%2 != 0 {
			return 0, fmt.Errorf("%w: single-point crossover requires an even population size, got %d",
				ErrInvalidConfig, ga.popSize)
		}
		return ga.popSize / 2, nil
	case CrossoverUniform:
		return ga.popSize, nil
	default:
		return 0, fmt.Errorf("%w: unknown crossover method %q", ErrInvalidConfig, s.CrossoverMethod)
	}
}
