package easyga

import "fmt"

// SinglePointCrossover recombines each parent pair at a random cut point
// k in {1, ..., genomeLength-1} and returns two complementary offspring per
// pair: the first takes bits [0,k) from parent A and [k,L) from parent B,
// the second is the opposite splice. The degenerate cut points 0 and L are
// excluded so every recombination exchanges at least one bit. Producing a
// full replacement generation therefore requires populationSize/2 pairs.
func (ga *GeneticAlgorithm) SinglePointCrossover(pairs []ParentPair) ([]Genotype, error) {
	if 2*len(pairs) != ga.popSize {
		return nil, fmt.Errorf("%w: single-point crossover expects %d parent pairs for a population of %d, got %d",
			ErrPairCount, ga.popSize/2, ga.popSize, len(pairs))
	}
	if ga.genomeLength < 2 {
		return nil, fmt.Errorf("%w: single-point crossover needs a genome of at least 2 bits, got %d",
			ErrGenomeLength, ga.genomeLength)
	}

	offspring := make([]Genotype, 0, 2*len(pairs))
	for i, pair := range pairs {
		if err := ga.checkPair(i, pair); err != nil {
			return nil, err
		}
		k := 1 + ga.rng.Intn(ga.genomeLength-1)
		offspring = append(offspring, splice(pair.A, pair.B, k), splice(pair.B, pair.A, k))
	}
	return offspring, nil
}

// UniformCrossover recombines each parent pair into a single child whose
// bits are inherited from either parent with equal probability. Producing a
// full replacement generation requires populationSize pairs.
func (ga *GeneticAlgorithm) UniformCrossover(pairs []ParentPair) ([]Genotype, error) {
	if len(pairs) != ga.popSize {
		return nil, fmt.Errorf("%w: uniform crossover expects %d parent pairs, got %d",
			ErrPairCount, ga.popSize, len(pairs))
	}

	offspring := make([]Genotype, 0, len(pairs))
	for i, pair := range pairs {
		if err := ga.checkPair(i, pair); err != nil {
			return nil, err
		}
		child := make(Genotype, ga.genomeLength)
		for j := range child {
			if ga.rng.Float64() < 0.5 {
				child[j] = pair.A[j]
			} else {
				child[j] = pair.B[j]
			}
		}
		offspring = append(offspring, child)
	}
	return offspring, nil
}

// checkPair validates that both parents carry the configured genome length.
func (ga *GeneticAlgorithm) checkPair(i int, pair ParentPair) error {
	if len(pair.A) != ga.genomeLength || len(pair.B) != ga.genomeLength {
		return fmt.Errorf("%w: pair %d has parents of length %d and %d, genome length is %d",
			ErrGenomeLength, i, len(pair.A), len(pair.B), ga.genomeLength)
	}
	return nil
}

// splice builds a child from the first k bits of a and the remaining bits of b.
func splice(a, b Genotype, k int) Genotype {
	child := make(Genotype, len(a))
	copy(child, a[:k])
	copy(child[k:], b[k:])
	return child
}
