package easyga

import "fmt"

// MutateAll flips each bit of each individual's genotype independently with
// probability rate, invalidating the cached fitness of every individual that
// actually changed. A rate of 0 is an identity operation; a rate of 1 flips
// every bit deterministically.
func (ga *GeneticAlgorithm) MutateAll(rate float64) error {
	if rate < 0.0 || rate > 1.0 {
		return fmt.Errorf("%w: %v", ErrMutationRate, rate)
	}
	if rate == 0.0 {
		return nil
	}
	for i, ind := range ga.pop.members {
		if err := ind.Mutate(rate, ga.rng); err != nil {
			return fmt.Errorf("individual %d: %w", i, err)
		}
	}
	return nil
}
