package easyga

import "fmt"

// FitnessFunc is the type for the function provided by the user to score a
// genotype. It must be deterministic and side-effect free for a given
// genotype, and must return a value >= 0. Errors are propagated to the
// caller of the operation that triggered evaluation.
type FitnessFunc func(g Genotype) (float64, error)

// Individual pairs a genotype with a lazily computed fitness value. The
// fitness function is called at most once per genotype value; the cached
// result is reused until the genotype is replaced or mutated.
type Individual struct {
	genotype  Genotype
	fitnessFn FitnessFunc
	fitness   float64
	evaluated bool
}

// NewIndividual returns an individual with an all-zero genotype of the given
// length.
func NewIndividual(length int, fitnessFn FitnessFunc) *Individual {
	return &Individual{
		genotype:  NewGenotype(length),
		fitnessFn: fitnessFn,
	}
}

// Randomize replaces the genotype with uniformly random bits and returns the
// individual for chaining.
func (ind *Individual) Randomize(rng Rand) *Individual {
	ind.genotype = RandomGenotype(len(ind.genotype), rng)
	ind.evaluated = false
	return ind
}

// Genotype returns a copy of the individual's genotype. The individual is
// owned by its population; callers never get an aliased view.
func (ind *Individual) Genotype() Genotype {
	return ind.genotype.Clone()
}

// SetGenotype replaces the genotype and invalidates the cached fitness. The
// replacement must have the individual's genome length.
func (ind *Individual) SetGenotype(g Genotype) error {
	if len(g) != len(ind.genotype) {
		return fmt.Errorf("%w: got %d bits, genome length is %d", ErrGenomeLength, len(g), len(ind.genotype))
	}
	ind.genotype = g.Clone()
	ind.evaluated = false
	return nil
}

// Fitness returns the individual's fitness, evaluating the fitness function
// only if no cached value exists. A negative result from the fitness
// function is a contract violation and surfaces as ErrNegativeFitness.
func (ind *Individual) Fitness() (float64, error) {
	if ind.evaluated {
		return ind.fitness, nil
	}
	val, err := ind.fitnessFn(ind.genotype)
	if err != nil {
		return 0, fmt.Errorf("fitness evaluation failed: %w", err)
	}
	if val < 0 {
		return 0, fmt.Errorf("%w: %v for genotype %s", ErrNegativeFitness, val, ind.genotype)
	}
	ind.fitness = val
	ind.evaluated = true
	return val, nil
}

// Mutate flips each bit independently with probability rate. The cached
// fitness is invalidated only if at least one bit actually flipped, so a
// zero rate preserves both genotype and cache.
func (ind *Individual) Mutate(rate float64, rng Rand) error {
	if rate < 0.0 || rate > 1.0 {
		return fmt.Errorf("%w: %v", ErrMutationRate, rate)
	}
	if rate == 0.0 {
		return nil
	}
	flipped := false
	for i := range ind.genotype {
		if rng.Float64() < rate {
			ind.genotype[i] = !ind.genotype[i]
			flipped = true
		}
	}
	if flipped {
		ind.evaluated = false
	}
	return nil
}
