package easyga

import "errors"

// Sentinel errors surfaced by the engine. They are wrapped with context via
// fmt.Errorf("...: %w", ...) and can be matched with errors.Is.
var (
	// ErrInvalidConfig reports an invalid construction parameter, such as a
	// non-positive population size or genome length.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyPopulation reports an aggregate query against an empty
	// population. The engine never produces one; hitting this means the size
	// invariant was violated.
	ErrEmptyPopulation = errors.New("population is empty")

	// ErrNegativeFitness reports a fitness function returning a value below
	// zero, which breaks the fitness-proportionate selection contract.
	ErrNegativeFitness = errors.New("fitness function returned a negative value")

	// ErrGenomeLength reports a genotype whose length does not match the
	// engine's configured genome length.
	ErrGenomeLength = errors.New("genotype length mismatch")

	// ErrPairCount reports a selection/crossover arity mismatch: the
	// crossover step received a parent pair count it cannot turn into a full
	// replacement generation.
	ErrPairCount = errors.New("unexpected parent pair count")

	// ErrMutationRate reports a per-bit mutation rate outside [0, 1].
	ErrMutationRate = errors.New("mutation rate out of range")

	// ErrPopulationSize reports a crossover hook producing a number of
	// offspring different from the configured population size.
	ErrPopulationSize = errors.New("offspring count does not match population size")
)
