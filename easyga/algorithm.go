package easyga

import (
	"fmt"
	"math/rand"
	"time"
)

// GeneticAlgorithm owns the current population and drives it forward one
// generation at a time. It is single-threaded: NextGeneration runs to
// completion before returning and the population is owned exclusively by
// one engine instance.
type GeneticAlgorithm struct {
	popSize      int
	genomeLength int
	fitness      FitnessFunc
	strategy     Strategy
	rng          Rand
	pop          *Population
	generation   int
}

// New creates an engine with a randomly seeded initial population. The
// population size and genome length are immutable for the lifetime of the
// run. Passing a nil rng falls back to a time-seeded source; supply a seeded
// source for reproducible runs.
func New(populationSize, genomeLength int, fitness FitnessFunc, strategy Strategy, rng Rand) (*GeneticAlgorithm, error) {
	if populationSize <= 0 {
		return nil, fmt.Errorf("%w: population size must be positive, got %d", ErrInvalidConfig, populationSize)
	}
	if genomeLength <= 0 {
		return nil, fmt.Errorf("%w: genome length must be positive, got %d", ErrInvalidConfig, genomeLength)
	}
	if fitness == nil {
		return nil, fmt.Errorf("%w: fitness function must not be nil", ErrInvalidConfig)
	}
	if strategy == nil {
		return nil, fmt.Errorf("%w: strategy must not be nil", ErrInvalidConfig)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pop, err := NewPopulation(populationSize, genomeLength, fitness, rng)
	if err != nil {
		return nil, err
	}
	return &GeneticAlgorithm{
		popSize:      populationSize,
		genomeLength: genomeLength,
		fitness:      fitness,
		strategy:     strategy,
		rng:          rng,
		pop:          pop,
	}, nil
}

// NewFromConfig creates an engine from a loaded Config, wiring up the
// built-in strategy and a deterministic random source when a seed is set. A
// zero seed means "not reproducible" and seeds from the clock instead.
func NewFromConfig(config *Config, fitness FitnessFunc) (*GeneticAlgorithm, error) {
	seed := config.GA.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	strategy := &BuiltinStrategy{
		Selection:       config.Strategy.Selection,
		CrossoverMethod: config.Strategy.Crossover,
		MutationRate:    config.Strategy.MutationRate,
		NumElites:       config.Strategy.NumElites,
	}
	return New(config.GA.PopSize, config.GA.GenomeLength, fitness, strategy, rand.New(rand.NewSource(seed)))
}

// NextGeneration advances the population by one generation:
//  1. Evaluate the fitness of the current generation.
//  2. Ask the strategy for parent pairs.
//  3. Recombine the pairs into the replacement generation.
//  4. Mutate the replacement generation in place.
//
// The step is all-or-nothing: if any hook fails, the previous generation is
// left fully intact and the error is returned. No elitism is imposed; the
// best individual survives only if the strategy arranges it.
func (ga *GeneticAlgorithm) NextGeneration() error {
	// 1. Evaluate fitness.
	if err := ga.pop.EvaluateAll(); err != nil {
		return fmt.Errorf("fitness evaluation failed in generation %d: %w", ga.generation, err)
	}

	// 2. Select parent pairs.
	pairs, err := ga.strategy.Select(ga)
	if err != nil {
		return fmt.Errorf("selection failed in generation %d: %w", ga.generation, err)
	}

	// 3. Recombine into offspring genotypes.
	offspring, err := ga.strategy.Crossover(ga, pairs)
	if err != nil {
		return fmt.Errorf("crossover failed in generation %d: %w", ga.generation, err)
	}
	if len(offspring) != ga.popSize {
		return fmt.Errorf("%w: crossover produced %d offspring, population size is %d",
			ErrPopulationSize, len(offspring), ga.popSize)
	}
	for i, child := range offspring {
		if len(child) != ga.genomeLength {
			return fmt.Errorf("%w: offspring %d has %d bits, genome length is %d",
				ErrGenomeLength, i, len(child), ga.genomeLength)
		}
	}

	// 4. Install the offspring as the current population and mutate it. The
	// previous generation is restored untouched if the mutate hook fails.
	previous := ga.pop
	ga.pop = newOffspringPopulation(offspring, ga.fitness)
	if err := ga.strategy.Mutate(ga); err != nil {
		ga.pop = previous
		return fmt.Errorf("mutation failed in generation %d: %w", ga.generation, err)
	}

	ga.generation++
	return nil
}

// Generation returns the number of completed NextGeneration calls.
func (ga *GeneticAlgorithm) Generation() int {
	return ga.generation
}

// PopulationSize returns the configured, immutable population size.
func (ga *GeneticAlgorithm) PopulationSize() int {
	return ga.popSize
}

// GenomeLength returns the configured, immutable genome length.
func (ga *GeneticAlgorithm) GenomeLength() int {
	return ga.genomeLength
}

// Population returns the current population. Strategies receive the engine
// and reach the generation under construction through this accessor.
func (ga *GeneticAlgorithm) Population() *Population {
	return ga.pop
}

// Rand returns the engine's random source for use by custom strategies.
func (ga *GeneticAlgorithm) Rand() Rand {
	return ga.rng
}

// Genotypes returns copies of the current generation's genotypes for
// inspection or logging.
func (ga *GeneticAlgorithm) Genotypes() []Genotype {
	return ga.pop.Genotypes()
}

// Fitnesses returns the current generation's fitness values in population
// order, evaluating where needed.
func (ga *GeneticAlgorithm) Fitnesses() ([]float64, error) {
	return ga.pop.Fitnesses()
}

// MaxFitness returns the best fitness in the current population.
func (ga *GeneticAlgorithm) MaxFitness() (float64, error) {
	return ga.pop.MaxFitness()
}

// MinFitness returns the worst fitness in the current population.
func (ga *GeneticAlgorithm) MinFitness() (float64, error) {
	return ga.pop.MinFitness()
}

// MeanFitness returns the average fitness of the current population.
func (ga *GeneticAlgorithm) MeanFitness() (float64, error) {
	return ga.pop.MeanFitness()
}

// BestGenotype returns the genotype of the fittest individual. Ties resolve
// to the first such individual in population order.
func (ga *GeneticAlgorithm) BestGenotype() (Genotype, error) {
	best, err := ga.pop.Best()
	if err != nil {
		return nil, err
	}
	return best.Genotype(), nil
}
