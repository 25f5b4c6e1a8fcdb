package easyga

import "fmt"

// Population is the ordered, fixed-size collection of individuals making up
// one generation. Its size never changes for the lifetime of a run; each
// generation is replaced wholesale rather than resized.
type Population struct {
	members []*Individual
}

// NewPopulation creates a population of size randomized individuals with
// genotypes of the given length.
func NewPopulation(size, length int, fitnessFn FitnessFunc, rng Rand) (*Population, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: population size must be positive, got %d", ErrInvalidConfig, size)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: genome length must be positive, got %d", ErrInvalidConfig, length)
	}
	members := make([]*Individual, size)
	for i := range members {
		members[i] = NewIndividual(length, fitnessFn).Randomize(rng)
	}
	return &Population{members: members}, nil
}

// newOffspringPopulation wraps freshly recombined genotypes into a new,
// unevaluated generation. Genotypes are cloned so the caller keeps no alias
// into the population.
func newOffspringPopulation(genotypes []Genotype, fitnessFn FitnessFunc) *Population {
	members := make([]*Individual, len(genotypes))
	for i, g := range genotypes {
		members[i] = &Individual{genotype: g.Clone(), fitnessFn: fitnessFn}
	}
	return &Population{members: members}
}

// Size returns the number of individuals.
func (p *Population) Size() int {
	return len(p.members)
}

// Genotypes returns copies of all member genotypes in population order.
func (p *Population) Genotypes() []Genotype {
	genotypes := make([]Genotype, len(p.members))
	for i, ind := range p.members {
		genotypes[i] = ind.Genotype()
	}
	return genotypes
}

// EvaluateAll ensures every member has a cached fitness value.
func (p *Population) EvaluateAll() error {
	for i, ind := range p.members {
		if _, err := ind.Fitness(); err != nil {
			return fmt.Errorf("individual %d: %w", i, err)
		}
	}
	return nil
}

// Fitnesses returns the fitness of every member in population order,
// evaluating where needed.
func (p *Population) Fitnesses() ([]float64, error) {
	if len(p.members) == 0 {
		return nil, fmt.Errorf("%w: cannot evaluate fitness", ErrEmptyPopulation)
	}
	fitnesses := make([]float64, len(p.members))
	for i, ind := range p.members {
		val, err := ind.Fitness()
		if err != nil {
			return nil, fmt.Errorf("individual %d: %w", i, err)
		}
		fitnesses[i] = val
	}
	return fitnesses, nil
}

// TotalFitness returns the sum of all member fitnesses.
func (p *Population) TotalFitness() (float64, error) {
	fitnesses, err := p.Fitnesses()
	if err != nil {
		return 0, err
	}
	return Sum(fitnesses), nil
}

// MaxFitness returns the best fitness in the population.
func (p *Population) MaxFitness() (float64, error) {
	fitnesses, err := p.Fitnesses()
	if err != nil {
		return 0, err
	}
	return MaxFloat(fitnesses), nil
}

// MinFitness returns the worst fitness in the population.
func (p *Population) MinFitness() (float64, error) {
	fitnesses, err := p.Fitnesses()
	if err != nil {
		return 0, err
	}
	return MinFloat(fitnesses), nil
}

// MeanFitness returns the average fitness of the population.
func (p *Population) MeanFitness() (float64, error) {
	fitnesses, err := p.Fitnesses()
	if err != nil {
		return 0, err
	}
	return Mean(fitnesses), nil
}

// Best returns the individual with the highest fitness. Ties resolve to the
// first such individual in population order.
func (p *Population) Best() (*Individual, error) {
	fitnesses, err := p.Fitnesses()
	if err != nil {
		return nil, err
	}
	best := 0
	for i := 1; i < len(fitnesses); i++ {
		if fitnesses[i] > fitnesses[best] {
			best = i
		}
	}
	return p.members[best], nil
}
