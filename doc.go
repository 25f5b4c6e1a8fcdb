// Package easyga provides a small, extensible genetic algorithm over
// fixed-length bitstring genotypes.
//
// The engine maintains a fixed-size population of individuals, evaluates
// their fitness with a user-supplied function, and advances the population
// one generation at a time through selection, recombination and mutation.
// The three evolutionary operators are supplied through the Strategy
// interface; built-in roulette-wheel selection, single-point and uniform
// crossover, and per-bit mutation are available for strategies to delegate
// to.
//
// Basic usage:
//
//	// Load configuration
//	config, err := easyga.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Fitness: maximise the number of one bits.
//	fitness := func(g easyga.Genotype) (float64, error) {
//		return float64(g.Ones()), nil
//	}
//
//	// Create the engine with the built-in strategy from the config.
//	ga, err := easyga.NewFromConfig(config, fitness)
//	if err != nil {
//		log.Fatalf("Error creating engine: %v", err)
//	}
//
//	// Run until the fitness threshold is met.
//	for i := 0; i < config.GA.MaxGenerations; i++ {
//		best, err := ga.MaxFitness()
//		if err != nil {
//			log.Fatalf("Error evaluating population: %v", err)
//		}
//		if best >= config.GA.FitnessThreshold {
//			fmt.Println("Solution found!")
//			break
//		}
//		if err := ga.NextGeneration(); err != nil {
//			log.Fatalf("Error advancing generation: %v", err)
//		}
//	}
package easyga
