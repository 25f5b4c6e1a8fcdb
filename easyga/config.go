package easyga

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for a GA run.
type Config struct {
	GA       GAConfig
	Strategy StrategyConfig
}

// GAConfig holds the engine parameters.
type GAConfig struct {
	PopSize              int     `ini:"pop_size"`
	GenomeLength         int     `ini:"genome_length"`
	FitnessCriterion     string  `ini:"fitness_criterion"` // e.g., "max", "min", "mean"
	FitnessThreshold     float64 `ini:"fitness_threshold"`
	NoFitnessTermination bool    `ini:"no_fitness_termination"`
	MaxGenerations       int     `ini:"max_generations"`
	Seed                 int64   `ini:"seed"` // 0 means seed from the clock
}

// StrategyConfig holds the parameters of the built-in strategy.
type StrategyConfig struct {
	Selection    string  `ini:"selection"` // "roulette" or "best"
	Crossover    string  `ini:"crossover"` // "single_point" or "uniform"
	MutationRate float64 `ini:"mutation_rate"`
	NumElites    int     `ini:"n_elites"` // only used with selection = best
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true, // Allow # comments starting with # or ;
		UnescapeValueCommentSymbols: true, // If # or ; appear in value, treat as value
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	// Map sections to structs
	if err := cfg.Section("GA").MapTo(&config.GA); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}
	if err := cfg.Section("Strategy").MapTo(&config.Strategy); err != nil {
		return nil, fmt.Errorf("failed to map [Strategy] section: %w", err)
	}

	// --- Explicitly clean potentially problematic string values ---
	config.GA.FitnessCriterion = cleanIniString(config.GA.FitnessCriterion)
	config.Strategy.Selection = cleanIniString(config.Strategy.Selection)
	config.Strategy.Crossover = cleanIniString(config.Strategy.Crossover)

	// Set defaults for keys the file leaves out.
	if config.GA.FitnessCriterion == "" {
		config.GA.FitnessCriterion = "max"
	}
	if config.GA.MaxGenerations == 0 {
		config.GA.MaxGenerations = 100
	}
	if config.Strategy.Selection == "" {
		config.Strategy.Selection = SelectionRoulette
	}
	if config.Strategy.Crossover == "" {
		config.Strategy.Crossover = CrossoverSinglePoint
	}
	if !cfg.Section("Strategy").HasKey("mutation_rate") {
		config.Strategy.MutationRate = 0.001
	}

	// --- Validation ---
	if config.GA.PopSize <= 0 {
		return nil, fmt.Errorf("config error: pop_size must be positive")
	}
	if config.GA.GenomeLength <= 0 {
		return nil, fmt.Errorf("config error: genome_length must be positive")
	}
	if config.GA.MaxGenerations <= 0 {
		return nil, fmt.Errorf("config error: max_generations must be positive")
	}
	if config.Strategy.MutationRate < 0 || config.Strategy.MutationRate > 1 {
		return nil, fmt.Errorf("config error: mutation_rate must be between 0 and 1")
	}

	// Validate fitness criterion
	validCriteria := map[string]bool{"max": true, "min": true, "mean": true, "median": true, "sum": true}
	if !validCriteria[strings.ToLower(config.GA.FitnessCriterion)] {
		return nil, fmt.Errorf("config error: invalid fitness_criterion '%s', must be one of 'max', 'min', 'mean', 'median', 'sum'",
			config.GA.FitnessCriterion)
	}

	// Validate strategy methods and their cross-field constraints
	switch config.Strategy.Selection {
	case SelectionRoulette:
		// No extra constraints.
	case SelectionBest:
		if config.Strategy.NumElites < 2 {
			return nil, fmt.Errorf("config error: n_elites must be at least 2 for selection 'best'")
		}
		if config.Strategy.NumElites > config.GA.PopSize {
			return nil, fmt.Errorf("config error: n_elites cannot exceed pop_size")
		}
	default:
		return nil, fmt.Errorf("config error: invalid selection '%s', must be 'roulette' or 'best'", config.Strategy.Selection)
	}

	switch config.Strategy.Crossover {
	case CrossoverSinglePoint:
		if config.GA.PopSize%2 != 0 {
			return nil, fmt.Errorf("config error: pop_size must be even for crossover 'single_point'")
		}
		if config.GA.GenomeLength < 2 {
			return nil, fmt.Errorf("config error: genome_length must be at least 2 for crossover 'single_point'")
		}
	case CrossoverUniform:
		// No extra constraints.
	default:
		return nil, fmt.Errorf("config error: invalid crossover '%s', must be 'single_point' or 'uniform'", config.Strategy.Crossover)
	}

	return config, nil
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	// Remove comments starting with # or ;
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
