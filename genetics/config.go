package genetics

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the tunable parameters of the genetic operators.
// A Config is validated on construction and must not be modified afterwards.
type Config struct {
	CrossoverChance           float64 `ini:"crossover_chance"`            // Chance for crossover to be attempted for a parent pair
	IndividualCrossoverChance float64 `ini:"individual_crossover_chance"` // Per-gene swap chance once crossover is attempted
	MutationChance            float64 `ini:"mutation_chance"`             // Per-gene mutation chance
	MutationRangeFlat         float64 `ini:"mutation_range_flat"`         // Half-width of the additive perturbation
	MutationRangePercent      float64 `ini:"mutation_range_percent"`      // Half-width of the resampling window, relative to the gene
	EliteAmount               int     `ini:"elite_amount"`                // Top chromosomes carried forward unchanged
}

// EvolutionSettings holds parameters for the generation loop driven by Evolution.
type EvolutionSettings struct {
	PopSize              int     `ini:"pop_size"`
	MaxGenerations       int     `ini:"max_generations"`
	FitnessThreshold     float64 `ini:"fitness_threshold"`
	NoFitnessTermination bool    `ini:"no_fitness_termination"`
	Seed                 int64   `ini:"seed"` // 0 means "pick one from the clock"
}

// DefaultConfig returns the reference operator parameters.
func DefaultConfig() *Config {
	return &Config{
		CrossoverChance:           0.85,
		IndividualCrossoverChance: 0.3,
		MutationChance:            0.1,
		MutationRangeFlat:         0.1,
		MutationRangePercent:      0.1,
		EliteAmount:               0,
	}
}

// DefaultEvolutionSettings returns settings for a 50 chromosome population
// that runs for 100 generations without a fitness threshold.
func DefaultEvolutionSettings() EvolutionSettings {
	return EvolutionSettings{
		PopSize:              50,
		MaxGenerations:       100,
		NoFitnessTermination: true,
	}
}

// NewConfig creates a validated Config.
func NewConfig(crossoverChance, individualCrossoverChance, mutationChance, mutationRangeFlat, mutationRangePercent float64, eliteAmount int) (*Config, error) {
	cfg := &Config{
		CrossoverChance:           crossoverChance,
		IndividualCrossoverChance: individualCrossoverChance,
		MutationChance:            mutationChance,
		MutationRangeFlat:         mutationRangeFlat,
		MutationRangePercent:      mutationRangePercent,
		EliteAmount:               eliteAmount,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its documented domain.
func (c *Config) Validate() error {
	probabilities := []struct {
		name  string
		value float64
	}{
		{"crossover_chance", c.CrossoverChance},
		{"individual_crossover_chance", c.IndividualCrossoverChance},
		{"mutation_chance", c.MutationChance},
	}
	for _, p := range probabilities {
		if math.IsNaN(p.value) || p.value < 0 || p.value > 1 {
			return fmt.Errorf("%w: %s must be between 0 and 1, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}
	if math.IsNaN(c.MutationRangeFlat) || math.IsInf(c.MutationRangeFlat, 0) || c.MutationRangeFlat < 0 {
		return fmt.Errorf("%w: mutation_range_flat must be a finite non-negative number, got %v", ErrInvalidConfig, c.MutationRangeFlat)
	}
	if math.IsNaN(c.MutationRangePercent) || math.IsInf(c.MutationRangePercent, 0) || c.MutationRangePercent < 0 {
		return fmt.Errorf("%w: mutation_range_percent must be a finite non-negative number, got %v", ErrInvalidConfig, c.MutationRangePercent)
	}
	if c.EliteAmount < 0 {
		return fmt.Errorf("%w: elite_amount cannot be negative, got %d", ErrInvalidConfig, c.EliteAmount)
	}
	return nil
}

// Validate checks the loop settings against the operator config they will drive.
func (s EvolutionSettings) Validate(cfg *Config) error {
	if s.PopSize <= 0 {
		return fmt.Errorf("%w: pop_size must be positive", ErrInvalidConfig)
	}
	if s.PopSize < cfg.EliteAmount {
		return fmt.Errorf("%w: pop_size (%d) must not be lower than elite_amount (%d)", ErrInvalidConfig, s.PopSize, cfg.EliteAmount)
	}
	if s.MaxGenerations < 0 {
		return fmt.Errorf("%w: max_generations cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig loads operator parameters from the [Genetics] section and loop
// settings from the optional [Evolution] section of an INI file. Keys that
// are missing keep their default values.
func LoadConfig(filePath string) (*Config, EvolutionSettings, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, EvolutionSettings{}, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return parseConfig(file)
}

// ParseConfig is LoadConfig for INI data already held in memory.
func ParseConfig(data []byte) (*Config, EvolutionSettings, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, data)
	if err != nil {
		return nil, EvolutionSettings{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return parseConfig(file)
}

func parseConfig(file *ini.File) (*Config, EvolutionSettings, error) {
	config := DefaultConfig()
	settings := DefaultEvolutionSettings()

	if err := file.Section("Genetics").MapTo(config); err != nil {
		return nil, settings, fmt.Errorf("failed to map [Genetics] section: %w", err)
	}
	if section, err := file.GetSection("Evolution"); err == nil {
		if err := section.MapTo(&settings); err != nil {
			return nil, settings, fmt.Errorf("failed to map [Evolution] section: %w", err)
		}
		// A threshold without an explicit no_fitness_termination enables termination.
		if section.HasKey("fitness_threshold") && !section.HasKey("no_fitness_termination") {
			settings.NoFitnessTermination = false
		}
	}

	if err := config.Validate(); err != nil {
		return nil, settings, fmt.Errorf("config error: %w", err)
	}
	if err := settings.Validate(config); err != nil {
		return nil, settings, fmt.Errorf("config error: %w", err)
	}
	return config, settings, nil
}

// String returns a single-line summary of the config.
func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Config(crossover=%.3f, individual_crossover=%.3f, ", c.CrossoverChance, c.IndividualCrossoverChance)
	fmt.Fprintf(&b, "mutation=%.3f, flat=%.3f, percent=%.3f, elites=%d)", c.MutationChance, c.MutationRangeFlat, c.MutationRangePercent, c.EliteAmount)
	return b.String()
}
