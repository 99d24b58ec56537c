package rats

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

// Config stores the parameters of a breeding run. Weights are in grams.
type Config struct {
	Population PopulationConfig `toml:"population"`
	Breeding   BreedingConfig   `toml:"breeding"`
	Mutation   MutationConfig   `toml:"mutation"`
	Run        RunConfig        `toml:"run"`
}

// PopulationConfig holds the population size and the triangular
// distribution used to create the first generation.
type PopulationConfig struct {
	Size       int `ini:"size" toml:"size"`               // must be even
	Retain     int `ini:"retain" toml:"retain"`           // parents kept per generation, 0 means Size
	MinWeight  int `ini:"min_weight" toml:"min_weight"`   // triangular lower bound
	MaxWeight  int `ini:"max_weight" toml:"max_weight"`   // triangular upper bound
	ModeWeight int `ini:"mode_weight" toml:"mode_weight"` // triangular mode
}

// BreedingConfig holds litter parameters.
type BreedingConfig struct {
	LitterSize     int `ini:"litter_size" toml:"litter_size"`
	LittersPerYear int `ini:"litters_per_year" toml:"litters_per_year"` // only used to convert generations to years
}

// MutationConfig holds the per-child mutation chance and the multiplier range.
type MutationConfig struct {
	Odds float64 `ini:"odds" toml:"odds"`
	Min  float64 `ini:"min" toml:"min"`
	Max  float64 `ini:"max" toml:"max"`
}

// RunConfig holds the convergence goal and termination settings.
type RunConfig struct {
	TargetMean    float64 `ini:"target_mean" toml:"target_mean"`
	GenerationCap int     `ini:"generation_cap" toml:"generation_cap"`
	Seed          int64   `ini:"seed" toml:"seed"` // 0 seeds from the clock
}

// DefaultConfig returns the classic experiment: twenty rats bred toward
// the weight of a Great Dane.
func DefaultConfig() *Config {
	return &Config{
		Population: PopulationConfig{
			Size:       20,
			Retain:     20,
			MinWeight:  200,
			MaxWeight:  600,
			ModeWeight: 300,
		},
		Breeding: BreedingConfig{
			LitterSize:     16,
			LittersPerYear: 10,
		},
		Mutation: MutationConfig{
			Odds: 0.01,
			Min:  0.1,
			Max:  1.25,
		},
		Run: RunConfig{
			TargetMean:    65771,
			GenerationCap: 500,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file, or from a
// TOML file when the path ends in ".toml". Keys missing from the file keep
// their DefaultConfig values. The result is validated.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		if _, err := toml.DecodeFile(filePath, config); err != nil {
			return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
		}
	} else if err := loadIni(filePath, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadIni(filePath string, config *Config) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	// Map sections to structs
	if err := cfg.Section("Population").MapTo(&config.Population); err != nil {
		return fmt.Errorf("failed to map [Population] section: %w", err)
	}
	if err := cfg.Section("Breeding").MapTo(&config.Breeding); err != nil {
		return fmt.Errorf("failed to map [Breeding] section: %w", err)
	}
	if err := cfg.Section("Mutation").MapTo(&config.Mutation); err != nil {
		return fmt.Errorf("failed to map [Mutation] section: %w", err)
	}
	if err := cfg.Section("Run").MapTo(&config.Run); err != nil {
		return fmt.Errorf("failed to map [Run] section: %w", err)
	}
	return nil
}

// RetainCount returns the number of parents kept by selection each generation.
func (c *Config) RetainCount() int {
	if c.Population.Retain == 0 {
		return c.Population.Size
	}
	return c.Population.Retain
}

// BredSize returns the population size after one round of breeding.
func (c *Config) BredSize() int {
	retain := c.RetainCount()
	return retain + retain/2*c.Breeding.LitterSize
}

// Validate checks every parameter. Failures wrap ErrInvalidConfiguration.
func (c *Config) Validate() error {
	p := c.Population
	if p.Size <= 0 {
		return configErrorf("population size must be positive")
	}
	if p.Size%2 != 0 {
		return configErrorf("population size must be even, got %d", p.Size)
	}
	retain := c.RetainCount()
	if retain <= 0 || retain%2 != 0 {
		return configErrorf("retain must be a positive even number, got %d", retain)
	}
	if retain > p.Size {
		return configErrorf("retain (%d) cannot exceed population size (%d)", retain, p.Size)
	}
	if p.MinWeight < 0 {
		return configErrorf("min_weight cannot be negative")
	}
	if p.MaxWeight > WeightLimit {
		return configErrorf("max_weight cannot exceed %d", WeightLimit)
	}
	if p.MinWeight > p.MaxWeight {
		return configErrorf("min_weight (%d) cannot exceed max_weight (%d)", p.MinWeight, p.MaxWeight)
	}
	if p.ModeWeight < p.MinWeight || p.ModeWeight > p.MaxWeight {
		return configErrorf("mode_weight (%d) must lie within [%d, %d]", p.ModeWeight, p.MinWeight, p.MaxWeight)
	}

	if c.Breeding.LitterSize <= 0 {
		return configErrorf("litter_size must be positive")
	}
	if c.Breeding.LittersPerYear <= 0 {
		return configErrorf("litters_per_year must be positive")
	}
	if c.BredSize()%2 != 0 {
		return configErrorf("retain %d with litter_size %d yields an odd population of %d",
			retain, c.Breeding.LitterSize, c.BredSize())
	}

	m := c.Mutation
	if m.Odds < 0 || m.Odds > 1 {
		return configErrorf("mutation odds must be between 0 and 1")
	}
	if m.Min < 0 {
		return configErrorf("mutation min cannot be negative")
	}
	if m.Min >= m.Max {
		return configErrorf("mutation min (%g) must be less than max (%g)", m.Min, m.Max)
	}

	if c.Run.TargetMean <= 0 {
		return configErrorf("target_mean must be positive")
	}
	if c.Run.TargetMean > WeightLimit {
		return configErrorf("target_mean cannot exceed the weight limit %d", WeightLimit)
	}
	if c.Run.GenerationCap < 0 {
		return configErrorf("generation_cap cannot be negative")
	}
	return nil
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("config error: %s: %w", fmt.Sprintf(format, args...), ErrInvalidConfiguration)
}
