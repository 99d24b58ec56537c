package rats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, 20, config.RetainCount())
	assert.Equal(t, 20+10*16, config.BredSize())
}

func TestRetainDefaultsToSize(t *testing.T) {
	config := DefaultConfig()
	config.Population.Retain = 0
	assert.Equal(t, config.Population.Size, config.RetainCount())
	assert.NoError(t, config.Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"zero size", func(c *Config) { c.Population.Size = 0 }},
		{"odd size", func(c *Config) { c.Population.Size = 21 }},
		{"odd retain", func(c *Config) { c.Population.Retain = 7 }},
		{"retain above size", func(c *Config) { c.Population.Retain = 22 }},
		{"negative min weight", func(c *Config) { c.Population.MinWeight = -1 }},
		{"min above max", func(c *Config) { c.Population.MinWeight = 700 }},
		{"mode below min", func(c *Config) { c.Population.ModeWeight = 100 }},
		{"mode above max", func(c *Config) { c.Population.ModeWeight = 601 }},
		{"zero litter", func(c *Config) { c.Breeding.LitterSize = 0 }},
		{"zero litters per year", func(c *Config) { c.Breeding.LittersPerYear = 0 }},
		{"odd bred population", func(c *Config) {
			c.Population.Size = 6
			c.Population.Retain = 6
			c.Breeding.LitterSize = 3
		}},
		{"negative odds", func(c *Config) { c.Mutation.Odds = -0.1 }},
		{"odds above one", func(c *Config) { c.Mutation.Odds = 1.5 }},
		{"negative multiplier", func(c *Config) { c.Mutation.Min = -0.5 }},
		{"empty multiplier range", func(c *Config) { c.Mutation.Min = c.Mutation.Max }},
		{"zero target", func(c *Config) { c.Run.TargetMean = 0 }},
		{"target above weight limit", func(c *Config) { c.Run.TargetMean = 1e30 }},
		{"max weight above limit", func(c *Config) {
			c.Population.MaxWeight = WeightLimit + 1
		}},
		{"negative cap", func(c *Config) { c.Run.GenerationCap = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			assert.ErrorIs(t, config.Validate(), ErrInvalidConfiguration)
		})
	}
}

func TestLoadConfigIni(t *testing.T) {
	path := writeConfig(t, "rats-config", `
# smaller colony
[Population]
size   = 10
retain = 10

[Mutation]
odds = 0.05

[Run]
target_mean    = 1000
generation_cap = 50
seed           = 42
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, config.Population.Size)
	assert.Equal(t, 10, config.Population.Retain)
	assert.Equal(t, 200, config.Population.MinWeight, "missing keys keep defaults")
	assert.Equal(t, 16, config.Breeding.LitterSize)
	assert.InDelta(t, 0.05, config.Mutation.Odds, 1e-12)
	assert.InDelta(t, 1.25, config.Mutation.Max, 1e-12)
	assert.InDelta(t, 1000.0, config.Run.TargetMean, 1e-12)
	assert.Equal(t, 50, config.Run.GenerationCap)
	assert.Equal(t, int64(42), config.Run.Seed)
}

func TestLoadConfigToml(t *testing.T) {
	path := writeConfig(t, "rats.toml", `
[population]
size = 40
mode_weight = 250

[breeding]
litter_size = 8
litters_per_year = 5

[run]
target_mean = 5000.0
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, config.Population.Size)
	assert.Equal(t, 20, config.Population.Retain)
	assert.Equal(t, 250, config.Population.ModeWeight)
	assert.Equal(t, 8, config.Breeding.LitterSize)
	assert.Equal(t, 5, config.Breeding.LittersPerYear)
	assert.InDelta(t, 5000.0, config.Run.TargetMean, 1e-12)
	assert.Equal(t, 500, config.Run.GenerationCap)
}

func TestLoadConfigValidates(t *testing.T) {
	path := writeConfig(t, "bad-config", "[Population]\nsize = 7\n")
	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
