package rats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulateWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop, err := Populate(rng, 1000, 200, 600, 300)
	require.NoError(t, err)
	require.Len(t, pop, 1000)

	for _, w := range pop {
		assert.GreaterOrEqual(t, w, 200)
		assert.LessOrEqual(t, w, 600)
	}
	// Mean of triangular(200, 600, 300) is 366.67.
	assert.InDelta(t, 366.67, pop.Mean(), 15)
}

func TestPopulateDegenerateBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop, err := Populate(rng, 4, 250, 250, 250)
	require.NoError(t, err)
	assert.Equal(t, Population{250, 250, 250, 250}, pop)
}

func TestPopulateRejects(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name                  string
		n, lower, upper, mode int
	}{
		{"odd size", 5, 200, 600, 300},
		{"zero size", 0, 200, 600, 300},
		{"inverted bounds", 10, 600, 200, 300},
		{"mode below", 10, 200, 600, 100},
		{"mode above", 10, 200, 600, 700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Populate(rng, tt.n, tt.lower, tt.upper, tt.mode)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestPopulationStats(t *testing.T) {
	pop := Population{4, 1, 3, 2}
	assert.InDelta(t, 10.0, pop.Sum(), 1e-12)
	assert.InDelta(t, 2.5, pop.Mean(), 1e-12)
	assert.InDelta(t, 2.5, pop.Median(), 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), pop.Stdev(), 1e-12)
	assert.Equal(t, 1, pop.Min())
	assert.Equal(t, 4, pop.Max())
	assert.Equal(t, Population{4, 1, 3, 2}, pop, "median must not reorder")

	var empty Population
	assert.Zero(t, empty.Mean())
	assert.Zero(t, empty.Stdev())
	assert.Zero(t, empty.Min())
	assert.True(t, math.IsNaN(empty.Median()))
}

func TestCloneDoesNotAlias(t *testing.T) {
	pop := Population{1, 2}
	c := pop.Clone()
	c[0] = 99
	assert.Equal(t, 1, pop[0])
}

func TestMeanOfHeavyPopulation(t *testing.T) {
	pop := make(Population, 180)
	for i := range pop {
		pop[i] = WeightLimit
	}
	assert.InDelta(t, float64(WeightLimit), pop.Mean(), 1)
	assert.Positive(t, pop.Sum())
}
