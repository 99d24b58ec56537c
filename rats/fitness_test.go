package rats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitness(t *testing.T) {
	f, err := Fitness(Population{100, 200, 300, 400}, 500)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f, 1e-12)
}

func TestFitnessIgnoresOrder(t *testing.T) {
	pop := Population{512, 13, 77, 300, 42, 9001}
	want, err := Fitness(pop, 65771)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := pop.Clone()
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, err := Fitness(shuffled, 65771)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	}
}

func TestFitnessErrors(t *testing.T) {
	_, err := Fitness(Population{}, 10)
	assert.ErrorIs(t, err, ErrEmptyPopulation)

	_, err = Fitness(nil, 10)
	assert.ErrorIs(t, err, ErrEmptyPopulation)

	_, err = Fitness(Population{1, 2}, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Fitness(Population{1, 2}, -3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
