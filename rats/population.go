package rats

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/exp/slices"
)

// WeightLimit is the heaviest weight an individual may carry. Every int
// up to it is exact as a float64, so sampling and scaling stay exact.
const WeightLimit = 1 << 53

// Population is one generation of rats, each stored as its weight in grams.
// Order carries no meaning unless a caller sorts it.
type Population []int

// Populate creates n individuals whose weights are drawn from a triangular
// distribution on [lower, upper] peaking at mode, truncated toward zero.
func Populate(rng *rand.Rand, n, lower, upper, mode int) (Population, error) {
	if n <= 0 || n%2 != 0 {
		return nil, fmt.Errorf("population size must be a positive even number, got %d: %w", n, ErrInvalidConfiguration)
	}
	if lower > upper {
		return nil, fmt.Errorf("lower bound %d exceeds upper bound %d: %w", lower, upper, ErrInvalidConfiguration)
	}
	if mode < lower || mode > upper {
		return nil, fmt.Errorf("mode %d outside [%d, %d]: %w", mode, lower, upper, ErrInvalidConfiguration)
	}

	pop := make(Population, n)
	for i := range pop {
		pop[i] = int(triangular(rng, float64(lower), float64(upper), float64(mode)))
	}
	return pop, nil
}

// Clone returns a copy that shares no storage with p.
func (p Population) Clone() Population {
	return slices.Clone(p)
}

// Sum returns the total weight of the population. It is accumulated as a
// float64 because a bred population near WeightLimit overflows an int.
func (p Population) Sum() float64 {
	sum := 0.0
	for _, w := range p {
		sum += float64(w)
	}
	return sum
}

// Mean returns the average weight, or 0 for an empty population.
func (p Population) Mean() float64 {
	if len(p) == 0 {
		return 0.0
	}
	return p.Sum() / float64(len(p))
}

// Stdev returns the sample standard deviation of the weights.
func (p Population) Stdev() float64 {
	if len(p) < 2 {
		return 0.0
	}
	mean := p.Mean()
	variance := 0.0
	for _, w := range p {
		diff := float64(w) - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(p)-1))
}

// Min returns the lightest weight, or 0 for an empty population.
func (p Population) Min() int {
	if len(p) == 0 {
		return 0
	}
	return slices.Min(p)
}

// Max returns the heaviest weight, or 0 for an empty population.
func (p Population) Max() int {
	if len(p) == 0 {
		return 0
	}
	return slices.Max(p)
}

// Median returns the median weight. Returns NaN if the population is empty.
func (p Population) Median() float64 {
	n := len(p)
	if n == 0 {
		return math.NaN()
	}
	sorted := p.Clone()
	slices.Sort(sorted)

	mid := n / 2
	if n%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2.0
}
