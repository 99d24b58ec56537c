package rats

import (
	"fmt"
	"math/rand"
)

// Breed pairs males with females and produces litterSize children per pair.
// Both pools are shuffled in place before pairing. Each child's weight is
// drawn uniformly from the closed interval between its parents' weights.
func Breed(rng *rand.Rand, males, females Population, litterSize int) (Population, error) {
	if len(males) != len(females) {
		return nil, fmt.Errorf("pool sizes differ: %d males, %d females: %w", len(males), len(females), ErrInvalidInput)
	}
	if litterSize <= 0 {
		return nil, fmt.Errorf("litter size must be positive, got %d: %w", litterSize, ErrInvalidInput)
	}

	if err := checkWeights(males); err != nil {
		return nil, fmt.Errorf("males: %w", err)
	}
	if err := checkWeights(females); err != nil {
		return nil, fmt.Errorf("females: %w", err)
	}

	rng.Shuffle(len(males), func(i, j int) { males[i], males[j] = males[j], males[i] })
	rng.Shuffle(len(females), func(i, j int) { females[i], females[j] = females[j], females[i] })

	children := make(Population, 0, len(males)*litterSize)
	for i, male := range males {
		female := females[i]
		for j := 0; j < litterSize; j++ {
			children = append(children, intBetween(rng, male, female))
		}
	}
	return children, nil
}

// Mutate scales each child's weight by a random factor in [min, max) with
// probability odds. Children are modified in place and returned; those not
// picked keep their weight. A mutation that would push a weight past
// WeightLimit fails with ErrInvalidInput.
func Mutate(rng *rand.Rand, children Population, odds, min, max float64) (Population, error) {
	if odds < 0 || odds > 1 {
		return nil, fmt.Errorf("mutation odds must be between 0 and 1, got %g: %w", odds, ErrInvalidInput)
	}
	if min < 0 || min >= max {
		return nil, fmt.Errorf("mutation range [%g, %g] is invalid: %w", min, max, ErrInvalidInput)
	}

	for i, w := range children {
		// Float64 can return exactly 0, so zero odds must be checked explicitly.
		if u := rng.Float64(); odds > 0 && u <= odds {
			scaled := float64(w) * uniform(rng, min, max)
			if scaled > WeightLimit {
				return nil, fmt.Errorf("mutating weight %d exceeds limit %d: %w", w, WeightLimit, ErrInvalidInput)
			}
			children[i] = roundInt(scaled)
		}
	}
	return children, nil
}

// checkWeights rejects weights outside [0, WeightLimit].
func checkWeights(pop Population) error {
	for _, w := range pop {
		if w < 0 || w > WeightLimit {
			return fmt.Errorf("weight %d outside [0, %d]: %w", w, WeightLimit, ErrInvalidInput)
		}
	}
	return nil
}
