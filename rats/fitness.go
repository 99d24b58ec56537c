package rats

import "fmt"

// Fitness measures how close a population is to the goal weight: the ratio
// of the mean weight to goal. A value of 1 or more means the goal is met.
func Fitness(pop Population, goal float64) (float64, error) {
	if len(pop) == 0 {
		return 0, fmt.Errorf("cannot evaluate fitness: %w", ErrEmptyPopulation)
	}
	if goal <= 0 {
		return 0, fmt.Errorf("goal must be positive, got %g: %w", goal, ErrInvalidInput)
	}
	return pop.Mean() / goal, nil
}
