package rats

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Select culls a population down to retain parents. The weights are sorted
// and split at the midpoint; the lower half supplies the females and the
// upper half the males. The heaviest retain/2 of each half are kept.
//
// The returned slices are new and do not alias pop.
func Select(pop Population, retain int) (males, females Population, err error) {
	if len(pop)%2 != 0 {
		return nil, nil, fmt.Errorf("cannot split odd population of %d: %w", len(pop), ErrInvalidInput)
	}
	if retain <= 0 || retain%2 != 0 {
		return nil, nil, fmt.Errorf("retain must be a positive even number, got %d: %w", retain, ErrInvalidInput)
	}
	perSex := len(pop) / 2
	retainPerSex := retain / 2
	if retainPerSex > perSex {
		return nil, nil, fmt.Errorf("cannot retain %d from population of %d: %w", retain, len(pop), ErrInvalidInput)
	}

	sorted := pop.Clone()
	slices.Sort(sorted)

	lower := sorted[:perSex]
	upper := sorted[perSex:]

	females = slices.Clone(lower[perSex-retainPerSex:])
	males = slices.Clone(upper[perSex-retainPerSex:])
	return males, females, nil
}
