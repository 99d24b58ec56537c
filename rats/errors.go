package rats

import "errors"

// Errors returned by the engine and its operators. They are wrapped with
// context, so compare with errors.Is.
var (
	// ErrInvalidConfiguration reports a config value outside its allowed range.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidInput reports bad arguments passed to an operator.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyPopulation is returned when fitness is requested for zero individuals.
	ErrEmptyPopulation = errors.New("empty population")
)
