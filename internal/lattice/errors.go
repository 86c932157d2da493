package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when a wildtype and mutant sequence
	// have different lengths.
	ErrLengthMismatch = errors.New("wildtype and mutant sequences must be the same length")

	// ErrNotFullyDivergent is returned when a wildtype and mutant sequence
	// share a character at one or more sites.
	ErrNotFullyDivergent = errors.New("wildtype and mutant sequences must differ at every site")

	// ErrNoScoringSource is returned when a scoring pass is requested
	// without a fold oracle or a conformation list.
	ErrNoScoringSource = errors.New("no fold oracle or conformation list to score against")
)

// SearchExhaustedError is returned when a landscape search hits its
// iteration cap before finding two qualifying, fully divergent sequences.
type SearchExhaustedError struct {
	MaxIter int
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf("landscape search hit its %d iteration cap before finding two divergent sequences", e.MaxIter)
}

// InvalidPhenotypeError is returned when a phenotype selector isn't one
// of the recognized types.
type InvalidPhenotypeError struct {
	Type string
}

func (e *InvalidPhenotypeError) Error() string {
	return fmt.Sprintf("%q is not a valid phenotype type", e.Type)
}

// MissingFieldError is returned when a persisted map is missing a
// required field. Field names the first absent field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("persisted map is missing the %q field", e.Field)
}
