package assignment

import "errors"

var (
	// ErrInvalidInput is returned for fewer than two people, an empty
	// person or family ID, or a duplicated person ID. Retrying cannot help.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInfeasibleInput is returned when the family sizes rule out every
	// assignment: fewer than two families, or one family holding more than
	// half of all people. Retrying cannot help.
	ErrInfeasibleInput = errors.New("infeasible input")

	// ErrExhaustedRetries is returned when the search hit its attempt or
	// time ceiling. Callers may retry with a larger budget.
	ErrExhaustedRetries = errors.New("exhausted retries")

	// ErrInvalidAssignment is returned by Verify.
	ErrInvalidAssignment = errors.New("invalid assignment")
)
