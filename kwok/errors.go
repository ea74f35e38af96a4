package kwok

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrInvalidInput indicates malformed input: R_size < L_size, an edge
	// referencing a right index outside [0, R_size), or a negative weight.
	// Validation runs before any mutation of engine state.
	ErrInvalidInput = errors.New("kwok: invalid input")

	// ErrInvariantViolation indicates a broken engine invariant: the on-edge
	// set was empty while an unmatched left vertex remained, a slack went
	// negative, or (under WithAudit) feasibility was violated. These signal
	// a bug in the engine itself, never a caller mistake.
	ErrInvariantViolation = errors.New("kwok: internal invariant violation")
)
