package alphametic

import "errors"

// Engine errors.
var (
	// ErrInvalidInput reports a malformed puzzle: an empty word or a
	// non-alphabetic character. It is surfaced before any solving begins.
	ErrInvalidInput = errors.New("alphametic: invalid input")

	// ErrInconsistent signals that some letter's domain became empty
	// during propagation. It never escapes a solve: the search engine
	// recovers from it by backtracking, and a root-level inconsistency
	// is reported as a NotFound outcome, not an error.
	ErrInconsistent = errors.New("alphametic: domains inconsistent")

	// ErrNodeBudget is returned when the configured search node budget
	// is exhausted before the search space is covered.
	ErrNodeBudget = errors.New("alphametic: node budget exhausted")
)
