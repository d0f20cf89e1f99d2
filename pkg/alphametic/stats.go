package alphametic

import "time"

// Stats records the effort spent by one solve.
type Stats struct {
	// Nodes is the number of tentative assignments tried by the search.
	Nodes int

	// Backtracks is the number of times the search unwound a frame.
	Backtracks int

	// PropagationPasses counts fixed-point iterations across all
	// propagator runs.
	PropagationPasses int

	// Prunings counts individual domain changes in the store.
	Prunings int

	// SearchTime is the wall-clock duration of the solve.
	SearchTime time.Duration
}
