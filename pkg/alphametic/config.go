package alphametic

import "github.com/rs/zerolog"

// Config controls solver behaviour.
type Config struct {
	// NodeBudget caps the number of tentative assignments the search
	// may try. 0 means unlimited. The budget is a safety valve for
	// pathological inputs; it never changes the outcome of puzzles the
	// search can finish.
	NodeBudget int

	// Logger receives debug-level search events. Defaults to a
	// disabled logger.
	Logger zerolog.Logger
}

// DefaultConfig returns the configuration used by the package-level
// Solve: unlimited nodes, logging disabled.
func DefaultConfig() Config {
	return Config{Logger: zerolog.Nop()}
}
