package alphametic

import "context"

// Solve assigns digits to the letters of term1 + term2 = result using
// the default configuration. This is the package's entry point for
// callers that do not need a reusable Solver.
func Solve(ctx context.Context, term1, term2, result string) (Outcome, error) {
	puzzle, err := NewPuzzle(term1, term2, result)
	if err != nil {
		return Outcome{}, err
	}
	return NewSolver(DefaultConfig()).Solve(ctx, puzzle)
}
