// Backtracking search engine.
//
// The search is single-threaded, depth-first and synchronous: the whole
// solve is one call that returns the first full assignment found, or
// NotFound once every branch is exhausted. An explicit frame stack is
// used instead of recursion so backtracking is a plain snapshot restore
// and the search can be cancelled between steps.
package alphametic

import (
	"context"
	"errors"
	"time"
)

// Solver runs backtracking search over a puzzle's letter domains,
// invoking the propagator after each tentative assignment.
//
// A Solver is not safe for concurrent use; create one per goroutine.
// It may be reused for consecutive solves.
type Solver struct {
	config Config
	stats  Stats
}

// NewSolver creates a solver with the given configuration.
func NewSolver(config Config) *Solver {
	return &Solver{config: config}
}

// Stats returns the statistics of the most recent solve.
func (s *Solver) Stats() Stats { return s.stats }

// searchFrame is one level of the backtracking stack: the domain
// snapshot taken after the parent's propagation, the letter being
// branched on, and the candidate digits still to try.
type searchFrame struct {
	snap   []Domain
	letter int
	digits []int
	next   int
}

// Solve searches for a digit assignment satisfying the puzzle's
// constraints. A puzzle without a solution yields Outcome.Found == false
// and a nil error; errors are reserved for cancellation and an exhausted
// node budget.
func (s *Solver) Solve(ctx context.Context, p *Puzzle) (Outcome, error) {
	start := time.Now()
	s.stats = Stats{}
	defer func() { s.stats.SearchTime = time.Since(start) }()

	store := p.NewStore()
	prop := NewPropagator(p.Constraints(), &s.stats)
	defer func() { s.stats.Prunings = store.Prunings() }()

	log := s.config.Logger

	// Initial propagation pass before any guessing.
	if err := prop.Run(store); err != nil {
		if errors.Is(err, ErrInconsistent) {
			log.Debug().Stringer("puzzle", p).Msg("inconsistent at root, no solution")
			return Outcome{}, nil
		}
		return Outcome{}, err
	}
	log.Debug().Stringer("puzzle", p).Stringer("domains", store).Msg("root propagation done")

	if store.AllSingleton() {
		return buildOutcome(p, store), nil
	}

	stack := make([]searchFrame, 0, p.Alphabet().Len())
	letter, digits := selectLetter(store)
	stack = append(stack, searchFrame{snap: store.Snapshot(), letter: letter, digits: digits})

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return Outcome{}, ctx.Err()
		default:
		}

		f := &stack[len(stack)-1]

		if f.next >= len(f.digits) {
			// Candidates exhausted: unwind to the parent frame.
			store.Restore(f.snap)
			stack = stack[:len(stack)-1]
			s.stats.Backtracks++
			continue
		}

		digit := f.digits[f.next]
		f.next++

		s.stats.Nodes++
		if s.config.NodeBudget > 0 && s.stats.Nodes > s.config.NodeBudget {
			return Outcome{}, ErrNodeBudget
		}

		// Undo the previous sibling's effects, then fix the letter.
		store.Restore(f.snap)
		if _, err := store.Assign(f.letter, digit); err != nil {
			continue
		}
		if err := prop.Run(store); err != nil {
			if errors.Is(err, ErrInconsistent) {
				continue
			}
			return Outcome{}, err
		}

		if store.AllSingleton() {
			outcome := buildOutcome(p, store)
			log.Debug().
				Int("nodes", s.stats.Nodes).
				Int("backtracks", s.stats.Backtracks).
				Msg("solution found")
			return outcome, nil
		}

		nextLetter, nextDigits := selectLetter(store)
		if nextLetter == -1 {
			continue
		}
		stack = append(stack, searchFrame{snap: store.Snapshot(), letter: nextLetter, digits: nextDigits})
	}

	log.Debug().
		Int("nodes", s.stats.Nodes).
		Int("backtracks", s.stats.Backtracks).
		Msg("search space exhausted, no solution")
	return Outcome{}, nil
}

// selectLetter picks the unassigned letter with the smallest domain,
// breaking ties by first-occurrence order, and returns its candidate
// digits in ascending order. Returns -1 when every letter is assigned.
func selectLetter(store *Store) (int, []int) {
	best := -1
	bestCount := Base + 1
	for i := 0; i < store.Len(); i++ {
		count := store.Domain(i).Count()
		if count <= 1 {
			continue
		}
		if count < bestCount {
			best = i
			bestCount = count
		}
	}
	if best == -1 {
		return -1, nil
	}
	return best, store.Domain(best).Digits()
}
