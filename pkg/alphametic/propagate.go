package alphametic

import "fmt"

// maxPasses bounds the fixed-point loop. Domains shrink monotonically,
// so with at most 10 letters of 10 digits each the loop settles long
// before this; the bound only guards against a constraint that reports
// spurious changes.
const maxPasses = 1000

// Propagator runs the constraint set to a fixed point, deducing forced
// domain reductions without guessing. It reports ErrInconsistent the
// instant any domain becomes empty, which is the search engine's signal
// to backtrack.
type Propagator struct {
	constraints []Constraint
	stats       *Stats
}

// NewPropagator creates a propagator over the given constraints.
// stats may be nil.
func NewPropagator(constraints []Constraint, stats *Stats) *Propagator {
	return &Propagator{constraints: constraints, stats: stats}
}

// Run applies every constraint repeatedly until none changes a domain.
func (p *Propagator) Run(store *Store) error {
	for pass := 0; pass < maxPasses; pass++ {
		if p.stats != nil {
			p.stats.PropagationPasses++
		}
		changed := false
		for _, c := range p.constraints {
			ch, err := c.Propagate(store)
			if err != nil {
				return err
			}
			changed = changed || ch
		}
		if !changed {
			return nil
		}
	}
	return fmt.Errorf("propagation failed to reach a fixed point after %d passes", maxPasses)
}
