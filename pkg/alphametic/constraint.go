// Constraint kinds for the puzzle class.
//
// Constraints are immutable once constructed from the three input words.
// Each kind implements its own filtering rule; the Propagator runs them
// to a fixed point. Filtering is sound (a digit that participates in some
// valid solution is never removed) but not complete: the search engine's
// backtracking covers whatever propagation cannot decide.
package alphametic

import (
	"fmt"
	"strings"
)

// Constraint is a predicate over one or more letters' domains.
//
// Propagate applies the constraint's filtering rule to the store,
// reporting whether any domain changed. It returns ErrInconsistent the
// instant a domain becomes empty. Propagate must be sound: it may only
// remove digits that cannot appear in any full solution.
type Constraint interface {
	// Letters returns the alphabet positions this constraint ranges over.
	Letters() []int

	// Kind returns a short identifier for the constraint type.
	Kind() string

	// String returns a human-readable representation.
	String() string

	// Propagate applies the filtering rule to the store.
	Propagate(store *Store) (changed bool, err error)
}

// NonZero excludes 0 from a single letter's domain. It is posted for the
// leading letters of the two addends only; the result word's leading
// letter is deliberately left unconstrained (see package doc).
type NonZero struct {
	letter int
	name   Letter
}

// NewNonZero creates a NonZero constraint for the letter at the given
// alphabet position.
func NewNonZero(letter int, name Letter) *NonZero {
	return &NonZero{letter: letter, name: name}
}

func (c *NonZero) Letters() []int { return []int{c.letter} }
func (c *NonZero) Kind() string   { return "NonZero" }
func (c *NonZero) String() string { return fmt.Sprintf("NonZero(%c)", c.name) }

// Propagate removes 0 from the letter's domain.
func (c *NonZero) Propagate(store *Store) (bool, error) {
	return store.Remove(c.letter, 0)
}

// AllDifferent requires that no two letters are assigned the same digit.
//
// Filtering is forward checking: whenever a letter's domain collapses to
// a single digit, that digit is removed from every other letter's
// domain. A pigeonhole check fails fast when fewer distinct digits
// remain available than there are letters, the same quick-fail the
// matching-based filters use before doing any real work.
type AllDifferent struct {
	letters []int
}

// NewAllDifferent creates an AllDifferent constraint over the given
// alphabet positions. Returns an error if letters is empty.
func NewAllDifferent(letters []int) (*AllDifferent, error) {
	if len(letters) == 0 {
		return nil, fmt.Errorf("AllDifferent requires at least one letter")
	}
	cp := make([]int, len(letters))
	copy(cp, letters)
	return &AllDifferent{letters: cp}, nil
}

func (c *AllDifferent) Letters() []int { return c.letters }
func (c *AllDifferent) Kind() string   { return "AllDifferent" }

func (c *AllDifferent) String() string {
	parts := make([]string, len(c.letters))
	for i, l := range c.letters {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return "AllDifferent(" + strings.Join(parts, ",") + ")"
}

// Propagate applies the pigeonhole check and one forward-checking pass.
// The Propagator's fixed-point loop repeats it until no singleton
// propagates further.
func (c *AllDifferent) Propagate(store *Store) (bool, error) {
	// Pigeonhole: enough distinct digits left for all letters?
	available := DomainOf()
	for _, l := range c.letters {
		available = available.Union(store.Domain(l))
	}
	if available.Count() < len(c.letters) {
		return false, fmt.Errorf("%w: %d digits available for %d letters",
			ErrInconsistent, available.Count(), len(c.letters))
	}

	changed := false
	for _, l := range c.letters {
		d := store.Domain(l)
		if !d.IsSingleton() {
			continue
		}
		digit := d.SingletonValue()
		for _, other := range c.letters {
			if other == l {
				continue
			}
			ch, err := store.Remove(other, digit)
			changed = changed || ch
			if err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}
