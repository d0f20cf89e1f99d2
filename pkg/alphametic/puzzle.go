package alphametic

import (
	"fmt"
	"strings"
)

// Puzzle is one compiled term1 + term2 = result instance: the uppercased
// words, the alphabet derived from them, and the fixed constraint set.
// Puzzles are immutable and may be solved repeatedly; every solve gets
// its own store.
type Puzzle struct {
	Term1, Term2, Result string

	alphabet    *Alphabet
	constraints []Constraint
}

// NewPuzzle validates and compiles a puzzle. Input is case-insensitive;
// the words are uppercased before letter extraction. Each word must be
// non-empty and purely alphabetic, anything else fails with
// ErrInvalidInput.
func NewPuzzle(term1, term2, result string) (*Puzzle, error) {
	p := &Puzzle{
		Term1:  strings.ToUpper(term1),
		Term2:  strings.ToUpper(term2),
		Result: strings.ToUpper(result),
	}

	alpha, err := NewAlphabet(p.Term1, p.Term2, p.Result)
	if err != nil {
		return nil, err
	}
	p.alphabet = alpha

	// Leading digits of the two addends must not be zero. The result
	// word is intentionally left out; see the package documentation.
	p.constraints = append(p.constraints,
		NewNonZero(alpha.Index(p.Term1[0]), p.Term1[0]),
		NewNonZero(alpha.Index(p.Term2[0]), p.Term2[0]),
	)

	all := make([]int, alpha.Len())
	for i := range all {
		all[i] = i
	}
	ad, err := NewAllDifferent(all)
	if err != nil {
		return nil, fmt.Errorf("building puzzle %s+%s=%s: %w", p.Term1, p.Term2, p.Result, err)
	}
	p.constraints = append(p.constraints, ad)

	p.constraints = append(p.constraints, NewColumnSum(p.Term1, p.Term2, p.Result, alpha))
	return p, nil
}

// Alphabet returns the puzzle's distinct letters in first-occurrence order.
func (p *Puzzle) Alphabet() *Alphabet { return p.alphabet }

// Constraints returns the fixed constraint set.
// The returned slice must not be modified.
func (p *Puzzle) Constraints() []Constraint { return p.constraints }

// NewStore creates a fresh domain store for solving this puzzle, with
// every letter's domain initialized to 0..9.
func (p *Puzzle) NewStore() *Store {
	return NewStore(p.alphabet.Len())
}

func (p *Puzzle) String() string {
	return fmt.Sprintf("%s + %s = %s", p.Term1, p.Term2, p.Result)
}
