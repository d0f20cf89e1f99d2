package alphametic

import "fmt"

// Letter is a single uppercase character acting as a variable identifier.
type Letter = byte

// Alphabet is the ordered set of distinct letters appearing in a puzzle,
// in first-occurrence order across term1 ++ term2 ++ result. The order
// fixes the search's tie-break and makes solves reproducible. Immutable
// after construction.
type Alphabet struct {
	letters []Letter
	index   [26]int // letter - 'A' -> position, or -1
}

// NewAlphabet derives the alphabet from the given words. Every word must
// be non-empty and contain only uppercase letters A-Z; violations fail
// with ErrInvalidInput.
func NewAlphabet(words ...string) (*Alphabet, error) {
	a := &Alphabet{}
	for i := range a.index {
		a.index[i] = -1
	}
	for _, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty word", ErrInvalidInput)
		}
		for i := 0; i < len(w); i++ {
			c := w[i]
			if c < 'A' || c > 'Z' {
				return nil, fmt.Errorf("%w: non-alphabetic character %q in %q", ErrInvalidInput, c, w)
			}
			if a.index[c-'A'] == -1 {
				a.index[c-'A'] = len(a.letters)
				a.letters = append(a.letters, c)
			}
		}
	}
	return a, nil
}

// Len returns the number of distinct letters.
func (a *Alphabet) Len() int { return len(a.letters) }

// Letters returns the letters in first-occurrence order.
// The returned slice must not be modified.
func (a *Alphabet) Letters() []Letter { return a.letters }

// Letter returns the letter at the given position.
func (a *Alphabet) Letter(i int) Letter { return a.letters[i] }

// Index returns the position of the letter, or -1 if it does not occur.
func (a *Alphabet) Index(l Letter) int {
	if l < 'A' || l > 'Z' {
		return -1
	}
	return a.index[l-'A']
}
