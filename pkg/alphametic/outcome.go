package alphametic

import "fmt"

// Outcome is the result of one solve. When Found is true the assignment
// is total and injective over the puzzle's letters and the three values
// satisfy Term1Value + Term2Value == ResultValue exactly. When Found is
// false no assignment exists; every other field is zero.
type Outcome struct {
	Found bool

	Term1Value  int
	Term2Value  int
	ResultValue int

	// Assignment maps each letter to its digit. It is kept alongside
	// the numeric values because the result word may legitimately be
	// assigned a leading zero, which the integer value cannot show.
	Assignment map[Letter]int
}

// DigitString renders a word digit-by-digit under the assignment,
// preserving leading zeros. Every letter of the word must be assigned.
func (o Outcome) DigitString(word string) (string, error) {
	buf := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		digit, ok := o.Assignment[word[i]]
		if !ok {
			return "", fmt.Errorf("letter %c of %q has no assigned digit", word[i], word)
		}
		buf[i] = '0' + byte(digit)
	}
	return string(buf), nil
}

// buildOutcome projects a fully assigned store back onto the puzzle's
// words. The store must hold singleton domains for every letter.
func buildOutcome(p *Puzzle, store *Store) Outcome {
	assignment := make(map[Letter]int, p.Alphabet().Len())
	for i, l := range p.Alphabet().Letters() {
		assignment[l] = store.Domain(i).SingletonValue()
	}
	return Outcome{
		Found:       true,
		Term1Value:  wordValue(p.Term1, assignment),
		Term2Value:  wordValue(p.Term2, assignment),
		ResultValue: wordValue(p.Result, assignment),
		Assignment:  assignment,
	}
}

// wordValue interprets a word as a base-10 number, most-significant
// digit first.
func wordValue(word string, assignment map[Letter]int) int {
	value := 0
	for i := 0; i < len(word); i++ {
		value = value*Base + assignment[word[i]]
	}
	return value
}
