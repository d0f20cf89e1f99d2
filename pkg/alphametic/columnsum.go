package alphametic

import (
	"fmt"
	"strings"
)

// fixedZero marks a column operand that is not a letter: a digit position
// beyond the end of its word, which contributes 0 to the column sum.
const fixedZero = -1

// column is one digit position of the sum, units first. Each operand is
// an alphabet position or fixedZero.
type column struct {
	a, b, r int
}

// ColumnSum is the linear equation term1 + term2 = result, decomposed
// into per-column digit sums with 0/1 carries:
//
//	a[k] + b[k] + carry[k] = r[k] + 10*carry[k+1]
//
// for every column k (units first), with carry[0] = 0 and the carry out
// of the last column forced to 0. Words shorter than the widest word are
// padded with fixed 0 digits, so the decomposition is exactly equivalent
// to the equation over the words' numeric values, including the case of
// a result word with an (allowed) leading zero.
//
// Propagate performs exact support filtering per column: walking columns
// from the units up, it keeps a digit only if some (a, b, carry-in)
// combination over the current domains produces it, threading the set of
// feasible carries into the next column. Letters repeated within a
// column are held to the same digit and distinct letters to different
// digits, both of which hold in any full solution, so filtering stays
// sound. Cross-column interactions are left to AllDifferent and search.
type ColumnSum struct {
	cols    []column
	letters []int
	task    string
}

// NewColumnSum builds the column decomposition of term1 + term2 = result.
// All three words must already be uppercased and covered by the alphabet.
func NewColumnSum(term1, term2, result string, alpha *Alphabet) *ColumnSum {
	ncols := len(result)
	if len(term1) > ncols {
		ncols = len(term1)
	}
	if len(term2) > ncols {
		ncols = len(term2)
	}

	operand := func(word string, col int) int {
		if col >= len(word) {
			return fixedZero
		}
		// col counts from the units digit, i.e. the end of the word.
		return alpha.Index(word[len(word)-1-col])
	}

	c := &ColumnSum{
		cols: make([]column, ncols),
		task: fmt.Sprintf("%s+%s=%s", term1, term2, result),
	}
	seen := make(map[int]bool)
	for k := 0; k < ncols; k++ {
		col := column{
			a: operand(term1, k),
			b: operand(term2, k),
			r: operand(result, k),
		}
		c.cols[k] = col
		for _, l := range []int{col.a, col.b, col.r} {
			if l != fixedZero && !seen[l] {
				seen[l] = true
				c.letters = append(c.letters, l)
			}
		}
	}
	return c
}

func (c *ColumnSum) Letters() []int { return c.letters }
func (c *ColumnSum) Kind() string   { return "ColumnSum" }

func (c *ColumnSum) String() string {
	return fmt.Sprintf("ColumnSum(%s, %d columns)", c.task, len(c.cols))
}

// carrySet tracks which carry values (0 or 1) remain feasible flowing
// into a column.
type carrySet struct {
	zero, one bool
}

func (s carrySet) empty() bool { return !s.zero && !s.one }

func (s carrySet) String() string {
	var vals []string
	if s.zero {
		vals = append(vals, "0")
	}
	if s.one {
		vals = append(vals, "1")
	}
	return "{" + strings.Join(vals, ",") + "}"
}

// Propagate sweeps the columns from the units up, pruning every operand
// domain to its supported digits.
func (c *ColumnSum) Propagate(store *Store) (bool, error) {
	changed := false
	carryIn := carrySet{zero: true} // no carry into the units column

	for k, col := range c.cols {
		last := k == len(c.cols)-1

		domA := c.operandDomain(store, col.a)
		domB := c.operandDomain(store, col.b)
		domR := c.operandDomain(store, col.r)

		var supA, supB, supR [Base]bool
		var carryOut carrySet
		supported := false

		for _, cin := range carryIn.values() {
			domA.IterateDigits(func(a int) {
				domB.IterateDigits(func(b int) {
					if !operandsCompatible(col.a, col.b, a, b) {
						return
					}
					sum := a + b + cin
					r := sum % Base
					cout := sum / Base
					if last && cout != 0 {
						return
					}
					if !domR.Has(r) {
						return
					}
					if !operandsCompatible(col.a, col.r, a, r) ||
						!operandsCompatible(col.b, col.r, b, r) {
						return
					}
					supported = true
					supA[a] = true
					supB[b] = true
					supR[r] = true
					if cout == 0 {
						carryOut.zero = true
					} else {
						carryOut.one = true
					}
				})
			})
		}

		if !supported || carryOut.empty() {
			return changed, fmt.Errorf("%w: column %d of %s has no feasible digit sum",
				ErrInconsistent, k, c.task)
		}

		for _, op := range []struct {
			letter int
			sup    [Base]bool
		}{{col.a, supA}, {col.b, supB}, {col.r, supR}} {
			if op.letter == fixedZero {
				continue
			}
			ch, err := store.Narrow(op.letter, domainFromSupport(op.sup))
			changed = changed || ch
			if err != nil {
				return changed, err
			}
		}

		carryIn = carryOut
	}
	return changed, nil
}

// operandDomain returns the domain of a column operand; fixed zero
// positions act as the singleton {0}.
func (c *ColumnSum) operandDomain(store *Store, letter int) Domain {
	if letter == fixedZero {
		return DomainOf(0)
	}
	return store.Domain(letter)
}

// operandsCompatible checks digit consistency between two operands of
// the same column: the same letter must take the same digit, and two
// distinct letters must take different ones.
func operandsCompatible(l1, l2, d1, d2 int) bool {
	if l1 == fixedZero || l2 == fixedZero {
		return true
	}
	if l1 == l2 {
		return d1 == d2
	}
	return d1 != d2
}

func (s carrySet) values() []int {
	vals := make([]int, 0, 2)
	if s.zero {
		vals = append(vals, 0)
	}
	if s.one {
		vals = append(vals, 1)
	}
	return vals
}

func domainFromSupport(sup [Base]bool) Domain {
	digits := make([]int, 0, Base)
	for d, ok := range sup {
		if ok {
			digits = append(digits, d)
		}
	}
	return DomainOf(digits...)
}
