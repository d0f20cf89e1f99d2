// Domain representation for letter variables.
//
// A Domain is the finite set of decimal digits still considered possible
// for one letter. Domains are immutable: narrowing operations return new
// domains rather than modifying in place, so snapshots of the store can
// share them safely and backtracking is a plain slice copy.
package alphametic

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Base is the numeric base of the puzzle class. Every letter's domain is
// a subset of the digits 0..Base-1.
const Base = 10

// Domain is an immutable set of candidate digits for one letter.
// The zero value is the empty domain.
type Domain struct {
	bits *bitset.BitSet
}

// FullDomain returns the domain containing every digit 0..9.
func FullDomain() Domain {
	b := bitset.New(Base)
	for d := uint(0); d < Base; d++ {
		b.Set(d)
	}
	return Domain{bits: b}
}

// DomainOf returns the domain containing exactly the given digits.
// Digits outside 0..9 are ignored.
func DomainOf(digits ...int) Domain {
	b := bitset.New(Base)
	for _, d := range digits {
		if d >= 0 && d < Base {
			b.Set(uint(d))
		}
	}
	return Domain{bits: b}
}

// Has returns true if the domain contains the digit.
func (d Domain) Has(digit int) bool {
	if d.bits == nil || digit < 0 || digit >= Base {
		return false
	}
	return d.bits.Test(uint(digit))
}

// Count returns the number of digits in the domain. A count of zero
// marks an inconsistent state.
func (d Domain) Count() int {
	if d.bits == nil {
		return 0
	}
	return int(d.bits.Count())
}

// IsSingleton returns true if exactly one digit remains.
func (d Domain) IsSingleton() bool {
	return d.Count() == 1
}

// SingletonValue returns the remaining digit of a singleton domain.
// Behaviour is undefined for non-singleton domains; it returns the
// smallest digit present, or -1 when empty.
func (d Domain) SingletonValue() int {
	return d.Min()
}

// Min returns the smallest digit in the domain, or -1 when empty.
func (d Domain) Min() int {
	if d.bits == nil {
		return -1
	}
	if i, ok := d.bits.NextSet(0); ok {
		return int(i)
	}
	return -1
}

// Max returns the largest digit in the domain, or -1 when empty.
func (d Domain) Max() int {
	for digit := Base - 1; digit >= 0; digit-- {
		if d.Has(digit) {
			return digit
		}
	}
	return -1
}

// Remove returns a new domain without the digit. If the digit is not
// present, the receiver is returned unchanged.
func (d Domain) Remove(digit int) Domain {
	if !d.Has(digit) {
		return d
	}
	b := d.bits.Clone()
	b.Clear(uint(digit))
	return Domain{bits: b}
}

// Intersect returns a new domain containing only digits present in both.
// This is the primary narrowing operation used by propagation.
func (d Domain) Intersect(other Domain) Domain {
	if d.bits == nil || other.bits == nil {
		return Domain{bits: bitset.New(Base)}
	}
	return Domain{bits: d.bits.Intersection(other.bits)}
}

// Union returns a new domain containing digits present in either domain.
func (d Domain) Union(other Domain) Domain {
	if d.bits == nil {
		if other.bits == nil {
			return Domain{bits: bitset.New(Base)}
		}
		return Domain{bits: other.bits.Clone()}
	}
	if other.bits == nil {
		return Domain{bits: d.bits.Clone()}
	}
	return Domain{bits: d.bits.Union(other.bits)}
}

// Equal returns true if both domains contain exactly the same digits.
func (d Domain) Equal(other Domain) bool {
	if d.bits == nil || other.bits == nil {
		return d.Count() == 0 && other.Count() == 0
	}
	return d.bits.Equal(other.bits)
}

// IterateDigits calls f for each digit in the domain in ascending order.
func (d Domain) IterateDigits(f func(digit int)) {
	if d.bits == nil {
		return
	}
	for i, ok := d.bits.NextSet(0); ok; i, ok = d.bits.NextSet(i + 1) {
		f(int(i))
	}
}

// Digits returns the domain's digits as a sorted slice.
func (d Domain) Digits() []int {
	out := make([]int, 0, d.Count())
	d.IterateDigits(func(digit int) { out = append(out, digit) })
	return out
}

// String renders the domain as e.g. "{0..9}", "{5}" or "{1,3,7}".
func (d Domain) String() string {
	digits := d.Digits()
	switch {
	case len(digits) == 0:
		return "{}"
	case len(digits) == 1:
		return fmt.Sprintf("{%d}", digits[0])
	}
	consecutive := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[i-1]+1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return fmt.Sprintf("{%d..%d}", digits[0], digits[len(digits)-1])
	}
	parts := make([]string, len(digits))
	for i, v := range digits {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
