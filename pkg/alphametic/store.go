package alphametic

import "strings"

// Store holds the current domain of every letter, indexed by the letter's
// position in the Alphabet. It is the only mutable state during a solve
// and is exclusively owned by the search engine for the duration of one
// call.
//
// Because domains are immutable, Snapshot and Restore are O(letters)
// slice copies that share the underlying bit sets.
type Store struct {
	domains  []Domain
	prunings int
}

// NewStore creates a store with every letter's domain initialized to 0..9.
func NewStore(letters int) *Store {
	s := &Store{domains: make([]Domain, letters)}
	for i := range s.domains {
		s.domains[i] = FullDomain()
	}
	return s
}

// Len returns the number of letters tracked by the store.
func (s *Store) Len() int { return len(s.domains) }

// Domain returns the current domain of the letter at position i.
func (s *Store) Domain(i int) Domain { return s.domains[i] }

// Prunings returns the number of domain changes applied so far.
func (s *Store) Prunings() int { return s.prunings }

// Narrow intersects the letter's domain with the allowed digits.
// It reports whether the domain changed, and returns ErrInconsistent
// if the domain became empty.
func (s *Store) Narrow(i int, allowed Domain) (bool, error) {
	next := s.domains[i].Intersect(allowed)
	if next.Equal(s.domains[i]) {
		return false, nil
	}
	s.domains[i] = next
	s.prunings++
	if next.Count() == 0 {
		return true, ErrInconsistent
	}
	return true, nil
}

// Remove deletes a single digit from the letter's domain.
// It reports whether the domain changed, and returns ErrInconsistent
// if the domain became empty.
func (s *Store) Remove(i, digit int) (bool, error) {
	if !s.domains[i].Has(digit) {
		return false, nil
	}
	s.domains[i] = s.domains[i].Remove(digit)
	s.prunings++
	if s.domains[i].Count() == 0 {
		return true, ErrInconsistent
	}
	return true, nil
}

// Assign fixes the letter to a single digit.
func (s *Store) Assign(i, digit int) (bool, error) {
	return s.Narrow(i, DomainOf(digit))
}

// AllSingleton returns true when every letter is down to one digit.
func (s *Store) AllSingleton() bool {
	for _, d := range s.domains {
		if !d.IsSingleton() {
			return false
		}
	}
	return true
}

// Snapshot captures the full domain state for backtracking.
func (s *Store) Snapshot() []Domain {
	snap := make([]Domain, len(s.domains))
	copy(snap, s.domains)
	return snap
}

// Restore reverts the store to a previously captured snapshot.
func (s *Store) Restore(snap []Domain) {
	copy(s.domains, snap)
}

func (s *Store) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, d := range s.domains {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(d.String())
	}
	b.WriteString("]")
	return b.String()
}
