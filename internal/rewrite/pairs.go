package rewrite

import "github.com/crossbind/crossbind/internal/ir"

// Pair is one type-equivalence obligation: the local form appears in the
// generated output, the origin form is the crate-qualified type the source
// implementation sees. Each pair becomes a static size and alignment
// assertion, except bare function pairs which cannot be size-compared.
type Pair struct {
	Local  string
	Origin string
	BareFn bool
	Loc    ir.Location
}

type pairKey struct {
	local  string
	origin string
}

// PairSet deduplicates equivalence pairs. The first writer of a pair wins
// for location tracking; later duplicates are merged silently.
type PairSet struct {
	seen  map[pairKey]int
	pairs []Pair
}

// NewPairSet returns an empty set.
func NewPairSet() *PairSet {
	return &PairSet{seen: make(map[pairKey]int)}
}

// Add inserts a pair unless an identical one is already present.
func (s *PairSet) Add(p Pair) {
	k := pairKey{local: p.Local, origin: p.Origin}
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = len(s.pairs)
	s.pairs = append(s.pairs, p)
}

// Len returns the number of distinct pairs collected.
func (s *PairSet) Len() int { return len(s.pairs) }

// Pairs returns the collected pairs in insertion order without clearing.
func (s *PairSet) Pairs() []Pair { return s.pairs }

// Drain returns the collected pairs in insertion order and empties the set.
func (s *PairSet) Drain() []Pair {
	out := s.pairs
	s.pairs = nil
	s.seen = make(map[pairKey]int)
	return out
}
