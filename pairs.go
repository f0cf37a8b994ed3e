package planar

import (
	"cmp"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Pair is an unordered pair of indices, stored with A < B.
type Pair struct {
	A, B int
}

// NewPair returns the pair of i and j in canonical order.
func NewPair(i, j int) Pair {
	if j < i {
		i, j = j, i
	}
	return Pair{i, j}
}

func (p Pair) key() uint64 {
	return uint64(p.A)<<32 | uint64(p.B)
}

func pairFromKey(k uint64) Pair {
	return Pair{int(k >> 32), int(k & math.MaxUint32)}
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.A, p.B)
}

func comparePairs(a, b Pair) int {
	if c := cmp.Compare(a.A, b.A); c != 0 {
		return c
	}
	return cmp.Compare(a.B, b.B)
}

// PairSet is a set of pairs. Indices must fit in 32 bits.
type PairSet struct {
	bm *roaring64.Bitmap
}

// NewPairSet returns a set holding pairs.
func NewPairSet(pairs ...Pair) *PairSet {
	s := &PairSet{roaring64.New()}
	for _, p := range pairs {
		s.Add(p)
	}
	return s
}

// Add adds the pair to the set, the order of A and B is ignored.
func (s *PairSet) Add(p Pair) {
	s.bm.Add(NewPair(p.A, p.B).key())
}

// Contains returns true if the pair is in the set, the order of A and B is ignored.
func (s *PairSet) Contains(p Pair) bool {
	return s.bm.Contains(NewPair(p.A, p.B).key())
}

// Len returns the number of pairs.
func (s *PairSet) Len() int {
	return int(s.bm.GetCardinality())
}

// And returns the pairs that are in both s and o.
func (s *PairSet) And(o *PairSet) *PairSet {
	return &PairSet{roaring64.And(s.bm, o.bm)}
}

// Pairs returns the pairs ordered by (A,B).
func (s *PairSet) Pairs() []Pair {
	keys := s.bm.ToArray()
	pairs := make([]Pair, len(keys))
	for i, k := range keys {
		pairs[i] = pairFromKey(k)
	}
	return pairs
}

func (s *PairSet) String() string {
	return fmt.Sprint(s.Pairs())
}

// IntersectPairs returns the pairs present in both a and b, where (i,j) equals (j,i). The result is ordered by (A,B).
func IntersectPairs(a, b []Pair) []Pair {
	return NewPairSet(a...).And(NewPairSet(b...)).Pairs()
}
