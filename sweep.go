package planar

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// sweepEvent is the start or end of an interval on the sweep axis.
type sweepEvent struct {
	pos   float64
	index int
	start bool
}

func (e sweepEvent) String() string {
	kind := "end"
	if e.start {
		kind = "start"
	}
	return fmt.Sprintf("%s(%d@%v)", kind, e.index, numEps(e.pos))
}

// sweepEvents is a list of events sorted by position. At equal positions start events go before end events so that intervals touching at a single point are reported as overlapping.
type sweepEvents []sweepEvent

func compareEvents(a, b sweepEvent) int {
	if c := cmp.Compare(a.pos, b.pos); c != 0 {
		return c
	} else if a.start != b.start {
		if a.start {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.index, b.index)
}

func (q sweepEvents) String() string {
	sb := strings.Builder{}
	for i, e := range q {
		if i != 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}

// sweepStatus is the set of intervals that are open at the current sweep position. Removal is O(1) by swapping with the last element.
type sweepStatus struct {
	items []int
	pos   []int // position of interval in items, -1 if not active
}

func newSweepStatus(n int) *sweepStatus {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	return &sweepStatus{pos: pos}
}

func (s *sweepStatus) insert(i int) {
	s.pos[i] = len(s.items)
	s.items = append(s.items, i)
}

func (s *sweepStatus) remove(i int) {
	k := s.pos[i]
	if k < 0 {
		return
	}
	last := s.items[len(s.items)-1]
	s.items[k] = last
	s.pos[last] = k
	s.items = s.items[:len(s.items)-1]
	s.pos[i] = -1
}

func checkIntervals(lower, upper []float64) error {
	if len(lower) != len(upper) {
		return inputErrorf("interval", -1, "%d lower bounds but %d upper bounds", len(lower), len(upper))
	}
	for i := range lower {
		if math.IsNaN(lower[i]) || math.IsNaN(upper[i]) {
			return inputErrorf("interval", i, "bound is NaN")
		} else if upper[i] < lower[i] {
			return inputErrorf("interval", i, "lower bound %v exceeds upper bound %v", lower[i], upper[i])
		}
	}
	return nil
}

// OverlappingIntervals returns all pairs of closed intervals [lower[i],upper[i]] that overlap, including intervals that only touch at one end. Pairs are ordered by (A,B) with A < B. It sweeps over the sorted interval bounds and pairs every starting interval with all intervals that are open, which runs in O(n log n + k) for k overlapping pairs.
func OverlappingIntervals(lower, upper []float64) ([]Pair, error) {
	if err := checkIntervals(lower, upper); err != nil {
		return nil, err
	}
	return overlappingIntervals(lower, upper), nil
}

func overlappingIntervals(lower, upper []float64) []Pair {
	n := len(lower)
	if n < 2 {
		return []Pair{}
	}

	events := make(sweepEvents, 0, 2*n)
	for i := 0; i < n; i++ {
		events = append(events, sweepEvent{lower[i], i, true}, sweepEvent{upper[i], i, false})
	}
	slices.SortFunc(events, compareEvents)

	pairs := []Pair{}
	status := newSweepStatus(n)
	for _, e := range events {
		if e.start {
			for _, j := range status.items {
				pairs = append(pairs, NewPair(e.index, j))
			}
			status.insert(e.index)
		} else {
			status.remove(e.index)
		}
	}
	slices.SortFunc(pairs, comparePairs)
	return pairs
}
