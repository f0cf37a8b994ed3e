package planar

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"
)

// Segment is a straight line between two points of a network, referenced by index. Tags are copied to every piece the segment is split into, and can hold for example the fracture number.
type Segment struct {
	A, B int
	Tags []int
}

func (s Segment) String() string {
	if len(s.Tags) == 0 {
		return fmt.Sprintf("%d-%d", s.A, s.B)
	}
	return fmt.Sprintf("%d-%d%v", s.A, s.B, s.Tags)
}

// IsDegenerate returns true if the segment starts and ends at the same point index.
func (s Segment) IsDegenerate() bool {
	return s.A == s.B
}

// Network is a set of points and the segments between them. A point's identity is its index.
type Network struct {
	Points   []Point
	Segments []Segment
}

// FromArrays builds a network from coordinate and index arrays. Each tag array holds one tag per segment.
func FromArrays(x, y []float64, start, end []int, tags ...[]int) (*Network, error) {
	if len(x) != len(y) {
		return nil, inputErrorf("point", -1, "%d x coordinates but %d y coordinates", len(x), len(y))
	} else if len(start) != len(end) {
		return nil, inputErrorf("segment", -1, "%d start indices but %d end indices", len(start), len(end))
	}
	for k, tag := range tags {
		if len(tag) != len(start) {
			return nil, inputErrorf("segment", -1, "tag row %d has %d entries for %d segments", k, len(tag), len(start))
		}
	}

	net := &Network{
		Points:   make([]Point, len(x)),
		Segments: make([]Segment, len(start)),
	}
	for i := range x {
		net.Points[i] = Point{x[i], y[i]}
	}
	for i := range start {
		s := Segment{A: start[i], B: end[i]}
		if 0 < len(tags) {
			s.Tags = make([]int, len(tags))
			for k, tag := range tags {
				s.Tags[k] = tag[i]
			}
		}
		net.Segments[i] = s
	}
	if err := net.Validate(); err != nil {
		return nil, err
	}
	return net, nil
}

// Validate checks that all coordinates are finite and that all segments reference existing points.
func (net *Network) Validate() error {
	for i, p := range net.Points {
		if !p.IsFinite() {
			return inputErrorf("point", i, "non-finite coordinate %v", p)
		}
	}
	for i, s := range net.Segments {
		if s.A < 0 || len(net.Points) <= s.A || s.B < 0 || len(net.Points) <= s.B {
			return inputErrorf("segment", i, "references point outside [0,%d)", len(net.Points))
		}
	}
	return nil
}

// Clone returns a deep copy of the network.
func (net *Network) Clone() *Network {
	segments := make([]Segment, len(net.Segments))
	for i, s := range net.Segments {
		segments[i] = Segment{s.A, s.B, slices.Clone(s.Tags)}
	}
	return &Network{
		Points:   slices.Clone(net.Points),
		Segments: segments,
	}
}

// Bounds returns the bounding box of all points.
func (net *Network) Bounds() orb.Bound {
	return bound(net.Points...)
}

// Ends returns the coordinates of the endpoints of segment i.
func (net *Network) Ends(i int) (Point, Point) {
	s := net.Segments[i]
	return net.Points[s.A], net.Points[s.B]
}

// Length returns the total length of all segments.
func (net *Network) Length() float64 {
	length := 0.0
	for i := range net.Segments {
		a, b := net.Ends(i)
		length += distance(a, b)
	}
	return length
}

func (net *Network) String() string {
	return fmt.Sprintf("points=%v segments=%v", net.Points, net.Segments)
}
