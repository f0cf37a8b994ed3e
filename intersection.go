package planar

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// see https://www.geometrictools.com/GTE/Mathematics/IntrSegment2Segment2.h

// IntersectionKind is the relation between two segments.
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	Cross                           // interiors cross at a single point
	Touch                           // meet at a single point that is an endpoint of at least one segment
	Overlap                         // collinear and share a sub-segment
)

func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "None"
	case Cross:
		return "Cross"
	case Touch:
		return "Touch"
	case Overlap:
		return "Overlap"
	}
	return fmt.Sprintf("IntersectionKind(%d)", int(k))
}

// Node is a point shared by two segments.
type Node struct {
	Point            // coordinate of intersection
	T     [2]float64 // position along segment A and B in [0,1], exactly 0 or 1 at an endpoint
}

// OnEnd returns true if the node is an endpoint of segment i (0 for A, 1 for B).
func (z Node) OnEnd(i int) bool {
	return z.T[i] == 0.0 || z.T[i] == 1.0
}

func (z Node) Equals(o Node) bool {
	return z.Point.Equals(o.Point) && Equal(z.T[0], o.T[0]) && Equal(z.T[1], o.T[1])
}

func (z Node) String() string {
	return fmt.Sprintf("(%v t={%v,%v})", z.Point, numEps(z.T[0]), numEps(z.T[1]))
}

// Intersection is the result of intersecting two segments. Cross and Touch have one node, Overlap has two nodes bounding the shared sub-segment, ordered along A.
type Intersection struct {
	Kind  IntersectionKind
	Nodes []Node
}

// Has returns true if the segments meet.
func (z Intersection) Has() bool {
	return z.Kind != NoIntersection
}

func (z Intersection) String() string {
	if len(z.Nodes) == 0 {
		return z.Kind.String()
	}
	sb := strings.Builder{}
	sb.WriteString(z.Kind.String())
	for _, node := range z.Nodes {
		sb.WriteString(" ")
		sb.WriteString(node.String())
	}
	return sb.String()
}

// segmentParam returns the position of p projected on segment s0-s1, clamped to [0,1], and whether p lies within tol of the segment. Positions within tol of an endpoint are snapped to exactly 0 or 1.
func segmentParam(p, s0, s1 Point, tol float64) (float64, bool) {
	if distance(p, s0) <= tol {
		return 0.0, true
	} else if distance(p, s1) <= tol {
		return 1.0, true
	}
	d := s1.Sub(s0)
	l2 := d.Dot(d)
	if l2 == 0.0 {
		return 0.0, false
	}
	t := math.Max(0.0, math.Min(1.0, p.Sub(s0).Dot(d)/l2))
	if tol < distance(p, s0.Interpolate(s1, t)) {
		return t, false
	}
	return t, true
}

// newNode returns the node at p, which must lie on both segments. Coordinates are taken from an endpoint when p coincides with one, so that nodes at endpoints are exact.
func newNode(p, a0, a1, b0, b1 Point, tol float64) Node {
	ta, _ := segmentParam(p, a0, a1, tol)
	tb, _ := segmentParam(p, b0, b1, tol)
	if ta == 0.0 {
		p = a0
	} else if ta == 1.0 {
		p = a1
	} else if tb == 0.0 {
		p = b0
	} else if tb == 1.0 {
		p = b1
	}
	return Node{p, [2]float64{ta, tb}}
}

func nodeKind(node Node) IntersectionKind {
	if node.OnEnd(0) || node.OnEnd(1) {
		return Touch
	}
	return Cross
}

// IntersectSegments returns how segment a0-a1 and segment b0-b1 intersect. All comparisons use the absolute tolerance tol: points closer than tol are coincident and segments whose endpoints lie within tol of each other's line are collinear. Classification is deterministic: endpoint coincidence is tested before collinearity, collinearity before endpoint-on-segment, and that before the parametric crossing.
//
// A zero-length segment acts as a point and only touches the other segment when it lies on it.
func IntersectSegments(a0, a1, b0, b1 Point, tol float64) Intersection {
	la, lb := distance(a0, a1), distance(b0, b1)
	if la <= tol && lb <= tol {
		if distance(a0, b0) <= tol {
			return Intersection{Touch, []Node{{a0, [2]float64{0.0, 0.0}}}}
		}
		return Intersection{}
	} else if la <= tol {
		if tb, ok := segmentParam(a0, b0, b1, tol); ok {
			node := newNode(a0, a0, a0, b0, b1, tol)
			node.T = [2]float64{0.0, tb}
			return Intersection{Touch, []Node{node}}
		}
		return Intersection{}
	} else if lb <= tol {
		if ta, ok := segmentParam(b0, a0, a1, tol); ok {
			node := newNode(b0, a0, a1, b0, b0, tol)
			node.T = [2]float64{ta, 0.0}
			return Intersection{Touch, []Node{node}}
		}
		return Intersection{}
	}

	da := a1.Sub(a0)
	db := b1.Sub(b0)

	// collinear, measured against the longer segment for stability
	r0, r1, lr, o0, o1 := a0, a1, la, b0, b1
	if la < lb {
		r0, r1, lr, o0, o1 = b0, b1, lb, a0, a1
	}
	dr := r1.Sub(r0)
	if math.Abs(dr.PerpDot(o0.Sub(r0)))/lr <= tol && math.Abs(dr.PerpDot(o1.Sub(r0)))/lr <= tol {
		return intersectionCollinear(a0, a1, b0, b1, tol)
	}

	// endpoint of one segment on the other
	for _, p := range []Point{a0, a1} {
		if _, ok := segmentParam(p, b0, b1, tol); ok {
			node := newNode(p, a0, a1, b0, b1, tol)
			return Intersection{Touch, []Node{node}}
		}
	}
	for _, p := range []Point{b0, b1} {
		if _, ok := segmentParam(p, a0, a1, tol); ok {
			node := newNode(p, a0, a1, b0, b1, tol)
			return Intersection{Touch, []Node{node}}
		}
	}

	div := da.PerpDot(db)
	if div == 0.0 {
		return Intersection{} // parallel
	}
	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if ta < 0.0 || 1.0 < ta || tb < 0.0 || 1.0 < tb {
		return Intersection{}
	}
	node := Node{a0.Interpolate(a1, ta), [2]float64{ta, tb}}
	if ta == 0.0 || ta == 1.0 || tb == 0.0 || tb == 1.0 {
		// only reachable with zero tolerance
		node = newNode(node.Point, a0, a1, b0, b1, tol)
	}
	return Intersection{nodeKind(node), []Node{node}}
}

// intersectionCollinear intersects two collinear segments. The shared range is bounded by endpoints of the segments, so we find the endpoints that lie on both segments and merge those that coincide.
func intersectionCollinear(a0, a1, b0, b1 Point, tol float64) Intersection {
	nodes := []Node{}
	for _, p := range []Point{a0, a1, b0, b1} {
		_, onA := segmentParam(p, a0, a1, tol)
		_, onB := segmentParam(p, b0, b1, tol)
		if !onA || !onB {
			continue
		}
		node := newNode(p, a0, a1, b0, b1, tol)
		if !slices.ContainsFunc(nodes, func(o Node) bool { return distance(o.Point, node.Point) <= tol }) {
			nodes = append(nodes, node)
		}
	}
	slices.SortFunc(nodes, func(a, b Node) int {
		if a.T[0] < b.T[0] {
			return -1
		} else if b.T[0] < a.T[0] {
			return 1
		}
		return 0
	})

	switch len(nodes) {
	case 0:
		return Intersection{}
	case 1:
		return Intersection{Touch, nodes}
	}
	// more than two nodes can only appear when tolerance exceeds the overlap length
	return Intersection{Overlap, []Node{nodes[0], nodes[len(nodes)-1]}}
}
