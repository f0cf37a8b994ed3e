package planar

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
)

type indexedPoint struct {
	p Point
	i int
}

func (ip indexedPoint) Point() orb.Point {
	return ip.p.Point()
}

// pointIndex finds points within tolerance of a query point. Points are kept in a quadtree over a fixed bound, the few that fall outside are scanned linearly.
type pointIndex struct {
	tol      float64
	qt       *quadtree.Quadtree
	outside  []indexedPoint
	buf      []orb.Pointer
	nearest  int
	distance float64
}

func newPointIndex(b orb.Bound, tol float64) *pointIndex {
	return &pointIndex{
		tol: tol,
		qt:  quadtree.New(b.Pad(tol)),
	}
}

// Find returns the index of the point closest to p within tolerance, or -1. Ties go to the lowest index.
func (idx *pointIndex) Find(p Point) int {
	idx.nearest, idx.distance = -1, 0.0
	query := orb.Bound{
		Min: orb.Point{p.X - idx.tol, p.Y - idx.tol},
		Max: orb.Point{p.X + idx.tol, p.Y + idx.tol},
	}
	idx.buf = idx.qt.InBound(idx.buf[:0], query)
	for _, q := range idx.buf {
		idx.consider(p, q.(indexedPoint))
	}
	for _, q := range idx.outside {
		idx.consider(p, q)
	}
	return idx.nearest
}

func (idx *pointIndex) consider(p Point, q indexedPoint) {
	d := distance(p, q.p)
	if idx.tol < d {
		return
	} else if idx.nearest == -1 || d < idx.distance || d == idx.distance && q.i < idx.nearest {
		idx.nearest, idx.distance = q.i, d
	}
}

// Add adds point p with index i.
func (idx *pointIndex) Add(p Point, i int) {
	ip := indexedPoint{p, i}
	if err := idx.qt.Add(ip); err != nil {
		// outside the bound of the quadtree
		idx.outside = append(idx.outside, ip)
	}
}
