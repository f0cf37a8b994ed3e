package planar

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestPointIndex(t *testing.T) {
	idx := newPointIndex(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, 1e-3)
	test.T(t, idx.Find(Point{0.5, 0.5}), -1)

	idx.Add(Point{0.5, 0.5}, 3)
	idx.Add(Point{0.5, 0.5005}, 1)
	idx.Add(Point{0.5, 0.4995}, 2)
	idx.Add(Point{2, 2}, 4) // outside bound
	test.T(t, idx.Find(Point{0.5, 0.5}), 3)
	test.T(t, idx.Find(Point{0.5, 0.5002}), 3)
	test.T(t, idx.Find(Point{0.5, 0.5004}), 1)
	test.T(t, idx.Find(Point{0.5, 0.502}), -1)
	test.T(t, idx.Find(Point{2.0005, 2}), 4)
	test.T(t, idx.Find(Point{1, 1}), -1)
}
