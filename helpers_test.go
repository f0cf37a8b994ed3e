package planar

import (
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

// RandomNetwork returns n segments with endpoints uniformly distributed in the unit square.
func RandomNetwork(rng *rand.Rand, n int) *Network {
	net := &Network{}
	for i := 0; i < n; i++ {
		net.Points = append(net.Points, Point{rng.Float64(), rng.Float64()}, Point{rng.Float64(), rng.Float64()})
		net.Segments = append(net.Segments, Segment{A: 2 * i, B: 2*i + 1, Tags: []int{i}})
	}
	return net
}

// RandomIntervals returns n intervals with integer bounds in [0,m], which makes touching intervals likely.
func RandomIntervals(rng *rand.Rand, n, m int) ([]float64, []float64) {
	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := range lower {
		a, b := float64(rng.IntN(m+1)), float64(rng.IntN(m+1))
		lower[i], upper[i] = min(a, b), max(a, b)
	}
	return lower, upper
}

func overlappingIntervalsBruteForce(lower, upper []float64) []Pair {
	pairs := []Pair{}
	for i := 0; i < len(lower); i++ {
		for j := i + 1; j < len(lower); j++ {
			if lower[i] <= upper[j] && lower[j] <= upper[i] {
				pairs = append(pairs, Pair{i, j})
			}
		}
	}
	return pairs
}

func segs(pairs ...[2]int) []Segment {
	segments := make([]Segment, len(pairs))
	for i, p := range pairs {
		segments[i] = Segment{A: p[0], B: p[1]}
	}
	return segments
}

func testPoints(t *testing.T, points, expected []Point) {
	t.Helper()
	test.T(t, len(points), len(expected), "number of points")
	for i := range min(len(points), len(expected)) {
		test.Float(t, points[i].X, expected[i].X, "x of point", i)
		test.Float(t, points[i].Y, expected[i].Y, "y of point", i)
	}
}

func testIntersection(t *testing.T, z, expected Intersection) {
	t.Helper()
	test.T(t, z.Kind, expected.Kind, z.String())
	test.T(t, len(z.Nodes), len(expected.Nodes), z.String())
	for i := range min(len(z.Nodes), len(expected.Nodes)) {
		node, exp := z.Nodes[i], expected.Nodes[i]
		test.That(t, node.Equals(exp), node, "!=", exp)
	}
}

// testPlanar checks that all segments only meet at shared endpoints.
func testPlanar(t *testing.T, net *Network, tol float64) {
	t.Helper()
	for i := range net.Segments {
		for j := i + 1; j < len(net.Segments); j++ {
			a0, a1 := net.Ends(i)
			b0, b1 := net.Ends(j)
			z := IntersectSegments(a0, a1, b0, b1, tol)
			switch z.Kind {
			case NoIntersection:
			case Touch:
				test.That(t, z.Nodes[0].OnEnd(0) && z.Nodes[0].OnEnd(1), "segments", net.Segments[i], net.Segments[j], "touch at", z)
			default:
				test.Fail(t, "segments", net.Segments[i], net.Segments[j], "intersect:", z)
			}
		}
	}
}
