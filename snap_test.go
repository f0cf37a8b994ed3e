package planar

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestSnapToGrid(t *testing.T) {
	var tts = []struct {
		p, box Point
		tol    float64
		snap   Point
	}{
		{Point{0.0012, 0.9996}, Point{1, 1}, 1e-3, Point{0.001, 1.0}},
		{Point{-1.0004, 0.5}, Point{2, 2}, 1e-3, Point{-1.0, 0.5}},
		{Point{0.25, 0.75}, Point{1, 1}, 0.5, Point{0.0, 1.0}}, // ties to even
		{Point{0.3, 0.3}, Point{0, 1}, 0.5, Point{0.3, 0.5}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.p, tt.box, tt.tol), func(t *testing.T) {
			snap := SnapToGrid([]Point{tt.p}, tt.box, tt.tol)
			testPoints(t, snap, []Point{tt.snap})
		})
	}
}

func TestSnapToGridCopy(t *testing.T) {
	points := []Point{{0.0012, 0}}
	SnapToGrid(points, Point{1, 1}, 1e-3)
	test.T(t, points[0], Point{0.0012, 0})
}
