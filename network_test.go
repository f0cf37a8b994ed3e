package planar

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestFromArrays(t *testing.T) {
	net, err := FromArrays([]float64{0, 1, 2}, []float64{0, 1, 0}, []int{0, 1}, []int{1, 2}, []int{7, 8})
	test.Error(t, err)
	test.T(t, net.Points, []Point{{0, 0}, {1, 1}, {2, 0}})
	test.T(t, net.Segments, []Segment{{0, 1, []int{7}}, {1, 2, []int{8}}})
	test.String(t, net.String(), "points=[[0; 0] [1; 1] [2; 0]] segments=[0-1[7] 1-2[8]]")

	net, err = FromArrays([]float64{0, 1}, []float64{0, 1}, []int{0}, []int{1})
	test.Error(t, err)
	test.T(t, net.Segments, []Segment{{0, 1, nil}})
}

func TestFromArraysErrors(t *testing.T) {
	var tts = []struct {
		x, y       []float64
		start, end []int
		tags       [][]int
		err        string
	}{
		{[]float64{0}, []float64{0, 1}, nil, nil, nil, "planar: point: 1 x coordinates but 2 y coordinates"},
		{[]float64{0, 1}, []float64{0, 1}, []int{0}, []int{}, nil, "planar: segment: 1 start indices but 0 end indices"},
		{[]float64{0, 1}, []float64{0, 1}, []int{0}, []int{1}, [][]int{{1, 2}}, "planar: segment: tag row 0 has 2 entries for 1 segments"},
		{[]float64{0, 1}, []float64{0, 1}, []int{0}, []int{5}, nil, "planar: segment 0: references point outside [0,2)"},
	}
	for _, tt := range tts {
		t.Run(tt.err, func(t *testing.T) {
			_, err := FromArrays(tt.x, tt.y, tt.start, tt.end, tt.tags...)
			test.That(t, errors.Is(err, ErrMalformed))
			test.T(t, err.Error(), tt.err)
		})
	}
}

func TestNetwork(t *testing.T) {
	net := &Network{
		Points:   []Point{{0, 0}, {3, 4}, {3, 0}},
		Segments: []Segment{{0, 1, []int{1}}, {1, 2, nil}},
	}
	test.Float(t, net.Length(), 9.0)
	b := net.Bounds()
	test.T(t, b.Min[0], 0.0)
	test.T(t, b.Max[1], 4.0)

	clone := net.Clone()
	clone.Points[0].X = 1
	clone.Segments[0].Tags[0] = 2
	test.T(t, net.Points[0].X, 0.0)
	test.T(t, net.Segments[0].Tags[0], 1)
	test.That(t, !net.Segments[1].IsDegenerate())
	test.That(t, Segment{A: 2, B: 2}.IsDegenerate())
}

func TestToleranceScale(t *testing.T) {
	test.T(t, toleranceScale(nil), 1.0)
	test.T(t, toleranceScale([]Point{{0, 0}}), 1.0)
	test.T(t, toleranceScale([]Point{{-3, 0}, {1, 0.5}}), 4.0)
	test.T(t, toleranceScale([]Point{{100, 100}, {101, 100}}), 100.0+1.0)
}

func TestDistance(t *testing.T) {
	test.Float(t, distance(Point{1, 1}, Point{4, 5}), 5.0)
	test.Float(t, distance(Point{4, 5}, Point{1, 1}), 5.0)
	test.Float(t, Point{3, -4}.Length(), 5.0)
	test.T(t, distance(Point{2, 2}, Point{2, 2}), 0.0)
}
