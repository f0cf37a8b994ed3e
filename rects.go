package planar

import (
	"github.com/paulmach/orb"
)

// OverlappingRects returns the pairs of axis-aligned rectangles that overlap on both axes, touching included. It runs the interval sweep on the x and the y extents and intersects both pair sets. Overlapping rectangles are necessary but not sufficient for two segments to intersect.
func OverlappingRects(xmin, xmax, ymin, ymax []float64) ([]Pair, error) {
	if len(xmin) != len(ymin) {
		return nil, inputErrorf("interval", -1, "%d x extents but %d y extents", len(xmin), len(ymin))
	} else if err := checkIntervals(xmin, xmax); err != nil {
		return nil, err
	} else if err := checkIntervals(ymin, ymax); err != nil {
		return nil, err
	}
	return overlappingRects(xmin, xmax, ymin, ymax), nil
}

func overlappingRects(xmin, xmax, ymin, ymax []float64) []Pair {
	xpairs := overlappingIntervals(xmin, xmax)
	if len(xpairs) == 0 {
		return xpairs
	}
	ypairs := overlappingIntervals(ymin, ymax)
	return IntersectPairs(xpairs, ypairs)
}

// SegmentBounds returns the extents of the bounding boxes of the segments, padded by pad on every side.
func SegmentBounds(points []Point, segments []Segment, pad float64) (xmin, xmax, ymin, ymax []float64) {
	xmin = make([]float64, len(segments))
	xmax = make([]float64, len(segments))
	ymin = make([]float64, len(segments))
	ymax = make([]float64, len(segments))
	for i, s := range segments {
		b := segmentBound(points, s).Pad(pad)
		xmin[i], xmax[i] = b.Min[0], b.Max[0]
		ymin[i], ymax[i] = b.Min[1], b.Max[1]
	}
	return
}

func segmentBound(points []Point, s Segment) orb.Bound {
	return bound(points[s.A], points[s.B])
}

// candidatePairs returns the segment pairs whose bounding boxes, padded by half the tolerance, overlap.
func candidatePairs(points []Point, segments []Segment, tol float64) []Pair {
	xmin, xmax, ymin, ymax := SegmentBounds(points, segments, tol/2.0)
	return overlappingRects(xmin, xmax, ymin, ymax)
}
