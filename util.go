package planar

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Epsilon is the absolute tolerance used by Equal.
const Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// equalTol returns true if a and b are equal with tolerance tol.
func equalTol(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// numEps formats f while hiding values within Epsilon of zero.
func numEps(f float64) string {
	if math.Abs(f) < Epsilon {
		return "0"
	}
	return fmt.Sprintf("%g", f)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// IsFinite returns true if neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// Point returns P as an orb point, which makes Point an orb.Pointer.
func (p Point) Point() orb.Point {
	return orb.Point{p.X, p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%v; %v]", numEps(p.X), numEps(p.Y))
}

// distance returns the Euclidean distance between P and Q.
func distance(p, q Point) float64 {
	return q.Sub(p).Length()
}

// bound returns the axis-aligned bounding box of points.
func bound(points ...Point) orb.Bound {
	if len(points) == 0 {
		return orb.Bound{}
	}
	b := orb.Bound{Min: points[0].Point(), Max: points[0].Point()}
	for _, p := range points[1:] {
		b = b.Extend(p.Point())
	}
	return b
}

// toleranceScale returns the length scale used to turn a relative tolerance into an absolute one: the largest absolute coordinate or the extent of the points, whichever is larger.
func toleranceScale(points []Point) float64 {
	scale := 0.0
	for _, p := range points {
		scale = math.Max(scale, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	if 0 < len(points) {
		b := bound(points...)
		scale = math.Max(scale, math.Max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]))
	}
	if scale == 0.0 {
		return 1.0
	}
	return scale
}
