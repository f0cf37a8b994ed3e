package planar

import "math"

// DefaultSnapTolerance is the grid spacing relative to the domain box.
const DefaultSnapTolerance = 1e-3

// SnapToGrid rounds points to a grid with spacing box*tol along each axis. The domain box is given by its extent along x and y. Axes with a non-positive spacing are left untouched. Ties round to even.
func SnapToGrid(points []Point, box Point, tol float64) []Point {
	dx, dy := box.X*tol, box.Y*tol
	snapped := make([]Point, len(points))
	for i, p := range points {
		if 0.0 < dx {
			p.X = math.RoundToEven(p.X/dx) * dx
		}
		if 0.0 < dy {
			p.Y = math.RoundToEven(p.Y/dy) * dy
		}
		snapped[i] = p
	}
	return snapped
}
