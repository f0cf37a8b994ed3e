package fractures

import (
	"fmt"
	"math"

	"github.com/tdewolff/planar"
	"github.com/wroge/wgs84/v2"
)

// LonLat is the EPSG code of longitude and latitude on the WGS84 ellipsoid.
const LonLat = 4326

// Project transforms all points between two coordinate reference systems given by their EPSG code, for example from LonLat to a UTM zone so that tolerances are in meters. The network is modified in place and left untouched if an EPSG code is unknown.
func Project(net *planar.Network, from, to int) error {
	crsFrom, crsTo := wgs84.EPSG(from), wgs84.EPSG(to)
	for _, crs := range []wgs84.CRS{crsFrom, crsTo} {
		if err, ok := crs.(error); ok {
			return fmt.Errorf("project: %w", err)
		}
	}

	transform := wgs84.Transform(crsFrom, crsTo)
	for i, p := range net.Points {
		x, y, _ := transform(p.X, p.Y, 0.0)
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return fmt.Errorf("project: point %d %v has no coordinates in EPSG:%d", i, p, to)
		}
		net.Points[i] = planar.Point{X: x, Y: y}
	}
	return nil
}
