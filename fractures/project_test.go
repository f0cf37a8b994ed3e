package fractures

import (
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/planar"
	"github.com/tdewolff/test"
)

func TestProject(t *testing.T) {
	net := &planar.Network{Points: []planar.Point{{15, 0}, {15, 1}}}
	test.Error(t, Project(net, LonLat, 32633)) // UTM 33N has its central meridian at 15E

	test.That(t, math.Abs(net.Points[0].X-500000.0) < 1.0, net.Points[0])
	test.That(t, math.Abs(net.Points[0].Y) < 1.0, net.Points[0])
	test.That(t, math.Abs(net.Points[1].X-500000.0) < 1.0, net.Points[1])
	test.That(t, math.Abs(net.Points[1].Y-110574.0) < 100.0, net.Points[1]) // one degree of latitude
}

func TestProjectUnknownEPSG(t *testing.T) {
	for _, codes := range [][2]int{{LonLat, 999999}, {999999, LonLat}} {
		net := &planar.Network{Points: []planar.Point{{15, 0}, {15, 1}}}
		err := Project(net, codes[0], codes[1])
		test.That(t, err != nil && strings.Contains(err.Error(), "999999"), "unexpected error", err, "for", codes)
		test.T(t, net.Points, []planar.Point{{15, 0}, {15, 1}}, "points modified")
	}
}
