package eps

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/tdewolff/planar"
	"github.com/tdewolff/test"
)

func TestWriter(t *testing.T) {
	net := &planar.Network{
		Points:   []planar.Point{{0, 0}, {1, 0}, {0, 1}},
		Segments: []planar.Segment{{A: 0, B: 1}, {A: 0, B: 2}},
	}
	opts := DefaultOptions
	opts.Width = 20.0
	opts.Margin = 0.0
	opts.StrokeWidth = 1.0
	opts.PointRadius = 2.0
	opts.Highlight = color.RGBA{255, 0, 0, 255}
	opts.NewFrom = 2

	var buf bytes.Buffer
	test.Error(t, Writer(&buf, net, &opts))
	test.String(t, buf.String(), "%!PS-Adobe-3.0 EPSF-3.0\n%%BoundingBox: 0 0 20 20\n"+
		"1 setlinewidth 1 setlinecap 0 0 0 setrgbcolor newpath 0 0 moveto 20 0 lineto 0 0 moveto 0 20 lineto stroke"+
		" 1 0 0 setrgbcolor newpath 0 20 2 0 360 arc fill\nshowpage\n%%EOF\n")
}

func TestDec(t *testing.T) {
	test.String(t, dec(20.0).String(), "20")
	test.String(t, dec(1.23456).String(), "1.235")
	test.String(t, dec(123.456).String(), "123.456")
	test.String(t, dec(float64(220)/255.0).String(), ".863")
}
