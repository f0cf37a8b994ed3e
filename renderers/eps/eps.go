package eps

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/planar"
)

// Precision is the number of decimals written for coordinates, trailing zeros are trimmed.
const Precision = 3

type Options struct {
	Width       float64 // width in points, the height follows from the aspect ratio of the network
	Margin      float64
	StrokeWidth float64
	PointRadius float64
	Stroke      color.RGBA
	Highlight   color.RGBA // color of points from NewFrom onwards
	NewFrom     int        // first index of highlighted points, negative to draw none
}

var DefaultOptions = Options{
	Width:       595.0,
	Margin:      10.0,
	StrokeWidth: 0.5,
	PointRadius: 1.5,
	Stroke:      color.RGBA{0, 0, 0, 255},
	Highlight:   color.RGBA{220, 0, 0, 255},
	NewFrom:     -1,
}

// Writer writes the network as an encapsulated PostScript file. EPS does not support transparency, the alpha channel of colors is ignored.
func Writer(w io.Writer, net *planar.Network, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	b := net.Bounds()
	bw, bh := b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]
	scale := 1.0
	if 0.0 < bw || 0.0 < bh {
		scale = math.Max(opts.Width-2.0*opts.Margin, 1.0) / math.Max(bw, bh)
	}
	width := bw*scale + 2.0*opts.Margin
	height := bh*scale + 2.0*opts.Margin
	pos := func(p planar.Point) (dec, dec) {
		return dec(opts.Margin + (p.X-b.Min[0])*scale), dec(opts.Margin + (p.Y-b.Min[1])*scale)
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%%!PS-Adobe-3.0 EPSF-3.0\n%%%%BoundingBox: 0 0 %v %v\n", int(math.Ceil(width)), int(math.Ceil(height)))
	fmt.Fprintf(sb, "%v setlinewidth 1 setlinecap", dec(opts.StrokeWidth))
	if 0 < len(net.Segments) {
		sb.WriteString(setColor(opts.Stroke))
		sb.WriteString(" newpath")
		for _, s := range net.Segments {
			x0, y0 := pos(net.Points[s.A])
			x1, y1 := pos(net.Points[s.B])
			fmt.Fprintf(sb, " %v %v moveto %v %v lineto", x0, y0, x1, y1)
		}
		sb.WriteString(" stroke")
	}
	if 0 <= opts.NewFrom && opts.NewFrom < len(net.Points) {
		sb.WriteString(setColor(opts.Highlight))
		for _, p := range net.Points[opts.NewFrom:] {
			x, y := pos(p)
			fmt.Fprintf(sb, " newpath %v %v %v 0 360 arc fill", x, y, dec(opts.PointRadius))
		}
	}
	sb.WriteString("\nshowpage\n%%EOF\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func setColor(c color.RGBA) string {
	return fmt.Sprintf(" %v %v %v setrgbcolor", dec(float64(c.R)/255.0), dec(float64(c.G)/255.0), dec(float64(c.B)/255.0))
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", Precision, f)
	s = string(minify.Decimal([]byte(s), 0))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}
