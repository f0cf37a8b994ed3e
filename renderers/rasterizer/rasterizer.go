package rasterizer

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/tdewolff/planar"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

type Options struct {
	Width       int     // width in pixels, the height follows from the aspect ratio of the network
	Margin      int     // margin in pixels
	StrokeWidth float64 // in pixels
	PointRadius float64 // in pixels
	Background  color.RGBA
	Stroke      color.RGBA
	Highlight   color.RGBA // color of points from NewFrom onwards
	NewFrom     int        // first index of highlighted points, negative to draw none
}

var DefaultOptions = Options{
	Width:       800,
	Margin:      10,
	StrokeWidth: 1.5,
	PointRadius: 3.0,
	Background:  color.RGBA{255, 255, 255, 255},
	Stroke:      color.RGBA{0, 0, 0, 255},
	Highlight:   color.RGBA{220, 0, 0, 255},
	NewFrom:     -1,
}

// PNGWriter writes the network as a PNG image.
func PNGWriter(w io.Writer, net *planar.Network, opts *Options) error {
	return png.Encode(w, Draw(net, opts))
}

// JPGWriter writes the network as a JPG image.
func JPGWriter(w io.Writer, net *planar.Network, opts *Options, jpgOpts *jpeg.Options) error {
	return jpeg.Encode(w, Draw(net, opts), jpgOpts)
}

// GIFWriter writes the network as a GIF image.
func GIFWriter(w io.Writer, net *planar.Network, opts *Options, gifOpts *gif.Options) error {
	return gif.Encode(w, Draw(net, opts), gifOpts)
}

// TIFFWriter writes the network as a TIFF image.
func TIFFWriter(w io.Writer, net *planar.Network, opts *Options, tiffOpts *tiff.Options) error {
	return tiff.Encode(w, Draw(net, opts), tiffOpts)
}

// Draw draws the network on a new image, with y pointing up.
func Draw(net *planar.Network, opts *Options) *image.RGBA {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	b := net.Bounds()
	w, h := b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]
	inner := math.Max(float64(opts.Width-2*opts.Margin), 1.0)
	scale := 1.0
	if 0.0 < w || 0.0 < h {
		scale = inner / math.Max(w, h)
	}
	width := int(w*scale+0.5) + 2*opts.Margin
	height := int(h*scale+0.5) + 2*opts.Margin
	pos := func(p planar.Point) (float32, float32) {
		x := float64(opts.Margin) + (p.X-b.Min[0])*scale
		y := float64(height-opts.Margin) - (p.Y-b.Min[1])*scale
		return float32(x), float32(y)
	}

	rect := image.Rect(0, 0, width, height)
	img := image.NewRGBA(rect)
	draw.Draw(img, rect, image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ras := vector.NewRasterizer(width, height)
	for _, s := range net.Segments {
		x0, y0 := pos(net.Points[s.A])
		x1, y1 := pos(net.Points[s.B])
		addLine(ras, x0, y0, x1, y1, float32(opts.StrokeWidth/2.0))
	}
	ras.Draw(img, rect, image.NewUniform(opts.Stroke), image.Point{})

	if 0 <= opts.NewFrom && opts.NewFrom < len(net.Points) {
		ras.Reset(width, height)
		for _, p := range net.Points[opts.NewFrom:] {
			x, y := pos(p)
			addDot(ras, x, y, float32(opts.PointRadius))
		}
		ras.Draw(img, rect, image.NewUniform(opts.Highlight), image.Point{})
	}
	return img
}

// addLine adds the outline of a line with half width r and square caps.
func addLine(ras *vector.Rasterizer, x0, y0, x1, y1, r float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		addDot(ras, x0, y0, r)
		return
	}
	// unit direction and normal scaled by r
	ux, uy := dx/l*r, dy/l*r
	nx, ny := -uy, ux
	ras.MoveTo(x0-ux+nx, y0-uy+ny)
	ras.LineTo(x1+ux+nx, y1+uy+ny)
	ras.LineTo(x1+ux-nx, y1+uy-ny)
	ras.LineTo(x0-ux-nx, y0-uy-ny)
	ras.ClosePath()
}

// addDot adds an octagon of radius r.
func addDot(ras *vector.Rasterizer, x, y, r float32) {
	for i := 0; i < 8; i++ {
		theta := float64(i) * math.Pi / 4.0
		px := x + r*float32(math.Cos(theta))
		py := y + r*float32(math.Sin(theta))
		if i == 0 {
			ras.MoveTo(px, py)
		} else {
			ras.LineTo(px, py)
		}
	}
	ras.ClosePath()
}
