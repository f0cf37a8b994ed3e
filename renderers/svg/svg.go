package svg

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/planar"
)

type Options struct {
	Width       float64 // width in pixels, the height follows from the aspect ratio of the network
	Margin      float64 // margin in pixels
	StrokeWidth float64
	PointRadius float64
	Stroke      color.RGBA
	Highlight   color.RGBA // color of points from NewFrom onwards
	NewFrom     int        // first index of highlighted points, negative to draw no points
	Compression int        // gzip compression level, 0 for none
	Minify      bool
}

var DefaultOptions = Options{
	Width:       800.0,
	Margin:      10.0,
	StrokeWidth: 1.5,
	PointRadius: 3.0,
	Stroke:      color.RGBA{0, 0, 0, 255},
	Highlight:   color.RGBA{220, 0, 0, 255},
	NewFrom:     -1,
}

// Write writes the network as an SVG image with y pointing up.
func Write(w io.Writer, net *planar.Network, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	if opts.Compression != 0 {
		level := opts.Compression
		if level < gzip.HuffmanOnly || gzip.BestCompression < level {
			level = gzip.DefaultCompression
		}
		zw, _ := gzip.NewWriterLevel(w, level)
		defer zw.Close() // does not close underlying writer
		w = zw
	}

	if opts.Minify {
		buf := &bytes.Buffer{}
		if err := write(buf, net, opts); err != nil {
			return err
		}
		m := minify.New()
		m.AddFunc("image/svg+xml", minifySVG.Minify)
		return m.Minify("image/svg+xml", w, buf)
	}
	return write(w, net, opts)
}

func write(w io.Writer, net *planar.Network, opts *Options) error {
	width, height, pos := viewport(net, opts)
	fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(width), dec(height))

	if 0 < len(net.Segments) {
		fmt.Fprintf(w, `<path d="`)
		for _, s := range net.Segments {
			a, b := pos(net.Points[s.A]), pos(net.Points[s.B])
			fmt.Fprintf(w, "M%v %vL%v %v", dec(a.X), dec(a.Y), dec(b.X), dec(b.Y))
		}
		fmt.Fprintf(w, `" fill="none" stroke="%v" stroke-width="%v" stroke-linecap="round"/>`, cssColor(opts.Stroke), dec(opts.StrokeWidth))
	}

	if 0 <= opts.NewFrom {
		used := referenced(net)
		for i := range net.Points {
			fill := opts.Stroke
			if opts.NewFrom <= i {
				fill = opts.Highlight
			} else if !used[i] {
				continue
			}
			p := pos(net.Points[i])
			fmt.Fprintf(w, `<circle cx="%v" cy="%v" r="%v" fill="%v"/>`, dec(p.X), dec(p.Y), dec(opts.PointRadius), cssColor(fill))
		}
	}
	_, err := fmt.Fprintf(w, "</svg>")
	return err
}

// viewport returns the image size and the mapping from network to image coordinates, flipping y.
func viewport(net *planar.Network, opts *Options) (float64, float64, func(planar.Point) planar.Point) {
	b := net.Bounds()
	w, h := b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]
	scale := 1.0
	if 0.0 < w || 0.0 < h {
		scale = math.Max(opts.Width-2.0*opts.Margin, 1.0) / math.Max(w, h)
	}
	width := w*scale + 2.0*opts.Margin
	height := h*scale + 2.0*opts.Margin
	return width, height, func(p planar.Point) planar.Point {
		return planar.Point{
			X: opts.Margin + (p.X-b.Min[0])*scale,
			Y: height - opts.Margin - (p.Y-b.Min[1])*scale,
		}
	}
}

func referenced(net *planar.Network) []bool {
	used := make([]bool, len(net.Points))
	for _, s := range net.Segments {
		used[s.A] = true
		used[s.B] = true
	}
	return used
}

func cssColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%v)", c.R, c.G, c.B, dec(float64(c.A)/255.0))
}
