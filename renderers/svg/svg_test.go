package svg

import (
	"bytes"
	"compress/gzip"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/tdewolff/planar"
	"github.com/tdewolff/test"
)

func testNetwork() *planar.Network {
	return &planar.Network{
		Points:   []planar.Point{{0, 0}, {1, 0}, {0, 1}, {5, 5}},
		Segments: []planar.Segment{{A: 0, B: 1}, {A: 0, B: 2}},
	}
}

func TestWrite(t *testing.T) {
	net := testNetwork()
	net.Points = net.Points[:3]
	opts := DefaultOptions
	opts.Width = 20.0
	opts.Margin = 0.0
	opts.StrokeWidth = 1.0
	opts.PointRadius = 2.0
	opts.NewFrom = 2

	var buf bytes.Buffer
	test.Error(t, Write(&buf, net, &opts))
	test.String(t, buf.String(), `<svg version="1.1" width="20" height="20" viewBox="0 0 20 20" xmlns="http://www.w3.org/2000/svg">`+
		`<path d="M0 20L20 20M0 20L0 0" fill="none" stroke="#000000" stroke-width="1" stroke-linecap="round"/>`+
		`<circle cx="0" cy="20" r="2" fill="#000000"/><circle cx="20" cy="20" r="2" fill="#000000"/><circle cx="0" cy="0" r="2" fill="#dc0000"/></svg>`)
}

func TestWriteUnreferenced(t *testing.T) {
	opts := DefaultOptions
	opts.NewFrom = 4

	var buf bytes.Buffer
	test.Error(t, Write(&buf, testNetwork(), &opts))
	test.T(t, strings.Count(buf.String(), "<circle"), 3)

	opts.NewFrom = -1
	buf.Reset()
	test.Error(t, Write(&buf, testNetwork(), &opts))
	test.T(t, strings.Count(buf.String(), "<circle"), 0)
}

func TestWriteMinify(t *testing.T) {
	opts := DefaultOptions
	opts.Minify = true

	var buf bytes.Buffer
	test.Error(t, Write(&buf, testNetwork(), &opts))
	test.That(t, strings.HasPrefix(buf.String(), "<svg"), buf.String())
	test.That(t, strings.Contains(buf.String(), "<path"), buf.String())
}

func TestWriteCompressed(t *testing.T) {
	opts := DefaultOptions
	opts.Compression = -1

	var buf bytes.Buffer
	test.Error(t, Write(&buf, testNetwork(), &opts))
	zr, err := gzip.NewReader(&buf)
	test.Error(t, err)
	b, err := io.ReadAll(zr)
	test.Error(t, err)
	test.That(t, strings.HasPrefix(string(b), "<svg"), string(b))
	test.That(t, strings.HasSuffix(string(b), "</svg>"), string(b))
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	test.Error(t, Write(&buf, &planar.Network{}, nil))
	test.String(t, buf.String(), `<svg version="1.1" width="20" height="20" viewBox="0 0 20 20" xmlns="http://www.w3.org/2000/svg"></svg>`)
}

func TestCSSColor(t *testing.T) {
	test.String(t, cssColor(color.RGBA{255, 0, 16, 255}), "#ff0010")
	test.String(t, cssColor(color.RGBA{0, 0, 0, 0}), "rgba(0,0,0,0)")
}

func TestDec(t *testing.T) {
	test.String(t, dec(20.0).String(), "20")
	test.String(t, dec(0.0).String(), "0")
	test.String(t, dec(2.50).String(), "2.5")
	test.String(t, dec(1.23456).String(), "1.235")
	test.String(t, dec(123.456).String(), "123.456")
	test.String(t, dec(12.345).String(), "12.345")
	test.String(t, dec(0.5).String(), ".5")
	test.String(t, dec(-0.0001).String(), "0")
	test.String(t, dec(-7.25).String(), "-7.25")
}
