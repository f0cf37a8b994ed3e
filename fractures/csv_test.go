package fractures

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/planar"
	"github.com/tdewolff/test"
)

func TestReadCSV(t *testing.T) {
	r := strings.NewReader(`# traces
id,x0,y0,x1,y1
7,0,0,1,1
8;1;1;2,0

0 1	1 0
`)
	net, err := ReadCSV(r)
	test.Error(t, err)
	test.T(t, net.Points, []planar.Point{{0, 0}, {1, 1}, {2, 0}, {0, 1}, {1, 0}})
	test.T(t, net.Segments, []planar.Segment{{0, 1, []int{7}}, {1, 2, []int{8}}, {3, 4, []int{2}}})
}

func TestReadCSVErrors(t *testing.T) {
	var tts = []struct {
		csv string
		err string
	}{
		{"0,0,1,1\n1,2,3", "line 2: expected 4 or 5 fields, got 3"},
		{"0,0,1,1\n0,0,x,1", `line 2: bad number "x"`},
		{"#\n0,0,1,1\n0,0,1.2.3,1", `line 3: bad number "1.2.3"`},
	}
	for _, tt := range tts {
		t.Run(tt.csv, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.csv))
			test.T(t, err.Error(), tt.err)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	net := &planar.Network{
		Points:   []planar.Point{{0, 0}, {1, 1}, {2, 0.5}},
		Segments: []planar.Segment{{0, 1, []int{7}}, {1, 2, nil}},
	}
	var buf bytes.Buffer
	test.Error(t, WriteCSV(&buf, net))
	test.String(t, buf.String(), "7,0,0,1,1\n1,1,1,2,0.5\n")

	net2, err := ReadCSV(&buf)
	test.Error(t, err)
	test.T(t, net2.Points, net.Points)
	test.T(t, net2.Segments, []planar.Segment{{0, 1, []int{7}}, {1, 2, []int{1}}})
}
