package fractures

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/planar"
)

// ReadCSV reads fracture traces with one trace per line as x0,y0,x1,y1, optionally preceded by an integer id. Fields are separated by commas, semicolons or white space. Empty lines and lines starting with # are skipped, as is a header line. The id, or the trace number when absent, is stored as the first tag of the segment. Identical endpoints share a point.
func ReadCSV(r io.Reader) (*planar.Network, error) {
	b := &builder{indices: map[planar.Point]int{}}
	scanner := bufio.NewScanner(r)
	line, first := 0, true
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}

		header := first
		first = false
		fields := bytes.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) != 4 && len(fields) != 5 {
			if header {
				continue
			}
			return nil, fmt.Errorf("line %d: expected 4 or 5 fields, got %d", line, len(fields))
		}

		values := make([]float64, len(fields))
		for i, field := range fields {
			f, n := strconv.ParseFloat(field)
			if n != len(field) {
				if header {
					values = nil
					break
				}
				return nil, fmt.Errorf("line %d: bad number %q", line, field)
			}
			values[i] = f
		}
		if values == nil {
			continue
		}

		tag := len(b.net.Segments)
		if len(values) == 5 {
			tag = int(values[0])
			values = values[1:]
		}
		b.add(planar.Point{X: values[0], Y: values[1]}, planar.Point{X: values[2], Y: values[3]}, tag)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &b.net, nil
}

// WriteCSV writes every segment as id,x0,y0,x1,y1 where id is the first tag or the segment index.
func WriteCSV(w io.Writer, net *planar.Network) error {
	bw := bufio.NewWriter(w)
	for i, s := range net.Segments {
		id := i
		if 0 < len(s.Tags) {
			id = s.Tags[0]
		}
		a, b := net.Points[s.A], net.Points[s.B]
		if _, err := fmt.Fprintf(bw, "%d,%v,%v,%v,%v\n", id, a.X, a.Y, b.X, b.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type builder struct {
	net     planar.Network
	indices map[planar.Point]int
}

func (b *builder) point(p planar.Point) int {
	if i, ok := b.indices[p]; ok {
		return i
	}
	i := len(b.net.Points)
	b.net.Points = append(b.net.Points, p)
	b.indices[p] = i
	return i
}

func (b *builder) add(p, q planar.Point, tags ...int) {
	b.net.Segments = append(b.net.Segments, planar.Segment{
		A:    b.point(p),
		B:    b.point(q),
		Tags: tags,
	})
}
