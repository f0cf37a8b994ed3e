package fractures

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/planar"
)

// ReadGeoJSON reads a feature collection of LineString and MultiLineString features. Every pair of consecutive vertices becomes a segment tagged with the feature number. Polygon rings are read as closed line strings, other geometries are skipped.
func ReadGeoJSON(r io.Reader) (*planar.Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	return fromFeatures(fc), nil
}

func fromFeatures(fc *geojson.FeatureCollection) *planar.Network {
	b := &builder{indices: map[planar.Point]int{}}
	for i, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.LineString:
			b.addLineString(g, i)
		case orb.MultiLineString:
			for _, ls := range g {
				b.addLineString(ls, i)
			}
		case orb.Polygon:
			for _, ring := range g {
				b.addLineString(orb.LineString(ring), i)
			}
		}
	}
	return &b.net
}

func (b *builder) addLineString(ls orb.LineString, tag int) {
	for i := 1; i < len(ls); i++ {
		b.add(fromOrb(ls[i-1]), fromOrb(ls[i]), tag)
	}
}

func fromOrb(p orb.Point) planar.Point {
	return planar.Point{X: p.X(), Y: p.Y()}
}

// WriteGeoJSON writes every segment as a LineString feature with its point indices and tags as properties. Points with an index of at least newFrom are written as Point features with property "new" set, use a negative value to omit them.
func WriteGeoJSON(w io.Writer, net *planar.Network, newFrom int) error {
	fc := geojson.NewFeatureCollection()
	for i, s := range net.Segments {
		f := geojson.NewFeature(orb.LineString{net.Points[s.A].Point(), net.Points[s.B].Point()})
		f.Properties["segment"] = i
		f.Properties["start"] = s.A
		f.Properties["end"] = s.B
		if 0 < len(s.Tags) {
			f.Properties["tags"] = s.Tags
		}
		fc.Append(f)
	}
	if 0 <= newFrom {
		for i := newFrom; i < len(net.Points); i++ {
			f := geojson.NewFeature(net.Points[i].Point())
			f.Properties["point"] = i
			f.Properties["new"] = true
			fc.Append(f)
		}
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
