package fractures

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
	"github.com/tdewolff/planar"
)

// ReadOSM reads the ways of an OpenStreetMap XML file, such as mapped geological faults. Coordinates are longitude and latitude, see Project. Ways are tagged with their feature number in the converted collection.
func ReadOSM(r io.Reader) (*planar.Network, error) {
	o := &osm.OSM{}
	if err := xml.NewDecoder(r).Decode(o); err != nil {
		return nil, fmt.Errorf("osm: %w", err)
	}
	fc, err := osmgeojson.Convert(o, osmgeojson.NoMeta(true), osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, fmt.Errorf("osm: %w", err)
	}
	return fromFeatures(fc), nil
}
