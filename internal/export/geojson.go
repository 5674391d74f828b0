package export

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/openmfl/mfl-cli/internal/model"
)

// WriteGeoJSON writes a collection as a GeoJSON FeatureCollection of
// facility points, with the flattened projection as feature properties.
// GeoJSON positions are (longitude, latitude).
func WriteGeoJSON(w io.Writer, records []*model.FacilityRecord) error {
	fc := geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(records)),
	}

	for _, r := range records {
		flat := Flatten(r)
		props, err := propertyMap(flat)
		if err != nil {
			return err
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         flat.Identifier,
			Geometry:   geom.NewPointFlat(geom.XY, []float64{r.Coordinates.Longitude, r.Coordinates.Latitude}),
			Properties: props,
		})
	}

	data, err := json.Marshal(&fc)
	if err != nil {
		return eris.Wrap(err, "export: encode geojson")
	}
	if _, err := w.Write(data); err != nil {
		return eris.Wrap(err, "export: write geojson")
	}
	return nil
}

// propertyMap converts the flattened projection to feature properties
// through its JSON shape, keeping the canonical field names.
func propertyMap(flat FlatFacility) (map[string]any, error) {
	data, err := json.Marshal(flat)
	if err != nil {
		return nil, eris.Wrap(err, "export: encode properties")
	}
	var props map[string]any
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, eris.Wrap(err, "export: decode properties")
	}
	// The geometry already carries the position.
	delete(props, "latitude")
	delete(props, "longitude")
	return props, nil
}
