package export

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/openmfl/mfl-cli/internal/model"
)

// Shapefile DBF string fields are capped; long values are truncated.
var shapefileFields = []shp.Field{
	shp.StringField("ID", 32),
	shp.StringField("NAME", 100),
	shp.StringField("TYPE", 64),
	shp.StringField("OWNER", 64),
	shp.StringField("ADMIN1", 64),
	shp.StringField("ADMIN2", 64),
	shp.StringField("STATUS", 32),
	shp.StringField("SOURCE", 64),
}

// WriteShapefile writes a collection as a point shapefile at path
// (conventionally ending in .shp; the sidecar files are derived).
func WriteShapefile(path string, records []*model.FacilityRecord) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return eris.Wrapf(err, "export: create shapefile %s", path)
	}
	defer w.Close() //nolint:errcheck

	w.SetFields(shapefileFields)

	for i, r := range records {
		flat := Flatten(r)
		w.Write(&shp.Point{X: r.Coordinates.Longitude, Y: r.Coordinates.Latitude})

		attrs := []string{
			flat.Identifier, flat.Name, flat.FacilityType, flat.MajorOwner,
			flat.Admin1, flat.Admin2, flat.OperationalStatus, flat.Source,
		}
		for j, v := range attrs {
			if err := w.WriteAttribute(i, j, v); err != nil {
				return eris.Wrapf(err, "export: shapefile attribute %d of record %d", j, i)
			}
		}
	}

	zap.L().Info("shapefile written",
		zap.String("path", path),
		zap.Int("points", len(records)),
	)
	return nil
}
