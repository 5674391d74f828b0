// Package export produces the stable, flattened views of harmonized
// collections that reporting and mapping collaborators consume.
package export

import (
	"strings"

	"github.com/openmfl/mfl-cli/internal/model"
)

// listJoin separates entries when a list field is projected to one cell.
const listJoin = ";"

// FlatFacility is the tabular projection of one Facility Record:
// canonical field name to scalar or joined list value. The column set
// is the stable contract with reporting collaborators.
type FlatFacility struct {
	Identifier        string  `csv:"identifier" json:"identifier"`
	Name              string  `csv:"name" json:"name"`
	FacilityType      string  `csv:"facility_type" json:"facility_type"`
	MajorOwner        string  `csv:"major_owner" json:"major_owner"`
	SubOwner          string  `csv:"sub_owner" json:"sub_owner"`
	Admin1            string  `csv:"admin1" json:"admin1"`
	Admin2            string  `csv:"admin2" json:"admin2"`
	Admin3            string  `csv:"admin3" json:"admin3"`
	Admin4            string  `csv:"admin4" json:"admin4"`
	Latitude          float64 `csv:"latitude" json:"latitude"`
	Longitude         float64 `csv:"longitude" json:"longitude"`
	OperationalStatus string  `csv:"operational_status" json:"operational_status"`
	OpenDate          string  `csv:"open_date" json:"open_date"`
	CloseDate         string  `csv:"close_date" json:"close_date"`
	Services          string  `csv:"services" json:"services"`
	Infrastructure    string  `csv:"infrastructure" json:"infrastructure"`
	LegacyIdentifiers string  `csv:"legacy_identifiers" json:"legacy_identifiers"`
	Source            string  `csv:"source" json:"source"`
	DateStamp         string  `csv:"date_stamp" json:"date_stamp"`
}

// Flatten projects one record. Read-only over the record.
func Flatten(r *model.FacilityRecord) FlatFacility {
	return FlatFacility{
		Identifier:        r.Identifier.Value,
		Name:              r.Name.Value,
		FacilityType:      r.FacilityType.Value,
		MajorOwner:        r.Ownership.MajorOwner.Value,
		SubOwner:          r.Ownership.SubOwner.Value,
		Admin1:            r.AdminRegion.Admin1.Name.Value,
		Admin2:            r.AdminRegion.Admin2.Name.Value,
		Admin3:            r.AdminRegion.Admin3.Name.Value,
		Admin4:            r.AdminRegion.Admin4.Name.Value,
		Latitude:          r.Coordinates.Latitude,
		Longitude:         r.Coordinates.Longitude,
		OperationalStatus: r.Status.OperationalStatus.Value,
		OpenDate:          r.Status.OpenDate.Value,
		CloseDate:         r.Status.CloseDate.Value,
		Services:          strings.Join(r.Services.List, listJoin),
		Infrastructure:    strings.Join(r.Infrastructure.List, listJoin),
		LegacyIdentifiers: strings.Join(r.LegacyIdentifiers.Values, listJoin),
		Source:            r.Coordinates.Source,
		DateStamp:         r.Coordinates.DateStamp,
	}
}

// FlattenAll projects a whole collection in order.
func FlattenAll(records []*model.FacilityRecord) []FlatFacility {
	out := make([]FlatFacility, len(records))
	for i, r := range records {
		out[i] = Flatten(r)
	}
	return out
}
