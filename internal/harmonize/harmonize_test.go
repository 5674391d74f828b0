package harmonize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmfl/mfl-cli/internal/fieldmap"
	"github.com/openmfl/mfl-cli/internal/model"
)

func resolved(t *testing.T, yamlMap string, header []string) *fieldmap.Resolved {
	t.Helper()
	fm, err := fieldmap.Parse([]byte(yamlMap))
	require.NoError(t, err)
	res, err := fm.Resolve(header)
	require.NoError(t, err)
	return res
}

const basicMap = `
version: 1
source: Test MoH
fields:
  name:
    column: Name
  facility_type:
    column: FacilityType
  coordinates.latitude:
    column: Lat
  coordinates.longitude:
    column: Lon
`

func TestHarmonize_OutOfRangeLatitude(t *testing.T) {
	t.Parallel()

	res := resolved(t, basicMap, []string{"FacilityType", "Lat", "Lon"})
	h := New(res, "", "2021-05-01")

	rec, errs := h.Harmonize([]string{"Clinic", "200", "30"})
	assert.Nil(t, rec)
	require.Len(t, errs, 1)
	assert.Equal(t, model.PathLatitude, errs[0].Field)
	assert.Equal(t, model.CodeMissingRequiredField, errs[0].Code)
	assert.Contains(t, errs[0].Detail, "200")
}

func TestHarmonize_ServiceCardinalityMismatch(t *testing.T) {
	t.Parallel()

	res := resolved(t, `
version: 1
source: Test MoH
fields:
  coordinates.latitude:
    column: Lat
  coordinates.longitude:
    column: Lon
  services.list:
    column: Services
    delimiter: ";"
  services.source_list:
    column: ServiceSources
    delimiter: ";"
`, []string{"Lat", "Lon", "Services", "ServiceSources"})
	h := New(res, "", "2021-05-01")

	rec, errs := h.Harmonize([]string{"-1.5", "36.8", "X;Y", "A"})
	assert.Nil(t, rec)
	require.Len(t, errs, 1)
	assert.Equal(t, model.PathServices, errs[0].Field)
	assert.Equal(t, model.CodeCardinalityMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Detail, "2")
	assert.Contains(t, errs[0].Detail, "1")
}

func TestHarmonize_ValidRow(t *testing.T) {
	t.Parallel()

	res := resolved(t, basicMap, []string{"Name", "Lat", "Lon"})
	h := New(res, "", "2021-05-01")

	rec, errs := h.Harmonize([]string{"Central Clinic", "-1.5", "36.8"})
	require.Empty(t, errs)
	require.NotNil(t, rec)

	assert.Equal(t, "Central Clinic", rec.Name.Value)
	assert.Equal(t, "Test MoH", rec.Name.Source)
	assert.Equal(t, "2021-05-01", rec.Name.DateStamp)
	assert.InDelta(t, -1.5, rec.Coordinates.Latitude, 1e-9)
	assert.InDelta(t, 36.8, rec.Coordinates.Longitude, 1e-9)
	assert.True(t, rec.Validate().OK())
}

func TestHarmonize_Idempotent(t *testing.T) {
	t.Parallel()

	res := resolved(t, basicMap, []string{"Name", "FacilityType", "Lat", "Lon"})
	h := New(res, "", "2021-05-01")
	row := []string{"Central Clinic", "Dispensary", "-1.5", "36.8"}

	first, errs := h.Harmonize(row)
	require.Empty(t, errs)
	second, errs := h.Harmonize(row)
	require.Empty(t, errs)

	assert.Equal(t, first, second)
}

func TestHarmonize_AuthoritativeDuplicateColumn(t *testing.T) {
	t.Parallel()

	// Two physically distinct columns carry the district; the map
	// designates the first authoritative regardless of column order.
	fm, err := fieldmap.Parse([]byte(`
version: 1
source: Rwanda MoH
fields:
  admin_region.admin2.name:
    column: District
    drop: [District_1]
  coordinates.latitude:
    column: Lat
  coordinates.longitude:
    column: Lon
`))
	require.NoError(t, err)

	headers := [][]string{
		{"District", "District_1", "Lat", "Lon"},
		{"District_1", "District", "Lat", "Lon"},
	}
	rows := [][]string{
		{"Gasabo", "WRONG", "-1.9", "30.1"},
		{"WRONG", "Gasabo", "-1.9", "30.1"},
	}

	for i, header := range headers {
		res, err := fm.Resolve(header)
		require.NoError(t, err)
		h := New(res, "", "2020-08-15")

		rec, errs := h.Harmonize(rows[i])
		require.Empty(t, errs)
		assert.Equal(t, "Gasabo", rec.AdminRegion.Admin2.Name.Value)
	}
}

func TestHarmonize_UnsetOptionalFields(t *testing.T) {
	t.Parallel()

	res := resolved(t, basicMap, []string{"Lat", "Lon"})
	h := New(res, "", "2021-05-01")

	rec, errs := h.Harmonize([]string{"0.5", "32.6"})
	require.Empty(t, errs)

	// name and facility_type have no column in this extract: unset.
	assert.True(t, rec.Name.IsZero())
	assert.True(t, rec.FacilityType.IsZero())
	assert.Contains(t, res.Unmapped, "name")
	assert.Contains(t, res.Unmapped, "facility_type")
}

func TestHarmonize_MissingCoordinates(t *testing.T) {
	t.Parallel()

	res := resolved(t, basicMap, []string{"Name", "Lat", "Lon"})
	h := New(res, "", "2021-05-01")

	tests := []struct {
		name   string
		row    []string
		detail string
	}{
		{"empty cell", []string{"X", "", "36.8"}, "required value is empty"},
		{"unparsable", []string{"X", "not-a-number", "36.8"}, "is not a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, errs := h.Harmonize(tt.row)
			assert.Nil(t, rec)
			require.Len(t, errs, 1)
			assert.Equal(t, model.PathLatitude, errs[0].Field)
			assert.Equal(t, model.CodeMissingRequiredField, errs[0].Code)
			assert.Contains(t, errs[0].Detail, tt.detail)
		})
	}
}

func TestHarmonize_ListsAndLocalNames(t *testing.T) {
	t.Parallel()

	res := resolved(t, `
version: 1
source: Zambia MoH
fields:
  coordinates.latitude:
    column: Lat
  coordinates.longitude:
    column: Lon
  legacy_identifiers.values:
    column: OldIDs
    delimiter: ","
  services.list:
    columns: [Service A, Service B, Service C]
  local_names:
    column: LocalName
    language: bem
  status.close_date:
    column: Closed
  status.close_date.comment:
    column: CloseReason
`, []string{"Lat", "Lon", "OldIDs", "Service A", "Service B", "Service C", "LocalName", "Closed", "CloseReason"})
	h := New(res, "", "2019-11-30")

	rec, errs := h.Harmonize([]string{
		"-15.4", "28.3", "ZM-7,HMIS-221", "OPD", "", "Maternity", "Cipatala", "2018-01-01", "structure condemned",
	})
	require.Empty(t, errs)

	assert.Equal(t, []string{"ZM-7", "HMIS-221"}, rec.LegacyIdentifiers.Values)
	assert.Equal(t, []string{"Zambia MoH", "Zambia MoH"}, rec.LegacyIdentifiers.Sources)
	assert.Equal(t, []string{"2019-11-30", "2019-11-30"}, rec.LegacyIdentifiers.DateStamps)

	// Empty middle cell is dropped, not kept as an empty entry.
	assert.Equal(t, []string{"OPD", "Maternity"}, rec.Services.List)
	assert.Nil(t, rec.Services.Codes)

	require.Len(t, rec.LocalNames, 1)
	assert.Equal(t, model.LocalName{Name: "Cipatala", Language: "bem"}, rec.LocalNames[0])

	assert.Equal(t, "2018-01-01", rec.Status.CloseDate.Value)
	assert.Equal(t, "structure condemned", rec.Status.CloseDate.Comment)
}
