package harmonize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AccumulatesErrors(t *testing.T) {
	t.Parallel()

	res := resolved(t, basicMap, []string{"Name", "FacilityType", "Lat", "Lon"})
	h := New(res, "", "2021-05-01")

	rows := [][]string{
		{"Central Clinic", "Clinic", "-1.5", "36.8"},
		{"Broken North", "Clinic", "200", "30"}, // latitude out of range
		{"Broken South", "Clinic", "1.1", ""},   // longitude missing
		{"Hill Dispensary", "Dispensary", "0.2", "35.0"},
	}

	result, err := h.Run(context.Background(), rows)
	require.NoError(t, err)

	assert.Len(t, result.Records, 2)
	report := result.Report

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "Test MoH", report.Source)
	assert.Equal(t, 4, report.RowsTotal)
	assert.Equal(t, 2, report.RowsHarmonized)
	assert.Equal(t, 2, report.RowsRejected)

	// A malformed row never aborts the batch; each rejected row keeps
	// its index and full error list.
	require.Len(t, report.RowErrors, 2)
	assert.Equal(t, 1, report.RowErrors[0].Row)
	assert.Equal(t, 3, report.RowErrors[1].Row)

	assert.Equal(t, 2, report.FieldCoverage["name"])
	assert.Equal(t, 2, report.FieldCoverage["facility_type"])
	assert.Equal(t, 2, report.FieldCoverage["coordinates"])
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	res := resolved(t, basicMap, []string{"Lat", "Lon"})
	h := New(res, "", "2021-05-01")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Run(ctx, [][]string{{"1", "2"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunSources(t *testing.T) {
	t.Parallel()

	kenya := resolved(t, basicMap, []string{"Name", "FacilityType", "Lat", "Lon"})
	zambia := resolved(t, `
version: 1
source: Zambia MoH
fields:
  facility_type:
    column: facility_type
  coordinates.latitude:
    column: latitude
  coordinates.longitude:
    column: longitude
`, []string{"facility_type", "latitude", "longitude"})

	jobs := []SourceJob{
		{
			Name:       "kenya",
			Harmonizer: New(kenya, "Kenya MFL", "2021-02-10"),
			Rows: [][]string{
				{"Central Clinic", "Dispensary", "-1.5", "36.8"},
				{"Coast Hospital", "Hospital", "-4.0", "39.6"},
			},
		},
		{
			Name:       "zambia",
			Harmonizer: New(zambia, "", "2019-11-30"),
			Rows: [][]string{
				{"Health Post", "-15.4", "28.3"},
			},
		},
	}

	results, err := RunSources(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Len(t, results[0].Records, 2)
	assert.Equal(t, "Kenya MFL", results[0].Records[0].Name.Source)
	assert.Len(t, results[1].Records, 1)
	assert.Equal(t, "Health Post", results[1].Records[0].FacilityType.Value)
	assert.Equal(t, "Zambia MoH", results[1].Report.Source)
}
