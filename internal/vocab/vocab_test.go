package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmfl/mfl-cli/internal/model"
)

func facilityOfType(ft string) *model.FacilityRecord {
	return &model.FacilityRecord{
		FacilityType: model.ProvenancedField{Value: ft, Source: "test", DateStamp: "2021-01-01"},
		Coordinates:  model.Coordinates{Latitude: 0, Longitude: 0},
	}
}

func TestAlign(t *testing.T) {
	t.Parallel()

	collections := []Collection{
		{
			Source: "Kenya MFL",
			Records: []*model.FacilityRecord{
				facilityOfType("Dispensary"),
				facilityOfType("Dispensary"),
				facilityOfType("Medical Clinic"),
				facilityOfType(""),
			},
		},
		{
			Source: "Zambia MoH",
			Records: []*model.FacilityRecord{
				facilityOfType("Health Post"),
				facilityOfType("1st Level Hospital"),
			},
		},
	}

	a, err := Align(collections, "facility_type")
	require.NoError(t, err)
	assert.Equal(t, "facility_type", a.Field)
	require.Len(t, a.Sources, 2)

	kenya := a.Sources[0]
	assert.Equal(t, "Kenya MFL", kenya.Source)
	require.Len(t, kenya.Values, 2, "empty values are not vocabulary entries")
	assert.Equal(t, ValueCount{Value: "Dispensary", Count: 2}, kenya.Values[0])
	assert.Equal(t, ValueCount{Value: "Medical Clinic", Count: 1}, kenya.Values[1])

	// Each source keeps its own vocabulary; nothing is unified.
	zambia := a.Sources[1]
	assert.Equal(t, []ValueCount{
		{Value: "1st Level Hospital", Count: 1},
		{Value: "Health Post", Count: 1},
	}, zambia.Values)
}

func TestAlign_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := Align(nil, "coordinates.latitude")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a scalar canonical field")
}
