package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacilityRecord_JSONShape(t *testing.T) {
	t.Parallel()

	r := FacilityRecord{
		Identifier:   ProvenancedField{Value: "RW-0042", Source: "Rwanda MoH", DateStamp: "2020-08-15"},
		Name:         ProvenancedField{Value: "Gahanga Health Centre", Source: "Rwanda MoH", DateStamp: "2020-08-15"},
		LocalNames:   []LocalName{{Name: "Ikigo Nderabuzima cya Gahanga", Language: "rw"}},
		FacilityType: ProvenancedField{Value: "Health Centre", Source: "Rwanda MoH", DateStamp: "2020-08-15"},
		Coordinates:  Coordinates{Latitude: -2.04, Longitude: 30.13, Source: "Rwanda MoH", DateStamp: "2020-08-15"},
		Status: Status{
			OperationalStatus: ProvenancedField{Value: "Operational", Source: "Rwanda MoH", DateStamp: "2020-08-15"},
		},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded FacilityRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r, decoded)

	// Unset attribute groups must not appear in the wire shape.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "identifier")
	assert.Contains(t, raw, "coordinates")
	assert.NotContains(t, raw, "ownership")
	assert.NotContains(t, raw, "contact")
	assert.NotContains(t, raw, "services")
}

func TestFieldPathRegistry(t *testing.T) {
	t.Parallel()

	paths := ScalarPaths()
	assert.Contains(t, paths, "facility_type")
	assert.Contains(t, paths, "admin_region.admin4.code")
	assert.Contains(t, paths, "status.close_date")
	assert.NotContains(t, paths, PathLatitude)

	var r FacilityRecord
	ok := r.SetField("ownership.major_owner", ProvenancedField{Value: "Government", Source: "Zambia MoH", DateStamp: "2019-01-01"})
	require.True(t, ok)
	assert.Equal(t, "Government", r.Ownership.MajorOwner.Value)

	f, ok := r.Field("ownership.major_owner")
	require.True(t, ok)
	assert.Equal(t, "Government", f.Value)

	_, ok = r.Field("no.such.path")
	assert.False(t, ok)
	assert.False(t, r.SetField("no.such.path", ProvenancedField{}))
}
