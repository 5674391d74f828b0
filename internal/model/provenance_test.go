package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvenancedList(t *testing.T) {
	t.Parallel()

	l, err := NewProvenancedList("legacy_identifiers",
		[]string{"KE-001", "OLD-7"},
		[]string{"Kenya MFL", "DHIS2"},
		[]string{"2019-03-01", "2016-11-20"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "OLD-7", l.Values[1])
	assert.Equal(t, "DHIS2", l.Sources[1])
}

func TestNewProvenancedList_Mismatch(t *testing.T) {
	t.Parallel()

	_, err := NewProvenancedList("previous_names",
		[]string{"A", "B"},
		[]string{"src"},
		[]string{"2020-01-01", "2020-01-01"},
	)
	require.Error(t, err)

	var ce *CardinalityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "previous_names", ce.Path)
	assert.Equal(t, []int{2, 1, 2}, ce.Counts)
	assert.Equal(t, CodeCardinalityMismatch, ce.Code())
}

func TestNewServiceList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		list    []string
		codes   []string
		sources []string
		stamps  []string
		wantErr bool
	}{
		{
			name: "all parallel",
			list: []string{"OPD", "Maternity"}, codes: []string{"01", "02"},
			sources: []string{"MoH", "MoH"}, stamps: []string{"2021-06-01", "2021-06-01"},
		},
		{
			name: "absent codes allowed",
			list: []string{"OPD", "Maternity"},
		},
		{
			name: "codes mismatch",
			list: []string{"OPD", "Maternity"}, codes: []string{"01"},
			wantErr: true,
		},
		{
			name: "source_list mismatch",
			list: []string{"X", "Y"}, sources: []string{"A"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := NewServiceList("services", tt.list, tt.codes, tt.sources, tt.stamps)
			if tt.wantErr {
				var ce *CardinalityError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, "services", ce.Path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.list), s.Len())
		})
	}
}

func TestProvenancedField_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, ProvenancedField{}.IsZero())
	assert.False(t, ProvenancedField{Value: "Clinic"}.IsZero())
	assert.False(t, ProvenancedField{Source: "Zambia MoH", DateStamp: "2020-05-01"}.IsZero())
}

func TestCloseDate_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, CloseDate{}.IsZero())
	assert.False(t, CloseDate{Comment: "merged into district hospital"}.IsZero())
}
