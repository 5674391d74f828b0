package harmonize

import (
	"time"

	"github.com/google/uuid"
)

// RowError collects every field error from one rejected source row.
type RowError struct {
	Row    int          `json:"row"`
	Errors []FieldError `json:"errors"`
}

// Report is the structured outcome of one harmonization batch. Errors
// are accumulated per batch and surfaced here rather than raised: a
// single malformed source row never aborts the remaining rows.
type Report struct {
	RunID     string    `json:"run_id"`
	Source    string    `json:"source"`
	AsOf      string    `json:"as_of"`
	StartedAt time.Time `json:"started_at"`

	RowsTotal      int `json:"rows_total"`
	RowsHarmonized int `json:"rows_harmonized"`
	RowsRejected   int `json:"rows_rejected"`

	// RowErrors maps rejected row indices (0-based, data rows) to the
	// full list of their field errors.
	RowErrors []RowError `json:"row_errors,omitempty"`

	// UnmappedFields lists canonical fields this source has no usable
	// binding for. Expected, not an error: a country may not collect
	// an attribute.
	UnmappedFields []string `json:"unmapped_fields,omitempty"`
	// UnusedColumns lists source columns the field map never consumed.
	UnusedColumns []string `json:"unused_columns,omitempty"`

	// FieldCoverage counts, per populated canonical field, how many
	// harmonized records carry a value for it.
	FieldCoverage map[string]int `json:"field_coverage,omitempty"`
}

func newReport(source, asOf string, unmapped, unused []string) *Report {
	return &Report{
		RunID:          uuid.NewString(),
		Source:         source,
		AsOf:           asOf,
		StartedAt:      time.Now().UTC(),
		UnmappedFields: unmapped,
		UnusedColumns:  unused,
		FieldCoverage:  make(map[string]int),
	}
}
