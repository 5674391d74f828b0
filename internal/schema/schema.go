// Package schema carries the canonical Facility Record JSON Schema
// (draft-07). The document is the bit-exact contract external tooling
// validates harmonized records against.
package schema

import (
	_ "embed"
	"encoding/json"

	"github.com/rotisserie/eris"
)

//go:embed facility_record.schema.json
var facilityRecordSchema []byte

// Document returns the raw JSON Schema document.
func Document() []byte {
	return facilityRecordSchema
}

// FieldNames returns the top-level canonical attribute group names
// declared by the schema. Order is unspecified; callers needing a
// stable order should sort.
func FieldNames() ([]string, error) {
	var doc struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(facilityRecordSchema, &doc); err != nil {
		return nil, eris.Wrap(err, "schema: decode document")
	}
	names := make([]string, 0, len(doc.Properties))
	for name := range doc.Properties {
		names = append(names, name)
	}
	return names, nil
}
