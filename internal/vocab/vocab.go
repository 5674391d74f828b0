// Package vocab compares canonical-field vocabularies across harmonized
// collections. The operation is read-only and deliberately never
// unifies values into a shared controlled vocabulary: without one,
// cross-country normalization of free-text vocabularies (facility
// types, ownership labels) is not feasible.
package vocab

import (
	"github.com/rotisserie/eris"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/openmfl/mfl-cli/internal/model"
)

// Collection is one harmonized source's records under its label.
type Collection struct {
	Source  string
	Records []*model.FacilityRecord
}

// ValueCount is one distinct raw value and its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SourceVocabulary is the distinct raw values one collection uses for a
// canonical field.
type SourceVocabulary struct {
	Source string       `json:"source"`
	Values []ValueCount `json:"values"`
}

// Alignment is the side-by-side vocabulary comparison for one field.
type Alignment struct {
	Field   string             `json:"field"`
	Sources []SourceVocabulary `json:"sources"`
}

// Align produces, per collection, the set of distinct raw values
// observed for one provenanced scalar canonical field. Values stay
// per-source; nothing is merged. Input collections are not mutated.
func Align(collections []Collection, fieldPath string) (*Alignment, error) {
	if !model.IsScalarPath(fieldPath) {
		return nil, eris.Errorf("vocab: %q is not a scalar canonical field", fieldPath)
	}

	coll := collate.New(language.English, collate.Loose)

	a := &Alignment{Field: fieldPath}
	for _, c := range collections {
		counts := make(map[string]int)
		for _, rec := range c.Records {
			f, _ := rec.Field(fieldPath)
			if f.Value != "" {
				counts[f.Value]++
			}
		}

		values := make([]string, 0, len(counts))
		for v := range counts {
			values = append(values, v)
		}
		coll.SortStrings(values)

		sv := SourceVocabulary{Source: c.Source}
		for _, v := range values {
			sv.Values = append(sv.Values, ValueCount{Value: v, Count: counts[v]})
		}
		a.Sources = append(a.Sources, sv)
	}

	return a, nil
}
