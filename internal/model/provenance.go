// Package model defines the canonical Facility Record shape and its
// validation rules. Records are built once by the harmonizer and are
// immutable afterwards; corrections enter as new provenanced values
// with a newer date stamp.
package model

import "fmt"

// ProvenancedField carries a single harmonized value together with the
// source it came from and the date it was captured.
type ProvenancedField struct {
	Value     string `json:"value,omitempty"`
	Source    string `json:"source,omitempty"`
	DateStamp string `json:"date_stamp,omitempty"`
}

// IsZero reports whether the field carries no value and no provenance.
func (f ProvenancedField) IsZero() bool {
	return f.Value == "" && f.Source == "" && f.DateStamp == ""
}

// ProvenancedList holds parallel values/sources/date_stamps sequences.
// Index i across the three sequences describes one logical entry.
type ProvenancedList struct {
	Values     []string `json:"values,omitempty"`
	Sources    []string `json:"sources,omitempty"`
	DateStamps []string `json:"date_stamps,omitempty"`
}

// NewProvenancedList builds a ProvenancedList, rejecting unequal
// sequence lengths. A length mismatch is a data-quality error, never a
// silent truncation.
func NewProvenancedList(path string, values, sources, dateStamps []string) (ProvenancedList, error) {
	if len(sources) != len(values) || len(dateStamps) != len(values) {
		return ProvenancedList{}, &CardinalityError{
			Path:   path,
			Counts: []int{len(values), len(sources), len(dateStamps)},
		}
	}
	return ProvenancedList{Values: values, Sources: sources, DateStamps: dateStamps}, nil
}

// Len returns the number of logical entries.
func (l ProvenancedList) Len() int { return len(l.Values) }

// ServiceList is the four-way parallel list used for services and
// infrastructure. Codes, SourceList and DateStamps may each be entirely
// absent, but when present must match List in length.
type ServiceList struct {
	List       []string `json:"list,omitempty"`
	Codes      []string `json:"codes,omitempty"`
	SourceList []string `json:"source_list,omitempty"`
	DateStamps []string `json:"date_stamp,omitempty"`
}

// NewServiceList builds a ServiceList, rejecting any non-absent
// parallel sequence whose length disagrees with the primary list.
func NewServiceList(path string, list, codes, sourceList, dateStamps []string) (ServiceList, error) {
	for _, seq := range [][]string{codes, sourceList, dateStamps} {
		if seq != nil && len(seq) != len(list) {
			return ServiceList{}, &CardinalityError{
				Path:   path,
				Counts: []int{len(list), len(codes), len(sourceList), len(dateStamps)},
			}
		}
	}
	return ServiceList{List: list, Codes: codes, SourceList: sourceList, DateStamps: dateStamps}, nil
}

// Len returns the number of logical entries.
func (s ServiceList) Len() int { return len(s.List) }

// CardinalityError reports parallel sequences of unequal length for one
// canonical field.
type CardinalityError struct {
	Path   string
	Counts []int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s: parallel sequences have unequal lengths %v", e.Path, e.Counts)
}

// Code returns the error taxonomy code for cardinality mismatches.
func (e *CardinalityError) Code() string { return CodeCardinalityMismatch }
