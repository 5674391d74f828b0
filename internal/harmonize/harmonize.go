// Package harmonize maps rows of heterogeneous source tables into
// canonical, provenance-stamped Facility Records under an explicit
// per-source field map.
package harmonize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/openmfl/mfl-cli/internal/fieldmap"
	"github.com/openmfl/mfl-cli/internal/model"
)

// FieldError is one harmonization failure at a canonical field path.
type FieldError struct {
	Field  string `json:"field"`
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Harmonizer turns source rows into Facility Records. It is built once
// per (source, field map, header) and is safe for reuse across rows.
type Harmonizer struct {
	res    *fieldmap.Resolved
	source string
	asOf   string
}

// New creates a Harmonizer stamping every extracted value with the
// given source label and as-of date. An empty label falls back to the
// field map's own source label.
func New(res *fieldmap.Resolved, sourceLabel, asOf string) *Harmonizer {
	if sourceLabel == "" {
		sourceLabel = res.Map.Source
	}
	return &Harmonizer{res: res, source: sourceLabel, asOf: asOf}
}

// Source returns the label stamped onto extracted values.
func (h *Harmonizer) Source() string { return h.source }

// Harmonize maps one source row into an immutable Facility Record.
// On failure the record is rejected whole, never partially admitted,
// and every field error from the row is returned in one pass.
// Deterministic: the same row, map, label and as-of date always yield
// an identical record.
func (h *Harmonizer) Harmonize(row []string) (*model.FacilityRecord, []FieldError) {
	var errs []FieldError
	rec := &model.FacilityRecord{}

	for _, path := range sortedKeys(h.res.Scalars) {
		if !model.IsScalarPath(path) {
			continue // coordinates and close-date comment handled below
		}
		if val := h.cell(row, h.res.Scalars[path]); val != "" {
			rec.SetField(path, model.ProvenancedField{Value: val, Source: h.source, DateStamp: h.asOf})
		}
	}

	if idx, ok := h.res.Scalars[model.PathCloseDateComment]; ok {
		rec.Status.CloseDate.Comment = h.cell(row, idx)
	}

	for _, lb := range h.res.Locals {
		if val := h.cell(row, lb.Index); val != "" {
			rec.LocalNames = append(rec.LocalNames, model.LocalName{Name: val, Language: lb.Language})
		}
	}

	lat, latErrs := h.coordinate(row, model.PathLatitude, model.MinLatitude, model.MaxLatitude)
	lon, lonErrs := h.coordinate(row, model.PathLongitude, model.MinLongitude, model.MaxLongitude)
	errs = append(errs, latErrs...)
	errs = append(errs, lonErrs...)
	if len(latErrs) == 0 && len(lonErrs) == 0 {
		rec.Coordinates = model.Coordinates{
			Latitude: lat, Longitude: lon,
			Source: h.source, DateStamp: h.asOf,
		}
	}

	errs = append(errs, h.provenancedList(row, model.PathLegacyIdentifiers, &rec.LegacyIdentifiers)...)
	errs = append(errs, h.provenancedList(row, model.PathPreviousNames, &rec.PreviousNames)...)
	errs = append(errs, h.serviceList(row, model.PathServices, &rec.Services)...)
	errs = append(errs, h.serviceList(row, model.PathInfrastructure, &rec.Infrastructure)...)

	if len(errs) > 0 {
		sortFieldErrors(errs)
		return nil, errs
	}

	if vr := rec.Validate(); !vr.OK() {
		for _, v := range vr.Violations {
			errs = append(errs, FieldError{Field: v.Path, Code: v.Code, Detail: v.Detail})
		}
		sortFieldErrors(errs)
		return nil, errs
	}

	return rec, nil
}

// coordinate extracts one required coordinate. Absent mapping, an empty
// or unparsable cell, and an out-of-bounds value all reject the record
// citing the coordinate path; values are never clamped.
func (h *Harmonizer) coordinate(row []string, path string, min, max float64) (float64, []FieldError) {
	idx, ok := h.res.Scalars[path]
	if !ok {
		return 0, []FieldError{{
			Field: path, Code: model.CodeMissingRequiredField,
			Detail: "no source column mapped",
		}}
	}
	raw := h.cell(row, idx)
	if raw == "" {
		return 0, []FieldError{{
			Field: path, Code: model.CodeMissingRequiredField,
			Detail: "required value is empty",
		}}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, []FieldError{{
			Field: path, Code: model.CodeMissingRequiredField,
			Detail: fmt.Sprintf("%q is not a number", raw),
		}}
	}
	if v < min || v > max {
		return 0, []FieldError{{
			Field: path, Code: model.CodeMissingRequiredField,
			Detail: fmt.Sprintf("%g outside [%g, %g]", v, min, max),
		}}
	}
	return v, nil
}

// provenancedList assembles a three-way parallel list. Sources and date
// stamps default to the batch label and as-of date when the source does
// not supply them.
func (h *Harmonizer) provenancedList(row []string, path string, dst *model.ProvenancedList) []FieldError {
	values := h.listEntries(row, path+".values")
	if len(values) == 0 {
		return nil
	}
	sources := h.listEntries(row, path+".sources")
	if _, bound := h.res.Lists[path+".sources"]; !bound {
		sources = repeat(h.source, len(values))
	}
	stamps := h.listEntries(row, path+".date_stamps")
	if _, bound := h.res.Lists[path+".date_stamps"]; !bound {
		stamps = repeat(h.asOf, len(values))
	}

	l, err := model.NewProvenancedList(path, values, sources, stamps)
	if err != nil {
		return cardinalityFieldError(path, err)
	}
	*dst = l
	return nil
}

// serviceList assembles a four-way parallel list. Codes stay absent
// unless the source supplies them; source_list and date_stamp default
// to the batch label and as-of date.
func (h *Harmonizer) serviceList(row []string, path string, dst *model.ServiceList) []FieldError {
	list := h.listEntries(row, path+".list")
	if len(list) == 0 {
		return nil
	}
	codes := h.listEntries(row, path+".codes")
	if _, bound := h.res.Lists[path+".codes"]; !bound {
		codes = nil
	}
	sourceList := h.listEntries(row, path+".source_list")
	if _, bound := h.res.Lists[path+".source_list"]; !bound {
		sourceList = repeat(h.source, len(list))
	}
	stamps := h.listEntries(row, path+".date_stamp")
	if _, bound := h.res.Lists[path+".date_stamp"]; !bound {
		stamps = repeat(h.asOf, len(list))
	}

	s, err := model.NewServiceList(path, list, codes, sourceList, stamps)
	if err != nil {
		return cardinalityFieldError(path, err)
	}
	*dst = s
	return nil
}

// listEntries extracts the entries of one list-shaped binding: one
// trimmed non-empty entry per bound column, or the split parts of a
// single delimited column.
func (h *Harmonizer) listEntries(row []string, path string) []string {
	lb, ok := h.res.Lists[path]
	if !ok {
		return nil
	}

	var out []string
	if lb.Indices != nil {
		for _, idx := range lb.Indices {
			if v := h.cell(row, idx); v != "" {
				out = append(out, v)
			}
		}
		return out
	}

	raw := h.cell(row, lb.Index)
	if raw == "" {
		return nil
	}
	if lb.Delimiter == "" {
		return []string{raw}
	}
	for _, part := range strings.Split(raw, lb.Delimiter) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *Harmonizer) cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cardinalityFieldError(path string, err error) []FieldError {
	detail := err.Error()
	if ce, ok := err.(*model.CardinalityError); ok {
		detail = fmt.Sprintf("parallel sequences have unequal lengths %v", ce.Counts)
	}
	return []FieldError{{Field: path, Code: model.CodeCardinalityMismatch, Detail: detail}}
}

func sortFieldErrors(errs []FieldError) {
	sort.Slice(errs, func(i, j int) bool {
		if errs[i].Field != errs[j].Field {
			return errs[i].Field < errs[j].Field
		}
		return errs[i].Code < errs[j].Code
	})
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func repeat(v string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}
