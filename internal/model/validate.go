package model

import (
	"fmt"

	"golang.org/x/text/language"
)

// Violation describes one failed check at a canonical field path.
type Violation struct {
	Path   string `json:"path"`
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// ValidationResult aggregates every violation found in one record so a
// caller can report all problems from one source row in a single pass.
type ValidationResult struct {
	Violations []Violation `json:"violations,omitempty"`
}

// OK reports whether the record passed validation.
func (v ValidationResult) OK() bool { return len(v.Violations) == 0 }

func (v *ValidationResult) add(path, code, detail string) {
	v.Violations = append(v.Violations, Violation{Path: path, Code: code, Detail: detail})
}

// Validate checks type and shape conformance of the whole record: the
// coordinate bounds, the source/date_stamp pairing of every provenanced
// scalar, the equal-length invariant of every parallel list, and the
// language tags of local names. Pure; no side effects.
func (r *FacilityRecord) Validate() ValidationResult {
	var res ValidationResult

	if r.Coordinates.Latitude < MinLatitude || r.Coordinates.Latitude > MaxLatitude {
		res.add(PathLatitude, CodeSchemaViolation,
			fmt.Sprintf("latitude %g outside [%g, %g]", r.Coordinates.Latitude, MinLatitude, MaxLatitude))
	}
	if r.Coordinates.Longitude < MinLongitude || r.Coordinates.Longitude > MaxLongitude {
		res.add(PathLongitude, CodeSchemaViolation,
			fmt.Sprintf("longitude %g outside [%g, %g]", r.Coordinates.Longitude, MinLongitude, MaxLongitude))
	}

	for _, path := range ScalarPaths() {
		f, _ := r.Field(path)
		checkPairing(&res, path, f.Source, f.DateStamp)
	}
	checkPairing(&res, "coordinates", r.Coordinates.Source, r.Coordinates.DateStamp)

	checkList(&res, PathLegacyIdentifiers, r.LegacyIdentifiers)
	checkList(&res, PathPreviousNames, r.PreviousNames)
	checkServiceList(&res, PathServices, r.Services)
	checkServiceList(&res, PathInfrastructure, r.Infrastructure)

	for i, ln := range r.LocalNames {
		path := fmt.Sprintf("%s[%d]", PathLocalNames, i)
		if ln.Name == "" {
			res.add(path+".name", CodeSchemaViolation, "local name without a name")
		}
		if ln.Language == "" {
			res.add(path+".language", CodeSchemaViolation, "local name without a language tag")
		} else if _, err := language.Parse(ln.Language); err != nil {
			res.add(path+".language", CodeSchemaViolation,
				fmt.Sprintf("%q is not a valid BCP-47 language tag", ln.Language))
		}
	}

	return res
}

// checkPairing enforces that source and date_stamp are either both
// present or both absent.
func checkPairing(res *ValidationResult, path, source, dateStamp string) {
	if (source == "") != (dateStamp == "") {
		res.add(path, CodeSchemaViolation, "source and date_stamp must be present together")
	}
}

func checkList(res *ValidationResult, path string, l ProvenancedList) {
	if len(l.Sources) != len(l.Values) || len(l.DateStamps) != len(l.Values) {
		res.add(path, CodeCardinalityMismatch,
			fmt.Sprintf("values/sources/date_stamps lengths %d/%d/%d",
				len(l.Values), len(l.Sources), len(l.DateStamps)))
	}
}

func checkServiceList(res *ValidationResult, path string, s ServiceList) {
	mismatch := func(seq []string) bool { return seq != nil && len(seq) != len(s.List) }
	if mismatch(s.Codes) || mismatch(s.SourceList) || mismatch(s.DateStamps) {
		res.add(path, CodeCardinalityMismatch,
			fmt.Sprintf("list/codes/source_list/date_stamp lengths %d/%d/%d/%d",
				len(s.List), len(s.Codes), len(s.SourceList), len(s.DateStamps)))
	}
}
