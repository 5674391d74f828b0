package model

import "sort"

// scalarFields binds every provenanced scalar canonical path to its
// location inside a FacilityRecord. Coordinates and the close-date
// comment are not provenanced scalars and are handled separately by
// callers.
var scalarFields = map[string]func(*FacilityRecord) *ProvenancedField{
	"identifier":                  func(r *FacilityRecord) *ProvenancedField { return &r.Identifier },
	"name":                        func(r *FacilityRecord) *ProvenancedField { return &r.Name },
	"facility_type":               func(r *FacilityRecord) *ProvenancedField { return &r.FacilityType },
	"ownership.major_owner":       func(r *FacilityRecord) *ProvenancedField { return &r.Ownership.MajorOwner },
	"ownership.sub_owner":         func(r *FacilityRecord) *ProvenancedField { return &r.Ownership.SubOwner },
	"contact.facility_head.name":  func(r *FacilityRecord) *ProvenancedField { return &r.Contact.FacilityHead.Name },
	"contact.facility_head.email": func(r *FacilityRecord) *ProvenancedField { return &r.Contact.FacilityHead.Email },
	"contact.facility_head.phone": func(r *FacilityRecord) *ProvenancedField { return &r.Contact.FacilityHead.Phone },
	"contact.physical_address":    func(r *FacilityRecord) *ProvenancedField { return &r.Contact.PhysicalAddress },
	"contact.postal_address":      func(r *FacilityRecord) *ProvenancedField { return &r.Contact.PostalAddress },
	"contact.email":               func(r *FacilityRecord) *ProvenancedField { return &r.Contact.Email },
	"contact.landline":            func(r *FacilityRecord) *ProvenancedField { return &r.Contact.Landline },
	"contact.mobile":              func(r *FacilityRecord) *ProvenancedField { return &r.Contact.Mobile },
	"contact.website":             func(r *FacilityRecord) *ProvenancedField { return &r.Contact.Website },

	"admin_region.admin1.name":         func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin1.Name },
	"admin_region.admin1.abbreviation": func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin1.Abbreviation },
	"admin_region.admin1.code":         func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin1.Code },
	"admin_region.admin2.name":         func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin2.Name },
	"admin_region.admin2.abbreviation": func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin2.Abbreviation },
	"admin_region.admin2.code":         func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin2.Code },
	"admin_region.admin3.name":         func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin3.Name },
	"admin_region.admin3.abbreviation": func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin3.Abbreviation },
	"admin_region.admin3.code":         func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin3.Code },
	"admin_region.admin4.name":         func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin4.Name },
	"admin_region.admin4.abbreviation": func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin4.Abbreviation },
	"admin_region.admin4.code":         func(r *FacilityRecord) *ProvenancedField { return &r.AdminRegion.Admin4.Code },

	"status.operational_status": func(r *FacilityRecord) *ProvenancedField { return &r.Status.OperationalStatus },
	"status.open_date":          func(r *FacilityRecord) *ProvenancedField { return &r.Status.OpenDate },
	"status.close_date":         func(r *FacilityRecord) *ProvenancedField { return &r.Status.CloseDate.ProvenancedField },
}

// Non-provenanced canonical paths. The coordinate pair is the one hard
// requirement of the schema.
const (
	PathLatitude         = "coordinates.latitude"
	PathLongitude        = "coordinates.longitude"
	PathCloseDateComment = "status.close_date.comment"
	PathLocalNames       = "local_names"
)

// List-shaped canonical paths and their parallel sub-sequences.
const (
	PathLegacyIdentifiers = "legacy_identifiers"
	PathPreviousNames     = "previous_names"
	PathServices          = "services"
	PathInfrastructure    = "infrastructure"
)

// ScalarPaths returns every provenanced scalar canonical path in sorted
// order.
func ScalarPaths() []string {
	paths := make([]string, 0, len(scalarFields))
	for p := range scalarFields {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// IsScalarPath reports whether path names a provenanced scalar field.
func IsScalarPath(path string) bool {
	_, ok := scalarFields[path]
	return ok
}

// Field returns the provenanced scalar at the given canonical path.
func (r *FacilityRecord) Field(path string) (ProvenancedField, bool) {
	get, ok := scalarFields[path]
	if !ok {
		return ProvenancedField{}, false
	}
	return *get(r), true
}

// SetField assigns the provenanced scalar at the given canonical path.
// Returns false if the path is not a known scalar.
func (r *FacilityRecord) SetField(path string, f ProvenancedField) bool {
	get, ok := scalarFields[path]
	if !ok {
		return false
	}
	*get(r) = f
	return true
}
