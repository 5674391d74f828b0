package model

// Error taxonomy codes shared across validation and harmonization.
const (
	CodeSchemaViolation      = "schema_violation"
	CodeCardinalityMismatch  = "cardinality_mismatch"
	CodeUnmappedField        = "unmapped_field"
	CodeMissingRequiredField = "missing_required_field"
)

// Coordinate bounds enforced at validation time. Records outside either
// bound are rejected, never clamped.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// LocalName is a facility name in a local language, identified by a
// BCP-47 language tag.
type LocalName struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

// Ownership groups the major and sub owner of a facility.
type Ownership struct {
	MajorOwner ProvenancedField `json:"major_owner,omitzero"`
	SubOwner   ProvenancedField `json:"sub_owner,omitzero"`
}

// FacilityHead identifies the person in charge of a facility.
type FacilityHead struct {
	Name  ProvenancedField `json:"name,omitzero"`
	Email ProvenancedField `json:"email,omitzero"`
	Phone ProvenancedField `json:"phone,omitzero"`
}

// Contact groups the ways of reaching a facility.
type Contact struct {
	FacilityHead    FacilityHead     `json:"facility_head,omitzero"`
	PhysicalAddress ProvenancedField `json:"physical_address,omitzero"`
	PostalAddress   ProvenancedField `json:"postal_address,omitzero"`
	Email           ProvenancedField `json:"email,omitzero"`
	Landline        ProvenancedField `json:"landline,omitzero"`
	Mobile          ProvenancedField `json:"mobile,omitzero"`
	Website         ProvenancedField `json:"website,omitzero"`
}

// AdminLevel is one administrative subdivision level.
type AdminLevel struct {
	Name         ProvenancedField `json:"name,omitzero"`
	Abbreviation ProvenancedField `json:"abbreviation,omitzero"`
	Code         ProvenancedField `json:"code,omitzero"`
}

// AdminRegion holds up to four administrative levels. The depth is
// fixed at four and never recursive.
type AdminRegion struct {
	Admin1 AdminLevel `json:"admin1,omitzero"`
	Admin2 AdminLevel `json:"admin2,omitzero"`
	Admin3 AdminLevel `json:"admin3,omitzero"`
	Admin4 AdminLevel `json:"admin4,omitzero"`
}

// Coordinates is the one required attribute group of a facility record.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source,omitempty"`
	DateStamp string  `json:"date_stamp,omitempty"`
}

// CloseDate is a provenanced close date with a free-text comment.
type CloseDate struct {
	ProvenancedField
	Comment string `json:"comment,omitempty"`
}

// IsZero reports whether both the provenanced value and the comment are
// empty. Shadows the promoted method so the comment is not ignored.
func (c CloseDate) IsZero() bool {
	return c.ProvenancedField.IsZero() && c.Comment == ""
}

// Status describes the operational state of a facility.
type Status struct {
	OperationalStatus ProvenancedField `json:"operational_status,omitzero"`
	OpenDate          ProvenancedField `json:"open_date,omitzero"`
	CloseDate         CloseDate        `json:"close_date,omitzero"`
}

// FacilityRecord is the canonical harmonized description of one health
// facility within one country dataset. It is keyed by Identifier;
// LegacyIdentifiers exist for traceability only and are never used for
// joins across datasets. FacilityType is free text under each country's
// own vocabulary and is deliberately not normalized across countries.
type FacilityRecord struct {
	Identifier        ProvenancedField `json:"identifier,omitzero"`
	LegacyIdentifiers ProvenancedList  `json:"legacy_identifiers,omitzero"`
	Name              ProvenancedField `json:"name,omitzero"`
	LocalNames        []LocalName      `json:"local_names,omitempty"`
	PreviousNames     ProvenancedList  `json:"previous_names,omitzero"`
	FacilityType      ProvenancedField `json:"facility_type,omitzero"`
	Ownership         Ownership        `json:"ownership,omitzero"`
	Contact           Contact          `json:"contact,omitzero"`
	AdminRegion       AdminRegion      `json:"admin_region,omitzero"`
	Coordinates       Coordinates      `json:"coordinates"`
	Status            Status           `json:"status,omitzero"`
	Services          ServiceList      `json:"services,omitzero"`
	Infrastructure    ServiceList      `json:"infrastructure,omitzero"`
}
