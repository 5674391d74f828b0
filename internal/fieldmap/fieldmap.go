// Package fieldmap defines the per-source field map artifact: the
// explicit, versioned configuration describing how a source table's
// native columns correspond to canonical Facility Record fields. The
// mapping is always supplied as data, never inferred — header drift
// (synonyms, duplicated columns) makes heuristic matching unreliable.
package fieldmap

import (
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/openmfl/mfl-cli/internal/model"
)

// Binding describes how one canonical field is populated from the
// source table. Exactly one of Column or Columns must be set.
type Binding struct {
	// Column is the authoritative source column.
	Column string `yaml:"column,omitempty"`
	// Columns binds a list-shaped canonical field to several columns,
	// one logical entry per column.
	Columns []string `yaml:"columns,omitempty"`
	// Delimiter splits a single Column into a list.
	Delimiter string `yaml:"delimiter,omitempty"`
	// Drop names physically distinct columns that duplicate Column.
	// They are consumed and discarded; designation is explicit, never
	// inferred from column order.
	Drop []string `yaml:"drop,omitempty"`
	// Language is the BCP-47 tag for a local_names binding.
	Language string `yaml:"language,omitempty"`
}

// FieldMap is one source's column mapping artifact.
type FieldMap struct {
	Version int                `yaml:"version"`
	Source  string             `yaml:"source"`
	Fields  map[string]Binding `yaml:"fields"`
}

// listTargets enumerates the bindable list-shaped canonical paths.
var listTargets = map[string]bool{
	model.PathLegacyIdentifiers + ".values":      true,
	model.PathLegacyIdentifiers + ".sources":     true,
	model.PathLegacyIdentifiers + ".date_stamps": true,
	model.PathPreviousNames + ".values":          true,
	model.PathPreviousNames + ".sources":         true,
	model.PathPreviousNames + ".date_stamps":     true,
	model.PathServices + ".list":                 true,
	model.PathServices + ".codes":                true,
	model.PathServices + ".source_list":          true,
	model.PathServices + ".date_stamp":           true,
	model.PathInfrastructure + ".list":           true,
	model.PathInfrastructure + ".codes":          true,
	model.PathInfrastructure + ".source_list":    true,
	model.PathInfrastructure + ".date_stamp":     true,
}

// scalarTargets enumerates the bindable non-provenanced scalar paths.
var scalarTargets = map[string]bool{
	model.PathLatitude:         true,
	model.PathLongitude:        true,
	model.PathCloseDateComment: true,
}

// IsListTarget reports whether path names a list-shaped binding target.
func IsListTarget(path string) bool { return listTargets[path] }

// KnownTargets returns every bindable canonical path, sorted.
func KnownTargets() []string {
	targets := model.ScalarPaths()
	for p := range listTargets {
		targets = append(targets, p)
	}
	for p := range scalarTargets {
		targets = append(targets, p)
	}
	targets = append(targets, model.PathLocalNames)
	sort.Strings(targets)
	return targets
}

func isKnownTarget(path string) bool {
	return model.IsScalarPath(path) || listTargets[path] || scalarTargets[path] || path == model.PathLocalNames
}

// Load reads and validates a field map artifact from disk.
func Load(path string) (*FieldMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fieldmap: read %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a field map artifact.
func Parse(data []byte) (*FieldMap, error) {
	var fm FieldMap
	if err := yaml.Unmarshal(data, &fm); err != nil {
		return nil, eris.Wrap(err, "fieldmap: decode yaml")
	}
	if err := fm.Validate(); err != nil {
		return nil, err
	}
	return &fm, nil
}

// Validate checks the artifact itself, independent of any source
// header. All problems are reported in one pass.
func (fm *FieldMap) Validate() error {
	var problems []string

	if fm.Version < 1 {
		problems = append(problems, "version must be >= 1")
	}
	if strings.TrimSpace(fm.Source) == "" {
		problems = append(problems, "source label is required")
	}
	if len(fm.Fields) == 0 {
		problems = append(problems, "fields must not be empty")
	}

	paths := make([]string, 0, len(fm.Fields))
	for p := range fm.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		b := fm.Fields[path]
		switch {
		case !isKnownTarget(path):
			problems = append(problems, path+": unknown canonical field")
			continue
		case b.Column == "" && len(b.Columns) == 0:
			problems = append(problems, path+": binding needs column or columns")
			continue
		case b.Column != "" && len(b.Columns) > 0:
			problems = append(problems, path+": column and columns are mutually exclusive")
			continue
		}

		if len(b.Columns) > 0 && !listTargets[path] {
			problems = append(problems, path+": columns form is only valid for list fields")
		}
		if b.Delimiter != "" && !listTargets[path] {
			problems = append(problems, path+": delimiter is only valid for list fields")
		}
		if b.Delimiter != "" && len(b.Columns) > 0 {
			problems = append(problems, path+": delimiter requires the single-column form")
		}
		for _, d := range b.Drop {
			if d == b.Column {
				problems = append(problems, path+": drop must not name the authoritative column")
			}
		}
		if len(b.Drop) > 0 && len(b.Columns) > 0 {
			problems = append(problems, path+": drop requires the single-column form")
		}

		if path == model.PathLocalNames {
			if b.Language == "" {
				problems = append(problems, path+": language tag is required")
			} else if _, err := language.Parse(b.Language); err != nil {
				problems = append(problems, path+": invalid language tag "+b.Language)
			}
		} else if b.Language != "" {
			problems = append(problems, path+": language is only valid for local_names")
		}
	}

	if len(problems) > 0 {
		return eris.Errorf("fieldmap: invalid artifact: %s", strings.Join(problems, "; "))
	}
	return nil
}
