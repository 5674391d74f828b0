package fieldmap

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/openmfl/mfl-cli/internal/model"
)

// ListBinding is a list-shaped binding resolved against a header.
type ListBinding struct {
	// Indices holds one column index per logical entry (columns form).
	Indices []int
	// Index is the single delimited column (delimiter form); -1 when
	// the columns form is in use.
	Index int
	// Delimiter splits the single column. Empty means the column holds
	// exactly one entry.
	Delimiter string
}

// LocalBinding is a resolved local_names binding.
type LocalBinding struct {
	Index    int
	Language string
}

// Resolved binds a validated field map to one concrete source header.
type Resolved struct {
	Map *FieldMap

	// Scalars maps canonical scalar paths (provenanced fields plus
	// coordinates and the close-date comment) to column indices.
	Scalars map[string]int
	// Lists maps list-shaped canonical paths to their resolution.
	Lists map[string]ListBinding
	// Locals holds resolved local_names bindings.
	Locals []LocalBinding

	// Unmapped lists canonical fields with no usable binding for this
	// source. Expected: a country may simply not collect an attribute.
	Unmapped []string
	// Unused lists header columns the map never consumes, in header
	// order. Surfaced so unexplained columns are auditable.
	Unused []string
}

// Resolve binds the map's column names to indices in the given header.
// A mapped column absent from the header leaves its canonical field
// unmapped (non-fatal). A mapped column name appearing more than once
// in the header is ambiguous and fails resolution: duplicates must be
// physically distinct names designated via drop.
func (fm *FieldMap) Resolve(header []string) (*Resolved, error) {
	byName := make(map[string][]int, len(header))
	for i, col := range header {
		name := strings.TrimSpace(col)
		byName[name] = append(byName[name], i)
	}

	res := &Resolved{
		Map:     fm,
		Scalars: make(map[string]int),
		Lists:   make(map[string]ListBinding),
	}
	consumed := make(map[int]bool)

	lookup := func(path, col string) (int, bool, error) {
		idxs, ok := byName[col]
		if !ok {
			return 0, false, nil
		}
		if len(idxs) > 1 {
			return 0, false, eris.Errorf(
				"fieldmap: column %q for %s appears %d times in header; rename or drop the duplicates explicitly",
				col, path, len(idxs))
		}
		return idxs[0], true, nil
	}

	paths := make([]string, 0, len(fm.Fields))
	for p := range fm.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		b := fm.Fields[path]

		// Dropped duplicates are consumed even when the authoritative
		// column is missing, so they never show up as unused.
		for _, d := range b.Drop {
			if idxs, ok := byName[d]; ok {
				for _, i := range idxs {
					consumed[i] = true
				}
			}
		}

		if len(b.Columns) > 0 {
			var indices []int
			var missing []string
			for _, col := range b.Columns {
				idx, ok, err := lookup(path, col)
				if err != nil {
					return nil, err
				}
				if !ok {
					missing = append(missing, col)
					continue
				}
				indices = append(indices, idx)
			}
			if len(missing) > 0 && len(indices) > 0 {
				return nil, eris.Errorf(
					"fieldmap: %s: columns %v missing from header while others are present; the entry count would silently change",
					path, missing)
			}
			if len(indices) == 0 {
				res.Unmapped = append(res.Unmapped, path)
				continue
			}
			for _, i := range indices {
				consumed[i] = true
			}
			res.Lists[path] = ListBinding{Indices: indices, Index: -1}
			continue
		}

		idx, ok, err := lookup(path, b.Column)
		if err != nil {
			return nil, err
		}
		if !ok {
			res.Unmapped = append(res.Unmapped, path)
			continue
		}
		consumed[idx] = true

		switch {
		case path == model.PathLocalNames:
			res.Locals = append(res.Locals, LocalBinding{Index: idx, Language: b.Language})
		case listTargets[path]:
			res.Lists[path] = ListBinding{Index: idx, Delimiter: b.Delimiter}
		default:
			res.Scalars[path] = idx
		}
	}

	// Canonical fields the map never mentions are unmapped too.
	for _, path := range KnownTargets() {
		if _, bound := fm.Fields[path]; !bound {
			res.Unmapped = append(res.Unmapped, path)
		}
	}
	sort.Strings(res.Unmapped)

	for i, col := range header {
		if !consumed[i] {
			res.Unused = append(res.Unused, strings.TrimSpace(col))
		}
	}

	return res, nil
}
