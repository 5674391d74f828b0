// Package source reads MFL source tables: local CSV and XLSX files and
// published sheets fetched over HTTP. Reads are synchronous and single
// pass; a source either loads whole or fails outright.
package source

// Table is one source dataset: a header row and its data rows. Column
// headers are arbitrary per source; the field map gives them meaning.
type Table struct {
	Header []string
	Rows   [][]string
}
