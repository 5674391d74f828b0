package source

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// XLSXOptions configures the XLSX reader.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
	SkipRows   int    // rows to skip before the header row
}

// ReadXLSXFile reads a spreadsheet table from disk. The first row after
// SkipRows is the header.
func ReadXLSXFile(path string, opts XLSXOptions) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "xlsx: open %s", path)
	}
	return readSheet(f, opts)
}

// ReadXLSX reads a spreadsheet table from bytes, e.g. a fetched
// published sheet.
func ReadXLSX(data []byte, opts XLSXOptions) (*Table, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open binary")
	}
	return readSheet(f, opts)
}

func readSheet(f *xlsx.File, opts XLSXOptions) (*Table, error) {
	sheet, err := pickSheet(f, opts)
	if err != nil {
		return nil, err
	}

	var table Table
	for i, row := range sheet.Rows {
		if i < opts.SkipRows {
			continue
		}
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if table.Header == nil {
			table.Header = cells
			continue
		}
		table.Rows = append(table.Rows, cells)
	}

	if table.Header == nil {
		return nil, eris.Errorf("xlsx: sheet %q has no header row", sheet.Name)
	}
	return &table, nil
}

func pickSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}
	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}
