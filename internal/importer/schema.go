package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RequiredColumns are the headers an MS Project export must carry, in the
// order they conventionally appear. Extra columns are ignored.
var RequiredColumns = []string{
	"Index", "Task Name", "Duration", "Start", "Finish", "Predecessors", "Successors",
}

// Table is a raw tabular plan: one header row plus data rows. It decouples
// conversion and validation from the spreadsheet reader so tests can build
// tables directly.
type Table struct {
	Header []string
	Rows   [][]string
}

// columnIndex maps a header name to its position, or -1 if absent.
func (t *Table) columnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// cell returns the named column's value for a row, or "" when the row is
// shorter than the header.
func (t *Table) cell(row []string, name string) string {
	idx := t.columnIndex(name)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// LoadXLSX reads the first sheet of an Excel workbook into a Table.
func LoadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}
