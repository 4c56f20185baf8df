package importer

import "fmt"

// ValidateTable checks that all required columns are present.
// Returns a slice of all validation errors found.
func ValidateTable(t *Table) []error {
	var errs []error
	for _, col := range RequiredColumns {
		if t.columnIndex(col) < 0 {
			errs = append(errs, fmt.Errorf("missing required column %q", col))
		}
	}
	return errs
}
