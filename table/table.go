// Package table wires the CDS format components into read and write entry
// points. A Reader locates and parses a table's byte-by-byte metadata
// (inline or in a separate ReadMe), then tokenizes and coerces the data
// rows; a Writer computes a byte-exact layout and emits the metadata block
// followed by left-aligned fixed-width data lines.
package table

import (
	"fmt"
	"strconv"

	"github.com/go-cds/cds"
)

// Table is an assembled CDS table: the parsed metadata plus the decoded
// cell values, stored row-major as strings after null-marker substitution.
// Cells whose raw field matched a registered null marker hold the column's
// fill value and are flagged null.
type Table struct {
	Meta  *cds.Metadata
	Rows  [][]string
	nulls [][]bool
}

// NumRows returns the number of data rows in this Table
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns in this Table
func (t *Table) NumColumns() int {
	return len(t.Meta.Cols)
}

// IsNull returns true iff the given cell decoded from a null marker
func (t *Table) IsNull(colName string, rowNum int) bool {
	i, err := t.colIndex(colName)
	if err != nil {
		return false
	}
	return t.nulls[rowNum][i]
}

// GetString retrieves a single cell as its decoded string value
func (t *Table) GetString(colName string, rowNum int) (string, error) {
	i, err := t.colIndex(colName)
	if err != nil {
		return "", err
	}
	return t.Rows[rowNum][i], nil
}

// GetInt64 retrieves a single cell coerced to an integer
func (t *Table) GetInt64(colName string, rowNum int) (int64, error) {
	val, err := t.GetString(colName, rowNum)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// GetFloat64 retrieves a single cell coerced to a float. Null Float cells
// decode as NaN.
func (t *Table) GetFloat64(colName string, rowNum int) (float64, error) {
	val, err := t.GetString(colName, rowNum)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(val, 64)
}

func (t *Table) colIndex(colName string) (int, error) {
	for i, col := range t.Meta.Cols {
		if col.Name == colName {
			return i, nil
		}
	}
	return 0, fmt.Errorf("Table does not contain column with name %s", colName)
}
