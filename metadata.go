package cds

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// FillValue associates one accepted spelling of a column's missing-value
// marker with the value substituted for it during decoding. This is the
// contract surfaced to the value-decoding collaborator: a column whose
// marker is a single dash registers four entries, one per accepted variant.
type FillValue struct {
	Marker string
	Fill   string
	Column string
}

// Metadata is the parsed byte-by-byte description of a single table: the
// ordered column descriptors, any trailing free-text notes, and the
// registered fill-value associations. A Metadata is built from scratch on
// every read or write call and is never shared across invocations.
type Metadata struct {
	Cols       []*Column
	Notes      []string
	FillValues []FillValue
}

// ColumnNames returns the column names in declaration order
func (m *Metadata) ColumnNames() []string {
	names := make([]string, len(m.Cols))
	for i, col := range m.Cols {
		names[i] = col.Name
	}
	return names
}

// GetColumn returns the descriptor with the given name
func (m *Metadata) GetColumn(name string) (*Column, error) {
	for _, col := range m.Cols {
		if col.Name == name {
			return col, nil
		}
	}
	return nil, fmt.Errorf("Metadata does not contain column with name %s", name)
}

// Validate checks the descriptor list against the format's layout rules:
// unique names, Start <= End, and byte ranges which do not overlap and
// strictly increase in declaration order. All violations are aggregated.
func (m *Metadata) Validate() error {
	var multierr *multierror.Error
	seen := make(map[string]bool)
	prevEnd := -1
	for _, col := range m.Cols {
		if seen[col.Name] {
			multierr = multierror.Append(multierr, fmt.Errorf("duplicate column name %s", col.Name))
		}
		seen[col.Name] = true
		if col.Start > col.End {
			multierr = multierror.Append(multierr, fmt.Errorf("column %s byte range starts after it ends (%d > %d)", col.Name, col.Start, col.End))
		}
		if col.Start <= prevEnd {
			multierr = multierror.Append(multierr, fmt.Errorf("column %s byte range overlaps or precedes the previous column", col.Name))
		}
		prevEnd = col.End
	}
	return multierr.ErrorOrNil()
}

// IsSectionDelimiter returns true iff line delimits CDS sections: a line
// beginning with at least six dashes or six equals signs.
func IsSectionDelimiter(line string) bool {
	return strings.HasPrefix(line, "------") || strings.HasPrefix(line, "======")
}
