package cds

// An Inputter acquires the ordered lines of a metadata or data source. A
// source is either a path-like identifier or literal multi-line content;
// implementations decide how to tell the two apart.
type Inputter interface {
	GetLines(source string) ([]string, error)
}

// A UnitParser parses a CDS unit token into a structured Unit. A non-nil
// error is a warning, not a failure: callers log it and treat the column as
// unitless. The no-unit marker "---" is handled upstream and never reaches
// a UnitParser.
type UnitParser interface {
	Parse(token string) (*Unit, error)
}

// ColumnFormat describes how a column's values render on disk, as settled
// by a ColumnFormatter from the column's stringified row values.
type ColumnFormat struct {
	FortranFormat string  // "I3", "F5.2", "E10.3", "A12", ...
	Width         int     // rendered field width in bytes
	Min           float64 // observed numeric minimum, valid iff HasLimits
	Max           float64 // observed numeric maximum, valid iff HasLimits
	HasLimits     bool
	HasNull       bool // true iff any row value is missing
}

// A ColumnFormatter infers a ColumnFormat from a column's stringified row
// values. It is invoked only on the write path, once per column.
type ColumnFormatter interface {
	Format(col *Column, values []string) (ColumnFormat, error)
}
