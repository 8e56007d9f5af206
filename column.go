package cds

// Column describes one field of a CDS table: the byte range it occupies
// within a data line, its declared format, physical unit, free-text
// description and missing-value behavior. Start and End are 0-based
// inclusive byte offsets; the format requires ranges to be non-overlapping
// and strictly increasing in declaration order, though this is not enforced
// by construction (see Metadata.Validate).
type Column struct {
	Name        string
	Start       int
	End         int
	RawType     string
	Class       TypeClass
	Unit        *Unit  // nil when the unit token is the no-unit marker "---"
	Description string
	Null        string // literal missing-value marker; "" when the column has none
	Nullable    bool
	Order       string // monotonicity hint from the description grammar; carried, not interpreted

	// The fields below are populated on the write path only, by a
	// ColumnFormatter and the byte-by-byte layout pass.
	Width         int
	FortranFormat string
	Min           float64
	Max           float64
	HasLimits     bool
	HasNull       bool
}

// Clone returns a copy of this Column
func (c *Column) Clone() *Column {
	clone := *c
	return &clone
}

// FillValue returns the value substituted for this column's null marker
// when decoding: "nan" for Float columns, "0" otherwise.
func (c *Column) FillValue() string {
	if c.Class == Float {
		return "nan"
	}
	return "0"
}

// SingleByte returns true iff this column occupies exactly one byte
func (c *Column) SingleByte() bool {
	return c.Start == c.End
}

// Unit is a physical unit attached to a column, retained in CDS notation.
// Dimensional semantics are out of scope; Raw is the validated token.
type Unit struct {
	Raw string
}

// ToString produces a string representation of a Unit. A nil Unit renders
// as the empty string so it can be padded into the byte-by-byte table.
func (u *Unit) ToString() string {
	if u == nil {
		return ""
	}
	return u.Raw
}
