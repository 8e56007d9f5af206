package errors

import (
	"fmt"
)

// FormatError occurs when a metadata line matches no column definition and
// there is no previously parsed column whose description it could extend
type FormatError struct{ Line string }

// Error returns a textual representation of this FormatError
func (e FormatError) Error() string {
	return fmt.Sprintf("Line %q not parsable as a CDS column definition", e.Line)
}

// UnrecognizedTypeError occurs when a format code's leading character is not
// one of the known CDS type markers
type UnrecognizedTypeError struct{ Format, Column string }

// Error returns a textual representation of this UnrecognizedTypeError
func (e UnrecognizedTypeError) Error() string {
	return fmt.Sprintf("Unrecognized CDS format %q for column %q", e.Format, e.Column)
}

// TableNotFoundError occurs when no file pattern in a ReadMe's block headers
// matches the requested table name
type TableNotFoundError struct{ Table, Readme string }

// Error returns a textual representation of this TableNotFoundError
func (e TableNotFoundError) Error() string {
	return fmt.Sprintf("Can't find table %s in %s", e.Table, e.Readme)
}

// MissingDelimiterError occurs when a combined CDS file contains no section
// delimiter line at all
type MissingDelimiterError struct{}

// Error returns a textual representation of this MissingDelimiterError
func (e MissingDelimiterError) Error() string {
	return "No CDS section delimiter found"
}

// NoColumnsError occurs when a byte-by-byte block yields no column
// definitions at all, such as a truncated ReadMe block
type NoColumnsError struct{}

// Error returns a textual representation of this NoColumnsError
func (e NoColumnsError) Error() string {
	return "No column definitions found in byte-by-byte block"
}

// UnitError is the non-fatal result of a unit token which is not valid CDS
// notation. Callers degrade the column to unitless and continue.
type UnitError struct{ Token, Reason string }

// Error returns a textual representation of this UnitError
func (e UnitError) Error() string {
	return fmt.Sprintf("Unit %q is not valid CDS notation: %s", e.Token, e.Reason)
}
