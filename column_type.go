package cds

import (
	"regexp"
	"strings"

	"github.com/go-cds/cds/errors"
)

// TypeClass identifies the host type a CDS format code resolves to.
type TypeClass int

const (
	// Float is the TypeClass of E and F format codes
	Float TypeClass = iota
	// Integer is the TypeClass of I format codes
	Integer
	// String is the TypeClass of A format codes
	String
)

// ToString produces a string representation of a TypeClass
func (t TypeClass) ToString() string {
	switch t {
	case Integer:
		return "Integer"
	case String:
		return "String"
	default:
		return "Float"
	}
}

// a format code is an optional repeat count followed by the type marker
var typeCodeRegexp = regexp.MustCompile(`^\d*(\S)`)

// ResolveTypeClass derives a TypeClass from a raw CDS format code such as
// "I3", "F5.2" or "A10". Codes whose leading significant character is not a
// known type marker produce an UnrecognizedTypeError.
func ResolveTypeClass(rawType string, colName string) (TypeClass, error) {
	match := typeCodeRegexp.FindStringSubmatch(strings.ToLower(strings.TrimSpace(rawType)))
	if match != nil {
		switch match[1] {
		case "e", "f":
			return Float, nil
		case "i":
			return Integer, nil
		case "a":
			return String, nil
		}
	}
	return Float, errors.UnrecognizedTypeError{Format: rawType, Column: colName}
}
