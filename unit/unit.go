// Package unit provides a best-effort parser for CDS unit notation. It
// validates a unit token as a product or quotient of known unit symbols,
// each with an optional SI prefix, power-of-ten factor and integer
// exponent. Unparseable tokens yield a non-fatal UnitError; dimensional
// analysis is out of scope.
package unit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-cds/cds"
	"github.com/go-cds/cds/errors"
)

// unit symbols admitted by the CDS standard, without SI prefix
var baseUnits = map[string]bool{
	"-": true, "%": true, "A": true, "a": true, "al": true, "arcmin": true,
	"arcsec": true, "as": true, "AU": true, "au": true, "barn": true,
	"bit": true, "byte": true, "C": true, "cd": true, "ct": true,
	"D": true, "d": true, "deg": true, "eV": true, "F": true, "g": true,
	"h": true, "H": true, "Hz": true, "J": true, "Jy": true, "K": true,
	"lm": true, "lx": true, "m": true, "mag": true, "min": true,
	"mol": true, "N": true, "Ohm": true, "Pa": true, "pc": true,
	"pix": true, "rad": true, "Ry": true, "S": true, "s": true,
	"solLum": true, "solMass": true, "solRad": true, "sr": true,
	"Sun": true, "T": true, "V": true, "W": true, "Wb": true, "yr": true,
}

// SI prefixes, longest first so "da" wins over "d"
var siPrefixes = []string{
	"da", "h", "k", "M", "G", "T", "P", "E", "Z", "Y",
	"d", "c", "m", "u", "n", "p", "f", "a", "z", "y",
}

// one multiplicative factor: optional power-of-ten, symbol, optional exponent
var atomRegexp = regexp.MustCompile(`^(10[+-]?\d+)?([A-Za-z%]+)([+-]?\d+)?$`)

// a bare power-of-ten factor
var factorRegexp = regexp.MustCompile(`^10[+-]?\d+$|^\d+$`)

// Parser is the default best-effort CDS unit parser
type Parser struct{}

// CreateParser returns a new CDS unit Parser
func CreateParser() cds.UnitParser {
	return &Parser{}
}

// Parse validates token as CDS unit notation, returning the structured Unit
// or a non-fatal UnitError which callers treat as a warning
func (p *Parser) Parse(token string) (*cds.Unit, error) {
	if token == "" {
		return nil, errors.UnitError{Token: token, Reason: "empty token"}
	}
	for _, atom := range splitAtoms(token) {
		if atom == "" {
			return nil, errors.UnitError{Token: token, Reason: "empty factor"}
		}
		if factorRegexp.MatchString(atom) {
			continue
		}
		match := atomRegexp.FindStringSubmatch(atom)
		if match == nil {
			return nil, errors.UnitError{Token: token, Reason: fmt.Sprintf("malformed factor %q", atom)}
		}
		if !knownSymbol(match[2]) {
			return nil, errors.UnitError{Token: token, Reason: fmt.Sprintf("unknown unit symbol %q", match[2])}
		}
	}
	return &cds.Unit{Raw: token}, nil
}

// splitAtoms splits a token on the product and quotient operators,
// preserving empty factors so they can be rejected
func splitAtoms(token string) []string {
	atoms := []string{}
	var cur strings.Builder
	for _, r := range token {
		if r == '.' || r == '/' {
			atoms = append(atoms, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	return append(atoms, cur.String())
}

// knownSymbol returns true iff symbol is a base unit, optionally SI-prefixed
func knownSymbol(symbol string) bool {
	if baseUnits[symbol] {
		return true
	}
	for _, prefix := range siPrefixes {
		if strings.HasPrefix(symbol, prefix) && baseUnits[symbol[len(prefix):]] {
			return true
		}
	}
	return false
}
