// Package colfmt provides the default per-column formatter for the write
// path: it scans a column's stringified row values to settle a fortran
// format code, rendered width, observed numeric bounds and null presence.
package colfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-cds/cds"
)

// Formatter is the default cds.ColumnFormatter
type Formatter struct{}

// CreateFormatter returns a new default Formatter
func CreateFormatter() cds.ColumnFormatter {
	return &Formatter{}
}

// Format scans values to produce the column's on-disk format. Empty values
// count as missing. Bounds are reported only when every present value of a
// numeric column parses cleanly.
func (f *Formatter) Format(col *cds.Column, values []string) (cds.ColumnFormat, error) {
	result := cds.ColumnFormat{}
	width := col.Width
	decimals := 0
	exponential := false
	numeric := true
	any := false
	var min, max float64
	for _, val := range values {
		// "nan" is the decoded fill value of a missing Float cell
		if val == "" || (col.Class == cds.Float && strings.EqualFold(val, "nan")) {
			result.HasNull = true
			continue
		}
		if len(val) > width {
			width = len(val)
		}
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			numeric = false
			continue
		}
		if strings.ContainsAny(val, "eE") {
			exponential = true
		}
		if d := countDecimals(val); d > decimals {
			decimals = d
		}
		if !any || parsed < min {
			min = parsed
		}
		if !any || parsed > max {
			max = parsed
		}
		any = true
	}
	result.Width = width

	switch col.Class {
	case cds.Integer:
		result.FortranFormat = fmt.Sprintf("I%d", width)
	case cds.Float:
		if exponential {
			result.FortranFormat = fmt.Sprintf("E%d.%d", width, decimals)
		} else {
			result.FortranFormat = fmt.Sprintf("F%d.%d", width, decimals)
		}
	default:
		result.FortranFormat = fmt.Sprintf("A%d", width)
	}

	if col.Class != cds.String && numeric && any {
		result.Min = min
		result.Max = max
		result.HasLimits = true
	}
	return result, nil
}

// countDecimals returns the number of digits after the decimal point,
// excluding any exponent suffix
func countDecimals(val string) int {
	dot := strings.IndexByte(val, '.')
	if dot < 0 {
		return 0
	}
	frac := val[dot+1:]
	if e := strings.IndexAny(frac, "eE"); e >= 0 {
		frac = frac[:e]
	}
	return len(frac)
}
