package table

import (
	"fmt"
	"strconv"

	"github.com/go-cds/cds"
	"github.com/hashicorp/go-multierror"
)

// scanRow substitutes registered null markers into fill values and checks
// each remaining field against its column's resolved type, mutating vals
// and nulls in place. Per-field failures are aggregated so a bad row
// reports every offending column at once.
func scanRow(cols []*cds.Column, fills map[string]map[string]string, vals []string, nulls []bool) error {
	var multierr *multierror.Error
	for i, col := range cols {
		val := vals[i]
		if fill, ok := fills[col.Name][val]; ok {
			vals[i] = fill
			nulls[i] = true
			continue
		}
		switch col.Class {
		case cds.Integer:
			if _, err := strconv.ParseInt(val, 10, 64); err != nil {
				multierr = multierror.Append(multierr, fmt.Errorf("Column %s value %q is not an integer", col.Name, val))
			}
		case cds.Float:
			if _, err := strconv.ParseFloat(val, 64); err != nil {
				multierr = multierror.Append(multierr, fmt.Errorf("Column %s value %q is not a float", col.Name, val))
			}
		}
	}
	return multierr.ErrorOrNil()
}

// fillIndex shapes a Metadata's fill-value associations for marker lookup
// during row scanning
func fillIndex(meta *cds.Metadata) map[string]map[string]string {
	fills := make(map[string]map[string]string)
	for _, fv := range meta.FillValues {
		if fills[fv.Column] == nil {
			fills[fv.Column] = make(map[string]string)
		}
		fills[fv.Column][fv.Marker] = fv.Fill
	}
	return fills
}
