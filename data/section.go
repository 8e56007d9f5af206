// Package data locates and shapes the data section of CDS tables: skipping
// past inline metadata, joining formatted fields into left-aligned
// fixed-width lines, and slicing fields back out by byte range.
package data

import (
	"github.com/go-cds/cds"
	"github.com/go-cds/cds/errors"
)

// SkipHeader returns the data rows of a combined CDS file by dropping
// everything up to and including the last section delimiter line. Data
// files read alongside a separate ReadMe carry no header and must not pass
// through here. A file with no delimiter at all is not a combined CDS file.
func SkipHeader(lines []string) ([]string, error) {
	last := -1
	for i, line := range lines {
		if cds.IsSectionDelimiter(line) {
			last = i
		}
	}
	if last < 0 {
		return nil, errors.MissingDelimiterError{}
	}
	return lines[last+1:], nil
}
