package data

import (
	"strings"

	"github.com/go-cds/cds"
)

// Splitter joins formatted field values into left-aligned fixed-width data
// lines and extracts field values back out of them by byte range. Unlike a
// generic fixed-width splitter it left-aligns (pads with trailing spaces)
// and emits no bookend characters.
type Splitter struct {
	Delimiter    string
	DelimiterPad string
}

// CreateSplitter returns a Splitter with the default single-space delimiter
func CreateSplitter() *Splitter {
	return &Splitter{Delimiter: " "}
}

// Join left-pads each value with trailing spaces to its column width and
// joins the padded values with the delimiter
func (s *Splitter) Join(vals []string, widths []int) string {
	padded := make([]string, len(vals))
	for i, val := range vals {
		if gap := widths[i] - len(val); gap > 0 {
			val += strings.Repeat(" ", gap)
		}
		padded[i] = val
	}
	return strings.Join(padded, s.DelimiterPad+s.Delimiter+s.DelimiterPad)
}

// Split slices each column's byte range out of a data line, trimming
// surrounding blanks. Ranges beyond the end of a short line yield empty
// values rather than failing.
func (s *Splitter) Split(line string, cols []*cds.Column) []string {
	vals := make([]string, len(cols))
	for i, col := range cols {
		start, end := col.Start, col.End+1
		if start > len(line) {
			start = len(line)
		}
		if end > len(line) {
			end = len(line)
		}
		vals[i] = strings.TrimSpace(line[start:end])
	}
	return vals
}
