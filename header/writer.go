package header

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-cds/cds"
)

const (
	// maxLineWidth is the width at which byte-by-byte lines soft-wrap
	maxLineWidth = 80
	// maxIntLimit bounds the integer values annotated into descriptions
	maxIntLimit = 10000000
)

var sectionDelimiterLine = strings.Repeat("-", maxLineWidth)

var byteByByteTemplate = []string{
	"Byte-by-byte Description of file: %s",
	sectionDelimiterLine,
	" Bytes Format Units  Label     Explanations",
	sectionDelimiterLine,
	"%s",
	sectionDelimiterLine,
}

// WriteByteByByte renders the column table of a byte-by-byte block from the
// descriptors and the stringified row values, column-major (colVals[i] holds
// every row's value for meta.Cols[i]). Byte ranges are laid out
// sequentially from byte 1 with a two-byte gap between columns and written
// back onto the descriptors, so a subsequent read can reuse them exactly.
// positional additionally widens each column to its label's length.
func WriteByteByByte(meta *cds.Metadata, colVals [][]string, formatter cds.ColumnFormatter, positional bool) (string, error) {
	// first pass: on-the-wire widths from the stringified values
	total := 0
	for i, col := range meta.Cols {
		width := 0
		for _, val := range colVals[i] {
			if len(val) > width {
				width = len(val)
			}
		}
		if positional && len(col.Name) > width {
			width = len(col.Name)
		}
		col.Width = width
		total += width
	}

	// second pass: the per-column formatter settles format code and bounds
	for i, col := range meta.Cols {
		format, err := formatter.Format(col, colVals[i])
		if err != nil {
			return "", err
		}
		col.FortranFormat = format.FortranFormat
		if format.Width > 0 {
			col.Width = format.Width
		}
		col.Min = format.Min
		col.Max = format.Max
		col.HasLimits = format.HasLimits
		col.HasNull = format.HasNull
	}

	// field widths are computed once so the table stays vertically aligned;
	// the range width scales with the total number of bytes in a row
	szRange := len(strconv.Itoa(total))
	szLabel := 7
	for _, col := range meta.Cols {
		if len(col.Name) > szLabel {
			szLabel = len(col.Name)
		}
	}
	indent := strings.Repeat(" ", szRange*2+1+szLabel+16)

	var buff strings.Builder
	startb := 1
	for _, col := range meta.Cols {
		endb := startb + col.Width - 1
		col.Start = startb - 1
		col.End = endb - 1

		description := col.Description
		nullflag := ""
		if col.HasNull {
			nullflag = "?"
		}
		borne := boundsAnnotation(col)
		description = fmt.Sprintf("%s%s %s", borne, nullflag, description)

		var byteRange string
		if col.SingleByte() {
			byteRange = fmt.Sprintf("%*d", szRange*2+1, startb)
		} else {
			byteRange = fmt.Sprintf("%*d-%*d", szRange, startb, szRange, endb)
		}
		newline := fmt.Sprintf("%s %1s %-6s %-6s %-*s %s",
			byteRange, "", col.FortranFormat, unitToken(col), szLabel, col.Name, description)

		if len(newline) > maxLineWidth {
			for _, sub := range wrapLine(newline, maxLineWidth, indent) {
				buff.WriteString(sub)
				buff.WriteString("\n")
			}
		} else {
			buff.WriteString(newline)
			buff.WriteString("\n")
		}
		startb = endb + 2
	}

	if len(meta.Notes) > 0 {
		buff.WriteString(sectionDelimiterLine)
		buff.WriteString("\n")
		for _, note := range meta.Notes {
			buff.WriteString(note)
			buff.WriteString("\n")
		}
		buff.WriteString(sectionDelimiterLine)
		buff.WriteString("\n")
	}
	return buff.String(), nil
}

// unitToken renders a column's unit for the byte-by-byte table, using the
// format's no-unit marker when the column is unitless
func unitToken(col *cds.Column) string {
	if col.Unit == nil {
		return "---"
	}
	return col.Unit.Raw
}

// boundsAnnotation renders the bracketed numeric-bounds token prepended to
// a column's description. Integer bounds are annotated only when both
// magnitudes are below maxIntLimit, collapsing to a single value when min
// equals max; floating bounds are widened outward to two decimal digits.
func boundsAnnotation(col *cds.Column) string {
	if !col.HasLimits {
		return ""
	}
	switch {
	case strings.HasPrefix(col.FortranFormat, "I"):
		if math.Abs(col.Min) < maxIntLimit && math.Abs(col.Max) < maxIntLimit {
			if col.Min == col.Max {
				return fmt.Sprintf("[%d]", int64(col.Min))
			}
			return fmt.Sprintf("[%d/%d]", int64(col.Min), int64(col.Max))
		}
	case strings.HasPrefix(col.FortranFormat, "E"), strings.HasPrefix(col.FortranFormat, "F"):
		return fmt.Sprintf("[%s/%s]",
			formatFloatBound(math.Floor(col.Min*100)/100),
			formatFloatBound(math.Ceil(col.Max*100)/100))
	}
	return ""
}

// formatFloatBound renders a floating bound with its shortest exact form,
// keeping a decimal point even for whole values
func formatFloatBound(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// wrapLine soft-wraps a rendered line at word boundaries so no sub-line
// exceeds width, with continuation lines indented to align under the
// description column. Words longer than the remaining width are hard-cut.
func wrapLine(line string, width int, indent string) []string {
	// the indent must leave room on each line or the remainder never shrinks
	if len(indent) >= width {
		indent = strings.Repeat(" ", width/2)
	}
	out := []string{}
	cur := line
	for len(cur) > width {
		cut := strings.LastIndex(cur[:width+1], " ")
		if cut <= len(indent) {
			cut = width
		}
		out = append(out, strings.TrimRight(cur[:cut], " "))
		cur = indent + strings.TrimLeft(cur[cut:], " ")
	}
	return append(out, cur)
}

// RenderBlock embeds a rendered column table in the fixed byte-by-byte
// template: a title line naming the data file, the caption, and the framing
// section delimiters.
func RenderBlock(fileName string, body string) string {
	return fmt.Sprintf(strings.Join(byteByByteTemplate, "\n"),
		fileName, strings.TrimSuffix(body, "\n"))
}
