package header

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-cds/cds"
	cdserrors "github.com/go-cds/cds/errors"
	"github.com/go-cds/cds/logging"
)

var descriptionHeaderRegexp = regexp.MustCompile(`(?i)^\s*Byte-by-byte Description`)

// one column definition: optional start offset, end offset, format code,
// unit token, label, optional free-text description
var colDefRegexp = regexp.MustCompile(
	`^\s*(?P<start>\d+\s*-)?\s*` +
		`(?P<end>\d+)\s+` +
		`(?P<format>[\w.]+)\s+` +
		`(?P<units>\S+)\s+` +
		`(?P<name>\S+)` +
		`(?:\s+(?P<descr>\S.*))?`)

// the null/bounds/order mini-grammar embedded in descriptions: an optional
// bracketed limits token, "?" marking nullability, an optional "=<token>"
// null marker, and an optional order specifier, followed by the real text
var nullSpecRegexp = regexp.MustCompile(
	`^(?P<limits>[\[\]]\S*[\[\]])?` +
		`\?` +
		`(?:(?P<equal>=)(?P<nullval>\S*))?` +
		`(?P<order>[-+]?=?)` +
		`(?:\s*(?P<descr>\S.*))?`)

// ParseColumns builds the ordered column descriptors from the lines of a
// byte-by-byte metadata block (or of a whole combined file, whose leading
// sections are skipped). Lines which do not match the column grammar extend
// the previous column's description; one which matches nothing with no
// prior column aborts the parse, as does a block yielding no columns at
// all. Unit tokens which fail the UnitParser are logged at WARN and the
// column degrades to unitless.
func ParseColumns(lines []string, units cds.UnitParser, log *logging.Logger) (*cds.Metadata, error) {
	// column definitions begin 4 lines after the block header, skipping the
	// header itself, the opening delimiter and the caption line
	iColDef := -4
	found := false
	for i, line := range lines {
		if descriptionHeaderRegexp.MatchString(line) {
			found = true
			iColDef = i
		} else if found {
			iColDef = i - 1
			break
		}
	}

	meta := &cds.Metadata{}
	start := iColDef + 4
	if start < 0 {
		start = 0
	}
	for _, line := range lines[min(start, len(lines)):] {
		if cds.IsSectionDelimiter(line) {
			break
		}
		match := colDefRegexp.FindStringSubmatch(line)
		if match == nil {
			if len(meta.Cols) == 0 {
				return nil, cdserrors.FormatError{Line: line}
			}
			// continuation of the previous column's description
			last := meta.Cols[len(meta.Cols)-1]
			last.Description += strings.TrimSpace(line)
			continue
		}
		col, err := buildColumn(match, units, log)
		if err != nil {
			return nil, err
		}
		applyNullSpec(col, meta)
		meta.Cols = append(meta.Cols, col)
	}
	if len(meta.Cols) == 0 {
		return nil, cdserrors.NoColumnsError{}
	}
	return meta, nil
}

// buildColumn turns a column-definition match into a descriptor
func buildColumn(match []string, units cds.UnitParser, log *logging.Logger) (*cds.Column, error) {
	end, err := strconv.Atoi(match[colDefRegexp.SubexpIndex("end")])
	if err != nil {
		return nil, err
	}
	start := end
	if startGroup := match[colDefRegexp.SubexpIndex("start")]; startGroup != "" {
		start, err = strconv.Atoi(strings.Map(dropDashesAndSpaces, startGroup))
		if err != nil {
			return nil, err
		}
	}
	col := &cds.Column{
		Name:        match[colDefRegexp.SubexpIndex("name")],
		Start:       start - 1,
		End:         end - 1,
		RawType:     match[colDefRegexp.SubexpIndex("format")],
		Description: strings.TrimSpace(match[colDefRegexp.SubexpIndex("descr")]),
	}
	col.Class, err = cds.ResolveTypeClass(col.RawType, col.Name)
	if err != nil {
		return nil, err
	}
	// "---" is the marker for no unit in CDS tables
	if token := match[colDefRegexp.SubexpIndex("units")]; token != "---" {
		parsed, unitErr := units.Parse(token)
		if unitErr != nil {
			log.Logf(logging.WarnLevel, "%v; column %s treated as unitless", unitErr, col.Name)
		} else {
			col.Unit = parsed
		}
	}
	return col, nil
}

// applyNullSpec runs the embedded mini-grammar over a freshly parsed
// column's description. On a match the column becomes nullable, the marker
// and order specifier are recorded, the remainder replaces the description,
// and a fill-value association is registered for every accepted marker
// variant. A single "-" marker stands for one to four repeated dashes.
// Without a match the description is kept as-is and the column is not
// nullable. Continuation lines appended later are not re-examined.
func applyNullSpec(col *cds.Column, meta *cds.Metadata) {
	match := nullSpecRegexp.FindStringSubmatch(col.Description)
	if match == nil {
		return
	}
	col.Nullable = true
	col.Order = match[nullSpecRegexp.SubexpIndex("order")]
	col.Description = strings.TrimSpace(match[nullSpecRegexp.SubexpIndex("descr")])
	fill := col.FillValue()
	if match[nullSpecRegexp.SubexpIndex("nullval")] == "-" {
		col.Null = "---"
		for i := 1; i <= 4; i++ {
			meta.FillValues = append(meta.FillValues, cds.FillValue{
				Marker: strings.Repeat("-", i),
				Fill:   fill,
				Column: col.Name,
			})
		}
		return
	}
	col.Null = match[nullSpecRegexp.SubexpIndex("nullval")]
	meta.FillValues = append(meta.FillValues, cds.FillValue{
		Marker: col.Null,
		Fill:   fill,
		Column: col.Name,
	})
}

func dropDashesAndSpaces(r rune) rune {
	if r == '-' || r == ' ' || r == '\t' {
		return -1
	}
	return r
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
