package header

import (
	"strings"
	"testing"

	"github.com/go-cds/cds"
	"github.com/go-cds/cds/colfmt"
	"github.com/go-cds/cds/logging"
	"github.com/go-cds/cds/unit"
	"github.com/stretchr/testify/require"
)

func TestWriteByteByByteLayout(t *testing.T) {
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Index", Class: cds.Integer, Description: "Running id"},
		{Name: "Vel", Class: cds.Float, Description: "Radial velocity"},
	}}
	colVals := [][]string{
		{"1", "12", "999"},
		{"3.14", "12.50", "9.99"},
	}
	body, err := WriteByteByByte(meta, colVals, colfmt.CreateFormatter(), false)
	require.Nil(t, err)

	// sequential layout from byte 1 with a 2-byte gap
	require.Equal(t, 0, meta.Cols[0].Start)
	require.Equal(t, 2, meta.Cols[0].End)
	require.Equal(t, 4, meta.Cols[1].Start)
	require.Equal(t, 8, meta.Cols[1].End)

	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	require.Equal(t, 2, len(lines))
	require.Contains(t, lines[0], "1-3")
	require.Contains(t, lines[0], "I3")
	require.Contains(t, lines[0], "Index")
	require.Contains(t, lines[1], "5-9")
	require.Contains(t, lines[1], "F5.2")
}

func TestWriteByteByByteSinglePosition(t *testing.T) {
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Flag", Class: cds.String, Description: "Quality flag"},
	}}
	body, err := WriteByteByByte(meta, [][]string{{"a", "b"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	require.True(t, meta.Cols[0].SingleByte())
	// a one-byte column renders as a lone position, not a range
	require.NotContains(t, strings.SplitN(body, " A1", 2)[0], "-")
	require.Contains(t, body, "A1")
}

func TestWriteByteByByteIntegerBounds(t *testing.T) {
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Index", Class: cds.Integer, Description: "Running id"},
	}}
	body, err := WriteByteByByte(meta, [][]string{{"3", "7", "5"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	require.Contains(t, body, "[3/7] Running id")
}

func TestWriteByteByByteEqualBoundsCollapse(t *testing.T) {
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Index", Class: cds.Integer, Description: "Running id"},
	}}
	body, err := WriteByteByByte(meta, [][]string{{"5", "5"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	require.Contains(t, body, "[5] Running id")
}

func TestWriteByteByByteHugeIntegerBoundsOmitted(t *testing.T) {
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Dist", Class: cds.Integer, Description: "Distance"},
	}}
	body, err := WriteByteByByte(meta, [][]string{{"1", "99999999"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	require.NotContains(t, body, "[")
}

func TestWriteByteByByteFloatBoundsWidenOutward(t *testing.T) {
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Vel", Class: cds.Float, Description: "Radial velocity"},
	}}
	body, err := WriteByteByByte(meta, [][]string{{"1.234", "2.345"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	require.Contains(t, body, "[1.23/2.35] Radial velocity")
}

func TestWriteByteByByteWholeFloatBoundKeepsDecimal(t *testing.T) {
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Vel", Class: cds.Float, Description: "Radial velocity"},
	}}
	body, err := WriteByteByByte(meta, [][]string{{"1.00", "2.345"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	require.Contains(t, body, "[1.0/2.35] Radial velocity")
}

func TestWriteByteByByteNullFlag(t *testing.T) {
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Vel", Class: cds.Float, Description: "Radial velocity"},
	}}
	body, err := WriteByteByByte(meta, [][]string{{"1.25", ""}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	require.Contains(t, body, "? Radial velocity")
}

func TestWriteByteByByteWrapsLongLines(t *testing.T) {
	longDescription := strings.Repeat("wordy ", 16) // 96 chars of description
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Index", Class: cds.Integer, Description: strings.TrimSpace(longDescription)},
	}}
	body, err := WriteByteByByte(meta, [][]string{{"1", "2"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)

	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	require.True(t, len(lines) >= 2)
	for _, line := range lines {
		require.True(t, len(line) <= 80, "line %q exceeds 80 chars", line)
	}
	// continuation lines are indented consistently
	for _, line := range lines[1:] {
		require.True(t, strings.HasPrefix(line, strings.Repeat(" ", 10)))
	}
}

func TestWriteByteByByteOversizedLabel(t *testing.T) {
	// a label this wide pushes the continuation indent past the wrap width
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: strings.Repeat("L", 70), Class: cds.Integer,
			Description: strings.TrimSpace(strings.Repeat("wordy ", 10))},
	}}
	body, err := WriteByteByByte(meta, [][]string{{"1", "2"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	for _, line := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
		require.True(t, len(line) <= 80, "line %q exceeds 80 chars", line)
	}
}

func TestWrapLineIndentWiderThanWidth(t *testing.T) {
	wrapped := wrapLine(strings.Repeat("x", 200), 80, strings.Repeat(" ", 100))
	require.True(t, len(wrapped) >= 3)
	for _, line := range wrapped {
		require.True(t, len(line) <= 80, "line %q exceeds 80 chars", line)
	}
}

func TestWriteByteByByteNotes(t *testing.T) {
	meta := &cds.Metadata{
		Cols:  []*cds.Column{{Name: "Index", Class: cds.Integer, Description: "Running id"}},
		Notes: []string{"Note (1): a note.", "Note (2): another."},
	}
	body, err := WriteByteByByte(meta, [][]string{{"1"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	require.Contains(t, body, "Note (1): a note.\nNote (2): another.")
	require.Equal(t, 2, strings.Count(body, strings.Repeat("-", 80)))
}

func TestRenderBlockTemplate(t *testing.T) {
	block := RenderBlock("table.dat", "body line\n")
	lines := strings.Split(block, "\n")
	require.Equal(t, "Byte-by-byte Description of file: table.dat", lines[0])
	require.Equal(t, strings.Repeat("-", 80), lines[1])
	require.Equal(t, " Bytes Format Units  Label     Explanations", lines[2])
	require.Equal(t, strings.Repeat("-", 80), lines[3])
	require.Equal(t, "body line", lines[4])
	require.Equal(t, strings.Repeat("-", 80), lines[5])
}

func TestParseThenWriteReproducesByteRanges(t *testing.T) {
	meta, err := ParseColumns([]string{
		"Byte-by-byte Description of file: table1.dat",
		delimiter,
		" Bytes Format Units  Label     Explanations",
		delimiter,
		"   1-  3 I3     ---    Index  Running identification number",
		"   5-  9 F5.2   s      RAs    Second of Right Ascension",
		delimiter,
	}, unit.CreateParser(), logging.CreateDiscardLogger())
	require.Nil(t, err)

	parsed := []struct{ start, end int }{
		{meta.Cols[0].Start, meta.Cols[0].End},
		{meta.Cols[1].Start, meta.Cols[1].End},
	}

	// values rendered at the declared widths reproduce the declared layout
	_, err = WriteByteByByte(meta, [][]string{{"123"}, {"12.34"}}, colfmt.CreateFormatter(), false)
	require.Nil(t, err)
	for i, col := range meta.Cols {
		require.Equal(t, parsed[i].start, col.Start)
		require.Equal(t, parsed[i].end, col.End)
	}
}
