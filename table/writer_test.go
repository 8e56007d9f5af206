package table

import (
	"strings"
	"testing"

	"github.com/go-cds/cds"
	"github.com/go-cds/cds/inputter"
	"github.com/go-cds/cds/logging"
	"github.com/go-cds/cds/unit"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func createTestTable() *Table {
	meta := &cds.Metadata{Cols: []*cds.Column{
		{Name: "Index", Class: cds.Integer, Description: "Running id"},
		{Name: "Vel", Class: cds.Float, Unit: &cds.Unit{Raw: "km/s"}, Description: "Radial velocity"},
		{Name: "Name", Class: cds.String, Description: "Object designation"},
	}}
	return &Table{
		Meta: meta,
		Rows: [][]string{
			{"1", "3.14", "alpha"},
			{"12", "12.50", "be"},
			{"3", "-9.90", "gamma"},
		},
		nulls: [][]bool{
			{false, false, false},
			{false, false, false},
			{false, false, false},
		},
	}
}

func TestWriteEmitsBlockAndDataLines(t *testing.T) {
	writer := CreateWriter(&WriterConf{FileName: "objects.dat"}, nil)
	lines, err := writer.Write(createTestTable())
	require.Nil(t, err)

	require.Equal(t, "Byte-by-byte Description of file: objects.dat", lines[0])
	require.Equal(t, strings.Repeat("-", 80), lines[1])
	require.Equal(t, " Bytes Format Units  Label     Explanations", lines[2])

	// three descriptor lines plus three data rows after the closing delimiter
	require.Equal(t, "1  3.14  alpha", lines[len(lines)-3])
	require.Equal(t, "12 12.50 be   ", lines[len(lines)-2])
	require.Equal(t, "3  -9.90 gamma", lines[len(lines)-1])
}

func TestWriteDefaultFileName(t *testing.T) {
	writer := CreateWriter(nil, nil)
	lines, err := writer.Write(createTestTable())
	require.Nil(t, err)
	require.Equal(t, "Byte-by-byte Description of file: table.dat", lines[0])
}

func TestWriteReadRoundTrip(t *testing.T) {
	defer goleak.VerifyNone(t)

	original := createTestTable()
	writer := CreateWriter(nil, nil)
	lines, err := writer.Write(original)
	require.Nil(t, err)

	reader := CreateReader(&ReaderConf{Logger: logging.CreateDiscardLogger()},
		inputter.Create(afero.NewMemMapFs()), unit.CreateParser())
	decoded, err := reader.Read(strings.Join(lines, "\n") + "\n")
	require.Nil(t, err)

	require.Equal(t, original.NumRows(), decoded.NumRows())
	require.Equal(t, original.Meta.ColumnNames(), decoded.Meta.ColumnNames())
	for _, col := range original.Meta.ColumnNames() {
		for row := 0; row < original.NumRows(); row++ {
			want, err := original.GetString(col, row)
			require.Nil(t, err)
			got, err := decoded.GetString(col, row)
			require.Nil(t, err)
			require.Equal(t, want, got)
		}
	}

	// the unit survives the trip
	vel, err := decoded.Meta.GetColumn("Vel")
	require.Nil(t, err)
	require.NotNil(t, vel.Unit)
	require.Equal(t, "km/s", vel.Unit.Raw)
}

func TestWriteRejectsInvalidLayout(t *testing.T) {
	tbl := createTestTable()
	tbl.Meta.Cols[1].Name = "Index" // duplicate
	writer := CreateWriter(nil, nil)
	_, err := writer.Write(tbl)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "duplicate column name Index")
}
