package table

import (
	"strings"

	"github.com/go-cds/cds"
	"github.com/go-cds/cds/colfmt"
	"github.com/go-cds/cds/data"
	"github.com/go-cds/cds/header"
)

// WriterConf configures a CDS table Writer
type WriterConf struct {
	// FileName is the data file name the block's title line refers to.
	// Defaults to "table.dat".
	FileName string
}

// Writer writes CDS tables
type Writer struct {
	conf      *WriterConf
	formatter cds.ColumnFormatter
}

// CreateWriter returns a new CDS table Writer. A nil formatter selects the
// default per-column formatter.
func CreateWriter(conf *WriterConf, formatter cds.ColumnFormatter) *Writer {
	if conf == nil {
		conf = &WriterConf{}
	}
	if conf.FileName == "" {
		conf.FileName = "table.dat"
	}
	if formatter == nil {
		formatter = colfmt.CreateFormatter()
	}
	return &Writer{conf: conf, formatter: formatter}
}

// Write renders tbl as CDS text: the byte-by-byte metadata block followed
// by left-aligned, space-delimited fixed-width data lines. The block's
// byte-range layout is computed from the cell values and written back onto
// the descriptors, so reading the output with those descriptors recovers
// the cells verbatim.
func (w *Writer) Write(tbl *Table) ([]string, error) {
	meta := tbl.Meta
	colVals := make([][]string, len(meta.Cols))
	for i := range meta.Cols {
		colVals[i] = make([]string, len(tbl.Rows))
		for j, row := range tbl.Rows {
			colVals[i][j] = row[i]
		}
	}

	body, err := header.WriteByteByByte(meta, colVals, w.formatter, false)
	if err != nil {
		return nil, err
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	lines := strings.Split(header.RenderBlock(w.conf.FileName, body), "\n")
	splitter := data.CreateSplitter()
	widths := make([]int, len(meta.Cols))
	for i, col := range meta.Cols {
		widths[i] = col.Width
	}
	for _, row := range tbl.Rows {
		lines = append(lines, splitter.Join(row, widths))
	}
	return lines, nil
}
