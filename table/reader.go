package table

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-cds/cds"
	"github.com/go-cds/cds/data"
	"github.com/go-cds/cds/header"
	"github.com/go-cds/cds/logging"
)

// ReaderConf configures a CDS table Reader
type ReaderConf struct {
	// Readme is the source of a shared ReadMe document. When set, metadata
	// is located there and the data source is treated as pure data rows.
	Readme string
	// TableName overrides the name used to look the table up in the ReadMe.
	// Defaults to the base name of the data source when it is path-like.
	TableName string
	// GuessDataStart brute-forces the data start of a combined file whose
	// metadata end cannot be delimited unambiguously: candidate offsets are
	// tried in increasing order and the first one that reads without error
	// wins. Note this accepts the first success, not necessarily the
	// structurally correct offset.
	GuessDataStart bool
	// Logger receives unit-parse warnings and guess-mode attempt traces.
	// Defaults to a stderr logger at WARN.
	Logger *logging.Logger
}

// Reader reads CDS tables
type Reader struct {
	conf  *ReaderConf
	input cds.Inputter
	units cds.UnitParser
}

// CreateReader returns a new CDS table Reader
func CreateReader(conf *ReaderConf, input cds.Inputter, units cds.UnitParser) *Reader {
	if conf == nil {
		conf = &ReaderConf{}
	}
	if conf.Logger == nil {
		conf.Logger = logging.CreateLogger(logging.WarnLevel)
	}
	return &Reader{conf: conf, input: input, units: units}
}

// Read acquires the source, parses the table's metadata block and assembles
// the table. With a configured ReadMe the block is located there and every
// line of the source is a data row; otherwise the source is a combined file
// whose data section follows the last section delimiter. A failed parse
// returns no table.
func (r *Reader) Read(source string) (*Table, error) {
	tableName := r.conf.TableName
	if tableName == "" && !strings.ContainsRune(source, '\n') {
		tableName = filepath.Base(source)
	}
	lines, err := r.input.GetLines(source)
	if err != nil {
		return nil, err
	}

	if r.conf.Readme != "" && tableName != "" {
		readmeLines, err := r.input.GetLines(r.conf.Readme)
		if err != nil {
			return nil, err
		}
		block, err := header.FindTableBlock(readmeLines, tableName, r.conf.Readme)
		if err != nil {
			return nil, err
		}
		meta, err := header.ParseColumns(block, r.units, r.conf.Logger)
		if err != nil {
			return nil, err
		}
		// the data file carries no header of its own
		return r.assemble(meta, lines)
	}

	if r.conf.GuessDataStart {
		return r.guess(lines)
	}
	return r.readAt(lines, 0)
}

// readAt performs one full read of a combined file, with the data section
// additionally offset by dataStart rows past the last section delimiter
func (r *Reader) readAt(lines []string, dataStart int) (*Table, error) {
	meta, err := header.ParseColumns(lines, r.units, r.conf.Logger)
	if err != nil {
		return nil, err
	}
	rows, err := data.SkipHeader(lines)
	if err != nil {
		return nil, err
	}
	if dataStart > 0 {
		if dataStart >= len(rows) {
			return nil, fmt.Errorf("no data rows at start offset %d", dataStart)
		}
		rows = rows[dataStart:]
	}
	return r.assemble(meta, rows)
}

// guess tries successive data-start offsets against the already-materialized
// line list, accepting the first offset for which a full read succeeds.
// Individual attempt failures are swallowed; once every offset is exhausted
// the last attempt's error surfaces.
func (r *Reader) guess(lines []string) (*Table, error) {
	var lastErr error
	for dataStart := 0; dataStart < len(lines); dataStart++ {
		tbl, err := r.readAt(lines, dataStart)
		if err == nil {
			return tbl, nil
		}
		r.conf.Logger.Logf(logging.DebugLevel, "data start %d failed: %v", dataStart, err)
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no lines to read")
	}
	return nil, lastErr
}

// assemble tokenizes each data row by the descriptors' byte ranges,
// substitutes null markers and coerces field types
func (r *Reader) assemble(meta *cds.Metadata, rows []string) (*Table, error) {
	fills := fillIndex(meta)
	splitter := data.CreateSplitter()
	tbl := &Table{Meta: meta}
	for _, line := range rows {
		if strings.TrimSpace(line) == "" {
			continue
		}
		vals := splitter.Split(line, meta.Cols)
		nulls := make([]bool, len(vals))
		if err := scanRow(meta.Cols, fills, vals, nulls); err != nil {
			return nil, err
		}
		tbl.Rows = append(tbl.Rows, vals)
		tbl.nulls = append(tbl.nulls, nulls)
	}
	return tbl, nil
}
