// Package inputter acquires the lines of CDS metadata and data sources.
package inputter

import (
	"bufio"
	"strings"

	"github.com/go-cds/cds"
	"github.com/spf13/afero"
)

// Inputter turns a source identifier into its ordered lines. A source
// containing a newline is treated as literal content; anything else is a
// path opened through the backing filesystem.
type Inputter struct {
	fs afero.Fs
}

// Create returns an Inputter backed by the given filesystem
func Create(fs afero.Fs) cds.Inputter {
	return &Inputter{fs: fs}
}

// CreateOsInputter returns an Inputter backed by the host filesystem
func CreateOsInputter() cds.Inputter {
	return Create(afero.NewOsFs())
}

// GetLines splits literal content or scans a file into lines
func (in *Inputter) GetLines(source string) ([]string, error) {
	if strings.ContainsRune(source, '\n') {
		return strings.Split(strings.TrimSuffix(source, "\n"), "\n"), nil
	}
	f, err := in.fs.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines := []string{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
