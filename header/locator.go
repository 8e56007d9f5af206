package header

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-cds/cds"
	"github.com/go-cds/cds/errors"
)

var blockHeaderRegexp = regexp.MustCompile(`(?i)^Byte-by-byte Description of file: (.+)$`)
var nameSplitRegexp = regexp.MustCompile(`[, ]+`)

// FindTableBlock extracts the byte-by-byte metadata block for tableName from
// the lines of a shared ReadMe document. Block headers may name several
// comma or space separated files, with shell glob wildcards; matching is
// against base names only, so directory structure on either side is
// ignored. The block runs from its header line through the third section
// delimiter, which captures the column table and any trailing notes.
// readmeName is used only to identify the source in errors.
func FindTableBlock(readmeLines []string, tableName string, readmeName string) ([]string, error) {
	base := filepath.Base(tableName)
	inHeader := false
	delimiters := 0
	block := []string{}
	for _, raw := range readmeLines {
		line := strings.TrimSpace(raw)
		if inHeader {
			block = append(block, line)
			if cds.IsSectionDelimiter(line) {
				delimiters++
				if delimiters == 3 {
					break
				}
			}
			continue
		}
		match := blockHeaderRegexp.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		for _, pattern := range nameSplitRegexp.Split(match[1], -1) {
			if pattern == "" {
				continue
			}
			if ok, _ := path.Match(filepath.Base(pattern), base); ok {
				inHeader = true
				block = append(block, line)
				break
			}
		}
	}
	if !inHeader {
		return nil, errors.TableNotFoundError{Table: tableName, Readme: readmeName}
	}
	return block, nil
}
