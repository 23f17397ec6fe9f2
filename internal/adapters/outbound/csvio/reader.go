// Package csvio reads and writes comma-separated import files. The
// reader preserves the distinctions validation depends on (absent vs.
// empty vs. whitespace-only cells, byte-order mark presence, raw data
// lines); the writer produces UTF-8 output with no byte-order mark and
// quotes fields only when necessary.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/importlint/importlint/internal/domain"
)

// Fatal read failures. These abort validation of the file; they are
// never findings.
var (
	ErrNotFound  = errors.New("file not found")
	ErrNotAFile  = errors.New("path is not a file")
	ErrEmptyFile = errors.New("file is empty")
	ErrNoHeader  = errors.New("file has no parseable header row")
	ErrNotUTF8   = errors.New("file is not valid UTF-8")
	ErrMalformed = errors.New("malformed CSV structure")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader implements domain.FileReader.
type Reader struct{}

func NewReader() *Reader { return &Reader{} }

// Read loads and parses one import file. Everything the check suite
// needs is captured here so checks never touch the filesystem.
func (r *Reader) Read(path string) (*domain.SourceFile, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	case info.Size() == 0:
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	hadBOM := bytes.HasPrefix(data, utf8BOM)
	if hadBOM {
		data = data[len(utf8BOM):]
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s (re-save the file as UTF-8; Windows-1252 exports must be converted first)", ErrNotUTF8, path)
	}

	table, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &domain.SourceFile{
		Path:     path,
		Name:     filepath.Base(path),
		HadBOM:   hadBOM,
		Table:    table,
		RawLines: dataLines(data),
	}, nil
}

// parseTable decodes the CSV content. LazyQuotes keeps stray quote
// characters inside cell values so the quote-balance check can see
// them; FieldsPerRecord -1 keeps short and long rows parseable so one
// bad row never hides the rest of the file.
func parseTable(data []byte) (*domain.Table, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) == 0 || len(records[0]) == 0 ||
		(len(records[0]) == 1 && strings.TrimSpace(records[0][0]) == "") {
		return nil, ErrNoHeader
	}

	headers := records[0]
	table := &domain.Table{Headers: headers}

	for _, record := range records[1:] {
		row := make(domain.Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = domain.Cell{Value: record[i], Present: true}
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// dataLines returns the raw data lines (header excluded) for
// delimiter-level checks. The split is line-based, so a quoted cell
// with an embedded line break spans two entries; the separator count
// check tolerates that because quoted regions toggle per line.
func dataLines(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	if len(lines) <= 1 {
		return nil
	}
	out := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		out = append(out, strings.TrimSuffix(line, "\r"))
	}
	// Drop a trailing empty line from the final newline.
	if n := len(out); n > 0 && out[n-1] == "" {
		out = out[:n-1]
	}
	return out
}
