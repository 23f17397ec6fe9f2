package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/importlint/importlint/internal/domain"
)

// ErrBOMPresent means a freshly written output file begins with a
// byte-order mark. The writer never emits one, so this is a tool
// defect, not an operator error.
var ErrBOMPresent = errors.New("output file unexpectedly starts with a byte-order mark")

// Writer implements domain.FileWriter. Output is UTF-8 without a
// byte-order mark, LF line endings, and fields quoted only when they
// contain a separator, a quote, or a line break (quotes doubled
// inside quoted fields).
type Writer struct{}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Write(path string, table *domain.Table) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(table.Headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	record := make([]string, len(table.Headers))
	for _, row := range table.Rows {
		for i, h := range table.Headers {
			record[i] = row.Get(h).Value
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("serializing table: %w", err)
	}

	// Write to a temp file first so a failure never leaves a
	// half-written output that could be mistaken for a valid fix.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".importlint-*")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalizing output: %w", err)
	}
	return nil
}

// VerifyNoBOM re-reads the first bytes of the output and asserts the
// mark is absent.
func (w *Writer) VerifyNoBOM(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verifying output: %w", err)
	}
	defer f.Close()

	head := make([]byte, len(utf8BOM))
	n, _ := f.Read(head)
	if n >= len(utf8BOM) && bytes.Equal(head[:len(utf8BOM)], utf8BOM) {
		return ErrBOMPresent
	}
	return nil
}

// FixedPath derives the remediated output path by inserting the fixed
// suffix before the extension. The source file is never overwritten.
func FixedPath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	if ext == "" {
		ext = ".csv"
	}
	return stem + "_fixed" + ext
}
