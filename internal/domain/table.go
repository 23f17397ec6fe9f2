package domain

import "strings"

// Cell is one field value in a row. Present distinguishes a cell the
// source line actually contained from one that was padded in because
// the line was shorter than the header. Empty and whitespace-only
// values keep their exact bytes until remediation.
type Cell struct {
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

// IsBlank reports whether the cell is absent, empty, or whitespace-only.
func (c Cell) IsBlank() bool {
	return !c.Present || strings.TrimSpace(c.Value) == ""
}

// Row maps a header string to its cell. Headers missing from the map
// behave like absent cells.
type Row map[string]Cell

// Get returns the cell for a header, absent if the row lacks it.
func (r Row) Get(header string) Cell {
	return r[header]
}

// Table is an immutable parsed view of a delimited file: headers as
// read with case preserved, and rows keyed by those headers. Checks
// only read tables; remediation works on a clone.
type Table struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// Clone deep-copies the table so remediation never touches the
// original row set.
func (t *Table) Clone() *Table {
	out := &Table{Headers: append([]string(nil), t.Headers...)}
	out.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		nr := make(Row, len(row))
		for k, v := range row {
			nr[k] = v
		}
		out.Rows[i] = nr
	}
	return out
}

// HeaderFor resolves a field name to the actual header string using
// case-insensitive comparison. Returns "" when no header matches.
func (t *Table) HeaderFor(field string) string {
	for _, h := range t.Headers {
		if strings.EqualFold(h, field) {
			return h
		}
	}
	return ""
}

// SourceFile is one loaded import file: the parsed table plus the raw
// facts checks need that parsing normalizes away (the byte-order mark
// and the undecoded data lines).
type SourceFile struct {
	Path   string `json:"path"`
	Name   string `json:"name"`
	HadBOM bool   `json:"had_bom"`
	Table  *Table `json:"table"`

	// RawLines holds the data lines as read (header excluded, line
	// endings stripped, BOM removed) for delimiter-level checks.
	RawLines []string `json:"-"`
}

// RowNumber converts a zero-based index into Table.Rows to the
// 1-indexed row number shown to operators (header is row 1).
func RowNumber(i int) int {
	return i + 2
}
