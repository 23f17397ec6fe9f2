package check

import (
	"fmt"
	"strings"

	"github.com/importlint/importlint/internal/domain"
)

// CheckByteOrderMark reports a leading UTF-8 byte-order mark on the
// file or the first header. The target system rejects marked files
// outright.
func CheckByteOrderMark(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	marked := src.HadBOM
	if len(src.Table.Headers) > 0 && strings.HasPrefix(src.Table.Headers[0], "\uFEFF") {
		marked = true
	}
	if !marked {
		return nil
	}
	return []domain.Finding{{
		Severity: domain.SeverityError,
		Kind:     domain.KindByteOrderMark,
		Message:  "file has a UTF-8 byte-order mark; the import will fail",
		Hints: []string{
			"the mark is an invisible byte sequence at the start of the file",
			"create a fixed copy to remove it",
			`or re-save as "CSV UTF-8" without the byte-order mark`,
		},
		Action: &domain.RemediationAction{Kind: domain.ActionStripBOM},
	}}
}

// CheckWhitespaceOnlyCells reports cells that contain only spaces or
// tabs. The target system requires empty cells to be truly empty.
func CheckWhitespaceOnlyCells(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range src.Table.Headers {
			cell := row.Get(field)
			if !cell.Present || cell.Value == "" || strings.TrimSpace(cell.Value) != "" {
				continue
			}
			n := domain.RowNumber(i)
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityError,
				Kind:     domain.KindWhitespaceOnly,
				Row:      n,
				Field:    field,
				Message:  fmt.Sprintf("row %d, field %q: contains only whitespace", n, field),
				Hints: []string{
					"empty cells must be completely empty",
					"delete the spaces/tabs from this cell",
				},
				Action: &domain.RemediationAction{
					Kind:  domain.ActionNormalizeWhitespace,
					Field: field,
					Rows:  []int{n},
				},
			})
		}
	}
	return findings
}

// CheckQuoteBalance reports cells with an odd number of quote
// characters, which break downstream parsing.
func CheckQuoteBalance(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range src.Table.Headers {
			cell := row.Get(field)
			if !cell.Present || strings.Count(cell.Value, `"`)%2 == 0 {
				continue
			}
			n := domain.RowNumber(i)
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityError,
				Kind:     domain.KindUnbalancedQuotes,
				Row:      n,
				Field:    field,
				Message:  fmt.Sprintf("row %d, field %q: unbalanced quotes", n, field),
				Hints: []string{
					"value: " + truncate(cell.Value, 100),
					"unbalanced quotes break CSV parsing",
					`escape quotes by doubling them ("") or remove them`,
				},
			})
		}
	}
	return findings
}

// CheckTrailingDelimiters scans the raw data lines for separators
// outside quoted regions beyond what the header count allows. Extra
// separators create phantom empty columns.
func CheckTrailingDelimiters(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	expected := len(src.Table.Headers) - 1
	if expected < 0 {
		return nil
	}

	var findings []domain.Finding
	for i, line := range src.RawLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		count := separatorsOutsideQuotes(line)
		if count <= expected {
			continue
		}
		n := domain.RowNumber(i)
		findings = append(findings, domain.Finding{
			Severity: domain.SeverityWarning,
			Kind:     domain.KindTrailingDelimiter,
			Row:      n,
			Message:  fmt.Sprintf("row %d: has %d extra separator(s) at end of line", n, count-expected),
			Hints: []string{
				"this creates phantom empty columns",
				"remove trailing commas from this row",
			},
		})
	}
	return findings
}

func separatorsOutsideQuotes(line string) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				count++
			}
		}
	}
	return count
}

// CheckColumnCounts warns when a row's cell count differs from the
// header count. Rows with no values at all are pure padding and stay
// silent.
func CheckColumnCounts(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	expected := len(src.Table.Headers)

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		present, nonEmpty := 0, 0
		for _, field := range src.Table.Headers {
			cell := row.Get(field)
			if cell.Present {
				present++
			}
			if cell.Present && strings.TrimSpace(cell.Value) != "" {
				nonEmpty++
			}
		}
		if present == expected || nonEmpty == 0 {
			continue
		}
		n := domain.RowNumber(i)
		findings = append(findings, domain.Finding{
			Severity: domain.SeverityWarning,
			Kind:     domain.KindColumnCount,
			Row:      n,
			Message:  fmt.Sprintf("row %d: column count mismatch", n),
			Hints: []string{
				fmt.Sprintf("expected %d columns, found data in %d", expected, nonEmpty),
				"this may indicate malformed CSV structure",
			},
		})
	}
	return findings
}

// CheckRowCount flags empty imports as errors and very large ones as
// batch-splitting advisories.
func CheckRowCount(src *domain.SourceFile, _ domain.RecordType, cfg domain.Config) []domain.Finding {
	n := len(src.Table.Rows)
	switch {
	case n == 0:
		return []domain.Finding{{
			Severity: domain.SeverityError,
			Kind:     domain.KindRowCount,
			Message:  "file has headers but no data rows",
			Hints:    []string{"add at least one data row to import"},
		}}
	case n > cfg.RowThreshold():
		return []domain.Finding{{
			Severity: domain.SeverityWarning,
			Kind:     domain.KindRowCount,
			Message:  fmt.Sprintf("file has %d rows; this is a large import", n),
			Hints: []string{
				"consider splitting into smaller batches (500-1000 rows)",
				"large imports may time out or fail",
				"test with 5-10 rows first to confirm the format",
			},
		}}
	}
	return nil
}

// CheckIncompleteRows warns about rows where only the scoping field
// carries a value. Such rows import nothing useful and usually mean a
// template row was left behind.
func CheckIncompleteRows(src *domain.SourceFile, rt domain.RecordType, _ domain.Config) []domain.Finding {
	if rt == domain.TypeOrganizations || rt == "" {
		return nil
	}
	scope := src.Table.HeaderFor(domain.ScopeField)
	if scope == "" {
		return nil
	}

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		if row.Get(scope).IsBlank() {
			continue
		}
		others := 0
		for _, field := range src.Table.Headers {
			if field == scope {
				continue
			}
			if !row.Get(field).IsBlank() {
				others++
			}
		}
		if others > 0 {
			continue
		}
		n := domain.RowNumber(i)
		findings = append(findings, domain.Finding{
			Severity: domain.SeverityWarning,
			Kind:     domain.KindIncompleteRow,
			Row:      n,
			Message:  fmt.Sprintf("row %d: only the organization field has a value", n),
			Hints:    []string{"fill in the remaining fields or delete the row before import"},
		})
	}
	return findings
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
