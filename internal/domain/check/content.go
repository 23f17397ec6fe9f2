package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/importlint/importlint/internal/domain"
)

// scopeHeader resolves the organization header, "" when absent.
func scopeHeader(t *domain.Table) string {
	return t.HeaderFor(domain.ScopeField)
}

// CheckPlaceholderScopes reports organization values that are
// obviously template leftovers. The import would target a
// non-existent entity.
func CheckPlaceholderScopes(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	scope := scopeHeader(src.Table)
	if scope == "" {
		return nil
	}

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		value := strings.TrimSpace(row.Get(scope).Value)
		if value == "" || !domain.IsPlaceholderScope(value) {
			continue
		}
		n := domain.RowNumber(i)
		findings = append(findings, domain.Finding{
			Severity: domain.SeverityError,
			Kind:     domain.KindPlaceholderScope,
			Row:      n,
			Field:    scope,
			Message:  fmt.Sprintf("row %d: organization name looks like a placeholder: %q", n, value),
			Hints: []string{
				"replace with the exact organization name from the target system",
				"copy the name exactly as it appears there",
			},
		})
	}
	return findings
}

// CheckScopeNames covers the per-row organization name rules: minimum
// length, filesystem-unsafe characters, and leading/trailing
// whitespace. Downstream matching is exact-string, so even trimmed
// comparisons succeed while the import itself fails.
func CheckScopeNames(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	scope := scopeHeader(src.Table)
	if scope == "" {
		return nil
	}

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		cell := row.Get(scope)
		trimmed := strings.TrimSpace(cell.Value)
		if trimmed == "" {
			continue
		}
		n := domain.RowNumber(i)

		if len([]rune(trimmed)) < 2 {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityError,
				Kind:     domain.KindScopeTooShort,
				Row:      n,
				Field:    scope,
				Message:  fmt.Sprintf("row %d: organization name is too short: %q", n, trimmed),
				Hints:    []string{"minimum 2 characters required"},
			})
		}

		if strings.ContainsAny(trimmed, domain.UnsafeScopeChars) {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Kind:     domain.KindScopeUnsafeChars,
				Row:      n,
				Field:    scope,
				Message:  fmt.Sprintf("row %d: organization name contains special characters: %q", n, trimmed),
				Hints: []string{
					"special characters may cause lookup failures",
					"the organization name must exactly match the target system",
				},
			})
		}

		if cell.Value != trimmed {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityError,
				Kind:     domain.KindScopeWhitespace,
				Row:      n,
				Field:    scope,
				Message:  fmt.Sprintf("row %d: organization name has leading/trailing spaces: %q", n, trimmed),
				Hints: []string{
					"remove all leading/trailing spaces",
					"organization matching is whitespace-sensitive",
				},
				Action: &domain.RemediationAction{
					Kind:  domain.ActionNormalizeWhitespace,
					Field: scope,
					Rows:  []int{n},
				},
			})
		}
	}
	return findings
}

// CheckMultipleScopes warns when one file spans several organizations.
// Single-file-per-organization is the expected usage.
func CheckMultipleScopes(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	scope := scopeHeader(src.Table)
	if scope == "" {
		return nil
	}

	seen := map[string]bool{}
	for _, row := range src.Table.Rows {
		if v := strings.TrimSpace(row.Get(scope).Value); v != "" {
			seen[v] = true
		}
	}
	if len(seen) <= 1 {
		return nil
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return []domain.Finding{{
		Severity: domain.SeverityWarning,
		Kind:     domain.KindMultipleScopes,
		Field:    scope,
		Message:  "multiple organization names found: " + strings.Join(names, ", "),
		Hints: []string{
			"importing several organizations in one file may cause issues",
			"consider splitting into separate files per organization",
			"ensure every organization name exactly matches the target system",
		},
	}}
}

// CheckDuplicateNames warns about repeated (organization, name) pairs,
// referencing the first occurrence. The import may reject duplicates
// or silently update existing entries.
func CheckDuplicateNames(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	nameField := src.Table.HeaderFor("name")
	if nameField == "" {
		return nil
	}
	scope := scopeHeader(src.Table)

	type pair struct{ org, name string }
	first := map[pair]int{}

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		name := strings.TrimSpace(row.Get(nameField).Value)
		if name == "" {
			continue
		}
		org := "NO_ORG"
		if scope != "" {
			if v := strings.TrimSpace(row.Get(scope).Value); v != "" {
				org = v
			}
		}

		key := pair{org, name}
		n := domain.RowNumber(i)
		if firstRow, ok := first[key]; ok {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Kind:     domain.KindDuplicateName,
				Row:      n,
				Field:    nameField,
				Message:  fmt.Sprintf("row %d: duplicate name %q in organization %q", n, name, org),
				Hints: []string{
					fmt.Sprintf("first seen in row %d", firstRow),
					"the import may reject duplicates or update existing entries",
				},
			})
			continue
		}
		first[key] = n
	}
	return findings
}

// CheckDuplicateRows warns about rows whose every field equals an
// earlier row.
func CheckDuplicateRows(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	seen := map[string]bool{}

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		key := rowKey(src.Table.Headers, row)
		if seen[key] {
			n := domain.RowNumber(i)
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Kind:     domain.KindDuplicateRow,
				Row:      n,
				Message:  fmt.Sprintf("row %d: appears to be a duplicate of a previous row", n),
				Hints:    []string{"this will create duplicate entries in the target system"},
			})
			continue
		}
		seen[key] = true
	}
	return findings
}

// rowKey builds a comparison key over every header in order. Absent
// cells are distinguished from empty ones so padding differences do
// not collide.
func rowKey(headers []string, row domain.Row) string {
	var b strings.Builder
	for _, h := range headers {
		cell := row.Get(h)
		if cell.Present {
			b.WriteByte('v')
			fmt.Fprintf(&b, "%d:", len(cell.Value))
			b.WriteString(cell.Value)
		} else {
			b.WriteByte('-')
		}
		b.WriteByte('\x1f')
	}
	return b.String()
}
