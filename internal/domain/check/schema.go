package check

import (
	"fmt"
	"strings"

	"github.com/importlint/importlint/internal/domain"
)

// CheckRequiredHeaders reports required fields with no header at all,
// matching case-insensitively so a case-mismatched variant does not
// count as missing (that is CheckHeaderCase's finding).
func CheckRequiredHeaders(src *domain.SourceFile, rt domain.RecordType, _ domain.Config) []domain.Finding {
	profile, ok := domain.ProfileFor(rt)
	if !ok {
		return nil
	}

	var missing []string
	for _, req := range profile.Required {
		if src.Table.HeaderFor(req) == "" {
			missing = append(missing, req)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	hints := []string{
		fmt.Sprintf("detected record type: %s", rt),
		"current headers: " + strings.Join(src.Table.Headers, ", "),
	}
	if rt == domain.TypePasswords {
		hints = append(hints,
			"password imports require organization, name, username and password",
			"rows without credentials cannot be imported without placeholder values")
	}
	hints = append(hints, "add these columns to the file")

	return []domain.Finding{{
		Severity: domain.SeverityError,
		Kind:     domain.KindMissingRequired,
		Message:  "missing required fields: " + strings.Join(missing, ", "),
		Hints:    hints,
		Action: &domain.RemediationAction{
			Kind:    domain.ActionAddMissingColumn,
			Field:   strings.Join(missing, ","),
			Options: missing,
		},
	}}
}

// CheckHeaderCase reports headers that match an expected field only
// when case is ignored. The target system is case-sensitive on
// headers, so these imports fail outright.
func CheckHeaderCase(src *domain.SourceFile, rt domain.RecordType, _ domain.Config) []domain.Finding {
	profile, ok := domain.ProfileFor(rt)
	if !ok {
		return nil
	}

	expected := append([]string(nil), profile.Required...)
	expected = append(expected, profile.OptionalKnown...)

	var findings []domain.Finding
	for _, want := range expected {
		for _, h := range src.Table.Headers {
			if strings.EqualFold(h, want) && h != want {
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityError,
					Kind:     domain.KindHeaderCase,
					Field:    h,
					Message:  fmt.Sprintf("header case mismatch: %q should be %q", h, want),
					Hints: []string{
						"the import system is case-sensitive with field names",
						"this will cause the import to fail",
					},
					Action: &domain.RemediationAction{
						Kind: domain.ActionRenameHeader,
						From: h,
						To:   want,
					},
				})
			}
		}
	}
	return findings
}

// CheckExportOnlyColumns warns about columns that only appear in
// exports and are ignored or rejected on import.
func CheckExportOnlyColumns(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	var findings []domain.Finding
	for _, h := range src.Table.Headers {
		for _, bad := range domain.ExportOnlyColumns {
			if strings.EqualFold(h, bad) {
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityWarning,
					Kind:     domain.KindExportOnlyColumn,
					Field:    h,
					Message:  fmt.Sprintf("column %q found in file", h),
					Hints: []string{
						"this is typically an export-only field",
						"the import may ignore or reject this column",
					},
				})
			}
		}
	}
	return findings
}

// CheckEmptyRequiredFields reports every row with a blank required
// field, tracking the affected row list per field so remediation can
// fill them uniformly.
func CheckEmptyRequiredFields(src *domain.SourceFile, rt domain.RecordType, _ domain.Config) []domain.Finding {
	profile, ok := domain.ProfileFor(rt)
	if !ok {
		return nil
	}

	fields := requiredHeaders(src.Table, profile)
	emptyRows := make(map[string][]int)

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range fields {
			if !row.Get(field).IsBlank() {
				continue
			}
			n := domain.RowNumber(i)
			emptyRows[field] = append(emptyRows[field], n)

			hints := []string{fmt.Sprintf("every row must have a value for %q", field)}
			if rt == domain.TypePasswords && isCredentialField(field) {
				hints = append(hints, `a placeholder like "N/A" or "(See Notes)" is acceptable`)
			}
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityError,
				Kind:     domain.KindEmptyRequired,
				Row:      n,
				Field:    field,
				Message:  fmt.Sprintf("row %d: required field %q is empty", n, field),
				Hints:    hints,
			})
		}
	}

	// One fill action per field, attached to the first affected finding
	// so the report carries each action exactly once.
	for fi := range findings {
		f := &findings[fi]
		rows := emptyRows[f.Field]
		if len(rows) > 0 && f.Row == rows[0] {
			f.Action = &domain.RemediationAction{
				Kind:    domain.ActionFillEmptyField,
				Field:   f.Field,
				Rows:    rows,
				Options: domain.FillOptions(f.Field),
				Default: domain.DefaultFill(f.Field),
			}
		}
	}
	return findings
}

// CheckEmptyRecommendedFields warns about blank recommended fields,
// showing only the first few rows before summarizing the total.
func CheckEmptyRecommendedFields(src *domain.SourceFile, rt domain.RecordType, cfg domain.Config) []domain.Finding {
	profile, ok := domain.ProfileFor(rt)
	if !ok || len(profile.Recommended) == 0 {
		return nil
	}

	warnCap := cfg.WarnCap()
	var findings []domain.Finding
	for _, rec := range profile.Recommended {
		field := src.Table.HeaderFor(rec)
		if field == "" {
			continue
		}

		var rows []int
		for i, row := range src.Table.Rows {
			if row.Get(field).IsBlank() {
				rows = append(rows, domain.RowNumber(i))
			}
		}
		if len(rows) == 0 {
			continue
		}

		for _, n := range rows[:minInt(len(rows), warnCap)] {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Kind:     domain.KindEmptyRecommended,
				Row:      n,
				Field:    field,
				Message:  fmt.Sprintf("row %d: recommended field %q is empty", n, field),
			})
		}
		if len(rows) > warnCap {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Kind:     domain.KindEmptyRecommended,
				Field:    field,
				Message:  fmt.Sprintf("field %q is empty in %d total rows", field, len(rows)),
				Hints:    []string{"consider filling in these values before import"},
			})
		}

		findings[len(findings)-1].Action = &domain.RemediationAction{
			Kind:    domain.ActionFillEmptyField,
			Field:   field,
			Rows:    rows,
			Options: domain.FillOptions(field),
			Default: domain.DefaultFill(field),
		}
	}
	return findings
}

func isCredentialField(field string) bool {
	l := strings.ToLower(field)
	return l == "username" || l == "password"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
