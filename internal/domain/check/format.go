package check

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/importlint/importlint/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// zeroWidthRunes are invisible code points that survive copy-paste and
// defeat exact-string matching downstream.
var zeroWidthRunes = []string{"\u200b", "\u200c", "\u200d", "\uFEFF"}

func headersContaining(t *domain.Table, tokens ...string) []string {
	var out []string
	for _, h := range t.Headers {
		l := strings.ToLower(h)
		for _, tok := range tokens {
			if strings.Contains(l, tok) {
				out = append(out, h)
				break
			}
		}
	}
	return out
}

func hasWebScheme(v string) bool {
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}

// CheckURLFields validates url/website fields. Values with spaces and
// no web scheme are usually credentials pasted into the wrong column,
// which is an error; spaces inside real URLs are merely encoded on
// write-back.
func CheckURLFields(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	fields := headersContaining(src.Table, "url", "website")
	if len(fields) == 0 {
		return nil
	}

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range fields {
			value := strings.TrimSpace(row.Get(field).Value)
			if value == "" {
				continue
			}
			n := domain.RowNumber(i)

			if strings.Contains(value, " ") {
				if !hasWebScheme(value) {
					findings = append(findings, domain.Finding{
						Severity: domain.SeverityError,
						Kind:     domain.KindURLFormat,
						Row:      n,
						Field:    field,
						Message:  fmt.Sprintf("row %d, field %q: contains spaces and does not look like a URL: %q", n, field, value),
						Hints: []string{
							"this appears to be credentials or text, not a URL",
							`URLs should start with "http://" or "https://"`,
							"if this is a domain/username, move it to the notes field",
						},
					})
				} else {
					findings = append(findings, domain.Finding{
						Severity: domain.SeverityWarning,
						Kind:     domain.KindURLFormat,
						Row:      n,
						Field:    field,
						Message:  fmt.Sprintf("row %d, field %q: URL contains spaces: %q", n, field, value),
						Hints:    []string{"spaces will be encoded as %20"},
						Action: &domain.RemediationAction{
							Kind:  domain.ActionEncodeURLSpaces,
							Field: field,
							Rows:  []int{n},
						},
					})
				}
			}

			if strings.Contains(strings.ToLower(value), ".local") && !strings.HasPrefix(value, "http") {
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityError,
					Kind:     domain.KindURLFormat,
					Row:      n,
					Field:    field,
					Message:  fmt.Sprintf("row %d, field %q: looks like domain credentials, not a URL: %q", n, field, value),
					Hints: []string{
						"move this to the notes field instead",
						"the URL field should contain actual web addresses",
					},
				})
			}

			lower := strings.ToLower(value)
			if strings.Contains(lower, "srvc_") || strings.Contains(lower, "svc_") || strings.Contains(lower, "service") {
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityWarning,
					Kind:     domain.KindURLFormat,
					Row:      n,
					Field:    field,
					Message:  fmt.Sprintf("row %d, field %q: looks like service account info, not a URL: %q", n, field, value),
					Hints:    []string{"consider moving this to the username or notes field"},
				})
			}
		}
	}
	return findings
}

// CheckEmailFields reports email-named fields whose values do not
// match local@domain.tld.
func CheckEmailFields(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	fields := headersContaining(src.Table, "email")
	if len(fields) == 0 {
		return nil
	}

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range fields {
			value := strings.TrimSpace(row.Get(field).Value)
			if value == "" || emailPattern.MatchString(value) {
				continue
			}
			n := domain.RowNumber(i)
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityError,
				Kind:     domain.KindEmailFormat,
				Row:      n,
				Field:    field,
				Message:  fmt.Sprintf("row %d, field %q: invalid email format: %q", n, field, value),
				Hints:    []string{"email must be in the form user@domain.com"},
			})
		}
	}
	return findings
}

// CheckDateFields reports date-named fields whose values are not
// ISO 8601 (YYYY-MM-DD).
func CheckDateFields(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	fields := headersContaining(src.Table, "date", "created", "updated", "valid_until")
	if len(fields) == 0 {
		return nil
	}

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range fields {
			value := strings.TrimSpace(row.Get(field).Value)
			if value == "" || datePattern.MatchString(value) {
				continue
			}
			n := domain.RowNumber(i)
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityError,
				Kind:     domain.KindDateFormat,
				Row:      n,
				Field:    field,
				Message:  fmt.Sprintf("row %d, field %q: date must be YYYY-MM-DD, found %q", n, field, value),
				Hints: []string{
					"example: 2026-01-14",
					"not 01/14/2026 or 14-Jan-2026",
				},
			})
		}
	}
	return findings
}

// CheckEnumFields warns about values outside a profile's closed
// enumerations, listing the valid options.
func CheckEnumFields(src *domain.SourceFile, rt domain.RecordType, _ domain.Config) []domain.Finding {
	profile, ok := domain.ProfileFor(rt)
	if !ok || len(profile.Enums) == 0 {
		return nil
	}

	var findings []domain.Finding
	for enumField, valid := range profile.Enums {
		field := src.Table.HeaderFor(enumField)
		if field == "" {
			continue
		}

		validSet := make(map[string]bool, len(valid))
		for _, v := range valid {
			validSet[v] = true
		}

		for i, row := range src.Table.Rows {
			value := strings.TrimSpace(row.Get(field).Value)
			if value == "" || validSet[value] {
				continue
			}
			n := domain.RowNumber(i)
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Kind:     domain.KindUnknownEnumValue,
				Row:      n,
				Field:    field,
				Message:  fmt.Sprintf("row %d: unknown %s: %q", n, field, value),
				Hints: []string{
					"valid options: " + strings.Join(valid, ", "),
					"the import may be rejected if the value does not exist",
				},
			})
		}
	}
	return findings
}

// CheckControlCharacters warns about NUL bytes and doubled line
// endings, which confuse CSV parsers.
func CheckControlCharacters(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	problematic := []struct{ seq, name string }{
		{"\x00", `NUL character (\x00)`},
		{"\r\r", `double carriage return (\r\r)`},
		{"\n\n", `double line feed (\n\n)`},
	}

	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range src.Table.Headers {
			cell := row.Get(field)
			if !cell.Present || cell.Value == "" {
				continue
			}
			for _, p := range problematic {
				if !strings.Contains(cell.Value, p.seq) {
					continue
				}
				n := domain.RowNumber(i)
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityWarning,
					Kind:     domain.KindControlChars,
					Row:      n,
					Field:    field,
					Message:  fmt.Sprintf("row %d, field %q: contains %s", n, field, p.name),
					Hints:    []string{"this can cause CSV parsing errors"},
					Action: &domain.RemediationAction{
						Kind:  domain.ActionStripInvisible,
						Field: field,
						Rows:  []int{n},
					},
				})
			}
		}
	}
	return findings
}

// CheckFieldLengths enforces the hard length ceiling and flags values
// over the soft threshold.
func CheckFieldLengths(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range src.Table.Headers {
			cell := row.Get(field)
			if !cell.Present {
				continue
			}
			length := len(cell.Value)
			n := domain.RowNumber(i)
			switch {
			case length > domain.HardFieldLimit:
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityError,
					Kind:     domain.KindFieldTooLong,
					Row:      n,
					Field:    field,
					Message:  fmt.Sprintf("row %d, field %q: value exceeds maximum length (%d characters)", n, field, length),
					Hints:    []string{fmt.Sprintf("maximum allowed: %d characters", domain.HardFieldLimit)},
				})
			case length > domain.SoftFieldLimit:
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityWarning,
					Kind:     domain.KindFieldTooLong,
					Row:      n,
					Field:    field,
					Message:  fmt.Sprintf("row %d, field %q: very long value (%d characters)", n, field, length),
					Hints:    []string{"consider breaking this into smaller chunks"},
				})
			}
		}
	}
	return findings
}

// CheckInvisibleCharacters warns about zero-width code points.
func CheckInvisibleCharacters(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range src.Table.Headers {
			cell := row.Get(field)
			if !cell.Present || cell.Value == "" {
				continue
			}
			for _, zw := range zeroWidthRunes {
				if !strings.Contains(cell.Value, zw) {
					continue
				}
				n := domain.RowNumber(i)
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityWarning,
					Kind:     domain.KindInvisibleChars,
					Row:      n,
					Field:    field,
					Message:  fmt.Sprintf("row %d, field %q: contains zero-width/invisible character", n, field),
					Hints:    []string{"this can cause matching failures in the target system"},
					Action: &domain.RemediationAction{
						Kind:  domain.ActionStripInvisible,
						Field: field,
						Rows:  []int{n},
					},
				})
				break
			}
		}
	}
	return findings
}

// CheckEmbeddedSeparators warns about commas and line breaks inside
// values. They are not invalid, but the cells must be quoted on
// write-back.
func CheckEmbeddedSeparators(src *domain.SourceFile, _ domain.RecordType, _ domain.Config) []domain.Finding {
	var findings []domain.Finding
	for i, row := range src.Table.Rows {
		for _, field := range src.Table.Headers {
			cell := row.Get(field)
			if !cell.Present || cell.Value == "" {
				continue
			}
			hasComma := strings.Contains(cell.Value, ",")
			hasBreak := strings.ContainsAny(cell.Value, "\r\n")
			if !hasComma && !hasBreak {
				continue
			}

			what := "comma(s)"
			if hasBreak && !hasComma {
				what = "line breaks"
			} else if hasBreak {
				what = "comma(s) and line breaks"
			}

			n := domain.RowNumber(i)
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Kind:     domain.KindNeedsQuoting,
				Row:      n,
				Field:    field,
				Message:  fmt.Sprintf("row %d, field %q: contains %s", n, field, what),
				Hints:    []string{"the field will be properly quoted in a fixed copy"},
				Action: &domain.RemediationAction{
					Kind:  domain.ActionRequoteField,
					Field: field,
					Rows:  []int{n},
				},
			})
		}
	}
	return findings
}
