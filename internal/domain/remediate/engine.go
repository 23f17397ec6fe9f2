// Package remediate turns the remediation actions produced by the
// check suite into a corrected table. The engine is a pure transform:
// it clones the input, never blocks, and resolves every ambiguous fill
// from the supplied choice map or a documented default. Every transform
// is idempotent, so remediating an already-remediated table is a no-op.
package remediate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/importlint/importlint/internal/domain"
)

var (
	doubledCR = regexp.MustCompile(`\r{2,}`)
	doubledLF = regexp.MustCompile(`\n{2,}`)
)

// Result holds the corrected table plus what was done to get there.
type Result struct {
	Table    *domain.Table
	Applied  []domain.AppliedFix
	Warnings []string
}

// Apply executes the action set against a clone of the table. Header
// renames run before column additions, and additions before row fills,
// so each step sees the corrected header set. A cell normalization
// pass over every remaining cell finishes the run.
func Apply(table *domain.Table, actions []domain.RemediationAction, choices domain.ResolvedChoices) *Result {
	out := table.Clone()
	res := &Result{}

	applyHeaderRenames(out, actions, res)
	applyColumnAdditions(out, actions, choices, res)
	applyFills(out, actions, choices, res)
	normalizeCells(out, res)

	res.Table = out
	return res
}

func applyHeaderRenames(t *domain.Table, actions []domain.RemediationAction, res *Result) {
	renames := map[string]string{}
	for _, a := range actions {
		if a.Kind == domain.ActionRenameHeader && a.From != a.To {
			renames[a.From] = a.To
		}
	}
	if len(renames) == 0 {
		return
	}

	for i, h := range t.Headers {
		to, ok := renames[h]
		if !ok {
			continue
		}
		t.Headers[i] = to
		for _, row := range t.Rows {
			if cell, present := row[h]; present {
				row[to] = cell
				delete(row, h)
			}
		}
		res.Applied = append(res.Applied, domain.AppliedFix{
			Kind:        domain.ActionRenameHeader,
			Field:       to,
			Description: fmt.Sprintf("renamed header %q to %q", h, to),
		})
	}
}

func applyColumnAdditions(t *domain.Table, actions []domain.RemediationAction, choices domain.ResolvedChoices, res *Result) {
	for _, a := range actions {
		if a.Kind != domain.ActionAddMissingColumn {
			continue
		}
		for _, col := range a.Options {
			if t.HeaderFor(col) != "" {
				continue // already present, possibly via a rename
			}

			value := ""
			if choice, ok := choices.Choice(col); ok && !choice.Skip {
				value = choice.Value
			}

			t.Headers = append(t.Headers, col)
			for _, row := range t.Rows {
				row[col] = domain.Cell{Value: value, Present: true}
			}

			desc := fmt.Sprintf("added missing column %q", col)
			if value != "" {
				desc += fmt.Sprintf(" with default %q", value)
			}
			res.Applied = append(res.Applied, domain.AppliedFix{
				Kind:        domain.ActionAddMissingColumn,
				Field:       col,
				Cells:       len(t.Rows),
				Description: desc,
			})
		}
	}
}

// applyFills fills every blank cell of each targeted field with one
// uniform resolved value. Partial per-row choices are not supported.
// An explicit skip leaves the cells empty and records that the import
// may still fail; it never suppresses the validation error.
func applyFills(t *domain.Table, actions []domain.RemediationAction, choices domain.ResolvedChoices, res *Result) {
	done := map[string]bool{}
	for _, a := range actions {
		if a.Kind != domain.ActionFillEmptyField {
			continue
		}
		field := t.HeaderFor(a.Field)
		if field == "" || done[strings.ToLower(field)] {
			continue
		}
		done[strings.ToLower(field)] = true

		value := a.Default
		if value == "" {
			value = domain.DefaultFill(field)
		}
		if choice, ok := choices.Choice(field); ok {
			// An explicit empty value is a skip in disguise.
			if choice.Skip || choice.Value == "" {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("field %q left empty by choice; the import may still fail", field))
				continue
			}
			value = choice.Value
		}
		if value == "" {
			continue
		}

		filled := 0
		for _, row := range t.Rows {
			if row.Get(field).IsBlank() {
				row[field] = domain.Cell{Value: value, Present: true}
				filled++
			}
		}
		if filled > 0 {
			res.Applied = append(res.Applied, domain.AppliedFix{
				Kind:        domain.ActionFillEmptyField,
				Field:       field,
				Cells:       filled,
				Description: fmt.Sprintf("filled %d empty %q cells with %q", filled, field, value),
			})
		}
	}
}

// normalizeCells runs the order-independent string fixes over every
// cell: NUL strip, doubled line-ending collapse, zero-width strip,
// whitespace-only to true empty, trim, and percent-encoding of spaces
// in scheme-prefixed URL values. Values in url fields without a web
// scheme are left untouched; remediation must not silently destroy
// ambiguous data.
func normalizeCells(t *domain.Table, res *Result) {
	counts := map[domain.ActionKind]int{}

	for _, row := range t.Rows {
		for _, field := range t.Headers {
			cell, present := row[field]
			if !present || !cell.Present || cell.Value == "" {
				continue
			}
			value := cell.Value

			if strings.Contains(value, "\x00") {
				value = strings.ReplaceAll(value, "\x00", "")
				counts[domain.ActionStripInvisible]++
			}
			if doubledCR.MatchString(value) || doubledLF.MatchString(value) {
				value = doubledCR.ReplaceAllString(value, "\r")
				value = doubledLF.ReplaceAllString(value, "\n")
				counts[domain.ActionStripInvisible]++
			}
			for _, zw := range []string{"\u200b", "\u200c", "\u200d", "\uFEFF"} {
				if strings.Contains(value, zw) {
					value = strings.ReplaceAll(value, zw, "")
					counts[domain.ActionStripInvisible]++
				}
			}

			trimmed := strings.TrimSpace(value)
			if trimmed != value {
				// Whitespace-only cells become true empty, never a
				// deleted row; everything else is trimmed.
				value = trimmed
				counts[domain.ActionNormalizeWhitespace]++
			}

			if strings.Contains(strings.ToLower(field), "url") &&
				hasWebScheme(value) && strings.Contains(value, " ") {
				value = strings.ReplaceAll(value, " ", "%20")
				counts[domain.ActionEncodeURLSpaces]++
			}

			if value != cell.Value {
				row[field] = domain.Cell{Value: value, Present: true}
			}
		}
	}

	report := []struct {
		kind domain.ActionKind
		desc string
	}{
		{domain.ActionStripInvisible, "removed NUL, doubled line endings and zero-width characters"},
		{domain.ActionNormalizeWhitespace, "normalized whitespace (whitespace-only cells emptied, values trimmed)"},
		{domain.ActionEncodeURLSpaces, "encoded URL spaces as %20 (http/https values only)"},
	}
	for _, r := range report {
		if counts[r.kind] > 0 {
			res.Applied = append(res.Applied, domain.AppliedFix{
				Kind:        r.kind,
				Cells:       counts[r.kind],
				Description: r.desc,
			})
		}
	}
}

func hasWebScheme(v string) bool {
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}
