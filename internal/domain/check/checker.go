// Package check implements the validation suite for import files.
// Every check is a pure function over an immutable SourceFile
// snapshot; checks never depend on one another's findings, and the
// runner owns all accumulation. The fixed order exists only for
// report readability.
package check

import (
	"fmt"
	"strings"

	"github.com/importlint/importlint/internal/domain"
)

// Check inspects a loaded file and returns zero or more findings.
// rt is empty when type detection failed; type-dependent checks must
// return nil in that case rather than guessing.
type Check func(src *domain.SourceFile, rt domain.RecordType, cfg domain.Config) []domain.Finding

// suite is the full battery in report order: schema first, then
// encoding/structure, then content semantics, then field formats.
var suite = []Check{
	CheckByteOrderMark,
	CheckRequiredHeaders,
	CheckHeaderCase,
	CheckExportOnlyColumns,
	CheckEmptyRequiredFields,
	CheckEmptyRecommendedFields,
	CheckIncompleteRows,
	CheckWhitespaceOnlyCells,
	CheckQuoteBalance,
	CheckTrailingDelimiters,
	CheckColumnCounts,
	CheckRowCount,
	CheckPlaceholderScopes,
	CheckScopeNames,
	CheckMultipleScopes,
	CheckDuplicateNames,
	CheckDuplicateRows,
	CheckURLFields,
	CheckEmailFields,
	CheckDateFields,
	CheckEnumFields,
	CheckControlCharacters,
	CheckFieldLengths,
	CheckInvisibleCharacters,
	CheckEmbeddedSeparators,
}

// Run executes the whole suite and aggregates findings into a report.
// A failed detection contributes a single advisory finding; the
// type-dependent checks then see an empty type and skip themselves.
func Run(src *domain.SourceFile, rt domain.RecordType, detected bool, cfg domain.Config) *domain.Report {
	report := &domain.Report{File: src.Path, DetectedType: rt}

	if !detected && !cfg.Skips(domain.KindUnknownType) {
		report.Add(unknownTypeFinding(src))
	}

	for _, c := range suite {
		for _, f := range c(src, rt, cfg) {
			if cfg.Skips(f.Kind) {
				continue
			}
			report.Add(f)
		}
	}
	return report
}

func unknownTypeFinding(src *domain.SourceFile) domain.Finding {
	keys := make([]string, 0, len(domain.TypeKeys()))
	for _, k := range domain.TypeKeys() {
		keys = append(keys, string(k))
	}
	return domain.Finding{
		Severity: domain.SeverityWarning,
		Kind:     domain.KindUnknownType,
		Message:  "could not determine record type from headers or filename",
		Hints: []string{
			"known types: " + strings.Join(keys, ", "),
			"current headers: " + strings.Join(src.Table.Headers, ", "),
			"ensure the file has the correct headers for the import type",
			fmt.Sprintf("or rename the file to include the type (e.g. %q)", "passwords.csv"),
		},
	}
}

// requiredHeaders resolves a profile's required fields to the actual
// header strings present in the table (case-insensitive). Fields with
// no matching header are omitted.
func requiredHeaders(t *domain.Table, p domain.Profile) []string {
	var out []string
	for _, req := range p.Required {
		if h := t.HeaderFor(req); h != "" {
			out = append(out, h)
		}
	}
	return out
}
