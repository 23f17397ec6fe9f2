package application

import (
	"fmt"

	"github.com/importlint/importlint/internal/adapters/outbound/csvio"
	"github.com/importlint/importlint/internal/domain"
	"github.com/importlint/importlint/internal/domain/remediate"
)

// FixService orchestrates the remediation pipeline: validate, collect
// the licensed actions, apply them, write the corrected copy, verify.
// The source file is never modified; output goes to a sibling file
// with a fixed suffix.
type FixService struct {
	validateService *ValidateService
	writer          domain.FileWriter
}

func NewFixService(validate *ValidateService, writer domain.FileWriter) *FixService {
	return &FixService{validateService: validate, writer: writer}
}

// Fix validates the file and applies every remediation action its
// findings license. Ambiguous fills resolve from opts.Choices, then
// from the config's default_fills, then from the documented defaults;
// the engine never prompts. Write failures are remediation failures,
// reported distinctly from validation findings, and never leave a
// half-written output behind.
func (s *FixService) Fix(path string, opts domain.FixOptions) (*domain.FixResult, error) {
	report, src, cfg, err := s.validateService.Inspect(path)
	if err != nil {
		return nil, err
	}

	choices := mergeChoices(cfg, opts.Choices)
	applied := remediate.Apply(src.Table, report.Actions(), choices)

	result := &domain.FixResult{
		InputPath: path,
		Applied:   applied.Applied,
		Warnings:  applied.Warnings,
		Report:    report,
	}

	if opts.DryRun {
		return result, nil
	}

	outPath := csvio.FixedPath(path)
	if err := s.writer.Write(outPath, applied.Table); err != nil {
		return nil, fmt.Errorf("creating fixed file: %w", err)
	}
	result.OutputPath = outPath

	// The writer never emits a byte-order mark; confirm on the actual
	// bytes. A failure here is a tool defect, not an operator error.
	if err := s.writer.VerifyNoBOM(outPath); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	} else {
		result.Verified = true
	}

	return result, nil
}

// mergeChoices overlays explicit fill choices on the config's
// default_fills. Explicit choices always win.
func mergeChoices(cfg domain.Config, explicit domain.ResolvedChoices) domain.ResolvedChoices {
	merged := domain.ResolvedChoices{}
	for field, value := range cfg.DefaultFills {
		merged.Set(field, domain.FieldChoice{Value: value})
	}
	for field, choice := range explicit {
		merged.Set(field, choice)
	}
	return merged
}
