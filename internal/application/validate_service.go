package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/importlint/importlint/internal/domain"
	"github.com/importlint/importlint/internal/domain/check"
	"github.com/importlint/importlint/internal/domain/detect"
)

// ValidateService runs the full validation pipeline for one file:
// load, detect the record type, run the check suite, aggregate, and
// record the run. Each invocation is self-contained, so a batch
// driver may validate files in parallel.
type ValidateService struct {
	reader       domain.FileReader
	configLoader domain.ConfigLoader
	history      domain.RunHistory
	gitInfo      domain.GitInfo
}

// NewValidateService creates a ValidateService with all required
// dependencies.
func NewValidateService(
	reader domain.FileReader,
	configLoader domain.ConfigLoader,
	history domain.RunHistory,
	gitInfo domain.GitInfo,
) *ValidateService {
	return &ValidateService{
		reader: reader, configLoader: configLoader,
		history: history, gitInfo: gitInfo,
	}
}

// Validate validates one file and appends the outcome to the run
// history. Fatal conditions (missing file, undecodable content, no
// header row) surface as errors; everything found past parsing is a
// finding in the report.
func (s *ValidateService) Validate(path string) (*domain.Report, error) {
	report, _, cfg, err := s.Inspect(path)
	if err != nil {
		return nil, err
	}

	if !cfg.NoHistory {
		s.record(path, report)
	}
	return report, nil
}

// Inspect runs the pipeline without touching the history log and
// additionally returns the parsed source and effective config. The
// fix pipeline builds on this.
func (s *ValidateService) Inspect(path string) (*domain.Report, *domain.SourceFile, domain.Config, error) {
	dir := filepath.Dir(path)

	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return nil, nil, domain.Config{}, fmt.Errorf("loading config: %w", err)
	}

	src, err := s.reader.Read(path)
	if err != nil {
		return nil, nil, cfg, err
	}

	rt, detected := detect.Detect(src.Table.Headers, src.Name)
	report := check.Run(src, rt, detected, cfg)
	report.File = src.Name

	return report, src, cfg, nil
}

// record appends a run entry beside the file. History failures never
// fail a validation.
func (s *ValidateService) record(path string, report *domain.Report) {
	dir := filepath.Dir(path)

	entry := domain.RunEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		File:      report.File,
		Type:      string(report.DetectedType),
		Errors:    len(report.Errors()),
		Warnings:  len(report.Warnings()),
		Passed:    report.Passed(),
	}
	if s.gitInfo != nil && s.gitInfo.IsGitRepo(dir) {
		if hash, err := s.gitInfo.CommitHash(dir); err == nil {
			entry.CommitHash = hash
		}
	}

	_ = s.history.Save(dir, entry)
}
