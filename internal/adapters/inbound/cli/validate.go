package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/importlint/importlint/internal/adapters/outbound/config"
	"github.com/importlint/importlint/internal/adapters/outbound/csvio"
	"github.com/importlint/importlint/internal/adapters/outbound/gitinfo"
	"github.com/importlint/importlint/internal/adapters/outbound/history"
	"github.com/importlint/importlint/internal/adapters/outbound/tui"
	"github.com/importlint/importlint/internal/application"
	"github.com/importlint/importlint/internal/domain"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file|dir> [file...]",
		Short: "Validate CSV import files",
		Long:  "Run the full check suite against one or more CSV files. Passing a directory validates every .csv file in it. Exits non-zero when any file has errors.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectCSVPaths(args)
			if err != nil {
				return err
			}

			svc := application.NewValidateService(
				csvio.NewReader(),
				config.New(),
				history.New(),
				gitinfo.New(),
			)

			reports := make([]*domain.Report, 0, len(paths))
			for _, path := range paths {
				report, err := svc.Validate(path)
				if err != nil {
					return fmt.Errorf("validating %s: %w", path, err)
				}
				reports = append(reports, report)
			}

			if jsonOutput {
				return renderReportsJSON(cmd, reports)
			}

			for _, report := range reports {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}
			if len(reports) > 1 {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(reports))
			}

			return validationExitErr(reports, strict)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")

	return cmd
}

// collectCSVPaths expands directory arguments into the .csv files they
// contain and keeps file arguments as-is. Order is deterministic.
func collectCSVPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.csv"))
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no .csv files found in %s", arg)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

func validationExitErr(reports []*domain.Report, strict bool) error {
	var failed []string
	for _, report := range reports {
		verdict := report.Verdict()
		if verdict == domain.VerdictFail || (strict && verdict == domain.VerdictReview) {
			failed = append(failed, report.File)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed for %s", strings.Join(failed, ", "))
}

func renderReportsJSON(cmd *cobra.Command, reports []*domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}
