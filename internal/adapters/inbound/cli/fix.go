package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/importlint/importlint/internal/adapters/outbound/config"
	"github.com/importlint/importlint/internal/adapters/outbound/csvio"
	"github.com/importlint/importlint/internal/adapters/outbound/gitinfo"
	"github.com/importlint/importlint/internal/adapters/outbound/history"
	"github.com/importlint/importlint/internal/adapters/outbound/tui"
	"github.com/importlint/importlint/internal/application"
	"github.com/importlint/importlint/internal/domain"
)

func newFixCmd() *cobra.Command {
	var (
		dryRun     bool
		jsonOutput bool
		fills      []string
		skips      []string
	)

	cmd := &cobra.Command{
		Use:   "fix <file>",
		Short: "Write a corrected copy of a CSV import file",
		Long:  "Validate a CSV file, apply every mechanical fix its findings license, and write the result to <name>_fixed.csv next to the original. The original is never modified.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			choices, err := parseChoices(fills, skips)
			if err != nil {
				return err
			}

			validateSvc := application.NewValidateService(
				csvio.NewReader(),
				config.New(),
				history.New(),
				gitinfo.New(),
			)
			fixSvc := application.NewFixService(validateSvc, csvio.NewWriter())

			res, err := fixSvc.Fix(args[0], domain.FixOptions{
				DryRun:  dryRun,
				Choices: choices,
			})
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixResult(res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be fixed without writing a file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringArrayVar(&fills, "fill", nil, "Fill value for an empty field, as field=value (repeatable)")
	cmd.Flags().StringArrayVar(&skips, "skip-fill", nil, "Leave a field empty instead of filling it (repeatable)")

	return cmd
}

// parseChoices turns --fill field=value and --skip-fill field flags
// into resolved choices. A field named in both is an operator error.
func parseChoices(fills, skips []string) (domain.ResolvedChoices, error) {
	if len(fills) == 0 && len(skips) == 0 {
		return nil, nil
	}

	choices := domain.ResolvedChoices{}
	for _, fill := range fills {
		field, value, ok := strings.Cut(fill, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --fill %q: expected field=value", fill)
		}
		choices.Set(field, domain.FieldChoice{Value: value})
	}
	for _, field := range skips {
		if field == "" {
			return nil, fmt.Errorf("invalid --skip-fill: field name is empty")
		}
		if _, taken := choices.Choice(field); taken {
			return nil, fmt.Errorf("field %q has both --fill and --skip-fill", field)
		}
		choices.Set(field, domain.FieldChoice{Skip: true})
	}
	return choices, nil
}
