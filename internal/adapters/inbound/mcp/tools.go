package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/importlint/importlint/internal/adapters/outbound/config"
	"github.com/importlint/importlint/internal/adapters/outbound/csvio"
	"github.com/importlint/importlint/internal/adapters/outbound/gitinfo"
	"github.com/importlint/importlint/internal/adapters/outbound/history"
	"github.com/importlint/importlint/internal/application"
	"github.com/importlint/importlint/internal/domain"
)

// registerTools registers all importlint MCP tools on the given server.
func registerTools(s *server.MCPServer, workDir string) {
	// 1. importlint_validate
	s.AddTool(
		mcplib.NewTool("importlint_validate",
			mcplib.WithDescription("Validate a CSV import file and return the full report as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the CSV file, absolute or relative to the working directory"),
			),
		),
		handleValidate(workDir),
	)

	// 2. importlint_fix
	s.AddTool(
		mcplib.NewTool("importlint_fix",
			mcplib.WithDescription("Apply every mechanical fix a CSV file's findings license and write <name>_fixed.csv next to it. The original is never modified."),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the CSV file, absolute or relative to the working directory"),
			),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report what would change without writing a file")),
			mcplib.WithString("fills", mcplib.Description("Fill values for empty fields, as comma-separated field=value pairs (e.g. username=N/A,password_category=General)")),
			mcplib.WithString("skip_fills", mcplib.Description("Comma-separated field names to leave empty instead of filling")),
		),
		handleFix(workDir),
	)

	// 3. importlint_profiles
	s.AddTool(
		mcplib.NewTool("importlint_profiles",
			mcplib.WithDescription("Returns the header requirements for every known record type"),
		),
		handleProfiles(),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.ValidateService, *application.FixService) {
	validateSvc := application.NewValidateService(
		csvio.NewReader(),
		config.New(),
		history.New(),
		gitinfo.New(),
	)
	return validateSvc, application.NewFixService(validateSvc, csvio.NewWriter())
}

func handleValidate(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		validateSvc, _ := newServices()
		report, err := validateSvc.Validate(resolve(workDir, file))
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleFix(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		fills, _ := args["fills"].(string)
		skipFills, _ := args["skip_fills"].(string)
		dryRun, _ := args["dry_run"].(bool)

		choices, err := parseChoicesArg(fills, skipFills)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, fixSvc := newServices()
		res, err := fixSvc.Fix(resolve(workDir, file), domain.FixOptions{
			DryRun:  dryRun,
			Choices: choices,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleProfiles() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.Profiles)
	}
}

// parseChoicesArg parses the fills and skip_fills tool arguments into
// resolved choices. A field named in both is rejected.
func parseChoicesArg(fills, skipFills string) (domain.ResolvedChoices, error) {
	if fills == "" && skipFills == "" {
		return nil, nil
	}

	choices := domain.ResolvedChoices{}
	for _, pair := range splitList(fills) {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid fill %q: expected field=value", pair)
		}
		choices.Set(field, domain.FieldChoice{Value: value})
	}
	for _, field := range splitList(skipFills) {
		if _, taken := choices.Choice(field); taken {
			return nil, fmt.Errorf("field %q appears in both fills and skip_fills", field)
		}
		choices.Set(field, domain.FieldChoice{Skip: true})
	}
	return choices, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func resolve(workDir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(workDir, file)
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error result with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
