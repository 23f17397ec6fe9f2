package cli

import (
	mcpadapter "github.com/importlint/importlint/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the importlint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var workDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start importlint MCP server (stdio)",
		Long:  "Start the importlint MCP server using stdio transport. This allows AI coding assistants to validate and fix CSV import files before handing them to an operator.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workDir == "" {
				workDir = "."
			}
			s := mcpadapter.NewImportLintMCPServer(workDir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&workDir, "path", "", "Working directory file arguments resolve against (defaults to current working directory)")

	return cmd
}
