package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewImportLintMCPServer creates a new MCP server with all importlint
// tools and resources registered. The workDir is the directory file
// arguments are resolved against.
func NewImportLintMCPServer(workDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"importlint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, workDir)
	registerResources(s)

	return s
}
