package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/importlint/importlint/internal/domain"
)

// registerResources registers all importlint MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// importlint://profiles - record type profiles
	s.AddResource(
		mcplib.NewResource(
			"importlint://profiles",
			"Record Type Profiles",
			mcplib.WithResourceDescription("Required, recommended, and enumerated headers for every known record type"),
			mcplib.WithMIMEType("application/json"),
		),
		handleProfilesResource(),
	)
}

func handleProfilesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(domain.Profiles, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling profiles: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
