package mcp

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/smartreview/internal/adapters/outbound/tui"
)

const reportURI = "smartreview://report"

// registerResources registers the project report resource.
func registerResources(s *server.MCPServer, rootPath string, reviewer Reviewer, excludes []string) {
	s.AddResource(
		mcplib.NewResource(
			reportURI,
			"Project Review",
			mcplib.WithResourceDescription("Review reports for every supported file in the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(rootPath, reviewer, excludes),
	)
}

func handleReportResource(rootPath string, reviewer Reviewer, excludes []string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		reports, err := reviewer.ReviewPath(ctx, rootPath, excludes...)
		if err != nil {
			return nil, fmt.Errorf("review failed: %w", err)
		}

		text, err := tui.RenderJSON(reports)
		if err != nil {
			return nil, fmt.Errorf("marshaling reports: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      reportURI,
				MIMEType: "application/json",
				Text:     text,
			},
		}, nil
	}
}
