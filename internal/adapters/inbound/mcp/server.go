package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/smartreview/internal/domain"
)

// Reviewer is the review pipeline exposed over MCP.
type Reviewer interface {
	ReviewSource(path, source string) domain.ReviewReport
	ReviewPath(ctx context.Context, path string, excludes ...string) ([]domain.ReviewReport, error)
}

// NewSmartReviewMCPServer creates a new MCP server with all review tools and
// resources registered. Paths given to tools are resolved against rootPath
// and may not leave it.
func NewSmartReviewMCPServer(rootPath string, reviewer Reviewer, excludes []string, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"smartreview",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, rootPath, reviewer, excludes)
	registerResources(s, rootPath, reviewer, excludes)

	return s
}
