package mcp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/smartreview/internal/adapters/outbound/tui"
	"github.com/abdidvp/smartreview/internal/application"
	"github.com/abdidvp/smartreview/internal/domain"
)

const defaultFilename = "snippet.py"

// registerTools registers all review tools on the given server.
func registerTools(s *server.MCPServer, rootPath string, reviewer Reviewer, excludes []string) {
	s.AddTool(
		mcplib.NewTool("review_source",
			mcplib.WithDescription("Review a snippet of source code for readability, structure and maintainability. Returns the report as JSON."),
			mcplib.WithString("source",
				mcplib.Required(),
				mcplib.Description("Source code to review"),
			),
			mcplib.WithString("filename",
				mcplib.Description("File name used to pick the language (default: snippet.py)"),
			),
		),
		handleReviewSource(reviewer),
	)

	s.AddTool(
		mcplib.NewTool("review_path",
			mcplib.WithDescription("Review a file or every supported file below a directory of the project. Returns the reports as JSON."),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("File or directory relative to the project root"),
			),
		),
		handleReviewPath(rootPath, reviewer, excludes),
	)
}

func handleReviewSource(reviewer Reviewer) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		source, err := request.RequireString("source")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		filename := request.GetString("filename", defaultFilename)

		report := reviewer.ReviewSource(filename, source)
		return documentResult([]domain.ReviewReport{report})
	}
}

func handleReviewPath(rootPath string, reviewer Reviewer, excludes []string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rel, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		target, err := resolve(rootPath, rel)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		reports, err := reviewer.ReviewPath(ctx, target, excludes...)
		if err != nil {
			if errors.Is(err, application.ErrPathNotFound) {
				return errorResult(fmt.Sprintf("path does not exist: %s", rel)), nil
			}
			return errorResult(fmt.Sprintf("review failed: %v", err)), nil
		}
		if len(reports) == 0 {
			return textResult("No supported files found."), nil
		}
		return documentResult(reports)
	}
}

// resolve joins rel onto rootPath, rejecting paths that escape it.
func resolve(rootPath, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path must be relative to the project root: %s", rel)
	}
	cleaned := filepath.Clean(rel)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes the project root: %s", rel)
	}
	return filepath.Join(rootPath, cleaned), nil
}

func documentResult(reports []domain.ReviewReport) (*mcplib.CallToolResult, error) {
	text, err := tui.RenderJSON(reports)
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return textResult(text), nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
