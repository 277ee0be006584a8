package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/smartreview/internal/adapters/outbound/metrics"
	"github.com/abdidvp/smartreview/internal/adapters/outbound/scanner"
	"github.com/abdidvp/smartreview/internal/adapters/outbound/tui"
	"github.com/abdidvp/smartreview/internal/application"
	"github.com/abdidvp/smartreview/internal/domain"
)

func reviewer(t *testing.T) Reviewer {
	t.Helper()
	a, err := metrics.New(domain.AnalyzerBasic)
	require.NoError(t, err)
	return application.NewReviewService(a, scanner.New(), nil, 2)
}

func call(args map[string]any) mcplib.CallToolRequest {
	var req mcplib.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text
}

func decode(t *testing.T, res *mcplib.CallToolResult) tui.Document {
	t.Helper()
	var doc tui.Document
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &doc))
	return doc
}

func projectDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.py"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "util.js"), []byte("let y;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hi\n"), 0o644))
	return root
}

func TestHandleReviewSource(t *testing.T) {
	res, err := handleReviewSource(reviewer(t))(context.Background(), call(map[string]any{
		"source":   "def f():\n    return 1\n",
		"filename": "f.py",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	doc := decode(t, res)
	require.Len(t, doc.Reports, 1)
	assert.Equal(t, "f.py", doc.Reports[0].Path)
}

func TestHandleReviewSource_DefaultFilename(t *testing.T) {
	res, err := handleReviewSource(reviewer(t))(context.Background(), call(map[string]any{"source": "x = 1"}))
	require.NoError(t, err)
	assert.Equal(t, defaultFilename, decode(t, res).Reports[0].Path)
}

func TestHandleReviewSource_MissingSource(t *testing.T) {
	res, err := handleReviewSource(reviewer(t))(context.Background(), call(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleReviewPath_Directory(t *testing.T) {
	root := projectDir(t)
	res, err := handleReviewPath(root, reviewer(t), nil)(context.Background(), call(map[string]any{"path": "."}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	doc := decode(t, res)
	require.Len(t, doc.Reports, 2)
	assert.Equal(t, filepath.Join(root, "main.py"), doc.Reports[0].Path)
	assert.Equal(t, filepath.Join(root, "pkg", "util.js"), doc.Reports[1].Path)
}

func TestHandleReviewPath_Excludes(t *testing.T) {
	root := projectDir(t)
	res, err := handleReviewPath(root, reviewer(t), []string{"pkg"})(context.Background(), call(map[string]any{"path": "."}))
	require.NoError(t, err)
	assert.Len(t, decode(t, res).Reports, 1)
}

func TestHandleReviewPath_NoSupportedFiles(t *testing.T) {
	root := projectDir(t)
	res, err := handleReviewPath(root, reviewer(t), nil)(context.Background(), call(map[string]any{"path": "notes.txt"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "No supported files found.", resultText(t, res))
}

func TestHandleReviewPath_Errors(t *testing.T) {
	root := projectDir(t)
	tests := []struct {
		path string
		want string
	}{
		{"missing", "path does not exist: missing"},
		{"../outside", "escapes the project root"},
		{"/etc", "relative to the project root"},
	}
	for _, tt := range tests {
		res, err := handleReviewPath(root, reviewer(t), nil)(context.Background(), call(map[string]any{"path": tt.path}))
		require.NoError(t, err)
		assert.True(t, res.IsError, tt.path)
		assert.Contains(t, resultText(t, res), tt.want, tt.path)
	}
}

func TestHandleReportResource(t *testing.T) {
	root := projectDir(t)
	contents, err := handleReportResource(root, reviewer(t), nil)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, reportURI, text.URI)

	var doc tui.Document
	require.NoError(t, json.Unmarshal([]byte(text.Text), &doc))
	assert.Len(t, doc.Reports, 2)
}
