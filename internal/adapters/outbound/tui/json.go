package tui

import (
	"bytes"
	"encoding/json"

	"github.com/abdidvp/smartreview/internal/domain"
)

// Document is the JSON envelope shared by the CLI, the web API and MCP.
type Document struct {
	Reports []domain.ReviewReport `json:"reports"`
}

// RenderJSON formats reports as {"reports": [...]} indented by two spaces.
func RenderJSON(reports []domain.ReviewReport) (string, error) {
	if reports == nil {
		reports = []domain.ReviewReport{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Reports: reports}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
