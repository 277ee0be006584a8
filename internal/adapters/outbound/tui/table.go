package tui

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/abdidvp/smartreview/internal/domain"
)

// RenderTable formats one summary row per report.
func RenderTable(reports []domain.ReviewReport) (string, error) {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)

	headers := []string{"Path", "Lines", "Readability", "Structure", "Maintainability", "Error"}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{
			tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignRight, tw.AlignRight, tw.AlignLeft,
		}
	})

	data := make([][]string, 0, len(reports))
	for _, r := range reports {
		lines := "-"
		if r.Metrics != nil {
			lines = fmt.Sprintf("%d", r.Metrics.LineCount)
		}
		errText := ""
		if r.Error != nil {
			errText = *r.Error
		}
		data = append(data, []string{
			r.Path,
			lines,
			fmt.Sprintf("%.1f", r.Readability.Score),
			fmt.Sprintf("%.1f", r.Structure.Score),
			fmt.Sprintf("%.1f", r.Maintainability.Score),
			errText,
		})
	}

	if err := table.Bulk(data); err != nil {
		return "", fmt.Errorf("building table: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	return b.String(), nil
}
