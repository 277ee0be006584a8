package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/abdidvp/smartreview/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── palette ──
var (
	accent  = lipgloss.Color("#3B82F6") // blue
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	arrowStyle   = lipgloss.NewStyle().Foreground(warning)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
)

const barWidth = 10

// RenderReports formats reports as one bordered panel per file.
func RenderReports(reports []domain.ReviewReport) string {
	var b strings.Builder
	for _, r := range reports {
		if r.Error != nil && r.Metrics == nil {
			fmt.Fprintf(&b, "%s %s: %s\n", failStyle.Render("✗"), titleStyle.Render(r.Path), *r.Error)
			continue
		}
		b.WriteString(panelStyle.Render(renderReport(r)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderReport(r domain.ReviewReport) string {
	var lines []string

	title := titleStyle.Render(r.Path)
	if r.Metrics != nil {
		title += "  " + dimStyle.Render(fmt.Sprintf("(%d lines)", r.Metrics.LineCount))
	}
	lines = append(lines, title, "")

	for _, cat := range r.Categories() {
		score := cat.Result.Score
		lines = append(lines, fmt.Sprintf("  %s  %s  %s",
			catNameStyle.Render(padRight(cat.Name, 16)),
			coloredBar(score, barWidth),
			dimStyle.Render(domain.Label(score)),
		))
		for _, s := range cat.Result.Suggestions {
			lines = append(lines, "    "+arrowStyle.Render("→")+" "+s)
		}
	}

	if r.Error != nil {
		lines = append(lines, "", "  "+failStyle.Render("Error: "+*r.Error))
	}
	return strings.Join(lines, "\n")
}

// Bar draws a width-cell bar for a 0-10 score, rounding half to even.
func Bar(score float64, width int) string {
	filled := filledCells(score, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func filledCells(score float64, width int) int {
	n := int(math.RoundToEven(score * float64(width) / 10))
	return max(0, min(n, width))
}

func coloredBar(score float64, width int) string {
	filled := filledCells(score, width)
	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", width-filled))
	return filledStr + emptyStr
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 9:
		return success
	case score >= 7:
		return lipgloss.Color("#A3E635") // lime
	case score >= 5:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
