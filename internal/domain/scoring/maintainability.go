package scoring

import (
	"fmt"

	"github.com/abdidvp/smartreview/internal/domain"
)

// Maintainability index bands.
const (
	lowMaintainability      = 20.0
	moderateMaintainability = 40.0
)

// ScoreMaintainability scores cyclomatic complexity and the maintainability index.
func ScoreMaintainability(m domain.FileMetrics) domain.CategoryResult {
	issues := 0
	suggestions := []string{}

	complexFns := filterFunctions(m.Functions, func(f domain.Function) bool {
		return f.Complexity >= domain.HighComplexity
	})
	if len(complexFns) > 0 {
		issues += min(len(complexFns), maxComplexIssues)
		suggestions = append(suggestions, fmt.Sprintf(
			"High cyclomatic complexity in: %s – simplify branches or extract helpers.",
			listNames(complexFns),
		))
	}

	if mi := m.MaintainabilityIndex; mi != nil {
		switch {
		case *mi < lowMaintainability:
			issues += 2
			suggestions = append(suggestions, fmt.Sprintf(
				"Low maintainability index (%.0f) – refactor for clarity and size.", *mi,
			))
		case *mi < moderateMaintainability:
			issues++
			suggestions = append(suggestions, fmt.Sprintf(
				"Moderate maintainability index (%.0f) – consider small refactors.", *mi,
			))
		}
	}

	return domain.CategoryResult{
		Score:       ScoreFromIssues(issues, maintainabilityWarn, maintainabilityBad),
		Suggestions: suggestions,
	}
}
