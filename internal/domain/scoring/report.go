package scoring

import "github.com/abdidvp/smartreview/internal/domain"

// BuildReport converts raw metrics into a review report. It is pure and
// total: the input is trusted and never validated.
//
// A non-empty syntax error short-circuits every category to zero with a
// single readability suggestion.
func BuildReport(m domain.FileMetrics) domain.ReviewReport {
	if m.SyntaxError != nil && *m.SyntaxError != "" {
		msg := *m.SyntaxError
		return domain.ReviewReport{
			Path: m.Path,
			Readability: domain.CategoryResult{
				Score:       0,
				Suggestions: []string{"Syntax error: " + msg},
			},
			Structure:       domain.EmptyCategory(),
			Maintainability: domain.EmptyCategory(),
			Metrics:         &m,
			Error:           &msg,
		}
	}

	return domain.ReviewReport{
		Path:            m.Path,
		Readability:     ScoreReadability(m),
		Structure:       ScoreStructure(m),
		Maintainability: ScoreMaintainability(m),
		Metrics:         &m,
	}
}
