package scoring

import (
	"fmt"

	"github.com/abdidvp/smartreview/internal/domain"
)

// minLinesForComments is the file size above which a file with no comments
// is flagged. Smaller files are not expected to carry comments.
const minLinesForComments = 30

// highCommentRatio is the comment/line ratio above which code is considered
// over-commented.
const highCommentRatio = 0.5

// ScoreReadability scores line length and comment density.
func ScoreReadability(m domain.FileMetrics) domain.CategoryResult {
	issues := 0
	suggestions := []string{}

	if m.LongLineCount > 0 {
		issues += min(m.LongLineCount, maxLongLineIssues)
		suggestions = append(suggestions, fmt.Sprintf(
			"%d line(s) exceed %d chars – consider breaking for readability.",
			m.LongLineCount, domain.MaxLineLength,
		))
	}

	if m.LineCount > 0 {
		ratio := float64(m.CommentCount) / float64(m.LineCount)
		if ratio == 0 && m.LineCount > minLinesForComments {
			issues++
			suggestions = append(suggestions, "No comments detected – consider docstrings or key comments for long files.")
		} else if ratio > highCommentRatio {
			issues++
			suggestions = append(suggestions, "High comment ratio – ensure code is self-explanatory where possible.")
		}
	}

	return domain.CategoryResult{
		Score:       ScoreFromIssues(issues, readabilityWarn, readabilityBad),
		Suggestions: suggestions,
	}
}
