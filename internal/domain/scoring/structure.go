package scoring

import (
	"fmt"
	"strings"

	"github.com/abdidvp/smartreview/internal/domain"
)

// ScoreStructure scores function length and, for Python, file size.
func ScoreStructure(m domain.FileMetrics) domain.CategoryResult {
	issues := 0
	suggestions := []string{}

	long := filterFunctions(m.Functions, func(f domain.Function) bool {
		return f.Length > domain.LongFunctionLines
	})
	if len(long) > 0 {
		issues += min(len(long), maxLongFunctionIssues)
		suggestions = append(suggestions, fmt.Sprintf(
			"Long function(s): %s – consider splitting into smaller functions.",
			listNames(long),
		))
	}

	// Module splitting advice only makes sense for Python sources.
	if m.LineCount > domain.LargeFileLines && m.Language == domain.LanguagePython {
		issues++
		suggestions = append(suggestions, "Large file – consider splitting into modules or submodules.")
	}

	return domain.CategoryResult{
		Score:       ScoreFromIssues(issues, structureWarn, structureBad),
		Suggestions: suggestions,
	}
}

func filterFunctions(fns []domain.Function, keep func(domain.Function) bool) []domain.Function {
	var out []domain.Function
	for _, f := range fns {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// listNames joins the names of the first maxListedNames functions.
func listNames(fns []domain.Function) string {
	names := make([]string, 0, maxListedNames)
	for _, f := range fns[:min(len(fns), maxListedNames)] {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}
