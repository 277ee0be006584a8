package metrics

import (
	"regexp"
	"strings"

	"github.com/abdidvp/smartreview/internal/domain"
)

var defPattern = regexp.MustCompile(`^(\s*)(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)`)

// BasicPython is the fallback Python provider. It finds function spans
// from indentation, reports complexity as 0 and never sets a
// maintainability index. Syntax errors are reported only when the
// tree-sitter grammar is compiled in.
type BasicPython struct{}

// NewBasicPython creates a BasicPython provider.
func NewBasicPython() *BasicPython { return &BasicPython{} }

func (p *BasicPython) Measure(content, path string) domain.FileMetrics {
	m := domain.FileMetrics{Path: path, Language: domain.LanguagePython}
	CountLines(content).apply(&m)
	if msg := pythonSyntaxError(content, path); msg != nil {
		m.SyntaxError = msg
		return m
	}
	m.Functions = scanDefs(splitLines(content))
	return m
}

// scanDefs returns every def (nested ones included) in source order.
func scanDefs(lines []string) []domain.Function {
	var fns []domain.Function
	for i, line := range lines {
		match := defPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		indent := indentWidth(match[1])
		end := defEnd(lines, i, indent)
		fns = append(fns, domain.Function{
			Name:   match[2],
			Line:   i + 1,
			Length: end - i + 1,
		})
	}
	return fns
}

// defEnd returns the index of the last line belonging to the def that
// starts at lines[start].
func defEnd(lines []string, start, indent int) int {
	// Skip the rest of a header whose parameters span several lines.
	i := start
	depth := bracketDelta(lines[i])
	for depth > 0 && i+1 < len(lines) {
		i++
		depth += bracketDelta(lines[i])
	}

	end := i
	for j := i + 1; j < len(lines); j++ {
		s := strings.TrimSpace(lines[j])
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if indentWidth(leadingSpace(lines[j])) <= indent {
			break
		}
		end = j
	}
	return end
}

func bracketDelta(line string) int {
	if idx := strings.Index(line, "#"); idx >= 0 {
		line = line[:idx]
	}
	return strings.Count(line, "(") + strings.Count(line, "[") + strings.Count(line, "{") -
		strings.Count(line, ")") - strings.Count(line, "]") - strings.Count(line, "}")
}

func leadingSpace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// indentWidth expands tabs to the next multiple of 8 like the Python tokenizer.
func indentWidth(ws string) int {
	w := 0
	for _, r := range ws {
		if r == '\t' {
			w = (w/8 + 1) * 8
		} else {
			w++
		}
	}
	return w
}
