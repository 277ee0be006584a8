package metrics

import (
	"errors"
	"fmt"

	"github.com/abdidvp/smartreview/internal/domain"
)

// ErrRichUnavailable is returned when the rich analyzer is requested from a
// build without the tree-sitter grammar.
var ErrRichUnavailable = errors.New("rich python analyzer unavailable (binary built without cgo)")

// Analyzer implements domain.MetricsProvider by dispatching on the language
// inferred from the path.
type Analyzer struct {
	python  domain.MetricsProvider
	generic domain.MetricsProvider
	rich    bool
}

// New selects the Python provider for mode. AnalyzerAuto prefers the
// tree-sitter provider and falls back to BasicPython.
func New(mode domain.AnalyzerMode) (*Analyzer, error) {
	rich, ok := richPython()

	a := &Analyzer{generic: NewGeneric()}
	switch mode {
	case domain.AnalyzerAuto, "":
		if ok {
			a.python, a.rich = rich, true
		} else {
			a.python = NewBasicPython()
		}
	case domain.AnalyzerRich:
		if !ok {
			return nil, ErrRichUnavailable
		}
		a.python, a.rich = rich, true
	case domain.AnalyzerBasic:
		a.python = NewBasicPython()
	default:
		return nil, fmt.Errorf("unknown analyzer %q", mode)
	}
	return a, nil
}

// RichAvailable reports whether this build carries the tree-sitter provider.
func RichAvailable() bool {
	_, ok := richPython()
	return ok
}

// Rich reports whether Python files are measured by the tree-sitter provider.
func (a *Analyzer) Rich() bool { return a.rich }

func (a *Analyzer) Measure(content, path string) domain.FileMetrics {
	if domain.DetectLanguage(path) == domain.LanguagePython {
		return a.python.Measure(content, path)
	}
	return a.generic.Measure(content, path)
}
