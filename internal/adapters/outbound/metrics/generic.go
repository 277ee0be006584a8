package metrics

import "github.com/abdidvp/smartreview/internal/domain"

// Generic measures any text file: line statistics only, no functions and
// no maintainability index.
type Generic struct{}

// NewGeneric creates a Generic provider.
func NewGeneric() *Generic { return &Generic{} }

func (g *Generic) Measure(content, path string) domain.FileMetrics {
	m := domain.FileMetrics{Path: path, Language: domain.LanguageGeneric}
	CountLines(content).apply(&m)
	return m
}
