//go:build !cgo

package metrics

import "github.com/abdidvp/smartreview/internal/domain"

// The tree-sitter grammar needs cgo; without it only BasicPython exists.
func richPython() (domain.MetricsProvider, bool) {
	return nil, false
}

// Without the grammar no syntax check is available.
func pythonSyntaxError(string, string) *string {
	return nil
}
