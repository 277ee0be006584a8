package domain

import (
	"bytes"
	"encoding/json"
)

// Language tags produced by metrics providers.
const (
	LanguagePython  = "python"
	LanguageGeneric = "generic"
)

// Thresholds shared by metrics providers and scorers.
const (
	MaxLineLength     = 100
	LongFunctionLines = 40
	HighComplexity    = 10
	LargeFileLines    = 400
)

// Function is a single function or method found in a file.
type Function struct {
	Name       string `json:"name"`
	Line       int    `json:"line"`
	Complexity int    `json:"complexity"` // 0 when the provider cannot compute it
	Length     int    `json:"length"`
}

// FileMetrics holds the raw measurements for one file.
type FileMetrics struct {
	Path          string     `json:"path"`
	Language      string     `json:"language"`
	LineCount     int        `json:"line_count"`
	CommentCount  int        `json:"comment_count"`
	BlankCount    int        `json:"blank_count"`
	MaxLineLength int        `json:"max_line_length"`
	LongLineCount int        `json:"long_line_count"`
	Functions     []Function `json:"functions,omitempty"`

	// MaintainabilityIndex is nil when the provider cannot compute it.
	MaintainabilityIndex *float64 `json:"maintainability_index,omitempty"`

	// SyntaxError is set when the source could not be parsed. Nothing
	// structural in the record is trustworthy in that case.
	SyntaxError *string `json:"syntax_error,omitempty"`
}

// CategoryResult is the score (0-10) and ordered suggestions for one category.
type CategoryResult struct {
	Score       float64  `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// EmptyCategory is the zero-score result used when a file could not be read.
func EmptyCategory() CategoryResult {
	return CategoryResult{Score: 0, Suggestions: []string{}}
}

// ReviewReport is the full review of a single file.
type ReviewReport struct {
	Path            string
	Readability     CategoryResult
	Structure       CategoryResult
	Maintainability CategoryResult
	Metrics         *FileMetrics
	Error           *string
}

// Categories returns the three category results in display order.
func (r ReviewReport) Categories() []NamedCategory {
	return []NamedCategory{
		{Name: "Readability", Result: r.Readability},
		{Name: "Structure", Result: r.Structure},
		{Name: "Maintainability", Result: r.Maintainability},
	}
}

// NamedCategory pairs a display name with its result.
type NamedCategory struct {
	Name   string
	Result CategoryResult
}

type reportJSON struct {
	Path            string         `json:"path"`
	Readability     CategoryResult `json:"readability"`
	Structure       CategoryResult `json:"structure"`
	Maintainability CategoryResult `json:"maintainability"`
	Error           *string        `json:"error"`
	LineCount       *int           `json:"line_count,omitempty"`
}

// MarshalJSON encodes the report in the wire shape consumed by existing
// clients: error is always present (null when unset) and line_count only
// appears when metrics are available.
func (r ReviewReport) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		Path:            r.Path,
		Readability:     normalize(r.Readability),
		Structure:       normalize(r.Structure),
		Maintainability: normalize(r.Maintainability),
		Error:           r.Error,
	}
	if r.Metrics != nil {
		n := r.Metrics.LineCount
		out.LineCount = &n
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes the wire shape. Only the line count of the metrics
// survives the round trip.
func (r *ReviewReport) UnmarshalJSON(data []byte) error {
	var in reportJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*r = ReviewReport{
		Path:            in.Path,
		Readability:     in.Readability,
		Structure:       in.Structure,
		Maintainability: in.Maintainability,
		Error:           in.Error,
	}
	if in.LineCount != nil {
		r.Metrics = &FileMetrics{Path: in.Path, LineCount: *in.LineCount}
	}
	return nil
}

func normalize(c CategoryResult) CategoryResult {
	if c.Suggestions == nil {
		c.Suggestions = []string{}
	}
	return c
}

// Label buckets a category score for display.
func Label(score float64) string {
	switch {
	case score >= 9:
		return "Excellent"
	case score >= 7:
		return "Good"
	case score >= 5:
		return "Fair"
	case score >= 3:
		return "Needs work"
	default:
		return "Poor"
	}
}
