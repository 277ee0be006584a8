package metrics

import (
	"strings"
	"unicode/utf8"

	"github.com/abdidvp/smartreview/internal/domain"
)

// LineStats holds the language-independent line measurements of a source.
type LineStats struct {
	Total         int
	Comment       int
	Blank         int
	MaxLineLength int
	LongLines     int
}

// commentPrefixes mark a stripped line as a comment for every language.
var commentPrefixes = []string{"#", "//", "/*", "*"}

// CountLines measures source line by line. Lines end at \n, \r\n or \r and
// a trailing terminator does not start a new line. Lengths count runes.
func CountLines(source string) LineStats {
	var st LineStats
	for _, line := range splitLines(source) {
		st.Total++

		s := strings.TrimSpace(line)
		switch {
		case s == "":
			st.Blank++
		case isComment(s):
			st.Comment++
		}

		n := utf8.RuneCountInString(line)
		st.MaxLineLength = max(st.MaxLineLength, n)
		if n > domain.MaxLineLength {
			st.LongLines++
		}
	}
	return st
}

func isComment(stripped string) bool {
	for _, p := range commentPrefixes {
		if strings.HasPrefix(stripped, p) {
			return true
		}
	}
	return false
}

func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")
	source = strings.TrimSuffix(source, "\n")
	return strings.Split(source, "\n")
}

// apply copies the line stats into m.
func (st LineStats) apply(m *domain.FileMetrics) {
	m.LineCount = st.Total
	m.CommentCount = st.Comment
	m.BlankCount = st.Blank
	m.MaxLineLength = st.MaxLineLength
	m.LongLineCount = st.LongLines
}
