package scoring_test

import (
	"testing"

	"github.com/abdidvp/smartreview/internal/domain"
	"github.com/abdidvp/smartreview/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fn(name string, length, complexity int) domain.Function {
	return domain.Function{Name: name, Line: 1, Length: length, Complexity: complexity}
}

func TestScoreStructure_NoFunctions(t *testing.T) {
	r := scoring.ScoreStructure(domain.FileMetrics{LineCount: 100, Language: domain.LanguagePython})
	assert.Equal(t, 10.0, r.Score)
	assert.Empty(t, r.Suggestions)
}

func TestScoreStructure_TwoLongFunctions(t *testing.T) {
	m := domain.FileMetrics{
		LineCount: 100,
		Language:  domain.LanguagePython,
		Functions: []domain.Function{fn("foo", 45, 1), fn("bar", 50, 1)},
	}
	r := scoring.ScoreStructure(m)

	// Two issues pass the warn threshold of 1, landing in the middle tier.
	assert.Equal(t, 6.5, r.Score)
	assert.Equal(t, []string{
		"Long function(s): foo, bar – consider splitting into smaller functions.",
	}, r.Suggestions)
}

func TestScoreStructure_ExactlyFortyLinesIsNotLong(t *testing.T) {
	m := domain.FileMetrics{Functions: []domain.Function{fn("ok", 40, 1)}}
	assert.Equal(t, 10.0, scoring.ScoreStructure(m).Score)
}

func TestScoreStructure_ListsFirstThreeNames(t *testing.T) {
	m := domain.FileMetrics{
		Functions: []domain.Function{
			fn("a", 41, 0), fn("short", 5, 0), fn("b", 90, 0), fn("c", 60, 0), fn("d", 70, 0),
		},
	}
	r := scoring.ScoreStructure(m)

	// Four long functions are capped at three issues.
	assert.Equal(t, 6.0, r.Score)
	require.Len(t, r.Suggestions, 1)
	assert.Equal(t, "Long function(s): a, b, c – consider splitting into smaller functions.", r.Suggestions[0])
}

func TestScoreStructure_LargePythonFile(t *testing.T) {
	r := scoring.ScoreStructure(domain.FileMetrics{LineCount: 401, Language: domain.LanguagePython})
	assert.Equal(t, 9.5, r.Score)
	assert.Equal(t, []string{"Large file – consider splitting into modules or submodules."}, r.Suggestions)
}

func TestScoreStructure_FourHundredLinesIsNotLarge(t *testing.T) {
	r := scoring.ScoreStructure(domain.FileMetrics{LineCount: 400, Language: domain.LanguagePython})
	assert.Equal(t, 10.0, r.Score)
}

func TestScoreStructure_LargeGenericFileExempt(t *testing.T) {
	r := scoring.ScoreStructure(domain.FileMetrics{LineCount: 1000, Language: domain.LanguageGeneric})
	assert.Equal(t, 10.0, r.Score)
	assert.Empty(t, r.Suggestions)
}

func TestScoreStructure_LongFunctionsAndLargeFile(t *testing.T) {
	m := domain.FileMetrics{
		LineCount: 900,
		Language:  domain.LanguagePython,
		Functions: []domain.Function{fn("a", 41, 0), fn("b", 41, 0), fn("c", 41, 0)},
	}
	r := scoring.ScoreStructure(m)
	assert.InDelta(t, 3.7, r.Score, 1e-9)
	require.Len(t, r.Suggestions, 2)
	assert.Contains(t, r.Suggestions[0], "Long function(s)")
	assert.Contains(t, r.Suggestions[1], "Large file")
}
