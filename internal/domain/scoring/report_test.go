package scoring_test

import (
	"testing"

	"github.com/abdidvp/smartreview/internal/domain"
	"github.com/abdidvp/smartreview/internal/domain/scoring"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildReport_SyntaxErrorShortCircuits(t *testing.T) {
	m := domain.FileMetrics{
		Path:          "broken.py",
		Language:      domain.LanguagePython,
		LineCount:     50,
		LongLineCount: 9,
		Functions:     []domain.Function{fn("huge", 200, 40)},
		SyntaxError:   strPtr("invalid syntax: line 3"),
	}

	got := scoring.BuildReport(m)

	want := domain.ReviewReport{
		Path: "broken.py",
		Readability: domain.CategoryResult{
			Score:       0,
			Suggestions: []string{"Syntax error: invalid syntax: line 3"},
		},
		Structure:       domain.CategoryResult{Score: 0, Suggestions: []string{}},
		Maintainability: domain.CategoryResult{Score: 0, Suggestions: []string{}},
		Metrics:         &m,
		Error:           strPtr("invalid syntax: line 3"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReport_EmptySyntaxErrorIsScored(t *testing.T) {
	m := domain.FileMetrics{
		Path:        "ok.py",
		Language:    domain.LanguagePython,
		LineCount:   10,
		SyntaxError: strPtr(""),
	}

	got := scoring.BuildReport(m)
	assert.Nil(t, got.Error)
	assert.Equal(t, 10.0, got.Readability.Score)
	assert.Equal(t, 10.0, got.Structure.Score)
	assert.Equal(t, 10.0, got.Maintainability.Score)
}

func TestBuildReport_Scored(t *testing.T) {
	m := domain.FileMetrics{
		Path:                 "svc.py",
		Language:             domain.LanguagePython,
		LineCount:            120,
		CommentCount:         10,
		LongLineCount:        1,
		Functions:            []domain.Function{fn("handle", 55, 12)},
		MaintainabilityIndex: mi(35),
	}

	got := scoring.BuildReport(m)

	assert.Equal(t, "svc.py", got.Path)
	assert.Nil(t, got.Error)
	require.NotNil(t, got.Metrics)
	assert.Equal(t, 120, got.Metrics.LineCount)
	assert.Equal(t, 9.5, got.Readability.Score)
	assert.Equal(t, 9.5, got.Structure.Score)
	assert.Equal(t, 6.5, got.Maintainability.Score)
	assert.Len(t, got.Maintainability.Suggestions, 2)
}

func TestBuildReport_Idempotent(t *testing.T) {
	m := domain.FileMetrics{
		Path:                 "x.py",
		Language:             domain.LanguagePython,
		LineCount:            500,
		LongLineCount:        4,
		Functions:            []domain.Function{fn("a", 80, 20), fn("b", 10, 2)},
		MaintainabilityIndex: mi(12.5),
	}
	first := scoring.BuildReport(m)
	second := scoring.BuildReport(m)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("BuildReport() not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuildReport_CategoriesAreIndependent(t *testing.T) {
	base := domain.FileMetrics{
		Path:                 "x.py",
		Language:             domain.LanguagePython,
		LineCount:            80,
		CommentCount:         4,
		Functions:            []domain.Function{fn("a", 80, 20)},
		MaintainabilityIndex: mi(25),
	}
	mutated := base
	mutated.LongLineCount = 17

	a := scoring.BuildReport(base)
	b := scoring.BuildReport(mutated)

	assert.NotEqual(t, a.Readability, b.Readability)
	assert.Equal(t, a.Structure, b.Structure)
	assert.Equal(t, a.Maintainability, b.Maintainability)
}

func TestBuildReport_ScoresWithinBounds(t *testing.T) {
	for lines := 0; lines <= 1200; lines += 150 {
		for long := 0; long <= 20; long += 5 {
			var fns []domain.Function
			for i := 0; i < long; i++ {
				fns = append(fns, fn("f", 30+i*5, i*2))
			}
			m := domain.FileMetrics{
				Language:             domain.LanguagePython,
				LineCount:            lines,
				LongLineCount:        long,
				Functions:            fns,
				MaintainabilityIndex: mi(float64(long)),
			}
			r := scoring.BuildReport(m)
			for _, c := range r.Categories() {
				assert.GreaterOrEqual(t, c.Result.Score, 0.0)
				assert.LessOrEqual(t, c.Result.Score, 10.0)
			}
		}
	}
}
