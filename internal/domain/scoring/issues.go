package scoring

// Issue thresholds (warn, bad) per category.
const (
	readabilityWarn = 2
	readabilityBad  = 5

	structureWarn = 1
	structureBad  = 3

	maintainabilityWarn = 1
	maintainabilityBad  = 3
)

// Caps on how many issues a single signal may contribute.
const (
	maxLongLineIssues     = 5
	maxLongFunctionIssues = 3
	maxComplexIssues      = 4

	// maxListedNames bounds the function names quoted in a suggestion.
	maxListedNames = 3
)

// ScoreFromIssues maps an issue count to a score in [0,10] using a
// piecewise-linear decay with a floor per tier:
//
//	n == 0          10
//	n <= warn       max(7, 10 - 0.5n)
//	n <= bad        max(4, 7 - 0.5(n-warn))
//	n >  bad        max(0, 4 - 0.3(n-bad))
func ScoreFromIssues(n, warn, bad int) float64 {
	switch {
	case n == 0:
		return 10.0
	case n <= warn:
		return max(7.0, 10.0-float64(n)*0.5)
	case n <= bad:
		return max(4.0, 7.0-float64(n-warn)*0.5)
	default:
		return max(0.0, 4.0-float64(n-bad)*0.3)
	}
}
