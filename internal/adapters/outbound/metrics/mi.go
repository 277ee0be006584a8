package metrics

import "math"

// halstead accumulates operator and operand occurrences for the Halstead
// volume used by the maintainability index.
type halstead struct {
	operators map[string]int
	operands  map[string]int
	total     int
}

func newHalstead() *halstead {
	return &halstead{operators: map[string]int{}, operands: map[string]int{}}
}

func (h *halstead) operator(op string) {
	h.operators[op]++
	h.total++
}

func (h *halstead) operand(text string) {
	h.operands[text]++
	h.total++
}

// volume is N * log2(n) where N counts every occurrence and n the distinct
// operators plus distinct operands.
func (h *halstead) volume() float64 {
	vocabulary := len(h.operators) + len(h.operands)
	if vocabulary == 0 {
		return 0
	}
	return float64(h.total) * math.Log2(float64(vocabulary))
}

// maintainabilityIndex implements the radon/SEI variant scaled to 0..100:
//
//	171 - 5.2 ln(V) - 0.23 G - 16.2 ln(L) + 50 sin(sqrt(2.46 rad(C)))
//
// V is the Halstead volume, G the total cyclomatic complexity, L the
// source lines and C the percentage of comment lines.
func maintainabilityIndex(volume float64, complexity, sloc int, commentPct float64) float64 {
	if volume <= 0 || sloc <= 0 {
		return 100
	}
	radians := commentPct * math.Pi / 180
	raw := 171 -
		5.2*math.Log(volume) -
		0.23*float64(complexity) -
		16.2*math.Log(float64(sloc)) +
		50*math.Sin(math.Sqrt(2.46*radians))
	return min(max(0, raw*100/171), 100)
}

// commentPercent is the share of comment-like lines over source lines.
func commentPercent(commentLines, sloc int) float64 {
	if sloc <= 0 {
		return 0
	}
	return float64(commentLines) / float64(sloc) * 100
}
