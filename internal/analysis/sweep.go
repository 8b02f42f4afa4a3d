package analysis

import (
	"github.com/san-kum/decidiag/internal/decision"
)

// SweepPoint records the class shares for one value of p.
type SweepPoint struct {
	P      float64
	Shares [decision.NumClasses]float64
}

// SweepP classifies grid for steps evenly spaced values of p in [0, 1] at
// fixed cost c.
func SweepP(c float64, grid decision.Grid, steps int) []SweepPoint {
	if steps <= 1 {
		steps = 2 // Prevent division by zero
	}
	ps := decision.Linspace(decision.SliderP.Min, decision.SliderP.Max, steps)

	results := make([]SweepPoint, 0, len(ps))
	for _, p := range ps {
		field := decision.Classify(decision.Params{P: p, C: c}, grid)
		pt := SweepPoint{P: p}
		for k := decision.Class(0); k < decision.NumClasses; k++ {
			pt.Shares[k] = field.Share(k)
		}
		results = append(results, pt)
	}
	return results
}

// Series extracts the share of class k along a sweep.
func Series(points []SweepPoint, k decision.Class) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.Shares[k]
	}
	return out
}

// Threshold returns the value of p above which the inequality holds at
// (a, b) for cost c: p > (a - c) / (2a - c - b). ok is false when
// 2a - c - b <= 0, where the direction flips or no threshold exists.
func Threshold(c, a, b float64) (p float64, ok bool) {
	den := 2*a - c - b
	if den <= 0 {
		return 0, false
	}
	return (a - c) / den, true
}
