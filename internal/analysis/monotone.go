package analysis

import (
	"sort"

	"github.com/san-kum/decidiag/internal/decision"
)

// Violation is a cell that left the accepted class when p increased.
type Violation struct {
	Row, Col int
	A, B     float64
	From, To float64 // p before and after
	// Slope is 2a - c - b, the coefficient of p in the left-hand side.
	Slope float64
}

// MonotoneReport summarizes a monotonicity check.
type MonotoneReport struct {
	C          float64
	Steps      int
	Promoted   int // cells that moved rejected -> accepted
	Violations []Violation
}

// CheckMonotone classifies grid for each p in ps (sorted ascending first)
// and reports every cell whose class moved from accepted to rejected.
func CheckMonotone(c float64, grid decision.Grid, ps []float64) MonotoneReport {
	sorted := append([]float64(nil), ps...)
	sort.Float64s(sorted)

	report := MonotoneReport{C: c, Steps: len(sorted)}
	if len(sorted) == 0 {
		return report
	}

	prevP := sorted[0]
	prev := decision.Classify(decision.Params{P: prevP, C: c}, grid)
	for _, p := range sorted[1:] {
		next := decision.Classify(decision.Params{P: p, C: c}, grid)
		for k := range next.Cells {
			from, to := prev.Cells[k], next.Cells[k]
			switch {
			case from == decision.Rejected && to == decision.Accepted:
				report.Promoted++
			case from == decision.Accepted && to == decision.Rejected:
				i, j := k/next.Cols, k%next.Cols
				a, b := grid.A[j], grid.B[i]
				report.Violations = append(report.Violations, Violation{
					Row: i, Col: j, A: a, B: b,
					From: prevP, To: p,
					Slope: 2*a - c - b,
				})
			}
		}
		prev, prevP = next, p
	}
	return report
}
