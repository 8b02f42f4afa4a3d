// Package analysis provides parameter sweeps over the decision diagram.
//
// The package characterizes how the classification responds to p:
//
//   - [SweepP]: class shares for evenly spaced values of p
//   - [CheckMonotone]: cells that move from accepted back to rejected as p grows
//   - [Threshold]: the critical p at which a single cell flips
//
// # Monotonicity
//
// Inside the valid region 2a - c - b > 4, so raising p can only raise the
// left-hand side and a cell can never fall back from accepted to rejected:
//
//	report := analysis.CheckMonotone(-10, grid, decision.Linspace(0, 1, 101))
//	if len(report.Violations) > 0 {
//	    // formula or grid changed
//	}
package analysis
