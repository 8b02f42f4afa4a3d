// Package decision provides the pure classification core of the diagram.
//
// The package evaluates a fixed inequality over a fixed grid of the two axis
// variables and maps every cell to one of three classes:
//
//   - [Params]: the two user-controlled scalars p and c
//   - [Slider]: range, step and default of each parameter
//   - [Grid]: the fixed 400x400 sample grid over (a, b)
//   - [Field]: the resulting class matrix
//
// # Example
//
//	grid := decision.NewGrid()
//	field := decision.Classify(decision.DefaultParams(), grid)
//	fmt.Println(field.At(200, 133))
//
// Nothing in this package renders or performs IO. [Classify] is total over
// every input and never returns an error.
package decision
