// Package viz provides the terminal surface of the decision diagram.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: two sliders for p and c, re-rendering the diagram on every change
//   - [Heatmap]: half-block renderer for a class field
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Tab/↓  - Select next slider
//	←/→    - Move the selected slider by one step
//	H/L    - Move the selected slider by ten steps
//	R      - Reset both sliders to their defaults
//	T      - Cycle color themes
//	?      - Toggle full help
//
// Class colors are fixed (gray, red, green) across themes; themes only change
// the surrounding chrome.
package viz
