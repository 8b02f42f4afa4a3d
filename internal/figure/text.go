package figure

// Figure wording shared by every surface that shows the diagram.
const (
	Title  = "Domain of the inequality: p(photo)(2a - c - b) > a - c"
	XLabel = "Reward for correct classification (a)"
	YLabel = "Payoff for omission (b), positive or negative depending on situation/individual"
)

// Annotation is the explanatory textbox, one entry per line.
var Annotation = []string{
	"The intersection of the chosen values for a and b yields the rational strategy.",
	"Green area = inequality holds; classifying as a real photo is rational (higher expected value).",
	"Red area = inequality does not hold; classifying as AI-generated is rational.",
	"Gray area = not defined.",
}

// LegendLabels are indexed by decision.Class.
var LegendLabels = [3]string{
	"not defined",
	"valid & not satisfied = classify as AI-generated",
	"valid & satisfied = classify as photo",
}

// ClassHex are the band colors indexed by decision.Class: gray, red, green.
var ClassHex = [3]string{"#808080", "#ff0000", "#008000"}

// ClassColorNames name the band colors, indexed by decision.Class.
var ClassColorNames = [3]string{"gray", "red", "green"}
