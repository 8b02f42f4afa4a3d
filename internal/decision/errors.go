package decision

import "errors"

// Domain errors for parameter handling at the outer surfaces.
var (
	// ErrParameterBounds indicates a parameter value is outside its slider range.
	ErrParameterBounds = errors.New("decision: parameter out of valid bounds")

	// ErrParameterSyntax indicates a parameter could not be parsed as a number.
	ErrParameterSyntax = errors.New("decision: parameter is not a number")
)
