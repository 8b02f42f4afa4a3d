package decision

// Epsilon is the separation margin between b and c, and between a and b.
const Epsilon = 2.0

// Class is the category of one grid cell.
type Class uint8

const (
	Undefined Class = iota // gray
	Rejected               // red: defined, inequality false
	Accepted               // green: defined, inequality true
)

// NumClasses is the number of distinct classes.
const NumClasses = 3

func (c Class) String() string {
	switch c {
	case Undefined:
		return "undefined"
	case Rejected:
		return "rejected"
	case Accepted:
		return "accepted"
	}
	return "unknown"
}

// Valid reports whether the inequality is defined at (a, b) for cost c.
func Valid(c, a, b float64) bool {
	return b >= -2 && b <= 2 &&
		c < 0 && c < b-Epsilon &&
		a > 0 && a > b+Epsilon
}

// Sides returns both sides of p(2a - c - b) > a - c.
func Sides(p, c, a, b float64) (lhs, rhs float64) {
	return p * (2*a - c - b), a - c
}

// Holds evaluates the inequality regardless of validity.
func Holds(p, c, a, b float64) bool {
	lhs, rhs := Sides(p, c, a, b)
	return lhs > rhs
}

// Margin is lhs - rhs; positive exactly when the inequality holds.
func Margin(params Params, a, b float64) float64 {
	lhs, rhs := Sides(params.P, params.C, a, b)
	return lhs - rhs
}

// ClassifyPoint applies the precedence rule to a single point.
func ClassifyPoint(params Params, a, b float64) Class {
	class := Undefined
	if Valid(params.C, a, b) {
		class = Rejected
		if Holds(params.P, params.C, a, b) {
			class = Accepted
		}
	}
	return class
}

// Classify evaluates every cell of grid. The field is rebuilt from scratch
// on every call.
func Classify(params Params, grid Grid) *Field {
	f := NewField(grid.Rows(), grid.Cols())
	for i, b := range grid.B {
		row := f.Cells[i*f.Cols : (i+1)*f.Cols]
		for j, a := range grid.A {
			row[j] = ClassifyPoint(params, a, b)
		}
	}
	return f
}
