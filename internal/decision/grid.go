package decision

// Fixed sampling of the (a, b) plane.
const (
	GridSize = 400

	AMin = 0.0
	AMax = 15.0
	BMin = -15.0
	BMax = 15.0
)

// Grid holds the sample positions along both axes. The implied matrix has
// len(B) rows and len(A) columns: row i follows b, column j follows a.
type Grid struct {
	A []float64
	B []float64
}

// NewGrid returns the fixed 400x400 grid.
func NewGrid() Grid {
	return Grid{
		A: Linspace(AMin, AMax, GridSize),
		B: Linspace(BMin, BMax, GridSize),
	}
}

func (g Grid) Rows() int { return len(g.B) }
func (g Grid) Cols() int { return len(g.A) }

// Linspace returns n evenly spaced values over [min, max], endpoints included.
func Linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out
}

// Nearest returns the index of the sample closest to v in an ascending axis.
func Nearest(axis []float64, v float64) int {
	if len(axis) == 0 {
		return -1
	}
	lo, hi := 0, len(axis)-1
	if v <= axis[lo] {
		return lo
	}
	if v >= axis[hi] {
		return hi
	}
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if axis[mid] <= v {
			lo = mid
		} else {
			hi = mid
		}
	}
	if v-axis[lo] <= axis[hi]-v {
		return lo
	}
	return hi
}
