package decision

import "fmt"

// Field is a row-major class matrix.
type Field struct {
	Rows, Cols int
	Cells      []Class
}

func NewField(rows, cols int) *Field {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Field{Rows: rows, Cols: cols, Cells: make([]Class, rows*cols)}
}

// At returns the class in row i (b axis) and column j (a axis).
func (f *Field) At(i, j int) Class {
	return f.Cells[i*f.Cols+j]
}

// Shape mirrors the (rows, cols) of the matrix.
func (f *Field) Shape() (int, int) {
	return f.Rows, f.Cols
}

// Counts returns the number of cells per class, indexed by Class.
func (f *Field) Counts() [NumClasses]int {
	var counts [NumClasses]int
	for _, c := range f.Cells {
		if int(c) < NumClasses {
			counts[c]++
		}
	}
	return counts
}

// Share returns the fraction of cells in class c.
func (f *Field) Share(c Class) float64 {
	if len(f.Cells) == 0 || int(c) >= NumClasses {
		return 0
	}
	return float64(f.Counts()[c]) / float64(len(f.Cells))
}

func (f *Field) String() string {
	counts := f.Counts()
	return fmt.Sprintf("%dx%d field: %d undefined, %d rejected, %d accepted",
		f.Rows, f.Cols, counts[Undefined], counts[Rejected], counts[Accepted])
}
