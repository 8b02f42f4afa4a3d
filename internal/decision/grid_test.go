package decision

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		min, max float64
		n        int
		want     []float64
	}{
		{0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{-15, 15, 3, []float64{-15, 0, 15}},
		{3, 7, 1, []float64{3}},
		{3, 7, 0, []float64{}},
		{3, 7, -2, []float64{}},
	}

	for _, tt := range tests {
		got := Linspace(tt.min, tt.max, tt.n)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("Linspace(%v, %v, %d) mismatch (-want +got):\n%s", tt.min, tt.max, tt.n, diff)
		}
	}
}

func TestNewGrid(t *testing.T) {
	g := NewGrid()

	if g.Cols() != GridSize || g.Rows() != GridSize {
		t.Fatalf("expected %dx%d grid, got %dx%d", GridSize, GridSize, g.Rows(), g.Cols())
	}
	if g.A[0] != AMin || g.A[GridSize-1] != AMax {
		t.Errorf("a axis endpoints: got %v..%v", g.A[0], g.A[GridSize-1])
	}
	if g.B[0] != BMin || g.B[GridSize-1] != BMax {
		t.Errorf("b axis endpoints: got %v..%v", g.B[0], g.B[GridSize-1])
	}

	step := (AMax - AMin) / float64(GridSize-1)
	for i := 1; i < GridSize; i++ {
		if d := g.A[i] - g.A[i-1]; math.Abs(d-step) > 1e-9 {
			t.Fatalf("uneven a spacing at %d: %v", i, d)
		}
	}
}

func TestNearest(t *testing.T) {
	axis := []float64{0, 1, 2, 3}

	tests := []struct {
		v    float64
		want int
	}{
		{-5, 0},
		{0.4, 0},
		{0.6, 1},
		{2.5, 2},
		{9, 3},
	}
	for _, tt := range tests {
		if got := Nearest(axis, tt.v); got != tt.want {
			t.Errorf("Nearest(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
	if Nearest(nil, 1) != -1 {
		t.Error("expected -1 for empty axis")
	}
}
