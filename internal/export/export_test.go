package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/decidiag/internal/decision"
	"github.com/san-kum/decidiag/internal/figure"
)

func TestWriteFigure(t *testing.T) {
	grid := decision.NewGrid()
	params := decision.DefaultParams()
	fig := figure.New(decision.Classify(params, grid), grid, params)

	dir := t.TempDir()
	for _, name := range []string{"diagram.png", "diagram.svg"} {
		path := filepath.Join(dir, name)
		if err := WriteFigure(path, fig); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s not created: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	if err := WriteFigure(filepath.Join(dir, "diagram.gif"), fig); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestWriteFieldCSV(t *testing.T) {
	grid := decision.Grid{A: []float64{5, 10}, B: []float64{0, 5}}
	field := decision.Classify(decision.Params{P: 0.7, C: -10}, grid)

	var buf bytes.Buffer
	if err := WriteFieldCSV(&buf, grid, field); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(records))
	}

	// (5,0): 14 < 15 rejected; (10,0): 21 > 20 accepted; b=5 undefined
	want := []string{"1", "2", "0", "0"}
	for k, w := range want {
		if got := records[k+1][2]; got != w {
			t.Errorf("row %d: class %s, want %s", k+1, got, w)
		}
	}
}

func TestWriteFieldCSV_ShapeMismatch(t *testing.T) {
	err := WriteFieldCSV(&bytes.Buffer{}, decision.NewGrid(), decision.NewField(2, 2))
	if err == nil {
		t.Error("expected shape mismatch error")
	}
}
