package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/decidiag/internal/decision"
	"github.com/san-kum/decidiag/internal/figure"
)

// WriteFigure renders fig to path, picking PNG or SVG from the extension.
func WriteFigure(path string, fig *figure.Figure) error {
	format, err := figure.ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fig.Render(f, format); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

// WriteFieldCSV writes one a,b,class row per grid cell, row-major.
func WriteFieldCSV(w io.Writer, grid decision.Grid, field *decision.Field) error {
	if field.Rows != grid.Rows() || field.Cols != grid.Cols() {
		return fmt.Errorf("field %dx%d does not match grid %dx%d", field.Rows, field.Cols, grid.Rows(), grid.Cols())
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"a", "b", "class"}); err != nil {
		return err
	}

	for i, b := range grid.B {
		for j, a := range grid.A {
			row := []string{
				strconv.FormatFloat(a, 'f', 6, 64),
				strconv.FormatFloat(b, 'f', 6, 64),
				strconv.Itoa(int(field.At(i, j))),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
