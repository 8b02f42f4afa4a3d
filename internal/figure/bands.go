package figure

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/decidiag/internal/decision"
)

// Levels are the contour break levels. Each integer class falls strictly
// inside exactly one band.
var Levels = []float64{-0.5, 0.5, 1.5, 2.5}

// BandOf returns the band index holding level, or -1 outside all bands.
func BandOf(level float64) int {
	for k := 0; k+1 < len(Levels); k++ {
		if level >= Levels[k] && level < Levels[k+1] {
			return k
		}
	}
	return -1
}

// BandColors are indexed by band.
var BandColors = []drawing.Color{
	drawing.ColorFromHex(ClassHex[decision.Undefined][1:]),
	drawing.ColorFromHex(ClassHex[decision.Rejected][1:]),
	drawing.ColorFromHex(ClassHex[decision.Accepted][1:]),
}

// ColorOf maps a class to its band color.
func ColorOf(c decision.Class) drawing.Color {
	band := BandOf(float64(c))
	if band < 0 {
		return drawing.ColorTransparent
	}
	return BandColors[band]
}

var gridLineColor = drawing.Color{R: 176, G: 176, B: 176, A: 255}

// bandSeries paints the class field as filled cells. Cell edges sit halfway
// between neighbouring samples so that bands meet without gaps.
type bandSeries struct {
	field *decision.Field
	grid  decision.Grid
	xTick []float64
	yTick []float64
}

var _ chart.Series = bandSeries{}

func (s bandSeries) GetName() string { return "classes" }

func (s bandSeries) GetYAxis() chart.YAxisType { return chart.YAxisSecondary }

func (s bandSeries) GetStyle() chart.Style { return chart.Style{} }

func (s bandSeries) Validate() error {
	if s.field == nil {
		return errNoField
	}
	if s.field.Rows != s.grid.Rows() || s.field.Cols != s.grid.Cols() {
		return errShape
	}
	return nil
}

func (s bandSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	xEdges := edges(s.grid.A)
	yEdges := edges(s.grid.B)

	px := func(v float64) int { return canvasBox.Left + xrange.Translate(v) }
	py := func(v float64) int { return canvasBox.Bottom - yrange.Translate(v) }

	for i := 0; i < s.field.Rows; i++ {
		top, bottom := py(yEdges[i+1]), py(yEdges[i])
		j := 0
		for j < s.field.Cols {
			class := s.field.At(i, j)
			end := j + 1
			for end < s.field.Cols && s.field.At(i, end) == class {
				end++
			}
			fillRect(r, px(xEdges[j]), top, px(xEdges[end]), bottom, ColorOf(class))
			j = end
		}
	}

	r.SetStrokeColor(gridLineColor)
	r.SetStrokeWidth(0.5)
	r.SetStrokeDashArray([]float64{4, 2})
	for _, x := range s.xTick {
		r.MoveTo(px(x), canvasBox.Top)
		r.LineTo(px(x), canvasBox.Bottom)
		r.Stroke()
	}
	for _, y := range s.yTick {
		r.MoveTo(canvasBox.Left, py(y))
		r.LineTo(canvasBox.Right, py(y))
		r.Stroke()
	}
	r.SetStrokeDashArray(nil)
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	r.SetFillColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

// edges returns len(axis)+1 cell boundaries, clamped to the axis extent.
func edges(axis []float64) []float64 {
	n := len(axis)
	out := make([]float64, n+1)
	if n == 0 {
		return out
	}
	out[0] = axis[0]
	out[n] = axis[n-1]
	for k := 1; k < n; k++ {
		out[k] = (axis[k-1] + axis[k]) / 2
	}
	return out
}
