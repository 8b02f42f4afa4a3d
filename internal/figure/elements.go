package figure

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/decidiag/internal/decision"
)

const (
	textSize   = 8.0
	boxPadding = 6
	lineGap    = 3
	patchSize  = 10
)

var (
	boxFill   = drawing.Color{R: 255, G: 255, B: 255, A: 204}
	boxStroke = drawing.Color{R: 128, G: 128, B: 128, A: 255}
)

// project maps a data point to pixels inside the canvas. Renderables do not
// receive the chart ranges, so the fixed axis extents are used directly.
func project(canvasBox chart.Box, a, b float64) (int, int) {
	x := canvasBox.Left + int((a-decision.AMin)/(decision.AMax-decision.AMin)*float64(canvasBox.Width()))
	y := canvasBox.Bottom - int((b-decision.BMin)/(decision.BMax-decision.BMin)*float64(canvasBox.Height()))
	return x, y
}

// annotationBox draws the explanatory textbox with its lower-left corner at
// the data coordinate (a, b).
func annotationBox(a, b float64) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		r.SetFont(defaults.GetFont())
		r.SetFontSize(textSize)

		width, lineHeight := 0, 0
		for _, line := range Annotation {
			m := r.MeasureText(line)
			width = max(width, m.Width())
			lineHeight = max(lineHeight, m.Height())
		}
		height := len(Annotation)*(lineHeight+lineGap) - lineGap

		left, bottom := project(canvasBox, a, b)
		box := chart.Box{
			Left:   left,
			Bottom: bottom,
			Right:  left + width + 2*boxPadding,
			Top:    bottom - height - 2*boxPadding,
		}
		drawBox(r, box, boxFill, boxStroke)

		r.SetFontColor(drawing.ColorBlack)
		y := box.Top + boxPadding + lineHeight
		for _, line := range Annotation {
			r.Text(line, box.Left+boxPadding, y)
			y += lineHeight + lineGap
		}
	}
}

// legend draws three fixed patches in the lower right corner of the canvas,
// green first, followed by a caption line with the current parameters.
func legend(caption string) chart.Renderable {
	order := []decision.Class{decision.Accepted, decision.Rejected, decision.Undefined}

	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		r.SetFont(defaults.GetFont())
		r.SetFontSize(textSize)

		width, lineHeight := 0, patchSize
		for _, c := range order {
			m := r.MeasureText(LegendLabels[c])
			width = max(width, m.Width()+patchSize+boxPadding)
			lineHeight = max(lineHeight, m.Height())
		}
		m := r.MeasureText(caption)
		width = max(width, m.Width())
		lineHeight = max(lineHeight, m.Height())
		height := (len(order)+1)*(lineHeight+lineGap) - lineGap

		box := chart.Box{
			Right:  canvasBox.Right - boxPadding,
			Bottom: canvasBox.Bottom - boxPadding,
		}
		box.Left = box.Right - width - 2*boxPadding
		box.Top = box.Bottom - height - 2*boxPadding
		drawBox(r, box, boxFill, boxStroke)

		x := box.Left + boxPadding
		y := box.Top + boxPadding
		for _, c := range order {
			fillRect(r, x, y, x+patchSize, y+patchSize, ColorOf(c))
			r.SetFontColor(drawing.ColorBlack)
			r.Text(LegendLabels[c], x+patchSize+boxPadding, y+lineHeight)
			y += lineHeight + lineGap
		}
		r.SetFontColor(drawing.ColorBlack)
		r.Text(caption, x, y+lineHeight)
	}
}

func drawBox(r chart.Renderer, b chart.Box, fill, stroke drawing.Color) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(1)
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.Close()
	r.FillStroke()
}
