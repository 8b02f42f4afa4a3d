package figure

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/san-kum/decidiag/internal/decision"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

var (
	errNoField = errors.New("figure: no field to render")
	errShape   = errors.New("figure: field shape does not match grid")

	// ErrFormat indicates an unsupported output format.
	ErrFormat = errors.New("figure: unsupported format")
)

// Format selects the output encoding.
type Format int

const (
	PNG Format = iota
	SVG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	}
	return "unknown"
}

// ContentType is the MIME type of the encoded figure.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ParseFormat accepts "png" or "svg", with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}
	return PNG, fmt.Errorf("%q: %w", s, ErrFormat)
}

// Figure is a ready-to-encode diagram for one parameter set.
type Figure struct {
	Params decision.Params
	Width  int
	Height int

	field *decision.Field
	grid  decision.Grid
}

// New builds a figure of field sampled on grid.
func New(field *decision.Field, grid decision.Grid, params decision.Params) *Figure {
	return &Figure{
		Params: params,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		field:  field,
		grid:   grid,
	}
}

// Render encodes the figure. Errors from the chart layer are returned as is.
func (f *Figure) Render(w io.Writer, format Format) error {
	var provider chart.RendererProvider
	switch format {
	case PNG:
		provider = chart.PNG
	case SVG:
		provider = chart.SVG
	default:
		return fmt.Errorf("%v: %w", format, ErrFormat)
	}
	ch := f.Chart()
	return ch.Render(provider, w)
}

// Chart assembles the go-chart description of the figure.
func (f *Figure) Chart() chart.Chart {
	xTicks := integerTicks(decision.AMin, decision.AMax)
	yTicks := integerTicks(decision.BMin, decision.BMax)
	xRange := &chart.ContinuousRange{Min: decision.AMin, Max: decision.AMax}
	yRange := &chart.ContinuousRange{Min: decision.BMin, Max: decision.BMax}

	ch := chart.Chart{
		Title:      Title,
		TitleStyle: chart.Style{FontSize: 12},
		Width:      f.Width,
		Height:     f.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 30, Bottom: 10}},
		XAxis: chart.XAxis{
			Name:           XLabel,
			Range:          xRange,
			Ticks:          xTicks,
			Style:          chart.Style{FontSize: 8},
			GridMajorStyle: chart.Style{Hidden: true},
			GridMinorStyle: chart.Style{Hidden: true},
		},
		// The primary axis is drawn on the right; only the secondary one is
		// shown so that b reads on the left like a regular plot.
		YAxis: chart.YAxis{
			Range: yRange,
			Ticks: yTicks,
			Style: chart.Style{Hidden: true},
		},
		YAxisSecondary: chart.YAxis{
			Name:           YLabel,
			NameStyle:      chart.Style{FontSize: 8},
			Range:          yRange,
			Ticks:          yTicks,
			Style:          chart.Style{FontSize: 7},
			GridMajorStyle: chart.Style{Hidden: true},
			GridMinorStyle: chart.Style{Hidden: true},
		},
		Series: []chart.Series{
			bandSeries{
				field: f.field,
				grid:  f.grid,
				xTick: tickValues(xTicks),
				yTick: tickValues(yTicks),
			},
		},
	}
	ch.Elements = []chart.Renderable{
		annotationBox(0.1, 11),
		legend(f.Params.String()),
	}
	return ch
}

func integerTicks(min, max float64) []chart.Tick {
	ticks := make([]chart.Tick, 0, int(max-min)+1)
	for v := math.Ceil(min); v <= max; v++ {
		ticks = append(ticks, chart.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return ticks
}

func tickValues(ticks []chart.Tick) []float64 {
	out := make([]float64, len(ticks))
	for i, t := range ticks {
		out[i] = t.Value
	}
	return out
}
