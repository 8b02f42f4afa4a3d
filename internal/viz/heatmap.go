package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/decidiag/internal/decision"
	"github.com/san-kum/decidiag/internal/figure"
)

const (
	DefaultHeatmapCols  = 60
	DefaultHeatmapLines = 24

	axisWidth = 5
	halfBlock = "▀"
)

// Heatmap renders a class field with upper half blocks. Every terminal cell
// stacks two samples: the upper one as foreground, the lower as background.
type Heatmap struct {
	Cols, Lines int

	cells [decision.NumClasses][decision.NumClasses]lipgloss.Style
	axis  lipgloss.Style
}

func NewHeatmap(cols, lines int) *Heatmap {
	h := &Heatmap{Cols: cols, Lines: lines, axis: lipgloss.NewStyle().Foreground(lipgloss.Color("242"))}
	for top := range h.cells {
		for bottom := range h.cells[top] {
			h.cells[top][bottom] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(figure.ClassHex[top])).
				Background(lipgloss.Color(figure.ClassHex[bottom]))
		}
	}
	return h
}

// Sample picks the nearest grid cell for every half-row (top = b max) and
// column (left = a min).
func (h *Heatmap) Sample(field *decision.Field, grid decision.Grid) [][]decision.Class {
	rows := 2 * h.Lines
	out := make([][]decision.Class, rows)

	cols := make([]int, h.Cols)
	for x := range cols {
		a := decision.AMin + (float64(x)+0.5)/float64(h.Cols)*(decision.AMax-decision.AMin)
		cols[x] = decision.Nearest(grid.A, a)
	}
	for y := range out {
		b := decision.BMax - (float64(y)+0.5)/float64(rows)*(decision.BMax-decision.BMin)
		i := decision.Nearest(grid.B, b)
		out[y] = make([]decision.Class, h.Cols)
		for x, j := range cols {
			out[y][x] = field.At(i, j)
		}
	}
	return out
}

// Render draws the heatmap with a b axis on the left and an a axis below.
func (h *Heatmap) Render(field *decision.Field, grid decision.Grid) string {
	samples := h.Sample(field, grid)
	labels := h.yLabels()

	var b strings.Builder
	for line := 0; line < h.Lines; line++ {
		if v, ok := labels[line]; ok {
			b.WriteString(h.axis.Render(fmt.Sprintf("%3d ┤", v)))
		} else {
			b.WriteString(h.axis.Render("    │"))
		}

		top, bottom := samples[2*line], samples[2*line+1]
		x := 0
		for x < h.Cols {
			end := x + 1
			for end < h.Cols && top[end] == top[x] && bottom[end] == bottom[x] {
				end++
			}
			b.WriteString(h.cells[top[x]][bottom[x]].Render(strings.Repeat(halfBlock, end-x)))
			x = end
		}
		b.WriteByte('\n')
	}

	b.WriteString(h.axis.Render("    └" + strings.Repeat("─", h.Cols)))
	b.WriteByte('\n')
	b.WriteString(h.axis.Render(h.xLabels()))
	return b.String()
}

// yLabels maps a line index to the multiple of five that falls on it.
func (h *Heatmap) yLabels() map[int]int {
	labels := make(map[int]int)
	for v := int(decision.BMin); v <= int(decision.BMax); v += 5 {
		line := int(math.Floor((decision.BMax - float64(v)) / (decision.BMax - decision.BMin) * float64(h.Lines)))
		if line >= h.Lines {
			line = h.Lines - 1
		}
		labels[line] = v
	}
	return labels
}

func (h *Heatmap) xLabels() string {
	row := []rune(strings.Repeat(" ", axisWidth+h.Cols+2))
	for v := int(decision.AMin); v <= int(decision.AMax); v += 5 {
		col := axisWidth + int(float64(v)-decision.AMin)*(h.Cols-1)/int(decision.AMax-decision.AMin)
		for k, r := range fmt.Sprint(v) {
			if col+k < len(row) {
				row[col+k] = r
			}
		}
	}
	return strings.TrimRight(string(row), " ")
}

// Swatch renders a two-cell color sample for class c.
func Swatch(c decision.Class) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(figure.ClassHex[c])).Render("██")
}
