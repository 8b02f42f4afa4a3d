package viz

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/decidiag/internal/decision"
)

func TestHeatmap_Sample(t *testing.T) {
	grid := decision.NewGrid()
	field := decision.Classify(decision.Params{P: 1, C: -10}, grid)
	h := NewHeatmap(30, 15)

	samples := h.Sample(field, grid)
	require.Len(t, samples, 30)
	require.Len(t, samples[0], 30)

	// top and bottom rows sit far outside the band around b = 0
	for x := range samples[0] {
		assert.Equal(t, decision.Undefined, samples[0][x])
		assert.Equal(t, decision.Undefined, samples[29][x])
	}

	// the middle rows straddle b = 0, where a large a is accepted at p = 1
	mid := samples[15]
	assert.Equal(t, decision.Accepted, mid[len(mid)-1])
	assert.Equal(t, decision.Undefined, mid[0])
}

func TestHeatmap_RenderLayout(t *testing.T) {
	grid := decision.NewGrid()
	field := decision.Classify(decision.DefaultParams(), grid)
	h := NewHeatmap(40, 10)

	out := h.Render(field, grid)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)

	for _, line := range lines[:10] {
		assert.Equal(t, 40, strings.Count(line, halfBlock))
	}
	assert.Contains(t, lines[0], "15 ┤")
	assert.Contains(t, lines[10], "└")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[11]), "0"))
	assert.Contains(t, lines[11], "15")
}

func TestSwatch(t *testing.T) {
	assert.Equal(t, 2, utf8.RuneCountInString(stripANSI(Swatch(decision.Accepted))))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
