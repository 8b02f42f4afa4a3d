package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/san-kum/decidiag/internal/decision"
)

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(decision.DefaultParams(), "ocean", zap.NewNop())

	assert.Equal(t, decision.DefaultParams(), m.Params())
	assert.Equal(t, "ocean", m.Theme().Name)
	assert.Equal(t, 1, m.Renders())

	rows, cols := m.Field().Shape()
	assert.Equal(t, decision.GridSize, rows)
	assert.Equal(t, decision.GridSize, cols)
}

func TestModel_SliderKeys(t *testing.T) {
	m := NewModel(decision.DefaultParams(), "", nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0.51, m.Params().P)
	assert.Equal(t, 2, m.Renders())

	m = press(t, m, runes("H"))
	assert.Equal(t, 0.41, m.Params().P)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Selected())
	assert.Equal(t, -10.5, m.Params().C)
	assert.Equal(t, 0.41, m.Params().P)

	m = press(t, m, runes("r"))
	assert.Equal(t, decision.DefaultParams(), m.Params())
}

func TestModel_ClampsAtSliderEnds(t *testing.T) {
	m := NewModel(decision.Params{P: 1, C: 0}, "", nil)
	renders := m.Renders()

	m = press(t, m, runes("L"))
	assert.Equal(t, 1.0, m.Params().P)
	assert.Equal(t, renders, m.Renders(), "no recompute without a change")

	m = press(t, m, runes("j"), runes("l"))
	assert.Equal(t, 0.0, m.Params().C)
}

func TestModel_FieldFollowsParams(t *testing.T) {
	m := NewModel(decision.Params{P: 0, C: -10}, "", nil)
	require.Zero(t, m.Field().Counts()[decision.Accepted])

	for i := 0; i < 10; i++ {
		m = press(t, m, runes("L"))
	}
	require.Equal(t, 1.0, m.Params().P)
	assert.Equal(t, decision.Classify(m.Params(), decision.NewGrid()).Cells, m.Field().Cells)
	assert.NotZero(t, m.Field().Counts()[decision.Accepted])
}

func TestModel_ThemeAndHelp(t *testing.T) {
	m := NewModel(decision.DefaultParams(), "cyberpunk", nil)
	m = press(t, m, runes("t"))
	assert.Equal(t, "retro", m.Theme().Name)

	short := m.View()
	m = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "10 steps up")
	assert.NotContains(t, short, "10 steps up")
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(decision.DefaultParams(), "", nil)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_View(t *testing.T) {
	m := NewModel(decision.DefaultParams(), "", nil)
	view := m.View()

	assert.Contains(t, view, "DECIDIAG")
	assert.Contains(t, view, "0.50")
	assert.Contains(t, view, "-10.0")
	assert.Contains(t, view, "not defined")
	assert.Contains(t, view, "Gray area")
	assert.True(t, strings.Count(view, halfBlock) > 0)
}

func TestThemes(t *testing.T) {
	assert.Equal(t, ThemeCyberpunk, GetTheme("nope"))
	assert.Equal(t, ThemeCyberpunk, NextTheme("sunset"))
	assert.Len(t, ThemeNames(), len(Themes))
}
