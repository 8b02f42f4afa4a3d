package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/decidiag/internal/analysis"
	"github.com/san-kum/decidiag/internal/decision"
	"github.com/san-kum/decidiag/internal/figure"
)

const (
	sliderWidth = 30
	panelWidth  = 44
	sweepSteps  = 41
)

// Model is the interactive session. It owns the two slider values; grid
// field and sweep are derived and rebuilt after every change.
type Model struct {
	params   decision.Params
	selected int
	sliders  []decision.Slider

	grid    decision.Grid
	field   *decision.Field
	sweep   []float64
	sweepC  float64
	renders int

	heatmap *Heatmap
	theme   Theme
	styles  Styles
	keys    keyMap
	help    help.Model

	width, height int
	logger        *zap.Logger
}

// NewModel initializes the session with params snapped onto the sliders.
func NewModel(params decision.Params, themeName string, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := GetTheme(themeName)
	m := Model{
		params:  params.Snapped(),
		sliders: decision.Sliders(),
		grid:    decision.NewGrid(),
		heatmap: NewHeatmap(DefaultHeatmapCols, DefaultHeatmapLines),
		theme:   theme,
		styles:  NewStyles(theme),
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
		logger:  logger,
	}
	m.recompute()
	return m
}

func (m Model) Params() decision.Params { return m.params }
func (m Model) Field() *decision.Field   { return m.field }
func (m Model) Theme() Theme             { return m.theme }
func (m Model) Selected() int            { return m.selected }

// Renders counts how many times the field was rebuilt.
func (m Model) Renders() int { return m.renders }

func (m Model) Init() tea.Cmd { return nil }

// Update handles input events; every parameter change triggers a full
// recomputation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.selected = (m.selected + 1) % len(m.sliders)
	case key.Matches(msg, m.keys.Prev):
		m.selected = (m.selected + len(m.sliders) - 1) % len(m.sliders)
	case key.Matches(msg, m.keys.Inc):
		m.nudge(1)
	case key.Matches(msg, m.keys.Dec):
		m.nudge(-1)
	case key.Matches(msg, m.keys.IncFast):
		m.nudge(10)
	case key.Matches(msg, m.keys.DecFast):
		m.nudge(-10)
	case key.Matches(msg, m.keys.Reset):
		m.setParams(decision.DefaultParams())
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = NewStyles(m.theme)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) nudge(steps int) {
	next := m.params
	s := m.sliders[m.selected]
	switch s.Name {
	case decision.SliderP.Name:
		next.P = s.Nudge(next.P, steps)
	case decision.SliderC.Name:
		next.C = s.Nudge(next.C, steps)
	}
	m.setParams(next)
}

func (m *Model) setParams(p decision.Params) {
	if p == m.params {
		return
	}
	m.params = p
	m.recompute()
}

func (m *Model) recompute() {
	m.field = decision.Classify(m.params, m.grid)
	if m.sweep == nil || m.sweepC != m.params.C {
		m.sweep = analysis.Series(analysis.SweepP(m.params.C, m.grid, sweepSteps), decision.Accepted)
		m.sweepC = m.params.C
	}
	m.renders++
	m.logger.Debug("diagram recomputed",
		zap.Float64("p", m.params.P),
		zap.Float64("c", m.params.C),
		zap.Int("renders", m.renders),
	)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + GradientText("DECIDIAG", m.theme.Secondary, m.theme.Primary) +
		"  " + m.styles.Subtle.Render(figure.Title) + "\n\n")

	for i, s := range m.sliders {
		b.WriteString(m.viewSlider(i, s))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.heatmap.Render(m.field, m.grid),
		"  ",
		m.viewPanel(),
	)
	b.WriteString(body)
	b.WriteString("\n\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) viewSlider(i int, s decision.Slider) string {
	v := m.params.P
	if s.Name == decision.SliderC.Name {
		v = m.params.C
	}
	cursor, name := "  ", m.styles.Label.Render(s.Name)
	if i == m.selected {
		cursor, name = m.styles.Selected.Render("▸ "), m.styles.Selected.Render(s.Name)
	}
	fraction := (v - s.Min) / (s.Max - s.Min)
	return fmt.Sprintf("  %s%s %s %s  %s",
		cursor, name,
		m.styles.SliderBar(fraction, sliderWidth),
		m.styles.Value.Render(fmt.Sprintf("%6s", s.Format(v))),
		m.styles.Subtle.Render(s.Label),
	)
}

func (m Model) viewPanel() string {
	var b strings.Builder
	counts := m.field.Counts()
	total := float64(len(m.field.Cells))

	b.WriteString(m.styles.Title.Render("legend") + "\n")
	for _, c := range []decision.Class{decision.Accepted, decision.Rejected, decision.Undefined} {
		b.WriteString(fmt.Sprintf("%s %5.1f%%  %s\n", Swatch(c), 100*float64(counts[c])/total, figure.LegendLabels[c]))
	}

	b.WriteString("\n" + m.styles.Separator(panelWidth-4) + "\n\n")
	b.WriteString(m.styles.Title.Render("accepted share over p") + m.styles.Subtle.Render(fmt.Sprintf("  c=%s", decision.SliderC.Format(m.params.C))) + "\n")
	mark := int(m.params.P*float64(sweepSteps-1) + 0.5)
	b.WriteString(m.styles.Sparkline(m.sweep, mark) + "\n")

	b.WriteString("\n" + m.styles.Separator(panelWidth-4) + "\n\n")
	b.WriteString(m.styles.Subtle.Width(panelWidth - 4).Render(strings.Join(figure.Annotation, "\n")))

	return m.styles.Panel.Width(panelWidth).Render(b.String())
}

// Run starts the interactive program and blocks until the user quits.
func Run(params decision.Params, themeName string, logger *zap.Logger) error {
	_, err := tea.NewProgram(NewModel(params, themeName, logger), tea.WithAltScreen()).Run()
	return err
}
