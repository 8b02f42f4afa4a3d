package decision

import (
	"fmt"
	"math"
	"strconv"
)

const (
	DefaultP = 0.5
	DefaultC = -10.0
)

// Slider describes one interactive input.
type Slider struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

var (
	SliderP = Slider{
		Name:    "p",
		Label:   "Probability (p) that the item is a real photo",
		Min:     0.0,
		Max:     1.0,
		Step:    0.01,
		Default: DefaultP,
	}
	SliderC = Slider{
		Name:    "c",
		Label:   "Cost of deception (c) (low values = deception must be avoided at all costs)",
		Min:     -20.0,
		Max:     0.0,
		Step:    0.5,
		Default: DefaultC,
	}
)

// Sliders lists the inputs in display order.
func Sliders() []Slider {
	return []Slider{SliderP, SliderC}
}

func (s Slider) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Default
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Snap rounds v to the nearest step counted from Min and clamps the result.
func (s Slider) Snap(v float64) float64 {
	v = s.Clamp(v)
	n := math.Round((v - s.Min) / s.Step)
	snapped := s.Min + n*s.Step
	// strip float noise like 0.30000000000000004
	if r, err := strconv.ParseFloat(strconv.FormatFloat(snapped, 'f', s.decimals(), 64), 64); err == nil {
		snapped = r
	}
	return s.Clamp(snapped)
}

// Nudge moves v by a whole number of steps.
func (s Slider) Nudge(v float64, steps int) float64 {
	return s.Snap(v + float64(steps)*s.Step)
}

func (s Slider) Contains(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= s.Min && v <= s.Max
}

// Format prints v with the precision implied by the step.
func (s Slider) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', s.decimals(), 64)
}

// Parse reads a value typed by a user and snaps it onto the slider.
func (s Slider) Parse(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", s.Name, raw, ErrParameterSyntax)
	}
	if !s.Contains(v) {
		return 0, fmt.Errorf("%s=%v not in [%v, %v]: %w", s.Name, v, s.Min, s.Max, ErrParameterBounds)
	}
	return s.Snap(v), nil
}

func (s Slider) decimals() int {
	d := 0
	for step := s.Step; d < 6 && math.Abs(step-math.Round(step)) > 1e-9; step *= 10 {
		d++
	}
	return d
}

// Params holds the two user-controlled scalars.
type Params struct {
	P float64 `yaml:"p" json:"p"`
	C float64 `yaml:"c" json:"c"`
}

func DefaultParams() Params {
	return Params{P: DefaultP, C: DefaultC}
}

func (p Params) Validate() error {
	if !SliderP.Contains(p.P) {
		return fmt.Errorf("p=%v not in [%v, %v]: %w", p.P, SliderP.Min, SliderP.Max, ErrParameterBounds)
	}
	if !SliderC.Contains(p.C) {
		return fmt.Errorf("c=%v not in [%v, %v]: %w", p.C, SliderC.Min, SliderC.Max, ErrParameterBounds)
	}
	return nil
}

// Snapped returns p with both values moved onto their slider steps.
func (p Params) Snapped() Params {
	return Params{P: SliderP.Snap(p.P), C: SliderC.Snap(p.C)}
}

func (p Params) String() string {
	return fmt.Sprintf("p=%s c=%s", SliderP.Format(p.P), SliderC.Format(p.C))
}
