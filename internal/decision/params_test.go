package decision

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlider_Snap(t *testing.T) {
	tests := []struct {
		name   string
		slider Slider
		in     float64
		want   float64
	}{
		{"p rounds down", SliderP, 0.333, 0.33},
		{"p rounds up", SliderP, 0.337, 0.34},
		{"p clamps high", SliderP, 1.7, 1.0},
		{"p clamps low", SliderP, -0.2, 0.0},
		{"c half step down", SliderC, -10.3, -10.5},
		{"c half step up", SliderC, -10.2, -10.0},
		{"c clamps", SliderC, 4, 0},
		{"nan falls back to default", SliderC, math.NaN(), DefaultC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slider.Snap(tt.in))
		})
	}
}

func TestSlider_Nudge(t *testing.T) {
	assert.Equal(t, 0.51, SliderP.Nudge(0.5, 1))
	assert.Equal(t, 0.4, SliderP.Nudge(0.5, -10))
	assert.Equal(t, 1.0, SliderP.Nudge(0.99, 5))
	assert.Equal(t, -9.5, SliderC.Nudge(-10, 1))
	assert.Equal(t, -20.0, SliderC.Nudge(-19.5, -3))
}

func TestSlider_Format(t *testing.T) {
	assert.Equal(t, "0.50", SliderP.Format(0.5))
	assert.Equal(t, "-10.0", SliderC.Format(-10))
}

func TestSlider_Parse(t *testing.T) {
	v, err := SliderP.Parse("0.456")
	require.NoError(t, err)
	assert.Equal(t, 0.46, v)

	_, err = SliderP.Parse("abc")
	assert.True(t, errors.Is(err, ErrParameterSyntax))

	_, err = SliderC.Parse("3")
	assert.True(t, errors.Is(err, ErrParameterBounds))
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
	require.NoError(t, Params{P: 0, C: -20}.Validate())
	require.NoError(t, Params{P: 1, C: 0}.Validate())

	for _, bad := range []Params{
		{P: -0.01, C: -10},
		{P: 1.01, C: -10},
		{P: 0.5, C: 0.5},
		{P: 0.5, C: -20.5},
		{P: math.NaN(), C: -10},
		{P: 0.5, C: math.Inf(-1)},
	} {
		err := bad.Validate()
		assert.ErrorIs(t, err, ErrParameterBounds, "params %+v", bad)
	}
}

func TestParams_String(t *testing.T) {
	assert.Equal(t, "p=0.50 c=-10.0", DefaultParams().String())
	assert.Equal(t, Params{P: 0.33, C: -10.5}, Params{P: 0.333, C: -10.3}.Snapped())
}
