package board

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg, err := Config{Width: 400, Height: 300}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, Config{Width: 400, Height: 300, StrokeColor: "#000000", StrokeWidth: 2}, cfg)

	cfg, err = Config{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNormalizeRejectsBadValues(t *testing.T) {
	for name, cfg := range map[string]Config{
		"negative width":  {Width: -1},
		"negative height": {Height: -10},
		"negative stroke": {StrokeWidth: -2},
		"nan stroke":      {StrokeWidth: math.NaN()},
		"inf stroke":      {StrokeWidth: math.Inf(1)},
		"bad color":       {StrokeColor: "#12"},
		"not hex":         {StrokeColor: "#zzzzzz"},
		"unknown name":    {StrokeColor: "blurple"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := cfg.Normalize()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, color.NRGBAModel.Convert(c))

	c, err = ParseColor("f00")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, color.NRGBAModel.Convert(c))

	c, err = ParseColor("Blue")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, color.NRGBAModel.Convert(c))
}
