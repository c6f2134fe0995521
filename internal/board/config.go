package board

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultStrokeColor = "#000000"
	DefaultStrokeWidth = 2.0
)

// Background is the fill applied to a freshly configured surface.
var Background color.Color = colornames.White

// ErrInvalidConfig is returned by Configure for out-of-range values.
var ErrInvalidConfig = errors.New("invalid surface config")

// Config describes a surface's dimensions and stroke style.
// Zero fields are replaced with the defaults.
type Config struct {
	Width       int     `toml:"width" json:"width"`
	Height      int     `toml:"height" json:"height"`
	StrokeColor string  `toml:"stroke_color" json:"strokeColor"`
	StrokeWidth float64 `toml:"stroke_width" json:"strokeWidth"`
}

func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		StrokeColor: DefaultStrokeColor,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Normalize fills in defaults and validates c.
func (c Config) Normalize() (Config, error) {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.StrokeColor == "" {
		c.StrokeColor = DefaultStrokeColor
	}
	if c.StrokeWidth == 0 {
		c.StrokeWidth = DefaultStrokeWidth
	}

	if c.Width < 0 || c.Height < 0 {
		return c, fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.StrokeWidth < 0 || math.IsNaN(c.StrokeWidth) || math.IsInf(c.StrokeWidth, 0) {
		return c, fmt.Errorf("%w: stroke width %v", ErrInvalidConfig, c.StrokeWidth)
	}
	if _, err := ParseColor(c.StrokeColor); err != nil {
		return c, err
	}
	return c, nil
}

// Color returns the parsed stroke color. c must be normalized.
func (c Config) Color() color.Color {
	col, err := ParseColor(c.StrokeColor)
	if err != nil {
		return color.Black
	}
	return col
}

// ParseColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa or an SVG color name.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return named, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return nil, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}
	return gg.Hex(hex).Color(), nil
}
