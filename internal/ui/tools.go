package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"onbo/internal/board"
)

// Tool is an entry of the drawing tool palette.
type Tool string

const (
	ToolSelect    Tool = "select"
	ToolPen       Tool = "pen"
	ToolCircle    Tool = "circle"
	ToolRectangle Tool = "rectangle"
)

var toolLabels = []struct {
	tool  Tool
	label string
}{
	{ToolSelect, "Select"},
	{ToolPen, "Pen"},
	{ToolCircle, "Circle"},
	{ToolRectangle, "Rectangle"},
}

// newToolPalette builds a single-choice palette. The selection can be
// changed but never cleared.
func newToolPalette(initial Tool, onChange func(Tool)) *widget.RadioGroup {
	options := make([]string, 0, len(toolLabels))
	byLabel := make(map[string]Tool, len(toolLabels))
	var selected string
	for _, tl := range toolLabels {
		options = append(options, tl.label)
		byLabel[tl.label] = tl.tool
		if tl.tool == initial {
			selected = tl.label
		}
	}

	radio := widget.NewRadioGroup(options, nil)
	radio.Horizontal = true
	radio.Required = true
	radio.SetSelected(selected)
	radio.OnChanged = func(label string) {
		if tool, ok := byLabel[label]; ok && onChange != nil {
			onChange(tool)
		}
	}
	return radio
}

// --- Color swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var swatchColors = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 160, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 200, A: 255},
}

func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// confirmFunc asks before a destructive change. It calls exactly one of
// apply or cancel.
type confirmFunc func(apply, cancel func())

// restyle edits the board config and applies it. Applying clears the board, so
// confirm is consulted first when there is anything to lose.
func (b *BoardWidget) restyle(edit func(*board.Config), confirm confirmFunc, cancel func()) {
	cfg := b.Config()
	edit(&cfg)
	apply := func() { _ = b.Configure(cfg) }
	if confirm == nil || len(b.surface.Segments()) == 0 {
		apply()
		return
	}
	if cancel == nil {
		cancel = func() {}
	}
	confirm(apply, cancel)
}

// newStyleBar builds the color swatches and the stroke width slider. Both
// reconfigure the board, which clears it.
func newStyleBar(b *BoardWidget, confirm confirmFunc) fyne.CanvasObject {
	strokeSlider := widget.NewSlider(1, 50)

	onColorTapped := func(c color.Color) {
		b.restyle(func(cfg *board.Config) { cfg.StrokeColor = hexColor(c) }, confirm, nil)
	}
	swatches := container.NewHBox()
	for _, c := range swatchColors {
		swatches.Add(newColorSwatch(c, onColorTapped))
	}

	strokeSlider.SetValue(b.Config().StrokeWidth)
	strokeSlider.OnChangeEnded = func(val float64) {
		b.restyle(func(cfg *board.Config) { cfg.StrokeWidth = val }, confirm, func() {
			strokeSlider.SetValue(b.Config().StrokeWidth)
		})
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	return container.NewHBox(
		widget.NewLabel("Color:"),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
	)
}
