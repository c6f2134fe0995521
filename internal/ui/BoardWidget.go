package ui

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"onbo/internal/board"
)

// BoardWidget shows a drawing surface and feeds it pointer and touch input.
type BoardWidget struct {
	widget.BaseWidget
	surface *board.Surface
	tool    Tool
	image   *canvas.Image
	// frame backs image and is rewritten in place on every repaint.
	frame *image.RGBA

	// OnChanged is called after the bitmap changed.
	OnChanged func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(cfg board.Config) (*BoardWidget, error) {
	b := &BoardWidget{tool: ToolSelect}
	s, err := board.NewSurface(board.MountFunc(b.origin), cfg)
	if err != nil {
		return nil, err
	}
	s.OnSegment = func(board.Segment) { b.repaint() }
	b.surface = s

	b.frame = s.CopyTo(nil)
	b.image = canvas.NewImageFromImage(b.frame)
	b.image.FillMode = canvas.ImageFillOriginal
	b.image.ScaleMode = canvas.ImageScalePixels
	b.ExtendBaseWidget(b)
	return b, nil
}

// origin reports where the widget sits in its window. The board counts as
// unmounted while it is hidden or not attached to a canvas.
func (b *BoardWidget) origin() (board.Point, bool) {
	app := fyne.CurrentApp()
	if app == nil || !b.Visible() {
		return board.Point{}, false
	}
	d := app.Driver()
	if d.CanvasForObject(b) == nil {
		return board.Point{}, false
	}
	pos := d.AbsolutePositionForObject(b)
	return board.Point{X: float64(pos.X), Y: float64(pos.Y)}, true
}

func (b *BoardWidget) repaint() {
	b.frame = b.surface.CopyTo(b.frame)
	b.image.Image = b.frame
	b.image.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

// Surface exposes the underlying drawing surface.
func (b *BoardWidget) Surface() *board.Surface { return b.surface }

func (b *BoardWidget) Config() board.Config { return b.surface.Config() }

// Configure restyles or resizes the board. The bitmap is cleared.
func (b *BoardWidget) Configure(cfg board.Config) error {
	if err := b.surface.Configure(cfg); err != nil {
		log.Printf("[UI] rejected board config: %v", err)
		return err
	}
	b.repaint()
	b.Refresh()
	return nil
}

// SetTool selects the active tool. Leaving the pen ends any stroke.
func (b *BoardWidget) SetTool(t Tool) {
	if t != ToolPen {
		b.surface.End()
	}
	b.tool = t
}

func (b *BoardWidget) Tool() Tool { return b.tool }

// Snapshot returns the current bitmap.
func (b *BoardWidget) Snapshot() image.Image { return b.surface.Image() }

func toBoardPoint(p fyne.Position) board.Point {
	return board.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) start(ev board.Event) {
	if b.tool != ToolPen {
		return
	}
	b.surface.Start(ev)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.start(board.MouseEvent(float64(e.AbsolutePosition.X), float64(e.AbsolutePosition.Y)))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.surface.End()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.surface.Move(board.MouseEvent(float64(e.AbsolutePosition.X), float64(e.AbsolutePosition.Y)))
}

func (b *BoardWidget) DragEnd() {
	b.surface.End()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseOut() {
	b.surface.Leave()
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.start(board.TouchEvent(toBoardPoint(e.AbsolutePosition)))
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.surface.End()
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.surface.Leave()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) size() fyne.Size {
	cfg := r.board.surface.Config()
	return fyne.NewSize(float32(cfg.Width), float32(cfg.Height))
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {
	r.board.image.Move(fyne.NewPos(0, 0))
	r.board.image.Resize(r.size())
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.size()
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.image}
}

func (r *boardWidgetRenderer) Refresh() {
	r.Layout(r.board.Size())
	canvas.Refresh(r.board.image)
}

func (r *boardWidgetRenderer) Destroy() {}
