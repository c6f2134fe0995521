package board

import (
	"image"
	"io"
	"log"

	"github.com/gogpu/gg"
)

// Renderer paints straight segments onto a surface.
type Renderer interface {
	Segment(a, b Point)
}

// Bitmap is the persistent raster strokes are painted onto.
type Bitmap struct {
	dc *gg.Context
}

// NewBitmap returns a bitmap initialized for cfg. cfg must be normalized.
func NewBitmap(cfg Config) *Bitmap {
	b := &Bitmap{dc: gg.NewContext(cfg.Width, cfg.Height)}
	b.Reset(cfg)
	return b
}

// Reset resizes the bitmap, fills it with the background and reapplies the
// stroke style. All prior content is lost.
func (b *Bitmap) Reset(cfg Config) {
	if b == nil || b.dc == nil {
		return
	}
	if err := b.dc.Resize(cfg.Width, cfg.Height); err != nil {
		log.Printf("[BOARD] resize to %dx%d failed: %v", cfg.Width, cfg.Height, err)
		return
	}
	b.dc.ClearWithColor(gg.FromColor(Background))
	b.dc.SetColor(cfg.Color())
	b.dc.SetLineWidth(cfg.StrokeWidth)
	b.dc.SetLineCap(gg.LineCapRound)
	b.dc.SetLineJoin(gg.LineJoinRound)
}

// Segment strokes a line from a to b with the current style.
func (b *Bitmap) Segment(a, p Point) {
	if b == nil || b.dc == nil {
		return
	}
	b.dc.DrawLine(a.X, a.Y, p.X, p.Y)
	if err := b.dc.Stroke(); err != nil {
		log.Printf("[BOARD] stroke failed: %v", err)
	}
}

func (b *Bitmap) Width() int  { return b.dc.Width() }
func (b *Bitmap) Height() int { return b.dc.Height() }

// Image returns a snapshot of the bitmap.
func (b *Bitmap) Image() image.Image {
	return b.dc.Image()
}

// CopyTo copies the bitmap into dst and returns it. dst is reallocated only
// when its size no longer matches the bitmap.
func (b *Bitmap) CopyTo(dst *image.RGBA) *image.RGBA {
	pm := b.dc.ResizeTarget()
	w, h := pm.Width(), pm.Height()
	if dst == nil || dst.Rect.Dx() != w || dst.Rect.Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	copy(dst.Pix, pm.Data())
	return dst
}

func (b *Bitmap) EncodePNG(w io.Writer) error {
	return b.dc.EncodePNG(w)
}
