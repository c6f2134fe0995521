package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"onbo/internal/board"
)

// WritePDF replays strokes as vector lines on a single page the size of the
// surface, one point per pixel.
func WritePDF(w io.Writer, cfg board.Config, strokes []board.Stroke) error {
	width, height := float64(cfg.Width), float64(cfg.Height)

	// Portrait keeps Wd/Ht as given, whatever the aspect ratio.
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	p.SetFillColor(255, 255, 255)
	p.Rect(0, 0, width, height, "F")

	r, g, b, _ := cfg.Color().RGBA()
	p.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
	p.SetLineWidth(cfg.StrokeWidth)
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, st := range strokes {
		for i := 1; i < len(st.Points); i++ {
			a, c := st.Points[i-1], st.Points[i]
			p.Line(a.X, a.Y, c.X, c.Y)
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePNG encodes the surface bitmap.
func WritePNG(w io.Writer, s *board.Surface) error {
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
