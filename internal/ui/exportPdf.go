package ui

import (
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"onbo/internal/export"
)

// saveAs asks for a destination and hands it to write.
func (a *App) saveAs(fileName string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if w == nil {
			return // cancelled
		}
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("[UI] close %s: %v", w.URI(), err)
			}
		}()
		if err := write(w); err != nil {
			log.Printf("[UI] export to %s failed: %v", w.URI(), err)
			dialog.ShowError(err, a.window)
			return
		}
		log.Printf("[UI] exported %s", w.URI())
	}, a.window)
	d.SetFileName(fileName)
	d.Show()
}

func (a *App) exportPDF(b *BoardWidget) {
	a.saveAs("whiteboard.pdf", func(w io.Writer) error {
		s := b.Surface()
		return export.WritePDF(w, s.Config(), s.Strokes())
	})
}

func (a *App) exportPNG(b *BoardWidget) {
	a.saveAs("whiteboard.png", func(w io.Writer) error {
		return export.WritePNG(w, b.Surface())
	})
}

func strokeStatus(n int) string {
	if n == 1 {
		return "1 stroke"
	}
	return fmt.Sprintf("%d strokes", n)
}
