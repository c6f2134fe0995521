package board

import (
	"image"
	"io"
	"log"
)

// Surface owns a bitmap, its configuration and the drawing session painting
// onto it. All methods are expected to be called from the UI event goroutine.
type Surface struct {
	cfg     Config
	bitmap  *Bitmap
	session *Session
	history *History
	stroke  string

	// OnSegment is called after each painted segment.
	OnSegment func(Segment)
}

// NewSurface creates a surface mounted at m and configured with cfg.
func NewSurface(m Mount, cfg Config) (*Surface, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	s := &Surface{
		cfg:     cfg,
		bitmap:  NewBitmap(cfg),
		history: NewHistory(),
	}
	s.session = NewSession(NewTracker(m), recorder{s})
	return s, nil
}

// Configure replaces the configuration and reinitializes the bitmap, wiping
// all prior strokes. An in-progress session is ended first so nothing is
// painted onto a bitmap mid-resize.
func (s *Surface) Configure(cfg Config) error {
	cfg, err := cfg.Normalize()
	if err != nil {
		return err
	}
	if s.session.State() == Drawing {
		log.Printf("[BOARD] configure while drawing, ending stroke %s", s.stroke)
		s.End()
	}
	s.cfg = cfg
	s.bitmap.Reset(cfg)
	s.history.Clear()
	log.Printf("[BOARD] surface configured %dx%d color=%s width=%v",
		cfg.Width, cfg.Height, cfg.StrokeColor, cfg.StrokeWidth)
	return nil
}

// Start begins a stroke at the event's position.
func (s *Surface) Start(ev Event) {
	if s.session.Start(ev) {
		s.stroke = NewStrokeID()
	}
}

// Move extends the current stroke, if any.
func (s *Surface) Move(ev Event) {
	s.session.Move(ev)
}

// End finishes the current stroke without painting.
func (s *Surface) End() {
	s.session.End()
	s.stroke = ""
}

// Leave is called when the pointer leaves the surface. It behaves like End.
func (s *Surface) Leave() {
	s.End()
}

func (s *Surface) Config() Config { return s.cfg }
func (s *Surface) State() State   { return s.session.State() }

// Image returns a snapshot of the bitmap.
func (s *Surface) Image() image.Image { return s.bitmap.Image() }

// CopyTo copies the bitmap into dst, reusing it when the size matches.
func (s *Surface) CopyTo(dst *image.RGBA) *image.RGBA { return s.bitmap.CopyTo(dst) }

func (s *Surface) EncodePNG(w io.Writer) error { return s.bitmap.EncodePNG(w) }

// Segments returns every segment painted since the last Configure.
func (s *Surface) Segments() []Segment { return s.history.Segments() }

// Strokes returns the painted segments grouped by session.
func (s *Surface) Strokes() []Stroke { return s.history.Strokes() }

// recorder paints onto the bitmap and logs the segment.
type recorder struct {
	s *Surface
}

func (r recorder) Segment(a, b Point) {
	r.s.bitmap.Segment(a, b)
	seg := r.s.history.Record(r.s.stroke, a, b)
	if r.s.OnSegment != nil {
		r.s.OnSegment(seg)
	}
}
