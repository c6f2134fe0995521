package board

import (
	"sync"

	"github.com/google/uuid"
)

// History is the ordered log of every segment painted since the last
// configuration. It mirrors the bitmap as data so it can be exported or
// replayed.
type History struct {
	clock    Clock
	segments []Segment
	mu       sync.RWMutex
}

func NewHistory() *History {
	return &History{}
}

// NewStrokeID returns a unique identifier for a new stroke.
func NewStrokeID() string {
	return uuid.NewString()
}

// Record appends a segment belonging to stroke and returns it.
func (h *History) Record(stroke string, from, to Point) Segment {
	h.mu.Lock()
	defer h.mu.Unlock()

	seg := Segment{
		Stroke: stroke,
		Seq:    h.clock.Tick(),
		From:   from,
		To:     to,
	}
	h.segments = append(h.segments, seg)
	return seg
}

// Segments returns a copy of the log in paint order.
func (h *History) Segments() []Segment {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Segment, len(h.segments))
	copy(out, h.segments)
	return out
}

// Strokes groups the log into polylines, ordered by first appearance.
func (h *History) Strokes() []Stroke {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var strokes []Stroke
	index := make(map[string]int)
	for _, seg := range h.segments {
		i, ok := index[seg.Stroke]
		if !ok {
			i = len(strokes)
			index[seg.Stroke] = i
			strokes = append(strokes, Stroke{ID: seg.Stroke, Points: []Point{seg.From}})
		}
		strokes[i].Points = append(strokes[i].Points, seg.To)
	}
	return strokes
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.segments)
}

// Clear drops every recorded segment.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.segments = nil
}
