package board

// Point is a position in the local coordinate space of a drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p translated by -o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Source identifies the kind of device an Event came from.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

// Event is a raw interaction event in absolute device coordinates.
type Event struct {
	Source Source
	// Pointer is the absolute position for mouse and pen input.
	Pointer Point
	// Touches holds the absolute positions of the active touch contacts.
	// Only the first one is used.
	Touches []Point
}

// MouseEvent builds an Event for a single-point pointing device.
func MouseEvent(x, y float64) Event {
	return Event{Source: SourceMouse, Pointer: Point{X: x, Y: y}}
}

// TouchEvent builds an Event for a touch interaction with the given contacts.
func TouchEvent(contacts ...Point) Event {
	return Event{Source: SourceTouch, Touches: contacts}
}

// Segment is one painted line between two consecutive points of a stroke.
type Segment struct {
	Stroke string `json:"stroke"`
	Seq    uint64 `json:"seq"`
	From   Point  `json:"from"`
	To     Point  `json:"to"`
}

// Stroke is the polyline painted during one session.
type Stroke struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
}
