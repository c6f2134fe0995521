package board

// State is the phase of a drawing session.
type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	}
	return "unknown"
}

// Session tracks one pointer interaction from start to end and paints the
// segments between consecutive resolved points.
//
// last is only meaningful while active is set.
type Session struct {
	tracker  *Tracker
	renderer Renderer

	active bool
	last   Point
}

func NewSession(t *Tracker, r Renderer) *Session {
	return &Session{tracker: t, renderer: r}
}

// Start begins a session at the event's resolved point. It reports whether the
// session is now drawing. A start while already drawing restarts the session
// at the new point without painting.
func (s *Session) Start(ev Event) bool {
	p, ok := s.tracker.Locate(ev)
	if !ok {
		return false
	}
	s.active = true
	s.last = p
	return true
}

// Move extends the stroke to the event's resolved point and reports whether a
// segment was painted. Events that arrive while idle, or that cannot be
// resolved, are dropped.
func (s *Session) Move(ev Event) bool {
	if !s.active {
		return false
	}
	p, ok := s.tracker.Locate(ev)
	if !ok {
		return false
	}
	if s.renderer != nil {
		s.renderer.Segment(s.last, p)
	}
	s.last = p
	return true
}

// End returns the session to idle. It never paints and is idempotent.
func (s *Session) End() {
	s.active = false
	s.last = Point{}
}

func (s *Session) State() State {
	if s.active {
		return Drawing
	}
	return Idle
}

// Last returns the most recent point of the active session.
func (s *Session) Last() (Point, bool) {
	return s.last, s.active
}
