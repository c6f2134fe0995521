package board

// Mount reports where a surface currently sits on screen.
// ok is false while the surface is not mounted.
type Mount interface {
	Origin() (origin Point, ok bool)
}

// MountFunc adapts a function to the Mount interface.
type MountFunc func() (Point, bool)

func (f MountFunc) Origin() (Point, bool) { return f() }

// FixedMount is a Mount that is always mounted at the given origin.
func FixedMount(origin Point) Mount {
	return MountFunc(func() (Point, bool) { return origin, true })
}

// Tracker converts raw events into surface-local points.
type Tracker struct {
	mount Mount
}

func NewTracker(m Mount) *Tracker {
	return &Tracker{mount: m}
}

// Locate resolves ev against the mount's current origin. Touch events use
// their first contact only; multi-touch is not supported.
func (t *Tracker) Locate(ev Event) (Point, bool) {
	if t == nil || t.mount == nil {
		return Point{}, false
	}
	origin, ok := t.mount.Origin()
	if !ok {
		return Point{}, false
	}

	abs := ev.Pointer
	if ev.Source == SourceTouch {
		if len(ev.Touches) == 0 {
			return Point{}, false
		}
		abs = ev.Touches[0]
	}
	return abs.Sub(origin), true
}
