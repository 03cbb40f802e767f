// Package touch emulates a single-pointer mouse from multi-touch input so a
// mouse-semantic remote stream can be driven from a touchscreen.
package touch

// Touch is one physical contact as reported by the touch source. ID is
// stable for the lifetime of the contact; coordinates are client (window)
// space.
type Touch struct {
	ID      int64
	ClientX float64
	ClientY float64
}

// Event is a touch notification delivered to listeners. Changed holds the
// touches that triggered the event (changedTouches); Active holds every
// contact currently on the surface (touches).
type Event struct {
	Target  any
	Changed []Touch
	Active  []Touch

	prevented bool
}

// PreventDefault suppresses the source's default handling of this event.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler suppressed default handling.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Rect is the video element's bounding rectangle in client coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Listener receives the three raw touch notifications.
type Listener interface {
	TouchStart(*Event)
	TouchMove(*Event)
	TouchEnd(*Event)
}

// Source delivers touch events to attached listeners, one event at a time.
// Detach of a listener that was never attached is a no-op.
type Source interface {
	Attach(Listener)
	Detach(Listener)
}

// VideoSurface reports the remote video's readiness and exposes its element
// and parent container as opaque dispatch targets.
type VideoSurface interface {
	Ready() bool
	Element() any
	Parent() any
}

// Converter quantizes video-local pixel coordinates into the stream's
// normalized space.
type Converter interface {
	Unsigned(x, y float64) (int32, int32)
	Signed(dx, dy float64) (int32, int32)
}

// Hover event kinds re-dispatched on the video's parent container so local
// UI keyed off mouse hover keeps working under touch.
const (
	HoverEnter = "mouseenter"
	HoverLeave = "mouseleave"
)

// HoverEvent is a synthetic hover notification carrying the originating
// touch's client coordinates.
type HoverEvent struct {
	Kind    string
	ClientX float64
	ClientY float64
}

// HoverDispatcher dispatches synthetic hover events on an opaque target.
type HoverDispatcher interface {
	DispatchHover(target any, ev HoverEvent)
}
