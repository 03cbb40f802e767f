package touch

import (
	"sync"

	"github.com/junsooki/AirTouch/internal/protocol"
)

// Sender is the keyed mouse-message dispatch the emulator sends through.
// Satisfied by *protocol.Registry.
type Sender interface {
	Lookup(name string) (protocol.Handler, bool)
}

// finger is the single tracked contact. Coordinates are video-local pixels
// (client position minus the cached bounding rectangle's top-left).
type finger struct {
	id   int64
	x, y float64
}

// Emulator tracks at most one finger and translates its motion into
// MouseDown/MouseMove/MouseUp messages. Two states: Idle (no finger) and
// Tracking (one finger); a touch-start while tracking is swallowed.
type Emulator struct {
	source  Source
	surface VideoSurface
	conv    Converter
	sender  Sender
	hover   HoverDispatcher

	mu     sync.Mutex
	bounds Rect
	finger *finger
}

func NewEmulator(source Source, surface VideoSurface, conv Converter, sender Sender, hover HoverDispatcher) *Emulator {
	return &Emulator{
		source:  source,
		surface: surface,
		conv:    conv,
		sender:  sender,
		hover:   hover,
	}
}

// Start attaches the emulator to its touch source. Callers must not Start
// twice without an intervening Stop.
func (e *Emulator) Start() {
	e.source.Attach(e)
}

// Stop detaches from the touch source. Safe to call when never started. An
// event already in flight when Stop returns may still be delivered.
func (e *Emulator) Stop() {
	e.source.Detach(e)
}

// SetVideoBounds refreshes the cached video rectangle used for coordinate
// math. Must be called whenever the video element moves or resizes, or
// translation goes stale.
func (e *Emulator) SetVideoBounds(r Rect) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bounds = r
}

// Reset drops any tracked finger without emitting messages. Recovery hook
// for a touch-end that was never delivered (for example after a peer
// disconnect mid-drag).
func (e *Emulator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.finger = nil
}

// Tracking reports whether a finger is currently tracked.
func (e *Emulator) Tracking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finger != nil
}

// TouchStart begins tracking when the video is ready, the event targets the
// video element and no finger is tracked. Any start while already tracking
// is swallowed with default suppressed, wherever it lands; a start that
// fails the ready or target guard while idle is ignored without suppressing
// default handling.
func (e *Emulator) TouchStart(ev *Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finger != nil {
		ev.PreventDefault()
		return
	}
	if !e.surface.Ready() || ev.Target != e.surface.Element() {
		return
	}
	if len(ev.Changed) > 0 {
		t := ev.Changed[0]
		f := &finger{
			id: t.ID,
			x:  t.ClientX - e.bounds.Left,
			y:  t.ClientY - e.bounds.Top,
		}
		e.finger = f
		e.hover.DispatchHover(e.surface.Parent(), HoverEvent{
			Kind:    HoverEnter,
			ClientX: t.ClientX,
			ClientY: t.ClientY,
		})
		x, y := e.conv.Unsigned(f.x, f.y)
		e.send(protocol.MouseDown, []int32{protocol.ButtonPrimary, x, y})
	}
	ev.PreventDefault()
}

// TouchMove forwards motion of the tracked finger as a MouseMove carrying
// both the absolute position and the delta from the previous one. Touches
// with other ids are ignored. Ignored entirely while idle.
func (e *Emulator) TouchMove(ev *Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finger == nil {
		return
	}
	for _, t := range ev.Active {
		if t.ID != e.finger.id {
			continue
		}
		x := t.ClientX - e.bounds.Left
		y := t.ClientY - e.bounds.Top
		ax, ay := e.conv.Unsigned(x, y)
		dx, dy := e.conv.Signed(x-e.finger.x, y-e.finger.y)
		e.send(protocol.MouseMove, []int32{ax, ay, dx, dy})
		e.finger.x = x
		e.finger.y = y
	}
	ev.PreventDefault()
}

// TouchEnd releases the tracked finger when its id appears in the changed
// list: sends MouseUp, dispatches mouseleave on the parent container and
// returns to idle. A non-matching end leaves tracking in place. Ignored
// entirely while idle.
func (e *Emulator) TouchEnd(ev *Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finger == nil {
		return
	}
	for _, t := range ev.Changed {
		if t.ID != e.finger.id {
			continue
		}
		x := t.ClientX - e.bounds.Left
		y := t.ClientY - e.bounds.Top
		ax, ay := e.conv.Unsigned(x, y)
		e.send(protocol.MouseUp, []int32{protocol.ButtonPrimary, ax, ay})
		e.hover.DispatchHover(e.surface.Parent(), HoverEvent{
			Kind:    HoverLeave,
			ClientX: t.ClientX,
			ClientY: t.ClientY,
		})
		e.finger = nil
		break
	}
	ev.PreventDefault()
}

func (e *Emulator) send(name string, args []int32) {
	if h, ok := e.sender.Lookup(name); ok {
		h(args)
	}
}
