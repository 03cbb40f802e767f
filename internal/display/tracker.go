package display

import (
	"sync"

	"github.com/junsooki/AirTouch/internal/touch"
)

// contact is the last known position of one touch id.
type contact struct {
	x, y float64
}

// tracker turns per-tick touch snapshots into touch-start/move/end events
// and delivers them to attached listeners. It is the controller's stand-in
// for the document: because each tick carries the authoritative set of
// contacts, an id that disappears always produces a touch-end, so a lost
// release cannot leave a listener tracking a dead finger.
type tracker struct {
	// hit resolves a window position to the event target under it.
	hit func(x, y float64) any

	mu        sync.Mutex
	listeners []touch.Listener
	active    map[int64]contact
}

func newTracker(hit func(x, y float64) any) *tracker {
	return &tracker{
		hit:    hit,
		active: make(map[int64]contact),
	}
}

func (t *tracker) Attach(l touch.Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, l)
}

// Detach removes l. No-op when l was never attached.
func (t *tracker) Detach(l touch.Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, cur := range t.listeners {
		if cur == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// advance ingests the current tick's full set of contacts and emits one
// touch-end, one touch-start and one touch-move event as needed, in that
// order. Ended touches report their last known position.
func (t *tracker) advance(snapshot []touch.Touch) {
	t.mu.Lock()

	current := make(map[int64]touch.Touch, len(snapshot))
	for _, tc := range snapshot {
		current[tc.ID] = tc
	}

	var started, moved, ended []touch.Touch
	for id, c := range t.active {
		if _, ok := current[id]; !ok {
			ended = append(ended, touch.Touch{ID: id, ClientX: c.x, ClientY: c.y})
			delete(t.active, id)
		}
	}
	for _, tc := range snapshot {
		prev, ok := t.active[tc.ID]
		switch {
		case !ok:
			started = append(started, tc)
		case prev.x != tc.ClientX || prev.y != tc.ClientY:
			moved = append(moved, tc)
		}
		t.active[tc.ID] = contact{x: tc.ClientX, y: tc.ClientY}
	}

	listeners := append([]touch.Listener(nil), t.listeners...)
	t.mu.Unlock()

	if len(ended) > 0 {
		ev := &touch.Event{
			Target:  t.hit(ended[0].ClientX, ended[0].ClientY),
			Changed: ended,
			Active:  snapshot,
		}
		for _, l := range listeners {
			l.TouchEnd(ev)
		}
	}
	if len(started) > 0 {
		ev := &touch.Event{
			Target:  t.hit(started[0].ClientX, started[0].ClientY),
			Changed: started,
			Active:  snapshot,
		}
		for _, l := range listeners {
			l.TouchStart(ev)
		}
	}
	if len(moved) > 0 {
		ev := &touch.Event{
			Target:  t.hit(moved[0].ClientX, moved[0].ClientY),
			Changed: moved,
			Active:  snapshot,
		}
		for _, l := range listeners {
			l.TouchMove(ev)
		}
	}
}
