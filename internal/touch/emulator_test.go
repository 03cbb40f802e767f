package touch

import (
	"testing"

	"github.com/junsooki/AirTouch/internal/protocol"
)

type fakeSource struct {
	attached []Listener
}

func (s *fakeSource) Attach(l Listener) {
	s.attached = append(s.attached, l)
}

func (s *fakeSource) Detach(l Listener) {
	for i, cur := range s.attached {
		if cur == l {
			s.attached = append(s.attached[:i], s.attached[i+1:]...)
			return
		}
	}
}

type fakeSurface struct {
	ready   bool
	element any
	parent  any
}

func (s *fakeSurface) Ready() bool  { return s.ready }
func (s *fakeSurface) Element() any { return s.element }
func (s *fakeSurface) Parent() any  { return s.parent }

// identityConv rounds pixels straight into the payload so expected values
// stay readable.
type identityConv struct{}

func (identityConv) Unsigned(x, y float64) (int32, int32) { return int32(x), int32(y) }
func (identityConv) Signed(dx, dy float64) (int32, int32) { return int32(dx), int32(dy) }

type sentMsg struct {
	name string
	args []int32
}

type recordSender struct {
	sent []sentMsg
}

func (s *recordSender) Lookup(name string) (protocol.Handler, bool) {
	return func(args []int32) {
		s.sent = append(s.sent, sentMsg{name: name, args: append([]int32(nil), args...)})
	}, true
}

type hoverRecord struct {
	target any
	ev     HoverEvent
}

type recordHover struct {
	events []hoverRecord
}

func (h *recordHover) DispatchHover(target any, ev HoverEvent) {
	h.events = append(h.events, hoverRecord{target: target, ev: ev})
}

type fixture struct {
	source  *fakeSource
	surface *fakeSurface
	sender  *recordSender
	hover   *recordHover
	em      *Emulator
}

func newFixture() *fixture {
	f := &fixture{
		source:  &fakeSource{},
		surface: &fakeSurface{ready: true, element: "video", parent: "container"},
		sender:  &recordSender{},
		hover:   &recordHover{},
	}
	f.em = NewEmulator(f.source, f.surface, identityConv{}, f.sender, f.hover)
	f.em.SetVideoBounds(Rect{Left: 10, Top: 20, Width: 640, Height: 360})
	return f
}

func startEvent(target any, t Touch) *Event {
	return &Event{Target: target, Changed: []Touch{t}, Active: []Touch{t}}
}

func (f *fixture) assertSent(t *testing.T, want ...sentMsg) {
	t.Helper()
	if len(f.sender.sent) != len(want) {
		t.Fatalf("sent %d messages, want %d: %+v", len(f.sender.sent), len(want), f.sender.sent)
	}
	for i, w := range want {
		got := f.sender.sent[i]
		if got.name != w.name {
			t.Fatalf("message %d is %s, want %s", i, got.name, w.name)
		}
		if len(got.args) != len(w.args) {
			t.Fatalf("%s has %d args, want %d", got.name, len(got.args), len(w.args))
		}
		for j := range w.args {
			if got.args[j] != w.args[j] {
				t.Fatalf("%s arg %d is %d, want %d", got.name, j, got.args[j], w.args[j])
			}
		}
	}
}

func TestStartAttachesAndStopDetaches(t *testing.T) {
	f := newFixture()
	f.em.Start()
	if len(f.source.attached) != 1 {
		t.Fatalf("expected 1 attached listener, got %d", len(f.source.attached))
	}
	f.em.Stop()
	if len(f.source.attached) != 0 {
		t.Fatalf("expected detach, still %d listeners", len(f.source.attached))
	}
}

func TestStopWithoutStart(t *testing.T) {
	f := newFixture()
	f.em.Stop() // must not panic or mutate
	if len(f.source.attached) != 0 {
		t.Fatalf("unexpected listeners: %d", len(f.source.attached))
	}
}

func TestTouchStartNotReady(t *testing.T) {
	f := newFixture()
	f.surface.ready = false

	ev := startEvent("video", Touch{ID: 1, ClientX: 110, ClientY: 120})
	f.em.TouchStart(ev)

	f.assertSent(t)
	if ev.DefaultPrevented() {
		t.Fatal("default must not be suppressed when the video is not ready")
	}
	if f.em.Tracking() {
		t.Fatal("must stay idle")
	}
}

func TestTouchStartWrongTarget(t *testing.T) {
	f := newFixture()

	ev := startEvent("container", Touch{ID: 1, ClientX: 110, ClientY: 120})
	f.em.TouchStart(ev)

	f.assertSent(t)
	if ev.DefaultPrevented() {
		t.Fatal("default must not be suppressed for a non-video target")
	}
	if f.em.Tracking() {
		t.Fatal("must stay idle")
	}
}

func TestTouchStartTracksAndSendsMouseDown(t *testing.T) {
	f := newFixture()

	ev := startEvent("video", Touch{ID: 7, ClientX: 110, ClientY: 120})
	f.em.TouchStart(ev)

	// bounds {left:10, top:20}: client (110,120) -> local (100,100)
	f.assertSent(t, sentMsg{protocol.MouseDown, []int32{protocol.ButtonPrimary, 100, 100}})
	if !ev.DefaultPrevented() {
		t.Fatal("default must be suppressed on a qualifying touch-start")
	}
	if !f.em.Tracking() {
		t.Fatal("must be tracking")
	}
	if len(f.hover.events) != 1 {
		t.Fatalf("expected 1 hover event, got %d", len(f.hover.events))
	}
	h := f.hover.events[0]
	if h.target != "container" || h.ev.Kind != HoverEnter {
		t.Fatalf("expected mouseenter on container, got %s on %v", h.ev.Kind, h.target)
	}
	if h.ev.ClientX != 110 || h.ev.ClientY != 120 {
		t.Fatalf("hover carries client coords (110,120), got (%v,%v)", h.ev.ClientX, h.ev.ClientY)
	}
}

func TestSecondTouchStartSwallowed(t *testing.T) {
	f := newFixture()
	f.em.TouchStart(startEvent("video", Touch{ID: 1, ClientX: 110, ClientY: 120}))

	ev := startEvent("video", Touch{ID: 2, ClientX: 300, ClientY: 300})
	f.em.TouchStart(ev)

	f.assertSent(t, sentMsg{protocol.MouseDown, []int32{0, 100, 100}})
	if !ev.DefaultPrevented() {
		t.Fatal("a touch-start during tracking is swallowed with default suppressed")
	}

	// The original finger is still the one tracked: moving id 1 produces a
	// delta from its recorded position.
	move := &Event{Active: []Touch{{ID: 1, ClientX: 160, ClientY: 170}}}
	f.em.TouchMove(move)
	f.assertSent(t,
		sentMsg{protocol.MouseDown, []int32{0, 100, 100}},
		sentMsg{protocol.MouseMove, []int32{150, 150, 50, 50}},
	)
}

func TestSecondTouchStartOffVideoSwallowed(t *testing.T) {
	f := newFixture()
	f.em.TouchStart(startEvent("video", Touch{ID: 1, ClientX: 110, ClientY: 120}))

	// A second contact landing outside the video element is still swallowed
	// while a finger is tracked: no message, default suppressed.
	ev := startEvent("container", Touch{ID: 2, ClientX: 5, ClientY: 5})
	f.em.TouchStart(ev)

	f.assertSent(t, sentMsg{protocol.MouseDown, []int32{0, 100, 100}})
	if !ev.DefaultPrevented() {
		t.Fatal("a touch-start while tracking must suppress default even off the video element")
	}
	if !f.em.Tracking() {
		t.Fatal("tracked finger must survive the stray start")
	}

	// The original finger is untouched.
	f.em.TouchMove(&Event{Active: []Touch{{ID: 1, ClientX: 160, ClientY: 170}}})
	f.assertSent(t,
		sentMsg{protocol.MouseDown, []int32{0, 100, 100}},
		sentMsg{protocol.MouseMove, []int32{150, 150, 50, 50}},
	)
}

func TestTouchMoveNonMatchingID(t *testing.T) {
	f := newFixture()
	f.em.TouchStart(startEvent("video", Touch{ID: 1, ClientX: 110, ClientY: 120}))

	ev := &Event{Active: []Touch{{ID: 9, ClientX: 500, ClientY: 500}}}
	f.em.TouchMove(ev)

	f.assertSent(t, sentMsg{protocol.MouseDown, []int32{0, 100, 100}})
	if !ev.DefaultPrevented() {
		t.Fatal("default is suppressed while tracking even without a match")
	}

	// Stored position must be unchanged: a matching move still deltas from
	// the start position.
	f.em.TouchMove(&Event{Active: []Touch{{ID: 1, ClientX: 160, ClientY: 170}}})
	f.assertSent(t,
		sentMsg{protocol.MouseDown, []int32{0, 100, 100}},
		sentMsg{protocol.MouseMove, []int32{150, 150, 50, 50}},
	)
}

func TestTouchMoveUpdatesStoredPosition(t *testing.T) {
	f := newFixture()
	f.em.TouchStart(startEvent("video", Touch{ID: 1, ClientX: 110, ClientY: 120}))

	f.em.TouchMove(&Event{Active: []Touch{{ID: 1, ClientX: 160, ClientY: 170}}})
	f.em.TouchMove(&Event{Active: []Touch{{ID: 1, ClientX: 170, ClientY: 160}}})

	f.assertSent(t,
		sentMsg{protocol.MouseDown, []int32{0, 100, 100}},
		sentMsg{protocol.MouseMove, []int32{150, 150, 50, 50}},
		sentMsg{protocol.MouseMove, []int32{160, 140, 10, -10}},
	)
}

func TestTouchEndMatching(t *testing.T) {
	f := newFixture()
	f.em.TouchStart(startEvent("video", Touch{ID: 1, ClientX: 110, ClientY: 120}))
	f.em.TouchMove(&Event{Active: []Touch{{ID: 1, ClientX: 160, ClientY: 170}}})

	ev := &Event{Changed: []Touch{{ID: 1, ClientX: 160, ClientY: 170}}}
	f.em.TouchEnd(ev)

	f.assertSent(t,
		sentMsg{protocol.MouseDown, []int32{0, 100, 100}},
		sentMsg{protocol.MouseMove, []int32{150, 150, 50, 50}},
		sentMsg{protocol.MouseUp, []int32{0, 150, 150}},
	)
	if !ev.DefaultPrevented() {
		t.Fatal("default must be suppressed on the matching touch-end")
	}
	if f.em.Tracking() {
		t.Fatal("must return to idle")
	}
	if len(f.hover.events) != 2 || f.hover.events[1].ev.Kind != HoverLeave {
		t.Fatalf("expected mouseleave as second hover event, got %+v", f.hover.events)
	}

	// A new touch-start is accepted again.
	f.em.TouchStart(startEvent("video", Touch{ID: 2, ClientX: 11, ClientY: 21}))
	if !f.em.Tracking() {
		t.Fatal("a start after release must track again")
	}
}

func TestTouchEndNonMatching(t *testing.T) {
	f := newFixture()
	f.em.TouchStart(startEvent("video", Touch{ID: 1, ClientX: 110, ClientY: 120}))

	ev := &Event{Changed: []Touch{{ID: 9, ClientX: 1, ClientY: 1}}}
	f.em.TouchEnd(ev)

	f.assertSent(t, sentMsg{protocol.MouseDown, []int32{0, 100, 100}})
	if !ev.DefaultPrevented() {
		t.Fatal("default is suppressed while tracking even without a match")
	}
	if !f.em.Tracking() {
		t.Fatal("a non-matching end must not clear tracking")
	}
	if len(f.hover.events) != 1 {
		t.Fatalf("no mouseleave without a match, got %+v", f.hover.events)
	}
}

func TestMoveAndEndIgnoredWhileIdle(t *testing.T) {
	f := newFixture()

	move := &Event{Active: []Touch{{ID: 1, ClientX: 50, ClientY: 50}}}
	end := &Event{Changed: []Touch{{ID: 1, ClientX: 50, ClientY: 50}}}
	f.em.TouchMove(move)
	f.em.TouchEnd(end)

	f.assertSent(t)
	if move.DefaultPrevented() || end.DefaultPrevented() {
		t.Fatal("idle move/end must not suppress default handling")
	}
}

func TestSetVideoBoundsAffectsTranslation(t *testing.T) {
	f := newFixture()
	f.em.SetVideoBounds(Rect{Left: 100, Top: 200})

	f.em.TouchStart(startEvent("video", Touch{ID: 1, ClientX: 110, ClientY: 220}))
	f.assertSent(t, sentMsg{protocol.MouseDown, []int32{0, 10, 20}})
}

func TestResetDropsTrackedFinger(t *testing.T) {
	f := newFixture()
	f.em.TouchStart(startEvent("video", Touch{ID: 1, ClientX: 110, ClientY: 120}))

	f.em.Reset()

	if f.em.Tracking() {
		t.Fatal("reset must clear tracking")
	}
	// No MouseUp or hover from the reset itself.
	f.assertSent(t, sentMsg{protocol.MouseDown, []int32{0, 100, 100}})
	if len(f.hover.events) != 1 {
		t.Fatalf("reset must not dispatch hover events, got %+v", f.hover.events)
	}

	// The stale id is gone: its end is ignored and a new start is accepted.
	end := &Event{Changed: []Touch{{ID: 1, ClientX: 1, ClientY: 1}}}
	f.em.TouchEnd(end)
	if end.DefaultPrevented() {
		t.Fatal("end after reset is an idle no-op")
	}
	f.em.TouchStart(startEvent("video", Touch{ID: 2, ClientX: 110, ClientY: 120}))
	if !f.em.Tracking() {
		t.Fatal("start after reset must track")
	}
}
