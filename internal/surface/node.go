package surface

import (
	"sync"

	"github.com/junsooki/AirTouch/internal/touch"
)

// Node is a minimal event target: an identity the emulator can compare
// against and a listener registry for synthetic hover events. It stands in
// for the DOM nodes a browser client would dispatch on.
type Node struct {
	name string

	mu        sync.Mutex
	listeners map[string][]func(touch.HoverEvent)
}

func NewNode(name string) *Node {
	return &Node{
		name:      name,
		listeners: make(map[string][]func(touch.HoverEvent)),
	}
}

func (n *Node) Name() string { return n.name }

// AddEventListener registers fn for hover events of the given kind.
func (n *Node) AddEventListener(kind string, fn func(touch.HoverEvent)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners[kind] = append(n.listeners[kind], fn)
}

// Dispatch delivers ev to every listener registered for its kind.
func (n *Node) Dispatch(ev touch.HoverEvent) {
	n.mu.Lock()
	fns := make([]func(touch.HoverEvent), len(n.listeners[ev.Kind]))
	copy(fns, n.listeners[ev.Kind])
	n.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// Dispatcher routes synthetic hover events onto Node targets. Non-Node
// targets are ignored.
type Dispatcher struct{}

func (Dispatcher) DispatchHover(target any, ev touch.HoverEvent) {
	if n, ok := target.(*Node); ok {
		n.Dispatch(ev)
	}
}
