package protocol

import "sync"

// Handler consumes the ordered numeric payload of a named mouse message.
type Handler func(args []int32)

// Registry maps message names to handlers. The controller registers senders
// that encode onto the control channel; the host registers injectors.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds a handler to a message name, replacing any previous one.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Lookup returns the handler bound to name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Dispatch invokes the handler bound to name, reporting whether one existed.
func (r *Registry) Dispatch(name string, args []int32) bool {
	h, ok := r.Lookup(name)
	if !ok {
		return false
	}
	h(args)
	return true
}
