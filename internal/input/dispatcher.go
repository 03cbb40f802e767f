package input

import (
	"log"

	"github.com/junsooki/AirTouch/internal/coords"
	"github.com/junsooki/AirTouch/internal/protocol"
)

// NewDispatcher builds the host's message registry: each mouse message name
// routes through coordinate denormalization into the injector. width and
// height are the captured display's pixel dimensions.
func NewDispatcher(inj Injector, width, height int) *protocol.Registry {
	w := float64(width)
	h := float64(height)

	r := protocol.NewRegistry()
	r.Register(protocol.MouseDown, func(args []int32) {
		x, y := coords.Denormalize(args[1], args[2], w, h)
		if err := inj.MouseDown(x, y, int(args[0])); err != nil {
			log.Printf("inject mouse down: %v", err)
		}
	})
	r.Register(protocol.MouseUp, func(args []int32) {
		x, y := coords.Denormalize(args[1], args[2], w, h)
		if err := inj.MouseUp(x, y, int(args[0])); err != nil {
			log.Printf("inject mouse up: %v", err)
		}
	})
	r.Register(protocol.MouseMove, func(args []int32) {
		// args[2:] is the signed delta; injection is absolute, so only the
		// position is used.
		x, y := coords.Denormalize(args[0], args[1], w, h)
		if err := inj.MouseMove(x, y); err != nil {
			log.Printf("inject mouse move: %v", err)
		}
	})
	return r
}

// HandleControl decodes one control-channel payload and dispatches it
// through the registry. Malformed or unknown messages are logged and
// dropped.
func HandleControl(r *protocol.Registry, data []byte) {
	msg, err := protocol.Decode(data)
	if err != nil {
		log.Printf("control message: %v", err)
		return
	}
	r.Dispatch(msg.Type, msg.Args)
}
