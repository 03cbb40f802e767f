package protocol

import (
	"encoding/json"
	"fmt"
)

// Named mouse messages carried on the control data channel.
const (
	MouseDown = "MouseDown"
	MouseUp   = "MouseUp"
	MouseMove = "MouseMove"
)

// ButtonPrimary is the left mouse button, the only button touch emulation
// ever presses.
const ButtonPrimary int32 = 0

// Payload shapes per message name:
//
//	MouseDown  [button, x, y]
//	MouseUp    [button, x, y]
//	MouseMove  [x, y, dx, dy]
//
// x/y are unsigned 16-bit normalized positions, dx/dy signed deltas at the
// same scale.
var argCounts = map[string]int{
	MouseDown: 3,
	MouseUp:   3,
	MouseMove: 4,
}

// ArgCount returns the required payload length for a message name.
func ArgCount(name string) (int, bool) {
	n, ok := argCounts[name]
	return n, ok
}

// Message is the wire envelope for control-channel messages.
type Message struct {
	Type string  `json:"type"`
	Args []int32 `json:"args"`
}

// Encode marshals a named message and its payload.
func Encode(name string, args []int32) ([]byte, error) {
	return json.Marshal(Message{Type: name, Args: args})
}

// Decode unmarshals a control-channel message and validates its payload
// length against the message name.
func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("decode control message: %w", err)
	}
	want, ok := argCounts[msg.Type]
	if !ok {
		return Message{}, fmt.Errorf("unknown control message %q", msg.Type)
	}
	if len(msg.Args) != want {
		return Message{}, fmt.Errorf("%s payload has %d args, want %d", msg.Type, len(msg.Args), want)
	}
	return msg, nil
}
