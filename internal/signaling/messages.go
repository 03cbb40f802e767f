package signaling

import "encoding/json"

// Message types for the signaling protocol.
const (
	TypeRegister         = "register"
	TypeRegistered       = "registered"
	TypeOffer            = "offer"
	TypeAnswer           = "answer"
	TypeICECandidate     = "ice-candidate"
	TypePing             = "ping"
	TypePong             = "pong"
	TypeError            = "error"
	TypePeerDisconnected = "peer-disconnected"
)

// Roles a client registers as.
const (
	RoleHost       = "host"
	RoleController = "controller"
)

// Message is the envelope for all signaling traffic.
type Message struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Role    string          `json:"role,omitempty"`
	From    string          `json:"from,omitempty"`
	Target  string          `json:"target,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	PeerID  string          `json:"peerId,omitempty"`
	Msg     string          `json:"message,omitempty"`
}
