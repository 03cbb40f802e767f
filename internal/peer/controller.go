package peer

import (
	"encoding/json"
	"log"

	"github.com/pion/webrtc/v4"

	"github.com/junsooki/AirTouch/internal/signaling"
	"github.com/junsooki/AirTouch/internal/transport"
)

// Controller initiates the WebRTC connection to a host and adopts the data
// channels the host creates.
type Controller struct {
	pc        *webrtc.PeerConnection
	sig       *signaling.Client
	transport *transport.DataChannelTransport
	hostID    string
}

// NewController creates a controller peer targeting hostID. onState receives
// connection state changes and may be nil.
func NewController(sig *signaling.Client, hostID string, onState func(webrtc.PeerConnectionState)) (*Controller, error) {
	pc, err := newPeerConnection(onState)
	if err != nil {
		return nil, err
	}

	ctrl := &Controller{
		pc:        pc,
		sig:       sig,
		transport: transport.NewDataChannelTransport(nil, nil),
		hostID:    hostID,
	}

	pc.OnDataChannel(func(dc *webrtc.DataChannel) {
		log.Printf("data channel received: %s", dc.Label())
		switch dc.Label() {
		case transport.LabelFrames:
			ctrl.transport.SetFramesChannel(dc)
		case transport.LabelControl:
			ctrl.transport.SetControlChannel(dc)
		}
	})

	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			log.Printf("marshal ICE candidate: %v", err)
			return
		}
		_ = sig.SendICECandidate(hostID, data)
	})

	return ctrl, nil
}

// Transport returns the transport for receiving frames and sending control
// messages.
func (c *Controller) Transport() *transport.DataChannelTransport {
	return c.transport
}

// Connect creates and sends an offer to the host.
func (c *Controller) Connect() error {
	offer, err := c.pc.CreateOffer(nil)
	if err != nil {
		return err
	}
	if err := c.pc.SetLocalDescription(offer); err != nil {
		return err
	}

	offerJSON, err := json.Marshal(offer)
	if err != nil {
		return err
	}
	return c.sig.SendOffer(c.hostID, offerJSON)
}

// HandleAnswer processes the host's SDP answer.
func (c *Controller) HandleAnswer(payload json.RawMessage) error {
	var answer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &answer); err != nil {
		return err
	}
	return c.pc.SetRemoteDescription(answer)
}

// HandleICECandidate adds a remote ICE candidate.
func (c *Controller) HandleICECandidate(payload json.RawMessage) error {
	var candidate webrtc.ICECandidateInit
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return err
	}
	return c.pc.AddICECandidate(candidate)
}

// Close shuts down the peer connection.
func (c *Controller) Close() {
	if c.pc != nil {
		c.pc.Close()
	}
}
