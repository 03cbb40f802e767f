package peer

import (
	"encoding/json"
	"log"

	"github.com/pion/webrtc/v4"

	"github.com/junsooki/AirTouch/internal/signaling"
	"github.com/junsooki/AirTouch/internal/transport"
)

// Host answers controller offers and owns creation of the frames and
// control data channels.
type Host struct {
	pc        *webrtc.PeerConnection
	sig       *signaling.Client
	transport *transport.DataChannelTransport
	peerID    string
}

// NewHost creates a host peer. onState receives connection state changes and
// may be nil.
func NewHost(sig *signaling.Client, onState func(webrtc.PeerConnectionState)) (*Host, error) {
	pc, err := newPeerConnection(onState)
	if err != nil {
		return nil, err
	}

	h := &Host{pc: pc, sig: sig}

	// Frames tolerate loss and reordering; control must arrive in order so
	// mouse-down/move/up sequencing survives the wire.
	framesOrdered := false
	framesMaxRetransmits := uint16(0)
	framesDC, err := pc.CreateDataChannel(transport.LabelFrames, &webrtc.DataChannelInit{
		Ordered:        &framesOrdered,
		MaxRetransmits: &framesMaxRetransmits,
	})
	if err != nil {
		pc.Close()
		return nil, err
	}

	controlOrdered := true
	controlDC, err := pc.CreateDataChannel(transport.LabelControl, &webrtc.DataChannelInit{
		Ordered: &controlOrdered,
	})
	if err != nil {
		pc.Close()
		return nil, err
	}

	h.transport = transport.NewDataChannelTransport(framesDC, controlDC)

	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil || h.peerID == "" {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			log.Printf("marshal ICE candidate: %v", err)
			return
		}
		_ = sig.SendICECandidate(h.peerID, data)
	})

	return h, nil
}

// Transport returns the transport for sending frames and receiving control
// messages.
func (h *Host) Transport() *transport.DataChannelTransport {
	return h.transport
}

// HandleOffer processes an incoming offer from a controller and answers it.
func (h *Host) HandleOffer(from string, payload json.RawMessage) error {
	h.peerID = from

	var offer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &offer); err != nil {
		return err
	}
	if err := h.pc.SetRemoteDescription(offer); err != nil {
		return err
	}

	answer, err := h.pc.CreateAnswer(nil)
	if err != nil {
		return err
	}
	if err := h.pc.SetLocalDescription(answer); err != nil {
		return err
	}

	answerJSON, err := json.Marshal(answer)
	if err != nil {
		return err
	}
	return h.sig.SendAnswer(from, answerJSON)
}

// HandleICECandidate adds a remote ICE candidate.
func (h *Host) HandleICECandidate(payload json.RawMessage) error {
	var candidate webrtc.ICECandidateInit
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return err
	}
	return h.pc.AddICECandidate(candidate)
}

// Close shuts down the peer connection.
func (h *Host) Close() {
	if h.pc != nil {
		h.pc.Close()
	}
}
