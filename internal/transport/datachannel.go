package transport

import (
	"fmt"
	"sync"

	"github.com/pion/webrtc/v4"
)

// DataChannelTransport carries frames and control messages over a pair of
// WebRTC DataChannels. Frames ride an unordered lossy channel, control an
// ordered reliable one.
type DataChannelTransport struct {
	mu        sync.Mutex
	framesDC  *webrtc.DataChannel
	controlDC *webrtc.DataChannel
	onFrame   func(data []byte)
	onControl func(data []byte)
}

// NewDataChannelTransport wraps the two channels. Either may be nil and set
// later with SetFramesChannel/SetControlChannel when channels arrive from
// the remote peer.
func NewDataChannelTransport(framesDC, controlDC *webrtc.DataChannel) *DataChannelTransport {
	t := &DataChannelTransport{}
	if framesDC != nil {
		t.SetFramesChannel(framesDC)
	}
	if controlDC != nil {
		t.SetControlChannel(controlDC)
	}
	return t
}

func (t *DataChannelTransport) SendFrame(data []byte) error {
	t.mu.Lock()
	dc := t.framesDC
	t.mu.Unlock()
	if dc == nil {
		return fmt.Errorf("frames channel not open")
	}
	return dc.Send(data)
}

func (t *DataChannelTransport) SendControl(data []byte) error {
	t.mu.Lock()
	dc := t.controlDC
	t.mu.Unlock()
	if dc == nil {
		return fmt.Errorf("control channel not open")
	}
	return dc.Send(data)
}

func (t *DataChannelTransport) OnFrame(cb func(data []byte)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onFrame = cb
}

func (t *DataChannelTransport) OnControl(cb func(data []byte)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onControl = cb
}

// SetFramesChannel adopts a frames channel received from the remote peer.
func (t *DataChannelTransport) SetFramesChannel(dc *webrtc.DataChannel) {
	t.mu.Lock()
	t.framesDC = dc
	t.mu.Unlock()
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		t.mu.Lock()
		cb := t.onFrame
		t.mu.Unlock()
		if cb != nil {
			cb(msg.Data)
		}
	})
}

// SetControlChannel adopts a control channel received from the remote peer.
func (t *DataChannelTransport) SetControlChannel(dc *webrtc.DataChannel) {
	t.mu.Lock()
	t.controlDC = dc
	t.mu.Unlock()
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		t.mu.Lock()
		cb := t.onControl
		t.mu.Unlock()
		if cb != nil {
			cb(msg.Data)
		}
	})
}
