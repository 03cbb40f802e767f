package transport

// Data channel labels negotiated between host and controller.
const (
	LabelFrames  = "frames"
	LabelControl = "control"
)

// FrameSender sends encoded video frames.
type FrameSender interface {
	SendFrame(data []byte) error
}

// FrameReceiver receives encoded video frames.
type FrameReceiver interface {
	OnFrame(callback func(data []byte))
}

// ControlSender sends encoded control messages (the mouse protocol).
type ControlSender interface {
	SendControl(data []byte) error
}

// ControlReceiver receives encoded control messages.
type ControlReceiver interface {
	OnControl(callback func(data []byte))
}
