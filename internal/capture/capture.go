package capture

import (
	"image"
	"time"
)

// Frame is one captured screen frame.
type Frame struct {
	Image     *image.RGBA
	Width     int
	Height    int
	Timestamp time.Time
}

// Capturer produces a stream of screen frames.
type Capturer interface {
	Start() error
	Stop()
	Frames() <-chan *Frame
	// Bounds returns the captured display's pixel dimensions, used to
	// denormalize injected mouse coordinates.
	Bounds() (width, height int)
}
