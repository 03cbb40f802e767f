package display

import "image"

// Display renders remote frames and feeds local touch input to listeners.
type Display interface {
	Run() error
}

// FrameSink receives decoded frames from the network goroutine.
type FrameSink interface {
	SetFrame(img *image.RGBA)
}
