package encoder

import "image"

// Encoder encodes a frame into bytes for the frames channel.
type Encoder interface {
	Encode(img *image.RGBA) ([]byte, error)
	SetQuality(quality int)
}
