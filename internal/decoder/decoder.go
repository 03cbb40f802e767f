package decoder

import "image"

// Decoder decodes frame bytes into an image.
type Decoder interface {
	Decode(data []byte) (*image.RGBA, error)
}
