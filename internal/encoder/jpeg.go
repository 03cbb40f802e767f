package encoder

import (
	"bytes"
	"image"
	"image/jpeg"
	"sync"
)

// JPEGEncoder encodes frames as JPEG.
type JPEGEncoder struct {
	mu      sync.Mutex
	quality int
}

// NewJPEGEncoder creates a JPEG encoder with the given quality, clamped to
// 1-100.
func NewJPEGEncoder(quality int) *JPEGEncoder {
	return &JPEGEncoder{quality: clampQuality(quality)}
}

func (e *JPEGEncoder) Encode(img *image.RGBA) ([]byte, error) {
	e.mu.Lock()
	q := e.quality
	e.mu.Unlock()

	var buf bytes.Buffer
	buf.Grow(256 * 1024)
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SetQuality adjusts the encode quality for subsequent frames.
func (e *JPEGEncoder) SetQuality(quality int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.quality = clampQuality(quality)
}

func clampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}
