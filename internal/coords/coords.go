// Package coords converts between video-local pixel coordinates and the
// 16-bit normalized coordinate space used by the control protocol.
package coords

import (
	"math"
	"sync"
)

// Scale is the maximum normalized coordinate: the left/top edge of the video
// maps to 0 and the right/bottom edge to Scale.
const Scale = 65535

// Quantizer maps pixel positions within the displayed video rectangle onto
// the protocol's fixed 16-bit range. Size it from the on-screen video
// rectangle, not the source resolution.
type Quantizer struct {
	mu     sync.Mutex
	width  float64
	height float64
}

func NewQuantizer(width, height float64) *Quantizer {
	return &Quantizer{width: width, height: height}
}

// SetSize updates the video rectangle dimensions used for scaling. Call it
// whenever the displayed video is resized.
func (q *Quantizer) SetSize(width, height float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.width = width
	q.height = height
}

// Unsigned quantizes an absolute position. Inputs outside the video
// rectangle clamp to its edges.
func (q *Quantizer) Unsigned(x, y float64) (int32, int32) {
	q.mu.Lock()
	w, h := q.width, q.height
	q.mu.Unlock()
	return clampU(scale(x, w)), clampU(scale(y, h))
}

// Signed quantizes a position delta at the same scale as Unsigned.
func (q *Quantizer) Signed(dx, dy float64) (int32, int32) {
	q.mu.Lock()
	w, h := q.width, q.height
	q.mu.Unlock()
	return clampS(scale(dx, w)), clampS(scale(dy, h))
}

// Denormalize inverts Unsigned against a target surface, mapping a
// normalized coordinate onto [0, width-1] x [0, height-1] pixel space. The
// host uses it to place injected mouse events on the captured display.
func Denormalize(nx, ny int32, width, height float64) (float64, float64) {
	return unscale(nx, width), unscale(ny, height)
}

func scale(v, extent float64) int32 {
	if extent <= 1 {
		return 0
	}
	return int32(math.Round(v / (extent - 1) * Scale))
}

func unscale(n int32, extent float64) float64 {
	if extent <= 1 {
		return 0
	}
	v := float64(n) / Scale * (extent - 1)
	if v < 0 {
		return 0
	}
	if v > extent-1 {
		return extent - 1
	}
	return v
}

func clampU(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > Scale {
		return Scale
	}
	return v
}

func clampS(v int32) int32 {
	if v < -Scale {
		return -Scale
	}
	if v > Scale {
		return Scale
	}
	return v
}
