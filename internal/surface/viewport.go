// Package surface tracks the remote video's readiness and on-screen
// geometry for the controller, and provides the synthetic hover dispatch
// targets the touch emulator needs.
package surface

import (
	"sync"

	"github.com/junsooki/AirTouch/internal/touch"
)

// Viewport is the controller-side video surface: ready once the first frame
// has been decoded, bounded by the letterboxed video rectangle inside the
// window. Implements touch.VideoSurface.
type Viewport struct {
	video  *Node
	parent *Node

	mu     sync.Mutex
	ready  bool
	bounds touch.Rect
}

func NewViewport() *Viewport {
	return &Viewport{
		video:  NewNode("video"),
		parent: NewNode("container"),
	}
}

// Ready reports whether at least one frame has been presented.
func (v *Viewport) Ready() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ready
}

// MarkReady flags the surface as presenting video.
func (v *Viewport) MarkReady() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ready = true
}

// Element returns the video node, the only valid touch-start target.
func (v *Viewport) Element() any { return v.video }

// Parent returns the container node that synthetic hover events land on.
func (v *Viewport) Parent() any { return v.parent }

// VideoNode and ParentNode expose the typed nodes for listener registration.
func (v *Viewport) VideoNode() *Node  { return v.video }
func (v *Viewport) ParentNode() *Node { return v.parent }

// SetBounds caches the video rectangle in window coordinates.
func (v *Viewport) SetBounds(r touch.Rect) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bounds = r
}

// Bounds returns the cached video rectangle.
func (v *Viewport) Bounds() touch.Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bounds
}

// HitTarget resolves a window position to the node under it, the way DOM
// hit-testing picks an event target: the video node inside the bounds, the
// container elsewhere.
func (v *Viewport) HitTarget(x, y float64) *Node {
	v.mu.Lock()
	r := v.bounds
	v.mu.Unlock()
	if x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height {
		return v.video
	}
	return v.parent
}
