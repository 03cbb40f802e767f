package display

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/junsooki/AirTouch/internal/coords"
	"github.com/junsooki/AirTouch/internal/surface"
	"github.com/junsooki/AirTouch/internal/touch"
)

// EbitenDisplay renders the remote stream in an Ebitengine window and feeds
// touch input through a tracker. The letterboxed video rectangle is pushed
// into the viewport, the quantizer and the bounds callback whenever it
// changes.
type EbitenDisplay struct {
	viewport  *surface.Viewport
	quantizer *coords.Quantizer
	tracker   *tracker

	// onBounds propagates video rectangle changes (the emulator's
	// SetVideoBounds). Set before Run.
	onBounds func(touch.Rect)

	mu          sync.Mutex
	frame       *image.RGBA
	ebitenImage *ebiten.Image
	winW, winH  int
	lastBounds  touch.Rect
	showPointer bool
	hovering    bool
	pointerX    float64
	pointerY    float64

	touchIDs []ebiten.TouchID
	snapshot []touch.Touch
}

// NewEbitenDisplay creates the controller display. When showPointer is set,
// a pointer marker is drawn while hover is active; the marker is driven
// entirely by the synthetic mouseenter/mouseleave events on the container
// node, the same signal a browser UI would key off.
func NewEbitenDisplay(viewport *surface.Viewport, quantizer *coords.Quantizer, showPointer bool) *EbitenDisplay {
	d := &EbitenDisplay{
		viewport:    viewport,
		quantizer:   quantizer,
		showPointer: showPointer,
		winW:        1280,
		winH:        720,
	}
	d.tracker = newTracker(func(x, y float64) any {
		return viewport.HitTarget(x, y)
	})

	parent := viewport.ParentNode()
	parent.AddEventListener(touch.HoverEnter, func(ev touch.HoverEvent) {
		d.mu.Lock()
		d.hovering = true
		d.pointerX = ev.ClientX
		d.pointerY = ev.ClientY
		d.mu.Unlock()
	})
	parent.AddEventListener(touch.HoverLeave, func(ev touch.HoverEvent) {
		d.mu.Lock()
		d.hovering = false
		d.mu.Unlock()
	})

	return d
}

// Source returns the touch source the emulator attaches to.
func (d *EbitenDisplay) Source() touch.Source {
	return d.tracker
}

// OnBoundsChange registers the callback invoked with the new video rectangle
// whenever layout changes.
func (d *EbitenDisplay) OnBoundsChange(fn func(touch.Rect)) {
	d.onBounds = fn
}

// SetFrame updates the displayed frame (called from the network goroutine).
// The first frame marks the viewport ready.
func (d *EbitenDisplay) SetFrame(img *image.RGBA) {
	d.mu.Lock()
	d.frame = img
	d.mu.Unlock()
	if img != nil {
		d.viewport.MarkReady()
	}
}

// Run starts the Ebitengine game loop. Must be called from the main
// goroutine.
func (d *EbitenDisplay) Run() error {
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("AirTouch Controller")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(d)
}

// --- ebiten.Game interface ---

func (d *EbitenDisplay) Update() error {
	d.updateLayout()
	d.captureTouches()
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	frame := d.frame
	hovering := d.hovering && d.showPointer
	px, py := d.pointerX, d.pointerY
	d.mu.Unlock()

	if frame == nil {
		return
	}

	if d.ebitenImage == nil ||
		d.ebitenImage.Bounds().Dx() != frame.Bounds().Dx() ||
		d.ebitenImage.Bounds().Dy() != frame.Bounds().Dy() {
		d.ebitenImage = ebiten.NewImage(frame.Bounds().Dx(), frame.Bounds().Dy())
	}
	d.ebitenImage.WritePixels(frame.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := float64(frame.Bounds().Dx()), float64(frame.Bounds().Dy())
	scale, offsetX, offsetY := aspectFitTransform(float64(sw), float64(sh), fw, fh)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(d.ebitenImage, op)

	if hovering {
		vector.StrokeCircle(screen, float32(px), float32(py), 12, 2,
			color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}, true)
	}
}

func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.mu.Lock()
	d.winW = outsideWidth
	d.winH = outsideHeight
	d.mu.Unlock()
	return outsideWidth, outsideHeight
}

// updateLayout recomputes the letterboxed video rectangle and propagates it
// when it moved or resized.
func (d *EbitenDisplay) updateLayout() {
	d.mu.Lock()
	frame := d.frame
	winW, winH := d.winW, d.winH
	d.mu.Unlock()

	if frame == nil {
		return
	}

	fw := float64(frame.Bounds().Dx())
	fh := float64(frame.Bounds().Dy())
	scale, offsetX, offsetY := aspectFitTransform(float64(winW), float64(winH), fw, fh)
	bounds := touch.Rect{
		Left:   offsetX,
		Top:    offsetY,
		Width:  fw * scale,
		Height: fh * scale,
	}

	d.mu.Lock()
	changed := bounds != d.lastBounds
	d.lastBounds = bounds
	d.mu.Unlock()

	if !changed {
		return
	}
	d.viewport.SetBounds(bounds)
	d.quantizer.SetSize(bounds.Width, bounds.Height)
	if d.onBounds != nil {
		d.onBounds(bounds)
	}
}

// captureTouches snapshots the current contacts and advances the tracker.
func (d *EbitenDisplay) captureTouches() {
	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	d.snapshot = d.snapshot[:0]
	for _, id := range d.touchIDs {
		x, y := ebiten.TouchPosition(id)
		d.snapshot = append(d.snapshot, touch.Touch{
			ID:      int64(id),
			ClientX: float64(x),
			ClientY: float64(y),
		})
	}

	if len(d.snapshot) > 0 {
		d.mu.Lock()
		d.pointerX = d.snapshot[0].ClientX
		d.pointerY = d.snapshot[0].ClientY
		d.mu.Unlock()
	}

	d.tracker.advance(d.snapshot)
}

// aspectFitTransform returns scale and offsets to fit the frame into the
// view with letterboxing.
func aspectFitTransform(viewW, viewH, frameW, frameH float64) (scale, offsetX, offsetY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offsetX = (viewW - frameW*scale) / 2
	offsetY = (viewH - frameH*scale) / 2
	return
}
