// Package input turns decoded control messages back into real mouse events
// on the host.
package input

// Buttons as carried in MouseDown/MouseUp payloads.
const (
	ButtonLeft   = 0
	ButtonRight  = 1
	ButtonMiddle = 2
)

// Injector posts mouse events into the host system. Coordinates are display
// pixels.
type Injector interface {
	MouseMove(x, y float64) error
	MouseDown(x, y float64, button int) error
	MouseUp(x, y float64, button int) error
}
