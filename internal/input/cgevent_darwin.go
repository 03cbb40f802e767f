//go:build darwin

package input

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>

void moveMouse(double x, double y) {
    CGEventRef event = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved,
        CGPointMake(x, y), kCGMouseButtonLeft);
    CGEventPost(kCGHIDEventTap, event);
    CFRelease(event);
}

void mouseDown(double x, double y, int button) {
    CGEventType type;
    CGMouseButton btn;
    switch (button) {
        case 1:  type = kCGEventRightMouseDown;  btn = kCGMouseButtonRight;  break;
        case 2:  type = kCGEventOtherMouseDown;  btn = kCGMouseButtonCenter; break;
        default: type = kCGEventLeftMouseDown;   btn = kCGMouseButtonLeft;   break;
    }
    CGEventRef event = CGEventCreateMouseEvent(NULL, type, CGPointMake(x, y), btn);
    CGEventPost(kCGHIDEventTap, event);
    CFRelease(event);
}

void mouseUp(double x, double y, int button) {
    CGEventType type;
    CGMouseButton btn;
    switch (button) {
        case 1:  type = kCGEventRightMouseUp;  btn = kCGMouseButtonRight;  break;
        case 2:  type = kCGEventOtherMouseUp;  btn = kCGMouseButtonCenter; break;
        default: type = kCGEventLeftMouseUp;   btn = kCGMouseButtonLeft;   break;
    }
    CGEventRef event = CGEventCreateMouseEvent(NULL, type, CGPointMake(x, y), btn);
    CGEventPost(kCGHIDEventTap, event);
    CFRelease(event);
}
*/
import "C"

// cgInjector posts mouse events through CoreGraphics CGEvent.
type cgInjector struct{}

// NewSystemInjector returns the CGEvent-backed mouse injector.
func NewSystemInjector() (Injector, error) {
	return cgInjector{}, nil
}

func (cgInjector) MouseMove(x, y float64) error {
	C.moveMouse(C.double(x), C.double(y))
	return nil
}

func (cgInjector) MouseDown(x, y float64, button int) error {
	C.mouseDown(C.double(x), C.double(y), C.int(button))
	return nil
}

func (cgInjector) MouseUp(x, y float64, button int) error {
	C.mouseUp(C.double(x), C.double(y), C.int(button))
	return nil
}
