//go:build darwin

package permissions

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework CoreGraphics
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <CoreGraphics/CoreGraphics.h>

static int axTrusted(int prompt) {
    CFMutableDictionaryRef opts = CFDictionaryCreateMutable(NULL, 0, NULL, NULL);
    CFDictionarySetValue(opts, kAXTrustedCheckOptionPrompt,
        prompt ? kCFBooleanTrue : kCFBooleanFalse);
    Boolean trusted = AXIsProcessTrustedWithOptions(opts);
    CFRelease(opts);
    return trusted ? 1 : 0;
}

static int screenAccess(int request) {
    if (request) {
        return CGRequestScreenCaptureAccess() ? 1 : 0;
    }
    return CGPreflightScreenCaptureAccess() ? 1 : 0;
}
*/
import "C"

// HasAccessibility reports whether the process may inject input events.
func HasAccessibility() bool {
	return C.axTrusted(0) != 0
}

// RequestAccessibility prompts for Accessibility permission. Returns true if
// already granted; otherwise macOS opens System Settings.
func RequestAccessibility() bool {
	return C.axTrusted(1) != 0
}

// HasScreenRecording reports whether the process may capture the screen.
func HasScreenRecording() bool {
	return C.screenAccess(0) != 0
}

// RequestScreenRecording prompts for Screen Recording permission.
func RequestScreenRecording() bool {
	return C.screenAccess(1) != 0
}
