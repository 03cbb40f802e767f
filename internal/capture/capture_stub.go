//go:build !darwin

package capture

import "fmt"

// New returns the platform screen capturer. Only macOS is supported.
func New(displayIndex, fps int) (Capturer, error) {
	return nil, fmt.Errorf("screen capture not supported on this platform")
}
