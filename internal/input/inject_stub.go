//go:build !darwin

package input

import "fmt"

// NewSystemInjector returns the platform mouse injector. Only macOS is
// supported.
func NewSystemInjector() (Injector, error) {
	return nil, fmt.Errorf("mouse injection not supported on this platform")
}
