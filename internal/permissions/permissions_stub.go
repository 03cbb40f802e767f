//go:build !darwin

package permissions

// Non-darwin platforms have no permission preflight; the capture and
// injection constructors fail instead.

func HasAccessibility() bool     { return true }
func RequestAccessibility() bool { return true }

func HasScreenRecording() bool     { return true }
func RequestScreenRecording() bool { return true }
