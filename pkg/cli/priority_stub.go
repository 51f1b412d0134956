//go:build !linux

package cli

// setLowPriority is a no-op off Linux; the target platform is the XR
// device shell, everything else is development.
func setLowPriority() {}
