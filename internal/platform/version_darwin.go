//go:build darwin

package platform

import "golang.org/x/sys/unix"

// OSVersion returns the macOS product version (e.g. "14.5") straight from the
// kernel, avoiding a subprocess round-trip through sw_vers.
func OSVersion() string {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return ""
	}
	return v
}
