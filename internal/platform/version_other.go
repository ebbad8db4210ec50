//go:build !darwin

package platform

// OSVersion returns "" on non-macOS platforms. The wrapper only ever gates on
// macOS versions, so other OS families have nothing meaningful to report.
func OSVersion() string {
	return ""
}
