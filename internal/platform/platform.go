// Package platform answers the small OS-level questions the notifier wrapper
// needs: which OS family we are on, which macOS release is running, and
// whether a file exists and can be executed.
package platform

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// IsMacOS returns true when running on macOS
func IsMacOS() bool {
	return runtime.GOOS == "darwin"
}

// IsLinux returns true when running on Linux
func IsLinux() bool {
	return runtime.GOOS == "linux"
}

// IsWindows returns true when running on Windows
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// FileExists checks if a file exists at the given path
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsExecutable reports whether path is a regular file with at least one
// execute permission bit set.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}

// VersionAtLeast reports whether a dotted OS version string such as "10.14"
// or "11.0" is at or above the given major/minor threshold. Any major version
// greater than the threshold major satisfies it regardless of minor.
// Unparseable versions report false.
func VersionAtLeast(version string, major, minor int) bool {
	parts := strings.SplitN(strings.TrimSpace(version), ".", 3)
	if len(parts) == 0 || parts[0] == "" {
		return false
	}

	maj, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	if maj != major {
		return maj > major
	}

	// Same major: a missing minor component counts as 0
	mnr := 0
	if len(parts) > 1 {
		mnr, err = strconv.Atoi(parts[1])
		if err != nil {
			return false
		}
	}
	return mnr >= minor
}
