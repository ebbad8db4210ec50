package notifier

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/777genius/gopync/internal/platform"
)

const (
	// BundledVersion is the terminal-notifier release expected under the
	// vendored app bundle path.
	BundledVersion = "1.6.1"

	binaryName  = "terminal-notifier"
	installPath = "/usr/local/bin/terminal-notifier"

	minMajor = 10
	minMinor = 8
)

// Strategy locates a candidate terminal-notifier binary. Locate returns the
// candidate path and whether this strategy produced one; it performs
// read-only lookups and must not touch the filesystem beyond stat calls.
type Strategy interface {
	Locate() (path string, ok bool)
}

// SearchPath finds the binary via the environment's command search path,
// following symlinks to a canonical location.
type SearchPath struct{}

func (SearchPath) Locate() (string, bool) {
	p, err := exec.LookPath(binaryName)
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return "", false
	}
	if !platform.FileExists(resolved) {
		return "", false
	}
	return resolved, true
}

// WellKnownPath checks a fixed installation path and uses it only if present.
type WellKnownPath struct {
	Path string
}

func (s WellKnownPath) Locate() (string, bool) {
	if !platform.FileExists(s.Path) {
		return "", false
	}
	return s.Path, true
}

// BundledPath points at the terminal-notifier copy shipped alongside the
// running executable. It always yields a path; whether that path actually
// exists is decided by the post-resolution checks.
type BundledPath struct{}

func (BundledPath) Locate() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	return filepath.Join(filepath.Dir(exe),
		"vendor", "terminal-notifier-"+BundledVersion,
		"terminal-notifier.app", "Contents", "MacOS", binaryName), true
}

// DefaultStrategies returns the standard resolution order: command search
// path, then /usr/local/bin, then the bundled copy. First match wins.
func DefaultStrategies() []Strategy {
	return []Strategy{
		SearchPath{},
		WellKnownPath{Path: installPath},
		BundledPath{},
	}
}

// Available reports whether the current platform can display notifications
// through terminal-notifier: macOS 10.8 or higher.
func Available() bool {
	return platform.IsMacOS() && platform.VersionAtLeast(platform.OSVersion(), minMajor, minMinor)
}

// availableFn is swapped out by tests that exercise resolution on other
// platforms.
var availableFn = Available

// resolver holds the construction-time settings for a Notifier.
type resolver struct {
	strategies []Strategy
	repair     bool
}

// NotifierOption customizes Notifier construction.
type NotifierOption func(*resolver)

// WithStrategies replaces the default resolution order with an explicit one,
// letting tests and embedders substitute their own lookups.
func WithStrategies(strategies ...Strategy) NotifierOption {
	return func(r *resolver) { r.strategies = strategies }
}

// WithoutRepair disables the chmod repair attempt on a non-executable binary.
// Resolution then fails with a PermissionError instead of mutating permission
// bits during what is otherwise a read-only lookup.
func WithoutRepair() NotifierOption {
	return func(r *resolver) { r.repair = false }
}

// resolve runs the strategy chain once and applies the post-resolution
// checks: platform support, existence, executability.
func (r *resolver) resolve() (string, error) {
	var path string
	for _, s := range r.strategies {
		if p, ok := s.Locate(); ok {
			path = p
			break
		}
	}

	if !availableFn() {
		return "", fmt.Errorf("%w (running on %s %s)", ErrUnsupportedPlatform, runtime.GOOS, platform.OSVersion())
	}
	if path == "" || !platform.FileExists(path) {
		return "", &InstallationError{Path: path}
	}
	if !platform.IsExecutable(path) {
		if r.repair {
			_ = os.Chmod(path, 0755)
		}
		if !platform.IsExecutable(path) {
			return "", &PermissionError{Path: path}
		}
	}
	return path, nil
}
