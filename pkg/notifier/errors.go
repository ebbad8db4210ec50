package notifier

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned when the wrapper is constructed on
// anything other than macOS 10.8 or newer.
var ErrUnsupportedPlatform = errors.New("gopync is only supported on macOS 10.8 or higher")

// ErrEmptyMessage is returned by Notify when no message text is given.
var ErrEmptyMessage = errors.New("notification message must not be empty")

// InstallationError signals a broken install: the resolved binary path does
// not exist on disk.
type InstallationError struct {
	Path string
}

func (e *InstallationError) Error() string {
	if e.Path == "" {
		return "terminal-notifier was not found: no resolution strategy produced a path"
	}
	return fmt.Sprintf("terminal-notifier was not properly installed: %s does not exist", e.Path)
}

// PermissionError signals that the resolved binary is not executable and
// could not be repaired.
type PermissionError struct {
	Path string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("no privileges to execute %q", e.Path)
}

// SubprocessError reports a terminal-notifier invocation that exited with a
// non-zero status after a blocking wait. Output holds the combined
// stdout/stderr stream captured from the child.
type SubprocessError struct {
	ExitCode int
	Output   []byte
}

func (e *SubprocessError) Error() string {
	out := string(e.Output)
	if out == "" {
		return fmt.Sprintf("terminal-notifier exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("terminal-notifier exited with status %d: %s", e.ExitCode, out)
}
