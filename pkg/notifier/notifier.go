// Package notifier is a thin wrapper around the macOS terminal-notifier
// binary: it resolves the executable once, translates options into the
// binary's "-name value" argument grammar, spawns it as a child process, and
// parses the tab-separated output of the -list verb back into records.
//
// The package performs no logging and no retries; every failure propagates
// to the caller. A reusable Notifier resolves the binary once at
// construction, while the package-level Notify, Remove and List one-shots
// resolve on every call.
package notifier

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// Notifier dispatches commands to a terminal-notifier binary resolved once
// at construction. The resolved path is immutable for the lifetime of the
// instance. Methods are independent of one another; the Notifier holds no
// state between calls and retains no reference to spawned children.
type Notifier struct {
	path string
}

// New resolves the terminal-notifier binary and returns a reusable Notifier.
// It fails with ErrUnsupportedPlatform off macOS 10.8+, with an
// InstallationError when no usable binary exists, and with a PermissionError
// when the binary is not executable and could not be repaired.
func New(opts ...NotifierOption) (*Notifier, error) {
	r := resolver{
		strategies: DefaultStrategies(),
		repair:     true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	path, err := r.resolve()
	if err != nil {
		return nil, err
	}
	return &Notifier{path: path}, nil
}

// Path returns the resolved terminal-notifier binary path.
func (n *Notifier) Path() string {
	return n.path
}

// Notify sends a user notification. The message must be non-empty; options
// are forwarded as "-name value" pairs in the order given. Wait() makes the
// call block for the child's exit, turning a non-zero status into a
// SubprocessError; without it the returned Proc is the caller's only way to
// observe the outcome.
func (n *Notifier) Notify(message string, opts ...Option) (*Proc, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}

	var req request
	for _, opt := range opts {
		opt(&req)
	}
	return n.ExecuteArgs(buildNotifyArgs(message, &req), req.wait)
}

// Remove removes previously delivered notifications with the given group ID.
// An empty group removes all of them. The call does not block.
func (n *Notifier) Remove(group string) (*Proc, error) {
	if group == "" {
		group = "ALL"
	}
	return n.ExecuteArgs([]string{"-remove", group}, false)
}

// List reports delivered notifications for the given group ID, or all of
// them when group is empty. It always blocks for the child's output and
// returns zero records when only the column header came back.
func (n *Notifier) List(group string) ([]Record, error) {
	if group == "" {
		group = "ALL"
	}
	proc, err := n.ExecuteArgs([]string{"-list", group}, true)
	if err != nil {
		return nil, err
	}
	return parseList(proc.Output()), nil
}

// ExecuteArgs spawns the resolved binary with the given argument vector,
// capturing stdout and stderr into one combined stream. When wait is true it
// blocks until the child exits and fails with a SubprocessError on a
// non-zero status. When wait is false the exit status is not yet known, so
// no error is raised for it; the handle is returned for later inspection.
func (n *Notifier) ExecuteArgs(args []string, wait bool) (*Proc, error) {
	cmd := exec.Command(n.path, args...)

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawning %s: %w", n.path, err)
	}

	proc := newProc(cmd, &buf)
	if !wait {
		return proc, nil
	}

	if err := proc.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return proc, &SubprocessError{ExitCode: exitErr.ExitCode(), Output: proc.Output()}
		}
		return proc, err
	}
	return proc, nil
}

// Notify sends a one-shot notification, resolving the binary for this call
// only. See Notifier.Notify for option semantics.
func Notify(message string, opts ...Option) (*Proc, error) {
	n, err := New()
	if err != nil {
		return nil, err
	}
	return n.Notify(message, opts...)
}

// Remove removes delivered notifications with the given group ID (all of
// them when empty), resolving the binary for this call only.
func Remove(group string) (*Proc, error) {
	n, err := New()
	if err != nil {
		return nil, err
	}
	return n.Remove(group)
}

// List reports delivered notifications for the given group ID (all of them
// when empty), resolving the binary for this call only.
func List(group string) ([]Record, error) {
	n, err := New()
	if err != nil {
		return nil, err
	}
	return n.List(group)
}
