package notifier

import (
	"bytes"
	"context"
	"os/exec"
	"sync"
)

// Proc is a handle to a spawned terminal-notifier child process. It is
// exclusively owned by the caller once returned; the Notifier keeps no
// reference, so an unwaited child is only ever reaped through this handle.
type Proc struct {
	cmd *exec.Cmd
	buf *bytes.Buffer

	reapOnce sync.Once
	done     chan struct{}
	waitErr  error
}

func newProc(cmd *exec.Cmd, buf *bytes.Buffer) *Proc {
	return &Proc{
		cmd:  cmd,
		buf:  buf,
		done: make(chan struct{}),
	}
}

// reap starts the single background wait that observes the child's exit.
// All blocking accessors funnel through it so Wait stays idempotent.
func (p *Proc) reap() {
	p.reapOnce.Do(func() {
		go func() {
			p.waitErr = p.cmd.Wait()
			close(p.done)
		}()
	})
}

// Wait blocks until the child exits and returns the wait error, if any.
// A non-zero exit status surfaces as an *exec.ExitError. Wait may be called
// any number of times; later calls return the same result.
func (p *Proc) Wait() error {
	p.reap()
	<-p.done
	return p.waitErr
}

// WaitContext blocks like Wait but gives up when ctx is done, returning
// ctx.Err(). The child keeps running in that case; callers wanting to stop
// it must Kill it themselves.
func (p *Proc) WaitContext(ctx context.Context) error {
	p.reap()
	select {
	case <-p.done:
		return p.waitErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Kill terminates the child process immediately.
func (p *Proc) Kill() error {
	return p.cmd.Process.Kill()
}

// Exited reports whether the child's exit has been observed yet.
func (p *Proc) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// ExitCode returns the child's exit status, or -1 while the exit has not
// been observed.
func (p *Proc) ExitCode() int {
	if !p.Exited() {
		return -1
	}
	return p.cmd.ProcessState.ExitCode()
}

// Output returns the combined stdout/stderr stream captured from the child.
// It is complete only after Wait (or WaitContext without a deadline hit) has
// returned.
func (p *Proc) Output() []byte {
	return p.buf.Bytes()
}

// Pid returns the OS process ID of the spawned child.
func (p *Proc) Pid() int {
	return p.cmd.Process.Pid
}
