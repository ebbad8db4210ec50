package notifier

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScriptNotifier builds a Notifier whose "terminal-notifier" is a shell
// script, so dispatch behavior is testable without the real binary.
func newScriptNotifier(t *testing.T, script string) *Notifier {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not runnable on Windows")
	}
	stubAvailable(t, true)

	path := filepath.Join(t.TempDir(), "terminal-notifier")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))

	n, err := New(WithStrategies(&fakeStrategy{path: path, ok: true}))
	require.NoError(t, err)
	return n
}

// echoArgs prints each received argument on its own line.
const echoArgs = "#!/bin/sh\nprintf '%s\\n' \"$@\"\n"

func outputLines(p *Proc) []string {
	out := strings.TrimRight(string(p.Output()), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestNotifyEmptyMessage(t *testing.T) {
	n := newScriptNotifier(t, echoArgs)

	_, err := n.Notify("")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestNotifyForwardsArgv(t *testing.T) {
	n := newScriptNotifier(t, echoArgs)

	proc, err := n.Notify("Hello World", Title("gopync"), Sound("Ping"), Wait())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"-message", "Hello World",
		"-title", "gopync",
		"-sound", "Ping",
	}, outputLines(proc))
	assert.Equal(t, 0, proc.ExitCode())
}

func TestRemoveDefaultsToAll(t *testing.T) {
	n := newScriptNotifier(t, echoArgs)

	proc, err := n.Remove("")
	require.NoError(t, err)
	require.NoError(t, proc.Wait())

	assert.Equal(t, []string{"-remove", "ALL"}, outputLines(proc))
}

func TestRemoveSpecificGroup(t *testing.T) {
	n := newScriptNotifier(t, echoArgs)

	proc, err := n.Remove("g1")
	require.NoError(t, err)
	require.NoError(t, proc.Wait())

	assert.Equal(t, []string{"-remove", "g1"}, outputLines(proc))
}

func TestListParsesOutput(t *testing.T) {
	script := "#!/bin/sh\n" +
		"printf 'GroupID\\tTitle\\tSubtitle\\tMessage\\tDelivered At\\n'\n" +
		"printf 'g1\\tTitle1\\t\\tMsg1\\t2024-01-01T00:00:00Z\\n'\n"
	n := newScriptNotifier(t, script)

	records, err := n.List("")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "g1", records[0].Group)
	assert.Equal(t, "Msg1", records[0].Message)
	assert.True(t, records[0].DeliveredAt.Parsed)
}

func TestListHeaderOnly(t *testing.T) {
	script := "#!/bin/sh\n" +
		"printf 'GroupID\\tTitle\\tSubtitle\\tMessage\\tDelivered At\\n'\n"
	n := newScriptNotifier(t, script)

	records, err := n.List("ALL")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBlockingNonZeroExit(t *testing.T) {
	n := newScriptNotifier(t, "#!/bin/sh\necho boom\nexit 3\n")

	_, err := n.Notify("Hello", Wait())

	var subErr *SubprocessError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, 3, subErr.ExitCode)
	assert.Contains(t, string(subErr.Output), "boom")
}

func TestNonBlockingNonZeroExit(t *testing.T) {
	n := newScriptNotifier(t, "#!/bin/sh\nexit 3\n")

	proc, err := n.Notify("Hello")
	require.NoError(t, err, "non-blocking dispatch must not surface the eventual exit status")
	require.NotNil(t, proc)

	// Before the exit is observed, the status is unknown
	if !proc.Exited() {
		assert.Equal(t, -1, proc.ExitCode())
	}

	err = proc.Wait()
	require.Error(t, err)
	assert.Equal(t, 3, proc.ExitCode())
	assert.True(t, proc.Exited())
}

func TestWaitIsIdempotent(t *testing.T) {
	n := newScriptNotifier(t, "#!/bin/sh\nexit 0\n")

	proc, err := n.Notify("Hello")
	require.NoError(t, err)

	require.NoError(t, proc.Wait())
	require.NoError(t, proc.Wait())
	assert.Equal(t, 0, proc.ExitCode())
}

func TestWaitContextDeadline(t *testing.T) {
	n := newScriptNotifier(t, "#!/bin/sh\nsleep 10\n")

	proc, err := n.Notify("Hello")
	require.NoError(t, err)
	defer func() {
		_ = proc.Kill()
		_ = proc.Wait()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = proc.WaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, proc.Exited())
}

func TestExecuteArgsCapturesStderr(t *testing.T) {
	n := newScriptNotifier(t, "#!/bin/sh\necho out\necho err >&2\n")

	proc, err := n.ExecuteArgs([]string{"-list", "ALL"}, true)
	require.NoError(t, err)

	out := string(proc.Output())
	assert.Contains(t, out, "out")
	assert.Contains(t, out, "err")
}

func TestPathIsStable(t *testing.T) {
	n := newScriptNotifier(t, echoArgs)

	first := n.Path()
	_, _ = n.Notify("Hello", Wait())
	assert.Equal(t, first, n.Path())
}
