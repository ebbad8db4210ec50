package notifier

import (
	"fmt"
	"strconv"
)

// pair is one "-name value" argument pair forwarded to terminal-notifier.
type pair struct {
	name  string
	value string
}

// request accumulates the option pairs and blocking flag for one Notify call.
// Pairs keep caller order: functional options are applied in the order given,
// which makes the emitted argument vector deterministic for a given call site.
type request struct {
	pairs []pair
	wait  bool
}

// Option customizes a single Notify call.
type Option func(*request)

// Title sets the notification title.
func Title(title string) Option { return Opt("title", title) }

// Subtitle sets the notification subtitle.
func Subtitle(subtitle string) Option { return Opt("subtitle", subtitle) }

// Group tags the notification with a group ID so it can later be removed or
// listed via that ID.
func Group(group string) Option { return Opt("group", group) }

// Sound plays the named system sound when the notification is delivered.
func Sound(sound string) Option { return Opt("sound", sound) }

// Activate activates the app with the given bundle ID when the notification
// is clicked.
func Activate(bundleID string) Option { return Opt("activate", bundleID) }

// Open opens the given URL when the notification is clicked.
func Open(url string) Option { return Opt("open", url) }

// Execute runs the given shell command when the notification is clicked.
func Execute(command string) Option { return Opt("execute", command) }

// Wait makes the Notify call block until terminal-notifier exits, surfacing
// a non-zero exit status as a SubprocessError. It never appears in the
// argument vector.
func Wait() Option {
	return func(r *request) { r.wait = true }
}

// Opt forwards an arbitrary "-name value" pair to terminal-notifier, for
// flags this package has no named helper for. The value is coerced to text
// with fmt.Sprint. The name "wait" is special-cased to toggle blocking
// behavior instead of being forwarded, matching Wait.
func Opt(name string, value any) Option {
	return func(r *request) {
		if name == "wait" {
			if b, err := strconv.ParseBool(fmt.Sprint(value)); err == nil {
				r.wait = b
			}
			return
		}
		r.pairs = append(r.pairs, pair{name: name, value: fmt.Sprint(value)})
	}
}

// RenderArgs returns the argument vector a Notify call with the given
// message and options would emit, without spawning anything. It lets callers
// inspect the wire-level invocation.
func RenderArgs(message string, opts ...Option) ([]string, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	var req request
	for _, opt := range opts {
		opt(&req)
	}
	return buildNotifyArgs(message, &req), nil
}

// buildNotifyArgs produces the argument vector for a notify invocation:
// "-message <message>" first, then one "-name value" pair per option in the
// order the caller supplied them.
func buildNotifyArgs(message string, req *request) []string {
	args := make([]string, 0, 2+2*len(req.pairs))
	args = append(args, "-message", message)
	for _, p := range req.pairs {
		args = append(args, "-"+p.name, p.value)
	}
	return args
}
