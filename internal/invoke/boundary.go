package invoke

import (
	"fmt"
	"log/slog"
)

// abortHook receives fatal-error messages a running plugin reports through
// the host runtime shim. Outside an invocation the message goes to the
// process logger; for the duration of one foreign call the boundary swaps
// the hook so the message is captured into that call's failure instead.
// The swap is only safe under the host's strictly sequential invocation
// model and must be redesigned with per-call isolation before any
// parallelism is introduced.
var abortHook = defaultAbortHook

func defaultAbortHook(msg string) {
	slog.Error("Plugin aborted outside an invocation boundary.", "message", msg)
}

// Abort reports a fatal plugin error to the current hook. It is the entry
// point the host runtime shim calls when a plugin gives up.
func Abort(msg string) {
	abortHook(msg)
}

// guard runs one foreign call inside the fault boundary. The hook is
// restored on every exit path: success, early return, or fault. A fault
// never terminates the host; it comes back as an *InvocationFailure.
func guard(f func()) (err error) {
	prev := abortHook
	abortHook = func(msg string) {
		panic(&InvocationFailure{Msg: msg})
	}
	defer func() {
		abortHook = prev
		if r := recover(); r != nil {
			if fail, ok := r.(*InvocationFailure); ok {
				err = fail
				return
			}
			err = &InvocationFailure{Msg: fmt.Sprint(r)}
		}
	}()
	f()
	return nil
}
