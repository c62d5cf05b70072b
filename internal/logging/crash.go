package logging

import (
	"context"
	"errors"
	"runtime"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack trace and system info, then
// re-panics. Defer it at the top of long running commands.
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	logPanic(ctx, r)
	panic(r)
}

func logPanic(ctx context.Context, r any) {
	log := FromContext(ctx)
	event := log.Error().
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack())

	if err, ok := r.(error); ok {
		event = event.Err(err)
		if unwrapped := errors.Unwrap(err); unwrapped != nil {
			event = event.Str("cause", unwrapped.Error())
		}
	} else {
		event = event.Interface("panic", r)
	}
	event.Msg("PANIC")
}
