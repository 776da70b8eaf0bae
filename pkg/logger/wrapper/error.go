package wrap

import (
	"context"
	"errors"
)

// logCtxError carries the log context of the place an error was first
// wrapped, so the caller that finally logs it still reports that action.
type logCtxError struct {
	err    error
	logCtx LogCtx
}

func (e *logCtxError) Error() string { return e.err.Error() }

func (e *logCtxError) Unwrap() error { return e.err }

// Error attaches the log context of ctx to err. When err already carries a
// log context, its fields are kept and ctx only fills the empty ones.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	lc := fromContext(ctx)

	var inner *logCtxError
	if errors.As(err, &inner) {
		lc = merge(inner.logCtx, lc)
	}

	return &logCtxError{err: err, logCtx: lc}
}

// ErrorCtx returns ctx with the log context carried by err laid over it.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *logCtxError
	if !errors.As(err, &e) {
		return ctx
	}
	return context.WithValue(ctx, LogCtxKey, merge(e.logCtx, fromContext(ctx)))
}

func fromContext(ctx context.Context) LogCtx {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	return lc
}

// merge returns primary with its empty fields taken from fallback.
func merge(primary, fallback LogCtx) LogCtx {
	if primary.Action == "" {
		primary.Action = fallback.Action
	}
	if primary.UserID == "" {
		primary.UserID = fallback.UserID
	}
	if primary.RequestID == "" {
		primary.RequestID = fallback.RequestID
	}
	if primary.View == "" {
		primary.View = fallback.View
	}
	return primary
}
