package wrap

import "context"

type (
	// LogCtx is the request-scoped part of every log record.
	LogCtx struct {
		Action    string
		UserID    string
		RequestID string
		View      string
	}

	logCtxKeyStruct struct{}
)

var LogCtxKey = &logCtxKeyStruct{}

// WithLogCtx returns ctx with newLc; fields left empty in newLc keep the
// values already in ctx.
func WithLogCtx(ctx context.Context, newLc LogCtx) context.Context {
	return context.WithValue(ctx, LogCtxKey, merge(newLc, fromContext(ctx)))
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return update(ctx, func(lc *LogCtx) { lc.UserID = userID })
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return update(ctx, func(lc *LogCtx) { lc.RequestID = requestID })
}

// WithView sets the page or view-controller a record belongs to.
func WithView(ctx context.Context, view string) context.Context {
	return update(ctx, func(lc *LogCtx) { lc.View = view })
}

func WithAction(ctx context.Context, action string) context.Context {
	return update(ctx, func(lc *LogCtx) { lc.Action = action })
}

func update(ctx context.Context, set func(*LogCtx)) context.Context {
	lc := fromContext(ctx)
	set(&lc)
	return context.WithValue(ctx, LogCtxKey, lc)
}
