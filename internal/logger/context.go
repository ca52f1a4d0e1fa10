package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const opIDKey ctxKey = "op_id"

// WithOpID tags the context with a fresh operation id. Each store mutation
// gets its own id so a remote round-trip can be traced through the logs.
func WithOpID(ctx context.Context) context.Context {
	return context.WithValue(ctx, opIDKey, uuid.NewString())
}

// OpIDFrom returns the operation id stored in the context, if any.
func OpIDFrom(ctx context.Context) string {
	if v := ctx.Value(opIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns a logger with op_id automatically added.
func FromCtx(ctx context.Context) *zap.Logger {
	opID := OpIDFrom(ctx)
	if opID == "" {
		return L()
	}
	return L().With(zap.String("op_id", opID))
}
