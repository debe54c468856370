// Package logger keeps a zap logger in the request or command context.
package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ToContext attaches base to ctx. Code below reads it back with ctxzap.
func ToContext(ctx context.Context, base *zap.Logger) context.Context {
	return ctxzap.ToContext(ctx, base)
}

// AddFields returns a context whose logger carries the extra fields.
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	return ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(fields...))
}

// WithAction tags the context logger with the name of the running flow.
func WithAction(ctx context.Context, action string) context.Context {
	return AddFields(ctx, zap.String("action", action))
}
