package logging

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/graw/pkg/domain/types"
)

type ctxRequestIDKey struct{}

// CtxRequestID returns request ID from context. If request ID is not set, return new request ID and context with it
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTenantIDKey struct{}

// WithTenant returns a context carrying the tenant ID, whose logger also
// carries it as an attribute
func WithTenant(ctx context.Context, id types.TenantID) context.Context {
	if CtxTenantID(ctx) == id {
		return ctx
	}
	ctx = context.WithValue(ctx, ctxTenantIDKey{}, id)
	return With(ctx, From(ctx).With(slog.String("tenant_id", id.String())))
}

// CtxTenantID returns the tenant ID set by WithTenant, or empty
func CtxTenantID(ctx context.Context) types.TenantID {
	if id, ok := ctx.Value(ctxTenantIDKey{}).(types.TenantID); ok {
		return id
	}
	return ""
}
