package reqctx

import (
	"context"
	"time"
)

type ctxKey int

const keyRequestMeta ctxKey = iota

// RequestMeta holds per-request metadata set by HTTP middleware.
type RequestMeta struct {
	RequestID   string
	ClientIP    string
	UserAgent   string
	RequestedAt time.Time
}

func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, keyRequestMeta, meta)
}

// RequestMetaFromContext returns nil, false if no metadata was attached.
func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	meta, ok := ctx.Value(keyRequestMeta).(*RequestMeta)
	return meta, ok && meta != nil
}

// RequestIDFromContext returns "" outside an HTTP request.
func RequestIDFromContext(ctx context.Context) string {
	if meta, ok := RequestMetaFromContext(ctx); ok {
		return meta.RequestID
	}
	return ""
}
