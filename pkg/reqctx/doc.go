// Package reqctx carries request-scoped metadata through context.Context.
//
// HTTP middleware stores a RequestMeta once per request; handlers and the
// services below them read it back to correlate log lines:
//
//	slog.ErrorContext(ctx, "report request failed",
//	    "request_id", reqctx.RequestIDFromContext(ctx), "err", err)
package reqctx
