// Package ctxutil provides helpers for request-scoped values carried on
// context.Context: trace ids, the authenticated user and the bearer token.
//
// Values set on a context that embeds a *gin.Context are mirrored into the
// gin context, so handlers of the development API and plain client code share
// the same accessors:
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	ctx = ctxutil.SetUserID(ctx, 42)
//	uid := ctxutil.GetUserID(ctx)
package ctxutil
