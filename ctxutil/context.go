package ctxutil

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const (
	ginContextKey contextKey = "gin_context"

	// TraceIDKey is the key of the trace id, also used as the log field name.
	TraceIDKey = "trace_id"

	userIDKey      = "user_id"
	tokenKey       = "token"
	userRoleKey    = "user_role"
	userIsAdminKey = "user_is_admin"
)

// WithGinContext returns a context.Context that embeds the *gin.Context.
func WithGinContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, ginContextKey, c)
}

// GetGinContext extracts *gin.Context from context.Context if it exists.
func GetGinContext(ctx context.Context) (*gin.Context, bool) {
	if ctx == nil {
		return nil, false
	}
	if c, ok := ctx.Value(ginContextKey).(*gin.Context); ok {
		return c, ok
	}
	return nil, false
}

// GetValue retrieves a value from the context.
func GetValue(ctx context.Context, key string) any {
	if ctx == nil {
		return nil
	}
	if c, ok := GetGinContext(ctx); ok {
		if val, exists := c.Get(key); exists {
			return val
		}
	}
	return ctx.Value(contextKey(key))
}

// SetValue sets a value to the context.
func SetValue(ctx context.Context, key string, val any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if c, ok := GetGinContext(ctx); ok {
		c.Set(key, val)
	}
	return context.WithValue(ctx, contextKey(key), val)
}

// SetUserID sets user id to context.Context.
func SetUserID(ctx context.Context, uid int64) context.Context {
	return SetValue(ctx, userIDKey, uid)
}

// GetUserID gets user id from context.Context.
func GetUserID(ctx context.Context) int64 {
	if uid, ok := GetValue(ctx, userIDKey).(int64); ok {
		return uid
	}
	return 0
}

// SetToken sets token to context.Context.
func SetToken(ctx context.Context, token string) context.Context {
	return SetValue(ctx, tokenKey, token)
}

// GetToken gets token from context.Context.
func GetToken(ctx context.Context) string {
	if token, ok := GetValue(ctx, tokenKey).(string); ok {
		return token
	}
	return ""
}

// SetUserRole sets the user role to context.Context.
func SetUserRole(ctx context.Context, role string) context.Context {
	ctx = SetValue(ctx, userRoleKey, role)
	return SetValue(ctx, userIsAdminKey, role == "admin")
}

// GetUserRole gets the user role from context.Context.
func GetUserRole(ctx context.Context) string {
	if role, ok := GetValue(ctx, userRoleKey).(string); ok {
		return role
	}
	return ""
}

// GetUserIsAdmin gets user admin status from context.Context.
func GetUserIsAdmin(ctx context.Context) bool {
	if isAdmin, ok := GetValue(ctx, userIsAdminKey).(bool); ok {
		return isAdmin
	}
	return false
}

// GetTraceID gets trace id from context.Context or gin.Context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := GetValue(ctx, TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets trace id to context.Context and gin.Context if available.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}
