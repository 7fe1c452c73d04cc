package mockapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/coursenav/ctxutil"
	"github.com/ncobase/coursenav/logging/logger"
	"github.com/ncobase/coursenav/net/resp"
)

const headerRequestID = "X-Request-Id"

// traceMiddleware propagates the request id into the gin context
func traceMiddleware(c *gin.Context) {
	ctx := ctxutil.WithGinContext(c.Request.Context(), c)
	traceID := c.GetHeader(headerRequestID)
	if traceID == "" {
		_, traceID = ctxutil.EnsureTraceID(ctx)
	}
	ctxutil.SetTraceID(ctx, traceID)
	c.Header(headerRequestID, traceID)
	c.Next()
}

func logMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	ctx := ctxutil.WithGinContext(c.Request.Context(), c)
	logger.Debugf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
}

// authMiddleware accepts "Token <jwt>" and "Bearer <jwt>"
func (s *Server) authMiddleware(c *gin.Context) {
	scheme, token, _ := strings.Cut(c.GetHeader("Authorization"), " ")
	if token == "" || (scheme != "Token" && scheme != "Bearer") {
		resp.Fail(c.Writer, resp.UnAuthorized("Authentication credentials were not provided."))
		c.Abort()
		return
	}

	id, err := s.tokens.ParseAccessToken(strings.TrimSpace(token))
	if err != nil {
		resp.Fail(c.Writer, resp.UnAuthorized("Invalid token."))
		c.Abort()
		return
	}
	u := s.findUser(id)
	if u == nil {
		resp.Fail(c.Writer, resp.UnAuthorized("User not found."))
		c.Abort()
		return
	}

	ctx := ctxutil.WithGinContext(c.Request.Context(), c)
	ctxutil.SetUserID(ctx, u.ID)
	ctxutil.SetUserRole(ctx, string(u.Role))
	ctxutil.SetToken(ctx, token)
	c.Next()
}
