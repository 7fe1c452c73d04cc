package ctxutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestEnsureTraceIDIsStable(t *testing.T) {
	ctx, id := EnsureTraceID(context.Background())
	if id == "" {
		t.Fatal("expected a generated trace id")
	}
	_, again := EnsureTraceID(ctx)
	if again != id {
		t.Errorf("expected %q to be reused, got %q", id, again)
	}
}

func TestUserValues(t *testing.T) {
	ctx := SetUserID(context.Background(), 7)
	ctx = SetUserRole(ctx, "admin")
	ctx = SetToken(ctx, "abc")
	if GetUserID(ctx) != 7 || GetToken(ctx) != "abc" {
		t.Errorf("unexpected values id=%d token=%q", GetUserID(ctx), GetToken(ctx))
	}
	if !GetUserIsAdmin(ctx) || GetUserRole(ctx) != "admin" {
		t.Error("expected admin role")
	}
}

func TestValuesMirrorIntoGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx := WithGinContext(context.Background(), c)
	SetUserID(ctx, 9)
	if v, ok := c.Get(userIDKey); !ok || v.(int64) != 9 {
		t.Errorf("expected user id mirrored into gin context, got %v", v)
	}
	if GetUserID(ctx) != 9 {
		t.Error("expected user id readable through the gin context")
	}
}

func TestNilContext(t *testing.T) {
	//nolint:staticcheck
	if GetTraceID(nil) != "" {
		t.Error("nil context has no trace id")
	}
}
