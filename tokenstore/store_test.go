package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ncobase/coursenav/config"
	"github.com/redis/go-redis/v9"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}
	if err := s.Set(ctx, "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	token, ok, err := s.Get(ctx)
	if err != nil || !ok || token != "second" {
		t.Fatalf("Get() = %q, %v, %v; want second", token, ok, err)
	}
	if err := s.Remove(ctx); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok, _ := s.Get(ctx); ok {
		t.Fatal("token still present after Remove()")
	}
	if err := s.Remove(ctx); err != nil {
		t.Fatalf("second Remove() error = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	exerciseStore(t, s)

	if err := s.Set(context.Background(), "abc"); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}

	again, _ := NewFileStore(path)
	if token, ok, _ := again.Get(context.Background()); !ok || token != "abc" {
		t.Errorf("token not durable across instances: %q %v", token, ok)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, _ := NewFileStore(path)
	if _, _, err := s.Get(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Token
		wantErr bool
	}{
		{"nil", nil, false},
		{"memory", &config.Token{Driver: "memory"}, false},
		{"file", &config.Token{Driver: "file", Path: filepath.Join(t.TempDir(), "t.json")}, false},
		{"file without path", &config.Token{Driver: "file"}, true},
		{"redis without addr", &config.Token{Driver: "redis", Redis: &config.Redis{}}, true},
		{"unknown", &config.Token{Driver: "etcd"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && s == nil {
				t.Fatal("New() returned nil store")
			}
		})
	}
}

func TestKey(t *testing.T) {
	if got := Key(""); got != "coursenav:token" {
		t.Errorf("Key(\"\") = %q", got)
	}
	if got := Key("app"); got != "app:token" {
		t.Errorf("Key(app) = %q", got)
	}
}

// TestRedisStore runs against COURSENAV_TEST_REDIS when set.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("COURSENAV_TEST_REDIS")
	if addr == "" {
		t.Skip("COURSENAV_TEST_REDIS not set")
	}
	rc := redis.NewClient(&redis.Options{Addr: addr})
	if err := rc.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	s := NewRedisStoreWithClient(rc, "coursenav-test")
	t.Cleanup(func() { _ = s.Close() })
	_ = s.Remove(context.Background())
	exerciseStore(t, s)
}
