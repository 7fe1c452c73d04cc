package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/coursenav/config"
	"github.com/ncobase/coursenav/logging/logger"
	"github.com/ncobase/coursenav/structs"
)

// Server is the development backend serving the course API from fixtures
type Server struct {
	conf     *config.Mock
	tokens   *TokenManager
	accounts []account
	courses  []structs.Course
	engine   *gin.Engine
}

// New creates a server over the seed data
func New(conf *config.Mock, seed Seed) (*Server, error) {
	if conf == nil {
		conf = &config.Mock{}
	}
	if conf.Secret == "" {
		return nil, ErrNeedTokenSecret
	}

	s := &Server{
		conf:    conf,
		tokens:  NewTokenManager(conf.Secret, conf.TokenExpire),
		courses: seed.Courses,
	}
	for _, u := range seed.Users {
		hash, err := HashPassword(u.Password)
		if err != nil {
			return nil, err
		}
		s.accounts = append(s.accounts, account{user: u.User, password: hash})
	}

	gin.SetMode(gin.ReleaseMode)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), traceMiddleware, logMiddleware)
	s.registerRoutes(s.engine.Group(conf.Prefix))
	return s, nil
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on the configured address until ctx is done
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.conf.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof(ctx, "mock api listening on http://%s%s", s.conf.Addr, s.conf.Prefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("mock api: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("mock api shutdown: %w", err)
	}
	logger.Info(ctx, "mock api stopped")
	return nil
}

func (s *Server) registerRoutes(r *gin.RouterGroup) {
	r.POST("/auth/token/", s.login)

	authed := r.Group("", s.authMiddleware)
	authed.GET("/users/self/", s.self)
	authed.GET("/courses/", s.listCourses)
	authed.GET("/courses/:id/", s.getCourse)
}

func (s *Server) findAccount(email string) *account {
	for i := range s.accounts {
		if s.accounts[i].user.Email == email {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *Server) findUser(id int64) *structs.User {
	for i := range s.accounts {
		if s.accounts[i].user.ID == id {
			u := s.accounts[i].user
			return &u
		}
	}
	return nil
}
