package courses

import (
	"context"
	"sync"

	"github.com/ncobase/coursenav/logging/logger"
	"github.com/ncobase/coursenav/paging"
	"github.com/ncobase/coursenav/service"
	"github.com/ncobase/coursenav/structs"
)

// Store holds the course collection and the course/theme/material
// selection cursor. Current entities are derived from the live collection
// on every read.
type Store struct {
	svc  service.CoursesServiceInterface
	opts []paging.Options

	mu         sync.RWMutex
	courses    []structs.Course
	courseID   *int64
	themeID    *int64
	materialID *int64
	loading    bool
	lastError  string
}

// Option configures the store
type Option func(*Store)

// WithOptions sets the list options used by FetchCourses
func WithOptions(opts paging.Options) Option {
	return func(s *Store) { s.opts = []paging.Options{opts} }
}

// New creates an empty store
func New(svc service.CoursesServiceInterface, opts ...Option) *Store {
	s := &Store{svc: svc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchCourses replaces the collection with a fresh listing. On failure
// the previous collection is kept and the message recorded. The cursor
// is never reset.
func (s *Store) FetchCourses(ctx context.Context) bool {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()

	res := s.svc.GetCourses(ctx, s.opts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if !res.IsOk() {
		s.lastError = res.Error.Message
		logger.Warnf(ctx, "failed to fetch courses: %s", res.Error.Message)
		return false
	}
	s.courses = res.Result.Results
	if s.courses == nil {
		s.courses = []structs.Course{}
	}
	return true
}

// SelectCourse sets the course and clears the theme and material
func (s *Store) SelectCourse(id *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courseID = clone(id)
	s.themeID = nil
	s.materialID = nil
}

// SelectTheme sets the theme and clears the material
func (s *Store) SelectTheme(id *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themeID = clone(id)
	s.materialID = nil
}

// SelectMaterial sets the material
func (s *Store) SelectMaterial(id *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materialID = clone(id)
}

// CurrentCourse returns the selected course, nil when unset or dangling
func (s *Store) CurrentCourse() *structs.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentCourse()
}

// CurrentTheme returns the selected theme of the current course
func (s *Store) CurrentTheme() *structs.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTheme()
}

// CurrentMaterial returns the selected material of the current theme
func (s *Store) CurrentMaterial() *structs.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.materialID == nil {
		return nil
	}
	return s.currentTheme().FindMaterial(*s.materialID)
}

func (s *Store) currentCourse() *structs.Course {
	if s.courseID == nil {
		return nil
	}
	for i := range s.courses {
		if s.courses[i].ID == *s.courseID {
			c := s.courses[i].Clone()
			return &c
		}
	}
	return nil
}

func (s *Store) currentTheme() *structs.Theme {
	if s.themeID == nil {
		return nil
	}
	return s.currentCourse().FindTheme(*s.themeID)
}

// Courses returns a copy of the collection
func (s *Store) Courses() []structs.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]structs.Course, len(s.courses))
	for i := range s.courses {
		out[i] = s.courses[i].Clone()
	}
	return out
}

// SelectedCourseID returns the course cursor
func (s *Store) SelectedCourseID() *int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.courseID)
}

// SelectedThemeID returns the theme cursor
func (s *Store) SelectedThemeID() *int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.themeID)
}

// SelectedMaterialID returns the material cursor
func (s *Store) SelectedMaterialID() *int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.materialID)
}

// Loading reports whether a fetch is in flight
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the message of the last failed fetch, empty if none
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func clone(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
