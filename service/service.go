package service

import "github.com/ncobase/coursenav/net/api"

// Service groups the API services
type Service struct {
	Auth    AuthServiceInterface
	Profile ProfileServiceInterface
	Courses CoursesServiceInterface
}

// New creates the services over an API client
func New(d api.Doer) *Service {
	return &Service{
		Auth:    NewAuthService(d),
		Profile: NewProfileService(d),
		Courses: NewCoursesService(d),
	}
}
