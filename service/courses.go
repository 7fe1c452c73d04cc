package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ncobase/coursenav/ecode"
	"github.com/ncobase/coursenav/net/api"
	"github.com/ncobase/coursenav/net/resp"
	"github.com/ncobase/coursenav/paging"
	"github.com/ncobase/coursenav/structs"
)

// CoursesServiceInterface lists and reads courses
type CoursesServiceInterface interface {
	GetCourses(ctx context.Context, opts ...paging.Options) resp.Response[paging.Page[structs.Course]]
	GetCourse(ctx context.Context, id int64) resp.Response[structs.Course]
}

type coursesService struct {
	d api.Doer
}

// NewCoursesService creates a new courses service
func NewCoursesService(d api.Doer) CoursesServiceInterface {
	return &coursesService{d: d}
}

// GetCourses lists courses. Query params are sent only when options are given.
func (s *coursesService) GetCourses(ctx context.Context, opts ...paging.Options) resp.Response[paging.Page[structs.Course]] {
	req := api.Request{Method: http.MethodGet, URL: "/courses/"}
	if len(opts) > 0 {
		params, err := opts[0].Values()
		if err != nil {
			return resp.Err[paging.Page[structs.Course]](&resp.ErrorData{
				Code:    ecode.ParamErr,
				Message: err.Error(),
			})
		}
		req.Params = params
	}
	return api.Decode[paging.Page[structs.Course]](ctx, s.d, req)
}

// GetCourse get a course by id
func (s *coursesService) GetCourse(ctx context.Context, id int64) resp.Response[structs.Course] {
	return api.Decode[structs.Course](ctx, s.d, api.Request{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/courses/%d/", id),
	})
}
