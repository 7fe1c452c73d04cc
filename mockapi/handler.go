package mockapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/coursenav/ctxutil"
	"github.com/ncobase/coursenav/logging/logger"
	"github.com/ncobase/coursenav/net/resp"
	"github.com/ncobase/coursenav/paging"
	"github.com/ncobase/coursenav/structs"
	"github.com/ncobase/coursenav/validation/validator"
)

func (s *Server) login(c *gin.Context) {
	ctx := ctxutil.WithGinContext(c.Request.Context(), c)

	var body structs.LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Malformed request body."))
		return
	}
	if fields := validator.ValidateStruct(&body); len(fields) > 0 {
		resp.Fail(c.Writer, resp.ValidationFailed(fields))
		return
	}

	acc := s.findAccount(strings.TrimSpace(body.Email))
	if acc == nil || !ComparePassword(acc.password, body.Password) {
		e := resp.BadRequest("Unable to log in with provided credentials.")
		e.Fields = map[string][]string{"non_field_errors": {e.Message}}
		resp.Fail(c.Writer, e)
		return
	}

	token, err := s.tokens.GenerateAccessToken(acc.user.ID, string(acc.user.Role))
	if err != nil {
		logger.Errorf(ctx, "failed to issue token: %v", err)
		resp.Fail(c.Writer, resp.InternalServer(""))
		return
	}
	logger.Infof(ctx, "issued token for %s", acc.user.Email)
	resp.Success(c.Writer, structs.AccessToken{Token: token})
}

func (s *Server) self(c *gin.Context) {
	ctx := ctxutil.WithGinContext(c.Request.Context(), c)
	u := s.findUser(ctxutil.GetUserID(ctx))
	if u == nil {
		resp.Fail(c.Writer, resp.NotFound(""))
		return
	}
	resp.Success(c.Writer, u)
}

// visibleCourses returns what a user may see: admins see everything,
// others the courses they own or attend.
func (s *Server) visibleCourses(userID int64, isAdmin bool) []structs.Course {
	out := make([]structs.Course, 0, len(s.courses))
	for _, course := range s.courses {
		if isAdmin || course.Owner.ID == userID || attends(course, userID) {
			out = append(out, course)
		}
	}
	return out
}

func attends(course structs.Course, userID int64) bool {
	for _, st := range course.Students {
		if st.ID == userID {
			return true
		}
	}
	return false
}

func (s *Server) listCourses(c *gin.Context) {
	ctx := ctxutil.WithGinContext(c.Request.Context(), c)

	opts := paging.Options{
		Ordering: c.Query("ordering"),
		Search:   c.Query("search"),
	}
	var err error
	if opts.Page, err = queryInt(c, "page"); err != nil {
		resp.Fail(c.Writer, resp.ValidationFailed(map[string][]string{"page": {"A valid integer is required."}}))
		return
	}
	if opts.PageSize, err = queryInt(c, "page_size"); err != nil {
		resp.Fail(c.Writer, resp.ValidationFailed(map[string][]string{"page_size": {"A valid integer is required."}}))
		return
	}
	opts = paging.Normalize(opts)

	all := findCourses(s.visibleCourses(ctxutil.GetUserID(ctx), ctxutil.GetUserIsAdmin(ctx)), opts.Search, opts.Ordering)
	start, end := paging.Window(opts, len(all))
	if start >= len(all) && opts.Page > 1 {
		resp.Fail(c.Writer, resp.NotFound("Invalid page."))
		return
	}

	page := paging.Page[structs.Course]{
		Count:   len(all),
		Results: all[start:end],
	}
	if end < len(all) {
		page.Next = pageURL(c, opts.Page+1)
	}
	if opts.Page > 1 {
		page.Previous = pageURL(c, opts.Page-1)
	}
	resp.Success(c.Writer, page)
}

func (s *Server) getCourse(c *gin.Context) {
	ctx := ctxutil.WithGinContext(c.Request.Context(), c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.Fail(c.Writer, resp.NotFound(""))
		return
	}
	for _, course := range s.visibleCourses(ctxutil.GetUserID(ctx), ctxutil.GetUserIsAdmin(ctx)) {
		if course.ID == id {
			resp.Success(c.Writer, course)
			return
		}
	}
	resp.Fail(c.Writer, resp.NotFound("No Course matches the given query."))
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// pageURL builds the absolute URL of another page of the current listing
func pageURL(c *gin.Context, page int) *string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	u := url.URL{Scheme: scheme, Host: c.Request.Host, Path: c.Request.URL.Path, RawQuery: q.Encode()}
	s := u.String()
	return &s
}
