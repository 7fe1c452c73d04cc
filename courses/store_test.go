package courses

import (
	"context"
	"testing"

	"github.com/ncobase/coursenav/net/resp"
	"github.com/ncobase/coursenav/paging"
	"github.com/ncobase/coursenav/structs"
	"github.com/ncobase/coursenav/types"
)

type fakeCourses struct {
	page  paging.Page[structs.Course]
	err   *resp.ErrorData
	store *Store
	seen  []paging.Options
	// loadingDuringFetch records Loading() observed inside the request
	loadingDuringFetch bool
}

func (f *fakeCourses) GetCourses(_ context.Context, opts ...paging.Options) resp.Response[paging.Page[structs.Course]] {
	f.seen = append(f.seen, opts...)
	if f.store != nil {
		f.loadingDuringFetch = f.store.Loading()
	}
	if f.err != nil {
		return resp.Err[paging.Page[structs.Course]](f.err)
	}
	return resp.Ok(f.page)
}

func (f *fakeCourses) GetCourse(context.Context, int64) resp.Response[structs.Course] {
	return resp.Err[structs.Course](nil)
}

func fixture() []structs.Course {
	return []structs.Course{
		{ID: 1, Name: "Go", Themes: []structs.Theme{
			{ID: 10, Course: 1, Materials: []structs.Material{{ID: 100, Theme: 10}, {ID: 101, Theme: 10}}},
			{ID: 11, Course: 1},
		}},
		{ID: 3, Name: "Rust", Themes: []structs.Theme{
			{ID: 30, Course: 3, Materials: []structs.Material{{ID: 300, Theme: 30}}},
		}},
	}
}

func newLoadedStore(t *testing.T) (*Store, *fakeCourses) {
	t.Helper()
	f := &fakeCourses{page: paging.Page[structs.Course]{Count: 2, Results: fixture()}}
	s := New(f)
	f.store = s
	if !s.FetchCourses(context.Background()) {
		t.Fatalf("FetchCourses() failed: %s", s.LastError())
	}
	return s, f
}

func id(v int64) *int64 { return types.ToPointer(v) }

func TestSelectionScenario(t *testing.T) {
	s, _ := newLoadedStore(t)

	s.SelectCourse(id(1))
	s.SelectTheme(id(10))
	s.SelectMaterial(id(100))
	if m := s.CurrentMaterial(); m == nil || m.ID != 100 {
		t.Fatalf("CurrentMaterial() = %+v, want 100", m)
	}

	s.SelectCourse(id(2))
	if s.CurrentCourse() != nil || s.CurrentTheme() != nil || s.CurrentMaterial() != nil {
		t.Error("derived entities should be nil for a missing course")
	}
	if s.SelectedThemeID() != nil || s.SelectedMaterialID() != nil {
		t.Error("selecting a course must clear theme and material")
	}
}

func TestSelectCourseAlwaysCascades(t *testing.T) {
	s, _ := newLoadedStore(t)
	for _, target := range []*int64{id(1), id(3), id(99), nil} {
		s.SelectCourse(id(1))
		s.SelectTheme(id(10))
		s.SelectMaterial(id(100))

		s.SelectCourse(target)
		if s.SelectedThemeID() != nil || s.SelectedMaterialID() != nil {
			t.Errorf("SelectCourse(%v) left finer selection", types.ToValue(target))
		}
		if !types.Equal(s.SelectedCourseID(), target) {
			t.Errorf("SelectedCourseID() = %v", s.SelectedCourseID())
		}
	}
}

func TestSelectThemeCascades(t *testing.T) {
	s, _ := newLoadedStore(t)
	s.SelectCourse(id(1))
	s.SelectTheme(id(10))
	s.SelectMaterial(id(101))

	s.SelectTheme(id(11))
	if s.SelectedMaterialID() != nil {
		t.Error("SelectTheme() must clear material")
	}
	if v := s.SelectedCourseID(); v == nil || *v != 1 {
		t.Error("SelectTheme() must keep the course")
	}
	if th := s.CurrentTheme(); th == nil || th.ID != 11 {
		t.Errorf("CurrentTheme() = %+v", th)
	}
}

func TestDerivedScopedToAncestor(t *testing.T) {
	s, _ := newLoadedStore(t)

	// theme 30 belongs to course 3, not course 1
	s.SelectCourse(id(1))
	s.SelectTheme(id(30))
	if s.CurrentTheme() != nil {
		t.Error("theme resolved outside the current course")
	}
	s.SelectMaterial(id(300))
	if s.CurrentMaterial() != nil {
		t.Error("material resolved without a current theme")
	}

	// no stale cursor yields a leaf without an ancestor
	s.SelectCourse(nil)
	s.SelectTheme(id(10))
	s.SelectMaterial(id(100))
	if s.CurrentCourse() != nil || s.CurrentTheme() != nil || s.CurrentMaterial() != nil {
		t.Error("derived entities without a course")
	}
}

func TestFetchFailureKeepsCourses(t *testing.T) {
	s, f := newLoadedStore(t)
	s.SelectCourse(id(3))
	before := s.Courses()

	f.err = &resp.ErrorData{Message: "Service unavailable"}
	if s.FetchCourses(context.Background()) {
		t.Fatal("FetchCourses() = true on error")
	}
	if got := s.Courses(); len(got) != len(before) || got[0].ID != before[0].ID {
		t.Errorf("courses changed on failure: %+v", got)
	}
	if s.LastError() != "Service unavailable" {
		t.Errorf("LastError() = %q", s.LastError())
	}
	if s.Loading() {
		t.Error("Loading() = true after failure")
	}
	if c := s.CurrentCourse(); c == nil || c.ID != 3 {
		t.Error("cursor lost on failure")
	}
}

func TestFetchReplacesAndKeepsCursor(t *testing.T) {
	s, f := newLoadedStore(t)
	if !f.loadingDuringFetch {
		t.Error("Loading() should be true while fetching")
	}
	s.SelectCourse(id(1))
	f.err = &resp.ErrorData{Message: "boom"}
	s.FetchCourses(context.Background())

	f.err = nil
	f.page = paging.Page[structs.Course]{Count: 1, Results: []structs.Course{{ID: 3}}}
	if !s.FetchCourses(context.Background()) {
		t.Fatal("FetchCourses() failed")
	}
	if s.LastError() != "" {
		t.Errorf("LastError() = %q after success", s.LastError())
	}
	if len(s.Courses()) != 1 {
		t.Errorf("Courses() = %+v", s.Courses())
	}
	if v := s.SelectedCourseID(); v == nil || *v != 1 {
		t.Error("refetch reset the cursor")
	}
	if s.CurrentCourse() != nil {
		t.Error("dangling course id should resolve to nil")
	}
}

func TestWithOptions(t *testing.T) {
	f := &fakeCourses{}
	s := New(f, WithOptions(paging.Options{Page: 2}))
	s.FetchCourses(context.Background())
	if len(f.seen) != 1 || f.seen[0].Page != 2 {
		t.Errorf("options = %+v", f.seen)
	}
	if s.Courses() == nil {
		t.Error("Courses() should be empty, not nil")
	}
}

func TestDerivedReturnsCopies(t *testing.T) {
	s, _ := newLoadedStore(t)
	s.SelectCourse(id(1))
	c := s.CurrentCourse()
	c.Name = "changed"
	if s.CurrentCourse().Name != "Go" {
		t.Error("CurrentCourse() exposed internal state")
	}

	c.Themes[0].ID = 999
	c.Themes[0].Materials[0].ID = 999
	s.SelectTheme(id(10))
	th := s.CurrentTheme()
	if th == nil {
		t.Fatal("theme 10 no longer resolves after mutating a returned course")
	}
	th.Materials[0].Name = "changed"
	s.SelectMaterial(id(100))
	if m := s.CurrentMaterial(); m == nil || m.Name != "" {
		t.Errorf("CurrentMaterial() = %+v, want untouched material 100", m)
	}

	all := s.Courses()
	all[0].Themes[0].Name = "leak"
	all[0].Themes = nil
	if got := s.Courses()[0]; len(got.Themes) != 2 || got.Themes[0].Name != "" {
		t.Errorf("Courses() shares nested state: %+v", got.Themes)
	}
}
