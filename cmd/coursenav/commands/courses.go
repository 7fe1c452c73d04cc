package commands

import (
	"errors"
	"strconv"

	"github.com/ncobase/coursenav/paging"
	"github.com/ncobase/coursenav/types"
	"github.com/spf13/cobra"
)

func newCoursesCommand(opts *globalOptions) *cobra.Command {
	list := paging.DefaultOptions()

	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"ls"},
		Short:   "List available courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := opts.newApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if !a.Session.LoadUser(cmd.Context()) {
				return errors.New("not signed in")
			}
			res := a.Service.Courses.GetCourses(cmd.Context(), paging.Normalize(list))
			if !res.IsOk() {
				return apiError(res.Error)
			}
			return opts.printer(cmd).page(res.Result)
		},
	}

	cmd.Flags().IntVar(&list.Page, "page", list.Page, "page number")
	cmd.Flags().IntVar(&list.PageSize, "page-size", list.PageSize, "page size")
	cmd.Flags().StringVarP(&list.Search, "search", "s", "", "filter by name")
	cmd.Flags().StringVar(&list.Ordering, "ordering", list.Ordering, "ordering, e.g. name or -created_at")
	return cmd
}

func newCourseCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "course <id>",
		Short: "Show a course with its themes and materials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("course id must be an integer")
			}

			a, cleanup, err := opts.newApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if !a.Session.LoadUser(cmd.Context()) {
				return errors.New("not signed in")
			}
			res := a.Service.Courses.GetCourse(cmd.Context(), id)
			if !res.IsOk() {
				return apiError(res.Error)
			}
			return opts.printer(cmd).course(res.Result)
		},
	}
}

func newBrowseCommand(opts *globalOptions) *cobra.Command {
	var courseID, themeID, materialID int64

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Fetch courses and resolve a course, theme and material selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := opts.newApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := a.Router.Push(cmd.Context(), "home"); err != nil {
				return err
			}
			if !a.Session.IsAuthenticated() {
				return errors.New("not signed in")
			}

			store := a.Courses
			if !store.FetchCourses(cmd.Context()) {
				return errors.New(store.LastError())
			}
			if cmd.Flags().Changed("course") {
				store.SelectCourse(types.ToPointer(courseID))
			}
			if cmd.Flags().Changed("theme") {
				store.SelectTheme(types.ToPointer(themeID))
			}
			if cmd.Flags().Changed("material") {
				store.SelectMaterial(types.ToPointer(materialID))
			}
			return opts.printer(cmd).selection(selection{
				Course:   store.CurrentCourse(),
				Theme:    store.CurrentTheme(),
				Material: store.CurrentMaterial(),
			})
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	cmd.Flags().Int64Var(&themeID, "theme", 0, "theme id within the course")
	cmd.Flags().Int64Var(&materialID, "material", 0, "material id within the theme")
	return cmd
}
