package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ncobase/coursenav/app"
	"github.com/ncobase/coursenav/config"
	"github.com/ncobase/coursenav/logging/logger"
	"github.com/ncobase/coursenav/types"
	"github.com/spf13/cobra"
)

const shellHelp = `commands:
  open <path|route>             navigate with the session guard
  login <email> <password>      sign in
  logout                        sign out
  whoami                        show the signed in user
  fetch                         (re)load the course list
  courses                       list loaded courses
  select course|theme|material <id|none>
  show                          show the current selection
  where                         show the current location
  help, quit`

var errQuit = errors.New("quit")

func newShellCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over one application instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := opts.newApp()
			if err != nil {
				return err
			}
			defer cleanup()

			config.Watch(func(cfg *config.Config) {
				if cfg.Logger != nil {
					logger.SetLevel(cfg.Logger.Level)
				}
			})

			sh := &shell{app: a, p: opts.printer(cmd), out: cmd.OutOrStdout()}
			return sh.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// shell is a line oriented REPL over an app
type shell struct {
	app *app.App
	p   *printer
	out io.Writer
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	if _, err := s.app.Router.Push(ctx, s.app.Config.Routes.Landing); err != nil {
		return err
	}
	s.where()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		err := s.exec(ctx, strings.Fields(scanner.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *shell) exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "quit", "exit":
		return errQuit
	case "help":
		_, err := fmt.Fprintln(s.out, shellHelp)
		return err
	case "open":
		if len(args) != 2 {
			return errors.New("usage: open <path|route>")
		}
		loc, err := s.app.Router.Push(ctx, args[1])
		if err != nil {
			return err
		}
		return s.p.location(loc)
	case "login":
		if len(args) != 3 {
			return errors.New("usage: login <email> <password>")
		}
		res := s.app.Session.SignIn(ctx, args[1], args[2])
		if !res.IsOk() {
			return apiError(res.Error)
		}
		return s.p.user(res.Result)
	case "logout":
		if err := s.app.Session.Logout(ctx); err != nil {
			return err
		}
		s.where()
		return nil
	case "whoami":
		return s.p.user(s.app.Session.User())
	case "fetch":
		if !s.app.Courses.FetchCourses(ctx) {
			return errors.New(s.app.Courses.LastError())
		}
		fmt.Fprintf(s.out, "%d course(s) loaded\n", len(s.app.Courses.Courses()))
		return nil
	case "courses":
		for _, c := range s.app.Courses.Courses() {
			fmt.Fprintf(s.out, "%d  %s\n", c.ID, c.Name)
		}
		return nil
	case "select":
		return s.sel(args[1:])
	case "show":
		return s.show()
	case "where":
		s.where()
		return nil
	default:
		return fmt.Errorf("unknown command %q, try help", args[0])
	}
}

func (s *shell) sel(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: select course|theme|material <id|none>")
	}
	var id *int64
	if args[1] != "none" {
		v, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		id = types.ToPointer(v)
	}

	store := s.app.Courses
	switch args[0] {
	case "course":
		store.SelectCourse(id)
	case "theme":
		store.SelectTheme(id)
	case "material":
		store.SelectMaterial(id)
	default:
		return fmt.Errorf("unknown level %q", args[0])
	}
	return s.show()
}

func (s *shell) show() error {
	store := s.app.Courses
	return s.p.selection(selection{
		Course:   store.CurrentCourse(),
		Theme:    store.CurrentTheme(),
		Material: store.CurrentMaterial(),
	})
}

func (s *shell) where() {
	if loc := s.app.Router.Current(); loc != nil {
		fmt.Fprintf(s.out, "at %s (%s)\n", loc.Path, loc.Name)
	}
}
