package router

import "context"

// Session is the view of the session the guard decides on
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
	LoadUser(ctx context.Context) bool
}

// Targets names the routes the guard redirects to
type Targets struct {
	Landing string
	Login   string
}

// Decision is the outcome of a guard evaluation
type Decision struct {
	Allow    bool
	Redirect *Location
}

func allow() Decision { return Decision{Allow: true} }

func redirect(name string) Decision {
	return Decision{Redirect: &Location{Name: name}}
}

// Guard decides whether navigation to a route with the given requirements
// may proceed. It holds no state; restoring the session through LoadUser
// completes before the decision is returned.
func Guard(ctx context.Context, s Session, to Meta, from *Location, t Targets) Decision {
	if !to.AuthRequired {
		return allow()
	}

	if to.AdminRequired && s.IsAdmin() {
		return allow()
	}

	if !to.AdminRequired && s.IsAuthenticated() {
		return allow()
	}

	if !s.IsAuthenticated() {
		if !s.LoadUser(ctx) {
			return redirect(t.Login)
		}
		if to.AdminRequired && !s.IsAdmin() {
			return redirect(t.Landing)
		}
		return allow()
	}

	// authenticated but not admin on an admin route
	if from != nil && from.Name != "" {
		back := *from
		return Decision{Redirect: &back}
	}
	return redirect(t.Landing)
}
