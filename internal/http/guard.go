package httpx

import (
	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/nav"
)

// Decision is the guard's verdict for one view request.
type Decision int

const (
	// DecisionRender serves the requested view.
	DecisionRender Decision = iota
	// DecisionRedirectLogin sends the visitor to the login view.
	DecisionRedirectLogin
	// DecisionRedirectDefault sends the visitor to their landing view.
	DecisionRedirectDefault
)

// ViewLogin is the only view that renders without a session.
const ViewLogin = "login"

// DefaultPath is where redirected visitors with a session land. The
// dashboard is visible to every role, so it is always a safe target.
const DefaultPath = "/"

// viewRoles is the access table, derived from the navigation master list
// so the sidebar and the guard can never disagree about who sees what.
var viewRoles = func() map[string][]domainauth.Role {
	m := make(map[string][]domainauth.Role)
	for _, item := range nav.AllItems() {
		m[item.Key] = item.Roles
	}
	return m
}()

// Decide is the guard's pure transition function: given the current
// session (nil when unauthenticated) and the requested view key, it
// returns what to do. It never mutates the session and has no other
// inputs, so the same pair always yields the same decision.
//
// Rules: login renders only without a session; every other view needs a
// session; a session whose role is not on the view's list is sent to the
// default view, never to login (they are authenticated, just not
// authorized); unknown views likewise fall back to the default view.
func Decide(sess *domainauth.Session, view string) Decision {
	if view == ViewLogin {
		if sess != nil {
			return DecisionRedirectDefault
		}
		return DecisionRender
	}

	if sess == nil {
		return DecisionRedirectLogin
	}

	roles, known := viewRoles[view]
	if !known {
		return DecisionRedirectDefault
	}
	for _, r := range roles {
		if r == sess.Role {
			return DecisionRender
		}
	}
	return DecisionRedirectDefault
}
