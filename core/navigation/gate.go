package navigation

import "github.com/verilearn/verilearn/core/session"

// Verdict is the gate's decision kind.
type Verdict int

const (
	// Wait renders a neutral placeholder; the session is still revalidating.
	Wait Verdict = iota
	// Redirect sends the caller to Decision.Target.
	Redirect
	// Grant renders the protected content.
	Grant
)

// Decision is the gate's answer for one render.
type Decision struct {
	Verdict Verdict
	Target  Route // set only for Redirect
}

// Decide gates a view on session state and an optional required role. It is
// a pure function of its inputs and holds no state; it is safe to call on
// every render.
//
// Redirect targets always pass the gate themselves: the login route is
// ungated, and a role's default route requires exactly that role.
func Decide(state session.State, required *session.Role) Decision {
	if state.Loading {
		return Decision{Verdict: Wait}
	}
	if state.Session == nil {
		return Decision{Verdict: Redirect, Target: RouteLogin}
	}
	if required != nil && state.Session.User.Role != *required {
		return Decision{Verdict: Redirect, Target: DefaultRoute(state.Session.User.Role)}
	}
	return Decision{Verdict: Grant}
}
