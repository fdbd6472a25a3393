package navigation

import (
	"testing"

	"github.com/verilearn/verilearn/core/session"
)

func TestDecide(t *testing.T) {
	student := &session.Session{Token: "t", User: session.User{ID: 1, Role: session.RoleStudent}}
	teacher := &session.Session{Token: "t", User: session.User{ID: 2, Role: session.RoleTeacher}}
	roleOf := func(r session.Role) *session.Role { return &r }

	tests := []struct {
		name     string
		state    session.State
		required *session.Role
		want     Decision
	}{
		{
			name:  "loading always waits",
			state: session.State{Loading: true},
			want:  Decision{Verdict: Wait},
		},
		{
			name:     "loading waits even with a session",
			state:    session.State{Session: student, Loading: true},
			required: roleOf(session.RoleStudent),
			want:     Decision{Verdict: Wait},
		},
		{
			name:  "anonymous goes to login",
			state: session.State{},
			want:  Decision{Verdict: Redirect, Target: RouteLogin},
		},
		{
			name:     "anonymous goes to login regardless of required role",
			state:    session.State{},
			required: roleOf(session.RoleTeacher),
			want:     Decision{Verdict: Redirect, Target: RouteLogin},
		},
		{
			name:  "authenticated, no role required",
			state: session.State{Session: student},
			want:  Decision{Verdict: Grant},
		},
		{
			name:     "student on a student route",
			state:    session.State{Session: student},
			required: roleOf(session.RoleStudent),
			want:     Decision{Verdict: Grant},
		},
		{
			name:     "student on a teacher route lands home",
			state:    session.State{Session: student},
			required: roleOf(session.RoleTeacher),
			want:     Decision{Verdict: Redirect, Target: RouteStudentDashboard},
		},
		{
			name:     "teacher on a student route lands home",
			state:    session.State{Session: teacher},
			required: roleOf(session.RoleStudent),
			want:     Decision{Verdict: Redirect, Target: RouteTeacherDashboard},
		},
		{
			name:     "teacher on a teacher route",
			state:    session.State{Session: teacher},
			required: roleOf(session.RoleTeacher),
			want:     Decision{Verdict: Grant},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.state, tt.required); got != tt.want {
				t.Errorf("Decide() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// A mismatch redirect must land on a route the user's actual role passes,
// so chained decisions settle after one hop.
func TestDecide_RedirectNeverLoops(t *testing.T) {
	for _, role := range []session.Role{session.RoleStudent, session.RoleTeacher} {
		state := session.State{Session: &session.Session{Token: "t", User: session.User{ID: 1, Role: role}}}
		other := session.RoleStudent
		if role == session.RoleStudent {
			other = session.RoleTeacher
		}

		first := Decide(state, &other)
		if first.Verdict != Redirect {
			t.Fatalf("Decide(%s on %s route) = %+v, want Redirect", role, other, first)
		}
		second := Decide(state, RequiredRole(first.Target))
		if second.Verdict != Grant {
			t.Errorf("Decide() after redirect = %+v, want Grant", second)
		}
	}
}

func TestRequiredRole(t *testing.T) {
	if RequiredRole(RouteLogin) != nil {
		t.Error("RequiredRole(RouteLogin) != nil, want nil")
	}
	if got := RequiredRole(RouteStudentSubmit); got == nil || *got != session.RoleStudent {
		t.Errorf("RequiredRole(RouteStudentSubmit) = %v, want student", got)
	}
	if got := RequiredRole(RouteTeacherStudents); got == nil || *got != session.RoleTeacher {
		t.Errorf("RequiredRole(RouteTeacherStudents) = %v, want teacher", got)
	}
}
