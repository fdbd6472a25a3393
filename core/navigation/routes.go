package navigation

import "github.com/verilearn/verilearn/core/session"

// Route identifies a client view.
type Route string

const (
	RouteLogin            Route = "/login"
	RouteStudentDashboard Route = "/student/dashboard"
	RouteStudentSubmit    Route = "/student/submit"
	RouteStudentResults   Route = "/student/results"
	RouteTeacherDashboard Route = "/teacher/dashboard"
	RouteTeacherStudents  Route = "/teacher/students"
	RouteTeacherStudent   Route = "/teacher/student"
)

// DefaultRoute is where a user lands for their role. Its view requires
// exactly that role, so redirecting here can never loop.
func DefaultRoute(role session.Role) Route {
	if role == session.RoleTeacher {
		return RouteTeacherDashboard
	}
	return RouteStudentDashboard
}

// RequiredRole returns the role a route is gated on, or nil for routes any
// authenticated user may visit.
func RequiredRole(route Route) *session.Role {
	var role session.Role
	switch route {
	case RouteStudentDashboard, RouteStudentSubmit, RouteStudentResults:
		role = session.RoleStudent
	case RouteTeacherDashboard, RouteTeacherStudents, RouteTeacherStudent:
		role = session.RoleTeacher
	default:
		return nil
	}
	return &role
}
