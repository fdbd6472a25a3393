package session

// Persisted state keys. The durable client storage holds exactly these two
// entries: the bearer token and the serialized user record. They are written
// together or not at all.
const (
	TokenKey = "verilearn_token"
	UserKey  = "verilearn_user"
)

// Roles
const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Role is the closed set of account roles.
type Role string

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

func (r Role) String() string { return string(r) }

// User is the authenticated identity as reported by the backend.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session is the authenticated identity plus its bearer token.
// Token and User are always present together.
type Session struct {
	Token string
	User  User
}

// State is a point-in-time snapshot of the session. Loading is true only
// during the startup revalidation window and becomes false exactly once.
type State struct {
	Session *Session
	Loading bool
}
