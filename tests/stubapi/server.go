// Package stubapi is an in-process scoring backend used by the test
// suites and by the local stub server binary. It speaks the same wire
// contract as the hosted service: bearer JWT auth, role-gated routes
// and {"detail": ...} error bodies.
package stubapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/verilearn/verilearn/core"
	"github.com/verilearn/verilearn/core/session"
)

type (
	Options struct {
		Address        string
		Secret         []byte
		DisableReqLogs bool
	}

	Server struct {
		opts *Options
		app  *echo.Echo
		db   *DB

		secret []byte
	}
)

var _ http.Handler = (*Server)(nil)

func NewServer(opts *Options) *Server {
	if opts == nil {
		opts = &Options{}
	}
	secret := opts.Secret
	if len(secret) == 0 {
		secret = []byte("stub-secret")
	}
	s := &Server{
		opts:   opts,
		app:    echo.New(),
		db:     newDB(),
		secret: secret,
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	s.app.HTTPErrorHandler = httpErrorHandler
	s.app.HideBanner = true
	s.app.Debug = core.Conf.GetBool("debug")

	s.app.GET("/", home)

	auth := s.app.Group("/auth")
	auth.POST("/register", s.registerHandler)
	auth.POST("/login", s.loginHandler)
	auth.GET("/me", s.meHandler, s.requireAuth)

	student := s.app.Group("/student", s.requireAuth, s.requireRole(session.RoleStudent))
	student.POST("/submit-assignment", s.submitAssignmentHandler)
	student.POST("/submit-followup", s.submitFollowupHandler)
	student.GET("/dashboard", s.dashboardHandler)
	student.GET("/results/:id", s.resultsHandler)

	teacher := s.app.Group("/teacher", s.requireAuth, s.requireRole(session.RoleTeacher))
	teacher.GET("/class-analytics", s.classAnalyticsHandler)
	teacher.GET("/students", s.studentsHandler)
	teacher.GET("/student/:id", s.studentAnalyticsHandler)
}

func (s *Server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

// Seed registers an account directly, bypassing the HTTP surface.
func (s *Server) Seed(name, email, password string, role session.Role) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return 0, errors.Wrap(err, "hashing password")
	}
	usr := s.db.createUser(User{Name: name, Email: core.CleanString(email, true), PasswordHash: hash, Role: role})
	return usr.ID, nil
}

func home(c echo.Context) error {
	return c.String(http.StatusOK, "VeriLearn stub API")
}

// httpErrorHandler renders every error as {"detail": ...}, matching
// the hosted service's error body shape.
func httpErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	detail := interface{}(http.StatusText(code))

	switch origErr := errors.Cause(err).(type) {
	case *echo.HTTPError:
		code = origErr.Code
		detail = origErr.Message
	case *core.ValidationError:
		code = http.StatusUnprocessableEntity
		if origErr.Fields != nil {
			fldErrs := make(map[string]string, len(origErr.Fields))
			for _, fErr := range origErr.Fields {
				fldErrs[fErr.Field] = fErr.Error
			}
			detail = fldErrs
		} else {
			detail = origErr.Error()
		}
	default:
		c.Logger().Error(err)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"detail": detail})
}
