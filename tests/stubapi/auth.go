package stubapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/verilearn/verilearn/core"
	"github.com/verilearn/verilearn/core/session"
)

const tokenTTL = 24 * time.Hour

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Server) issueToken(usr *User) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(usr.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.ToLower(usr.Email),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	signed, err := tok.SignedString(s.secret)
	return signed, errors.Wrap(err, "signing token")
}

func (s *Server) parseToken(raw string) (*User, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(core.ErrAuthFailed, err.Error())
	}
	usr, ok := s.db.userByEmail(cl.Subject)
	if !ok {
		return nil, errors.Wrap(core.ErrAuthFailed, "unknown subject")
	}
	return usr, nil
}

// requireAuth parses the bearer token and stores the account on the
// request context. requireRole additionally gates on the account role.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
		}
		usr, err := s.parseToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
		}
		c.Set(userContextKey, usr)
		return next(c)
	}
}

func (s *Server) requireRole(role session.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if currentUser(c).Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "Operation not permitted")
			}
			return next(c)
		}
	}
}

const userContextKey = "user"

func currentUser(c echo.Context) *User {
	return c.Get(userContextKey).(*User)
}

type (
	registrationRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	userResponse struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	authResponse struct {
		AccessToken string       `json:"access_token"`
		TokenType   string       `json:"token_type"`
		User        userResponse `json:"user"`
	}
)

func toUserResponse(usr *User) userResponse {
	return userResponse{ID: usr.ID, Name: usr.Name, Email: usr.Email, Role: string(usr.Role)}
}

func (s *Server) registerHandler(c echo.Context) error {
	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.Email = core.CleanString(req.Email, true)
	req.Name = core.CleanString(req.Name)
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid registration payload")
	}
	role := session.Role(req.Role)
	if !role.Valid() {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Unknown role")
	}
	if _, exists := s.db.userByEmail(req.Email); exists {
		return echo.NewHTTPError(http.StatusBadRequest, "Email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hashing password")
	}
	usr := s.db.createUser(User{Name: req.Name, Email: req.Email, PasswordHash: hash, Role: role})
	return s.respondAuth(c, http.StatusCreated, usr)
}

func (s *Server) loginHandler(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	usr, ok := s.db.userByEmail(core.CleanString(req.Email, true))
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
	}
	if err := bcrypt.CompareHashAndPassword(usr.PasswordHash, []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
	}
	return s.respondAuth(c, http.StatusOK, usr)
}

func (s *Server) meHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, toUserResponse(currentUser(c)))
}

func (s *Server) respondAuth(c echo.Context, status int, usr *User) error {
	token, err := s.issueToken(usr)
	if err != nil {
		return err
	}
	return c.JSON(status, authResponse{AccessToken: token, TokenType: "bearer", User: toUserResponse(usr)})
}
