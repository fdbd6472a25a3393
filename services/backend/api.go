package backendsvc

import (
	"context"
	"net/http"
	"strconv"

	"github.com/verilearn/verilearn/core/analytics"
	"github.com/verilearn/verilearn/core/results"
	"github.com/verilearn/verilearn/core/session"
	"github.com/verilearn/verilearn/core/submission"
)

// authResponse is the register/login response.
type authResponse struct {
	AccessToken string       `json:"access_token"`
	User        session.User `json:"user"`
}

// Auth

func (c *Client) Register(ctx context.Context, reg session.Registration) (session.Session, error) {
	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", reg, &res); err != nil {
		return session.Session{}, err
	}
	return session.Session{Token: res.AccessToken, User: res.User}, nil
}

func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.Session, error) {
	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &res); err != nil {
		return session.Session{}, err
	}
	return session.Session{Token: res.AccessToken, User: res.User}, nil
}

// Me revalidates the current bearer token and returns the authoritative
// user record.
func (c *Client) Me(ctx context.Context) (session.User, error) {
	var usr session.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &usr); err != nil {
		return session.User{}, err
	}
	return usr, nil
}

// Student

func (c *Client) SubmitAssignment(ctx context.Context, text, subject string) (submission.Analysis, error) {
	body := map[string]string{"text": text, "subject": subject}
	var analysis submission.Analysis
	if err := c.do(ctx, http.MethodPost, "/student/submit-assignment", body, &analysis); err != nil {
		return submission.Analysis{}, err
	}
	return analysis, nil
}

func (c *Client) SubmitFollowup(ctx context.Context, assignmentID int, responses map[string]string) error {
	body := map[string]interface{}{
		"assignment_id": assignmentID,
		"responses":     responses,
	}
	// response payload is navigation-triggering only
	return c.do(ctx, http.MethodPost, "/student/submit-followup", body, nil)
}

func (c *Client) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	var dash analytics.Dashboard
	if err := c.do(ctx, http.MethodGet, "/student/dashboard", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

func (c *Client) Results(ctx context.Context, assignmentID int) (*results.Raw, error) {
	var raw results.Raw
	if err := c.do(ctx, http.MethodGet, "/student/results/"+strconv.Itoa(assignmentID), nil, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// Teacher

func (c *Client) ClassAnalytics(ctx context.Context) (*analytics.ClassAnalytics, error) {
	var class analytics.ClassAnalytics
	if err := c.do(ctx, http.MethodGet, "/teacher/class-analytics", nil, &class); err != nil {
		return nil, err
	}
	return &class, nil
}

func (c *Client) Students(ctx context.Context) ([]analytics.StudentRow, error) {
	var rows []analytics.StudentRow
	if err := c.do(ctx, http.MethodGet, "/teacher/students", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) StudentAnalytics(ctx context.Context, studentID int) (*analytics.StudentAnalytics, error) {
	var stud analytics.StudentAnalytics
	if err := c.do(ctx, http.MethodGet, "/teacher/student/"+strconv.Itoa(studentID), nil, &stud); err != nil {
		return nil, err
	}
	return &stud, nil
}
