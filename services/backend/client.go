package backendsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/verilearn/verilearn/core"
	"github.com/verilearn/verilearn/core/session"
	"github.com/verilearn/verilearn/core/submission"
)

type (
	// TokenSource supplies the current bearer token; "" means unauthenticated.
	TokenSource func() string

	// Client is the HTTP gateway to the scoring backend. It attaches the
	// bearer token and normalizes every failure into the core error
	// taxonomy; callers never see raw transport errors.
	Client struct {
		baseURL string
		http    *http.Client
		tokens  TokenSource
		timeout time.Duration
	}

	Option func(*Client)
)

// compile-time interface checks for the gateway's consumers
var (
	_ session.Identity    = (*Client)(nil)
	_ submission.Analyzer = (*Client)(nil)
)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: core.Conf.GetDuration("requestTimeout")},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	// applied last so it wins regardless of option order
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	return c
}

// errorBody is the backend's failure payload.
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (b errorBody) message() string {
	if b.Detail != "" {
		return b.Detail
	}
	return b.Error
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "backend: encoding request")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return core.NewTransportError(0, "", errors.Wrap(err, "backend: building request"))
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return core.NewTransportError(0, "", errors.Wrap(err, "backend: "+method+" "+path))
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return c.normalizeFailure(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return core.NewTransportError(res.StatusCode, "", errors.Wrap(err, "backend: decoding response"))
	}
	return nil
}

// normalizeFailure maps a non-2xx response onto the error taxonomy.
func (c *Client) normalizeFailure(res *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(res.Body).Decode(&body)
	msg := body.message()
	if msg == "" {
		msg = fmt.Sprintf("request failed: %d %s", res.StatusCode, http.StatusText(res.StatusCode))
	}

	switch res.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Wrap(core.ErrAuthFailed, msg)
	case http.StatusNotFound:
		return errors.Wrap(core.ErrNotFound, msg)
	default:
		return core.NewTransportError(res.StatusCode, msg, nil)
	}
}
