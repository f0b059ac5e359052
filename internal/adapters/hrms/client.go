// Package hrms is the REST adapter for the HRMS backend. It implements the
// backend API ports and the credential prober used by the login flow.
//
// Every request carries the calling session's basic-auth credential. There
// are no retries and no caching: each call either succeeds or reports a
// classified error to the view that issued it.
package hrms

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

// Config holds settings for the backend client.
type Config struct {
	// BaseURL is the backend origin, without a trailing slash.
	BaseURL string
	// RequestTimeout bounds each call.
	RequestTimeout time.Duration
	// Logger is optional; slog.Default() is used when nil.
	Logger *slog.Logger
}

// Client talks to the HRMS backend. It is safe for concurrent use.
type Client struct {
	r      *resty.Client
	logger *slog.Logger
}

// Compile-time conformance to the backend ports.
var (
	_ ports.EmployeeAPI      = (*Client)(nil)
	_ ports.DepartmentAPI    = (*Client)(nil)
	_ ports.LeaveAPI         = (*Client)(nil)
	_ ports.PayrollAPI       = (*Client)(nil)
	_ ports.ReportAPI        = (*Client)(nil)
	_ ports.CredentialProber = (*Client)(nil)
)

// NewClient constructs a backend client.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{r: r, logger: logger}
}

// get issues an authenticated GET and decodes a 2xx body into out (out may
// be nil when the caller only cares about success).
func (c *Client) get(ctx context.Context, cred domainauth.Credential, path string, out any) error {
	req := c.r.R().
		SetContext(ctx).
		SetHeader("Authorization", cred.AuthorizationHeader())
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Get(path)
	return c.classify(resp, err, http.MethodGet, path)
}

// postJSON issues an authenticated POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, cred domainauth.Credential, path string, body, out any) error {
	req := c.r.R().
		SetContext(ctx).
		SetHeader("Authorization", cred.AuthorizationHeader())
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Post(path)
	return c.classify(resp, err, http.MethodPost, path)
}

// putJSON issues an authenticated PUT with an optional JSON body.
func (c *Client) putJSON(ctx context.Context, cred domainauth.Credential, path string, body, out any) error {
	req := c.r.R().
		SetContext(ctx).
		SetHeader("Authorization", cred.AuthorizationHeader())
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Put(path)
	return c.classify(resp, err, http.MethodPut, path)
}

// delete issues an authenticated DELETE.
func (c *Client) delete(ctx context.Context, cred domainauth.Credential, path string) error {
	resp, err := c.r.R().
		SetContext(ctx).
		SetHeader("Authorization", cred.AuthorizationHeader()).
		Delete(path)
	return c.classify(resp, err, http.MethodDelete, path)
}

// classify converts a transport result into the port error taxonomy.
func (c *Client) classify(resp *resty.Response, err error, method, path string) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp == nil {
		return fmt.Errorf("%s %s: no response", method, path)
	}
	if resp.IsSuccess() {
		return nil
	}

	status := resp.StatusCode()
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %w", method, path, ports.ErrInvalidCredentials)
	case http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, ports.ErrForbidden)
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ports.ErrNotFound)
	}

	c.logger.Warn("backend request failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)
	return fmt.Errorf("%s %s: backend returned status %d", method, path, status)
}
