// Package client is a typed HTTP client for the workdesk API, used by the
// command line tool. It owns the local session tracker and login lockout,
// so authentication state lives client-side while the server stays
// stateless between requests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/workdesk/workdesk/internal/client/session"
)

var (
	// ErrLockedOut is returned by Login while the local lockout is in force.
	ErrLockedOut = errors.New("too many failed login attempts")
	// ErrUnauthenticated is returned when no live session exists.
	ErrUnauthenticated = errors.New("not logged in")
)

type Client struct {
	baseURL string
	http    *http.Client
	tracker *session.Tracker
	lockout *session.Lockout
}

func New(baseURL string, tracker *session.Tracker, lockout *session.Lockout) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tracker: tracker,
		lockout: lockout,
	}
}

// APIError carries the server's problem response.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Detail)
}

type problemBody struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tracker.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var problem problemBody
		_ = json.NewDecoder(resp.Body).Decode(&problem)
		return &APIError{Status: resp.StatusCode, Detail: problem.Detail}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type RegisterRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	SecurityQuestion string `json:"securityQuestion"`
	SecurityAnswer   string `json:"securityAnswer"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/register", req, nil)
}

// Login authenticates against the server. The local lockout is consulted
// before any network call: while locked the server is never contacted.
func (c *Client) Login(ctx context.Context, email, password string) error {
	if c.lockout.IsLocked() {
		return fmt.Errorf("%w: try again in %s", ErrLockedOut, c.lockout.Remaining().Round(time.Second))
	}
	body := map[string]string{"email": email, "password": password}
	var result struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/login", body, &result)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusNotFound) {
			_, _ = c.lockout.RecordFailure()
		}
		return err
	}
	c.lockout.Reset()
	return c.tracker.SetAuth(result.Token)
}

// Verify asks the server to validate the stored token and returns the
// authenticated user id.
func (c *Client) Verify(ctx context.Context) (string, error) {
	if _, ok := c.tracker.Token(); !ok {
		return "", ErrUnauthenticated
	}
	var result struct {
		UserID string `json:"userId"`
	}
	if err := c.do(ctx, http.MethodGet, "/verify", nil, &result); err != nil {
		return "", err
	}
	return result.UserID, nil
}

func (c *Client) Logout() {
	c.tracker.Logout()
}

// CheckEmail starts the password reset flow and returns the account's
// security question key.
func (c *Client) CheckEmail(ctx context.Context, email string) (string, error) {
	var result struct {
		SecurityQuestion string `json:"securityQuestion"`
	}
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, "/forgot-password/check-email", body, &result); err != nil {
		return "", err
	}
	return result.SecurityQuestion, nil
}

// VerifyAnswer exchanges a correct security answer for a reset token.
func (c *Client) VerifyAnswer(ctx context.Context, email, answer string) (string, error) {
	var result struct {
		ResetToken string `json:"resetToken"`
	}
	body := map[string]string{"email": email, "securityAnswer": answer}
	if err := c.do(ctx, http.MethodPost, "/forgot-password/verify-answer", body, &result); err != nil {
		return "", err
	}
	return result.ResetToken, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return c.do(ctx, http.MethodPost, "/forgot-password/reset", body, nil)
}

// ListRecords fetches a record collection as raw JSON documents. The
// resource is one of departments, employees, events or projects.
func (c *Client) ListRecords(ctx context.Context, resource string) ([]map[string]any, error) {
	var records []map[string]any
	if err := c.do(ctx, http.MethodGet, "/"+resource, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SessionStatus reports whether a live local session exists and the whole
// minutes remaining in it.
func (c *Client) SessionStatus() (bool, int) {
	if !c.tracker.IsAuthenticated() {
		return false, 0
	}
	minutes, _ := c.tracker.RemainingTime()
	return true, minutes
}
