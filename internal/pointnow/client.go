// Package pointnow is the typed client for the PointNow backend REST API.
// Every outbound request in the application goes through Client.do, which is
// the single funnel for bearer-token injection and error normalization.
package pointnow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource supplies and receives session credentials. The session store
// implements it; a nil source means unauthenticated calls.
type TokenSource interface {
	AccessToken() string
	RefreshToken() string
	UpdateTokens(access, refresh string, expiresIn int) error
	Invalidate()
}

// APIError is the single error shape every failed call produces.
// Status 0 means the request never completed (network failure); any other
// value is the HTTP status the backend answered with.
type APIError struct {
	Status  int
	Message string
	Errors  map[string][]string
	cause   error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("pointnow: %s", e.Message)
	}
	return fmt.Sprintf("pointnow: %s (status %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error { return e.cause }

// errorEnvelope is the backend's failure body.
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// Client calls the PointNow backend. The zero value is not usable; construct
// with New and derive per-session copies with WithTokens.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New builds a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// WithTokens returns a shallow copy of the client bound to a token source.
// The underlying http.Client is shared.
func (c *Client) WithTokens(ts TokenSource) *Client {
	cp := *c
	cp.tokens = ts
	return &cp
}

// BaseURL exposes the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// do performs one backend call and decodes the response into out (which may
// be nil). 200 and 201 are success; everything else, including an unparseable
// body, becomes an *APIError. A 401 is retried exactly once after refreshing
// the session tokens; a second 401 invalidates the session.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	token := ""
	if c.tokens != nil {
		token = c.tokens.AccessToken()
	}

	err := c.once(ctx, method, path, query, payload, out, token)
	apiErr, ok := asAPIError(err)
	if !ok || apiErr.Status != http.StatusUnauthorized || c.tokens == nil {
		return err
	}

	refresh := c.tokens.RefreshToken()
	if refresh == "" {
		c.tokens.Invalidate()
		return err
	}

	if rerr := c.refreshTokens(ctx, refresh); rerr != nil {
		c.tokens.Invalidate()
		return err
	}

	err = c.once(ctx, method, path, query, payload, out, c.tokens.AccessToken())
	if apiErr, ok := asAPIError(err); ok && apiErr.Status == http.StatusUnauthorized {
		c.tokens.Invalidate()
	}
	return err
}

func (c *Client) once(ctx context.Context, method, path string, query url.Values, payload []byte, out any, token string) error {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Status: 0, Message: "network error", cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: "invalid response format", cause: err}
	}

	success := resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated
	if !success {
		var envelope errorEnvelope
		if err := json.Unmarshal(respBody, &envelope); err != nil {
			return &APIError{Status: resp.StatusCode, Message: "invalid response format", cause: err}
		}
		message := envelope.Message
		if message == "" {
			message = "request failed"
		}
		return &APIError{Status: resp.StatusCode, Message: message, Errors: envelope.Errors}
	}

	if out == nil {
		// Still verify the contract: success bodies must be JSON.
		var sink json.RawMessage
		if len(respBody) > 0 && json.Unmarshal(respBody, &sink) != nil {
			return &APIError{Status: resp.StatusCode, Message: "invalid response format"}
		}
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "invalid response format", cause: err}
	}
	return nil
}

// refreshTokens exchanges the stored refresh token for a new pair and
// persists it through the token source. Auth endpoints bypass do to avoid
// recursing into the retry path.
func (c *Client) refreshTokens(ctx context.Context, refreshToken string) error {
	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return fmt.Errorf("marshal refresh payload: %w", err)
	}

	var resp struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			ExpiresIn    int    `json:"expires_in"`
		} `json:"data"`
	}
	if err := c.once(ctx, http.MethodPost, "/auth/refresh", nil, payload, &resp, ""); err != nil {
		return err
	}
	if resp.Data.AccessToken == "" {
		return &APIError{Status: 0, Message: "refresh response missing access_token"}
	}

	return c.tokens.UpdateTokens(resp.Data.AccessToken, resp.Data.RefreshToken, resp.Data.ExpiresIn)
}

func asAPIError(err error) (*APIError, bool) {
	if err == nil {
		return nil, false
	}
	apiErr, ok := err.(*APIError)
	return apiErr, ok
}

// setIfPresent appends a query parameter only when the value is non-empty.
// Omitted filters must not appear as empty keys; the backend treats key= and
// absence differently.
func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// setIfPositive appends an integer query parameter only when it is set.
func setIfPositive(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, fmt.Sprintf("%d", value))
	}
}
