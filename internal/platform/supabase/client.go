package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultRequestTimeout = 15 * time.Second

// Client talks to a GoTrue-compatible identity provider over HTTP.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a provider client for the given base URL and
// publishable API key.
func NewClient(baseURL, anonKey string, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("provider URL cannot be empty")
	}
	if anonKey == "" {
		return nil, errors.New("anon key cannot be empty")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger.With("component", "supabase_client"),
	}, nil
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// providerError is the error shape GoTrue responds with.
type providerError struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
}

func (e providerError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.ErrorDescription
}

// SignUp registers a new account and returns its session. Providers with
// email confirmation disabled sign the user straight in.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*Session, error) {
	body := struct {
		credentialsBody
		Data map[string]interface{} `json:"data,omitempty"`
	}{
		credentialsBody: credentialsBody{Email: email, Password: password},
		Data:            metadata,
	}

	session, err := c.postForSession(ctx, "/auth/v1/signup", body)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "account registered", "user_id", session.User.ID)
	return session, nil
}

// SignIn exchanges an email/password pair for a session using the
// password grant.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := credentialsBody{Email: email, Password: password}

	session, err := c.postForSession(ctx, "/auth/v1/token?grant_type=password", body)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "sign-in succeeded", "user_id", session.User.ID)
	return session, nil
}

// SignOut revokes the session's refresh token at the provider. A failure
// here is logged but not fatal: the caller clears local state regardless.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: logout returned status %d", ErrProviderUnavailable, resp.StatusCode)
	}
	return nil
}

// postForSession sends a JSON body to the given auth endpoint and decodes
// the session from the response, mapping provider errors to this
// package's sentinel errors.
func (c *Client) postForSession(ctx context.Context, path string, body interface{}) (*Session, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrProviderUnavailable, err)
	}

	if resp.StatusCode >= 300 {
		return nil, c.mapErrorResponse(resp.StatusCode, respBody)
	}

	var session Session
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("%w: malformed session response: %v", ErrProviderUnavailable, err)
	}

	// Backfill the user from token claims when the response omits it.
	if session.User.ID == "" && session.AccessToken != "" {
		user, err := UserFromToken(session.AccessToken)
		if err != nil {
			return nil, err
		}
		session.User = user
	}

	return &session, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	return req, nil
}

func (c *Client) mapErrorResponse(status int, body []byte) error {
	var pe providerError
	_ = json.Unmarshal(body, &pe)

	switch {
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		if pe.ErrorCode == "user_already_exists" || strings.Contains(pe.text(), "already registered") {
			return ErrEmailTaken
		}
		return ErrInvalidCredentials
	case status == http.StatusUnprocessableEntity:
		if pe.ErrorCode == "user_already_exists" {
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, pe.text())
	default:
		return fmt.Errorf("%w: status %d: %s", ErrProviderUnavailable, status, pe.text())
	}
}
