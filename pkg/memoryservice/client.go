// Package memoryservice is a typed REST client for the remote
// memory/session service. Every operation is one short-lived HTTP
// round-trip: no connection state is held across calls, no retries are
// attempted, and every failure surfaces as a typed error instead of being
// logged and swallowed.
package memoryservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- User Management ---

// CreateUserRequest is the payload for CreateUser and UpdateUser.
type CreateUserRequest struct {
	UserID    string                 `json:"user_id"`
	Email     string                 `json:"email"`
	FirstName string                 `json:"first_name,omitempty"`
	LastName  string                 `json:"last_name,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, "POST", "/api/v1/user", req, &user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := c.do(ctx, "GET", "/api/v1/user/"+userID, nil, &user); err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return &user, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, "GET", "/api/v1/user", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, "PATCH", "/api/v1/user/"+req.UserID, req, &user); err != nil {
		return nil, fmt.Errorf("update user %s: %w", req.UserID, err)
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	if err := c.do(ctx, "DELETE", "/api/v1/user/"+userID, nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}

// --- Session Management ---

// AddSession creates a session for userID with a generated random
// identifier (uuid4, hex-encoded) and returns it.
func (c *Client) AddSession(ctx context.Context, userID string, metadata map[string]interface{}) (*Session, error) {
	session := Session{
		SessionID: strings.ReplaceAll(uuid.NewString(), "-", ""),
		UserID:    userID,
		Metadata:  metadata,
	}

	var created Session
	if err := c.do(ctx, "POST", "/api/v1/sessions", session, &created); err != nil {
		return nil, fmt.Errorf("add session: %w", err)
	}
	if created.SessionID == "" {
		created = session
	}
	return &created, nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	if err := c.do(ctx, "GET", "/api/v1/sessions/"+sessionID, nil, &session); err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (c *Client) GetSessionMessages(ctx context.Context, sessionID string) ([]MemoryMessage, error) {
	var messages []MemoryMessage
	if err := c.do(ctx, "GET", "/api/v1/sessions/"+sessionID+"/messages", nil, &messages); err != nil {
		return nil, fmt.Errorf("get session messages %s: %w", sessionID, err)
	}
	return messages, nil
}

// do performs one request/response cycle. 404 maps to ErrNotFound, other
// non-2xx statuses to *APIError, transport failures pass through wrapped.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	resBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{StatusCode: res.StatusCode, Body: string(resBytes)}
	}

	if out != nil && len(resBytes) > 0 {
		if err := json.Unmarshal(resBytes, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
