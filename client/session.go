package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/api"
	"github.com/Pavan19102006/Jagadeesh-project/client/store"
)

// Login authenticates and persists the returned token and user profile, so
// later calls carry the credential.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	resp, err := api.Login(ctx, c, LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if err := c.saveSession(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Register creates a student account and logs it in. A confirmation
// mismatch fails with "Passwords do not match" before any request is sent.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	resp, err := api.Register(ctx, c, req)
	if err != nil {
		return nil, err
	}
	if err := c.saveSession(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) saveSession(resp *AuthResponse) error {
	user, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := c.tokens.Set(store.TokenKey, resp.Token); err != nil {
		return err
	}
	return c.tokens.Set(store.UserKey, string(user))
}

// Logout forgets the stored token and user profile. No request is sent.
func (c *Client) Logout() error {
	if err := c.tokens.Remove(store.TokenKey); err != nil {
		return err
	}
	return c.tokens.Remove(store.UserKey)
}

// Token returns the stored credential, or "" when logged out.
func (c *Client) Token() (string, error) {
	return c.tokens.Get(store.TokenKey)
}

// CurrentUser returns the stored profile, or nil when logged out.
func (c *Client) CurrentUser() (*User, error) {
	raw, err := c.tokens.Get(store.UserKey)
	if err != nil || raw == "" {
		return nil, err
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

// HomePath is the landing route for u: /admin for administrators,
// /student for everyone else.
func HomePath(u *User) string {
	if u != nil && u.IsAdmin() {
		return "/admin"
	}
	return "/student"
}
