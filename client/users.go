package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/conectajovem/platform/internal/model"
)

// Me returns the authenticated user, or nil when the client has no
// valid session. An absent session is not an error; callers render the
// login wall instead.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	requestsTotal.WithLabelValues("users", "me").Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/me", nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		failuresTotal.WithLabelValues("users", "me").Inc()
		return nil, fmt.Errorf("GET /api/me: %w: %v", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var u model.User
		if err := decodeBody(resp, &u); err != nil {
			return nil, err
		}
		return &u, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, nil
	default:
		failuresTotal.WithLabelValues("users", "me").Inc()
		return nil, statusError(http.MethodGet, "/api/me", resp)
	}
}

// UpdateMyUserData patches fields on the authenticated user's own
// record and returns the updated record.
func (c *Client) UpdateMyUserData(ctx context.Context, fields map[string]any) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, "users", "update_me", http.MethodPatch, "/api/me", fields, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser fetches a user by ID.
func (c *Client) GetUser(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, fmt.Errorf("user id is required")
	}
	var u model.User
	if err := c.do(ctx, "users", "get", http.MethodGet, "/api/users/"+id, nil, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns users ordered by sortKey ("-field" for descending).
func (c *Client) ListUsers(ctx context.Context, sortKey string, limit int) ([]model.User, error) {
	var out []model.User
	if err := c.do(ctx, "users", "list", http.MethodGet, listPath("users", sortKey, limit), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterUsers returns users matching the predicate, e.g.
// {"email": In(emails...)}.
func (c *Client) FilterUsers(ctx context.Context, where map[string]any) ([]model.User, error) {
	var out []model.User
	req := FilterRequest{Where: where}
	if err := c.do(ctx, "users", "filter", http.MethodPost, "/api/users/filter", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUserRequest is the payload for POST /api/users. Production
// accounts come from the identity provider; this exists for the
// emulator and seeding.
type CreateUserRequest struct {
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	UserType     string   `json:"user_type,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Location     string   `json:"location,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	ProfileImage string   `json:"profile_image,omitempty"`
}

// CreateUser registers a user record.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, "users", "create", http.MethodPost, "/api/users", req, &u, http.StatusCreated); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges an email for a bearer token. Only the local emulator
// implements it; production auth is the hosted identity provider's
// redirect flow (see internal/auth).
func (c *Client) Login(ctx context.Context, email string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]any{"email": email}
	if err := c.do(ctx, "auth", "login", http.MethodPost, "/api/auth/login", body, &out, http.StatusOK); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}
