package client

import (
	"context"
	"net/http"

	"github.com/conectajovem/platform/internal/model"
)

// FilterFollows returns follow edges matching the predicate, e.g.
// {"follower_email": a, "following_email": b}.
func (c *Client) FilterFollows(ctx context.Context, where map[string]any) ([]model.Follow, error) {
	var out []model.Follow
	req := FilterRequest{Where: where}
	if err := c.do(ctx, "follows", "filter", http.MethodPost, "/api/follows/filter", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFollow creates the (follower, following) edge.
func (c *Client) CreateFollow(ctx context.Context, followerEmail, followingEmail string) (*model.Follow, error) {
	body := map[string]any{
		"follower_email":  followerEmail,
		"following_email": followingEmail,
	}
	var f model.Follow
	if err := c.do(ctx, "follows", "create", http.MethodPost, "/api/follows", body, &f, http.StatusCreated); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFollow removes a follow edge by ID.
func (c *Client) DeleteFollow(ctx context.Context, id string) error {
	return c.do(ctx, "follows", "delete", http.MethodDelete, "/api/follows/"+id, nil, nil, http.StatusNoContent)
}
