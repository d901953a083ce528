package client

import (
	"context"
	"net/http"

	"github.com/conectajovem/platform/internal/model"
)

// CreatePostRequest is the payload for POST /api/posts.
type CreatePostRequest struct {
	AuthorEmail string   `json:"author_email"`
	Content     string   `json:"content"`
	PostType    string   `json:"post_type,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	MediaURLs   []string `json:"media_urls,omitempty"`
	Visibility  string   `json:"visibility,omitempty"`
}

// ListPosts returns posts ordered by sortKey, typically
// "-created_date" for a newest-first feed. limit <= 0 means no limit.
func (c *Client) ListPosts(ctx context.Context, sortKey string, limit int) ([]model.Post, error) {
	var out []model.Post
	if err := c.do(ctx, "posts", "list", http.MethodGet, listPath("posts", sortKey, limit), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterPosts returns posts matching the predicate, ordered by
// sortKey when given.
func (c *Client) FilterPosts(ctx context.Context, where map[string]any, sortKey string) ([]model.Post, error) {
	var out []model.Post
	req := FilterRequest{Where: where, Sort: sortKey}
	if err := c.do(ctx, "posts", "filter", http.MethodPost, "/api/posts/filter", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePost publishes a post.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*model.Post, error) {
	var p model.Post
	if err := c.do(ctx, "posts", "create", http.MethodPost, "/api/posts", req, &p, http.StatusCreated); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePost removes a post by ID.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, "posts", "delete", http.MethodDelete, "/api/posts/"+id, nil, nil, http.StatusNoContent)
}
