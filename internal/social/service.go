package social

import (
	"context"
	"fmt"

	"github.com/conectajovem/platform/internal/model"
)

// API is the slice of the entity SDK the follow graph needs.
// Satisfied by *client.Client.
type API interface {
	FilterFollows(ctx context.Context, where map[string]any) ([]model.Follow, error)
	CreateFollow(ctx context.Context, followerEmail, followingEmail string) (*model.Follow, error)
	DeleteFollow(ctx context.Context, id string) error
}

// Service reads and mutates follow edges.
type Service struct {
	api API
}

func NewService(api API) *Service { return &Service{api: api} }

func edgeWhere(followerEmail, followingEmail string) map[string]any {
	return map[string]any{
		"follower_email":  followerEmail,
		"following_email": followingEmail,
	}
}

// IsFollowing reports whether the edge exists.
func (s *Service) IsFollowing(ctx context.Context, followerEmail, followingEmail string) (bool, error) {
	edges, err := s.api.FilterFollows(ctx, edgeWhere(followerEmail, followingEmail))
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return len(edges) > 0, nil
}

// Follow creates the edge.
func (s *Service) Follow(ctx context.Context, followerEmail, followingEmail string) error {
	if _, err := s.api.CreateFollow(ctx, followerEmail, followingEmail); err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	return nil
}

// Unfollow locates the edge and deletes it. A missing edge is not an
// error; the desired end state already holds.
func (s *Service) Unfollow(ctx context.Context, followerEmail, followingEmail string) error {
	edges, err := s.api.FilterFollows(ctx, edgeWhere(followerEmail, followingEmail))
	if err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	if len(edges) == 0 {
		return nil
	}
	if err := s.api.DeleteFollow(ctx, edges[0].ID); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

// NewToggle builds an optimistic toggle bound to this service.
func (s *Service) NewToggle(followerEmail, followingEmail string, following bool) *Toggle {
	return NewToggle(s, followerEmail, followingEmail, following)
}
