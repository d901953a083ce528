// Package profile loads and edits user profile pages.
package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/conectajovem/platform/internal/model"
)

// API is the slice of the entity SDK the profile views need.
// Satisfied by *client.Client.
type API interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	FilterPosts(ctx context.Context, where map[string]any, sortKey string) ([]model.Post, error)
	UpdateMyUserData(ctx context.Context, fields map[string]any) (*model.User, error)
	UploadFile(ctx context.Context, name string, r io.Reader) (string, error)
}

// FollowChecker resolves the viewer's follow state towards the
// profile owner. Satisfied by *social.Service.
type FollowChecker interface {
	IsFollowing(ctx context.Context, followerEmail, followingEmail string) (bool, error)
}

// Service assembles profile pages and applies profile edits.
type Service struct {
	api    API
	social FollowChecker
}

func NewService(api API, social FollowChecker) *Service {
	return &Service{api: api, social: social}
}

// Page is the read-time snapshot backing a profile view.
type Page struct {
	User        model.User
	Posts       []model.Post
	IsMine      bool
	IsFollowing bool
}

// Load assembles the profile page for userID as seen by viewer. An
// empty userID (or the viewer's own ID) loads the viewer's profile.
func (s *Service) Load(ctx context.Context, viewer model.User, userID string) (*Page, error) {
	page := &Page{}

	if userID == "" || userID == viewer.ID {
		page.User = viewer
		page.IsMine = true
	} else {
		u, err := s.api.GetUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load profile %s: %w", userID, err)
		}
		page.User = *u
		following, err := s.social.IsFollowing(ctx, viewer.Email, u.Email)
		if err != nil {
			return nil, err
		}
		page.IsFollowing = following
	}

	posts, err := s.api.FilterPosts(ctx, map[string]any{"author_email": page.User.Email}, "-created_date")
	if err != nil {
		return nil, fmt.Errorf("load profile posts: %w", err)
	}
	page.Posts = posts
	return page, nil
}

// Update patches the authenticated user's own record.
func (s *Service) Update(ctx context.Context, fields map[string]any) (*model.User, error) {
	return s.api.UpdateMyUserData(ctx, fields)
}

// Image fields settable through SetImage.
const (
	ImageProfile = "profile_image"
	ImageCover   = "cover_image"
)

// SetImage uploads the file and stores its URL on the given image
// field of the authenticated user's record.
func (s *Service) SetImage(ctx context.Context, field, name string, r io.Reader) (*model.User, error) {
	if field != ImageProfile && field != ImageCover {
		return nil, fmt.Errorf("unknown image field %q: %w", field, model.ErrValidation)
	}
	url, err := s.api.UploadFile(ctx, name, r)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateMyUserData(ctx, map[string]any{field: url})
}
