package feed

import (
	"context"
	"fmt"

	"github.com/conectajovem/platform/client"
	"github.com/conectajovem/platform/internal/model"
)

// DefaultLimit is the feed page size.
const DefaultLimit = 20

// API is the slice of the entity SDK the feed needs. Satisfied by
// *client.Client.
type API interface {
	ListPosts(ctx context.Context, sortKey string, limit int) ([]model.Post, error)
	FilterUsers(ctx context.Context, where map[string]any) ([]model.User, error)
	CreatePost(ctx context.Context, req client.CreatePostRequest) (*model.Post, error)
}

// Service loads and publishes feed posts.
type Service struct {
	api API
}

func NewService(api API) *Service { return &Service{api: api} }

// Load returns the newest posts with their authors joined in. Authors
// are fetched in one batch over the distinct author emails.
func (s *Service) Load(ctx context.Context, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	posts, err := s.api.ListPosts(ctx, "-created_date", limit)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}
	if len(posts) == 0 {
		return posts, nil
	}

	emails := AuthorEmails(posts)
	users, err := s.api.FilterUsers(ctx, map[string]any{"email": client.In(emails...)})
	if err != nil {
		return nil, fmt.Errorf("load feed authors: %w", err)
	}
	return JoinAuthors(posts, UsersByEmail(users)), nil
}

// Draft is the author-independent part of a new post.
type Draft struct {
	Content   string
	PostType  string
	Tags      []string
	MediaURLs []string
}

// Create publishes a post on behalf of the author.
func (s *Service) Create(ctx context.Context, authorEmail string, d Draft) (*model.Post, error) {
	req := client.CreatePostRequest{
		AuthorEmail: authorEmail,
		Content:     d.Content,
		PostType:    d.PostType,
		Tags:        d.Tags,
		MediaURLs:   d.MediaURLs,
		Visibility:  "public",
	}
	return s.api.CreatePost(ctx, req)
}

// Share republishes another user's post as a text post crediting the
// original author.
func (s *Service) Share(ctx context.Context, sharerEmail string, original model.Post) (*model.Post, error) {
	name := original.AuthorEmail
	if original.Author != nil && original.Author.FullName != "" {
		name = original.Author.FullName
	}
	req := client.CreatePostRequest{
		AuthorEmail: sharerEmail,
		Content:     fmt.Sprintf("Compartilhado de %s: %s", name, original.Content),
		PostType:    "text",
		Visibility:  "public",
	}
	return s.api.CreatePost(ctx, req)
}
