package profile

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/conectajovem/platform/internal/model"
)

type fakeAPI struct {
	users   map[string]*model.User
	posts   map[string][]model.Post
	updates []map[string]any
	uploads []string
}

func (f *fakeAPI) GetUser(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return u, nil
}

func (f *fakeAPI) FilterPosts(ctx context.Context, where map[string]any, sortKey string) ([]model.Post, error) {
	email, _ := where["author_email"].(string)
	return f.posts[email], nil
}

func (f *fakeAPI) UpdateMyUserData(ctx context.Context, fields map[string]any) (*model.User, error) {
	f.updates = append(f.updates, fields)
	return &model.User{ID: "me", Email: "ana@x"}, nil
}

func (f *fakeAPI) UploadFile(ctx context.Context, name string, r io.Reader) (string, error) {
	f.uploads = append(f.uploads, name)
	return "http://files.local/" + name, nil
}

type fakeFollows struct {
	following map[string]bool
}

func (f *fakeFollows) IsFollowing(ctx context.Context, follower, following string) (bool, error) {
	return f.following[follower+"->"+following], nil
}

func TestService_LoadOwnProfile(t *testing.T) {
	viewer := model.User{ID: "u1", Email: "ana@x", FullName: "Ana Souza"}
	api := &fakeAPI{posts: map[string][]model.Post{
		"ana@x": {{ID: "p1", AuthorEmail: "ana@x"}},
	}}
	svc := NewService(api, &fakeFollows{})

	for _, userID := range []string{"", "u1"} {
		page, err := svc.Load(context.Background(), viewer, userID)
		if err != nil {
			t.Fatalf("Load(%q): %v", userID, err)
		}
		if !page.IsMine || page.IsFollowing {
			t.Fatalf("Load(%q): IsMine=%v IsFollowing=%v", userID, page.IsMine, page.IsFollowing)
		}
		if len(page.Posts) != 1 || page.Posts[0].ID != "p1" {
			t.Fatalf("Load(%q) posts: %+v", userID, page.Posts)
		}
	}
}

func TestService_LoadOtherProfileResolvesFollowState(t *testing.T) {
	viewer := model.User{ID: "u1", Email: "ana@x"}
	api := &fakeAPI{users: map[string]*model.User{
		"u2": {ID: "u2", Email: "bruno@x", FullName: "Bruno Lima"},
	}}
	follows := &fakeFollows{following: map[string]bool{"ana@x->bruno@x": true}}
	svc := NewService(api, follows)

	page, err := svc.Load(context.Background(), viewer, "u2")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if page.IsMine {
		t.Fatal("other profile flagged IsMine")
	}
	if !page.IsFollowing {
		t.Fatal("follow edge not reflected on page")
	}
	if page.User.FullName != "Bruno Lima" {
		t.Fatalf("user: %+v", page.User)
	}
}

func TestService_LoadUnknownUser(t *testing.T) {
	svc := NewService(&fakeAPI{}, &fakeFollows{})
	_, err := svc.Load(context.Background(), model.User{ID: "u1"}, "missing")
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestService_SetImage(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, &fakeFollows{})

	_, err := svc.SetImage(context.Background(), "banner", "x.png", strings.NewReader("img"))
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation for unknown field", err)
	}
	if len(api.uploads) != 0 {
		t.Fatalf("uploaded %d files before validation, want none", len(api.uploads))
	}

	if _, err := svc.SetImage(context.Background(), ImageProfile, "avatar.png", strings.NewReader("img")); err != nil {
		t.Fatalf("SetImage: %v", err)
	}
	if len(api.updates) != 1 {
		t.Fatalf("updates: %d", len(api.updates))
	}
	if got := api.updates[0][ImageProfile]; got != "http://files.local/avatar.png" {
		t.Fatalf("stored url: %v", got)
	}
}
