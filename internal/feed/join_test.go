package feed

import (
	"reflect"
	"testing"

	"github.com/conectajovem/platform/internal/model"
)

func TestAuthorEmails_DistinctFirstSeen(t *testing.T) {
	posts := []model.Post{
		{ID: "1", AuthorEmail: "ana@example.com"},
		{ID: "2", AuthorEmail: "bruno@example.com"},
		{ID: "3", AuthorEmail: "ana@example.com"},
	}
	got := AuthorEmails(posts)
	want := []string{"ana@example.com", "bruno@example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestJoinAuthors(t *testing.T) {
	posts := []model.Post{
		{ID: "1", AuthorEmail: "ana@example.com"},
		{ID: "2", AuthorEmail: "ghost@example.com"},
	}
	users := map[string]model.User{
		"ana@example.com": {ID: "u1", Email: "ana@example.com", FullName: "Ana Souza"},
	}

	got := JoinAuthors(posts, users)

	for i, p := range got {
		if p.Author == nil {
			t.Fatalf("post %d has nil author", i)
		}
	}
	if got[0].Author.FullName != "Ana Souza" {
		t.Fatalf("resolved author: %+v", got[0].Author)
	}
	if got[1].Author.FullName != UnknownAuthorName || got[1].Author.Email != "ghost@example.com" {
		t.Fatalf("placeholder author: %+v", got[1].Author)
	}
	if len(got) != len(posts) {
		t.Fatalf("posts dropped: %d != %d", len(got), len(posts))
	}
	if posts[0].Author != nil {
		t.Fatal("input slice mutated")
	}
}

func TestUsersByEmail(t *testing.T) {
	users := []model.User{
		{Email: "ana@example.com", FullName: "Ana"},
		{Email: "bruno@example.com", FullName: "Bruno"},
	}
	m := UsersByEmail(users)
	if len(m) != 2 || m["bruno@example.com"].FullName != "Bruno" {
		t.Fatalf("got %v", m)
	}
}
