// Package storetest is a compliance suite run against every store
// driver.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/conectajovem/platform/internal/model"
	"github.com/conectajovem/platform/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store
// implementation. makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	newRec := func(fields store.Record) store.Record {
		fields["id"] = uuid.New().String()
		fields["created_date"] = time.Now().UTC().Format(time.RFC3339Nano)
		return fields
	}

	// Create + Get round trip
	p1 := newRec(store.Record{"author_email": "a@example.test", "content": "first"})
	if err := s.Create(ctx, store.EntityPosts, p1); err != nil {
		t.Fatalf("Create p1: %v", err)
	}
	got, err := s.Get(ctx, store.EntityPosts, p1["id"].(string))
	if err != nil || got["content"] != "first" {
		t.Fatalf("Get p1: got=%v err=%v", got, err)
	}

	// Get of unknown id is ErrNotFound
	if _, err := s.Get(ctx, store.EntityPosts, "absent"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get absent: err=%v, want ErrNotFound", err)
	}

	// List ordering: newest first under "-created_date"
	p2 := newRec(store.Record{"author_email": "b@example.test", "content": "second"})
	if err := s.Create(ctx, store.EntityPosts, p2); err != nil {
		t.Fatalf("Create p2: %v", err)
	}
	lst, err := store.List(ctx, s, store.EntityPosts, "-created_date", 0)
	if err != nil || len(lst) != 2 {
		t.Fatalf("List: n=%d err=%v", len(lst), err)
	}
	if lst[0]["content"] != "second" {
		t.Fatalf("List order: first=%v, want second", lst[0]["content"])
	}
	if lst, _ := store.List(ctx, s, store.EntityPosts, "-created_date", 1); len(lst) != 1 {
		t.Fatalf("List limit: n=%d, want 1", len(lst))
	}

	// Filter equality and $in
	byAuthor, err := store.Filter(ctx, s, store.EntityPosts, store.Record{"author_email": "a@example.test"}, "")
	if err != nil || len(byAuthor) != 1 || byAuthor[0]["content"] != "first" {
		t.Fatalf("Filter equality: got=%v err=%v", byAuthor, err)
	}
	both, err := store.Filter(ctx, s, store.EntityPosts,
		store.Record{"author_email": map[string]any{"$in": []any{"a@example.test", "b@example.test"}}}, "created_date")
	if err != nil || len(both) != 2 {
		t.Fatalf("Filter $in: n=%d err=%v", len(both), err)
	}

	// Entities are isolated from each other
	if recs, err := s.All(ctx, store.EntityJobs); err != nil || len(recs) != 0 {
		t.Fatalf("All jobs: n=%d err=%v", len(recs), err)
	}

	// Update replaces the stored record in place
	p1["content"] = "first, edited"
	if err := s.Update(ctx, store.EntityPosts, p1["id"].(string), p1); err != nil {
		t.Fatalf("Update p1: %v", err)
	}
	if got, err := s.Get(ctx, store.EntityPosts, p1["id"].(string)); err != nil || got["content"] != "first, edited" {
		t.Fatalf("Get after Update: got=%v err=%v", got, err)
	}
	if err := s.Update(ctx, store.EntityPosts, "absent", p1); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Update absent: err=%v, want ErrNotFound", err)
	}

	// Delete removes exactly the addressed record
	if err := s.Delete(ctx, store.EntityPosts, p1["id"].(string)); err != nil {
		t.Fatalf("Delete p1: %v", err)
	}
	if err := s.Delete(ctx, store.EntityPosts, p1["id"].(string)); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Delete twice: err=%v, want ErrNotFound", err)
	}
	if lst, _ := store.List(ctx, s, store.EntityPosts, "created_date", 0); len(lst) != 1 {
		t.Fatalf("List after delete: n=%d, want 1", len(lst))
	}

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
