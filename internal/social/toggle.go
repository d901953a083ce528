// Package social implements the follow graph interactions, including
// the optimistic follow/unfollow toggle used by profile views.
package social

import (
	"context"
	"errors"
)

// ErrSelfFollow is returned when a user tries to follow themselves.
// No backend call is made in that case.
var ErrSelfFollow = errors.New("cannot follow yourself")

// ErrTogglePending is returned when Toggle is called while a previous
// authoritative call is still outstanding.
var ErrTogglePending = errors.New("follow toggle already in flight")

// EdgeWriter issues the authoritative follow-edge mutations. Satisfied
// by *social.Service (and by fakes in tests).
type EdgeWriter interface {
	Follow(ctx context.Context, followerEmail, followingEmail string) error
	Unfollow(ctx context.Context, followerEmail, followingEmail string) error
}

// Toggle tracks the locally observed follow state for one
// (follower, followee) pair. The local state flips before the
// authoritative call resolves and is reverted if the call fails, so
// the observed state never silently diverges from the backend.
//
// Toggle is intended for single-threaded view code and is not safe
// for concurrent use.
type Toggle struct {
	edges          EdgeWriter
	followerEmail  string
	followingEmail string
	following      bool
	pending        bool
}

// NewToggle builds a toggle seeded with the authoritative state read
// at page load.
func NewToggle(edges EdgeWriter, followerEmail, followingEmail string, following bool) *Toggle {
	return &Toggle{
		edges:          edges,
		followerEmail:  followerEmail,
		followingEmail: followingEmail,
		following:      following,
	}
}

// Following reports the locally observed state, including the
// optimistic value while a call is outstanding.
func (t *Toggle) Following() bool { return t.following }

// Pending reports whether an authoritative call is outstanding.
func (t *Toggle) Pending() bool { return t.pending }

// Do flips the local state, issues exactly one authoritative
// operation, and reverts the local state if that operation fails.
func (t *Toggle) Do(ctx context.Context) error {
	if t.followerEmail == t.followingEmail {
		return ErrSelfFollow
	}
	if t.pending {
		return ErrTogglePending
	}

	prev := t.following
	t.following = !prev
	t.pending = true
	defer func() { t.pending = false }()

	var err error
	if prev {
		err = t.edges.Unfollow(ctx, t.followerEmail, t.followingEmail)
	} else {
		err = t.edges.Follow(ctx, t.followerEmail, t.followingEmail)
	}
	if err != nil {
		t.following = prev
		return err
	}
	return nil
}
