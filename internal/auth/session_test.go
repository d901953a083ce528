package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/conectajovem/platform/internal/model"
)

type fakeAPI struct {
	user *model.User
	err  error
}

func (f *fakeAPI) Me(ctx context.Context) (*model.User, error) { return f.user, f.err }

func TestSession_Current(t *testing.T) {
	want := &model.User{ID: "u1", Email: "ana@x"}
	s := NewSession(&fakeAPI{user: want}, "http://localhost/login", zerolog.Nop())
	if got := s.Current(context.Background()); got != want {
		t.Fatalf("Current = %+v, want %+v", got, want)
	}
}

func TestSession_CurrentAnonymous(t *testing.T) {
	// No session resolves to a nil user, same as the backend behaves.
	s := NewSession(&fakeAPI{}, "http://localhost/login", zerolog.Nop())
	if got := s.Current(context.Background()); got != nil {
		t.Fatalf("Current = %+v, want nil", got)
	}
}

func TestSession_CurrentSwallowsTransportFailure(t *testing.T) {
	s := NewSession(&fakeAPI{err: errors.New("connection refused")}, "http://localhost/login", zerolog.Nop())
	if got := s.Current(context.Background()); got != nil {
		t.Fatalf("Current = %+v, want nil on transport failure", got)
	}
}

func TestSession_LoginURL(t *testing.T) {
	s := NewSession(&fakeAPI{}, "http://localhost/login", zerolog.Nop())
	got := s.LoginURL("http://localhost:3000/feed?tab=all")
	want := "http://localhost/login?from_url=http%3A%2F%2Flocalhost%3A3000%2Ffeed%3Ftab%3Dall"
	if got != want {
		t.Fatalf("LoginURL = %q, want %q", got, want)
	}
}
