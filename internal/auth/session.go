// Package auth resolves the viewing user for a page render.
// Authentication itself is delegated to the hosted identity provider;
// this package only asks the backend who the caller is and builds the
// login redirect when nobody is.
package auth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/conectajovem/platform/internal/model"
)

// API is the slice of the entity SDK the session needs. Satisfied by
// *client.Client.
type API interface {
	Me(ctx context.Context) (*model.User, error)
}

// Session resolves the current user once per page render. The resolved
// user is passed explicitly into each view service; there is no global
// current-user state.
type Session struct {
	api      API
	loginURL string
	log      zerolog.Logger
}

func NewSession(api API, loginURL string, log zerolog.Logger) *Session {
	return &Session{api: api, loginURL: loginURL, log: log}
}

// Current returns the authenticated user, or nil when there is no
// session. Transport failures are logged and reported as no session so
// the caller falls back to the login wall instead of crashing.
func (s *Session) Current(ctx context.Context) *model.User {
	u, err := s.api.Me(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("authentication check failed")
		return nil
	}
	return u
}

// LoginURL builds the hosted-login redirect carrying the page to
// return to after authentication.
func (s *Session) LoginURL(callback string) string {
	return fmt.Sprintf("%s?from_url=%s", s.loginURL, url.QueryEscape(callback))
}
