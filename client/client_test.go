package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conectajovem/platform/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestListPosts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/posts", r.URL.Path)
		require.Equal(t, "-created_date", r.URL.Query().Get("sort"))
		require.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"p1","author_email":"ana@x","content":"oi"}]`)
	})

	posts, err := c.ListPosts(context.Background(), "-created_date", 20)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "p1", posts[0].ID)
	require.Equal(t, "ana@x", posts[0].AuthorEmail)
}

func TestFilterUsersBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/users/filter", r.URL.Path)

		var req FilterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, map[string]any{"$in": []any{"ana@x", "bruno@x"}}, req.Where["email"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"u1","email":"ana@x"}]`)
	})

	users, err := c.FilterUsers(context.Background(), map[string]any{"email": In("ana@x", "bruno@x")})
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestStatusErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, model.ErrNotFound},
		{http.StatusBadRequest, model.ErrValidation},
		{http.StatusUnprocessableEntity, model.ErrValidation},
		{http.StatusConflict, model.ErrConflict},
		{http.StatusInternalServerError, model.ErrNetwork},
	}
	for _, tc := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			io.WriteString(w, `{"message":"nope"}`)
		})
		_, err := c.GetUser(context.Background(), "u1")
		require.ErrorIs(t, err, tc.want, "status %d", tc.status)
	}
}

func TestMeWithoutSession(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		u, err := c.Me(context.Background())
		require.NoError(t, err, "status %d", status)
		require.Nil(t, u, "status %d", status)
	}
}

func TestMeSendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"token":"tok-123"}`)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"u1","email":"ana@x"}`)
	})

	tok, err := c.Login(context.Background(), "ana@x")
	require.NoError(t, err)
	require.Equal(t, "tok-123", tok)

	u, err := c.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ana@x", u.Email)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUploadFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/uploads", r.URL.Path)
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "avatar.png", hdr.Filename)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, "img-bytes", string(data))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"file_url":"http://files.local/avatar.png"}`)
	})

	url, err := c.UploadFile(context.Background(), "avatar.png", strings.NewReader("img-bytes"))
	require.NoError(t, err)
	require.Equal(t, "http://files.local/avatar.png", url)
}

func TestUploadFileFailureWrapsUploadError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.UploadFile(context.Background(), "avatar.png", strings.NewReader("x"))
	require.ErrorIs(t, err, model.ErrUpload)
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close() // connection refused from here on
	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.ListPosts(context.Background(), "", 0)
	require.ErrorIs(t, err, model.ErrNetwork)
}

func TestCanceledContextShortCircuits(t *testing.T) {
	var hits int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { hits++ })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ListPosts(ctx, "", 0)
	require.True(t, errors.Is(err, context.Canceled))
	require.Zero(t, hits)
}

func TestListPathEncoding(t *testing.T) {
	require.Equal(t, "/api/jobs", listPath("jobs", "", 0))
	require.Equal(t, "/api/jobs?sort=-created_date", listPath("jobs", "-created_date", 0))
	require.Equal(t, "/api/jobs?limit=10", listPath("jobs", "", 10))
	require.Equal(t, "/api/jobs?sort=-created_date&limit=10", listPath("jobs", "-created_date", 10))
}
