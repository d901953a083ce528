// Package client is the typed Go SDK for the Conecta entity API. It
// wraps the backend's generic CRUD surface (list, filter, get, create,
// delete, updateMyUserData) with per-entity methods.
//
// The SDK never retries on its own; a failed call surfaces as an error
// wrapping one of the model sentinel errors and the caller decides
// whether to repeat it. Timeouts belong to the injected http.Client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/conectajovem/platform/internal/model"
)

// Client talks to one Conecta backend instance.
type Client struct {
	baseURL string
	http    *http.Client
	rest    *resty.Client
	token   string
}

// New builds a Client for the given base URL, e.g.
// "https://api.conectajovem.app" or a local emulator address.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	c.rest = resty.NewWithClient(c.http).SetBaseURL(c.baseURL)
	return c, nil
}

// debugTransport dumps request/response pairs when CONECTA_DEBUG or
// DEBUG is set.
type debugTransport struct{ base http.RoundTripper }

func debugEnabled() bool {
	return os.Getenv("CONECTA_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugEnabled() {
		if dump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(dump)).Msg("HTTP request")
		}
	}
	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugEnabled() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}
	if debugEnabled() {
		if dump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(dump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// do issues one JSON request and decodes the response into out (when
// out is non-nil). HTTP error statuses are mapped onto the model
// sentinel errors so callers can use errors.Is.
func (c *Client) do(ctx context.Context, entity, op, method, path string, body, out any, want int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	requestsTotal.WithLabelValues(entity, op).Inc()

	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		failuresTotal.WithLabelValues(entity, op).Inc()
		return fmt.Errorf("%s %s: %w: %v", method, path, model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		failuresTotal.WithLabelValues(entity, op).Inc()
		return statusError(method, path, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

func decodeBody(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(method, path string, resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	var kind error
	switch resp.StatusCode {
	case http.StatusNotFound:
		kind = model.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = model.ErrValidation
	case http.StatusConflict:
		kind = model.ErrConflict
	default:
		kind = model.ErrNetwork
	}
	if payload.Message != "" {
		return fmt.Errorf("%s %s: %w: %s", method, path, kind, payload.Message)
	}
	return fmt.Errorf("%s %s: %w: status %d", method, path, kind, resp.StatusCode)
}

// FilterRequest is the wire payload of POST /api/{entity}/filter.
// Where supports equality and {"$in": [...]} per field.
type FilterRequest struct {
	Where map[string]any `json:"where"`
	Sort  string         `json:"sort,omitempty"`
}

// In builds an {"$in": values} predicate value.
func In(values ...string) any {
	return map[string]any{"$in": values}
}

func listPath(entity, sortKey string, limit int) string {
	path := "/api/" + entity
	sep := "?"
	if sortKey != "" {
		path += sep + "sort=" + sortKey
		sep = "&"
	}
	if limit > 0 {
		path += fmt.Sprintf("%slimit=%d", sep, limit)
	}
	return path
}
