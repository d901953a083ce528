package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/conectajovem/platform/internal/model"
)

// UploadFile sends the file to the upload collaborator and returns the
// public URL it was stored under. Failures wrap model.ErrUpload.
func (c *Client) UploadFile(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	requestsTotal.WithLabelValues("uploads", "upload").Inc()

	req := c.rest.R().
		SetContext(ctx).
		SetFileReader("file", name, r)
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	resp, err := req.Post("/api/uploads")
	if err != nil {
		failuresTotal.WithLabelValues("uploads", "upload").Inc()
		return "", fmt.Errorf("upload %s: %w: %v", name, model.ErrUpload, err)
	}
	if resp.StatusCode() != http.StatusCreated {
		failuresTotal.WithLabelValues("uploads", "upload").Inc()
		return "", fmt.Errorf("upload %s: %w: status %d", name, model.ErrUpload, resp.StatusCode())
	}

	var out struct {
		FileURL string `json:"file_url"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("upload %s: decode response: %w", name, err)
	}
	return out.FileURL, nil
}
