package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/conectajovem/platform/internal/model"
)

// Health probes the backend's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET /health: %w: %v", model.ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET /health: %w: status %d", model.ErrNetwork, resp.StatusCode)
	}
	return nil
}
