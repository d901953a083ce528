package client

import (
	"context"
	"net/http"

	"github.com/conectajovem/platform/internal/model"
)

// CreateMessageRequest is the payload for POST /api/messages.
type CreateMessageRequest struct {
	SenderEmail   string `json:"sender_email"`
	ReceiverEmail string `json:"receiver_email"`
	Message       string `json:"message"`
}

// FilterMessages returns chat messages matching the predicate, e.g.
// {"sender_email": me} or {"receiver_email": me}.
func (c *Client) FilterMessages(ctx context.Context, where map[string]any) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	req := FilterRequest{Where: where}
	if err := c.do(ctx, "messages", "filter", http.MethodPost, "/api/messages/filter", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMessage sends a chat message.
func (c *Client) CreateMessage(ctx context.Context, req CreateMessageRequest) (*model.ChatMessage, error) {
	var m model.ChatMessage
	if err := c.do(ctx, "messages", "create", http.MethodPost, "/api/messages", req, &m, http.StatusCreated); err != nil {
		return nil, err
	}
	return &m, nil
}
