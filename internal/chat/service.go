package chat

import (
	"context"
	"fmt"

	"github.com/conectajovem/platform/client"
	"github.com/conectajovem/platform/internal/model"
)

// API is the slice of the entity SDK the messaging views need.
// Satisfied by *client.Client.
type API interface {
	FilterMessages(ctx context.Context, where map[string]any) ([]model.ChatMessage, error)
	CreateMessage(ctx context.Context, req client.CreateMessageRequest) (*model.ChatMessage, error)
}

// Service loads conversation threads and sends messages. Messaging is
// reload-based: each call fetches a fresh snapshot, there is no live
// channel.
type Service struct {
	api API
}

func NewService(api API) *Service { return &Service{api: api} }

// Conversations returns the user's threads, most recently active
// first. Sent and received messages are fetched separately and merged;
// overlap between the two queries is deduplicated by message ID.
func (s *Service) Conversations(ctx context.Context, userEmail string) ([]Conversation, error) {
	sent, err := s.api.FilterMessages(ctx, map[string]any{"sender_email": userEmail})
	if err != nil {
		return nil, fmt.Errorf("load sent messages: %w", err)
	}
	received, err := s.api.FilterMessages(ctx, map[string]any{"receiver_email": userEmail})
	if err != nil {
		return nil, fmt.Errorf("load received messages: %w", err)
	}
	return Group(userEmail, append(sent, received...)), nil
}

// Send delivers a message from the user to the counterpart.
func (s *Service) Send(ctx context.Context, fromEmail, toEmail, text string) (*model.ChatMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("empty message: %w", model.ErrValidation)
	}
	return s.api.CreateMessage(ctx, client.CreateMessageRequest{
		SenderEmail:   fromEmail,
		ReceiverEmail: toEmail,
		Message:       text,
	})
}
