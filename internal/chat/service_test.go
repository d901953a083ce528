package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/conectajovem/platform/client"
	"github.com/conectajovem/platform/internal/model"
)

type fakeAPI struct {
	bySender   map[string][]model.ChatMessage
	byReceiver map[string][]model.ChatMessage
	sent       []client.CreateMessageRequest
}

func (f *fakeAPI) FilterMessages(ctx context.Context, where map[string]any) ([]model.ChatMessage, error) {
	if email, ok := where["sender_email"].(string); ok {
		return f.bySender[email], nil
	}
	if email, ok := where["receiver_email"].(string); ok {
		return f.byReceiver[email], nil
	}
	return nil, nil
}

func (f *fakeAPI) CreateMessage(ctx context.Context, req client.CreateMessageRequest) (*model.ChatMessage, error) {
	f.sent = append(f.sent, req)
	return &model.ChatMessage{ID: "m-new", SenderEmail: req.SenderEmail, ReceiverEmail: req.ReceiverEmail, Message: req.Message}, nil
}

func TestService_ConversationsMergesAndDedupes(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	outbound := model.ChatMessage{
		ID: "m1", SenderEmail: "ana@x", ReceiverEmail: "bruno@x",
		Message: "oi", CreatedDate: base,
	}
	inbound := model.ChatMessage{
		ID: "m2", SenderEmail: "bruno@x", ReceiverEmail: "ana@x",
		Message: "oi!", CreatedDate: base.Add(time.Minute),
	}
	api := &fakeAPI{
		// m1 shows up in both snapshots when the counterpart filter
		// overlaps; the service must not double it.
		bySender:   map[string][]model.ChatMessage{"ana@x": {outbound}},
		byReceiver: map[string][]model.ChatMessage{"ana@x": {inbound, outbound}},
	}
	svc := NewService(api)

	convos, err := svc.Conversations(context.Background(), "ana@x")
	if err != nil {
		t.Fatalf("Conversations: %v", err)
	}
	if len(convos) != 1 {
		t.Fatalf("conversations: %d, want 1", len(convos))
	}
	c := convos[0]
	if c.OtherUserEmail != "bruno@x" {
		t.Fatalf("counterpart: %q", c.OtherUserEmail)
	}
	if len(c.Messages) != 2 {
		t.Fatalf("messages: %d, want 2 after dedup", len(c.Messages))
	}
	if c.Messages[0].ID != "m1" || c.Messages[1].ID != "m2" {
		t.Fatalf("thread order: %q, %q", c.Messages[0].ID, c.Messages[1].ID)
	}
}

func TestService_SendRejectsEmptyText(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api)

	_, err := svc.Send(context.Background(), "ana@x", "bruno@x", "")
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(api.sent) != 0 {
		t.Fatalf("sent %d messages, want none", len(api.sent))
	}

	if _, err := svc.Send(context.Background(), "ana@x", "bruno@x", "tudo bem?"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(api.sent) != 1 || api.sent[0].Message != "tudo bem?" {
		t.Fatalf("sent: %+v", api.sent)
	}
}
