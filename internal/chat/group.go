// Package chat shapes flat message lists into per-counterpart
// conversation threads for the messaging views.
package chat

import (
	"sort"

	"github.com/conectajovem/platform/internal/model"
)

// Conversation is a derived grouping of messages between the viewing
// user and exactly one counterpart. It is never persisted.
type Conversation struct {
	OtherUserEmail string              `json:"other_user_email"`
	Messages       []model.ChatMessage `json:"messages"`
}

// Latest returns the most recent message in the conversation.
// Messages are kept ascending by created_date, so this is the last one.
func (c Conversation) Latest() model.ChatMessage {
	return c.Messages[len(c.Messages)-1]
}

// Unread counts messages the given user has not read yet. Messages the
// user sent themselves never count as unread.
func (c Conversation) Unread(userEmail string) int {
	n := 0
	for _, m := range c.Messages {
		if m.SenderEmail != userEmail && !m.Read {
			n++
		}
	}
	return n
}

// DedupeByID drops duplicate messages, keeping the first occurrence.
// The sent and received queries may overlap (e.g. a message a user sent
// to themselves shows up in both), so grouping always dedupes first.
func DedupeByID(msgs []model.ChatMessage) []model.ChatMessage {
	seen := make(map[string]struct{}, len(msgs))
	out := make([]model.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Group partitions the user's messages into conversations keyed by the
// counterpart email. Each conversation's messages are sorted ascending
// by created_date; conversations are ordered most recently active
// first. Callers needing newest-first previews re-sort at the render
// boundary.
func Group(userEmail string, msgs []model.ChatMessage) []Conversation {
	msgs = DedupeByID(msgs)

	byOther := make(map[string][]model.ChatMessage)
	order := make([]string, 0)
	for _, m := range msgs {
		other := m.SenderEmail
		if m.SenderEmail == userEmail {
			other = m.ReceiverEmail
		}
		if _, ok := byOther[other]; !ok {
			order = append(order, other)
		}
		byOther[other] = append(byOther[other], m)
	}

	convos := make([]Conversation, 0, len(order))
	for _, other := range order {
		group := byOther[other]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedDate.Before(group[j].CreatedDate)
		})
		convos = append(convos, Conversation{OtherUserEmail: other, Messages: group})
	}

	sort.SliceStable(convos, func(i, j int) bool {
		return convos[i].Latest().CreatedDate.After(convos[j].Latest().CreatedDate)
	})
	return convos
}
