package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ConversationID is the opaque identifier of a stored conversation.
type ConversationID string

// NewConversationID returns a random conversation identifier.
func NewConversationID() ConversationID {
	return ConversationID(uuid.NewString())
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Conversation is a locally stored chat thread.
type Conversation struct {
	ID        ConversationID `json:"id"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewConversation creates a conversation with a fresh ID.
func NewConversation(title string) *Conversation {
	now := time.Now().UTC()
	title = strings.TrimSpace(title)
	if title == "" {
		title = "New conversation"
	}
	return &Conversation{
		ID:        NewConversationID(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Conversation) Validate() error {
	if c == nil || c.ID == "" || strings.TrimSpace(c.Title) == "" {
		return ErrInvalidConversation
	}
	if c.CreatedAt.IsZero() {
		return ErrInvalidConversation
	}
	return nil
}

// Message is one entry of a conversation. Position orders messages within it.
type Message struct {
	ConversationID ConversationID `json:"conversation_id"`
	Position       int            `json:"position"`
	Role           Role           `json:"role"`
	Content        string         `json:"content"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (m *Message) Validate() error {
	if m == nil || !m.Role.Valid() || m.Position < 0 {
		return ErrInvalidMessage
	}
	return nil
}

// Renumber assigns consecutive positions and the conversation ID to msgs.
func Renumber(id ConversationID, msgs []Message) []Message {
	out := make([]Message, len(msgs))
	now := time.Now().UTC()
	for i, m := range msgs {
		m.ConversationID = id
		m.Position = i
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		out[i] = m
	}
	return out
}
