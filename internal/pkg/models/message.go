package models

import (
	"time"

	"github.com/google/uuid"
)

// Message types
const (
	MessageTypeText   = "text"
	MessageTypeFile   = "file"
	MessageTypeSystem = "system"
)

// Message represents a group chat message
type Message struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	GroupID   uuid.UUID   `json:"group_id" db:"group_id"`
	UserID    uuid.UUID   `json:"user_id" db:"user_id"`
	Content   string      `json:"content" db:"content"`
	Type      string      `json:"type" db:"type"`
	IsEdited  bool        `json:"is_edited" db:"is_edited"`
	EditedAt  *time.Time  `json:"edited_at,omitempty" db:"edited_at"`
	ReplyTo   *uuid.UUID  `json:"reply_to,omitempty" db:"reply_to"`
	ReadBy    []uuid.UUID `json:"read_by,omitempty" db:"-"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// MessageHistoryFilter narrows chat history queries
type MessageHistoryFilter struct {
	GroupID uuid.UUID
	Before  *time.Time
	Limit   int
}

// ChatEvent is published to NATS when a message is created or edited
type ChatEvent struct {
	Event   string    `json:"event"`
	GroupID uuid.UUID `json:"group_id"`
	Message *Message  `json:"message,omitempty"`
	UserID  uuid.UUID `json:"user_id"`
}
