package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sahakarita/sahakarita/services/chat ChatUC

// ChatUC represents the chat usecase interface
type ChatUC interface {
	CreateMessage(ctx context.Context, groupID, userID uuid.UUID, content, msgType string, replyTo *uuid.UUID) (*models.Message, error)
	GetMessageHistory(ctx context.Context, filter *models.MessageHistoryFilter, userID uuid.UUID) ([]*models.Message, error)
	EditMessage(ctx context.Context, messageID, userID uuid.UUID, content string) (*models.Message, error)
	DeleteMessage(ctx context.Context, messageID, userID uuid.UUID) error
	MarkMessageRead(ctx context.Context, messageID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, groupID, userID uuid.UUID) error
	UnreadCount(ctx context.Context, groupID, userID uuid.UUID) (int, error)

	// Presence lifecycle tied to websocket connect/disconnect
	MarkOnline(ctx context.Context, groupID, userID uuid.UUID) error
	MarkOffline(ctx context.Context, groupID, userID uuid.UUID) error
	OnlineMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}
