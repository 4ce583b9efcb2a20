package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sahakarita/sahakarita/services/chat MessageRepo,PresenceRepo

// MessageRepo defines the interface for chat message persistence
type MessageRepo interface {
	CreateMessage(ctx context.Context, msg *models.Message) error
	GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error)
	ListMessages(ctx context.Context, filter *models.MessageHistoryFilter) ([]*models.Message, error)
	UpdateMessage(ctx context.Context, msg *models.Message) error
	DeleteMessage(ctx context.Context, id uuid.UUID) error
	MarkRead(ctx context.Context, messageID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, groupID, userID uuid.UUID) error
	CountUnread(ctx context.Context, groupID, userID uuid.UUID) (int, error)
}

// PresenceRepo tracks which members are online per group
type PresenceRepo interface {
	AddPresence(ctx context.Context, groupID, userID uuid.UUID) error
	RemovePresence(ctx context.Context, groupID, userID uuid.UUID) error
	ListPresence(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}
