package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/constants"
	"github.com/sahakarita/sahakarita/internal/pkg/logger"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/services/chat"
)

//go:generate mockgen -destination=../mocks/mock_group_membership.go -package=mocks github.com/sahakarita/sahakarita/services/chat/usecase GroupMembership

// GroupMembership is the slice of the groups service the chat consumes
type GroupMembership interface {
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
}

// ChatUC implements the chat usecase
type ChatUC struct {
	cfg      *models.Config
	messages chat.MessageRepo
	presence chat.PresenceRepo
	groups   GroupMembership
	gw       chat.ChatGW
}

// NewChatUC creates a new chat usecase
func NewChatUC(cfg *models.Config, messages chat.MessageRepo, presence chat.PresenceRepo, groups GroupMembership, gw chat.ChatGW) *ChatUC {
	return &ChatUC{
		cfg:      cfg,
		messages: messages,
		presence: presence,
		groups:   groups,
		gw:       gw,
	}
}

func (uc *ChatUC) requireMember(ctx context.Context, groupID, userID uuid.UUID) error {
	isMember, err := uc.groups.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return fmt.Errorf("user %s is not a member of group %s: %w", userID, groupID, apperrors.ErrNotAuthorized)
	}
	return nil
}

// CreateMessage stores a message and fans it out over NATS
func (uc *ChatUC) CreateMessage(ctx context.Context, groupID, userID uuid.UUID, content, msgType string, replyTo *uuid.UUID) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content is required: %w", apperrors.ErrInvalidInput)
	}
	if msgType == "" {
		msgType = models.MessageTypeText
	}
	if msgType != models.MessageTypeText && msgType != models.MessageTypeFile && msgType != models.MessageTypeSystem {
		return nil, fmt.Errorf("unknown message type %q: %w", msgType, apperrors.ErrInvalidInput)
	}

	if err := uc.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:        uuid.New(),
		GroupID:   groupID,
		UserID:    userID,
		Content:   content,
		Type:      msgType,
		ReplyTo:   replyTo,
		CreatedAt: time.Now(),
	}

	if err := uc.messages.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	uc.publish(uc.gw.PublishChatMessage, &models.ChatEvent{
		Event:   constants.EventNewMessage,
		GroupID: groupID,
		Message: msg,
		UserID:  userID,
	})

	return msg, nil
}

// GetMessageHistory returns group history newest first for a member
func (uc *ChatUC) GetMessageHistory(ctx context.Context, filter *models.MessageHistoryFilter, userID uuid.UUID) ([]*models.Message, error) {
	if err := uc.requireMember(ctx, filter.GroupID, userID); err != nil {
		return nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = uc.cfg.Chat.HistoryLimit
	}

	return uc.messages.ListMessages(ctx, filter)
}

// EditMessage lets the author change a message's content
func (uc *ChatUC) EditMessage(ctx context.Context, messageID, userID uuid.UUID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content is required: %w", apperrors.ErrInvalidInput)
	}

	msg, err := uc.messages.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if msg.UserID != userID {
		return nil, fmt.Errorf("only the author can edit a message: %w", apperrors.ErrNotAuthorized)
	}

	now := time.Now()
	msg.Content = content
	msg.IsEdited = true
	msg.EditedAt = &now

	if err := uc.messages.UpdateMessage(ctx, msg); err != nil {
		return nil, err
	}

	uc.publish(uc.gw.PublishChatMessage, &models.ChatEvent{
		Event:   constants.EventMessageEdited,
		GroupID: msg.GroupID,
		Message: msg,
		UserID:  userID,
	})

	return msg, nil
}

// DeleteMessage lets the author remove a message
func (uc *ChatUC) DeleteMessage(ctx context.Context, messageID, userID uuid.UUID) error {
	msg, err := uc.messages.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}

	if msg.UserID != userID {
		return fmt.Errorf("only the author can delete a message: %w", apperrors.ErrNotAuthorized)
	}

	return uc.messages.DeleteMessage(ctx, messageID)
}

// MarkMessageRead records a read marker and broadcasts the update
func (uc *ChatUC) MarkMessageRead(ctx context.Context, messageID, userID uuid.UUID) error {
	msg, err := uc.messages.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}

	if err := uc.requireMember(ctx, msg.GroupID, userID); err != nil {
		return err
	}

	if err := uc.messages.MarkRead(ctx, messageID, userID); err != nil {
		return err
	}

	uc.publish(uc.gw.PublishRead, &models.ChatEvent{
		Event:   constants.EventMessageReadUpdate,
		GroupID: msg.GroupID,
		Message: msg,
		UserID:  userID,
	})

	return nil
}

// MarkAllRead records read markers for every unread message in the group
func (uc *ChatUC) MarkAllRead(ctx context.Context, groupID, userID uuid.UUID) error {
	if err := uc.requireMember(ctx, groupID, userID); err != nil {
		return err
	}
	return uc.messages.MarkAllRead(ctx, groupID, userID)
}

// UnreadCount returns the number of unread group messages for the user
func (uc *ChatUC) UnreadCount(ctx context.Context, groupID, userID uuid.UUID) (int, error) {
	if err := uc.requireMember(ctx, groupID, userID); err != nil {
		return 0, err
	}
	return uc.messages.CountUnread(ctx, groupID, userID)
}

// MarkOnline records the user as present in the group
func (uc *ChatUC) MarkOnline(ctx context.Context, groupID, userID uuid.UUID) error {
	return uc.presence.AddPresence(ctx, groupID, userID)
}

// MarkOffline removes the user's presence entry
func (uc *ChatUC) MarkOffline(ctx context.Context, groupID, userID uuid.UUID) error {
	return uc.presence.RemovePresence(ctx, groupID, userID)
}

// OnlineMembers lists the group's currently present members
func (uc *ChatUC) OnlineMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	return uc.presence.ListPresence(ctx, groupID)
}

func (uc *ChatUC) publish(fn func(*models.ChatEvent) error, event *models.ChatEvent) {
	if err := fn(event); err != nil {
		logger.Warn("Failed to publish chat event",
			logger.String("event", event.Event),
			logger.String("group_id", event.GroupID.String()),
			logger.Err(err))
	}
}
