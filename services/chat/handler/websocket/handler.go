package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/constants"
	"github.com/sahakarita/sahakarita/internal/pkg/logger"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	ws "github.com/sahakarita/sahakarita/internal/pkg/websocket"
	"github.com/sahakarita/sahakarita/internal/utils"
	"github.com/sahakarita/sahakarita/services/chat"
)

// GroupMembership is the slice of the groups service the websocket handler consumes
type GroupMembership interface {
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
}

// ChatHandler speaks the websocket chat protocol
type ChatHandler struct {
	manager *ws.Manager
	chatUC  chat.ChatUC
	groups  GroupMembership
}

// NewChatHandler creates a new websocket chat handler
func NewChatHandler(manager *ws.Manager, chatUC chat.ChatUC, groups GroupMembership) *ChatHandler {
	return &ChatHandler{
		manager: manager,
		chatUC:  chatUC,
		groups:  groups,
	}
}

type joinGroupPayload struct {
	GroupID uuid.UUID `json:"group_id"`
}

type sendMessagePayload struct {
	GroupID uuid.UUID  `json:"group_id"`
	Content string     `json:"content"`
	Type    string     `json:"type,omitempty"`
	ReplyTo *uuid.UUID `json:"reply_to,omitempty"`
}

type typingPayload struct {
	GroupID  uuid.UUID `json:"group_id"`
	IsTyping bool      `json:"is_typing"`
}

type messageReadPayload struct {
	MessageID uuid.UUID `json:"message_id"`
}

type editMessagePayload struct {
	MessageID uuid.UUID `json:"message_id"`
	Content   string    `json:"content"`
}

type presencePayload struct {
	GroupID uuid.UUID `json:"group_id"`
	UserID  uuid.UUID `json:"user_id"`
}

type unreadCountPayload struct {
	GroupID uuid.UUID `json:"group_id"`
	Count   int       `json:"count"`
}

// HandleConnection upgrades the request and runs the client's event loop
func (h *ChatHandler) HandleConnection(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}
	role, _ := c.Get("role").(string)

	client, err := h.manager.Upgrade(c, userID.String(), role)
	if err != nil {
		logger.Error("WebSocket upgrade failed", logger.Err(err))
		return err
	}

	logger.Info("WebSocket client connected", logger.String("user_id", client.UserID))
	h.eventLoop(c.Request().Context(), client, userID)
	return nil
}

func (h *ChatHandler) eventLoop(ctx context.Context, client *ws.Client, userID uuid.UUID) {
	defer h.dropClient(ctx, client, userID)

	for {
		msg, err := client.ReadMessage()
		if err != nil {
			return
		}

		switch msg.Event {
		case constants.EventJoinGroup:
			h.handleJoinGroup(ctx, client, userID, msg.Data)
		case constants.EventLeaveGroup:
			h.handleLeaveGroup(ctx, client, userID, msg.Data)
		case constants.EventSendMessage:
			h.handleSendMessage(ctx, client, userID, msg.Data)
		case constants.EventEditMessage:
			h.handleEditMessage(ctx, client, userID, msg.Data)
		case constants.EventTyping:
			h.handleTyping(client, userID, msg.Data)
		case constants.EventMessageRead:
			h.handleMessageRead(ctx, client, userID, msg.Data)
		case constants.EventMarkAllRead:
			h.handleMarkAllRead(ctx, client, userID, msg.Data)
		case constants.EventPing:
			_ = client.Send(constants.EventPong, nil)
		default:
			_ = client.SendError(constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
		}
	}
}

// dropClient tears down room membership when the socket closes. Presence
// entries carry a TTL, so entries missed here expire on their own.
func (h *ChatHandler) dropClient(ctx context.Context, client *ws.Client, userID uuid.UUID) {
	h.manager.Disconnect(client)
	logger.Info("WebSocket client disconnected", logger.String("user_id", client.UserID))
}

func (h *ChatHandler) handleJoinGroup(ctx context.Context, client *ws.Client, userID uuid.UUID, data json.RawMessage) {
	var payload joinGroupPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.GroupID == uuid.Nil {
		_ = client.SendError(constants.ErrorInvalidFormat, "join-group requires a group_id")
		return
	}

	isMember, err := h.groups.IsMember(ctx, payload.GroupID, userID)
	if err != nil {
		_ = client.SendError(constants.ErrorInternalError, "membership check failed")
		return
	}
	if !isMember {
		_ = client.SendError(constants.ErrorNotMember, "you are not a member of this group")
		return
	}

	groupID := payload.GroupID.String()
	h.manager.JoinRoom(groupID, client.UserID)

	if err := h.chatUC.MarkOnline(ctx, payload.GroupID, userID); err != nil {
		logger.Warn("Failed to record presence", logger.Err(err))
	}

	h.manager.BroadcastToRoom(groupID, constants.EventUserJoined, presencePayload{
		GroupID: payload.GroupID,
		UserID:  userID,
	}, client.UserID)

	history, err := h.chatUC.GetMessageHistory(ctx, &models.MessageHistoryFilter{GroupID: payload.GroupID}, userID)
	if err != nil {
		_ = client.SendError(constants.ErrorInternalError, "failed to load history")
		return
	}
	_ = client.Send(constants.EventMessagesHistory, history)

	unread, err := h.chatUC.UnreadCount(ctx, payload.GroupID, userID)
	if err == nil {
		_ = client.Send(constants.EventUnreadCount, unreadCountPayload{
			GroupID: payload.GroupID,
			Count:   unread,
		})
	}
}

func (h *ChatHandler) handleLeaveGroup(ctx context.Context, client *ws.Client, userID uuid.UUID, data json.RawMessage) {
	var payload joinGroupPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.GroupID == uuid.Nil {
		_ = client.SendError(constants.ErrorInvalidFormat, "leave-group requires a group_id")
		return
	}

	groupID := payload.GroupID.String()
	h.manager.LeaveRoom(groupID, client.UserID)

	if err := h.chatUC.MarkOffline(ctx, payload.GroupID, userID); err != nil {
		logger.Warn("Failed to clear presence", logger.Err(err))
	}

	h.manager.BroadcastToRoom(groupID, constants.EventUserLeft, presencePayload{
		GroupID: payload.GroupID,
		UserID:  userID,
	})
}

func (h *ChatHandler) handleSendMessage(ctx context.Context, client *ws.Client, userID uuid.UUID, data json.RawMessage) {
	var payload sendMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.GroupID == uuid.Nil {
		_ = client.SendError(constants.ErrorInvalidFormat, "send-message requires a group_id and content")
		return
	}

	if !h.manager.InRoom(payload.GroupID.String(), client.UserID) {
		_ = client.SendError(constants.ErrorNotMember, "join the group before sending messages")
		return
	}

	msg, err := h.chatUC.CreateMessage(ctx, payload.GroupID, userID, payload.Content, payload.Type, payload.ReplyTo)
	if err != nil {
		h.sendDomainError(client, err)
		return
	}

	h.manager.BroadcastToRoom(payload.GroupID.String(), constants.EventNewMessage, msg)
}

func (h *ChatHandler) handleEditMessage(ctx context.Context, client *ws.Client, userID uuid.UUID, data json.RawMessage) {
	var payload editMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.MessageID == uuid.Nil {
		_ = client.SendError(constants.ErrorInvalidFormat, "edit-message requires a message_id and content")
		return
	}

	msg, err := h.chatUC.EditMessage(ctx, payload.MessageID, userID, payload.Content)
	if err != nil {
		h.sendDomainError(client, err)
		return
	}

	h.manager.BroadcastToRoom(msg.GroupID.String(), constants.EventMessageEdited, msg)
}

func (h *ChatHandler) handleTyping(client *ws.Client, userID uuid.UUID, data json.RawMessage) {
	var payload typingPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.GroupID == uuid.Nil {
		_ = client.SendError(constants.ErrorInvalidFormat, "typing requires a group_id")
		return
	}

	if !h.manager.InRoom(payload.GroupID.String(), client.UserID) {
		return
	}

	h.manager.BroadcastToRoom(payload.GroupID.String(), constants.EventUserTyping, struct {
		GroupID  uuid.UUID `json:"group_id"`
		UserID   uuid.UUID `json:"user_id"`
		IsTyping bool      `json:"is_typing"`
	}{payload.GroupID, userID, payload.IsTyping}, client.UserID)
}

func (h *ChatHandler) handleMessageRead(ctx context.Context, client *ws.Client, userID uuid.UUID, data json.RawMessage) {
	var payload messageReadPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.MessageID == uuid.Nil {
		_ = client.SendError(constants.ErrorInvalidFormat, "message-read requires a message_id")
		return
	}

	if err := h.chatUC.MarkMessageRead(ctx, payload.MessageID, userID); err != nil {
		h.sendDomainError(client, err)
	}
}

func (h *ChatHandler) handleMarkAllRead(ctx context.Context, client *ws.Client, userID uuid.UUID, data json.RawMessage) {
	var payload joinGroupPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.GroupID == uuid.Nil {
		_ = client.SendError(constants.ErrorInvalidFormat, "mark-all-read requires a group_id")
		return
	}

	if err := h.chatUC.MarkAllRead(ctx, payload.GroupID, userID); err != nil {
		h.sendDomainError(client, err)
		return
	}

	_ = client.Send(constants.EventUnreadCount, unreadCountPayload{
		GroupID: payload.GroupID,
		Count:   0,
	})
}

func (h *ChatHandler) sendDomainError(client *ws.Client, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotAuthorized):
		_ = client.SendError(constants.ErrorUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrInvalidAmount):
		_ = client.SendError(constants.ErrorValidationFailed, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		_ = client.SendError(constants.ErrorValidationFailed, err.Error())
	default:
		_ = client.SendError(constants.ErrorInternalError, "internal error")
	}
}
