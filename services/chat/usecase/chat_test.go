package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/constants"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/services/chat/mocks"
)

type chatFixture struct {
	uc       *ChatUC
	messages *mocks.MockMessageRepo
	presence *mocks.MockPresenceRepo
	groups   *mocks.MockGroupMembership
	gw       *mocks.MockChatGW
}

func newChatFixture(t *testing.T) (*chatFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	f := &chatFixture{
		messages: mocks.NewMockMessageRepo(ctrl),
		presence: mocks.NewMockPresenceRepo(ctrl),
		groups:   mocks.NewMockGroupMembership(ctrl),
		gw:       mocks.NewMockChatGW(ctrl),
	}
	cfg := &models.Config{
		Chat: models.ChatConfig{HistoryLimit: 50, PresenceTTLSec: 3600},
	}
	f.uc = NewChatUC(cfg, f.messages, f.presence, f.groups, f.gw)
	return f, ctrl
}

func TestCreateMessage(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	userID := uuid.New()

	f.groups.EXPECT().IsMember(gomock.Any(), groupID, userID).Return(true, nil)
	f.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.Message) error {
			assert.Equal(t, groupID, msg.GroupID)
			assert.Equal(t, userID, msg.UserID)
			assert.Equal(t, models.MessageTypeText, msg.Type)
			assert.NotEqual(t, uuid.Nil, msg.ID)
			return nil
		})
	f.gw.EXPECT().PublishChatMessage(gomock.Any()).
		DoAndReturn(func(event *models.ChatEvent) error {
			assert.Equal(t, constants.EventNewMessage, event.Event)
			assert.Equal(t, groupID, event.GroupID)
			return nil
		})

	msg, err := f.uc.CreateMessage(context.Background(), groupID, userID, "hello all", "", nil)

	require.NoError(t, err)
	assert.Equal(t, "hello all", msg.Content)
}

func TestCreateMessage_EmptyContent(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	_, err := f.uc.CreateMessage(context.Background(), uuid.New(), uuid.New(), "   ", models.MessageTypeText, nil)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCreateMessage_UnknownType(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	_, err := f.uc.CreateMessage(context.Background(), uuid.New(), uuid.New(), "hi", "voice", nil)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCreateMessage_NotMember(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	userID := uuid.New()

	f.groups.EXPECT().IsMember(gomock.Any(), groupID, userID).Return(false, nil)

	_, err := f.uc.CreateMessage(context.Background(), groupID, userID, "hi", models.MessageTypeText, nil)

	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestCreateMessage_PublishFailureDoesNotFailCreate(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	userID := uuid.New()

	f.groups.EXPECT().IsMember(gomock.Any(), groupID, userID).Return(true, nil)
	f.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishChatMessage(gomock.Any()).Return(errors.New("nats down"))

	msg, err := f.uc.CreateMessage(context.Background(), groupID, userID, "hi", models.MessageTypeText, nil)

	require.NoError(t, err)
	assert.NotNil(t, msg)
}

func TestGetMessageHistory_DefaultsLimit(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	userID := uuid.New()

	f.groups.EXPECT().IsMember(gomock.Any(), groupID, userID).Return(true, nil)
	f.messages.EXPECT().ListMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter *models.MessageHistoryFilter) ([]*models.Message, error) {
			assert.Equal(t, 50, filter.Limit)
			return []*models.Message{}, nil
		})

	_, err := f.uc.GetMessageHistory(context.Background(), &models.MessageHistoryFilter{GroupID: groupID}, userID)

	require.NoError(t, err)
}

func TestGetMessageHistory_NotMember(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	userID := uuid.New()

	f.groups.EXPECT().IsMember(gomock.Any(), groupID, userID).Return(false, nil)

	_, err := f.uc.GetMessageHistory(context.Background(), &models.MessageHistoryFilter{GroupID: groupID}, userID)

	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestEditMessage(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	author := uuid.New()
	msg := &models.Message{
		ID:      uuid.New(),
		GroupID: uuid.New(),
		UserID:  author,
		Content: "first draft",
		Type:    models.MessageTypeText,
	}

	f.messages.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)
	f.messages.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.Message) error {
			assert.Equal(t, "final draft", updated.Content)
			assert.True(t, updated.IsEdited)
			assert.NotNil(t, updated.EditedAt)
			return nil
		})
	f.gw.EXPECT().PublishChatMessage(gomock.Any()).
		DoAndReturn(func(event *models.ChatEvent) error {
			assert.Equal(t, constants.EventMessageEdited, event.Event)
			return nil
		})

	updated, err := f.uc.EditMessage(context.Background(), msg.ID, author, "final draft")

	require.NoError(t, err)
	assert.Equal(t, "final draft", updated.Content)
}

func TestEditMessage_NotAuthor(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	msg := &models.Message{ID: uuid.New(), GroupID: uuid.New(), UserID: uuid.New()}

	f.messages.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)

	_, err := f.uc.EditMessage(context.Background(), msg.ID, uuid.New(), "tampered")

	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestDeleteMessage_NotAuthor(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	msg := &models.Message{ID: uuid.New(), GroupID: uuid.New(), UserID: uuid.New()}

	f.messages.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)

	err := f.uc.DeleteMessage(context.Background(), msg.ID, uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestDeleteMessage(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	author := uuid.New()
	msg := &models.Message{ID: uuid.New(), GroupID: uuid.New(), UserID: author}

	f.messages.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)
	f.messages.EXPECT().DeleteMessage(gomock.Any(), msg.ID).Return(nil)

	err := f.uc.DeleteMessage(context.Background(), msg.ID, author)

	assert.NoError(t, err)
}

func TestMarkMessageRead(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	reader := uuid.New()
	msg := &models.Message{ID: uuid.New(), GroupID: uuid.New(), UserID: uuid.New()}

	f.messages.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)
	f.groups.EXPECT().IsMember(gomock.Any(), msg.GroupID, reader).Return(true, nil)
	f.messages.EXPECT().MarkRead(gomock.Any(), msg.ID, reader).Return(nil)
	f.gw.EXPECT().PublishRead(gomock.Any()).
		DoAndReturn(func(event *models.ChatEvent) error {
			assert.Equal(t, constants.EventMessageReadUpdate, event.Event)
			assert.Equal(t, reader, event.UserID)
			return nil
		})

	err := f.uc.MarkMessageRead(context.Background(), msg.ID, reader)

	assert.NoError(t, err)
}

func TestMarkMessageRead_NotMember(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	reader := uuid.New()
	msg := &models.Message{ID: uuid.New(), GroupID: uuid.New(), UserID: uuid.New()}

	f.messages.EXPECT().GetMessage(gomock.Any(), msg.ID).Return(msg, nil)
	f.groups.EXPECT().IsMember(gomock.Any(), msg.GroupID, reader).Return(false, nil)

	err := f.uc.MarkMessageRead(context.Background(), msg.ID, reader)

	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestUnreadCount(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	userID := uuid.New()

	f.groups.EXPECT().IsMember(gomock.Any(), groupID, userID).Return(true, nil)
	f.messages.EXPECT().CountUnread(gomock.Any(), groupID, userID).Return(7, nil)

	count, err := f.uc.UnreadCount(context.Background(), groupID, userID)

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestPresenceLifecycle(t *testing.T) {
	f, ctrl := newChatFixture(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	userID := uuid.New()

	f.presence.EXPECT().AddPresence(gomock.Any(), groupID, userID).Return(nil)
	f.presence.EXPECT().ListPresence(gomock.Any(), groupID).Return([]uuid.UUID{userID}, nil)
	f.presence.EXPECT().RemovePresence(gomock.Any(), groupID, userID).Return(nil)

	require.NoError(t, f.uc.MarkOnline(context.Background(), groupID, userID))

	online, err := f.uc.OnlineMembers(context.Background(), groupID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userID}, online)

	require.NoError(t, f.uc.MarkOffline(context.Background(), groupID, userID))
}
