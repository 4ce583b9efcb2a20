package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

func setupMessageRepo(t *testing.T) (*MessageRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewMessageRepo(&models.Config{}, sqlxDB), mock
}

func messageColumns() []string {
	return []string{"id", "group_id", "user_id", "content", "type", "is_edited", "edited_at", "reply_to", "created_at"}
}

func TestGetMessage(t *testing.T) {
	repo, mock := setupMessageRepo(t)

	id := uuid.New()
	groupID := uuid.New()
	author := uuid.New()
	reader := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM messages WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(messageColumns()).
			AddRow(id, groupID, author, "chai break at 4", models.MessageTypeText, false, nil, nil, now))
	mock.ExpectQuery("SELECT user_id FROM message_reads").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(reader))

	msg, err := repo.GetMessage(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "chai break at 4", msg.Content)
	assert.Equal(t, []uuid.UUID{reader}, msg.ReadBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMessage_NotFound(t *testing.T) {
	repo, mock := setupMessageRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM messages WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(messageColumns()))

	_, err := repo.GetMessage(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMessages_BeforeCursor(t *testing.T) {
	repo, mock := setupMessageRepo(t)

	groupID := uuid.New()
	before := time.Now()
	older := before.Add(-time.Minute)

	mock.ExpectQuery("SELECT (.+) FROM messages WHERE group_id = (.+) AND created_at <").
		WithArgs(groupID, before, 20).
		WillReturnRows(sqlmock.NewRows(messageColumns()).
			AddRow(uuid.New(), groupID, uuid.New(), "older message", models.MessageTypeText, false, nil, nil, older))

	result, err := repo.ListMessages(context.Background(), &models.MessageHistoryFilter{
		GroupID: groupID,
		Before:  &before,
		Limit:   20,
	})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "older message", result[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMessages_DefaultLimit(t *testing.T) {
	repo, mock := setupMessageRepo(t)
	groupID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM messages WHERE group_id").
		WithArgs(groupID, defaultHistoryLimit).
		WillReturnRows(sqlmock.NewRows(messageColumns()))

	_, err := repo.ListMessages(context.Background(), &models.MessageHistoryFilter{GroupID: groupID})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMessage_NotFound(t *testing.T) {
	repo, mock := setupMessageRepo(t)

	msg := &models.Message{ID: uuid.New(), Content: "edited"}

	mock.ExpectExec("UPDATE messages").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateMessage(context.Background(), msg)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_Idempotent(t *testing.T) {
	repo, mock := setupMessageRepo(t)

	messageID := uuid.New()
	userID := uuid.New()

	// ON CONFLICT DO NOTHING reports zero rows on the second call
	mock.ExpectExec("INSERT INTO message_reads").
		WithArgs(messageID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO message_reads").
		WithArgs(messageID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.MarkRead(context.Background(), messageID, userID))
	require.NoError(t, repo.MarkRead(context.Background(), messageID, userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnread(t *testing.T) {
	repo, mock := setupMessageRepo(t)

	groupID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(groupID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUnread(context.Background(), groupID, userID)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllRead(t *testing.T) {
	repo, mock := setupMessageRepo(t)

	groupID := uuid.New()
	userID := uuid.New()

	mock.ExpectExec("INSERT INTO message_reads").
		WithArgs(groupID, userID).
		WillReturnResult(sqlmock.NewResult(0, 4))

	err := repo.MarkAllRead(context.Background(), groupID, userID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
