package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

const defaultHistoryLimit = 50

// MessageRepo implements chat message persistence on PostgreSQL
type MessageRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessageRepo creates a new message repository
func NewMessageRepo(cfg *models.Config, db *sqlx.DB) *MessageRepo {
	return &MessageRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateMessage inserts a chat message
func (r *MessageRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO messages (id, group_id, user_id, content, type, is_edited, edited_at, reply_to, created_at)
		VALUES (:id, :group_id, :user_id, :content, :type, :is_edited, :edited_at, :reply_to, :created_at)
	`, msg)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// GetMessage retrieves a message with its readers
func (r *MessageRepo) GetMessage(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	var msg models.Message
	err := r.db.GetContext(ctx, &msg, `
		SELECT id, group_id, user_id, content, type, is_edited, edited_at, reply_to, created_at
		FROM messages WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("message %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	if err := r.loadReaders(ctx, &msg); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (r *MessageRepo) loadReaders(ctx context.Context, msg *models.Message) error {
	var readers []uuid.UUID
	err := r.db.SelectContext(ctx, &readers, `
		SELECT user_id FROM message_reads WHERE message_id = $1
	`, msg.ID)
	if err != nil {
		return fmt.Errorf("failed to load message readers: %w", err)
	}
	msg.ReadBy = readers
	return nil
}

// ListMessages returns group messages newest first, optionally before a cursor
func (r *MessageRepo) ListMessages(ctx context.Context, filter *models.MessageHistoryFilter) ([]*models.Message, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query := `
		SELECT id, group_id, user_id, content, type, is_edited, edited_at, reply_to, created_at
		FROM messages WHERE group_id = $1
	`
	args := []interface{}{filter.GroupID}
	if filter.Before != nil {
		query += " AND created_at < $2"
		args = append(args, *filter.Before)
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args)+1)
	args = append(args, limit)

	var result []*models.Message
	err := r.db.SelectContext(ctx, &result, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return result, nil
}

// UpdateMessage persists content edits
func (r *MessageRepo) UpdateMessage(ctx context.Context, msg *models.Message) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE messages
		SET content = $1, is_edited = $2, edited_at = $3
		WHERE id = $4
	`, msg.Content, msg.IsEdited, msg.EditedAt, msg.ID)
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("message %s: %w", msg.ID, apperrors.ErrNotFound)
	}

	return nil
}

// DeleteMessage removes a message and its read markers
func (r *MessageRepo) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("message %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}

// MarkRead records that a user has read a message
func (r *MessageRepo) MarkRead(ctx context.Context, messageID, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO message_reads (message_id, user_id, read_at)
		VALUES ($1, $2, now())
		ON CONFLICT (message_id, user_id) DO NOTHING
	`, messageID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

// MarkAllRead records read markers for every unread group message
func (r *MessageRepo) MarkAllRead(ctx context.Context, groupID, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO message_reads (message_id, user_id, read_at)
		SELECT m.id, $2, now()
		FROM messages m
		WHERE m.group_id = $1
		  AND m.user_id <> $2
		  AND NOT EXISTS (
			SELECT 1 FROM message_reads r
			WHERE r.message_id = m.id AND r.user_id = $2
		  )
	`, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark all messages read: %w", err)
	}
	return nil
}

// CountUnread counts group messages from others the user has not read
func (r *MessageRepo) CountUnread(ctx context.Context, groupID, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM messages m
		WHERE m.group_id = $1
		  AND m.user_id <> $2
		  AND NOT EXISTS (
			SELECT 1 FROM message_reads r
			WHERE r.message_id = m.id AND r.user_id = $2
		  )
	`, groupID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
