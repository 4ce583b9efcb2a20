package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

// AddMember inserts a membership row
func (r *GroupRepo) AddMember(ctx context.Context, member *models.GroupMember) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO group_members (group_id, user_id, role, joined_at, contribution_total)
		VALUES ($1, $2, $3, $4, $5)
	`, member.GroupID, member.UserID, member.Role, member.JoinedAt, member.ContributionTotal)
	if err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}

// RemoveMember deletes a membership row
func (r *GroupRepo) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM group_members WHERE group_id = $1 AND user_id = $2
	`, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("member %s in group %s: %w", userID, groupID, apperrors.ErrNotFound)
	}

	return nil
}

// GetMember retrieves a single membership row
func (r *GroupRepo) GetMember(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.GetContext(ctx, &member, `
		SELECT group_id, user_id, role, joined_at, contribution_total
		FROM group_members
		WHERE group_id = $1 AND user_id = $2
	`, groupID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("member %s in group %s: %w", userID, groupID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get group member: %w", err)
	}
	return &member, nil
}

// AddMemberContribution increments a member's lifetime contribution total
func (r *GroupRepo) AddMemberContribution(ctx context.Context, groupID, userID uuid.UUID, amount decimal.Decimal) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE group_members
		SET contribution_total = contribution_total + $1
		WHERE group_id = $2 AND user_id = $3
	`, amount, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to add member contribution: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("member %s in group %s: %w", userID, groupID, apperrors.ErrNotFound)
	}

	return nil
}
