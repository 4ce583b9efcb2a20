package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
)

// AddToWallet credits the group wallet
func (r *GroupRepo) AddToWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE groups
		SET balance = balance + $1, updated_at = now()
		WHERE id = $2
	`, amount, groupID)
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("group %s: %w", groupID, apperrors.ErrNotFound)
	}

	return nil
}

// SubtractFromWallet debits the group wallet. The balance guard runs in the
// same statement so concurrent debits cannot take the balance negative.
func (r *GroupRepo) SubtractFromWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE groups
		SET balance = balance - $1, updated_at = now()
		WHERE id = $2 AND balance >= $1
	`, amount, groupID)
	if err != nil {
		return fmt.Errorf("failed to debit wallet: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID); err != nil {
		return fmt.Errorf("failed to check group existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("group %s: %w", groupID, apperrors.ErrNotFound)
	}

	return fmt.Errorf("group %s wallet: %w", groupID, apperrors.ErrInsufficientFunds)
}
