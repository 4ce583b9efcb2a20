package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

// GroupRepo implements group persistence on PostgreSQL
type GroupRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewGroupRepo creates a new group repository
func NewGroupRepo(cfg *models.Config, db *sqlx.DB) *GroupRepo {
	return &GroupRepo{
		cfg: cfg,
		db:  db,
	}
}

const groupColumns = `
	id, name, description, admin_id, balance, currency,
	min_contribution, max_loan_amount, require_approval, loan_term_days,
	status, created_at, updated_at
`

func (r *GroupRepo) scanGroup(row interface {
	Scan(dest ...interface{}) error
}) (*models.Group, error) {
	var g models.Group
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.AdminID,
		&g.Wallet.Balance,
		&g.Wallet.Currency,
		&g.Settings.MinContribution,
		&g.Settings.MaxLoanAmount,
		&g.Settings.RequireApproval,
		&g.Settings.LoanTermDays,
		&g.Status,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGroup inserts a group together with its founding admin member
func (r *GroupRepo) CreateGroup(ctx context.Context, group *models.Group) error {
	now := time.Now()
	group.CreatedAt = now
	group.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (
			id, name, description, admin_id, balance, currency,
			min_contribution, max_loan_amount, require_approval, loan_term_days,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = tx.ExecContext(ctx, query,
		group.ID,
		group.Name,
		group.Description,
		group.AdminID,
		group.Wallet.Balance,
		group.Wallet.Currency,
		group.Settings.MinContribution,
		group.Settings.MaxLoanAmount,
		group.Settings.RequireApproval,
		group.Settings.LoanTermDays,
		group.Status,
		group.CreatedAt,
		group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	for i := range group.Members {
		m := &group.Members[i]
		_, err = tx.ExecContext(ctx, `
			INSERT INTO group_members (group_id, user_id, role, joined_at, contribution_total)
			VALUES ($1, $2, $3, $4, $5)
		`, m.GroupID, m.UserID, m.Role, m.JoinedAt, m.ContributionTotal)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGroup retrieves a group with its members by ID
func (r *GroupRepo) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	query := fmt.Sprintf(`SELECT %s FROM groups WHERE id = $1`, groupColumns)

	group, err := r.scanGroup(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("group %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := r.loadMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return group, nil
}

func (r *GroupRepo) loadMembers(ctx context.Context, groupID uuid.UUID) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.SelectContext(ctx, &members, `
		SELECT group_id, user_id, role, joined_at, contribution_total
		FROM group_members
		WHERE group_id = $1
		ORDER BY joined_at ASC
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group members: %w", err)
	}
	return members, nil
}

// ListGroups returns active groups, optionally restricted to a member
func (r *GroupRepo) ListGroups(ctx context.Context, memberID *uuid.UUID) ([]*models.Group, error) {
	query := fmt.Sprintf(`SELECT %s FROM groups WHERE status = $1 ORDER BY created_at DESC`, groupColumns)
	args := []interface{}{models.GroupStatusActive}

	if memberID != nil {
		query = fmt.Sprintf(`
			SELECT %s FROM groups g
			WHERE g.status = $1
			  AND EXISTS (
				SELECT 1 FROM group_members m
				WHERE m.group_id = g.id AND m.user_id = $2
			  )
			ORDER BY g.created_at DESC
		`, groupColumns)
		args = append(args, *memberID)
	}

	return r.queryGroups(ctx, query, args...)
}

// SearchGroups finds active groups matching the query in name or description
func (r *GroupRepo) SearchGroups(ctx context.Context, search string, limit int) ([]*models.Group, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM groups
		WHERE status = $1 AND (name ILIKE $2 OR description ILIKE $2)
		ORDER BY created_at DESC
		LIMIT $3
	`, groupColumns)

	pattern := "%" + search + "%"
	return r.queryGroups(ctx, query, models.GroupStatusActive, pattern, limit)
}

func (r *GroupRepo) queryGroups(ctx context.Context, query string, args ...interface{}) ([]*models.Group, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group, err := r.scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	for _, group := range groups {
		members, err := r.loadMembers(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		group.Members = members
	}

	return groups, nil
}

// UpdateGroup persists mutable group fields and settings
func (r *GroupRepo) UpdateGroup(ctx context.Context, group *models.Group) error {
	group.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, `
		UPDATE groups
		SET name = $1, description = $2,
			min_contribution = $3, max_loan_amount = $4,
			require_approval = $5, loan_term_days = $6,
			status = $7, updated_at = $8
		WHERE id = $9
	`,
		group.Name,
		group.Description,
		group.Settings.MinContribution,
		group.Settings.MaxLoanAmount,
		group.Settings.RequireApproval,
		group.Settings.LoanTermDays,
		group.Status,
		group.UpdatedAt,
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("group %s: %w", group.ID, apperrors.ErrNotFound)
	}

	return nil
}
