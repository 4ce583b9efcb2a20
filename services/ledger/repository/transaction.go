package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/services/ledger"
)

// TransactionRepo implements ledger persistence on PostgreSQL
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

const transactionColumns = `
	id, group_id, user_id, type, amount, status, description,
	loan_borrower_id, loan_due_date, loan_interest_rate, loan_total_amount, loan_paid_amount,
	approved_by, approved_at, rejection_reason, completed_at,
	created_at, updated_at
`

// CreateTransaction inserts a ledger entry
func (r *TransactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	var (
		borrowerID   *uuid.UUID
		dueDate      *time.Time
		interestRate decimal.NullDecimal
		totalAmount  decimal.NullDecimal
		paidAmount   decimal.NullDecimal
	)
	if tx.LoanDetails != nil {
		borrowerID = tx.LoanDetails.BorrowerID
		dueDate = tx.LoanDetails.DueDate
		interestRate = decimal.NewNullDecimal(tx.LoanDetails.InterestRate)
		totalAmount = decimal.NewNullDecimal(tx.LoanDetails.TotalAmount)
		paidAmount = decimal.NewNullDecimal(tx.LoanDetails.PaidAmount)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (
			id, group_id, user_id, type, amount, status, description,
			loan_borrower_id, loan_due_date, loan_interest_rate, loan_total_amount, loan_paid_amount,
			approved_by, approved_at, rejection_reason, completed_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`,
		tx.ID, tx.GroupID, tx.UserID, tx.Type, tx.Amount, tx.Status, tx.Description,
		borrowerID, dueDate, interestRate, totalAmount, paidAmount,
		tx.ApprovedBy, tx.ApprovedAt, tx.RejectionReason, tx.CompletedAt,
		tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

func scanTransaction(row interface {
	Scan(dest ...interface{}) error
}) (*models.Transaction, error) {
	var (
		tx           models.Transaction
		description  sql.NullString
		borrowerID   uuid.NullUUID
		dueDate      sql.NullTime
		interestRate decimal.NullDecimal
		totalAmount  decimal.NullDecimal
		paidAmount   decimal.NullDecimal
		approvedBy   uuid.NullUUID
		approvedAt   sql.NullTime
		rejectReason sql.NullString
		completedAt  sql.NullTime
	)

	err := row.Scan(
		&tx.ID, &tx.GroupID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Status, &description,
		&borrowerID, &dueDate, &interestRate, &totalAmount, &paidAmount,
		&approvedBy, &approvedAt, &rejectReason, &completedAt,
		&tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Description = description.String
	tx.RejectionReason = rejectReason.String
	if approvedBy.Valid {
		tx.ApprovedBy = &approvedBy.UUID
	}
	if approvedAt.Valid {
		tx.ApprovedAt = &approvedAt.Time
	}
	if completedAt.Valid {
		tx.CompletedAt = &completedAt.Time
	}
	if tx.Type == models.TransactionTypeLoan && totalAmount.Valid {
		details := &models.LoanDetails{
			InterestRate: interestRate.Decimal,
			TotalAmount:  totalAmount.Decimal,
			PaidAmount:   paidAmount.Decimal,
		}
		if borrowerID.Valid {
			details.BorrowerID = &borrowerID.UUID
		}
		if dueDate.Valid {
			details.DueDate = &dueDate.Time
		}
		tx.LoanDetails = details
	}

	return &tx, nil
}

// GetTransaction retrieves a ledger entry by ID
func (r *TransactionRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = $1`, transactionColumns)

	tx, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return tx, nil
}

// UpdateTransaction persists a settlement decision
func (r *TransactionRepo) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	var totalAmount, paidAmount decimal.NullDecimal
	if tx.LoanDetails != nil {
		totalAmount = decimal.NewNullDecimal(tx.LoanDetails.TotalAmount)
		paidAmount = decimal.NewNullDecimal(tx.LoanDetails.PaidAmount)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, approved_by = $2, approved_at = $3,
			rejection_reason = $4, completed_at = $5,
			loan_total_amount = $6, loan_paid_amount = $7,
			updated_at = $8
		WHERE id = $9
	`,
		tx.Status, tx.ApprovedBy, tx.ApprovedAt,
		tx.RejectionReason, tx.CompletedAt,
		totalAmount, paidAmount,
		tx.UpdatedAt, tx.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", tx.ID, apperrors.ErrNotFound)
	}

	return nil
}

// ListTransactions returns ledger entries matching the filter, newest first
func (r *TransactionRepo) ListTransactions(ctx context.Context, filter *models.TransactionFilter) ([]*models.Transaction, error) {
	var (
		conditions []string
		args       []interface{}
	)
	addCondition := func(column string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.GroupID != nil {
		addCondition("group_id", *filter.GroupID)
	}
	if filter.UserID != nil {
		addCondition("user_id", *filter.UserID)
	}
	if filter.Type != nil {
		addCondition("type", *filter.Type)
	}
	if filter.Status != nil {
		addCondition("status", *filter.Status)
	}

	query := fmt.Sprintf(`SELECT %s FROM transactions`, transactionColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// SumCompletedByType aggregates completed transaction amounts for a group
func (r *TransactionRepo) SumCompletedByType(ctx context.Context, groupID uuid.UUID) (*ledger.TransactionSums, error) {
	var sums ledger.TransactionSums
	err := r.db.GetContext(ctx, &sums, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'contribution'), 0) AS contributions,
			COALESCE(SUM(amount) FILTER (WHERE type = 'withdrawal'), 0)   AS withdrawals,
			COALESCE(SUM(amount) FILTER (WHERE type = 'loan'), 0)         AS loans,
			COALESCE(SUM(amount) FILTER (WHERE type = 'repayment'), 0)    AS repayments
		FROM transactions
		WHERE group_id = $1 AND status = 'completed'
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return &sums, nil
}
