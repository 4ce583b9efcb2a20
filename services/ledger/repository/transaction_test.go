package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewTransactionRepo(&models.Config{}, sqlxDB), mock
}

func transactionRowColumns() []string {
	return []string{
		"id", "group_id", "user_id", "type", "amount", "status", "description",
		"loan_borrower_id", "loan_due_date", "loan_interest_rate", "loan_total_amount", "loan_paid_amount",
		"approved_by", "approved_at", "rejection_reason", "completed_at",
		"created_at", "updated_at",
	}
}

func TestGetTransaction(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	groupID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(transactionRowColumns()).AddRow(
		id, groupID, userID, "withdrawal", decimal.NewFromInt(300), "pending", "market stock",
		nil, nil, nil, nil, nil,
		nil, nil, nil, nil,
		now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(rows)

	tx, err := repo.GetTransaction(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, models.TransactionTypeWithdrawal, tx.Type)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
	assert.Nil(t, tx.LoanDetails)
	assert.Nil(t, tx.CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_LoanColumns(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	borrowerID := uuid.New()
	now := time.Now()
	due := now.AddDate(0, 0, 30)

	rows := sqlmock.NewRows(transactionRowColumns()).AddRow(
		id, uuid.New(), borrowerID, "loan", decimal.NewFromInt(400), "pending", nil,
		borrowerID, due, decimal.NewFromFloat(2.5), decimal.NewFromInt(400), decimal.Zero,
		nil, nil, nil, nil,
		now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(rows)

	tx, err := repo.GetTransaction(context.Background(), id)

	require.NoError(t, err)
	require.NotNil(t, tx.LoanDetails)
	assert.Equal(t, borrowerID, *tx.LoanDetails.BorrowerID)
	assert.True(t, tx.LoanDetails.TotalAmount.Equal(decimal.NewFromInt(400)))
	assert.True(t, tx.LoanDetails.InterestRate.Equal(decimal.NewFromFloat(2.5)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(transactionRowColumns()))

	_, err := repo.GetTransaction(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()
	tx := &models.Transaction{
		ID:        uuid.New(),
		GroupID:   uuid.New(),
		UserID:    uuid.New(),
		Type:      models.TransactionTypeContribution,
		Amount:    decimal.NewFromInt(200),
		Status:    models.TransactionStatusCompleted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTransaction(context.Background(), tx)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	tx := &models.Transaction{
		ID:     uuid.New(),
		Status: models.TransactionStatusRejected,
	}

	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTransaction(context.Background(), tx)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_Filtered(t *testing.T) {
	repo, mock := setupMockDB(t)
	groupID := uuid.New()
	status := models.TransactionStatusPending
	now := time.Now()

	rows := sqlmock.NewRows(transactionRowColumns()).AddRow(
		uuid.New(), groupID, uuid.New(), "withdrawal", decimal.NewFromInt(100), "pending", nil,
		nil, nil, nil, nil, nil,
		nil, nil, nil, nil,
		now, now,
	).AddRow(
		uuid.New(), groupID, uuid.New(), "loan", decimal.NewFromInt(250), "pending", nil,
		nil, nil, nil, nil, nil,
		nil, nil, nil, nil,
		now.Add(-time.Hour), now.Add(-time.Hour),
	)

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE group_id = (.+) AND status = (.+) ORDER BY created_at DESC").
		WithArgs(groupID, status).
		WillReturnRows(rows)

	result, err := repo.ListTransactions(context.Background(), &models.TransactionFilter{
		GroupID: &groupID,
		Status:  &status,
	})

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumCompletedByType(t *testing.T) {
	repo, mock := setupMockDB(t)
	groupID := uuid.New()

	mock.ExpectQuery("SELECT(.+)FROM transactions").
		WithArgs(groupID).
		WillReturnRows(sqlmock.NewRows([]string{"contributions", "withdrawals", "loans", "repayments"}).
			AddRow(decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.NewFromInt(500), decimal.NewFromInt(150)))

	sums, err := repo.SumCompletedByType(context.Background(), groupID)

	require.NoError(t, err)
	assert.True(t, sums.Contributions.Equal(decimal.NewFromInt(1000)))
	assert.True(t, sums.Loans.Sub(sums.Repayments).Equal(decimal.NewFromInt(350)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
