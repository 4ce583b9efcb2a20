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

func setupMockDB(t *testing.T) (*GroupRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewGroupRepo(&models.Config{}, sqlxDB), mock
}

func groupRows(g *models.Group) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "admin_id", "balance", "currency",
		"min_contribution", "max_loan_amount", "require_approval", "loan_term_days",
		"status", "created_at", "updated_at",
	}).AddRow(
		g.ID, g.Name, g.Description, g.AdminID, g.Wallet.Balance, g.Wallet.Currency,
		g.Settings.MinContribution, g.Settings.MaxLoanAmount, g.Settings.RequireApproval, g.Settings.LoanTermDays,
		g.Status, g.CreatedAt, g.UpdatedAt,
	)
}

func sampleGroup() *models.Group {
	now := time.Now()
	return &models.Group{
		ID:      uuid.New(),
		Name:    "Night Market Pool",
		AdminID: uuid.New(),
		Wallet: models.GroupWallet{
			Balance:  decimal.NewFromInt(1200),
			Currency: "INR",
		},
		Settings: models.GroupSettings{
			MinContribution: decimal.NewFromInt(100),
			MaxLoanAmount:   decimal.NewFromInt(5000),
			RequireApproval: true,
			LoanTermDays:    30,
		},
		Status:    models.GroupStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGetGroup(t *testing.T) {
	repo, mock := setupMockDB(t)
	group := sampleGroup()

	mock.ExpectQuery("SELECT (.+) FROM groups WHERE id").
		WithArgs(group.ID).
		WillReturnRows(groupRows(group))
	mock.ExpectQuery("SELECT group_id, user_id, role, joined_at, contribution_total").
		WithArgs(group.ID).
		WillReturnRows(sqlmock.NewRows([]string{"group_id", "user_id", "role", "joined_at", "contribution_total"}).
			AddRow(group.ID, group.AdminID, models.MemberRoleAdmin, group.CreatedAt, decimal.Zero))

	got, err := repo.GetGroup(context.Background(), group.ID)

	require.NoError(t, err)
	assert.Equal(t, group.ID, got.ID)
	assert.True(t, got.Wallet.Balance.Equal(group.Wallet.Balance))
	require.Len(t, got.Members, 1)
	assert.Equal(t, models.MemberRoleAdmin, got.Members[0].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGroup_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM groups WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetGroup(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroup(t *testing.T) {
	repo, mock := setupMockDB(t)
	group := sampleGroup()
	group.Members = []models.GroupMember{{
		GroupID:           group.ID,
		UserID:            group.AdminID,
		Role:              models.MemberRoleAdmin,
		JoinedAt:          time.Now(),
		ContributionTotal: decimal.Zero,
	}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO groups").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO group_members").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateGroup(context.Background(), group)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubtractFromWallet(t *testing.T) {
	repo, mock := setupMockDB(t)
	groupID := uuid.New()
	amount := decimal.NewFromInt(300)

	mock.ExpectExec("UPDATE groups").
		WithArgs(amount, groupID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SubtractFromWallet(context.Background(), groupID, amount)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubtractFromWallet_InsufficientFunds(t *testing.T) {
	repo, mock := setupMockDB(t)
	groupID := uuid.New()
	amount := decimal.NewFromInt(9999)

	mock.ExpectExec("UPDATE groups").
		WithArgs(amount, groupID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(groupID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.SubtractFromWallet(context.Background(), groupID, amount)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubtractFromWallet_GroupMissing(t *testing.T) {
	repo, mock := setupMockDB(t)
	groupID := uuid.New()
	amount := decimal.NewFromInt(10)

	mock.ExpectExec("UPDATE groups").
		WithArgs(amount, groupID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(groupID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.SubtractFromWallet(context.Background(), groupID, amount)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMemberContribution_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	groupID := uuid.New()
	userID := uuid.New()

	mock.ExpectExec("UPDATE group_members").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AddMemberContribution(context.Background(), groupID, userID, decimal.NewFromInt(100))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
