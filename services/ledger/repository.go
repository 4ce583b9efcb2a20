package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sahakarita/sahakarita/services/ledger TransactionRepo

// TransactionSums aggregates completed transaction amounts per type
type TransactionSums struct {
	Contributions decimal.Decimal `db:"contributions"`
	Withdrawals   decimal.Decimal `db:"withdrawals"`
	Loans         decimal.Decimal `db:"loans"`
	Repayments    decimal.Decimal `db:"repayments"`
}

// TransactionRepo defines the interface for ledger persistence
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactions(ctx context.Context, filter *models.TransactionFilter) ([]*models.Transaction, error)
	SumCompletedByType(ctx context.Context, groupID uuid.UUID) (*TransactionSums, error)
}
