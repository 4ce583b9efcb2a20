package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sahakarita/sahakarita/services/ledger TransactionUC

// TransactionUC represents the ledger usecase interface
type TransactionUC interface {
	CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest, userID uuid.UUID) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id uuid.UUID, req *models.UpdateTransactionStatusRequest, approverID uuid.UUID) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter *models.TransactionFilter, userID uuid.UUID) ([]*models.Transaction, error)
	GetGroupBalance(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupBalanceSummary, error)
}
