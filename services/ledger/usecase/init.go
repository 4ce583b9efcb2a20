package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/services/ledger"
)

//go:generate mockgen -destination=../mocks/mock_group_directory.go -package=mocks github.com/sahakarita/sahakarita/services/ledger/usecase GroupDirectory

// GroupDirectory is the slice of the groups service the ledger consumes
type GroupDirectory interface {
	GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	IsAdmin(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	AddToWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error
	SubtractFromWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error
	AddMemberContribution(ctx context.Context, groupID, userID uuid.UUID, amount decimal.Decimal) error
}

// TransactionUC implements the ledger usecase
type TransactionUC struct {
	cfg    *models.Config
	repo   ledger.TransactionRepo
	groups GroupDirectory
	gw     ledger.TransactionGW
}

// NewTransactionUC creates a new ledger usecase
func NewTransactionUC(cfg *models.Config, repo ledger.TransactionRepo, groups GroupDirectory, gw ledger.TransactionGW) *TransactionUC {
	return &TransactionUC{
		cfg:    cfg,
		repo:   repo,
		groups: groups,
		gw:     gw,
	}
}
