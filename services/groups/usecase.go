package groups

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sahakarita/sahakarita/services/groups GroupUC

// GroupUC represents the group usecase interface
type GroupUC interface {
	CreateGroup(ctx context.Context, req *models.CreateGroupRequest, founderID uuid.UUID) (*models.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	ListGroups(ctx context.Context, memberID *uuid.UUID) ([]*models.Group, error)
	SearchGroups(ctx context.Context, query string) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, req *models.UpdateGroupRequest, userID uuid.UUID) (*models.Group, error)
	JoinGroup(ctx context.Context, groupID, userID uuid.UUID) (*models.Group, error)
	LeaveGroup(ctx context.Context, groupID, userID uuid.UUID) (*models.Group, error)

	// Directory contract consumed by the ledger engine
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	IsAdmin(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	AddToWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error
	SubtractFromWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error
	AddMemberContribution(ctx context.Context, groupID, userID uuid.UUID, amount decimal.Decimal) error
}
