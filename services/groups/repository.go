package groups

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sahakarita/sahakarita/services/groups GroupRepo

// GroupRepo defines the interface for group repository operations
type GroupRepo interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	ListGroups(ctx context.Context, memberID *uuid.UUID) ([]*models.Group, error)
	SearchGroups(ctx context.Context, query string, limit int) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, group *models.Group) error

	AddMember(ctx context.Context, member *models.GroupMember) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
	GetMember(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupMember, error)

	AddToWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error
	SubtractFromWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error
	AddMemberContribution(ctx context.Context, groupID, userID uuid.UUID, amount decimal.Decimal) error
}
