package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/logger"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

const (
	defaultLoanTermDays = 30
	defaultCurrency     = "INR"
	searchResultLimit   = 50
)

// CreateGroup creates a savings group with the founder as its admin member
func (uc *GroupUC) CreateGroup(ctx context.Context, req *models.CreateGroupRequest, founderID uuid.UUID) (*models.Group, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("group name is required: %w", apperrors.ErrInvalidInput)
	}

	settings := models.GroupSettings{
		RequireApproval: true,
		LoanTermDays:    defaultLoanTermDays,
	}
	if req.MinContribution != nil {
		if req.MinContribution.IsNegative() {
			return nil, fmt.Errorf("min contribution must not be negative: %w", apperrors.ErrInvalidInput)
		}
		settings.MinContribution = *req.MinContribution
	}
	if req.MaxLoanAmount != nil {
		if req.MaxLoanAmount.IsNegative() {
			return nil, fmt.Errorf("max loan amount must not be negative: %w", apperrors.ErrInvalidInput)
		}
		settings.MaxLoanAmount = *req.MaxLoanAmount
	}
	if req.RequireApproval != nil {
		settings.RequireApproval = *req.RequireApproval
	}
	if req.LoanTermDays != nil {
		if *req.LoanTermDays <= 0 {
			return nil, fmt.Errorf("loan term must be positive: %w", apperrors.ErrInvalidInput)
		}
		settings.LoanTermDays = *req.LoanTermDays
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now()
	group := &models.Group{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		AdminID:     founderID,
		Wallet: models.GroupWallet{
			Balance:  decimal.Zero,
			Currency: currency,
		},
		Settings: settings,
		Status:   models.GroupStatusActive,
	}
	group.Members = []models.GroupMember{{
		GroupID:           group.ID,
		UserID:            founderID,
		Role:              models.MemberRoleAdmin,
		JoinedAt:          now,
		ContributionTotal: decimal.Zero,
	}}

	if err := uc.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	logger.Info("Group created",
		logger.String("group_id", group.ID.String()),
		logger.String("admin_id", founderID.String()))

	return group, nil
}

// GetGroup retrieves a group by ID
func (uc *GroupUC) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	return uc.groupRepo.GetGroup(ctx, id)
}

// ListGroups returns active groups, scoped to memberID when provided
func (uc *GroupUC) ListGroups(ctx context.Context, memberID *uuid.UUID) ([]*models.Group, error) {
	return uc.groupRepo.ListGroups(ctx, memberID)
}

// SearchGroups finds active groups by name or description
func (uc *GroupUC) SearchGroups(ctx context.Context, query string) ([]*models.Group, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required: %w", apperrors.ErrInvalidInput)
	}
	return uc.groupRepo.SearchGroups(ctx, query, searchResultLimit)
}

// UpdateGroup applies admin-only changes to a group
func (uc *GroupUC) UpdateGroup(ctx context.Context, id uuid.UUID, req *models.UpdateGroupRequest, userID uuid.UUID) (*models.Group, error) {
	group, err := uc.groupRepo.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	if group.AdminID != userID {
		return nil, fmt.Errorf("only the group admin can update the group: %w", apperrors.ErrNotAuthorized)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("group name is required: %w", apperrors.ErrInvalidInput)
		}
		group.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.MinContribution != nil {
		if req.MinContribution.IsNegative() {
			return nil, fmt.Errorf("min contribution must not be negative: %w", apperrors.ErrInvalidInput)
		}
		group.Settings.MinContribution = *req.MinContribution
	}
	if req.MaxLoanAmount != nil {
		if req.MaxLoanAmount.IsNegative() {
			return nil, fmt.Errorf("max loan amount must not be negative: %w", apperrors.ErrInvalidInput)
		}
		group.Settings.MaxLoanAmount = *req.MaxLoanAmount
	}
	if req.RequireApproval != nil {
		group.Settings.RequireApproval = *req.RequireApproval
	}
	if req.LoanTermDays != nil {
		if *req.LoanTermDays <= 0 {
			return nil, fmt.Errorf("loan term must be positive: %w", apperrors.ErrInvalidInput)
		}
		group.Settings.LoanTermDays = *req.LoanTermDays
	}
	if req.Status != nil {
		if *req.Status != models.GroupStatusActive && *req.Status != models.GroupStatusInactive {
			return nil, fmt.Errorf("invalid group status %q: %w", *req.Status, apperrors.ErrInvalidInput)
		}
		group.Status = *req.Status
	}

	if err := uc.groupRepo.UpdateGroup(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// JoinGroup adds a user as a regular member of an active group
func (uc *GroupUC) JoinGroup(ctx context.Context, groupID, userID uuid.UUID) (*models.Group, error) {
	group, err := uc.groupRepo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if group.Status != models.GroupStatusActive {
		return nil, fmt.Errorf("group is not active: %w", apperrors.ErrInvalidInput)
	}

	_, err = uc.groupRepo.GetMember(ctx, groupID, userID)
	if err == nil {
		return nil, fmt.Errorf("user %s already in group %s: %w", userID, groupID, apperrors.ErrAlreadyMember)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	member := &models.GroupMember{
		GroupID:           groupID,
		UserID:            userID,
		Role:              models.MemberRoleMember,
		JoinedAt:          time.Now(),
		ContributionTotal: decimal.Zero,
	}
	if err := uc.groupRepo.AddMember(ctx, member); err != nil {
		return nil, err
	}

	logger.Info("Member joined group",
		logger.String("group_id", groupID.String()),
		logger.String("user_id", userID.String()))

	return uc.groupRepo.GetGroup(ctx, groupID)
}

// LeaveGroup removes a member. The admin cannot leave their own group.
func (uc *GroupUC) LeaveGroup(ctx context.Context, groupID, userID uuid.UUID) (*models.Group, error) {
	group, err := uc.groupRepo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if group.AdminID == userID {
		return nil, fmt.Errorf("the group admin cannot leave the group: %w", apperrors.ErrInvalidInput)
	}

	if err := uc.groupRepo.RemoveMember(ctx, groupID, userID); err != nil {
		return nil, err
	}

	logger.Info("Member left group",
		logger.String("group_id", groupID.String()),
		logger.String("user_id", userID.String()))

	return uc.groupRepo.GetGroup(ctx, groupID)
}

// IsMember reports whether the user belongs to the group
func (uc *GroupUC) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	_, err := uc.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsAdmin reports whether the user is the group's admin
func (uc *GroupUC) IsAdmin(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	group, err := uc.groupRepo.GetGroup(ctx, groupID)
	if err != nil {
		return false, err
	}
	return group.AdminID == userID, nil
}

// AddToWallet credits the group wallet
func (uc *GroupUC) AddToWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("credit amount must be positive: %w", apperrors.ErrInvalidAmount)
	}
	return uc.groupRepo.AddToWallet(ctx, groupID, amount)
}

// SubtractFromWallet debits the group wallet, failing on insufficient funds
func (uc *GroupUC) SubtractFromWallet(ctx context.Context, groupID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("debit amount must be positive: %w", apperrors.ErrInvalidAmount)
	}
	return uc.groupRepo.SubtractFromWallet(ctx, groupID, amount)
}

// AddMemberContribution increments a member's lifetime contribution total
func (uc *GroupUC) AddMemberContribution(ctx context.Context, groupID, userID uuid.UUID, amount decimal.Decimal) error {
	return uc.groupRepo.AddMemberContribution(ctx, groupID, userID, amount)
}
