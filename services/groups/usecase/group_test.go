package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/services/groups/mocks"
)

func newTestUC(t *testing.T) (*GroupUC, *mocks.MockGroupRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGroupRepo(ctrl)
	uc := NewGroupUC(&models.Config{}, repo)
	return uc, repo, ctrl
}

func activeGroup(adminID uuid.UUID) *models.Group {
	return &models.Group{
		ID:      uuid.New(),
		Name:    "Street Vendors Collective",
		AdminID: adminID,
		Wallet: models.GroupWallet{
			Balance:  decimal.NewFromInt(500),
			Currency: "INR",
		},
		Settings: models.GroupSettings{
			MinContribution: decimal.NewFromInt(100),
			RequireApproval: true,
			LoanTermDays:    30,
		},
		Status:    models.GroupStatusActive,
		CreatedAt: time.Now(),
	}
}

func TestCreateGroup(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	founderID := uuid.New()
	minContribution := decimal.NewFromInt(50)
	req := &models.CreateGroupRequest{
		Name:            "Weavers Circle",
		Description:     "Weekly savings for the weavers market",
		MinContribution: &minContribution,
	}

	repo.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, group *models.Group) error {
			assert.Equal(t, "Weavers Circle", group.Name)
			assert.Equal(t, founderID, group.AdminID)
			assert.True(t, group.Wallet.Balance.IsZero())
			assert.Equal(t, "INR", group.Wallet.Currency)
			assert.True(t, group.Settings.MinContribution.Equal(minContribution))
			assert.True(t, group.Settings.RequireApproval)
			assert.Equal(t, 30, group.Settings.LoanTermDays)
			require.Len(t, group.Members, 1)
			assert.Equal(t, models.MemberRoleAdmin, group.Members[0].Role)
			assert.Equal(t, founderID, group.Members[0].UserID)
			return nil
		})

	group, err := uc.CreateGroup(context.Background(), req, founderID)

	require.NoError(t, err)
	assert.Equal(t, models.GroupStatusActive, group.Status)
}

func TestCreateGroup_EmptyName(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateGroup(context.Background(), &models.CreateGroupRequest{Name: "  "}, uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCreateGroup_NegativeMinContribution(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	neg := decimal.NewFromInt(-10)
	req := &models.CreateGroupRequest{Name: "Bad Settings", MinContribution: &neg}

	_, err := uc.CreateGroup(context.Background(), req, uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdateGroup_NotAdmin(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	group := activeGroup(uuid.New())
	repo.EXPECT().GetGroup(gomock.Any(), group.ID).Return(group, nil)

	name := "Renamed"
	_, err := uc.UpdateGroup(context.Background(), group.ID, &models.UpdateGroupRequest{Name: &name}, uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestUpdateGroup_AdminAppliesSettings(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	group := activeGroup(adminID)
	noApproval := false
	maxLoan := decimal.NewFromInt(2000)

	repo.EXPECT().GetGroup(gomock.Any(), group.ID).Return(group, nil)
	repo.EXPECT().UpdateGroup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, g *models.Group) error {
			assert.False(t, g.Settings.RequireApproval)
			assert.True(t, g.Settings.MaxLoanAmount.Equal(maxLoan))
			return nil
		})

	updated, err := uc.UpdateGroup(context.Background(), group.ID, &models.UpdateGroupRequest{
		RequireApproval: &noApproval,
		MaxLoanAmount:   &maxLoan,
	}, adminID)

	require.NoError(t, err)
	assert.False(t, updated.Settings.RequireApproval)
}

func TestJoinGroup(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	group := activeGroup(uuid.New())
	userID := uuid.New()

	repo.EXPECT().GetGroup(gomock.Any(), group.ID).Return(group, nil)
	repo.EXPECT().GetMember(gomock.Any(), group.ID, userID).Return(nil, apperrors.ErrNotFound)
	repo.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, member *models.GroupMember) error {
			assert.Equal(t, models.MemberRoleMember, member.Role)
			assert.Equal(t, userID, member.UserID)
			assert.True(t, member.ContributionTotal.IsZero())
			return nil
		})
	repo.EXPECT().GetGroup(gomock.Any(), group.ID).Return(group, nil)

	_, err := uc.JoinGroup(context.Background(), group.ID, userID)

	require.NoError(t, err)
}

func TestJoinGroup_AlreadyMember(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	group := activeGroup(uuid.New())
	userID := uuid.New()

	repo.EXPECT().GetGroup(gomock.Any(), group.ID).Return(group, nil)
	repo.EXPECT().GetMember(gomock.Any(), group.ID, userID).
		Return(&models.GroupMember{GroupID: group.ID, UserID: userID}, nil)

	_, err := uc.JoinGroup(context.Background(), group.ID, userID)

	assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
}

func TestJoinGroup_InactiveGroup(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	group := activeGroup(uuid.New())
	group.Status = models.GroupStatusInactive

	repo.EXPECT().GetGroup(gomock.Any(), group.ID).Return(group, nil)

	_, err := uc.JoinGroup(context.Background(), group.ID, uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestLeaveGroup_AdminBlocked(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	group := activeGroup(adminID)

	repo.EXPECT().GetGroup(gomock.Any(), group.ID).Return(group, nil)

	_, err := uc.LeaveGroup(context.Background(), group.ID, adminID)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestLeaveGroup(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	group := activeGroup(uuid.New())
	userID := uuid.New()

	repo.EXPECT().GetGroup(gomock.Any(), group.ID).Return(group, nil)
	repo.EXPECT().RemoveMember(gomock.Any(), group.ID, userID).Return(nil)
	repo.EXPECT().GetGroup(gomock.Any(), group.ID).Return(group, nil)

	_, err := uc.LeaveGroup(context.Background(), group.ID, userID)

	require.NoError(t, err)
}

func TestIsMember(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	userID := uuid.New()

	repo.EXPECT().GetMember(gomock.Any(), groupID, userID).
		Return(&models.GroupMember{GroupID: groupID, UserID: userID}, nil)
	repo.EXPECT().GetMember(gomock.Any(), groupID, userID).
		Return(nil, apperrors.ErrNotFound)

	ok, err := uc.IsMember(context.Background(), groupID, userID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.IsMember(context.Background(), groupID, userID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsMember_RepoError(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	userID := uuid.New()
	repoErr := errors.New("connection reset")

	repo.EXPECT().GetMember(gomock.Any(), groupID, userID).Return(nil, repoErr)

	_, err := uc.IsMember(context.Background(), groupID, userID)

	assert.ErrorIs(t, err, repoErr)
}

func TestSubtractFromWallet_RejectsNonPositive(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	err := uc.SubtractFromWallet(context.Background(), uuid.New(), decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	err = uc.AddToWallet(context.Background(), uuid.New(), decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestSearchGroups_EmptyQuery(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.SearchGroups(context.Background(), "   ")

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
