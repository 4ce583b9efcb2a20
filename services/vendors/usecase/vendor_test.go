package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/services/vendors/mocks"
)

func newTestUC(t *testing.T) (*VendorUC, *mocks.MockVendorRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVendorRepo(ctrl)
	return NewVendorUC(&models.Config{}, repo), repo, ctrl
}

func TestCreateVendor(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	repo.EXPECT().CreateVendor(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, vendor *models.Vendor) error {
			assert.Equal(t, "Ravi Fruit Stall", vendor.Name)
			assert.Equal(t, "ravi@example.com", vendor.Email)
			assert.Equal(t, models.VendorStatusActive, vendor.Status)
			return nil
		})

	vendor, err := uc.CreateVendor(context.Background(), &models.VendorRequest{
		Name:  "Ravi Fruit Stall",
		Email: "Ravi@Example.com",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, vendor.ID)
}

func TestCreateVendor_MissingName(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateVendor(context.Background(), &models.VendorRequest{Email: "x@example.com"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdateVendor_InvalidStatus(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().GetVendor(gomock.Any(), id).
		Return(&models.Vendor{ID: id, Name: "Ravi Fruit Stall", Status: models.VendorStatusActive}, nil)

	_, err := uc.UpdateVendor(context.Background(), id, &models.VendorRequest{Status: "suspended"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdateVendor(t *testing.T) {
	uc, repo, ctrl := newTestUC(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo.EXPECT().GetVendor(gomock.Any(), id).
		Return(&models.Vendor{ID: id, Name: "Ravi Fruit Stall", Status: models.VendorStatusActive}, nil)
	repo.EXPECT().UpdateVendor(gomock.Any(), gomock.Any()).Return(nil)

	vendor, err := uc.UpdateVendor(context.Background(), id, &models.VendorRequest{
		Address: "Stall 14, Gandhi Market",
		Status:  models.VendorStatusInactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "Stall 14, Gandhi Market", vendor.Address)
	assert.Equal(t, models.VendorStatusInactive, vendor.Status)
}
