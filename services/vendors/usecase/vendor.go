package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/logger"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/services/vendors"
)

// VendorUC implements the vendor directory usecase
type VendorUC struct {
	cfg        *models.Config
	vendorRepo vendors.VendorRepo
}

// NewVendorUC creates a new vendor usecase
func NewVendorUC(cfg *models.Config, vendorRepo vendors.VendorRepo) *VendorUC {
	return &VendorUC{
		cfg:        cfg,
		vendorRepo: vendorRepo,
	}
}

// CreateVendor registers a vendor business profile
func (uc *VendorUC) CreateVendor(ctx context.Context, req *models.VendorRequest) (*models.Vendor, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("vendor name is required: %w", apperrors.ErrInvalidInput)
	}

	status := req.Status
	if status == "" {
		status = models.VendorStatusActive
	}
	if status != models.VendorStatusActive && status != models.VendorStatusInactive {
		return nil, fmt.Errorf("invalid vendor status %q: %w", status, apperrors.ErrInvalidInput)
	}

	now := time.Now()
	vendor := &models.Vendor{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		return nil, err
	}

	logger.Info("Vendor created", logger.String("vendor_id", vendor.ID.String()))

	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (uc *VendorUC) GetVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	return uc.vendorRepo.GetVendor(ctx, id)
}

// ListVendors returns all vendor profiles
func (uc *VendorUC) ListVendors(ctx context.Context) ([]*models.Vendor, error) {
	return uc.vendorRepo.ListVendors(ctx)
}

// UpdateVendor applies changes to a vendor profile
func (uc *VendorUC) UpdateVendor(ctx context.Context, id uuid.UUID, req *models.VendorRequest) (*models.Vendor, error) {
	vendor, err := uc.vendorRepo.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		vendor.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		vendor.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Phone != "" {
		vendor.Phone = req.Phone
	}
	if req.Address != "" {
		vendor.Address = req.Address
	}
	if req.Description != "" {
		vendor.Description = req.Description
	}
	if req.Status != "" {
		if req.Status != models.VendorStatusActive && req.Status != models.VendorStatusInactive {
			return nil, fmt.Errorf("invalid vendor status %q: %w", req.Status, apperrors.ErrInvalidInput)
		}
		vendor.Status = req.Status
	}
	vendor.UpdatedAt = time.Now()

	if err := uc.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

// DeleteVendor removes a vendor profile
func (uc *VendorUC) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	if err := uc.vendorRepo.DeleteVendor(ctx, id); err != nil {
		return err
	}

	logger.Info("Vendor deleted", logger.String("vendor_id", id.String()))

	return nil
}
