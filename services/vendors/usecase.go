package vendors

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sahakarita/sahakarita/services/vendors VendorUC

// VendorUC represents the vendor directory usecase interface
type VendorUC interface {
	CreateVendor(ctx context.Context, req *models.VendorRequest) (*models.Vendor, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	ListVendors(ctx context.Context) ([]*models.Vendor, error)
	UpdateVendor(ctx context.Context, id uuid.UUID, req *models.VendorRequest) (*models.Vendor, error)
	DeleteVendor(ctx context.Context, id uuid.UUID) error
}
