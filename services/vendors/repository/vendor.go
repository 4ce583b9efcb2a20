package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

// VendorRepo implements vendor persistence on PostgreSQL
type VendorRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewVendorRepo creates a new vendor repository
func NewVendorRepo(cfg *models.Config, db *sqlx.DB) *VendorRepo {
	return &VendorRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateVendor inserts a vendor profile
func (r *VendorRepo) CreateVendor(ctx context.Context, vendor *models.Vendor) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO vendors (id, name, email, phone, address, description, status, created_at, updated_at)
		VALUES (:id, :name, :email, :phone, :address, :description, :status, :created_at, :updated_at)
	`, vendor)
	if err != nil {
		return fmt.Errorf("failed to insert vendor: %w", err)
	}
	return nil
}

// GetVendor retrieves a vendor by ID
func (r *VendorRepo) GetVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.GetContext(ctx, &vendor, `
		SELECT id, name, email, phone, address, description, status, created_at, updated_at
		FROM vendors WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vendor %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return &vendor, nil
}

// ListVendors returns all vendors newest first
func (r *VendorRepo) ListVendors(ctx context.Context) ([]*models.Vendor, error) {
	var result []*models.Vendor
	err := r.db.SelectContext(ctx, &result, `
		SELECT id, name, email, phone, address, description, status, created_at, updated_at
		FROM vendors ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return result, nil
}

// UpdateVendor persists vendor profile changes
func (r *VendorRepo) UpdateVendor(ctx context.Context, vendor *models.Vendor) error {
	result, err := r.db.NamedExecContext(ctx, `
		UPDATE vendors
		SET name = :name, email = :email, phone = :phone, address = :address,
			description = :description, status = :status, updated_at = :updated_at
		WHERE id = :id
	`, vendor)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("vendor %s: %w", vendor.ID, apperrors.ErrNotFound)
	}

	return nil
}

// DeleteVendor removes a vendor profile
func (r *VendorRepo) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("vendor %s: %w", id, apperrors.ErrNotFound)
	}

	return nil
}
